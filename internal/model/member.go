// Package model defines the data structures shared by the structured editing engine.
package model

import (
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// MemberKind represents the category of a declared class member.
type MemberKind int

const (
	// KindVariable represents field declarations.
	KindVariable MemberKind = iota
	// KindMethod represents method and constructor declarations.
	KindMethod
	// KindEnum represents nested enum declarations.
	KindEnum
	// KindInnerClass represents nested class, interface and record declarations.
	KindInnerClass
)

// AreaOrder is the fixed order in which areas are laid out and in which new
// members are grouped in the source text. It is never reordered.
var AreaOrder = [...]MemberKind{KindVariable, KindMethod, KindEnum, KindInnerClass}

var kindNames = map[MemberKind]string{
	KindVariable:   "variable",
	KindMethod:     "method",
	KindEnum:       "enum",
	KindInnerClass: "class",
}

var kindTitles = map[MemberKind]string{
	KindVariable:   "Variables",
	KindMethod:     "Methods",
	KindEnum:       "Enums",
	KindInnerClass: "Inner Classes",
}

func (k MemberKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Title returns the heading used when rendering the area of this kind.
func (k MemberKind) Title() string {
	return kindTitles[k]
}

// Valid reports whether k is one of the kinds in AreaOrder.
func (k MemberKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseMemberKind converts a user supplied kind name ("variable", "var",
// "field", "method", "enum", "class") into a MemberKind.
func ParseMemberKind(s string) (MemberKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "variable", "var", "field", "variables":
		return KindVariable, nil
	case "method", "methods", "func", "constructor":
		return KindMethod, nil
	case "enum", "enums":
		return KindEnum, nil
	case "class", "inner", "inner_class", "innerclass", "interface", "record":
		return KindInnerClass, nil
	}

	return 0, fmt.Errorf("unknown member kind %q", s)
}

// Parameter is one formal parameter of a method.
type Parameter struct {
	Type string
	Name string
}

// String renders the parameter the way it appears in source: "<type> <name>".
func (p Parameter) String() string {
	return p.Type + " " + p.Name
}

// MemberDescriptor is an immutable snapshot of one declared class member.
// Offsets are byte offsets into the text the snapshot was parsed from; they
// are invalid after any mutation of the buffer.
type MemberDescriptor struct {
	Kind         MemberKind
	Name         string
	Modifiers    []string
	DeclaredType string // variable type or method return type; empty for constructors
	Parameters   []Parameter
	Initializer  *string // variables only; nil when there is no initializer
	BodyText     string  // methods only; text between the braces, exclusive
	StartOffset  int
	EndOffset    int // exclusive

	NameStart int
	NameEnd   int
	BodyStart int // offset of the opening brace of the method body, -1 when absent
	BodyEnd   int // offset just past the closing brace, -1 when absent

	// ModStart and ModEnd delimit the keyword modifiers up to the start of
	// the type; they are equal when the member has no modifiers.
	ModStart int
	ModEnd   int

	// DeclaratorEnd is the end of this variable's declarator, which differs
	// from the declaration end when several variables share one declaration.
	DeclaratorEnd int

	// DimensionsEnd is the end of C-style array dimensions following the
	// variable name (`int a[];`), 0 when there are none.
	DimensionsEnd int

	// CommentStart is the start of the comments directly in front of the
	// declaration, 0 when none are attached.
	CommentStart int
}

// InitializerStart is where an initializer edit begins: after the name and
// any array dimensions that belong to the declared type.
func (d MemberDescriptor) InitializerStart() int {
	if d.DimensionsEnd > d.NameEnd {
		return d.DimensionsEnd
	}

	return d.NameEnd
}

// FullStart is the start of the declaration including its attached comments.
func (d MemberDescriptor) FullStart() int {
	if d.CommentStart > 0 && d.CommentStart < d.StartOffset {
		return d.CommentStart
	}

	return d.StartOffset
}

// IsConstructor reports whether the member is a method without a declared return type.
func (d MemberDescriptor) IsConstructor() bool {
	return d.Kind == KindMethod && d.DeclaredType == ""
}

// HasInitializer reports whether a variable declares an initial value.
func (d MemberDescriptor) HasInitializer() bool {
	return d.Initializer != nil
}

// InitializerText returns the initializer or an empty string.
func (d MemberDescriptor) InitializerText() string {
	if d.Initializer == nil {
		return ""
	}

	return *d.Initializer
}

// ParameterStrings returns the parameters rendered as "<type> <name>".
func (d MemberDescriptor) ParameterStrings() []string {
	out := make([]string, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		out = append(out, p.String())
	}

	return out
}

// Range returns the half-open byte range of the full declaration.
func (d MemberDescriptor) Range() Range {
	return Range{Start: d.StartOffset, End: d.EndOffset}
}

// Area is one fixed-kind group of members in declaration order. The trailing
// "new member" row of an area is not part of Members.
type Area struct {
	Kind    MemberKind
	Members []MemberDescriptor
}

// ClassSnapshot is one consistent read of the source model: every offset in
// it refers to the text at Revision.
type ClassSnapshot struct {
	Revision  uint64
	ClassName string
	BodyStart int // offset of the class body's opening brace
	Members   []MemberDescriptor
}

// Areas groups the snapshot's members by kind in AreaOrder. Every kind is
// present in the result, empty or not.
func (s ClassSnapshot) Areas() []Area {
	areas := make([]Area, 0, len(AreaOrder))
	for _, kind := range AreaOrder {
		areas = append(areas, Area{Kind: kind, Members: s.MembersOf(kind)})
	}

	return areas
}

// MembersOf returns the members of one kind in declaration order.
func (s ClassSnapshot) MembersOf(kind MemberKind) []MemberDescriptor {
	var out []MemberDescriptor

	for _, member := range s.Members {
		if member.Kind == kind {
			out = append(out, member)
		}
	}

	return out
}

// Count returns the number of members of one kind.
func (s ClassSnapshot) Count(kind MemberKind) int {
	n := 0

	for _, member := range s.Members {
		if member.Kind == kind {
			n++
		}
	}

	return n
}
