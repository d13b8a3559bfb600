package adapter

import (
	"strings"
	"time"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
	"github.com/mouse-blink/jstruct/internal/observability"
)

// JavaParser turns Java source into the member snapshot of its first
// top-level class, interface or record.
type JavaParser interface {
	// Parse extracts the class members of src. The returned snapshot has no
	// revision; the caller stamps it.
	Parse(src []byte) (m.ClassSnapshot, error)
}

// TreeSitterJavaParser is the JavaParser backed by tree-sitter-java.
type TreeSitterJavaParser struct {
	lang *sitter.Language
}

// NewTreeSitterJavaParser constructs a TreeSitterJavaParser.
func NewTreeSitterJavaParser() *TreeSitterJavaParser {
	return &TreeSitterJavaParser{lang: sitter.NewLanguage(tree_sitter_java.Language())}
}

// Parse builds a syntax tree for src and extracts the class members.
func (p *TreeSitterJavaParser) Parse(src []byte) (m.ClassSnapshot, error) {
	started := time.Now()
	defer func() { observability.ParseDuration.Observe(time.Since(started).Seconds()) }()

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(p.lang); err != nil {
		return m.ClassSnapshot{}, jerrors.Wrap(err, jerrors.CodeInternal, "load java grammar")
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return m.ClassSnapshot{}, jerrors.New(jerrors.CodeInternal, "parse failed")
	}
	defer tree.Close()

	root := tree.RootNode()

	class := firstTypeDeclaration(root)
	if class == nil {
		return m.ClassSnapshot{}, jerrors.New(jerrors.CodeNotFound, "no top-level class declaration")
	}

	body := class.ChildByFieldName("body")
	if body == nil {
		return m.ClassSnapshot{}, jerrors.New(jerrors.CodeNotFound, "class declaration has no body")
	}

	snapshot := m.ClassSnapshot{
		ClassName: fieldText(class, "name", src),
		BodyStart: int(body.StartByte()),
	}

	var comments []span

	prevEnd := int(body.StartByte())

	for i := uint(0); i < body.ChildCount(); i++ {
		child := body.Child(i)

		if isComment(child) {
			comments = append(comments, span{start: int(child.StartByte()), end: int(child.EndByte())})
			continue
		}

		members := extractMembers(child, src)
		if start := attachedCommentStart(src, prevEnd, comments, int(child.StartByte())); start >= 0 {
			for j := range members {
				members[j].CommentStart = start
			}
		}

		snapshot.Members = append(snapshot.Members, members...)
		comments = comments[:0]
		prevEnd = int(child.EndByte())
	}

	return snapshot, nil
}

type span struct {
	start, end int
}

func isComment(node *sitter.Node) bool {
	switch node.Kind() {
	case "line_comment", "block_comment", "comment":
		return true
	}

	return false
}

// attachedCommentStart returns the start of the run of comments directly in
// front of a declaration starting at declStart, or -1. Comments separated
// from the declaration by a blank line, and a first comment that trails the
// code before it on the same line, are not attached.
func attachedCommentStart(src []byte, prevEnd int, comments []span, declStart int) int {
	start := -1
	next := declStart

	for i := len(comments) - 1; i >= 0; i-- {
		c := comments[i]

		gap := string(src[c.end:next])
		if strings.TrimSpace(gap) != "" || strings.Count(gap, "\n") > 1 {
			break
		}

		if i == 0 && !strings.Contains(string(src[prevEnd:c.start]), "\n") && strings.Contains(gap, "\n") {
			break
		}

		start = c.start
		next = c.start
	}

	return start
}

func firstTypeDeclaration(root *sitter.Node) *sitter.Node {
	for i := uint(0); i < root.ChildCount(); i++ {
		child := root.Child(i)
		switch child.Kind() {
		case "class_declaration", "interface_declaration", "record_declaration":
			return child
		}
	}

	return nil
}

func extractMembers(node *sitter.Node, src []byte) []m.MemberDescriptor {
	switch node.Kind() {
	case "field_declaration", "constant_declaration":
		return extractFields(node, src)
	case "method_declaration", "constructor_declaration", "compact_constructor_declaration":
		return []m.MemberDescriptor{extractMethod(node, src)}
	case "enum_declaration":
		return []m.MemberDescriptor{extractType(node, m.KindEnum, src)}
	case "class_declaration", "interface_declaration", "record_declaration", "annotation_type_declaration":
		return []m.MemberDescriptor{extractType(node, m.KindInnerClass, src)}
	}

	return nil
}

func newDescriptor(node *sitter.Node, kind m.MemberKind, src []byte) m.MemberDescriptor {
	d := m.MemberDescriptor{
		Kind:          kind,
		StartOffset:   int(node.StartByte()),
		EndOffset:     int(node.EndByte()),
		BodyStart:     -1,
		BodyEnd:       -1,
		DeclaratorEnd: -1,
	}

	d.Modifiers, d.ModStart, d.ModEnd = extractModifiers(node, src)

	return d
}

func extractFields(node *sitter.Node, src []byte) []m.MemberDescriptor {
	var out []m.MemberDescriptor

	typ := node.ChildByFieldName("type")

	for i := uint(0); i < node.ChildCount(); i++ {
		declarator := node.Child(i)
		if declarator.Kind() != "variable_declarator" {
			continue
		}

		d := newDescriptor(node, m.KindVariable, src)
		if typ != nil {
			d.DeclaredType = text(typ, src)
		}

		if name := declarator.ChildByFieldName("name"); name != nil {
			d.Name = text(name, src)
			d.NameStart, d.NameEnd = int(name.StartByte()), int(name.EndByte())
		}

		if dims := declarator.ChildByFieldName("dimensions"); dims != nil {
			d.DimensionsEnd = int(dims.EndByte())
		}

		if value := declarator.ChildByFieldName("value"); value != nil {
			init := text(value, src)
			d.Initializer = &init
		}

		d.DeclaratorEnd = int(declarator.EndByte())
		out = append(out, d)
	}

	return out
}

func extractMethod(node *sitter.Node, src []byte) m.MemberDescriptor {
	d := newDescriptor(node, m.KindMethod, src)

	if typ := node.ChildByFieldName("type"); typ != nil {
		d.DeclaredType = text(typ, src)
	}

	if name := node.ChildByFieldName("name"); name != nil {
		d.Name = text(name, src)
		d.NameStart, d.NameEnd = int(name.StartByte()), int(name.EndByte())
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := uint(0); i < params.NamedChildCount(); i++ {
			param := params.NamedChild(i)
			switch param.Kind() {
			case "formal_parameter", "spread_parameter", "receiver_parameter":
				d.Parameters = append(d.Parameters, splitParameter(text(param, src)))
			}
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		d.BodyStart, d.BodyEnd = int(body.StartByte()), int(body.EndByte())
		if d.BodyEnd-d.BodyStart >= 2 {
			d.BodyText = string(src[d.BodyStart+1 : d.BodyEnd-1])
		}
	}

	return d
}

func extractType(node *sitter.Node, kind m.MemberKind, src []byte) m.MemberDescriptor {
	d := newDescriptor(node, kind, src)

	if name := node.ChildByFieldName("name"); name != nil {
		d.Name = text(name, src)
		d.NameStart, d.NameEnd = int(name.StartByte()), int(name.EndByte())
	}

	if body := node.ChildByFieldName("body"); body != nil {
		d.BodyStart, d.BodyEnd = int(body.StartByte()), int(body.EndByte())
	}

	return d
}

// extractModifiers returns the keyword modifiers of a declaration and the
// range covering the keywords after the last annotation up to the next token.
func extractModifiers(node *sitter.Node, src []byte) ([]string, int, int) {
	var mods *sitter.Node

	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child.Kind() == "modifiers" {
			mods = child
			break
		}
	}

	if mods == nil {
		return nil, int(node.StartByte()), int(node.StartByte())
	}

	var out []string

	start := -1

	for i := uint(0); i < mods.ChildCount(); i++ {
		child := mods.Child(i)
		if strings.HasSuffix(child.Kind(), "comment") {
			continue
		}

		if strings.HasSuffix(child.Kind(), "annotation") {
			start = -1
			continue
		}

		out = append(out, text(child, src))

		if start < 0 {
			start = int(child.StartByte())
		}
	}

	end := int(mods.EndByte())
	if next := mods.NextSibling(); next != nil {
		end = int(next.StartByte())
	}

	if start < 0 {
		start = end
	}

	return out, start, end
}

func splitParameter(s string) m.Parameter {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return m.Parameter{Type: s}
	}

	return m.Parameter{Type: strings.Join(fields[:len(fields)-1], " "), Name: fields[len(fields)-1]}
}

func fieldText(node *sitter.Node, field string, src []byte) string {
	if child := node.ChildByFieldName(field); child != nil {
		return text(child, src)
	}

	return ""
}

func text(node *sitter.Node, src []byte) string {
	return string(src[node.StartByte():node.EndByte()])
}
