package domain

import (
	"strings"

	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// DefaultIndent is the column at which members are declared inside the class body.
const DefaultIndent = 4

// Modifier values that render to nothing.
const (
	ModifierNone      = "None"
	ModifierNonStatic = "non-static"
	ModifierStatic    = "static"
)

// MemberSpec is the structured form of a declaration as edited in the outline.
type MemberSpec struct {
	Kind        m.MemberKind
	Modifiers   []string
	Type        string   // variable type or method return type; empty for constructors
	Name        string   // required
	Parameters  []string // literal "<type> <name>" strings
	Initializer string   // variables only; blank means no initializer
	BodyLines   []string // methods only; de-indented body lines
	BodyIndent  int      // methods only; indentation of every body line
}

// Renderer turns member specs back into source text.
type Renderer struct {
	indent int
}

// NewRenderer returns a Renderer placing members at the given indentation.
func NewRenderer(indent int) Renderer {
	if indent < 0 {
		indent = 0
	}

	return Renderer{indent: indent}
}

// Indent returns the member indentation.
func (r Renderer) Indent() int {
	return r.indent
}

// Separator returns the text put in front of a member inserted after the
// previous declaration: one line break for variables, a blank line otherwise.
func (r Renderer) Separator(kind m.MemberKind) string {
	pad := strings.Repeat(" ", r.indent)
	if kind == m.KindVariable {
		return "\n" + pad
	}

	return "\n\n" + pad
}

// RenderMember renders a full declaration without leading separator.
func (r Renderer) RenderMember(spec MemberSpec) (string, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return "", jerrors.Newf(jerrors.CodeInvariantViolation, "%s name must not be blank", spec.Kind)
	}

	var b strings.Builder

	b.WriteString(RenderModifiers(spec.Modifiers))

	switch spec.Kind {
	case m.KindVariable:
		typ := strings.TrimSpace(spec.Type)
		if typ == "" {
			return "", jerrors.Newf(jerrors.CodeInvariantViolation, "variable %s needs a type", name)
		}

		b.WriteString(typ + " " + name)
		b.WriteString(RenderInitializer(spec.Initializer))
		b.WriteString(";")
	case m.KindMethod:
		if typ := strings.TrimSpace(spec.Type); typ != "" {
			b.WriteString(typ + " ")
		}

		b.WriteString(name + "(" + RenderParameters(spec.Parameters) + ") ")
		b.WriteString("{" + r.RenderMethodBody(spec.BodyLines, spec.BodyIndent) + "}")
	case m.KindEnum:
		b.WriteString("enum " + name + " {\n" + strings.Repeat(" ", r.indent) + "}")
	case m.KindInnerClass:
		b.WriteString("class " + name + " {\n" + strings.Repeat(" ", r.indent) + "}")
	default:
		return "", jerrors.Newf(jerrors.CodeInvariantViolation, "unknown member kind %s", spec.Kind)
	}

	return b.String(), nil
}

// RenderModifiers joins the selected modifiers in order, each followed by a
// space. "None" and "non-static" selections are dropped.
func RenderModifiers(modifiers []string) string {
	var b strings.Builder

	for _, mod := range modifiers {
		mod = strings.TrimSpace(mod)
		if mod == "" || mod == ModifierNone || mod == ModifierNonStatic {
			continue
		}

		b.WriteString(mod + " ")
	}

	return b.String()
}

// RenderParameters joins non-empty parameters with ", ".
func RenderParameters(params []string) string {
	out := make([]string, 0, len(params))

	for _, p := range params {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, ", ")
}

// RenderInitializer returns " = <value>" or "" when value is blank.
func RenderInitializer(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	return " = " + value
}

// RenderMethodBody renders the interior of a method body (the caller adds the
// braces): a leading line break, every line prefixed with indent spaces, and
// a trailing line that puts the closing brace at member indentation.
func (r Renderer) RenderMethodBody(lines []string, indent int) string {
	if indent < 0 {
		indent = 0
	}

	pad := strings.Repeat(" ", indent)

	var b strings.Builder

	b.WriteString("\n")

	for _, line := range lines {
		line = NormalizeTabs(line)
		if line != "" {
			b.WriteString(pad + line)
		}

		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", r.indent))

	return b.String()
}

// LoadMethodBody reverses RenderMethodBody for display: body is the text
// between the braces. The leading and trailing whitespace-only lines are
// dropped and every line is de-indented by the indentation of the first
// non-blank line, which is returned so the next write-back reuses it.
// defaultIndent is returned when the body has no non-blank line.
func LoadMethodBody(body string, defaultIndent int) ([]string, int) {
	lines := strings.Split(NormalizeTabs(body), "\n")

	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			indent = len(line) - len(strings.TrimLeft(line, " "))
			break
		}
	}

	if indent < 0 {
		return lines, defaultIndent
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = deindent(line, indent)
	}

	return out, indent
}

// NormalizeTabs replaces every tab with four spaces.
func NormalizeTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

// SpecFromDescriptor converts a parsed member into an editable spec.
func SpecFromDescriptor(d m.MemberDescriptor, defaultIndent int) MemberSpec {
	spec := MemberSpec{
		Kind:        d.Kind,
		Modifiers:   append([]string(nil), d.Modifiers...),
		Type:        d.DeclaredType,
		Name:        d.Name,
		Parameters:  d.ParameterStrings(),
		Initializer: d.InitializerText(),
	}

	if d.Kind == m.KindMethod {
		spec.BodyLines, spec.BodyIndent = LoadMethodBody(d.BodyText, defaultIndent)
	}

	return spec
}

func deindent(line string, n int) string {
	i := 0
	for i < n && i < len(line) && line[i] == ' ' {
		i++
	}

	return line[i:]
}
