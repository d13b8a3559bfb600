package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/jstruct/internal/domain"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// Header fields of the method editor, followed by the body.
const (
	fieldModifiers = iota
	fieldType
	fieldName
	fieldParameters
	fieldBody
	fieldCount
)

var fieldLabels = [...]string{"Modifiers", "Return type", "Name", "Parameters"}

type methodKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Save key.Binding
	Back key.Binding
}

func newMethodKeyMap() methodKeyMap {
	return methodKeyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// methodModel is the method editor scene. original is nil for a new method.
type methodModel struct {
	original *m.MemberDescriptor
	indent   int
	keys     methodKeyMap

	inputs [fieldBody]textinput.Model
	body   textarea.Model
	focus  int
	err    error
}

func newMethodModel(spec domain.MemberSpec, original *m.MemberDescriptor) methodModel {
	mm := methodModel{
		original: original,
		indent:   spec.BodyIndent,
		keys:     newMethodKeyMap(),
	}

	values := [fieldBody]string{
		strings.Join(spec.Modifiers, " "),
		spec.Type,
		spec.Name,
		strings.Join(spec.Parameters, ", "),
	}

	for i := range mm.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = "<" + fieldLabels[i] + ">"
		input.SetValue(values[i])
		mm.inputs[i] = input
	}

	mm.body = textarea.New()
	mm.body.ShowLineNumbers = false
	mm.body.SetValue(strings.Join(spec.BodyLines, "\n"))

	return mm.focusField(fieldName)
}

func (mm methodModel) resize(width, height int) methodModel {
	if width > 4 {
		mm.body.SetWidth(width - 4)
	}

	if height > 14 {
		mm.body.SetHeight(height - 14)
	}

	return mm
}

func (mm methodModel) focusField(field int) methodModel {
	mm.focus = field

	for i := range mm.inputs {
		if i == field {
			mm.inputs[i].Focus()
		} else {
			mm.inputs[i].Blur()
		}
	}

	if field == fieldBody {
		mm.body.Focus()
	} else {
		mm.body.Blur()
	}

	return mm
}

func (mm methodModel) update(msg tea.KeyMsg) (methodModel, tea.Cmd) {
	switch {
	case key.Matches(msg, mm.keys.Next):
		return mm.focusField((mm.focus + 1) % fieldCount), nil
	case key.Matches(msg, mm.keys.Prev):
		return mm.focusField((mm.focus + fieldCount - 1) % fieldCount), nil
	}

	var cmd tea.Cmd

	if mm.focus == fieldBody {
		mm.body, cmd = mm.body.Update(msg)
	} else {
		mm.inputs[mm.focus], cmd = mm.inputs[mm.focus].Update(msg)
	}

	return mm, cmd
}

// spec collects the fields into the declaration to write.
func (mm methodModel) spec() domain.MemberSpec {
	spec := domain.MemberSpec{
		Kind:       m.KindMethod,
		Modifiers:  strings.Fields(mm.inputs[fieldModifiers].Value()),
		Type:       strings.TrimSpace(mm.inputs[fieldType].Value()),
		Name:       strings.TrimSpace(mm.inputs[fieldName].Value()),
		Parameters: splitParameters(mm.inputs[fieldParameters].Value()),
		BodyIndent: mm.indent,
	}

	if body := mm.body.Value(); strings.TrimSpace(body) != "" {
		spec.BodyLines = strings.Split(body, "\n")
	}

	return spec
}

// splitParameters splits a parameter list on the commas that are not inside
// type arguments.
func splitParameters(s string) []string {
	var (
		out   []string
		depth int
		start int
	)

	flush := func(end int) {
		if p := strings.TrimSpace(s[start:end]); p != "" {
			out = append(out, p)
		}
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}

	flush(len(s))

	return out
}

func (mm methodModel) view(busy bool) string {
	title := "New method"
	if mm.original != nil {
		title = "Method " + mm.original.Name
	}

	sections := []string{titleStyle.Render(title)}

	for i, input := range mm.inputs {
		label := fmt.Sprintf("%-12s", fieldLabels[i])
		if i == mm.focus {
			label = areaFocusedStyle.Render(label)
		} else {
			label = areaStyle.Render(label)
		}

		sections = append(sections, "  "+label+" "+input.View())
	}

	bodyLabel := areaStyle.Render("Body")
	if mm.focus == fieldBody {
		bodyLabel = areaFocusedStyle.Render("Body")
	}

	sections = append(sections, "", "  "+bodyLabel, lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(mm.body.View()))

	if mm.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("error: %v", mm.err)))
	}

	footer := helpLine([]key.Binding{mm.keys.Next, mm.keys.Prev, mm.keys.Save, mm.keys.Back})
	if busy {
		footer = "working…"
	}

	sections = append(sections, footerStyle.Render(footer))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
