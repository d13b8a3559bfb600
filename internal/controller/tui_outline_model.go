package controller

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/jstruct/internal/domain"
	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// editSession is the part of a domain.Session the outline scene drives.
type editSession interface {
	Path() m.Path
	Outline() domain.Outline
	Reload(ctx context.Context) error
}

type outlineKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	Delete    key.Binding
	Cycle     key.Binding
	Reload    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newOutlineKeyMap() outlineKeyMap {
	return outlineKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "back")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "open")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/commit")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		ShiftTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cell")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete")),
		Cycle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "cycle")),
		Reload:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k outlineKeyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Right, k.Enter, k.Tab, k.Cycle, k.Delete, k.Reload, k.Quit}
}

// outlineModel is the outline scene: it renders the grid and feeds keys to
// the focus machine. Operations that may touch the buffer run as commands;
// keys are ignored until their result arrives.
type outlineModel struct {
	ctx     context.Context
	session editSession
	outline domain.Outline
	keys    outlineKeyMap

	input    textinput.Model
	inputFor m.FocusState
	editing  bool

	method   methodModel
	inMethod bool

	busy     bool
	external bool
	status   string
	err      error
	width    int
	height   int
}

func newOutlineModel(ctx context.Context, session editSession) outlineModel {
	input := textinput.New()
	input.Prompt = ""

	om := outlineModel{
		ctx:     ctx,
		session: session,
		outline: session.Outline(),
		keys:    newOutlineKeyMap(),
		input:   input,
	}

	return om.syncInput()
}

func (om outlineModel) Init() tea.Cmd {
	return nil
}

func (om outlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		om.width = msg.Width
		om.height = msg.Height

		if om.inMethod {
			om.method = om.method.resize(msg.Width, msg.Height)
		}

		return om, nil

	case operationDoneMsg:
		return om.handleOperationDone(msg)

	case methodSavedMsg:
		return om.handleMethodSaved(msg)

	case reloadedMsg:
		om.busy = false
		om.err = msg.err

		if msg.err == nil {
			om.external = false
			om.status = "reloaded " + string(om.session.Path())
		}

		return om.syncInput(), nil

	case externalChangeMsg:
		om.external = true
		return om, nil

	case tea.KeyMsg:
		if key.Matches(msg, om.keys.ForceQuit) {
			return om, tea.Quit
		}

		if om.busy {
			return om, nil
		}

		if om.inMethod {
			return om.handleMethodKey(msg)
		}

		return om.handleKey(msg)
	}

	return om, nil
}

func (om outlineModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := om.outline.View()

	if om.editing && !om.isNavigation(msg) {
		return om.editText(msg, view.Focus)
	}

	switch {
	case key.Matches(msg, om.keys.Quit) && view.Focus.Level != m.FocusColumn:
		return om, tea.Quit
	case key.Matches(msg, om.keys.Reload):
		om.busy = true
		return om, om.reloadCmd()
	case key.Matches(msg, om.keys.Cycle):
		return om.cycleChoice(view), nil
	}

	k, ok := om.domainKey(msg)
	if !ok {
		return om, nil
	}

	om.status = ""
	om.err = nil

	if _, action, err := domain.Transition(view.Focus, k, view.Grid); err != nil || action == domain.ActionNone {
		_, err := om.outline.HandleKey(om.ctx, k)
		om.err = err

		return om.syncInput(), nil
	}

	om.busy = true

	return om, om.handleKeyCmd(k)
}

// isNavigation reports whether msg leaves the text cell being edited.
func (om outlineModel) isNavigation(msg tea.KeyMsg) bool {
	return key.Matches(msg, om.keys.Tab) || key.Matches(msg, om.keys.ShiftTab) || key.Matches(msg, om.keys.Enter) ||
		msg.Type == tea.KeyUp || msg.Type == tea.KeyDown || key.Matches(msg, om.keys.Reload)
}

func (om outlineModel) domainKey(msg tea.KeyMsg) (domain.Key, bool) {
	switch {
	case key.Matches(msg, om.keys.Up):
		return domain.KeyUp, true
	case key.Matches(msg, om.keys.Down):
		return domain.KeyDown, true
	case key.Matches(msg, om.keys.Left):
		return domain.KeyLeft, true
	case key.Matches(msg, om.keys.Right):
		return domain.KeyRight, true
	case key.Matches(msg, om.keys.Enter):
		return domain.KeyEnter, true
	case key.Matches(msg, om.keys.Tab):
		return domain.KeyTab, true
	case key.Matches(msg, om.keys.ShiftTab):
		return domain.KeyShiftTab, true
	case key.Matches(msg, om.keys.Delete):
		return domain.KeyDelete, true
	}

	return 0, false
}

func (om outlineModel) handleKeyCmd(k domain.Key) tea.Cmd {
	ctx, outline := om.ctx, om.outline

	return func() tea.Msg {
		event, err := outline.HandleKey(ctx, k)
		return operationDoneMsg{event: event, err: err}
	}
}

func (om outlineModel) reloadCmd() tea.Cmd {
	ctx, session := om.ctx, om.session

	return func() tea.Msg {
		return reloadedMsg{err: session.Reload(ctx)}
	}
}

func (om outlineModel) handleOperationDone(msg operationDoneMsg) (tea.Model, tea.Cmd) {
	om.busy = false
	om.err = msg.err

	switch msg.event.Type {
	case domain.EventOpenMethod:
		spec := om.outline.NewMethod()
		if msg.event.Member != nil {
			spec = om.outline.LoadMethod(*msg.event.Member)
		}

		om.method = newMethodModel(spec, msg.event.Member).resize(om.width, om.height)
		om.inMethod = true
	case domain.EventChanged:
		om.status = "applied"
	case domain.EventNone:
	}

	return om.syncInput(), nil
}

func (om outlineModel) handleMethodKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, om.method.keys.Back):
		om.inMethod = false
		return om.syncInput(), nil
	case key.Matches(msg, om.method.keys.Save):
		om.busy = true

		return om, saveMethodCmd(om.ctx, om.outline, om.method.original, om.method.spec())
	}

	var cmd tea.Cmd

	om.method, cmd = om.method.update(msg)

	return om, cmd
}

func saveMethodCmd(ctx context.Context, outline domain.Outline, original *m.MemberDescriptor, spec domain.MemberSpec) tea.Cmd {
	return func() tea.Msg {
		if original == nil {
			return methodSavedMsg{err: outline.AddMember(ctx, spec)}
		}

		_, err := outline.EditMethod(ctx, *original, spec)

		return methodSavedMsg{err: err}
	}
}

func (om outlineModel) handleMethodSaved(msg methodSavedMsg) (tea.Model, tea.Cmd) {
	om.busy = false

	// An ambiguous match is reported after the edit was applied.
	if msg.err != nil && !jerrors.IsCode(msg.err, jerrors.CodeAmbiguousMatch) {
		om.method.err = msg.err
		return om, nil
	}

	om.inMethod = false
	om.err = msg.err

	if msg.err == nil {
		om.status = "applied"
	}

	return om.syncInput(), nil
}

// editText forwards a key to the text input bound to the focused cell and
// records the new value as a draft.
func (om outlineModel) editText(msg tea.KeyMsg, focus m.FocusState) (tea.Model, tea.Cmd) {
	before := om.input.Value()

	var cmd tea.Cmd

	om.input, cmd = om.input.Update(msg)

	if value := om.input.Value(); value != before {
		om.err = om.outline.SetCell(focus.AreaIndex, focus.RowIndex, focus.ColumnIndex, value)
	}

	return om, cmd
}

func (om outlineModel) cycleChoice(view domain.OutlineView) outlineModel {
	focus := view.Focus
	if focus.Level != m.FocusColumn {
		return om
	}

	cell, ok := view.Grid.Cell(focus.AreaIndex, focus.RowIndex, focus.ColumnIndex)
	if !ok || cell.Kind != domain.CellChoice || len(cell.Options) == 0 {
		return om
	}

	next := cell.Options[0]

	for i, option := range cell.Options {
		if option == cell.Value {
			next = cell.Options[(i+1)%len(cell.Options)]
			break
		}
	}

	om.err = om.outline.SetCell(focus.AreaIndex, focus.RowIndex, focus.ColumnIndex, next)

	return om
}

// syncInput binds the text input to the focused cell when it is a text cell.
func (om outlineModel) syncInput() outlineModel {
	view := om.outline.View()
	focus := view.Focus

	cell, ok := view.Grid.Cell(focus.AreaIndex, focus.RowIndex, focus.ColumnIndex)
	if focus.Level != m.FocusColumn || !ok || cell.Kind != domain.CellText || !cell.Visible {
		om.editing = false
		om.input.Blur()

		return om
	}

	if !om.editing || om.inputFor != focus {
		om.input.SetValue(cell.Value)
		om.input.Placeholder = cell.Placeholder
		om.input.CursorEnd()
	}

	om.editing = true
	om.inputFor = focus
	om.input.Focus()

	return om
}

func (om outlineModel) View() string {
	if om.inMethod {
		return om.method.view(om.busy)
	}

	view := om.outline.View()

	editor := ""
	if om.editing {
		editor = cellFocusedStyle.Render(om.input.View())
	}

	body := gridRenderer{
		grid:      view.Grid,
		focus:     view.Focus,
		showFocus: true,
		editor:    editor,
	}.render()

	sections := []string{
		titleStyle.Render("class " + view.Grid.ClassName),
		pathStyle.Render(string(om.session.Path())),
		body,
	}

	if view.Stale {
		sections = append(sections, warnStyle.Render("outline may be out of date, press ctrl+r to reload"))
	}

	if om.external {
		sections = append(sections, warnStyle.Render("file changed on disk, press ctrl+r to reload"))
	}

	if om.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("error: %v", om.err)))
	} else if om.status != "" {
		sections = append(sections, labelStyle.Padding(0, 0, 0, 2).Render(om.status))
	}

	footer := helpLine(om.keys.help())
	if om.busy {
		footer = "working…"
	}

	sections = append(sections, footerStyle.Render(footer))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func helpLine(bindings []key.Binding) string {
	line := ""

	for i, b := range bindings {
		if i > 0 {
			line += " • "
		}

		line += b.Help().Key + " " + b.Help().Desc
	}

	return line
}
