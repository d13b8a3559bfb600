package domain

import (
	"strings"

	m "github.com/mouse-blink/jstruct/internal/model"
)

// CellKind is the widget a cell is edited with.
type CellKind int

const (
	CellLabel CellKind = iota
	CellText
	CellChoice
	CellButton
)

// CellRole tells the controller what a cell's value means.
type CellRole int

const (
	RoleModifier CellRole = iota
	RoleType
	RoleName
	RoleEquals
	RoleInitializer
	RoleRevealInitializer
	RoleParameters
	RoleAdd
)

// Option lists offered by choice cells.
var (
	VariableModifierOptions = []string{"public", "protected", "private", "static", "final", "transient", "volatile", ModifierNone}
	AccessOptions           = []string{"private", "protected", "public", ModifierNone}
	StaticOptions           = []string{ModifierNonStatic, ModifierStatic}
)

// InitializerPlaceholder is shown in a revealed, still empty initializer cell.
const InitializerPlaceholder = "<Initial Value>"

// Cell is one addressable column of a row.
type Cell struct {
	Kind        CellKind
	Role        CellRole
	Value       string
	Options     []string
	Visible     bool
	Placeholder string
}

// Focusable reports whether keyboard focus may rest on the cell.
func (c Cell) Focusable() bool {
	return c.Visible && c.Kind != CellLabel
}

// Row is a member row or, when Member is nil, the trailing add row.
type Row struct {
	Member *m.MemberDescriptor
	Cells  []Cell
}

// IsAdd reports whether the row is the add row.
func (r Row) IsAdd() bool {
	return r.Member == nil
}

// Value returns the value of the first cell with role.
func (r Row) Value(role CellRole) (string, bool) {
	for _, c := range r.Cells {
		if c.Role == role {
			return c.Value, true
		}
	}

	return "", false
}

// Modifiers returns the values of the modifier cells in order.
func (r Row) Modifiers() []string {
	var out []string

	for _, c := range r.Cells {
		if c.Role == RoleModifier {
			out = append(out, c.Value)
		}
	}

	return out
}

// InitializerVisible reports whether the row shows an initializer cell.
func (r Row) InitializerVisible() bool {
	for _, c := range r.Cells {
		if c.Role == RoleInitializer {
			return c.Visible
		}
	}

	return false
}

// GridArea is one visible area of the outline.
type GridArea struct {
	Kind m.MemberKind
	Rows []Row
}

// Grid is the pure, rebuilt view of a class snapshot that the host renders
// and the focus machine navigates.
type Grid struct {
	ClassName string
	Areas     []GridArea
}

// AddRow is the draft row index used for an area's add row.
const AddRow = -1

// DraftKey identifies a row across rebuilds: members by their index in the
// area, the add row by AddRow.
type DraftKey struct {
	Kind m.MemberKind
	Row  int
}

// Drafts holds cell values typed by the user but not yet committed.
type Drafts struct {
	values   map[DraftKey]map[int]string
	revealed map[DraftKey]bool
}

// NewDrafts returns an empty draft set.
func NewDrafts() *Drafts {
	return &Drafts{values: map[DraftKey]map[int]string{}, revealed: map[DraftKey]bool{}}
}

// Set records value for a cell.
func (d *Drafts) Set(key DraftKey, cell int, value string) {
	if d.values[key] == nil {
		d.values[key] = map[int]string{}
	}

	d.values[key][cell] = value
}

// Get returns the draft value of a cell.
func (d *Drafts) Get(key DraftKey, cell int) (string, bool) {
	if d == nil {
		return "", false
	}

	v, ok := d.values[key][cell]

	return v, ok
}

// Reveal marks the initializer of a variable row as shown.
func (d *Drafts) Reveal(key DraftKey) {
	d.revealed[key] = true
}

// Revealed reports whether Reveal was called for key.
func (d *Drafts) Revealed(key DraftKey) bool {
	return d != nil && d.revealed[key]
}

// Clear forgets every draft of one row.
func (d *Drafts) Clear(key DraftKey) {
	delete(d.values, key)
	delete(d.revealed, key)
}

// ResetExisting forgets the drafts of member rows; add rows survive.
func (d *Drafts) ResetExisting() {
	for key := range d.values {
		if key.Row != AddRow {
			delete(d.values, key)
		}
	}

	for key := range d.revealed {
		if key.Row != AddRow {
			delete(d.revealed, key)
		}
	}
}

// BuildGrid lays out the visible areas of snapshot: the pinned kinds plus
// every non-empty area, in AreaOrder, each followed by its add row.
func BuildGrid(snapshot m.ClassSnapshot, pinned []m.MemberKind, drafts *Drafts) Grid {
	grid := Grid{ClassName: snapshot.ClassName}

	for _, area := range snapshot.Areas() {
		if len(area.Members) == 0 && !containsKind(pinned, area.Kind) {
			continue
		}

		ga := GridArea{Kind: area.Kind}

		for i := range area.Members {
			member := area.Members[i]
			key := DraftKey{Kind: area.Kind, Row: i}
			ga.Rows = append(ga.Rows, applyDrafts(memberRow(member, drafts.Revealed(key)), key, drafts))
		}

		key := DraftKey{Kind: area.Kind, Row: AddRow}
		ga.Rows = append(ga.Rows, applyDrafts(addRow(area.Kind), key, drafts))

		grid.Areas = append(grid.Areas, ga)
	}

	return grid
}

func memberRow(member m.MemberDescriptor, revealed bool) Row {
	row := Row{Member: &member}

	switch member.Kind {
	case m.KindVariable:
		for _, mod := range member.Modifiers {
			row.Cells = append(row.Cells, Cell{Kind: CellChoice, Role: RoleModifier, Value: mod, Options: VariableModifierOptions, Visible: true})
		}

		hasInit := member.HasInitializer() || revealed
		row.Cells = append(row.Cells,
			Cell{Kind: CellLabel, Role: RoleType, Value: member.DeclaredType, Visible: true},
			Cell{Kind: CellText, Role: RoleName, Value: member.Name, Visible: true},
			Cell{Kind: CellLabel, Role: RoleEquals, Value: "=", Visible: hasInit},
			Cell{Kind: CellText, Role: RoleInitializer, Value: member.InitializerText(), Visible: hasInit, Placeholder: InitializerPlaceholder},
			Cell{Kind: CellButton, Role: RoleRevealInitializer, Value: "Set Initial Value", Visible: !hasInit},
		)
	case m.KindMethod:
		for _, mod := range member.Modifiers {
			row.Cells = append(row.Cells, Cell{Kind: CellLabel, Role: RoleModifier, Value: mod, Visible: true})
		}

		row.Cells = append(row.Cells,
			Cell{Kind: CellLabel, Role: RoleType, Value: member.DeclaredType, Visible: !member.IsConstructor()},
			Cell{Kind: CellLabel, Role: RoleName, Value: member.Name, Visible: true},
			Cell{Kind: CellLabel, Role: RoleParameters, Value: "(" + strings.Join(member.ParameterStrings(), ", ") + ")", Visible: true},
		)
	default:
		for _, mod := range member.Modifiers {
			row.Cells = append(row.Cells, Cell{Kind: CellLabel, Role: RoleModifier, Value: mod, Visible: true})
		}

		row.Cells = append(row.Cells, Cell{Kind: CellText, Role: RoleName, Value: member.Name, Visible: true})
	}

	return row
}

func addRow(kind m.MemberKind) Row {
	switch kind {
	case m.KindVariable:
		return Row{Cells: []Cell{
			{Kind: CellChoice, Role: RoleModifier, Value: AccessOptions[0], Options: AccessOptions, Visible: true},
			{Kind: CellChoice, Role: RoleModifier, Value: StaticOptions[0], Options: StaticOptions, Visible: true},
			{Kind: CellText, Role: RoleType, Visible: true, Placeholder: "<Type>"},
			{Kind: CellText, Role: RoleName, Visible: true, Placeholder: "<Name>"},
			{Kind: CellLabel, Role: RoleEquals, Value: "=", Visible: true},
			{Kind: CellText, Role: RoleInitializer, Visible: true, Placeholder: InitializerPlaceholder},
			{Kind: CellButton, Role: RoleAdd, Value: "Add Variable", Visible: true},
		}}
	case m.KindMethod:
		return Row{Cells: []Cell{
			{Kind: CellButton, Role: RoleAdd, Value: "Add Method", Visible: true},
		}}
	default:
		label := "Add Enum"
		if kind == m.KindInnerClass {
			label = "Add Class"
		}

		return Row{Cells: []Cell{
			{Kind: CellChoice, Role: RoleModifier, Value: AccessOptions[0], Options: AccessOptions, Visible: true},
			{Kind: CellText, Role: RoleName, Visible: true, Placeholder: "<Name>"},
			{Kind: CellButton, Role: RoleAdd, Value: label, Visible: true},
		}}
	}
}

func applyDrafts(row Row, key DraftKey, drafts *Drafts) Row {
	for i := range row.Cells {
		if v, ok := drafts.Get(key, i); ok {
			row.Cells[i].Value = v
		}
	}

	return row
}

func containsKind(kinds []m.MemberKind, kind m.MemberKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}

	return false
}

// AreaCount implements Shape.
func (g Grid) AreaCount() int {
	return len(g.Areas)
}

// AreaKind implements Shape.
func (g Grid) AreaKind(area int) m.MemberKind {
	return g.Areas[area].Kind
}

// RowCount implements Shape.
func (g Grid) RowCount(area int) int {
	if area < 0 || area >= len(g.Areas) {
		return 0
	}

	return len(g.Areas[area].Rows)
}

// CellCount implements Shape.
func (g Grid) CellCount(area, row int) int {
	r, ok := g.Row(area, row)
	if !ok {
		return 0
	}

	return len(r.Cells)
}

// CellFocusable implements Shape.
func (g Grid) CellFocusable(area, row, cell int) bool {
	c, ok := g.Cell(area, row, cell)
	return ok && c.Focusable()
}

// CellActivatable implements Shape.
func (g Grid) CellActivatable(area, row, cell int) bool {
	c, ok := g.Cell(area, row, cell)
	return ok && c.Visible && c.Kind == CellButton
}

// Row returns one row of the grid.
func (g Grid) Row(area, row int) (Row, bool) {
	if area < 0 || area >= len(g.Areas) || row < 0 || row >= len(g.Areas[area].Rows) {
		return Row{}, false
	}

	return g.Areas[area].Rows[row], true
}

// Cell returns one cell of the grid.
func (g Grid) Cell(area, row, cell int) (Cell, bool) {
	r, ok := g.Row(area, row)
	if !ok || cell < 0 || cell >= len(r.Cells) {
		return Cell{}, false
	}

	return r.Cells[cell], true
}

// AreaIndex returns the visible index of kind, or -1.
func (g Grid) AreaIndex(kind m.MemberKind) int {
	for i, a := range g.Areas {
		if a.Kind == kind {
			return i
		}
	}

	return -1
}
