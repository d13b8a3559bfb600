package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/jstruct/internal/model"
)

func strPtr(s string) *string {
	return &s
}

func sampleSnapshot() m.ClassSnapshot {
	return m.ClassSnapshot{
		Revision:  1,
		ClassName: "Counter",
		BodyStart: 14,
		Members: []m.MemberDescriptor{
			{Kind: m.KindVariable, Name: "count", Modifiers: []string{"private"}, DeclaredType: "int", Initializer: strPtr("0"), StartOffset: 20, EndOffset: 38},
			{Kind: m.KindVariable, Name: "label", DeclaredType: "String", StartOffset: 43, EndOffset: 56},
			{Kind: m.KindMethod, Name: "inc", Modifiers: []string{"public"}, DeclaredType: "void", Parameters: []m.Parameter{{Type: "int", Name: "by"}}, StartOffset: 62, EndOffset: 100},
		},
	}
}

func TestBuildGrid_VisibleAreas(t *testing.T) {
	grid := BuildGrid(sampleSnapshot(), nil, nil)
	require.Equal(t, 2, grid.AreaCount())
	assert.Equal(t, m.KindVariable, grid.AreaKind(0))
	assert.Equal(t, m.KindMethod, grid.AreaKind(1))
	assert.Equal(t, 3, grid.RowCount(0), "two variables and the add row")
	assert.Equal(t, 2, grid.RowCount(1))
	assert.Equal(t, "Counter", grid.ClassName)

	pinned := BuildGrid(m.ClassSnapshot{ClassName: "Empty"}, []m.MemberKind{m.KindVariable, m.KindMethod}, nil)
	require.Equal(t, 2, pinned.AreaCount())
	assert.Equal(t, 1, pinned.RowCount(0))
	assert.True(t, IsAddRow(pinned, 0, 0))

	empty := BuildGrid(m.ClassSnapshot{}, nil, nil)
	assert.Equal(t, 0, empty.AreaCount())
	assert.Equal(t, -1, empty.AreaIndex(m.KindMethod))
}

func TestBuildGrid_VariableRows(t *testing.T) {
	grid := BuildGrid(sampleSnapshot(), nil, nil)

	withInit, ok := grid.Row(0, 0)
	require.True(t, ok)
	require.Len(t, withInit.Cells, 6)
	assert.Equal(t, CellChoice, withInit.Cells[0].Kind)
	assert.Equal(t, []string{"private"}, withInit.Modifiers())
	assert.False(t, grid.CellFocusable(0, 0, 1), "type is a label")
	assert.True(t, grid.CellFocusable(0, 0, 2))
	assert.True(t, grid.CellFocusable(0, 0, 4), "initializer is shown")
	assert.False(t, grid.CellFocusable(0, 0, 5), "reveal button is hidden")
	assert.True(t, withInit.InitializerVisible())

	name, _ := withInit.Value(RoleName)
	assert.Equal(t, "count", name)

	noInit, _ := grid.Row(0, 1)
	require.Len(t, noInit.Cells, 5)
	assert.False(t, noInit.InitializerVisible())
	assert.True(t, grid.CellActivatable(0, 1, 4))
	assert.False(t, grid.CellFocusable(0, 1, 3))

	add, _ := grid.Row(0, 2)
	require.True(t, add.IsAdd())
	require.Len(t, add.Cells, 7)
	assert.Equal(t, AccessOptions, add.Cells[0].Options)
	assert.Equal(t, StaticOptions, add.Cells[1].Options)
	assert.True(t, grid.CellActivatable(0, 2, 6))
}

func TestBuildGrid_MethodRows(t *testing.T) {
	grid := BuildGrid(sampleSnapshot(), nil, nil)

	row, _ := grid.Row(1, 0)
	params, ok := row.Value(RoleParameters)
	require.True(t, ok)
	assert.Equal(t, "(int by)", params)

	for i := range row.Cells {
		assert.False(t, grid.CellFocusable(1, 0, i))
	}

	add, _ := grid.Row(1, 1)
	require.Len(t, add.Cells, 1)
	assert.Equal(t, "Add Method", add.Cells[0].Value)
}

func TestBuildGrid_EnumAndClassRows(t *testing.T) {
	snap := m.ClassSnapshot{Members: []m.MemberDescriptor{
		{Kind: m.KindEnum, Name: "Color", Modifiers: []string{"public"}},
		{Kind: m.KindInnerClass, Name: "Node", Modifiers: []string{"private", "static"}},
	}}

	grid := BuildGrid(snap, nil, nil)
	require.Equal(t, 2, grid.AreaCount())

	node, _ := grid.Row(1, 0)
	require.Len(t, node.Cells, 3)
	assert.True(t, grid.CellFocusable(1, 0, 2))
	assert.False(t, grid.CellFocusable(1, 0, 0))

	add, _ := grid.Row(1, 1)
	assert.Equal(t, "Add Class", add.Cells[2].Value)

	addEnum, _ := grid.Row(0, 1)
	assert.Equal(t, "Add Enum", addEnum.Cells[2].Value)
}

func TestBuildGrid_Drafts(t *testing.T) {
	drafts := NewDrafts()
	drafts.Set(DraftKey{Kind: m.KindVariable, Row: 0}, 2, "total")
	drafts.Set(DraftKey{Kind: m.KindVariable, Row: AddRow}, 3, "flag")
	drafts.Reveal(DraftKey{Kind: m.KindVariable, Row: 1})

	grid := BuildGrid(sampleSnapshot(), nil, drafts)

	first, _ := grid.Row(0, 0)
	name, _ := first.Value(RoleName)
	assert.Equal(t, "total", name)

	second, _ := grid.Row(0, 1)
	assert.True(t, second.InitializerVisible())
	assert.False(t, grid.CellFocusable(0, 1, 4), "reveal button hides once revealed")

	add, _ := grid.Row(0, 2)
	addName, _ := add.Value(RoleName)
	assert.Equal(t, "flag", addName)

	drafts.ResetExisting()
	_, ok := drafts.Get(DraftKey{Kind: m.KindVariable, Row: 0}, 2)
	assert.False(t, ok)
	assert.False(t, drafts.Revealed(DraftKey{Kind: m.KindVariable, Row: 1}))
	v, ok := drafts.Get(DraftKey{Kind: m.KindVariable, Row: AddRow}, 3)
	assert.True(t, ok)
	assert.Equal(t, "flag", v)

	drafts.Clear(DraftKey{Kind: m.KindVariable, Row: AddRow})
	_, ok = drafts.Get(DraftKey{Kind: m.KindVariable, Row: AddRow}, 3)
	assert.False(t, ok)
}

func TestGrid_OutOfRange(t *testing.T) {
	grid := BuildGrid(sampleSnapshot(), nil, nil)
	_, ok := grid.Cell(0, 0, 99)
	assert.False(t, ok)
	_, ok = grid.Row(5, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, grid.CellCount(0, 10))
	assert.Equal(t, 0, grid.RowCount(7))
	assert.False(t, grid.CellFocusable(0, -1, 0))
}
