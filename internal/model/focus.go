package model

import "fmt"

// FocusLevel is the depth of the keyboard focus in the outline grid.
type FocusLevel int

const (
	// FocusArea selects a whole area.
	FocusArea FocusLevel = iota
	// FocusRow selects one row of the focused area.
	FocusRow
	// FocusColumn selects one cell of the focused row.
	FocusColumn
)

func (l FocusLevel) String() string {
	switch l {
	case FocusArea:
		return "AREA"
	case FocusRow:
		return "ROW"
	case FocusColumn:
		return "COLUMN"
	}

	return fmt.Sprintf("level(%d)", int(l))
}

// FocusState is the AREA -> ROW -> COLUMN keyboard cursor. AreaIndex
// addresses a visible area, RowIndex may address the trailing add row.
type FocusState struct {
	Level       FocusLevel
	AreaIndex   int
	RowIndex    int
	ColumnIndex int
}

func (f FocusState) String() string {
	return fmt.Sprintf("%s(area=%d row=%d col=%d)", f.Level, f.AreaIndex, f.RowIndex, f.ColumnIndex)
}
