package domain

import (
	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// Key is an abstract navigation key, independent of the terminal toolkit.
type Key int

// Navigation keys.
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyTab
	KeyShiftTab
	KeyDelete
)

var keyNames = map[Key]string{
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyEnter:    "enter",
	KeyTab:      "tab",
	KeyShiftTab: "shift+tab",
	KeyDelete:   "delete",
}

func (k Key) String() string {
	return keyNames[k]
}

// Action is the side effect a transition asks the outline controller to perform.
type Action int

// Transition side effects.
const (
	ActionNone Action = iota
	// ActionCommitRow applies the edited cells of the focused row.
	ActionCommitRow
	// ActionDeleteRow deletes the member of the focused row.
	ActionDeleteRow
	// ActionOpenMethod hands control to the method editor.
	ActionOpenMethod
	// ActionActivateCell fires the focused button cell.
	ActionActivateCell
)

// Shape answers the structural questions the focus machine asks about the
// grid it navigates.
type Shape interface {
	AreaCount() int
	AreaKind(area int) m.MemberKind
	// RowCount includes the trailing add row.
	RowCount(area int) int
	CellCount(area, row int) int
	// CellFocusable reports whether TAB may stop on a cell: visible and not a label.
	CellFocusable(area, row, cell int) bool
	// CellActivatable reports whether the cell is a button.
	CellActivatable(area, row, cell int) bool
}

// IsAddRow reports whether row is the trailing add row of area.
func IsAddRow(shape Shape, area, row int) bool {
	return row == shape.RowCount(area)-1
}

// Transition applies key to state. It only ever moves the cursor; side
// effects are returned as an Action for the caller to perform. A state that
// does not address shape is an InvariantViolation.
func Transition(state m.FocusState, key Key, shape Shape) (m.FocusState, Action, error) {
	if shape.AreaCount() == 0 {
		return m.FocusState{}, ActionNone, nil
	}

	if err := ValidateFocus(state, shape); err != nil {
		return state, ActionNone, jerrors.AddContext(err, jerrors.CtxOperation, "transition "+key.String())
	}

	var (
		next   m.FocusState
		action Action
	)

	switch state.Level {
	case m.FocusArea:
		next, action = areaTransition(state, key, shape)
	case m.FocusRow:
		next, action = rowTransition(state, key, shape)
	case m.FocusColumn:
		next, action = columnTransition(state, key, shape)
	default:
		next = state
	}

	return next, action, nil
}

func areaTransition(state m.FocusState, key Key, shape Shape) (m.FocusState, Action) {
	switch key {
	case KeyUp, KeyShiftTab:
		state.AreaIndex = clamp(state.AreaIndex-1, 0, shape.AreaCount()-1)
	case KeyDown, KeyTab:
		state.AreaIndex = clamp(state.AreaIndex+1, 0, shape.AreaCount()-1)
	case KeyRight, KeyEnter:
		state.Level = m.FocusRow
		state.RowIndex = 0
		state.ColumnIndex = 0
	case KeyLeft, KeyDelete:
	}

	return state, ActionNone
}

func rowTransition(state m.FocusState, key Key, shape Shape) (m.FocusState, Action) {
	area := state.AreaIndex

	switch key {
	case KeyUp, KeyShiftTab:
		state.RowIndex = clamp(state.RowIndex-1, 0, shape.RowCount(area)-1)
	case KeyDown, KeyTab:
		state.RowIndex = clamp(state.RowIndex+1, 0, shape.RowCount(area)-1)
	case KeyLeft:
		state.Level = m.FocusArea
		state.RowIndex = 0
		state.ColumnIndex = 0
	case KeyRight, KeyEnter:
		if shape.AreaKind(area) == m.KindMethod {
			return state, ActionOpenMethod
		}

		col, ok := nextFocusable(shape, area, state.RowIndex, -1, 1)
		if !ok {
			return state, ActionNone
		}

		state.Level = m.FocusColumn
		state.ColumnIndex = col
	case KeyDelete:
		if IsAddRow(shape, area, state.RowIndex) {
			return state, ActionNone
		}

		return state, ActionDeleteRow
	}

	return state, ActionNone
}

func columnTransition(state m.FocusState, key Key, shape Shape) (m.FocusState, Action) {
	area, row := state.AreaIndex, state.RowIndex

	switch key {
	case KeyTab:
		if col, ok := nextFocusable(shape, area, row, state.ColumnIndex, 1); ok {
			state.ColumnIndex = col
		}
	case KeyShiftTab:
		if col, ok := nextFocusable(shape, area, row, state.ColumnIndex, -1); ok {
			state.ColumnIndex = col
		}
	case KeyEnter:
		if shape.CellActivatable(area, row, state.ColumnIndex) {
			return state, ActionActivateCell
		}

		if IsAddRow(shape, area, row) {
			return state, ActionNone
		}

		state.Level = m.FocusRow
		state.ColumnIndex = 0

		return state, ActionCommitRow
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyDelete:
		// LEFT deliberately stays: ascending here would drop the row's edits.
	}

	return state, ActionNone
}

// nextFocusable walks from cell in direction dir and returns the first
// focusable cell. There is no wrap-around.
func nextFocusable(shape Shape, area, row, cell, dir int) (int, bool) {
	n := shape.CellCount(area, row)

	for c := cell + dir; c >= 0 && c < n; c += dir {
		if shape.CellFocusable(area, row, c) {
			return c, true
		}
	}

	return cell, false
}

// Reconcile brings state back into the bounds of shape after the grid was
// rebuilt. focusedKind is the kind of the area that was focused before the
// rebuild: when that area is no longer visible the focus moves to the
// previous visible area (or the next one) at AREA level.
func Reconcile(state m.FocusState, focusedKind m.MemberKind, shape Shape) m.FocusState {
	count := shape.AreaCount()
	if count == 0 {
		return m.FocusState{}
	}

	area := -1

	for i := 0; i < count; i++ {
		if shape.AreaKind(i) == focusedKind {
			area = i
			break
		}
	}

	if area < 0 {
		return m.FocusState{Level: m.FocusArea, AreaIndex: nearestArea(focusedKind, shape)}
	}

	state.AreaIndex = area

	if state.Level == m.FocusArea {
		state.RowIndex, state.ColumnIndex = 0, 0
		return state
	}

	state.RowIndex = clamp(state.RowIndex, 0, shape.RowCount(area)-1)

	if state.Level == m.FocusColumn {
		cells := shape.CellCount(area, state.RowIndex)
		if state.ColumnIndex >= cells || !shape.CellFocusable(area, state.RowIndex, state.ColumnIndex) {
			state.Level = m.FocusRow
			state.ColumnIndex = 0
		}
	}

	if state.Level == m.FocusRow {
		state.ColumnIndex = 0
	}

	return state
}

// nearestArea returns the visible area preceding kind in AreaOrder, or the
// first one following it.
func nearestArea(kind m.MemberKind, shape Shape) int {
	pos, err := orderIndex(kind)
	if err != nil {
		return 0
	}

	best := -1

	for i := 0; i < shape.AreaCount(); i++ {
		p, _ := orderIndex(shape.AreaKind(i))
		if p < pos {
			best = i
		}
	}

	if best >= 0 {
		return best
	}

	for i := 0; i < shape.AreaCount(); i++ {
		if p, _ := orderIndex(shape.AreaKind(i)); p > pos {
			return i
		}
	}

	return 0
}

// ValidateFocus returns InvariantViolation when state does not address shape.
func ValidateFocus(state m.FocusState, shape Shape) error {
	count := shape.AreaCount()
	if count == 0 {
		if state != (m.FocusState{}) {
			return jerrors.Newf(jerrors.CodeInvariantViolation, "focus %s on an empty grid", state)
		}

		return nil
	}

	if state.AreaIndex < 0 || state.AreaIndex >= count {
		return jerrors.Newf(jerrors.CodeInvariantViolation, "focus %s: area out of range [0,%d)", state, count)
	}

	if state.Level == m.FocusArea {
		return nil
	}

	rows := shape.RowCount(state.AreaIndex)
	if state.RowIndex < 0 || state.RowIndex >= rows {
		return jerrors.Newf(jerrors.CodeInvariantViolation, "focus %s: row out of range [0,%d)", state, rows)
	}

	if state.Level == m.FocusColumn && !shape.CellFocusable(state.AreaIndex, state.RowIndex, state.ColumnIndex) {
		return jerrors.Newf(jerrors.CodeInvariantViolation, "focus %s: column is not addressable", state)
	}

	return nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}

	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
