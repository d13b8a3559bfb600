package domain

import (
	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// ResolveInsertOffset returns the offset at which a new member of kind target
// is inserted: the end of the last member of the first non-empty area at or
// before target in AreaOrder, or just past the class body's opening brace.
func ResolveInsertOffset(areas []m.Area, target m.MemberKind, bodyStart int) (int, error) {
	pos, err := orderIndex(target)
	if err != nil {
		return -1, err
	}

	if err := validateAreas(areas, bodyStart); err != nil {
		return -1, err
	}

	return lastEndFrom(areas, pos, bodyStart), nil
}

// ResolveInsertOffsetAt returns the offset at which a member of kind target
// must be inserted so that it becomes the member at index position of its
// area. Position 0 falls back to the earlier areas like ResolveInsertOffset.
func ResolveInsertOffsetAt(areas []m.Area, target m.MemberKind, position, bodyStart int) (int, error) {
	pos, err := orderIndex(target)
	if err != nil {
		return -1, err
	}

	if err := validateAreas(areas, bodyStart); err != nil {
		return -1, err
	}

	members := membersOfKind(areas, target)
	if position < 0 || position > len(members) {
		return -1, jerrors.Newf(jerrors.CodeInvariantViolation, "insert position %d outside %s area of %d members", position, target, len(members))
	}

	if position > 0 {
		return members[position-1].EndOffset, nil
	}

	return lastEndFrom(areas, pos-1, bodyStart), nil
}

// ResolveDeleteRange returns the member's own declaration range. Callers
// widen it with WidenDeleteRange.
func ResolveDeleteRange(member m.MemberDescriptor) (m.Range, error) {
	if member.StartOffset < 0 || member.EndOffset < member.StartOffset {
		return m.Range{}, jerrors.Newf(jerrors.CodeInvariantViolation, "invalid range [%d,%d) for %s", member.StartOffset, member.EndOffset, member.Name)
	}

	return member.Range(), nil
}

// WidenDeleteRange extends r over the indentation in front of a declaration
// that starts its own line and over exactly one trailing line break. A blank
// line directly above the declaration goes with it, undoing the blank line
// an insertion separator adds.
func WidenDeleteRange(text string, r m.Range) m.Range {
	start := r.Start
	for start > 0 && isBlank(text[start-1]) {
		start--
	}

	if start > 0 && text[start-1] != '\n' {
		start = r.Start
	} else if start > 0 {
		start = blankLineAbove(text, start)
	}

	end := r.End
	for end < len(text) && isBlank(text[end]) {
		end++
	}

	if end < len(text) && text[end] == '\r' {
		end++
	}

	if end < len(text) && text[end] == '\n' {
		end++
	} else {
		end = r.End
	}

	return m.Range{Start: start, End: end}
}

// blankLineAbove returns the start of the whitespace-only line ending right
// before lineStart, or lineStart when the line above has content.
func blankLineAbove(text string, lineStart int) int {
	q := lineStart - 1
	if q > 0 && text[q-1] == '\r' {
		q--
	}

	for q > 0 && isBlank(text[q-1]) {
		q--
	}

	if q > 0 && text[q-1] == '\n' {
		return q
	}

	return lineStart
}

// SeparatorRange extends r backwards over the whitespace that separates the
// declaration from whatever precedes it. Removing it and reinserting the
// member with its insertion separator leaves the text unchanged.
func SeparatorRange(text string, r m.Range) m.Range {
	start := r.Start
	for start > 0 && isSpace(text[start-1]) {
		start--
	}

	return m.Range{Start: start, End: r.End}
}

func orderIndex(kind m.MemberKind) (int, error) {
	for i, k := range m.AreaOrder {
		if k == kind {
			return i, nil
		}
	}

	return -1, jerrors.Newf(jerrors.CodeInvariantViolation, "unknown member kind %s", kind)
}

func validateAreas(areas []m.Area, bodyStart int) error {
	if bodyStart < 0 {
		return jerrors.Newf(jerrors.CodeInvariantViolation, "negative class body offset %d", bodyStart)
	}

	for _, area := range areas {
		prev := bodyStart

		for i, member := range area.Members {
			if member.StartOffset < prev {
				err := jerrors.Newf(jerrors.CodeInvariantViolation, "member %d of %s area is out of order", i, area.Kind)

				return jerrors.AddContext(err, jerrors.CtxOffset, member.StartOffset)
			}

			prev = member.StartOffset
		}
	}

	return nil
}

func membersOfKind(areas []m.Area, kind m.MemberKind) []m.MemberDescriptor {
	for _, area := range areas {
		if area.Kind == kind {
			return area.Members
		}
	}

	return nil
}

// lastEndFrom walks AreaOrder backwards from index pos.
func lastEndFrom(areas []m.Area, pos, bodyStart int) int {
	for i := pos; i >= 0; i-- {
		members := membersOfKind(areas, m.AreaOrder[i])
		if len(members) > 0 {
			return members[len(members)-1].EndOffset
		}
	}

	return bodyStart + 1
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
