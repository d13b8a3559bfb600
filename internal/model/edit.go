package model

// Range is a half-open byte range [Start, End) in a text buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// TextEdit is one primitive buffer mutation. An insert has Start == End, a
// delete has an empty Text.
type TextEdit struct {
	Start int
	End   int
	Text  string
}

// Insert builds an insertion edit.
func Insert(offset int, text string) TextEdit {
	return TextEdit{Start: offset, End: offset, Text: text}
}

// Replace builds a replacement edit.
func Replace(start, end int, text string) TextEdit {
	return TextEdit{Start: start, End: end, Text: text}
}

// Delete builds a deletion edit.
func Delete(start, end int) TextEdit {
	return TextEdit{Start: start, End: end}
}

// EditRequest describes one pending mutation issued by the outline
// controller. It is consumed synchronously by the buffer mutator.
type EditRequest interface {
	RequestID() string
	isEditRequest()
}

// InsertMember inserts rendered member text at an already resolved offset.
type InsertMember struct {
	ID     string
	Kind   MemberKind
	Offset int
	Text   string
}

// ReplaceRange replaces an arbitrary byte range.
type ReplaceRange struct {
	ID    string
	Start int
	End   int
	Text  string
}

// DeleteMember removes a member; Range is the (possibly widened) range to remove.
type DeleteMember struct {
	ID     string
	Member MemberDescriptor
	Range  Range
}

// RenameMember rewrites the declaration name and every reference.
type RenameMember struct {
	ID         string
	Member     MemberDescriptor
	NewName    string
	References []Range
}

func (r InsertMember) RequestID() string { return r.ID }
func (r ReplaceRange) RequestID() string { return r.ID }
func (r DeleteMember) RequestID() string { return r.ID }
func (r RenameMember) RequestID() string { return r.ID }

func (InsertMember) isEditRequest() {}
func (ReplaceRange) isEditRequest() {}
func (DeleteMember) isEditRequest() {}
func (RenameMember) isEditRequest() {}
