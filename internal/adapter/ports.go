// Package adapter contains the source model, buffer and filesystem adapters
// the editing engine talks to.
package adapter

import (
	"context"

	m "github.com/mouse-blink/jstruct/internal/model"
)

// SourceModel is the read side of a parsed Java file. Every read reflects the
// last published parse, which may lag behind the buffer.
type SourceModel interface {
	// Snapshot returns the members of the class together with the revision
	// they were parsed from.
	Snapshot() (m.ClassSnapshot, error)

	// ClassMembers returns the members grouped by kind in AreaOrder.
	ClassMembers() []m.Area

	// ClassBodyStartOffset returns the offset of the class body's opening brace.
	ClassBodyStartOffset() int

	// MemberCount returns the number of parsed members of one kind.
	MemberCount(kind m.MemberKind) int

	// ParsedRevision returns the buffer revision of the last published parse.
	ParsedRevision() uint64
}

// BufferMutator is the write side of the text buffer.
type BufferMutator interface {
	// ApplyAtomic applies all edits as one transaction and returns the new
	// buffer revision. Edits refer to offsets of the text before the call.
	ApplyAtomic(edits []m.TextEdit) (uint64, error)

	// FullText returns the current buffer content.
	FullText() string

	// Revision returns the current buffer revision.
	Revision() uint64
}

// ReferenceIndex finds the textual references to a member.
type ReferenceIndex interface {
	// FindReferences returns the ranges of every reference to member in the
	// current buffer, excluding the declaration's own name.
	FindReferences(member m.MemberDescriptor) ([]m.Range, error)
}

// Saver persists the buffer.
type Saver interface {
	Save() error
}

// Document is a Java file opened for structured editing.
type Document interface {
	SourceModel
	BufferMutator
	Saver

	// Path returns the file the document was loaded from.
	Path() m.Path

	// Reload replaces the buffer with the file content on disk.
	Reload() error

	// Changed reports whether the file on disk differs from the last saved
	// or loaded content.
	Changed() (bool, error)

	// Run reparses the buffer in the background until ctx is done.
	Run(ctx context.Context) error
}
