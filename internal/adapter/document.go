package adapter

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
	"github.com/mouse-blink/jstruct/internal/observability"
)

// DefaultReparseDelay is how long the background parser waits after the last
// buffer change before it reparses.
const DefaultReparseDelay = 20 * time.Millisecond

// DocumentOption configures a JavaDocument.
type DocumentOption func(*JavaDocument)

// WithSynchronousParse makes every ApplyAtomic reparse before it returns.
func WithSynchronousParse() DocumentOption {
	return func(d *JavaDocument) {
		d.synchronous = true
	}
}

// WithReparseDelay sets the debounce delay of the background parser.
func WithReparseDelay(delay time.Duration) DocumentOption {
	return func(d *JavaDocument) {
		if delay >= 0 {
			d.delay = delay
		}
	}
}

// WithLogger sets the document logger.
func WithLogger(log *slog.Logger) DocumentOption {
	return func(d *JavaDocument) {
		if log != nil {
			d.log = log
		}
	}
}

// JavaDocument is a Java source file held in memory. Mutations bump the
// buffer revision immediately; the parsed member snapshot catches up when the
// background parser (Run) reparses, or at once in synchronous mode.
type JavaDocument struct {
	path   m.Path
	fs     SourceFSAdapter
	parser JavaParser
	log    *slog.Logger

	delay       time.Duration
	synchronous bool

	mu        sync.RWMutex
	text      string
	revision  uint64
	savedHash string

	snapMu    sync.RWMutex
	snapshot  m.ClassSnapshot
	parsedRev uint64
	parseErr  error

	dirty chan struct{}
	group singleflight.Group
}

var _ Document = (*JavaDocument)(nil)

// OpenJavaDocument loads path through fs and parses it once.
func OpenJavaDocument(path m.Path, fs SourceFSAdapter, parser JavaParser, opts ...DocumentOption) (*JavaDocument, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, jerrors.AddContext(jerrors.Wrap(err, jerrors.CodeInternal, "read source file"), jerrors.CtxPath, string(path))
	}

	d := newJavaDocument(path, fs, parser, string(content), opts...)
	d.savedHash = HashBytes(content)

	if err := d.Reparse(); err != nil {
		return nil, jerrors.AddContext(err, jerrors.CtxPath, string(path))
	}

	return d, nil
}

// NewJavaDocumentFromText creates an in-memory document that is not backed
// by a file. Save and Reload fail on it.
func NewJavaDocumentFromText(text string, parser JavaParser, opts ...DocumentOption) (*JavaDocument, error) {
	d := newJavaDocument("", nil, parser, text, opts...)

	if err := d.Reparse(); err != nil {
		return nil, err
	}

	return d, nil
}

func newJavaDocument(path m.Path, fs SourceFSAdapter, parser JavaParser, text string, opts ...DocumentOption) *JavaDocument {
	d := &JavaDocument{
		path:     path,
		fs:       fs,
		parser:   parser,
		log:      slog.Default(),
		delay:    DefaultReparseDelay,
		text:     text,
		revision: 1,
		dirty:    make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Path returns the file the document was loaded from.
func (d *JavaDocument) Path() m.Path {
	return d.path
}

// FullText returns the current buffer content.
func (d *JavaDocument) FullText() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.text
}

// Revision returns the current buffer revision.
func (d *JavaDocument) Revision() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.revision
}

// ApplyAtomic applies edits as one transaction. Offsets refer to the text
// before the call; overlapping edits are rejected and nothing is applied.
func (d *JavaDocument) ApplyAtomic(edits []m.TextEdit) (uint64, error) {
	d.mu.Lock()

	ordered, err := orderEdits(edits, len(d.text))
	if err != nil {
		d.mu.Unlock()
		return 0, err
	}

	text := d.text
	for i := len(ordered) - 1; i >= 0; i-- {
		e := ordered[i]
		text = text[:e.Start] + e.Text + text[e.End:]
	}

	d.text = text
	d.revision++
	rev := d.revision

	d.mu.Unlock()

	observability.BufferTransactionsTotal.Inc()
	d.log.Debug("buffer transaction applied", "edits", len(edits), "revision", rev)

	if d.synchronous {
		if err := d.Reparse(); err != nil {
			d.log.Warn("reparse failed", "revision", rev, "error", err)
		}

		return rev, nil
	}

	select {
	case d.dirty <- struct{}{}:
	default:
	}

	return rev, nil
}

// orderEdits validates edits against a text of length n and sorts them by
// start offset. Inserts at the same offset keep their relative order.
func orderEdits(edits []m.TextEdit, n int) ([]m.TextEdit, error) {
	ordered := make([]m.TextEdit, len(edits))
	copy(ordered, edits)

	for _, e := range ordered {
		if e.Start < 0 || e.End < e.Start || e.End > n {
			return nil, jerrors.AddContext(
				jerrors.Newf(jerrors.CodeInvariantViolation, "edit range [%d,%d) outside buffer of %d bytes", e.Start, e.End, n),
				jerrors.CtxOffset, e.Start)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	// Equal starts are applied back to front, so merge them into one edit to
	// keep the caller's order in the result.
	merged := ordered[:0]

	for _, e := range ordered {
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if e.Start < last.End {
				return nil, jerrors.AddContext(
					jerrors.Newf(jerrors.CodeInvariantViolation, "edit [%d,%d) overlaps [%d,%d)", e.Start, e.End, last.Start, last.End),
					jerrors.CtxOffset, e.Start)
			}

			if e.Start == last.Start && last.Start == last.End {
				last.Text += e.Text
				last.End = e.End

				continue
			}
		}

		merged = append(merged, e)
	}

	return merged, nil
}

// Snapshot returns the last published parse. The error is the failure of
// that parse, if any.
func (d *JavaDocument) Snapshot() (m.ClassSnapshot, error) {
	d.snapMu.RLock()
	defer d.snapMu.RUnlock()

	return d.snapshot, d.parseErr
}

// ClassMembers returns the published members grouped by kind.
func (d *JavaDocument) ClassMembers() []m.Area {
	snap, _ := d.Snapshot()
	return snap.Areas()
}

// ClassBodyStartOffset returns the offset of the class body's opening brace.
func (d *JavaDocument) ClassBodyStartOffset() int {
	snap, _ := d.Snapshot()
	return snap.BodyStart
}

// MemberCount returns the number of published members of kind.
func (d *JavaDocument) MemberCount(kind m.MemberKind) int {
	snap, _ := d.Snapshot()
	return snap.Count(kind)
}

// ParsedRevision returns the buffer revision of the last published parse.
func (d *JavaDocument) ParsedRevision() uint64 {
	d.snapMu.RLock()
	defer d.snapMu.RUnlock()

	return d.parsedRev
}

// Reparse parses the current buffer and publishes the result. Concurrent
// callers share one parse.
func (d *JavaDocument) Reparse() error {
	_, err, _ := d.group.Do("parse", func() (interface{}, error) {
		d.mu.RLock()
		text, rev := d.text, d.revision
		d.mu.RUnlock()

		snap, err := d.parser.Parse([]byte(text))
		snap.Revision = rev

		d.snapMu.Lock()
		if rev >= d.parsedRev {
			d.snapshot = snap
			d.parsedRev = rev
			d.parseErr = err
		}
		d.snapMu.Unlock()

		observability.ParsedRevision.Set(float64(rev))

		if err != nil {
			return nil, err
		}

		d.log.Debug("buffer reparsed", "revision", rev, "members", len(snap.Members))

		return nil, nil
	})

	return err
}

// Run reparses the buffer after changes until ctx is done. In synchronous
// mode it only waits for ctx.
func (d *JavaDocument) Run(ctx context.Context) error {
	if d.synchronous {
		<-ctx.Done()
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.dirty:
		}

		if d.delay > 0 {
			timer := time.NewTimer(d.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
		}

		if err := d.Reparse(); err != nil {
			d.log.Warn("reparse failed", "path", d.path, "error", err)
		}

		// A change that landed during the parse already queued another signal.
		if d.ParsedRevision() < d.Revision() {
			select {
			case d.dirty <- struct{}{}:
			default:
			}
		}
	}
}

// Save writes the buffer to the file and remembers its hash.
func (d *JavaDocument) Save() error {
	if d.fs == nil || d.path == "" {
		return jerrors.New(jerrors.CodeInvariantViolation, "document is not backed by a file")
	}

	content := []byte(d.FullText())

	if err := d.fs.WriteFile(d.path, content, 0o644); err != nil {
		return jerrors.AddContext(jerrors.Wrap(err, jerrors.CodeInternal, "write source file"), jerrors.CtxPath, string(d.path))
	}

	d.mu.Lock()
	d.savedHash = HashBytes(content)
	d.mu.Unlock()

	d.log.Info("saved", "path", d.path, "bytes", len(content))

	return nil
}

// Reload replaces the buffer with the file content and reparses.
func (d *JavaDocument) Reload() error {
	if d.fs == nil || d.path == "" {
		return jerrors.New(jerrors.CodeInvariantViolation, "document is not backed by a file")
	}

	content, err := d.fs.ReadFile(d.path)
	if err != nil {
		return jerrors.AddContext(jerrors.Wrap(err, jerrors.CodeInternal, "read source file"), jerrors.CtxPath, string(d.path))
	}

	d.mu.Lock()
	d.text = string(content)
	d.revision++
	d.savedHash = HashBytes(content)
	d.mu.Unlock()

	d.log.Info("reloaded", "path", d.path, "bytes", len(content))

	return d.Reparse()
}

// Changed reports whether the file on disk differs from the last loaded or
// saved content.
func (d *JavaDocument) Changed() (bool, error) {
	if d.fs == nil || d.path == "" {
		return false, nil
	}

	hash, err := d.fs.HashFile(d.path)
	if err != nil {
		return false, jerrors.AddContext(jerrors.Wrap(err, jerrors.CodeInternal, "hash source file"), jerrors.CtxPath, string(d.path))
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return hash != d.savedHash, nil
}
