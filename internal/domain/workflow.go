package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/jstruct/internal/adapter"
	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// Settings configures the documents and outlines created by a Workflow.
type Settings struct {
	Indent        int
	PinnedAreas   []m.MemberKind
	PollInterval  time.Duration
	Timeout       time.Duration
	ReparseDelay  time.Duration
	Autosave      bool
	Watch         bool
	WatchDebounce time.Duration
	// DryRun keeps single-shot edits in memory; the file is never written.
	DryRun bool
}

// DefaultSettings returns the settings used when no configuration is given.
func DefaultSettings() Settings {
	return Settings{
		Indent:        DefaultIndent,
		PinnedAreas:   append([]m.MemberKind(nil), DefaultPinnedAreas...),
		PollInterval:  DefaultPollInterval,
		Timeout:       DefaultSyncTimeout,
		Autosave:      true,
		Watch:         true,
		WatchDebounce: adapter.DefaultWatchDebounce,
	}
}

// EditResult is the outcome of one single-shot edit.
type EditResult struct {
	Path   m.Path
	Before string
	After  string
	Saved  bool
}

// Changed reports whether the edit modified the text.
func (r EditResult) Changed() bool {
	return r.Before != r.After
}

// Workflow defines the file level operations behind the command line.
type Workflow interface {
	List(ctx context.Context, path m.Path) (m.ClassSnapshot, error)
	Add(ctx context.Context, path m.Path, spec MemberSpec) (EditResult, error)
	Rename(ctx context.Context, path m.Path, kind m.MemberKind, name, newName string) (EditResult, error)
	Delete(ctx context.Context, path m.Path, kind m.MemberKind, name string) (EditResult, error)
	// ReplaceBody replaces the body of the named method with body, keeping
	// the indentation the method already uses.
	ReplaceBody(ctx context.Context, path m.Path, method, body string) (EditResult, error)
	// Open prepares an interactive editing session.
	Open(ctx context.Context, path m.Path) (*Session, error)
}

type workflow struct {
	fs       adapter.SourceFSAdapter
	parser   adapter.JavaParser
	settings Settings
	log      *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fs adapter.SourceFSAdapter, parser adapter.JavaParser, settings Settings, log *slog.Logger) Workflow {
	if log == nil {
		log = slog.Default()
	}

	return &workflow{
		fs:       fs,
		parser:   parser,
		settings: settings,
		log:      log,
	}
}

func (w *workflow) List(_ context.Context, path m.Path) (m.ClassSnapshot, error) {
	doc, err := w.openDocument(path, adapter.WithSynchronousParse())
	if err != nil {
		return m.ClassSnapshot{}, err
	}

	return doc.Snapshot()
}

func (w *workflow) Add(ctx context.Context, path m.Path, spec MemberSpec) (EditResult, error) {
	return w.edit(ctx, path, "add", func(o Outline, _ m.ClassSnapshot) error {
		return o.AddMember(ctx, spec)
	})
}

func (w *workflow) Rename(ctx context.Context, path m.Path, kind m.MemberKind, name, newName string) (EditResult, error) {
	return w.edit(ctx, path, "rename", func(o Outline, snap m.ClassSnapshot) error {
		member, err := FindMember(snap, kind, name)
		if err != nil {
			return err
		}

		return o.RenameMember(ctx, member, newName)
	})
}

func (w *workflow) Delete(ctx context.Context, path m.Path, kind m.MemberKind, name string) (EditResult, error) {
	return w.edit(ctx, path, "delete", func(o Outline, snap m.ClassSnapshot) error {
		member, err := FindMember(snap, kind, name)
		if err != nil {
			return err
		}

		return o.DeleteMember(ctx, member)
	})
}

func (w *workflow) ReplaceBody(ctx context.Context, path m.Path, method, body string) (EditResult, error) {
	return w.edit(ctx, path, "body", func(o Outline, snap m.ClassSnapshot) error {
		member, err := FindMember(snap, m.KindMethod, method)
		if err != nil {
			return err
		}

		indent := o.LoadMethod(member).BodyIndent
		lines, _ := LoadMethodBody(body, indent)

		return o.ReplaceMethodBody(ctx, member, lines, indent)
	})
}

// edit runs fn against a synchronously parsed copy of the file and saves the
// result unless the workflow is in dry-run mode.
func (w *workflow) edit(ctx context.Context, path m.Path, op string, fn func(Outline, m.ClassSnapshot) error) (EditResult, error) {
	doc, err := w.openDocument(path, adapter.WithSynchronousParse())
	if err != nil {
		return EditResult{}, err
	}

	opts := w.outlineOptions()
	if !w.settings.DryRun {
		opts = append(opts, WithAutosave(doc))
	}

	o := NewOutline(doc, doc, adapter.NewJavaReferenceIndex(doc), opts...)
	if err := o.Rebuild(ctx); err != nil {
		return EditResult{}, fmt.Errorf("failed to read %s: %w", doc.Path(), err)
	}

	before := doc.FullText()

	if err := fn(o, o.View().Snapshot); err != nil {
		return EditResult{}, fmt.Errorf("%s failed for %s: %w", op, doc.Path(), err)
	}

	result := EditResult{
		Path:   doc.Path(),
		Before: before,
		After:  doc.FullText(),
	}
	result.Saved = !w.settings.DryRun && result.Changed()

	w.log.Info("edit finished", "op", op, "path", result.Path, "changed", result.Changed(), "saved", result.Saved)

	return result, nil
}

func (w *workflow) Open(ctx context.Context, path m.Path) (*Session, error) {
	doc, err := w.openDocument(path, adapter.WithReparseDelay(w.settings.ReparseDelay))
	if err != nil {
		return nil, err
	}

	opts := w.outlineOptions()
	if w.settings.Autosave {
		opts = append(opts, WithAutosave(doc))
	}

	s := &Session{
		doc:     doc,
		outline: NewOutline(doc, doc, adapter.NewJavaReferenceIndex(doc), opts...),
		changes: make(chan struct{}, 1),
		log:     w.log,
	}

	if err := s.outline.Rebuild(ctx); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", doc.Path(), err)
	}

	if w.settings.Watch {
		s.watcher = adapter.NewFileWatcher(doc.Path(), doc, w.settings.WatchDebounce, w.log, s.notifyChange)
	}

	return s, nil
}

func (w *workflow) openDocument(path m.Path, opts ...adapter.DocumentOption) (*adapter.JavaDocument, error) {
	resolved, err := w.fs.ResolvePath(path)
	if err != nil {
		return nil, err
	}

	opts = append(opts, adapter.WithLogger(w.log))

	doc, err := adapter.OpenJavaDocument(resolved, w.fs, w.parser, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", resolved, err)
	}

	return doc, nil
}

func (w *workflow) outlineOptions() []OutlineOption {
	return []OutlineOption{
		WithIndent(w.settings.Indent),
		WithPinnedAreas(w.settings.PinnedAreas...),
		WithSync(w.settings.PollInterval, w.settings.Timeout),
		WithLogger(w.log),
	}
}

// FindMember returns the only member of kind named name in snap.
func FindMember(snap m.ClassSnapshot, kind m.MemberKind, name string) (m.MemberDescriptor, error) {
	var found []m.MemberDescriptor

	for _, member := range snap.MembersOf(kind) {
		if member.Name == name {
			found = append(found, member)
		}
	}

	switch len(found) {
	case 0:
		err := jerrors.Newf(jerrors.CodeNotFound, "no %s named %q", kind, name)
		return m.MemberDescriptor{}, jerrors.AddContext(err, jerrors.CtxMember, name)
	case 1:
		return found[0], nil
	default:
		err := jerrors.Newf(jerrors.CodeAmbiguousMatch, "%d %ss named %q", len(found), kind, name)
		return m.MemberDescriptor{}, jerrors.AddContext(err, jerrors.CtxMember, name)
	}
}

// Session is one file opened for interactive editing.
type Session struct {
	doc     adapter.Document
	outline Outline
	watcher *adapter.FileWatcher
	changes chan struct{}
	log     *slog.Logger
}

// Path returns the edited file.
func (s *Session) Path() m.Path {
	return s.doc.Path()
}

// Outline returns the controller of the session.
func (s *Session) Outline() Outline {
	return s.outline
}

// Changes delivers a value whenever the file is modified by another program.
func (s *Session) Changes() <-chan struct{} {
	return s.changes
}

// Reload replaces the buffer with the file on disk and rebuilds the outline.
func (s *Session) Reload(ctx context.Context) error {
	if err := s.doc.Reload(); err != nil {
		return err
	}

	return s.outline.Rebuild(ctx)
}

// Save writes the buffer to disk.
func (s *Session) Save() error {
	return s.doc.Save()
}

// Run drives the background reparse and the file watcher until ctx is done
// or one of them fails.
func (s *Session) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.doc.Run(gctx)
	})

	if s.watcher != nil {
		g.Go(func() error {
			return s.watcher.Run(gctx)
		})
	}

	return g.Wait()
}

func (s *Session) notifyChange() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
