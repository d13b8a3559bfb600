package domain

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mouse-blink/jstruct/internal/adapter"
	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
	"github.com/mouse-blink/jstruct/internal/observability"
)

// DefaultPinnedAreas are the areas shown even when they are empty.
var DefaultPinnedAreas = []m.MemberKind{m.KindVariable, m.KindMethod}

// EventType tells the host what happened in response to a key.
type EventType int

// Outline events.
const (
	EventNone EventType = iota
	// EventOpenMethod asks the host to open the method editor. Member is nil
	// for a new method.
	EventOpenMethod
	// EventChanged reports that the buffer was mutated.
	EventChanged
)

// Event is the host-visible outcome of HandleKey.
type Event struct {
	Type   EventType
	Member *m.MemberDescriptor
}

// OutlineView is a consistent copy of the controller state for rendering.
type OutlineView struct {
	Snapshot m.ClassSnapshot
	Grid     Grid
	Focus    m.FocusState
	// Stale is set when a change confirmation timed out; the grid may not
	// reflect the buffer until the next successful Rebuild.
	Stale bool
}

// Outline orchestrates the structured editing of one class: it owns the
// focus state and the current snapshot and turns user actions into buffer
// transactions.
type Outline interface {
	// Rebuild waits for the source model to catch up with the buffer and
	// re-reads the snapshot.
	Rebuild(ctx context.Context) error
	View() OutlineView
	HandleKey(ctx context.Context, key Key) (Event, error)
	// SetCell records a typed or selected value as a draft of the row.
	SetCell(area, row, cell int, value string) error

	AddMember(ctx context.Context, spec MemberSpec) error
	RenameMember(ctx context.Context, member m.MemberDescriptor, newName string) error
	// ApplyVariableEdits replaces the modifiers and the initializer of a
	// variable in one transaction. A blank initializer removes it.
	ApplyVariableEdits(ctx context.Context, member m.MemberDescriptor, modifiers []string, initializer string) error
	// EditMethod deletes a method and inserts spec at the same position. It
	// returns the re-identified method.
	EditMethod(ctx context.Context, original m.MemberDescriptor, spec MemberSpec) (m.MemberDescriptor, error)
	ReplaceMethodBody(ctx context.Context, member m.MemberDescriptor, lines []string, indent int) error
	DeleteMember(ctx context.Context, member m.MemberDescriptor) error

	// LoadMethod returns the editable form of an existing method.
	LoadMethod(member m.MemberDescriptor) MemberSpec
	// NewMethod returns the editable form of a method that does not exist yet.
	NewMethod() MemberSpec
}

// OutlineOption configures an Outline.
type OutlineOption func(*outline)

// WithIndent sets the member indentation.
func WithIndent(indent int) OutlineOption {
	return func(o *outline) {
		o.renderer = NewRenderer(indent)
	}
}

// WithPinnedAreas sets the areas that stay visible while empty.
func WithPinnedAreas(kinds ...m.MemberKind) OutlineOption {
	return func(o *outline) {
		o.pinned = append([]m.MemberKind(nil), kinds...)
	}
}

// WithSync sets the confirmation poll interval and timeout.
func WithSync(interval, timeout time.Duration) OutlineOption {
	return func(o *outline) {
		o.interval = interval
		o.timeout = timeout
	}
}

// WithConfirmer replaces the polling confirmer.
func WithConfirmer(c Confirmer) OutlineOption {
	return func(o *outline) {
		o.confirm = c
	}
}

// WithAutosave saves through saver after every successful operation.
func WithAutosave(saver adapter.Saver) OutlineOption {
	return func(o *outline) {
		o.saver = saver
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) OutlineOption {
	return func(o *outline) {
		if log != nil {
			o.log = log
		}
	}
}

type outline struct {
	source   adapter.SourceModel
	buffer   adapter.BufferMutator
	refs     adapter.ReferenceIndex
	saver    adapter.Saver
	confirm  Confirmer
	renderer Renderer
	pinned   []m.MemberKind
	log      *slog.Logger
	interval time.Duration
	timeout  time.Duration

	mu       sync.Mutex
	snapshot m.ClassSnapshot
	grid     Grid
	focus    m.FocusState
	stale    bool
	drafts   *Drafts
}

// NewOutline creates an Outline over one document. Call Rebuild before the
// first View.
func NewOutline(source adapter.SourceModel, buffer adapter.BufferMutator, refs adapter.ReferenceIndex, opts ...OutlineOption) Outline {
	o := &outline{
		source:   source,
		buffer:   buffer,
		refs:     refs,
		renderer: NewRenderer(DefaultIndent),
		pinned:   DefaultPinnedAreas,
		log:      slog.Default(),
		drafts:   NewDrafts(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.confirm == nil {
		o.confirm = NewConfirmer(source, o.interval, o.timeout, o.log)
	}

	return o
}

func (o *outline) Rebuild(ctx context.Context) error {
	if err := o.confirm.AwaitRevision(ctx, o.buffer.Revision()); err != nil {
		o.markStale()
		return err
	}

	return o.refresh()
}

func (o *outline) refresh() error {
	snap, err := o.source.Snapshot()
	if err != nil {
		o.markStale()
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	kind := o.focusedKindLocked()

	o.snapshot = snap
	o.drafts.ResetExisting()
	o.grid = BuildGrid(snap, o.pinned, o.drafts)
	o.focus = Reconcile(o.focus, kind, o.grid)
	o.stale = false

	return nil
}

func (o *outline) View() OutlineView {
	o.mu.Lock()
	defer o.mu.Unlock()

	return OutlineView{
		Snapshot: o.snapshot,
		Grid:     o.grid,
		Focus:    o.focus,
		Stale:    o.stale,
	}
}

func (o *outline) HandleKey(ctx context.Context, key Key) (Event, error) {
	o.mu.Lock()
	grid, focus := o.grid, o.focus
	o.mu.Unlock()

	next, action, err := Transition(focus, key, grid)
	if err != nil {
		return Event{}, err
	}

	o.mu.Lock()
	o.focus = next
	o.mu.Unlock()

	row, _ := grid.Row(focus.AreaIndex, focus.RowIndex)

	switch action {
	case ActionOpenMethod:
		return Event{Type: EventOpenMethod, Member: row.Member}, nil
	case ActionDeleteRow:
		if err := o.DeleteMember(ctx, *row.Member); err != nil {
			return Event{}, err
		}

		return Event{Type: EventChanged}, nil
	case ActionCommitRow:
		changed, err := o.commitRow(ctx, grid.AreaKind(focus.AreaIndex), focus.RowIndex, row)
		if err != nil || !changed {
			return Event{}, err
		}

		return Event{Type: EventChanged}, nil
	case ActionActivateCell:
		return o.activate(ctx, grid, focus, row)
	}

	return Event{}, nil
}

// commitRow applies the drafts of an existing row: a rename when the name
// cell changed, then the modifier and initializer edits of a variable.
func (o *outline) commitRow(ctx context.Context, kind m.MemberKind, index int, row Row) (bool, error) {
	member := *row.Member
	changed := false

	name, _ := row.Value(RoleName)
	name = strings.TrimSpace(name)

	if name != member.Name {
		if err := o.RenameMember(ctx, member, name); err != nil {
			return false, err
		}

		renamed, err := o.memberAt(kind, index)
		if err != nil {
			return true, err
		}

		member = renamed
		changed = true
	}

	if kind != m.KindVariable {
		return changed, nil
	}

	init := ""
	if row.InitializerVisible() {
		init, _ = row.Value(RoleInitializer)
	}

	before := o.buffer.Revision()

	if err := o.ApplyVariableEdits(ctx, member, row.Modifiers(), init); err != nil {
		return changed, err
	}

	return changed || o.buffer.Revision() != before, nil
}

func (o *outline) activate(ctx context.Context, grid Grid, focus m.FocusState, row Row) (Event, error) {
	cell, _ := grid.Cell(focus.AreaIndex, focus.RowIndex, focus.ColumnIndex)
	kind := grid.AreaKind(focus.AreaIndex)

	switch cell.Role {
	case RoleRevealInitializer:
		o.mu.Lock()
		defer o.mu.Unlock()

		o.drafts.Reveal(DraftKey{Kind: kind, Row: focus.RowIndex})
		o.grid = BuildGrid(o.snapshot, o.pinned, o.drafts)

		for i, c := range row.Cells {
			if c.Role == RoleInitializer {
				o.focus.ColumnIndex = i
			}
		}

		return Event{}, nil
	case RoleAdd:
		if kind == m.KindMethod {
			return Event{Type: EventOpenMethod}, nil
		}

		spec := specFromAddRow(kind, row)
		if err := o.AddMember(ctx, spec); err != nil {
			return Event{}, err
		}

		o.mu.Lock()
		o.drafts.Clear(DraftKey{Kind: kind, Row: AddRow})
		o.grid = BuildGrid(o.snapshot, o.pinned, o.drafts)
		o.mu.Unlock()

		return Event{Type: EventChanged}, nil
	}

	return Event{}, nil
}

func specFromAddRow(kind m.MemberKind, row Row) MemberSpec {
	spec := MemberSpec{Kind: kind, Modifiers: row.Modifiers()}
	spec.Name, _ = row.Value(RoleName)

	if kind == m.KindVariable {
		spec.Type, _ = row.Value(RoleType)
		spec.Initializer, _ = row.Value(RoleInitializer)
	}

	return spec
}

func (o *outline) SetCell(area, row, cell int, value string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.grid.Cell(area, row, cell)
	if !ok || !c.Visible || c.Kind == CellLabel || c.Kind == CellButton {
		return jerrors.Newf(jerrors.CodeInvariantViolation, "cell (%d,%d,%d) is not editable", area, row, cell)
	}

	if c.Kind == CellChoice && !containsString(c.Options, value) {
		return jerrors.Newf(jerrors.CodeInvariantViolation, "%q is not an option of cell (%d,%d,%d)", value, area, row, cell)
	}

	key := DraftKey{Kind: o.grid.AreaKind(area), Row: row}
	if IsAddRow(o.grid, area, row) {
		key.Row = AddRow
	}

	o.drafts.Set(key, cell, value)
	o.grid = BuildGrid(o.snapshot, o.pinned, o.drafts)

	return nil
}

func (o *outline) AddMember(ctx context.Context, spec MemberSpec) error {
	return o.run(ctx, "add", func(id string) error {
		rendered, err := o.renderer.RenderMember(spec)
		if err != nil {
			return err
		}

		if err := o.ensureFresh(ctx); err != nil {
			return err
		}

		snap := o.currentSnapshot()

		offset, err := ResolveInsertOffset(snap.Areas(), spec.Kind, snap.BodyStart)
		if err != nil {
			return err
		}

		req := m.InsertMember{
			ID:     id,
			Kind:   spec.Kind,
			Offset: offset,
			Text:   o.insertionText(o.buffer.FullText(), offset, snap.BodyStart, spec.Kind, rendered),
		}

		if err := o.applyAndCount(ctx, spec.Kind, req); err != nil {
			return err
		}

		o.focusMember(spec.Kind, o.currentSnapshot().Count(spec.Kind)-1)

		return nil
	})
}

func (o *outline) RenameMember(ctx context.Context, member m.MemberDescriptor, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return jerrors.Newf(jerrors.CodeInvariantViolation, "new name of %s %s must not be blank", member.Kind, member.Name)
	}

	return o.run(ctx, "rename", func(id string) error {
		current, err := o.locate(ctx, member)
		if err != nil {
			return err
		}

		if current.Name == newName {
			return nil
		}

		refs, err := o.refs.FindReferences(current)
		if err != nil {
			return err
		}

		o.log.Debug("renaming member", "request", id, "member", current.Name, "to", newName, "references", len(refs))

		return o.applyAndConfirm(ctx, m.RenameMember{ID: id, Member: current, NewName: newName, References: refs})
	})
}

func (o *outline) ApplyVariableEdits(ctx context.Context, member m.MemberDescriptor, modifiers []string, initializer string) error {
	return o.run(ctx, "edit-variable", func(id string) error {
		current, err := o.locate(ctx, member)
		if err != nil {
			return err
		}

		if current.Kind != m.KindVariable {
			return jerrors.Newf(jerrors.CodeInvariantViolation, "%s %s is not a variable", current.Kind, current.Name)
		}

		var reqs []m.EditRequest

		if mods := RenderModifiers(modifiers); mods != RenderModifiers(current.Modifiers) {
			reqs = append(reqs, m.ReplaceRange{ID: id, Start: current.ModStart, End: current.ModEnd, Text: mods})
		}

		init := strings.TrimSpace(initializer)
		if init != strings.TrimSpace(current.InitializerText()) {
			start := current.InitializerStart()

			end, err := FindUnquotedTerminator(o.buffer.FullText(), start, ';')
			if err != nil {
				return jerrors.AddContext(err, jerrors.CtxMember, current.Name)
			}

			if current.DeclaratorEnd >= start && current.DeclaratorEnd < end {
				end = current.DeclaratorEnd
			}

			reqs = append(reqs, m.ReplaceRange{ID: id, Start: start, End: end, Text: RenderInitializer(init)})
		}

		if len(reqs) == 0 {
			return nil
		}

		return o.applyAndConfirm(ctx, reqs...)
	})
}

func (o *outline) EditMethod(ctx context.Context, original m.MemberDescriptor, spec MemberSpec) (m.MemberDescriptor, error) {
	var edited m.MemberDescriptor

	spec.Kind = m.KindMethod

	err := o.run(ctx, "edit-method", func(id string) error {
		rendered, err := o.renderer.RenderMember(spec)
		if err != nil {
			return err
		}

		current, err := o.locate(ctx, original)
		if err != nil {
			return err
		}

		snap := o.currentSnapshot()
		position := indexOf(snap.MembersOf(m.KindMethod), current)

		// Attached comments leave and come back with the method.
		text := o.buffer.FullText()
		leading := text[current.FullStart():current.StartOffset]
		full := m.Range{Start: current.FullStart(), End: current.EndOffset}

		del := m.DeleteMember{ID: id, Member: current, Range: SeparatorRange(text, full)}
		if err := o.applyAndCount(ctx, m.KindMethod, del); err != nil {
			return err
		}

		// Offsets are recomputed from the snapshot after the deletion.
		snap = o.currentSnapshot()

		offset, err := ResolveInsertOffsetAt(snap.Areas(), m.KindMethod, position, snap.BodyStart)
		if err != nil {
			return err
		}

		ins := m.InsertMember{
			ID:     id,
			Kind:   m.KindMethod,
			Offset: offset,
			Text:   o.insertionText(o.buffer.FullText(), offset, snap.BodyStart, m.KindMethod, leading+rendered),
		}

		if err := o.applyAndCount(ctx, m.KindMethod, ins); err != nil {
			return err
		}

		methods := o.currentSnapshot().MembersOf(m.KindMethod)
		name := strings.TrimSpace(spec.Name)

		var matches []int

		for i, method := range methods {
			if method.Name == name {
				matches = append(matches, i)
			}
		}

		if len(matches) != 1 {
			o.focusMember(m.KindMethod, 0)
			return jerrors.Newf(jerrors.CodeAmbiguousMatch, "%d methods named %s after edit", len(matches), name)
		}

		edited = methods[matches[0]]
		o.focusMember(m.KindMethod, matches[0])

		return nil
	})

	return edited, err
}

func (o *outline) ReplaceMethodBody(ctx context.Context, member m.MemberDescriptor, lines []string, indent int) error {
	return o.run(ctx, "replace-body", func(id string) error {
		current, err := o.locate(ctx, member)
		if err != nil {
			return err
		}

		if current.Kind != m.KindMethod {
			return jerrors.Newf(jerrors.CodeInvariantViolation, "%s %s is not a method", current.Kind, current.Name)
		}

		if current.BodyStart < 0 || current.BodyEnd <= current.BodyStart {
			return jerrors.AddContext(jerrors.New(jerrors.CodeNotFound, "method has no body"), jerrors.CtxMember, current.Name)
		}

		open, err := FindUnquotedTerminator(o.buffer.FullText(), current.NameEnd, '{')
		if err != nil {
			return jerrors.AddContext(err, jerrors.CtxMember, current.Name)
		}

		if open != current.BodyStart {
			return jerrors.AddContext(
				jerrors.Newf(jerrors.CodeInvariantViolation, "body brace at %d, parsed body starts at %d", open, current.BodyStart),
				jerrors.CtxMember, current.Name)
		}

		body := o.renderer.RenderMethodBody(lines, indent)

		return o.applyAndConfirm(ctx, m.ReplaceRange{ID: id, Start: open + 1, End: current.BodyEnd - 1, Text: body})
	})
}

func (o *outline) DeleteMember(ctx context.Context, member m.MemberDescriptor) error {
	return o.run(ctx, "delete", func(id string) error {
		current, err := o.locate(ctx, member)
		if err != nil {
			return err
		}

		r, err := ResolveDeleteRange(current)
		if err != nil {
			return err
		}

		if shared, ok := declaratorRange(o.currentSnapshot(), current); ok {
			r = shared
		} else {
			r.Start = current.FullStart()
			r = WidenDeleteRange(o.buffer.FullText(), r)
		}

		o.mu.Lock()
		if o.focus.Level == m.FocusColumn {
			o.focus.Level = m.FocusRow
			o.focus.ColumnIndex = 0
		}
		o.mu.Unlock()

		return o.applyAndCount(ctx, current.Kind, m.DeleteMember{ID: id, Member: current, Range: r})
	})
}

func (o *outline) LoadMethod(member m.MemberDescriptor) MemberSpec {
	return SpecFromDescriptor(member, 2*o.renderer.Indent())
}

func (o *outline) NewMethod() MemberSpec {
	return MemberSpec{Kind: m.KindMethod, Type: "void", BodyIndent: 2 * o.renderer.Indent()}
}

// run wraps one composite operation: request id, logging, metrics, autosave
// and the abort path that leaves the focus at a valid level.
func (o *outline) run(ctx context.Context, op string, fn func(id string) error) error {
	id := uuid.NewString()
	started := time.Now()
	rev := o.buffer.Revision()

	o.log.Debug("operation started", "op", op, "request", id)

	err := fn(id)
	if err == nil && o.saver != nil && o.buffer.Revision() != rev {
		if serr := o.saver.Save(); serr != nil {
			err = jerrors.Wrap(serr, jerrors.CodeInternal, "autosave")
		}
	}

	if err != nil {
		if jerrors.IsCode(err, jerrors.CodeSyncTimeout) {
			o.markStale()
		}

		o.restoreFocus()
		observability.OperationsTotal.WithLabelValues(op, string(jerrors.CodeOf(err))).Inc()
		o.log.Warn("operation failed", "op", op, "request", id, "error", err)

		return jerrors.AddContext(err, jerrors.CtxOperation, op)
	}

	observability.OperationsTotal.WithLabelValues(op, "ok").Inc()
	o.log.Info("operation finished", "op", op, "request", id, "duration", time.Since(started))

	return nil
}

// applyAndCount applies reqs and waits until the member count of kind changes.
func (o *outline) applyAndCount(ctx context.Context, kind m.MemberKind, reqs ...m.EditRequest) error {
	before := o.source.MemberCount(kind)

	if _, err := o.apply(reqs...); err != nil {
		return err
	}

	if err := o.confirm.AwaitCount(ctx, kind, before); err != nil {
		return err
	}

	return o.refresh()
}

// applyAndConfirm applies reqs and waits until the parse reaches the new revision.
func (o *outline) applyAndConfirm(ctx context.Context, reqs ...m.EditRequest) error {
	rev, err := o.apply(reqs...)
	if err != nil {
		return err
	}

	if err := o.confirm.AwaitRevision(ctx, rev); err != nil {
		return err
	}

	return o.refresh()
}

// apply turns edit requests into one buffer transaction.
func (o *outline) apply(reqs ...m.EditRequest) (uint64, error) {
	var edits []m.TextEdit

	for _, req := range reqs {
		switch r := req.(type) {
		case m.InsertMember:
			edits = append(edits, m.Insert(r.Offset, r.Text))
		case m.ReplaceRange:
			edits = append(edits, m.Replace(r.Start, r.End, r.Text))
		case m.DeleteMember:
			edits = append(edits, m.Delete(r.Range.Start, r.Range.End))
		case m.RenameMember:
			edits = append(edits, m.Replace(r.Member.NameStart, r.Member.NameEnd, r.NewName))
			for _, ref := range r.References {
				edits = append(edits, m.Replace(ref.Start, ref.End, r.NewName))
			}
		default:
			return 0, jerrors.Newf(jerrors.CodeInvariantViolation, "unsupported edit request %T", req)
		}

		o.log.Debug("edit request", "request", req.RequestID(), "type", reqType(req))
	}

	rev, err := o.buffer.ApplyAtomic(edits)
	if err != nil {
		return 0, err
	}

	return rev, nil
}

func reqType(req m.EditRequest) string {
	switch req.(type) {
	case m.InsertMember:
		return "insert"
	case m.ReplaceRange:
		return "replace"
	case m.DeleteMember:
		return "delete"
	case m.RenameMember:
		return "rename"
	}

	return "unknown"
}

// insertionText prefixes rendered with the separator for kind. Directly after
// the opening brace a single line break is used, and a closing brace on the
// same position is pushed to its own line.
func (o *outline) insertionText(text string, offset, bodyStart int, kind m.MemberKind, rendered string) string {
	sep := o.renderer.Separator(kind)
	if offset == bodyStart+1 {
		sep = "\n" + strings.Repeat(" ", o.renderer.Indent())
	}

	out := sep + rendered
	if offset < len(text) && text[offset] == '}' {
		out += "\n"
	}

	return out
}

// ensureFresh rebuilds when the snapshot is stale or older than the buffer.
func (o *outline) ensureFresh(ctx context.Context) error {
	o.mu.Lock()
	fresh := !o.stale && o.snapshot.Revision >= o.buffer.Revision()
	o.mu.Unlock()

	if fresh {
		return nil
	}

	return o.Rebuild(ctx)
}

// locate finds member in the current snapshot: by position when the offsets
// still match, else by kind and name.
func (o *outline) locate(ctx context.Context, member m.MemberDescriptor) (m.MemberDescriptor, error) {
	if strings.TrimSpace(member.Name) == "" {
		return m.MemberDescriptor{}, jerrors.New(jerrors.CodeInvariantViolation, "member name must not be blank")
	}

	if err := o.ensureFresh(ctx); err != nil {
		return m.MemberDescriptor{}, err
	}

	var byName []m.MemberDescriptor

	for _, candidate := range o.currentSnapshot().Members {
		if candidate.Kind != member.Kind || candidate.Name != member.Name {
			continue
		}

		if candidate.StartOffset == member.StartOffset && candidate.NameStart == member.NameStart {
			return candidate, nil
		}

		byName = append(byName, candidate)
	}

	switch len(byName) {
	case 0:
		return m.MemberDescriptor{}, jerrors.AddContext(
			jerrors.Newf(jerrors.CodeNotFound, "%s %s not found", member.Kind, member.Name), jerrors.CtxMember, member.Name)
	case 1:
		return byName[0], nil
	}

	return m.MemberDescriptor{}, jerrors.AddContext(
		jerrors.Newf(jerrors.CodeAmbiguousMatch, "%d %s members named %s", len(byName), member.Kind, member.Name), jerrors.CtxMember, member.Name)
}

func (o *outline) memberAt(kind m.MemberKind, index int) (m.MemberDescriptor, error) {
	members := o.currentSnapshot().MembersOf(kind)
	if index < 0 || index >= len(members) {
		return m.MemberDescriptor{}, jerrors.Newf(jerrors.CodeNotFound, "no %s at row %d", kind, index)
	}

	return members[index], nil
}

func (o *outline) currentSnapshot() m.ClassSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.snapshot
}

func (o *outline) markStale() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stale = true
}

func (o *outline) focusMember(kind m.MemberKind, index int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	area := o.grid.AreaIndex(kind)
	if area < 0 {
		return
	}

	o.focus = m.FocusState{Level: m.FocusRow, AreaIndex: area, RowIndex: clamp(index, 0, o.grid.RowCount(area)-1)}
}

func (o *outline) restoreFocus() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.focus.Level == m.FocusColumn {
		o.focus.Level = m.FocusRow
		o.focus.ColumnIndex = 0
	}

	o.focus = Reconcile(o.focus, o.focusedKindLocked(), o.grid)
}

func (o *outline) focusedKindLocked() m.MemberKind {
	if o.focus.AreaIndex >= 0 && o.focus.AreaIndex < o.grid.AreaCount() {
		return o.grid.AreaKind(o.focus.AreaIndex)
	}

	return m.AreaOrder[0]
}

// declaratorRange returns the range removing one declarator of a declaration
// shared by several variables, together with its separating comma.
func declaratorRange(snap m.ClassSnapshot, member m.MemberDescriptor) (m.Range, bool) {
	if member.Kind != m.KindVariable {
		return m.Range{}, false
	}

	var siblings []m.MemberDescriptor

	for _, candidate := range snap.Members {
		if candidate.Kind == m.KindVariable && candidate.StartOffset == member.StartOffset {
			siblings = append(siblings, candidate)
		}
	}

	if len(siblings) < 2 {
		return m.Range{}, false
	}

	for i, sibling := range siblings {
		if sibling.NameStart != member.NameStart {
			continue
		}

		if i < len(siblings)-1 {
			return m.Range{Start: member.NameStart, End: siblings[i+1].NameStart}, true
		}

		return m.Range{Start: siblings[i-1].DeclaratorEnd, End: member.DeclaratorEnd}, true
	}

	return m.Range{}, false
}

func indexOf(members []m.MemberDescriptor, member m.MemberDescriptor) int {
	for i, candidate := range members {
		if candidate.StartOffset == member.StartOffset && candidate.NameStart == member.NameStart {
			return i
		}
	}

	return 0
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}
