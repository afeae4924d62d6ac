// ABOUTME: Generic list-screen state machine: load, filter state, modal sub-flows
// ABOUTME: Wires a fetcher, the collection store, and a listview into one unit

package screen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/motorvia/motorvia-console/internal/collection"
	"github.com/motorvia/motorvia-console/internal/listview"
)

// Phase is a screen's position in its state machine.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLoading  Phase = "loading"
	PhaseLoaded   Phase = "loaded"
	PhaseErrored  Phase = "errored"
	PhaseViewing  Phase = "viewing"
	PhaseEditing  Phase = "editing"
	PhaseDeleting Phase = "deleting"
)

// Screen errors
var (
	ErrBadPhase    = errors.New("operation not allowed in current phase")
	ErrNoDraft     = errors.New("no edit draft open")
	ErrNotFound    = errors.New("record not in collection")
	ErrUnsupported = errors.New("screen does not support this operation")
)

// Fetcher retrieves the complete collection from the backend.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Mutators are the backend calls a screen's sub-flows use. A nil func
// marks the flow unsupported on that screen.
type Mutators[T any] struct {
	Update func(ctx context.Context, item T) error
	Delete func(ctx context.Context, id string) error
}

// Config assembles a screen.
type Config[T any] struct {
	Name     string
	Key      func(T) string
	View     *listview.View[T]
	Fetch    Fetcher[T]
	Mutators Mutators[T]
}

// Screen is one list screen. All methods are safe for concurrent use,
// though in practice a single console loop drives it.
type Screen[T any] struct {
	mu       sync.Mutex
	name     string
	view     *listview.View[T]
	state    listview.State
	store    *collection.Store[T]
	fetch    Fetcher[T]
	mutators Mutators[T]

	phase    Phase
	loadErr  error
	draft    *T
	selected string
	logger   *slog.Logger
}

// New creates a screen in the idle phase with an empty collection.
func New[T any](cfg Config[T]) *Screen[T] {
	if cfg.Key == nil {
		panic("screen: nil key func")
	}
	if cfg.Fetch == nil {
		panic("screen: nil fetcher")
	}
	return &Screen[T]{
		name:     cfg.Name,
		view:     cfg.View,
		state:    listview.State{Filters: map[string]string{}, Dates: map[string]listview.Bound{}},
		store:    collection.New(cfg.Name, cfg.Key),
		fetch:    cfg.Fetch,
		mutators: cfg.Mutators,
		phase:    PhaseIdle,
		logger:   slog.Default().With("component", "screen", "screen", cfg.Name),
	}
}

// Name returns the screen's resource name.
func (s *Screen[T]) Name() string { return s.name }

// Store exposes the underlying collection, mainly for snapshot wiring.
func (s *Screen[T]) Store() *collection.Store[T] { return s.store }

// Phase returns the current phase.
func (s *Screen[T]) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Err returns the last load error, nil unless the screen is errored.
func (s *Screen[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Load performs the one-shot collection fetch. On success the whole
// collection is replaced; on failure it is left as it was (last known
// good) and the screen parks in errored.
func (s *Screen[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	switch s.phase {
	case PhaseIdle, PhaseLoaded, PhaseErrored:
		s.phase = PhaseLoading
	default:
		phase := s.phase
		s.mu.Unlock()
		return fmt.Errorf("%w: load during %s", ErrBadPhase, phase)
	}
	s.mu.Unlock()

	items, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.phase = PhaseErrored
		s.loadErr = err
		s.logger.Error("load failed", "error", err)
		return err
	}

	s.store.Replace(items)
	s.phase = PhaseLoaded
	s.loadErr = nil
	s.logger.Debug("loaded", "count", len(items))
	return nil
}

// SetSearch updates the free-text query and resets to page 1.
func (s *Screen[T]) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Query = query
	s.state.Page = 1
}

// SetFilter updates one categorical filter and resets to page 1. The
// sentinel "all" (or empty) disables the filter.
func (s *Screen[T]) SetFilter(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filters[name] = value
	s.state.Page = 1
}

// SetDateFilter updates one date-range filter and resets to page 1.
func (s *Screen[T]) SetDateFilter(name string, bound listview.Bound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Dates[name] = bound
	s.state.Page = 1
}

// ClearDateFilter removes a date-range filter and resets to page 1.
func (s *Screen[T]) ClearDateFilter(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.Dates, name)
	s.state.Page = 1
}

// SetSort updates the sort key and resets to page 1.
func (s *Screen[T]) SetSort(key listview.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sort = key
	s.state.Page = 1
}

// SetPage moves to the requested page, clamped into range by evaluation.
func (s *Screen[T]) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Page = page
}

// State returns a copy of the current filter state.
func (s *Screen[T]) State() listview.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Filters = make(map[string]string, len(s.state.Filters))
	for k, v := range s.state.Filters {
		st.Filters[k] = v
	}
	st.Dates = make(map[string]listview.Bound, len(s.state.Dates))
	for k, v := range s.state.Dates {
		st.Dates[k] = v
	}
	return st
}

// Visible evaluates the view against the current collection and state.
func (s *Screen[T]) Visible() listview.Result[T] {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()
	return s.view.Evaluate(s.store.Items(), state)
}

// View opens the detail sub-flow for a record.
func (s *Screen[T]) View(id string) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseLoaded {
		return zero, fmt.Errorf("%w: view during %s", ErrBadPhase, s.phase)
	}
	item, ok := s.store.Get(id)
	if !ok {
		return zero, ErrNotFound
	}
	s.phase = PhaseViewing
	s.selected = id
	return item, nil
}

// Back closes a viewing sub-flow.
func (s *Screen[T]) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseViewing {
		s.phase = PhaseLoaded
		s.selected = ""
	}
}

// BeginEdit opens an edit draft for a record: an isolated copy of it.
func (s *Screen[T]) BeginEdit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mutators.Update == nil {
		return fmt.Errorf("%w: edit", ErrUnsupported)
	}
	if s.phase != PhaseLoaded {
		return fmt.Errorf("%w: edit during %s", ErrBadPhase, s.phase)
	}
	item, ok := s.store.Get(id)
	if !ok {
		return ErrNotFound
	}
	draft := item // value copy; the list is untouched until save succeeds
	s.draft = &draft
	s.selected = id
	s.phase = PhaseEditing
	return nil
}

// Draft returns the open edit draft for mutation. The caller edits the
// pointed-to value in place before SaveEdit.
func (s *Screen[T]) Draft() (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil, ErrNoDraft
	}
	return s.draft, nil
}

// CancelEdit discards the draft without touching the list.
func (s *Screen[T]) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseEditing {
		s.draft = nil
		s.selected = ""
		s.phase = PhaseLoaded
	}
}

// SaveEdit sends the full draft to the backend. Only on success is the
// draft merged into the collection; on failure the draft stays open and
// the list is untouched.
func (s *Screen[T]) SaveEdit(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != PhaseEditing || s.draft == nil {
		s.mu.Unlock()
		return ErrNoDraft
	}
	draft := *s.draft
	update := s.mutators.Update
	s.mu.Unlock()

	if err := update(ctx, draft); err != nil {
		return fmt.Errorf("saving %s edit: %w", s.name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Merge(draft); err != nil {
		// Record vanished locally between BeginEdit and now; treat the
		// save as done and drop the stale draft.
		s.logger.Debug("merge after save missed", "error", err)
	}
	s.draft = nil
	s.selected = ""
	s.phase = PhaseLoaded
	return nil
}

// BeginDelete opens the delete confirmation for a record.
func (s *Screen[T]) BeginDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mutators.Delete == nil {
		return fmt.Errorf("%w: delete", ErrUnsupported)
	}
	if s.phase != PhaseLoaded {
		return fmt.Errorf("%w: delete during %s", ErrBadPhase, s.phase)
	}
	if _, ok := s.store.Get(id); !ok {
		return ErrNotFound
	}
	s.selected = id
	s.phase = PhaseDeleting
	return nil
}

// CancelDelete closes the confirmation without deleting.
func (s *Screen[T]) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseDeleting {
		s.selected = ""
		s.phase = PhaseLoaded
	}
}

// ConfirmDelete performs the backend delete and removes the record from
// the collection on success.
func (s *Screen[T]) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != PhaseDeleting || s.selected == "" {
		s.mu.Unlock()
		return fmt.Errorf("%w: confirm-delete during %s", ErrBadPhase, s.phase)
	}
	id := s.selected
	del := s.mutators.Delete
	s.mu.Unlock()

	if err := del(ctx, id); err != nil {
		return fmt.Errorf("deleting %s %s: %w", s.name, id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Remove(id); err != nil {
		s.logger.Debug("remove after delete missed", "error", err)
	}
	s.selected = ""
	s.phase = PhaseLoaded
	return nil
}

// Create runs a backend create and prepends the returned record to the
// collection, per the optimistic no-refetch contract.
func (s *Screen[T]) Create(ctx context.Context, create func(ctx context.Context) (T, error)) error {
	s.mu.Lock()
	if s.phase != PhaseLoaded {
		phase := s.phase
		s.mu.Unlock()
		return fmt.Errorf("%w: create during %s", ErrBadPhase, phase)
	}
	s.mu.Unlock()

	created, err := create(ctx)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.name, err)
	}

	s.store.Prepend(created)
	return nil
}
