// ABOUTME: Thread-safe optimistic collection store keyed by record identity
// ABOUTME: Replace/Prepend/Merge/Remove with non-blocking invalidation fanout

package collection

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a mutation targets an identity the
// collection does not hold.
var ErrNotFound = errors.New("record not found in collection")

// subscriberBufferSize is the channel buffer for each subscriber.
const subscriberBufferSize = 64

// Op identifies the kind of mutation that invalidated the collection.
type Op string

const (
	OpReplace Op = "replace"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
)

// Event describes one invalidation of a collection.
type Event struct {
	Resource string // collection name, e.g. "vehicles"
	Op       Op
	ID       string // affected record, empty for OpReplace
}

// Store holds one screen's collection in fetch order. All methods are safe
// for concurrent use; Items returns a copy so callers never alias the
// internal slice.
type Store[T any] struct {
	mu          sync.RWMutex
	resource    string
	key         func(T) string
	items       []T
	subscribers map[string]chan Event
	logger      *slog.Logger
}

// New creates an empty store for the named resource. key extracts a
// record's identity and must not be nil.
func New[T any](resource string, key func(T) string) *Store[T] {
	if key == nil {
		panic("collection: nil key func")
	}
	return &Store[T]{
		resource:    resource,
		key:         key,
		subscribers: make(map[string]chan Event),
		logger:      slog.Default().With("component", "collection", "resource", resource),
	}
}

// Len returns the number of records currently held.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns the records in fetch order, newest optimistic creates first.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the record with the given identity.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Replace swaps the whole collection for a fresh fetch result.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.mu.Unlock()

	s.publish(Event{Resource: s.resource, Op: OpReplace})
}

// Prepend inserts a newly created record at the front of the collection.
func (s *Store[T]) Prepend(item T) {
	s.mu.Lock()
	s.items = append([]T{item}, s.items...)
	id := s.key(item)
	s.mu.Unlock()

	s.publish(Event{Resource: s.resource, Op: OpCreate, ID: id})
}

// Merge replaces the record whose identity matches with the given value.
// Server-derived fields are not reconciled: the caller's value is the new
// truth until the next Replace.
func (s *Store[T]) Merge(item T) error {
	id := s.key(item)

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.key(s.items[i]) == id {
			s.items[i] = item
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrNotFound
	}
	s.publish(Event{Resource: s.resource, Op: OpUpdate, ID: id})
	return nil
}

// Remove drops the record with the given identity.
func (s *Store[T]) Remove(id string) error {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.key(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrNotFound
	}
	s.publish(Event{Resource: s.resource, Op: OpDelete, ID: id})
	return nil
}

// Subscribe registers for invalidation events. Returns the event channel
// and a subscription ID for Unsubscribe.
func (s *Store[T]) Subscribe() (<-chan Event, string) {
	subID := uuid.New().String()
	ch := make(chan Event, subscriberBufferSize)

	s.mu.Lock()
	s.subscribers[subID] = ch
	s.mu.Unlock()

	return ch, subID
}

// Unsubscribe removes a subscriber and closes its channel.
func (s *Store[T]) Unsubscribe(subID string) {
	s.mu.Lock()
	ch, ok := s.subscribers[subID]
	if ok {
		delete(s.subscribers, subID)
	}
	s.mu.Unlock()

	if ok {
		close(ch)
	}
}

// publish sends an event to all subscribers. Non-blocking: events are
// dropped for subscribers whose channels are full.
func (s *Store[T]) publish(ev Event) {
	s.mu.RLock()
	targets := make([]chan Event, 0, len(s.subscribers))
	for _, ch := range s.subscribers {
		targets = append(targets, ch)
	}
	s.mu.RUnlock()

	for _, ch := range targets {
		select {
		case ch <- ev:
		default:
			s.logger.Debug("invalidation event dropped, subscriber full",
				"op", ev.Op, "id", ev.ID)
		}
	}
}
