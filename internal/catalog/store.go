package catalog

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when an item ID is unknown to the store.
var ErrNotFound = errors.New("catalog: item not found")

// Persistence reads and writes the serialized catalog as a whole.
// Implementations must treat the item slice as an opaque blob; the store
// never persists partial updates.
type Persistence interface {
	Load() ([]Item, error)
	Save([]Item) error
}

// Store owns the catalog. Every successful mutation re-serializes the full
// item list through the persistence collaborator; a failed write is logged
// as a warning and the in-memory list stays authoritative.
type Store struct {
	mu       sync.RWMutex
	items    []Item
	persist  Persistence
	log      zerolog.Logger
	onChange func()
}

// NewStore loads the persisted catalog through p, falling back to the
// built-in seed list when nothing is stored or the blob cannot be parsed.
func NewStore(p Persistence, log zerolog.Logger) *Store {
	items, err := p.Load()
	if err != nil {
		log.Warn().Err(err).Msg("catalog: falling back to seed list")
		items = Seed()
	}
	if items == nil {
		items = Seed()
	}
	return &Store{items: items, persist: p, log: log}
}

// OnChange registers a callback fired after every successful mutation.
// Used to push catalog updates to connected clients.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// List returns a copy of the catalog in stored order.
func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item with the given ID.
func (s *Store) Get(id string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// Save replaces an existing item in place (same ID, position preserved) or
// appends item with a freshly generated ID and Available set to true.
// The stored item is returned.
func (s *Store) Save(item Item) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID != "" {
		for i, it := range s.items {
			if it.ID == item.ID {
				s.items[i] = item
				s.flush()
				return item
			}
		}
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.Available = true
	s.items = append(s.items, item)
	s.flush()
	return item
}

// SetAvailability sets the availability flag. Unknown IDs are a no-op.
func (s *Store) SetAvailability(id string, available bool) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Available = available
			s.flush()
			return s.items[i], nil
		}
	}
	return Item{}, ErrNotFound
}

// Delete removes an item from the catalog.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.flush()
			return nil
		}
	}
	return ErrNotFound
}

// flush writes the whole catalog through the persistence collaborator and
// notifies change listeners. Write failures are non-fatal: the in-memory
// catalog keeps serving until the next successful write. Callers must hold
// the write lock.
func (s *Store) flush() {
	if err := s.persist.Save(s.items); err != nil {
		s.log.Warn().Err(err).Msg("catalog: persist failed, in-memory state diverges until next successful write")
	}
	if s.onChange != nil {
		go s.onChange()
	}
}
