// internal/store/memory.go
//
// In-memory store of simulation transcripts served by the HTTP API.
//
// Characteristics:
//   - Stores solver.Transcript values keyed by transcript ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Holds at most a fixed number of transcripts; the oldest is evicted first.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// ErrNotFound is returned by Get for an unknown ID.
var ErrNotFound = errors.New("store: not found")

// DefaultCapacity bounds the memory store when no capacity is given.
const DefaultCapacity = 1024

// Store keeps simulation transcripts.
type Store interface {
	// Save adds or replaces a transcript.
	Save(ctx context.Context, t solver.Transcript) error

	// Get retrieves a transcript by ID.
	// Returns ErrNotFound if it is missing or was evicted.
	Get(ctx context.Context, id string) (solver.Transcript, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex                 // guards items and order
	items map[string]solver.Transcript // keyed by Transcript.ID
	order []string                     // insertion order, oldest first
	limit int
}

// NewMemoryStore constructs an in-memory Store holding up to capacity
// transcripts (DefaultCapacity when capacity <= 0).
func NewMemoryStore(capacity int) Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &memory{items: make(map[string]solver.Transcript), limit: capacity}
}

// Save adds or updates the transcript, evicting the oldest entry when full.
func (m *memory) Save(ctx context.Context, t solver.Transcript) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[t.ID]; !ok {
		if len(m.order) == m.limit {
			delete(m.items, m.order[0])
			m.order = m.order[1:]
		}
		m.order = append(m.order, t.ID)
	}
	m.items[t.ID] = t
	return nil
}

// Get looks up a transcript by ID.
func (m *memory) Get(ctx context.Context, id string) (solver.Transcript, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.items[id]; ok {
		return t, nil
	}
	return solver.Transcript{}, ErrNotFound
}
