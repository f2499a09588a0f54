package store

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

// MemoryPersister keeps every saved snapshot in process memory.
type MemoryPersister struct {
	mu      sync.Mutex
	history []ports.Snapshot
}

// NewMemoryPersister creates an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

// Name implements ports.Persister.
func (m *MemoryPersister) Name() string { return "memory" }

// Load implements ports.Persister.
func (m *MemoryPersister) Load(context.Context) (ports.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return ports.Snapshot{}, nil
	}
	return m.history[len(m.history)-1], nil
}

// Save implements ports.Persister.
func (m *MemoryPersister) Save(_ context.Context, snapshot ports.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, snapshot)
	return nil
}

// History returns every saved snapshot, oldest first.
func (m *MemoryPersister) History() []ports.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.Snapshot(nil), m.history...)
}
