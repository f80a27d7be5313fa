package episode

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used by tests and ephemeral sessions.
// It applies the same version discipline as the durable store.
type MemStore struct {
	mu       sync.RWMutex
	episodes map[string]*State
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{episodes: make(map[string]*State)}
}

func (m *MemStore) Load(ctx context.Context, id string) (*State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.episodes[id]
	if !ok {
		return nil, ErrNotFound
	}
	// Hand out a copy so callers can't mutate stored state in place.
	return st.Clone(), nil
}

func (m *MemStore) Save(ctx context.Context, id string, state *State, expectedVersion int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.episodes[id]
	switch {
	case !ok && expectedVersion != 0:
		return ErrStaleWrite
	case ok && current.Version != expectedVersion:
		return ErrStaleWrite
	}

	stored := state.Clone()
	stored.Version = expectedVersion + 1
	m.episodes[id] = stored
	return nil
}

// Delete removes an episode. Used by administrative reset.
func (m *MemStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.episodes, id)
}
