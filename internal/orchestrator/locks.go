package orchestrator

import (
	"context"
	"sync"
)

// lockTable hands out per-episode locks so concurrent Advance calls on
// the same episode serialize while different episodes proceed in
// parallel. Locks are channel-based so a waiter can abandon the queue
// when its context is cancelled. Entries are reference-counted and
// removed once the last holder or waiter releases.
type lockTable struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	ch   chan struct{}
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{entries: make(map[string]*lockEntry)}
}

// acquire blocks until the episode lock is held or ctx is done.
func (t *lockTable) acquire(ctx context.Context, id string) error {
	t.mu.Lock()
	e, ok := t.entries[id]
	if !ok {
		e = &lockEntry{ch: make(chan struct{}, 1)}
		t.entries[id] = e
	}
	e.refs++
	t.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		t.drop(id, e)
		return ctx.Err()
	}
}

// release frees the episode lock.
func (t *lockTable) release(id string) {
	t.mu.Lock()
	e, ok := t.entries[id]
	t.mu.Unlock()
	if !ok {
		return
	}

	<-e.ch
	t.drop(id, e)
}

func (t *lockTable) drop(id string, e *lockEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(t.entries, id)
	}
}
