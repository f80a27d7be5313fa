package episode

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no episode exists for the id.
var ErrNotFound = errors.New("episode not found")

// ErrStaleWrite is returned by Save when the stored version no longer
// matches the version the caller loaded. The caller must reload and
// retry; the engine never retries this silently.
var ErrStaleWrite = errors.New("stale episode write")

// Store is the durable episode persistence boundary. Save is a
// conditional write keyed by episode id: it succeeds only when the
// stored version equals expectedVersion, then bumps the version.
// Saving a new episode uses expectedVersion 0.
type Store interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, id string, state *State, expectedVersion int64) error
}
