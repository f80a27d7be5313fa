package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entepisode "github.com/pupilplay/engine/ent/episode"

	"github.com/pupilplay/engine/ent"
	"github.com/pupilplay/engine/internal/episode"
)

// EpisodeRepo is the durable episode store. It implements
// episode.Store with version-conditional writes: Save succeeds only
// when the stored version matches the caller's expectation, so two
// interleaved load-modify-save cycles cannot silently clobber each
// other.
type EpisodeRepo struct {
	client *ent.Client
}

func (r *EpisodeRepo) Load(ctx context.Context, id string) (*episode.State, error) {
	row, err := r.client.Episode.Query().
		Where(entepisode.EpisodeID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, episode.ErrNotFound
		}
		return nil, fmt.Errorf("query episode: %w", err)
	}

	state, err := stateFromMap(row.State)
	if err != nil {
		return nil, fmt.Errorf("decode episode %s: %w", id, err)
	}
	state.ID = id
	state.Version = row.Version
	return state, nil
}

func (r *EpisodeRepo) Save(ctx context.Context, id string, state *episode.State, expectedVersion int64) error {
	dataMap, err := stateToMap(state)
	if err != nil {
		return fmt.Errorf("encode episode %s: %w", id, err)
	}

	if expectedVersion == 0 {
		return r.create(ctx, id, state, dataMap)
	}

	n, err := r.client.Episode.Update().
		Where(
			entepisode.EpisodeID(id),
			entepisode.Version(expectedVersion),
		).
		SetVersion(expectedVersion + 1).
		SetState(dataMap).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update episode: %w", err)
	}
	if n == 0 {
		return episode.ErrStaleWrite
	}
	return nil
}

func (r *EpisodeRepo) create(ctx context.Context, id string, state *episode.State, dataMap map[string]any) error {
	startedAt := state.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}

	_, err := r.client.Episode.Create().
		SetEpisodeID(id).
		SetVersion(1).
		SetState(dataMap).
		SetStartedAt(startedAt).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Someone else created the episode between our load and save.
			return episode.ErrStaleWrite
		}
		return fmt.Errorf("create episode: %w", err)
	}
	return nil
}

// Delete removes an episode. Used by administrative reset.
func (r *EpisodeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Episode.Delete().
		Where(entepisode.EpisodeID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete episode: %w", err)
	}
	return nil
}

// List returns all episode ids, most recently updated first.
func (r *EpisodeRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.client.Episode.Query().
		Order(ent.Desc(entepisode.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.EpisodeID
	}
	return ids, nil
}

// stateToMap converts episode state to map[string]any for ent JSON storage.
func stateToMap(state *episode.State) (map[string]any, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// stateFromMap converts stored JSON back into episode state.
func stateFromMap(m map[string]any) (*episode.State, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var state episode.State
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, err
	}
	if state.Mastery == nil {
		state.Mastery = make(map[string]float64)
	}
	if state.PendingActions == nil {
		state.PendingActions = make(map[string]string)
	}
	return &state, nil
}
