package adaptive

import (
	"context"
	"sync"

	"github.com/pupilplay/engine/internal/episode"
)

// Tracker is the engine's only sanctioned mutation path into an
// episode's difficulty and mastery fields. The orchestrator creates one
// per turn over its working state copy and exposes it to action
// handlers through the dispatch context; handlers never touch state
// fields directly. The mutex serializes concurrent handlers within a
// batch, preserving the one-writer-per-episode invariant.
type Tracker struct {
	mu     sync.Mutex
	config Config
	state  *episode.State
}

// NewTracker creates a tracker over the given working state.
func NewTracker(cfg Config, state *episode.State) *Tracker {
	return &Tracker{config: cfg, state: state}
}

// RecordOutcome folds one answered problem into the episode: the sample
// joins the recent performance window, mastery takes an Elo-style
// update, and difficulty is recomputed from the full window. Returns
// the new difficulty and the skill's new mastery.
func (t *Tracker) RecordOutcome(e Event) (difficulty, mastery float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.RecordSample(episode.PerformanceSample{
		SkillID:   e.SkillID,
		Correct:   e.Correct,
		LatencyMs: e.LatencyMs,
		Hints:     e.Hints,
	})

	t.state.Mastery = UpdateMastery(t.config, t.state.Mastery, e.SkillID, e.Correct, e.Hints)
	t.state.Difficulty = Update(t.config, t.state.Difficulty, windowEvents(t.state.Window))

	return t.state.Difficulty, t.state.Mastery[e.SkillID]
}

// SetDifficulty applies an explicit difficulty override, clamped to the
// configured bounds. Returns the applied value.
func (t *Tracker) SetDifficulty(v float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Difficulty = clamp(v, t.config.MinDifficulty, t.config.MaxDifficulty)
	return t.state.Difficulty
}

// Difficulty returns the current difficulty estimate.
func (t *Tracker) Difficulty() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Difficulty
}

// Mastery returns the current mastery estimate for a skill.
func (t *Tracker) Mastery(skillID string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Mastery[skillID]
}

// windowEvents converts the persisted window to update events.
func windowEvents(window []episode.PerformanceSample) []Event {
	out := make([]Event, len(window))
	for i, s := range window {
		out[i] = Event{
			SkillID:   s.SkillID,
			Correct:   s.Correct,
			LatencyMs: s.LatencyMs,
			Hints:     s.Hints,
		}
	}
	return out
}

type contextKey struct{}

// WithTracker attaches the turn's tracker to the dispatch context.
func WithTracker(ctx context.Context, t *Tracker) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// TrackerFrom extracts the turn's tracker from the dispatch context.
func TrackerFrom(ctx context.Context) (*Tracker, bool) {
	t, ok := ctx.Value(contextKey{}).(*Tracker)
	return t, ok
}
