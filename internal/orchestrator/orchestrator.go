// Package orchestrator runs the decision/action loop that advances an
// episode by one user message. It owns turn lifecycle: loading and
// persisting episode state, serializing concurrent calls per episode,
// bounding the number of action rounds, and converting backend-layer
// failures into degraded outcomes the caller can present.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pupilplay/engine/internal/actions"
	"github.com/pupilplay/engine/internal/adaptive"
	"github.com/pupilplay/engine/internal/episode"
	"github.com/pupilplay/engine/internal/gamemaster"
	"github.com/pupilplay/engine/internal/store"
	"github.com/pupilplay/engine/internal/tier"
)

// ErrTurnBudgetExceeded marks a turn that hit the action round budget
// before the game master produced a final message. The outcome returned
// alongside it carries the diagnostic detail.
var ErrTurnBudgetExceeded = errors.New("turn action budget exceeded")

// Failure reasons reported in Diagnostics.Reason.
const (
	ReasonAllTiersUnavailable = "all_tiers_unavailable"
	ReasonDecisionParse       = "decision_parse"
	ReasonBackendError        = "backend_error"
	ReasonTurnBudget          = "turn_budget_exceeded"
)

// Config tunes the orchestrator.
type Config struct {
	// MaxActionRounds bounds decision/action iterations per incoming
	// message.
	MaxActionRounds int

	// AutoCreate makes Advance create the episode on first contact
	// instead of failing with episode.ErrNotFound.
	AutoCreate bool

	// Adaptive tunes the difficulty engine backing the turn tracker.
	Adaptive adaptive.Config
}

// DefaultConfig returns the stock orchestrator tuning.
func DefaultConfig() Config {
	return Config{
		MaxActionRounds: 6,
		AutoCreate:      true,
		Adaptive:        adaptive.DefaultConfig(),
	}
}

// Deps are the collaborators an Orchestrator drives.
type Deps struct {
	Store      episode.Store
	GameMaster *gamemaster.GameMaster
	Dispatcher *actions.Dispatcher
	Registry   *actions.Registry
	Renderer   gamemaster.Renderer
	Selector   *tier.Selector

	// Events receives turn and action telemetry. Optional.
	Events store.EventRepo
}

// Diagnostics describes how a turn went, degraded or not.
type Diagnostics struct {
	// Tier names the backend tier that produced the final decision.
	Tier string `json:"tier,omitempty"`

	// Degraded marks an outcome served without a healthy backend.
	Degraded bool `json:"degraded,omitempty"`

	// Reason classifies a degraded outcome.
	Reason string `json:"reason,omitempty"`

	// Rounds counts the action rounds the turn consumed.
	Rounds int `json:"rounds"`

	// FailedActions lists the names of actions that failed, in
	// dispatch order.
	FailedActions []string `json:"failed_actions,omitempty"`

	// Breakers records tier breaker state as of turn end.
	Breakers map[string]tier.Snapshot `json:"breakers,omitempty"`
}

// TurnOutcome is what Advance hands back to the caller.
type TurnOutcome struct {
	EpisodeID    string             `json:"episode_id"`
	FinalMessage string             `json:"final_message"`
	Difficulty   float64            `json:"difficulty"`
	Mastery      map[string]float64 `json:"mastery,omitempty"`
	Diagnostics  Diagnostics        `json:"diagnostics"`
}

// Orchestrator advances episodes. Safe for concurrent use; calls for
// the same episode serialize on a per-episode lock.
type Orchestrator struct {
	deps   Deps
	config Config
	locks  *lockTable
}

// New creates an Orchestrator. Store, GameMaster, Dispatcher, Registry
// and Renderer are required.
func New(deps Deps, cfg Config) (*Orchestrator, error) {
	switch {
	case deps.Store == nil:
		return nil, errors.New("orchestrator: store is required")
	case deps.GameMaster == nil:
		return nil, errors.New("orchestrator: game master is required")
	case deps.Dispatcher == nil:
		return nil, errors.New("orchestrator: dispatcher is required")
	case deps.Registry == nil:
		return nil, errors.New("orchestrator: registry is required")
	case deps.Renderer == nil:
		return nil, errors.New("orchestrator: renderer is required")
	}
	if cfg.MaxActionRounds <= 0 {
		cfg.MaxActionRounds = DefaultConfig().MaxActionRounds
	}
	return &Orchestrator{deps: deps, config: cfg, locks: newLockTable()}, nil
}

// Advance runs one full turn: append the user message, loop decision
// and action phases until the game master produces a final message,
// persist the updated state, and return the outcome.
//
// The turn runs on a clone of the loaded state. Cancellation at any
// point discards the clone, so a cancelled turn leaves the episode
// exactly as loaded. Degraded outcomes (all tiers isolated, decision
// parse exhaustion, budget exhaustion) are also not persisted, keeping
// retries safe.
func (o *Orchestrator) Advance(ctx context.Context, episodeID, message string) (*TurnOutcome, error) {
	if episodeID == "" {
		return nil, errors.New("orchestrator: episode id is empty")
	}

	if err := o.locks.acquire(ctx, episodeID); err != nil {
		return nil, err
	}
	defer o.locks.release(episodeID)

	loaded, err := o.deps.Store.Load(ctx, episodeID)
	if errors.Is(err, episode.ErrNotFound) && o.config.AutoCreate {
		loaded = episode.NewState(episodeID)
		err = nil
	}
	if err != nil {
		return nil, err
	}

	work := loaded.Clone()
	work.AppendTurn(episode.RoleUser, message)

	tracker := adaptive.NewTracker(o.config.Adaptive, work)
	dispatchCtx := adaptive.WithTracker(ctx, tracker)

	diag := Diagnostics{}

	for {
		rendered, err := o.deps.Renderer.Render(work, o.deps.Registry.Names())
		if err != nil {
			return nil, fmt.Errorf("render context: %w", err)
		}

		decision, err := o.deps.GameMaster.Decide(ctx, work, rendered)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return o.degradedOutcome(ctx, episodeID, work, diag, err)
		}

		if decision.Degraded {
			diag.Tier = decision.Tier
			diag.Degraded = true
			diag.Reason = ReasonAllTiersUnavailable
			diag.Breakers = o.breakerSnapshot()
			return o.finish(work, decision.Message, diag), nil
		}

		if decision.Final() {
			diag.Tier = decision.Tier
			diag.Breakers = o.breakerSnapshot()

			work.AppendTurn(episode.RoleAssistant, decision.Message)
			work.Engagement = adaptive.UpdateEngagement(work.Engagement, decision.Message)
			work.Breakers = persistedBreakers(diag.Breakers)
			work.TurnCount++
			work.UpdatedAt = time.Now().UTC()

			if err := o.deps.Store.Save(ctx, episodeID, work, loaded.Version); err != nil {
				return nil, err
			}

			outcome := o.finish(work, decision.Message, diag)
			o.recordTurn(ctx, episodeID, message, work.TurnCount, outcome)
			return outcome, nil
		}

		if diag.Rounds >= o.config.MaxActionRounds {
			diag.Degraded = true
			diag.Reason = ReasonTurnBudget
			diag.Breakers = o.breakerSnapshot()
			outcome := o.finish(work, turnBudgetMessage, diag)
			return outcome, ErrTurnBudgetExceeded
		}
		diag.Rounds++

		for _, req := range decision.Requests {
			work.PendingActions[req.CallID] = req.Name
		}

		results := o.deps.Dispatcher.Execute(dispatchCtx, decision.Requests)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		for _, res := range results {
			if !res.OK {
				diag.FailedActions = append(diag.FailedActions, res.Name)
			}
			work.AppendTurn(episode.RoleAction, res.Feedback())
			delete(work.PendingActions, res.CallID)
			o.recordAction(ctx, episodeID, res)
		}
		work.TurnCount++
	}
}

// degradedOutcome converts a decision-phase error into a degraded turn
// outcome. The episode is not persisted; the caller sees the canned
// message plus the failure classification.
func (o *Orchestrator) degradedOutcome(ctx context.Context, episodeID string, work *episode.State, diag Diagnostics, cause error) (*TurnOutcome, error) {
	diag.Degraded = true
	diag.Breakers = o.breakerSnapshot()

	var parseErr *gamemaster.ErrDecisionParse
	switch {
	case errors.Is(cause, tier.ErrAllTiersUnavailable):
		diag.Reason = ReasonAllTiersUnavailable
	case errors.As(cause, &parseErr):
		diag.Reason = ReasonDecisionParse
	default:
		diag.Reason = ReasonBackendError
	}

	return o.finish(work, tier.DefaultDegradedMessage, diag), cause
}

// finish builds the outcome snapshot handed to the caller.
func (o *Orchestrator) finish(work *episode.State, message string, diag Diagnostics) *TurnOutcome {
	mastery := make(map[string]float64, len(work.Mastery))
	for k, v := range work.Mastery {
		mastery[k] = v
	}

	return &TurnOutcome{
		EpisodeID:    work.ID,
		FinalMessage: message,
		Difficulty:   work.Difficulty,
		Mastery:      mastery,
		Diagnostics:  diag,
	}
}

func (o *Orchestrator) breakerSnapshot() map[string]tier.Snapshot {
	if o.deps.Selector == nil {
		return nil
	}
	return o.deps.Selector.Snapshot()
}

// persistedBreakers converts live breaker snapshots into the
// observational form stored on the episode.
func persistedBreakers(snaps map[string]tier.Snapshot) map[string]episode.BreakerSnapshot {
	if len(snaps) == 0 {
		return nil
	}
	out := make(map[string]episode.BreakerSnapshot, len(snaps))
	for name, s := range snaps {
		out[name] = episode.BreakerSnapshot{
			State:               string(s.State),
			ConsecutiveFailures: s.ConsecutiveFailures,
			LastTransition:      s.LastTransition,
		}
	}
	return out
}

// turnBudgetMessage is the reply for a budget-exhausted turn. The game
// master never produced a final message within the round budget, and
// action feedback is wire JSON, so the caller gets a fresh nudge rather
// than a replayed earlier answer.
const turnBudgetMessage = "That took more steps than expected. Let's try that one again!"

func (o *Orchestrator) recordTurn(ctx context.Context, episodeID, userMessage string, turn int, outcome *TurnOutcome) {
	if o.deps.Events == nil {
		return
	}
	// Telemetry is best effort; a failed append never fails the turn.
	_ = o.deps.Events.AppendTurn(ctx, store.TurnEventData{
		EpisodeID:    episodeID,
		Turn:         turn,
		UserMessage:  userMessage,
		FinalMessage: outcome.FinalMessage,
		Tier:         outcome.Diagnostics.Tier,
		Degraded:     outcome.Diagnostics.Degraded,
		Rounds:       outcome.Diagnostics.Rounds,
		Difficulty:   outcome.Difficulty,
	})
}

func (o *Orchestrator) recordAction(ctx context.Context, episodeID string, res actions.Result) {
	if o.deps.Events == nil {
		return
	}
	_ = o.deps.Events.AppendAction(ctx, store.ActionEventData{
		EpisodeID:  episodeID,
		CallID:     res.CallID,
		Name:       res.Name,
		OK:         res.OK,
		Failure:    string(res.Failure),
		Detail:     res.Detail,
		DurationMs: res.Duration.Milliseconds(),
	})
}
