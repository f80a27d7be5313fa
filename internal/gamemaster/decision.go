package gamemaster

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/pupilplay/engine/internal/actions"
	"github.com/pupilplay/engine/internal/episode"
	"github.com/pupilplay/engine/internal/llm"
	"github.com/pupilplay/engine/internal/tier"
)

// Config tunes the decision component.
type Config struct {
	// MaxTokens bounds each backend response.
	MaxTokens int

	// Temperature for backend calls. 0 keeps decisions deterministic.
	Temperature float64

	// MaxAttempts bounds how many backend invocations one decision may
	// consume before the parse failure surfaces to the orchestrator.
	MaxAttempts int

	// Scorer derives the complexity score handed to the model
	// selector. Defaults to ComplexityScore.
	Scorer func(*episode.State) float64
}

// DefaultConfig returns the stock decision tuning.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		MaxAttempts: 2,
		Scorer:      ComplexityScore,
	}
}

// Decision is the two-variant output of one decision phase: either a
// final user-facing message, or the action requests to execute before
// the next decision. Exactly one variant is populated.
type Decision struct {
	// Message is the final user-facing message. Empty when actions
	// were requested.
	Message string

	// Requests are the actions to dispatch, each carrying a
	// correlation id unique within the turn.
	Requests []actions.Request

	// Tier names the backend tier that produced the decision
	// ("degraded" for the fallback responder).
	Tier string

	// Degraded marks a decision served by the degraded responder
	// because every tier was isolated.
	Degraded bool
}

// Final reports whether this decision ends the turn.
func (d *Decision) Final() bool {
	return len(d.Requests) == 0
}

// GameMaster is the decision component. It invokes the backend chosen
// by the model selector with the conversation history plus the rendered
// context, and classifies the structured output. It performs no game
// rule logic itself.
type GameMaster struct {
	selector *tier.Selector
	config   Config
}

// New creates a GameMaster over the given selector.
func New(selector *tier.Selector, cfg Config) *GameMaster {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.Scorer == nil {
		cfg.Scorer = ComplexityScore
	}
	return &GameMaster{selector: selector, config: cfg}
}

// Decide runs one decision phase. renderedContext is the opaque blob
// produced by the prompt renderer. Malformed backend output is reported
// to the tier's breaker and retried within the attempt budget; when all
// tiers are isolated the degraded responder (when configured) answers
// with Degraded set.
func (g *GameMaster) Decide(ctx context.Context, state *episode.State, renderedContext string) (*Decision, error) {
	req := llm.Request{
		System:      renderedContext,
		Messages:    historyMessages(state.Turns),
		Schema:      DecisionSchema(),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	score := g.config.Scorer(state)

	var lastErr error
	for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
		handle, err := g.selector.Select(score)
		if err != nil {
			return g.degraded(ctx, req, err)
		}

		resp, err := handle.Generate(llm.WithPurpose(ctx, "game-master"), req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		decision, perr := classify(resp.Content)
		if perr != nil {
			handle.Nack()
			lastErr = perr
			continue
		}

		handle.Ack()
		decision.Tier = handle.Name()
		return decision, nil
	}

	return nil, lastErr
}

// degraded serves the fallback response when every tier is open.
func (g *GameMaster) degraded(ctx context.Context, req llm.Request, cause error) (*Decision, error) {
	fallback := g.selector.Degraded()
	if fallback == nil {
		return nil, cause
	}

	resp, err := fallback.Generate(ctx, req)
	if err != nil {
		return nil, cause
	}

	decision, perr := classify(resp.Content)
	if perr != nil {
		return nil, cause
	}

	decision.Tier = fallback.ModelID()
	decision.Degraded = true
	return decision, nil
}

// decisionDoc is the wire shape of a backend decision.
type decisionDoc struct {
	Message string `json:"message"`
	Actions []struct {
		Name string          `json:"name"`
		Args json.RawMessage `json:"args"`
	} `json:"actions"`
}

// classify interprets raw backend output as exactly one decision
// variant. Correlation ids are minted here, one per requested action.
func classify(content json.RawMessage) (*Decision, error) {
	var doc decisionDoc
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &ErrDecisionParse{Content: content, Err: err}
	}

	hasMessage := doc.Message != ""
	hasActions := len(doc.Actions) > 0

	switch {
	case hasMessage && hasActions:
		return nil, &ErrDecisionParse{Content: content, Err: fmt.Errorf("both message and actions present")}
	case !hasMessage && !hasActions:
		return nil, &ErrDecisionParse{Content: content, Err: fmt.Errorf("neither message nor actions present")}
	}

	if hasMessage {
		return &Decision{Message: doc.Message}, nil
	}

	requests := make([]actions.Request, len(doc.Actions))
	for i, a := range doc.Actions {
		if a.Name == "" {
			return nil, &ErrDecisionParse{Content: content, Err: fmt.Errorf("action %d has no name", i)}
		}
		requests[i] = actions.Request{
			CallID: uuid.NewString(),
			Name:   a.Name,
			Args:   a.Args,
		}
	}
	return &Decision{Requests: requests}, nil
}

// historyMessages converts episode history to backend messages. Action
// results read back as user-role turns, the convention the decision
// schema prompt expects.
func historyMessages(turns []episode.Turn) []llm.Message {
	out := make([]llm.Message, len(turns))
	for i, t := range turns {
		role := llm.RoleUser
		if t.Role == episode.RoleAssistant {
			role = llm.RoleAssistant
		}
		out[i] = llm.Message{Role: role, Content: t.Content}
	}
	return out
}
