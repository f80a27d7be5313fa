package tier

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pupilplay/engine/internal/llm"
)

// ErrAllTiersUnavailable is returned by Select when every tier's
// breaker is open.
var ErrAllTiersUnavailable = errors.New("all backend tiers unavailable")

// Tier couples a reasoning backend with the complexity threshold above
// which it is warranted. Tiers are ordered by cost: a tier with a
// higher threshold is more capable and more expensive.
type Tier struct {
	// Name identifies the tier ("flash", "pro").
	Name string

	// Threshold is the minimum complexity score that warrants this
	// tier. The cheapest tier should carry threshold 0.
	Threshold float64

	// Provider is the backend serving this tier.
	Provider llm.Provider
}

// Selector owns tier selection and the per-tier breaker table. The
// table is process-wide: created at startup, shared by every episode
// loop, and reset only through the administrative Reset operation.
type Selector struct {
	tiers    []*entry // ordered by ascending threshold
	degraded llm.Provider
}

type entry struct {
	tier    Tier
	breaker *Breaker
}

// NewSelector builds a selector over the given tiers. The degraded
// provider answers when every tier is isolated; pass nil to surface
// ErrAllTiersUnavailable to the caller instead.
func NewSelector(tiers []Tier, breakerCfg BreakerConfig, degraded llm.Provider) (*Selector, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("at least one tier is required")
	}

	entries := make([]*entry, len(tiers))
	seen := make(map[string]bool, len(tiers))
	for i, t := range tiers {
		if t.Name == "" {
			return nil, fmt.Errorf("tier %d has no name", i)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate tier name %q", t.Name)
		}
		if t.Provider == nil {
			return nil, fmt.Errorf("tier %q has no provider", t.Name)
		}
		seen[t.Name] = true
		entries[i] = &entry{tier: t, breaker: NewBreaker(breakerCfg)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].tier.Threshold < entries[j].tier.Threshold
	})

	return &Selector{tiers: entries, degraded: degraded}, nil
}

// Select picks the backend for a turn. The complexity score (in [0,1])
// selects the most capable tier whose threshold it meets; if that
// tier's breaker is open, selection falls through to the next-cheaper
// healthy tier. When every tier is isolated Select returns
// ErrAllTiersUnavailable and the caller should fall back to Degraded.
func (s *Selector) Select(complexityScore float64) (*Handle, error) {
	// Index of the most capable warranted tier.
	chosen := 0
	for i, e := range s.tiers {
		if complexityScore >= e.tier.Threshold {
			chosen = i
		}
	}

	for i := chosen; i >= 0; i-- {
		e := s.tiers[i]
		if e.breaker.Allow() {
			return &Handle{name: e.tier.Name, provider: e.tier.Provider, breaker: e.breaker}, nil
		}
	}

	return nil, ErrAllTiersUnavailable
}

// Degraded returns the configured degraded responder, or nil.
func (s *Selector) Degraded() llm.Provider {
	return s.degraded
}

// Snapshot returns the current breaker state per tier.
func (s *Selector) Snapshot() map[string]Snapshot {
	out := make(map[string]Snapshot, len(s.tiers))
	for _, e := range s.tiers {
		out[e.tier.Name] = e.breaker.Snapshot()
	}
	return out
}

// Reset force-closes every breaker. Administrative operation; normal
// recovery goes through the half-open probe path.
func (s *Selector) Reset() {
	for _, e := range s.tiers {
		e.breaker.Reset()
	}
}

// Handle is a single-call grant through a tier's breaker. The caller
// invokes Generate once, then must settle the outcome with exactly one
// of Ack (usable output) or Nack (malformed output); transport errors
// are settled by Generate itself. Settling twice is a no-op hazard the
// caller avoids, not a guarded state.
type Handle struct {
	name     string
	provider llm.Provider
	breaker  *Breaker
	settled  bool
}

// Name returns the tier name the grant was issued for.
func (h *Handle) Name() string { return h.name }

// Generate invokes the tier's backend. A transport error is reported to
// the breaker immediately; a successful response stays unsettled until
// the caller has classified the output and calls Ack or Nack.
//
// A caller-side cancellation is not a backend failure: the turn is
// being discarded, and breaker state is shared by every episode, so
// the handle settles without a report.
func (h *Handle) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	resp, err := h.provider.Generate(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			h.settled = true
			return nil, err
		}
		h.settle(false)
		return nil, err
	}
	return resp, nil
}

// Ack reports the call as a success to the breaker.
func (h *Handle) Ack() { h.settle(true) }

// Nack reports the call as a failure to the breaker. Used when the
// backend answered but its output could not be interpreted.
func (h *Handle) Nack() { h.settle(false) }

func (h *Handle) settle(ok bool) {
	if h.settled {
		return
	}
	h.settled = true
	if ok {
		h.breaker.ReportSuccess()
	} else {
		h.breaker.ReportFailure()
	}
}
