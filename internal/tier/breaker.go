package tier

import (
	"sync"
	"time"
)

// BreakerState is a tier breaker's position in its failure-isolation
// lifecycle.
type BreakerState string

const (
	StateClosed   BreakerState = "closed"
	StateOpen     BreakerState = "open"
	StateHalfOpen BreakerState = "half-open"
)

// BreakerConfig tunes a tier's failure isolation.
type BreakerConfig struct {
	// FailureThreshold is the consecutive-failure count within the
	// observation window that trips the breaker.
	FailureThreshold int

	// Window bounds the observation window: failures older than this
	// no longer count toward the threshold.
	Window time.Duration

	// CoolDown is how long an open breaker waits before permitting a
	// half-open probe.
	CoolDown time.Duration
}

// DefaultBreakerConfig returns the stock breaker tuning.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		Window:           time.Minute,
		CoolDown:         30 * time.Second,
	}
}

// Snapshot is a point-in-time observation of breaker state, copied into
// episode diagnostics.
type Snapshot struct {
	State               BreakerState
	ConsecutiveFailures int
	LastTransition      time.Time
}

// Breaker is the failure-isolation state machine guarding one tier.
// Transitions are monotonic within an observation window: closed→open
// only after reaching the failure threshold, open→half-open only after
// the cool-down, half-open→closed only after a successful probe. Safe
// under concurrent reporting from many episode loops.
type Breaker struct {
	mu sync.Mutex

	config BreakerConfig

	state          BreakerState
	failures       int
	windowStart    time.Time
	lastTransition time.Time
	probeInFlight  bool

	// now is the clock, injectable by tests for cool-down control.
	now func() time.Time
}

// NewBreaker creates a closed breaker.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultBreakerConfig().Window
	}
	if cfg.CoolDown <= 0 {
		cfg.CoolDown = DefaultBreakerConfig().CoolDown
	}
	return &Breaker{
		config: cfg,
		state:  StateClosed,
		now:    time.Now,
	}
}

// Allow reports whether a call may pass through the breaker right now.
// In half-open exactly one probe is permitted; concurrent callers are
// rejected until the probe resolves.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return true

	case StateOpen:
		if b.now().Sub(b.lastTransition) < b.config.CoolDown {
			return false
		}
		// Cool-down elapsed: move to half-open and grant the probe.
		b.transition(StateHalfOpen)
		b.probeInFlight = true
		return true

	case StateHalfOpen:
		if b.probeInFlight {
			return false
		}
		b.probeInFlight = true
		return true
	}

	return false
}

// ReportSuccess records a successful call. A successful half-open probe
// closes the breaker and resets the failure count.
func (b *Breaker) ReportSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		b.probeInFlight = false
		b.failures = 0
		b.transition(StateClosed)
	case StateClosed:
		b.failures = 0
	}
}

// ReportFailure records a failed call. Crossing the threshold within
// the window opens the breaker; a failed half-open probe reopens it and
// restarts the cool-down.
func (b *Breaker) ReportFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		now := b.now()
		if b.failures == 0 || now.Sub(b.windowStart) > b.config.Window {
			b.failures = 0
			b.windowStart = now
		}
		b.failures++
		if b.failures >= b.config.FailureThreshold {
			b.transition(StateOpen)
		}

	case StateHalfOpen:
		b.probeInFlight = false
		b.transition(StateOpen)

	case StateOpen:
		// Already isolated; nothing to count.
	}
}

// Reset forces the breaker closed. Administrative use only.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.probeInFlight = false
	b.transition(StateClosed)
}

// Snapshot returns the current observable state.
func (b *Breaker) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		State:               b.state,
		ConsecutiveFailures: b.failures,
		LastTransition:      b.lastTransition,
	}
}

// transition moves state and stamps the time. Callers hold the lock.
func (b *Breaker) transition(to BreakerState) {
	b.state = to
	b.lastTransition = b.now()
}
