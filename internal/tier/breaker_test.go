package tier

import (
	"testing"
	"time"
)

// fakeClock drives a breaker's notion of time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testBreaker(cfg BreakerConfig) (*Breaker, *fakeClock) {
	b := NewBreaker(cfg)
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	b.now = clock.now
	return b, clock
}

func TestBreaker_OpensAtThreshold(t *testing.T) {
	b, _ := testBreaker(BreakerConfig{FailureThreshold: 3, Window: time.Minute, CoolDown: 30 * time.Second})

	b.ReportFailure()
	b.ReportFailure()
	if snap := b.Snapshot(); snap.State != StateClosed {
		t.Fatalf("state = %s after 2 failures, want closed", snap.State)
	}

	b.ReportFailure()
	if snap := b.Snapshot(); snap.State != StateOpen {
		t.Fatalf("state = %s after 3 failures, want open", snap.State)
	}
	if b.Allow() {
		t.Fatal("open breaker allowed a call before cool-down")
	}
}

func TestBreaker_WindowExpiryResetsCount(t *testing.T) {
	b, clock := testBreaker(BreakerConfig{FailureThreshold: 3, Window: time.Minute, CoolDown: 30 * time.Second})

	b.ReportFailure()
	b.ReportFailure()

	// Past the window, stale failures no longer count.
	clock.advance(2 * time.Minute)
	b.ReportFailure()
	b.ReportFailure()

	if snap := b.Snapshot(); snap.State != StateClosed {
		t.Fatalf("state = %s, want closed (stale failures expired)", snap.State)
	}

	b.ReportFailure()
	if snap := b.Snapshot(); snap.State != StateOpen {
		t.Fatalf("state = %s, want open", snap.State)
	}
}

func TestBreaker_SuccessResetsClosedCount(t *testing.T) {
	b, _ := testBreaker(BreakerConfig{FailureThreshold: 3, Window: time.Minute, CoolDown: 30 * time.Second})

	b.ReportFailure()
	b.ReportFailure()
	b.ReportSuccess()
	b.ReportFailure()
	b.ReportFailure()

	if snap := b.Snapshot(); snap.State != StateClosed {
		t.Fatalf("state = %s, want closed (success reset the count)", snap.State)
	}
}

func TestBreaker_CoolDownGrantsSingleProbe(t *testing.T) {
	b, clock := testBreaker(BreakerConfig{FailureThreshold: 1, Window: time.Minute, CoolDown: 30 * time.Second})

	b.ReportFailure()
	if b.Allow() {
		t.Fatal("open breaker allowed a call")
	}

	clock.advance(31 * time.Second)
	if !b.Allow() {
		t.Fatal("cool-down elapsed but probe not granted")
	}
	if snap := b.Snapshot(); snap.State != StateHalfOpen {
		t.Fatalf("state = %s, want half-open", snap.State)
	}

	// Second caller while the probe is in flight.
	if b.Allow() {
		t.Fatal("half-open breaker allowed a second probe")
	}
}

func TestBreaker_ProbeSuccessCloses(t *testing.T) {
	b, clock := testBreaker(BreakerConfig{FailureThreshold: 1, Window: time.Minute, CoolDown: 30 * time.Second})

	b.ReportFailure()
	clock.advance(time.Minute)
	if !b.Allow() {
		t.Fatal("probe not granted")
	}

	b.ReportSuccess()
	snap := b.Snapshot()
	if snap.State != StateClosed {
		t.Fatalf("state = %s, want closed after successful probe", snap.State)
	}
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("failures = %d, want 0 after close", snap.ConsecutiveFailures)
	}
	if !b.Allow() {
		t.Fatal("closed breaker rejected a call")
	}
}

func TestBreaker_ProbeFailureReopens(t *testing.T) {
	b, clock := testBreaker(BreakerConfig{FailureThreshold: 1, Window: time.Minute, CoolDown: 30 * time.Second})

	b.ReportFailure()
	clock.advance(time.Minute)
	if !b.Allow() {
		t.Fatal("probe not granted")
	}

	b.ReportFailure()
	if snap := b.Snapshot(); snap.State != StateOpen {
		t.Fatalf("state = %s, want open after failed probe", snap.State)
	}

	// Cool-down restarts from the reopen.
	if b.Allow() {
		t.Fatal("reopened breaker allowed a call before a fresh cool-down")
	}
	clock.advance(31 * time.Second)
	if !b.Allow() {
		t.Fatal("fresh cool-down elapsed but probe not granted")
	}
}

func TestBreaker_ResetForcesClosed(t *testing.T) {
	b, _ := testBreaker(BreakerConfig{FailureThreshold: 1, Window: time.Minute, CoolDown: 30 * time.Second})

	b.ReportFailure()
	b.Reset()

	snap := b.Snapshot()
	if snap.State != StateClosed || snap.ConsecutiveFailures != 0 {
		t.Fatalf("after Reset: state=%s failures=%d, want closed/0", snap.State, snap.ConsecutiveFailures)
	}
	if !b.Allow() {
		t.Fatal("reset breaker rejected a call")
	}
}
