package adaptive

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// onTargetEvent answers correctly at exactly the target latency with
// the target hint usage folded out (alternating 0/1 averages to 0.5).
func onTargetWindow(cfg Config, n int) []Event {
	events := make([]Event, n)
	for i := range events {
		events[i] = Event{
			SkillID:   "multiplication",
			Correct:   i%4 != 3, // 75% accuracy
			LatencyMs: cfg.TargetLatencyMs,
			Hints:     i % 2, // averages 0.5
		}
	}
	return events
}

func TestUpdate_EmptyWindowKeepsCurrent(t *testing.T) {
	cfg := DefaultConfig()
	got := Update(cfg, 0.8, nil)
	if !almostEqual(got, 0.8) {
		t.Errorf("Update = %f, want 0.8", got)
	}
}

func TestUpdate_OnTargetIsStable(t *testing.T) {
	cfg := DefaultConfig()
	got := Update(cfg, 1.0, onTargetWindow(cfg, 8))
	if !almostEqual(got, 1.0) {
		t.Errorf("Update = %f, want 1.0 (all factors on target)", got)
	}
}

func TestUpdate_PerfectWindowRaisesDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	window := []Event{
		{Correct: true, LatencyMs: 2000},
		{Correct: true, LatencyMs: 2000},
		{Correct: true, LatencyMs: 2000},
		{Correct: true, LatencyMs: 2000},
	}

	got := Update(cfg, 1.0, window)
	if got <= 1.0 {
		t.Errorf("Update = %f, want > 1.0 for a perfect fast window", got)
	}
}

func TestUpdate_StrugglingWindowLowersDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	window := []Event{
		{Correct: false, LatencyMs: 30000, Hints: 2},
		{Correct: false, LatencyMs: 30000, Hints: 2},
		{Correct: true, LatencyMs: 25000, Hints: 1},
		{Correct: false, LatencyMs: 30000, Hints: 3},
	}

	got := Update(cfg, 1.0, window)
	if got >= 1.0 {
		t.Errorf("Update = %f, want < 1.0 for a struggling window", got)
	}
}

func TestUpdate_StepClampedPerTurn(t *testing.T) {
	cfg := DefaultConfig()
	window := []Event{
		{Correct: false, LatencyMs: 60000, Hints: 5},
		{Correct: false, LatencyMs: 60000, Hints: 5},
	}

	got := Update(cfg, 1.0, window)
	if !almostEqual(got, 1.0-cfg.MaxStep) {
		t.Errorf("Update = %f, want %f (clamped to MaxStep)", got, 1.0-cfg.MaxStep)
	}
}

func TestUpdate_BoundClamps(t *testing.T) {
	cfg := DefaultConfig()

	losing := []Event{{Correct: false, LatencyMs: 60000, Hints: 4}}
	got := Update(cfg, cfg.MinDifficulty, losing)
	if !almostEqual(got, cfg.MinDifficulty) {
		t.Errorf("Update = %f, want floor %f", got, cfg.MinDifficulty)
	}

	winning := []Event{{Correct: true, LatencyMs: 1000}}
	got = Update(cfg, cfg.MaxDifficulty, winning)
	if !almostEqual(got, cfg.MaxDifficulty) {
		t.Errorf("Update = %f, want ceiling %f", got, cfg.MaxDifficulty)
	}
}

func TestUpdate_LatencyDeviationClamped(t *testing.T) {
	cfg := DefaultConfig()
	// An absurd latency should count the same as double the target:
	// the deviation contribution is clamped to ±1.
	slow := []Event{{Correct: true, LatencyMs: 20000}, {Correct: true, LatencyMs: 20000},
		{Correct: true, LatencyMs: 20000}, {Correct: true, LatencyMs: 20000}}
	absurd := []Event{{Correct: true, LatencyMs: 900000}, {Correct: true, LatencyMs: 900000},
		{Correct: true, LatencyMs: 900000}, {Correct: true, LatencyMs: 900000}}

	if a, b := Update(cfg, 1.0, slow), Update(cfg, 1.0, absurd); !almostEqual(a, b) {
		t.Errorf("latency deviation not clamped: %f vs %f", a, b)
	}
}

func TestUpdate_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	window := onTargetWindow(cfg, 12)
	window[3].Correct = false

	first := Update(cfg, 0.9, window)
	for range 10 {
		if got := Update(cfg, 0.9, window); got != first {
			t.Fatalf("Update not deterministic: %f vs %f", got, first)
		}
	}
}

func TestUpdate_RandomizedSequencesStayBounded(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(20260831))

	difficulty := DefaultConfig().MinDifficulty
	var window []Event
	for i := 0; i < 2000; i++ {
		window = append(window, Event{
			SkillID:   "multiplication",
			Correct:   rng.Intn(2) == 0,
			LatencyMs: rng.Intn(6 * cfg.TargetLatencyMs),
			Hints:     rng.Intn(5),
		})
		if len(window) > 20 {
			window = window[1:]
		}

		prev := difficulty
		difficulty = Update(cfg, difficulty, window)

		if difficulty < cfg.MinDifficulty || difficulty > cfg.MaxDifficulty {
			t.Fatalf("step %d: difficulty %f escaped [%f, %f]",
				i, difficulty, cfg.MinDifficulty, cfg.MaxDifficulty)
		}
		if math.Abs(difficulty-prev) > cfg.MaxStep+epsilon {
			t.Fatalf("step %d: adjustment %f exceeds max step %f",
				i, math.Abs(difficulty-prev), cfg.MaxStep)
		}
	}
}
