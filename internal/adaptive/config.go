package adaptive

// Config holds the tuning parameters for the adaptive difficulty and
// mastery rules. All updates are pure functions of these parameters and
// their inputs.
type Config struct {
	// TargetAccuracy is the accuracy the engine steers toward.
	// The original tuning keeps learners near 75% success.
	TargetAccuracy float64

	// TargetLatencyMs is the expected response time. Answers much
	// faster than this push difficulty up, much slower pull it down.
	TargetLatencyMs int

	// TargetHints is the acceptable average hint count per answer.
	TargetHints float64

	// AccuracySensitivity, LatencySensitivity and HintSensitivity scale
	// each factor's contribution to the difficulty adjustment.
	AccuracySensitivity float64
	LatencySensitivity  float64
	HintSensitivity     float64

	// MaxStep clamps the total difficulty adjustment applied per turn.
	MaxStep float64

	// MinDifficulty and MaxDifficulty bound the difficulty scalar.
	MinDifficulty float64
	MaxDifficulty float64

	// MasteryStep is the base Elo-style step for mastery updates.
	// The effective step shrinks as mastery approaches either bound.
	MasteryStep float64

	// HintDiscount scales down the positive mastery update when the
	// correct answer was reached with hints.
	HintDiscount float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		TargetAccuracy:      0.75,
		TargetLatencyMs:     10_000,
		TargetHints:         0.5,
		AccuracySensitivity: 0.4,
		LatencySensitivity:  0.1,
		HintSensitivity:     0.1,
		MaxStep:             0.15,
		MinDifficulty:       0.2,
		MaxDifficulty:       2.0,
		MasteryStep:         0.2,
		HintDiscount:        0.5,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
