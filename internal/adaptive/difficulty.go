package adaptive

// Event is one difficulty update observation: the outcome of a single
// answered problem. Events are never persisted on their own; they fold
// into the episode's recent performance window.
type Event struct {
	SkillID   string
	Correct   bool
	LatencyMs int
	Hints     int
}

// Update computes a new difficulty from the current value and the
// recent performance window. Three signed factors contribute: accuracy
// deviation from target, response-time deviation from target, and hint
// usage deviation. The summed adjustment is clamped to MaxStep per
// turn, and the result is clamped to the configured bounds.
//
// Pure and deterministic: same inputs, same output.
func Update(cfg Config, current float64, window []Event) float64 {
	if len(window) == 0 {
		return clamp(current, cfg.MinDifficulty, cfg.MaxDifficulty)
	}

	var correct, latencySum, hintSum float64
	for _, e := range window {
		if e.Correct {
			correct++
		}
		latencySum += float64(e.LatencyMs)
		hintSum += float64(e.Hints)
	}

	n := float64(len(window))
	accuracy := correct / n
	avgLatency := latencySum / n
	avgHints := hintSum / n

	// Above-target accuracy raises difficulty; slow answers and heavy
	// hint usage lower it.
	adjustment := cfg.AccuracySensitivity * (accuracy - cfg.TargetAccuracy)

	if cfg.TargetLatencyMs > 0 {
		latencyDeviation := (avgLatency - float64(cfg.TargetLatencyMs)) / float64(cfg.TargetLatencyMs)
		adjustment -= cfg.LatencySensitivity * clamp(latencyDeviation, -1, 1)
	}

	adjustment -= cfg.HintSensitivity * (avgHints - cfg.TargetHints)

	adjustment = clamp(adjustment, -cfg.MaxStep, cfg.MaxStep)

	return clamp(current+adjustment, cfg.MinDifficulty, cfg.MaxDifficulty)
}
