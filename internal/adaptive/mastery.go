package adaptive

// UpdateMastery applies an Elo-style mastery update for one skill and
// returns a new map; the input map is not mutated. Mastery moves toward
// 1 on correct answers and toward 0 on incorrect ones, with the step
// shrinking as the estimate approaches either bound so it settles
// instead of oscillating. A hinted correct answer earns a discounted
// positive update; hints don't soften an incorrect one.
func UpdateMastery(cfg Config, mastery map[string]float64, skillID string, correct bool, hintsUsed int) map[string]float64 {
	out := make(map[string]float64, len(mastery)+1)
	for k, v := range mastery {
		out[k] = v
	}

	m := clamp(out[skillID], 0, 1)

	var delta float64
	if correct {
		delta = cfg.MasteryStep * (1 - m)
		if hintsUsed > 0 {
			delta *= cfg.HintDiscount
		}
	} else {
		delta = -cfg.MasteryStep * m
	}

	out[skillID] = clamp(m+delta, 0, 1)
	return out
}
