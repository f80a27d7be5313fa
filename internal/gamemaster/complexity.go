package gamemaster

import (
	"strings"

	"github.com/pupilplay/engine/internal/episode"
)

// complexityWindow is how many trailing history turns the default
// scorer inspects.
const complexityWindow = 3

// complexityFactors maps indicator words to the weight their factor
// contributes. Each factor fires at most once per scoring pass.
var complexityFactors = []struct {
	weight float64
	words  []string
}{
	{0.3, []string{"why", "how", "explain"}},         // explanation needed
	{0.2, []string{"create", "design", "make"}},      // creative thinking
	{0.3, []string{"step", "solve", "break down"}},   // multi-step reasoning
	{0.2, []string{"show", "picture", "visual"}},     // visual generation
}

// ComplexityScore derives a complexity score in [0,1] from the tail of
// the episode history. It is the default Scorer; callers with explicit
// escalation signals supply their own.
func ComplexityScore(state *episode.State) float64 {
	turns := state.Turns
	if len(turns) > complexityWindow {
		turns = turns[len(turns)-complexityWindow:]
	}

	score := 0.0
	for _, factor := range complexityFactors {
		for _, turn := range turns {
			if containsAny(strings.ToLower(turn.Content), factor.words) {
				score += factor.weight
				break
			}
		}
	}

	if score > 1 {
		score = 1
	}
	return score
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
