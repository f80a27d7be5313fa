package adaptive

import "strings"

// positiveIndicators and encouragementIndicators are the phrase lists
// the engagement heuristic scans for in game-master responses.
var positiveIndicators = []string{"great", "excellent", "awesome", "fantastic"}

var encouragementIndicators = []string{"try again", "keep going", "you can do it"}

// UpdateEngagement nudges the engagement estimate up when the
// game-master response carries celebration or encouragement language.
// The estimate stays in [0, 1]. Crude, but it only feeds context
// rendering, never scoring.
func UpdateEngagement(current float64, response string) float64 {
	lower := strings.ToLower(response)

	boost := 0.0
	for _, w := range positiveIndicators {
		if strings.Contains(lower, w) {
			boost += 0.1
		}
	}
	for _, p := range encouragementIndicators {
		if strings.Contains(lower, p) {
			boost += 0.05
		}
	}

	return clamp(current+boost, 0, 1)
}
