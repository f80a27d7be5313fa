package gamemaster

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pupilplay/engine/internal/episode"
)

// Renderer assembles the opaque context blob sent to the backend as the
// system prompt. It is a collaborator boundary: the engine passes the
// episode state and available action names in and treats the result as
// opaque text. Render must be pure; a render failure aborts the turn's
// decision phase.
type Renderer interface {
	Render(state *episode.State, actionNames []string) (string, error)
}

// PromptRenderer is the reference Renderer. It folds difficulty,
// mastery, recent performance and the action roster around a
// caller-supplied personality blob. The blob is configuration-driven
// text the engine never parses or interprets.
type PromptRenderer struct {
	// Personality is the educational persona and philosophy text,
	// resolved by the configuration layer before it reaches the engine.
	Personality string
}

func (r *PromptRenderer) Render(state *episode.State, actionNames []string) (string, error) {
	if state == nil {
		return "", fmt.Errorf("nil episode state")
	}

	var b strings.Builder

	if r.Personality != "" {
		b.WriteString(r.Personality)
		b.WriteString("\n\n")
	}

	b.WriteString("CURRENT GAME CONTEXT:\n")
	fmt.Fprintf(&b, "- Episode: %s\n", state.ID)
	fmt.Fprintf(&b, "- Turn: %d\n", state.TurnCount)
	fmt.Fprintf(&b, "- Difficulty: %.2f\n", state.Difficulty)
	fmt.Fprintf(&b, "- Engagement: %.2f\n", state.Engagement)

	if len(state.Window) > 0 {
		correct := 0
		for _, s := range state.Window {
			if s.Correct {
				correct++
			}
		}
		fmt.Fprintf(&b, "- Recent accuracy: %.0f%% over %d answers\n",
			100*float64(correct)/float64(len(state.Window)), len(state.Window))
	}

	if len(state.Mastery) > 0 {
		b.WriteString("- Mastery:")
		for _, skill := range sortedKeys(state.Mastery) {
			fmt.Fprintf(&b, " %s=%.2f", skill, state.Mastery[skill])
		}
		b.WriteString("\n")
	}

	if len(actionNames) > 0 {
		b.WriteString("\nAVAILABLE GAME ACTIONS:\n")
		for _, name := range actionNames {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}

	b.WriteString("\nAnswer with either a final message for the player, or the actions to run first.")

	return b.String(), nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
