package tier

import (
	"context"
	"encoding/json"

	"github.com/pupilplay/engine/internal/llm"
)

// DefaultDegradedMessage is the canned reply served when every tier is
// isolated. Matches the engine's fallback voice.
const DefaultDegradedMessage = "Let's keep learning together! Try your best on this challenge."

// DegradedResponder is an llm.Provider that always answers with a fixed
// final message and requests no actions. It never fails, which makes it
// a safe floor under the tier stack.
type DegradedResponder struct {
	message string
}

// NewDegradedResponder creates a responder with the given message,
// falling back to DefaultDegradedMessage when empty.
func NewDegradedResponder(message string) *DegradedResponder {
	if message == "" {
		message = DefaultDegradedMessage
	}
	return &DegradedResponder{message: message}
}

func (d *DegradedResponder) Generate(_ context.Context, _ llm.Request) (*llm.Response, error) {
	doc, _ := json.Marshal(map[string]any{"message": d.message})
	return &llm.Response{
		Content:    doc,
		Model:      "degraded",
		StopReason: "end",
	}, nil
}

// ModelID returns "degraded".
func (d *DegradedResponder) ModelID() string { return "degraded" }
