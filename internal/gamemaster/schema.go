package gamemaster

import "github.com/pupilplay/engine/internal/llm"

// DecisionSchema is the JSON Schema every backend tier must answer
// with. Exactly one of the two shapes is allowed: a final user-facing
// message, or a non-empty list of action requests. Anything else is a
// decision parse failure.
func DecisionSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "game-master-decision",
		Description: "Either a final message for the player, or the game actions to execute before answering.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"message": map[string]any{
					"type":        "string",
					"description": "Final user-facing message ending this turn.",
				},
				"actions": map[string]any{
					"type":        "array",
					"description": "Game actions to execute before the next decision.",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{
								"type":        "string",
								"description": "Registered action name.",
							},
							"args": map[string]any{
								"type":        "object",
								"description": "Action arguments.",
							},
						},
						"required": []any{"name"},
					},
				},
			},
			"oneOf": []any{
				map[string]any{"required": []any{"message"}},
				map[string]any{"required": []any{"actions"}},
			},
		},
	}
}
