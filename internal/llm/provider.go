package llm

import (
	"context"
	"encoding/json"
)

// Provider is the backend-invocation boundary for one reasoning tier.
// The game master sends the conversation plus rendered context and gets
// structured JSON back; everything vendor-specific lives behind this
// interface.
type Provider interface {
	// Generate sends a prompt to the backend and returns its output.
	// When the request carries a Schema the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON document.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the backend.
type Request struct {
	// System is the system prompt. For game-master calls this is the
	// rendered context blob produced by the prompt renderer.
	System string

	// Messages is the conversation history, oldest first. Tool results
	// appended by the orchestrator appear as user-role turns.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// Nil means raw text, returned as a JSON string.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the backend.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "game-master-decision".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the backend to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the backend's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in
	// the request this is the validated JSON object, otherwise the raw
	// text wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
