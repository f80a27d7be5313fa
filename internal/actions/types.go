package actions

import (
	"encoding/json"
	"time"
)

// Request is one action the game master asked for. Immutable once
// issued; the CallID is unique within its turn and correlates the
// eventual result.
type Request struct {
	CallID string          `json:"call_id"`
	Name   string          `json:"name"`
	Args   json.RawMessage `json:"args,omitempty"`
}

// FailureKind classifies a failed action result.
type FailureKind string

const (
	FailUnknownAction FailureKind = "unknown_action"
	FailHandlerError  FailureKind = "handler_error"
	FailTimeout       FailureKind = "timeout"
	FailCancelled     FailureKind = "cancelled"
)

// Result is the outcome of exactly one Request. OK results carry a
// payload; failed results carry a failure kind and detail. Either way
// the CallID matches the originating request.
type Result struct {
	CallID   string          `json:"call_id"`
	Name     string          `json:"name"`
	OK       bool            `json:"ok"`
	Payload  json.RawMessage `json:"payload,omitempty"`
	Failure  FailureKind     `json:"failure,omitempty"`
	Detail   string          `json:"detail,omitempty"`
	Duration time.Duration   `json:"-"`
}

// Feedback renders the result as the JSON document appended to the
// episode history for the next decision phase.
func (r Result) Feedback() string {
	b, err := json.Marshal(r)
	if err != nil {
		return `{"ok":false,"failure":"handler_error","detail":"unencodable result"}`
	}
	return string(b)
}
