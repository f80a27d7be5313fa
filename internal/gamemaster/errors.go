package gamemaster

import (
	"encoding/json"
	"fmt"
)

// ErrDecisionParse indicates the backend answered but its output could
// not be classified as a final message or a set of action requests.
// It feeds the same breaker failure path as a transport error.
type ErrDecisionParse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrDecisionParse) Error() string {
	return fmt.Sprintf("unparseable game-master decision: %v", e.Err)
}

func (e *ErrDecisionParse) Unwrap() error { return e.Err }
