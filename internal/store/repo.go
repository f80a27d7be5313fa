package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	EpisodeID string    // restrict to one episode where applicable
}

// LLMRequestEventData captures the data for a single backend request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Tier         string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored backend request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStat aggregates backend usage for one grouping key (purpose or
// model).
type UsageStat struct {
	Key          string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	TotalMs      int64
}

// TurnEventData captures one completed episode turn.
type TurnEventData struct {
	EpisodeID    string
	Turn         int
	UserMessage  string
	FinalMessage string
	Tier         string
	Degraded     bool
	Rounds       int
	Difficulty   float64
}

// TurnEventRecord is a stored turn event.
type TurnEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	TurnEventData
}

// ActionEventData captures one dispatched action result.
type ActionEventData struct {
	EpisodeID  string
	CallID     string
	Name       string
	OK         bool
	Failure    string
	Detail     string
	DurationMs int64
}

// EventRepo provides append and query access to domain events. Every
// append draws from the shared sequence counter so events of different
// types stay globally ordered.
type EventRepo interface {
	// AppendLLMRequest records a backend API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendTurn records a completed episode turn.
	AppendTurn(ctx context.Context, data TurnEventData) error

	// AppendAction records a dispatched action result.
	AppendAction(ctx context.Context, data ActionEventData) error

	// QueryLLMEvents returns backend request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one backend request event by row id.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates backend usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates backend usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]UsageStat, error)

	// QueryTurnEvents returns turn events, newest first.
	QueryTurnEvents(ctx context.Context, opts QueryOpts) ([]TurnEventRecord, error)
}
