package episode

import (
	"time"
)

// Default seeds for a fresh episode. These mirror the initial player
// profile the game engine assumes before any evidence arrives.
const (
	DefaultDifficulty = 0.5
	DefaultEngagement = 0.7
)

// WindowSize is the number of recent performance samples retained per
// episode. Older samples fall out of the adaptive window.
const WindowSize = 20

// Role tags a turn in the episode history.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleAction marks action results fed back to the game master.
	RoleAction Role = "action"
)

// Turn is one entry in the ordered episode history.
type Turn struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// PerformanceSample is one observation in the recent performance window.
type PerformanceSample struct {
	SkillID   string `json:"skill_id"`
	Correct   bool   `json:"correct"`
	LatencyMs int    `json:"latency_ms"`
	Hints     int    `json:"hints"`
}

// BreakerSnapshot records a tier breaker's state as of the last turn,
// persisted for diagnostics. The live state machine is owned by the
// model selector; this is an observational copy.
type BreakerSnapshot struct {
	State               string    `json:"state"` // "closed", "open", "half-open"
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastTransition      time.Time `json:"last_transition"`
}

// State is the full durable state of one play episode. It is mutated
// only by the orchestrator and, through the dispatcher, by the adaptive
// difficulty engine; handlers never touch fields directly.
type State struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`

	Turns     []Turn `json:"turns"`
	TurnCount int    `json:"turn_count"`

	Difficulty float64            `json:"difficulty"`
	Mastery    map[string]float64 `json:"mastery"`
	Window     []PerformanceSample `json:"window"`
	Engagement float64            `json:"engagement"`

	// PendingActions maps correlation id to action name for requests
	// issued but not yet resolved within the current turn.
	PendingActions map[string]string `json:"pending_actions,omitempty"`

	Breakers map[string]BreakerSnapshot `json:"breakers,omitempty"`

	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewState creates a fresh episode with default difficulty and engagement.
func NewState(id string) *State {
	now := time.Now().UTC()
	return &State{
		ID:             id,
		Difficulty:     DefaultDifficulty,
		Engagement:     DefaultEngagement,
		Mastery:        make(map[string]float64),
		PendingActions: make(map[string]string),
		Breakers:       make(map[string]BreakerSnapshot),
		StartedAt:      now,
		UpdatedAt:      now,
	}
}

// AppendTurn appends a history entry.
func (s *State) AppendTurn(role Role, content string) {
	s.Turns = append(s.Turns, Turn{Role: role, Content: content, At: time.Now().UTC()})
}

// RecordSample adds a performance observation, evicting the oldest
// sample once the window is full.
func (s *State) RecordSample(sample PerformanceSample) {
	s.Window = append(s.Window, sample)
	if len(s.Window) > WindowSize {
		s.Window = s.Window[len(s.Window)-WindowSize:]
	}
}

// Clone returns a deep copy. The orchestrator works on a clone for the
// duration of a turn so a cancelled turn leaves the loaded state untouched.
func (s *State) Clone() *State {
	out := *s

	out.Turns = make([]Turn, len(s.Turns))
	copy(out.Turns, s.Turns)

	out.Window = make([]PerformanceSample, len(s.Window))
	copy(out.Window, s.Window)

	out.Mastery = make(map[string]float64, len(s.Mastery))
	for k, v := range s.Mastery {
		out.Mastery[k] = v
	}

	out.PendingActions = make(map[string]string, len(s.PendingActions))
	for k, v := range s.PendingActions {
		out.PendingActions[k] = v
	}

	out.Breakers = make(map[string]BreakerSnapshot, len(s.Breakers))
	for k, v := range s.Breakers {
		out.Breakers[k] = v
	}

	return &out
}
