// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionEventsColumns holds the columns for the "action_events" table.
	ActionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "episode_id", Type: field.TypeString},
		{Name: "call_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "ok", Type: field.TypeBool},
		{Name: "failure", Type: field.TypeString, Default: ""},
		{Name: "detail", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// ActionEventsTable holds the schema information for the "action_events" table.
	ActionEventsTable = &schema.Table{
		Name:       "action_events",
		Columns:    ActionEventsColumns,
		PrimaryKey: []*schema.Column{ActionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActionEventsColumns[1]},
			},
			{
				Name:    "actionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActionEventsColumns[2]},
			},
			{
				Name:    "actionevent_episode_id",
				Unique:  false,
				Columns: []*schema.Column{ActionEventsColumns[3]},
			},
			{
				Name:    "actionevent_name",
				Unique:  false,
				Columns: []*schema.Column{ActionEventsColumns[5]},
			},
			{
				Name:    "actionevent_ok",
				Unique:  false,
				Columns: []*schema.Column{ActionEventsColumns[6]},
			},
		},
	}
	// EpisodesColumns holds the columns for the "episodes" table.
	EpisodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "episode_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "state", Type: field.TypeJSON},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EpisodesTable holds the schema information for the "episodes" table.
	EpisodesTable = &schema.Table{
		Name:       "episodes",
		Columns:    EpisodesColumns,
		PrimaryKey: []*schema.Column{EpisodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "episode_episode_id",
				Unique:  false,
				Columns: []*schema.Column{EpisodesColumns[1]},
			},
			{
				Name:    "episode_updated_at",
				Unique:  false,
				Columns: []*schema.Column{EpisodesColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString, Default: ""},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_tier",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[6]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// TurnEventsColumns holds the columns for the "turn_events" table.
	TurnEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "episode_id", Type: field.TypeString},
		{Name: "turn", Type: field.TypeInt},
		{Name: "user_message", Type: field.TypeString, Size: 2147483647},
		{Name: "final_message", Type: field.TypeString, Size: 2147483647},
		{Name: "tier", Type: field.TypeString, Default: ""},
		{Name: "degraded", Type: field.TypeBool, Default: false},
		{Name: "rounds", Type: field.TypeInt, Default: 0},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0},
	}
	// TurnEventsTable holds the schema information for the "turn_events" table.
	TurnEventsTable = &schema.Table{
		Name:       "turn_events",
		Columns:    TurnEventsColumns,
		PrimaryKey: []*schema.Column{TurnEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "turnevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[1]},
			},
			{
				Name:    "turnevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[2]},
			},
			{
				Name:    "turnevent_episode_id",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[3]},
			},
			{
				Name:    "turnevent_tier",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionEventsTable,
		EpisodesTable,
		LlmRequestEventsTable,
		TurnEventsTable,
	}
)

func init() {
}
