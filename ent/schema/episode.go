package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Episode is the durable record of one learning episode: the full
// checkpointable state as JSON plus the version counter backing
// optimistic concurrency. One row per episode; updates are conditional
// on the expected version.
type Episode struct {
	ent.Schema
}

func (Episode) Fields() []ent.Field {
	return []ent.Field{
		field.String("episode_id").
			Unique().
			Immutable().
			Comment("Caller-chosen episode identifier"),
		field.Int64("version").
			Default(1).
			Comment("Monotonic version, bumped on every successful write"),
		field.JSON("state", map[string]any{}).
			Comment("Full episode state as JSON"),
		field.Time("started_at").
			Immutable().
			Comment("When the episode was created"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the episode was last written"),
	}
}

func (Episode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("episode_id"),
		index.Fields("updated_at"),
	}
}
