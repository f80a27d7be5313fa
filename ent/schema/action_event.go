package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionEvent records one dispatched game action result.
type ActionEvent struct {
	ent.Schema
}

func (ActionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("episode_id").
			Comment("Episode the action ran in"),
		field.String("call_id").
			Comment("Correlation id from the originating request"),
		field.String("name").
			Comment("Action name"),
		field.Bool("ok").
			Comment("Whether the handler succeeded"),
		field.String("failure").
			Default("").
			Comment("Failure kind for failed results"),
		field.Text("detail").
			Default("").
			Comment("Failure detail for failed results"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Handler wall-clock time"),
	}
}

func (ActionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("episode_id"),
		index.Fields("name"),
		index.Fields("ok"),
	}
}
