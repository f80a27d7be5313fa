package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one completed episode turn: the incoming message,
// the final response, and how the turn was served.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("episode_id").
			Comment("Episode the turn belongs to"),
		field.Int("turn").
			Comment("Episode turn counter after the turn"),
		field.Text("user_message").
			Comment("Incoming learner message"),
		field.Text("final_message").
			Comment("Final response shown to the learner"),
		field.String("tier").
			Default("").
			Comment("Tier that produced the final decision"),
		field.Bool("degraded").
			Default(false).
			Comment("Whether the turn was served degraded"),
		field.Int("rounds").
			Default(0).
			Comment("Action rounds the turn consumed"),
		field.Float("difficulty").
			Default(0).
			Comment("Difficulty estimate after the turn"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("episode_id"),
		index.Fields("tier"),
	}
}
