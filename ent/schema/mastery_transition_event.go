package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryTransitionEvent records a band change for audit and analytics.
type MasteryTransitionEvent struct {
	ent.Schema
}

func (MasteryTransitionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryTransitionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("child_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("from_band").NotEmpty(),
		field.String("to_band").NotEmpty(),
		field.Float("p_known"),
		field.String("trigger").
			NotEmpty().
			Comment("quiz, evaluation, probe, or bootstrap"),
	}
}

func (MasteryTransitionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id"),
		index.Fields("topic"),
	}
}
