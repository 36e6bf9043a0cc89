package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProbeEvent records the scored outcome of one retention probe.
type ProbeEvent struct {
	ent.Schema
}

func (ProbeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProbeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("child_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.Int("correct"),
		field.Int("total"),
		field.Bool("passed"),
		field.Int("next_interval_days").
			Comment("Interval scheduled after applying this result"),
		field.String("session_id").
			Optional(),
	}
}

func (ProbeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id"),
		index.Fields("topic"),
	}
}
