package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a quiz session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to QuizSessionEvent"),
		field.String("child_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty().
			Comment("Topic this question tested"),
		field.String("subject_id").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty().
			Comment("review, target, or weak"),
		field.Bool("probe").
			Default(false).
			Comment("Whether this answer belongs to a retention probe block"),
		field.Bool("correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("child_id"),
		index.Fields("topic"),
		index.Fields("correct"),
	}
}
