package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanSlot is the serialized shape of one composed plan slot.
type PlanSlot struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Probe      bool   `json:"probe,omitempty"`
}

// QuizSessionEvent records one finished quiz session: its plan shape,
// outcome tallies, and how it ended.
type QuizSessionEvent struct {
	ent.Schema
}

func (QuizSessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizSessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique(),
		field.String("child_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.Int("question_count"),
		field.Int("correct_count"),
		field.String("end_reason").
			NotEmpty().
			Comment("completed, fatigue, frustration, or abandoned"),
		field.Bool("early_exit").
			Default(false),
		field.Bool("review_mode").
			Default(false).
			Comment("Whether gap-review biasing was active"),
		field.Int64("duration_ms"),
		field.JSON("plan", []PlanSlot{}).
			Optional().
			Comment("The composed plan as served"),
	}
}

func (QuizSessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id"),
		index.Fields("subject_id"),
	}
}
