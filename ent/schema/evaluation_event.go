package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationEvent records a formal evaluation result ingested into the
// mastery model. Topic-level detail is kept as JSON because evaluation
// shapes vary by source.
type EvaluationEvent struct {
	ent.Schema
}

func (EvaluationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvaluationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("evaluation_id").
			NotEmpty().
			Unique(),
		field.String("child_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.Float("score").
			Comment("Overall score in [0,1]"),
		field.JSON("weak_topics", []string{}).
			Optional(),
		field.JSON("strong_topics", []string{}).
			Optional(),
		field.JSON("topic_scores", map[string]float64{}).
			Optional().
			Comment("Per-topic accuracy where the evaluation reported it"),
	}
}

func (EvaluationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id"),
	}
}
