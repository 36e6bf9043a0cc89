// Code generated by ent, DO NOT EDIT.

package evaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EvaluationID applies equality check predicate on the "evaluation_id" field. It's identical to EvaluationIDEQ.
func EvaluationID(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldEvaluationID, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldChildID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSubjectID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldScore, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EvaluationIDEQ applies the EQ predicate on the "evaluation_id" field.
func EvaluationIDEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldEvaluationID, v))
}

// EvaluationIDNEQ applies the NEQ predicate on the "evaluation_id" field.
func EvaluationIDNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldEvaluationID, v))
}

// EvaluationIDIn applies the In predicate on the "evaluation_id" field.
func EvaluationIDIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldEvaluationID, vs...))
}

// EvaluationIDNotIn applies the NotIn predicate on the "evaluation_id" field.
func EvaluationIDNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldEvaluationID, vs...))
}

// EvaluationIDGT applies the GT predicate on the "evaluation_id" field.
func EvaluationIDGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldEvaluationID, v))
}

// EvaluationIDGTE applies the GTE predicate on the "evaluation_id" field.
func EvaluationIDGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldEvaluationID, v))
}

// EvaluationIDLT applies the LT predicate on the "evaluation_id" field.
func EvaluationIDLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldEvaluationID, v))
}

// EvaluationIDLTE applies the LTE predicate on the "evaluation_id" field.
func EvaluationIDLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldEvaluationID, v))
}

// EvaluationIDContains applies the Contains predicate on the "evaluation_id" field.
func EvaluationIDContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldEvaluationID, v))
}

// EvaluationIDHasPrefix applies the HasPrefix predicate on the "evaluation_id" field.
func EvaluationIDHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldEvaluationID, v))
}

// EvaluationIDHasSuffix applies the HasSuffix predicate on the "evaluation_id" field.
func EvaluationIDHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldEvaluationID, v))
}

// EvaluationIDEqualFold applies the EqualFold predicate on the "evaluation_id" field.
func EvaluationIDEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldEvaluationID, v))
}

// EvaluationIDContainsFold applies the ContainsFold predicate on the "evaluation_id" field.
func EvaluationIDContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldEvaluationID, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldChildID, v))
}

// ChildIDContains applies the Contains predicate on the "child_id" field.
func ChildIDContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldChildID, v))
}

// ChildIDHasPrefix applies the HasPrefix predicate on the "child_id" field.
func ChildIDHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldChildID, v))
}

// ChildIDHasSuffix applies the HasSuffix predicate on the "child_id" field.
func ChildIDHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldChildID, v))
}

// ChildIDEqualFold applies the EqualFold predicate on the "child_id" field.
func ChildIDEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldChildID, v))
}

// ChildIDContainsFold applies the ContainsFold predicate on the "child_id" field.
func ChildIDContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldChildID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldScore, v))
}

// WeakTopicsIsNil applies the IsNil predicate on the "weak_topics" field.
func WeakTopicsIsNil() predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIsNull(FieldWeakTopics))
}

// WeakTopicsNotNil applies the NotNil predicate on the "weak_topics" field.
func WeakTopicsNotNil() predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotNull(FieldWeakTopics))
}

// StrongTopicsIsNil applies the IsNil predicate on the "strong_topics" field.
func StrongTopicsIsNil() predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIsNull(FieldStrongTopics))
}

// StrongTopicsNotNil applies the NotNil predicate on the "strong_topics" field.
func StrongTopicsNotNil() predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotNull(FieldStrongTopics))
}

// TopicScoresIsNil applies the IsNil predicate on the "topic_scores" field.
func TopicScoresIsNil() predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIsNull(FieldTopicScores))
}

// TopicScoresNotNil applies the NotNil predicate on the "topic_scores" field.
func TopicScoresNotNil() predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotNull(FieldTopicScores))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.NotPredicates(p))
}
