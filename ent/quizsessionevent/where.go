// Code generated by ent, DO NOT EDIT.

package quizsessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldChildID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldSubjectID, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// EndReason applies equality check predicate on the "end_reason" field. It's identical to EndReasonEQ.
func EndReason(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldEndReason, v))
}

// EarlyExit applies equality check predicate on the "early_exit" field. It's identical to EarlyExitEQ.
func EarlyExit(v bool) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldEarlyExit, v))
}

// ReviewMode applies equality check predicate on the "review_mode" field. It's identical to ReviewModeEQ.
func ReviewMode(v bool) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldReviewMode, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldDurationMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLTE(FieldChildID, v))
}

// ChildIDContains applies the Contains predicate on the "child_id" field.
func ChildIDContains(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldContains(FieldChildID, v))
}

// ChildIDHasPrefix applies the HasPrefix predicate on the "child_id" field.
func ChildIDHasPrefix(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldHasPrefix(FieldChildID, v))
}

// ChildIDHasSuffix applies the HasSuffix predicate on the "child_id" field.
func ChildIDHasSuffix(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldHasSuffix(FieldChildID, v))
}

// ChildIDEqualFold applies the EqualFold predicate on the "child_id" field.
func ChildIDEqualFold(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEqualFold(FieldChildID, v))
}

// ChildIDContainsFold applies the ContainsFold predicate on the "child_id" field.
func ChildIDContainsFold(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldContainsFold(FieldChildID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLTE(FieldQuestionCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// EndReasonEQ applies the EQ predicate on the "end_reason" field.
func EndReasonEQ(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldEndReason, v))
}

// EndReasonNEQ applies the NEQ predicate on the "end_reason" field.
func EndReasonNEQ(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldEndReason, v))
}

// EndReasonIn applies the In predicate on the "end_reason" field.
func EndReasonIn(vs ...string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIn(FieldEndReason, vs...))
}

// EndReasonNotIn applies the NotIn predicate on the "end_reason" field.
func EndReasonNotIn(vs ...string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotIn(FieldEndReason, vs...))
}

// EndReasonGT applies the GT predicate on the "end_reason" field.
func EndReasonGT(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGT(FieldEndReason, v))
}

// EndReasonGTE applies the GTE predicate on the "end_reason" field.
func EndReasonGTE(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGTE(FieldEndReason, v))
}

// EndReasonLT applies the LT predicate on the "end_reason" field.
func EndReasonLT(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLT(FieldEndReason, v))
}

// EndReasonLTE applies the LTE predicate on the "end_reason" field.
func EndReasonLTE(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLTE(FieldEndReason, v))
}

// EndReasonContains applies the Contains predicate on the "end_reason" field.
func EndReasonContains(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldContains(FieldEndReason, v))
}

// EndReasonHasPrefix applies the HasPrefix predicate on the "end_reason" field.
func EndReasonHasPrefix(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldHasPrefix(FieldEndReason, v))
}

// EndReasonHasSuffix applies the HasSuffix predicate on the "end_reason" field.
func EndReasonHasSuffix(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldHasSuffix(FieldEndReason, v))
}

// EndReasonEqualFold applies the EqualFold predicate on the "end_reason" field.
func EndReasonEqualFold(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEqualFold(FieldEndReason, v))
}

// EndReasonContainsFold applies the ContainsFold predicate on the "end_reason" field.
func EndReasonContainsFold(v string) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldContainsFold(FieldEndReason, v))
}

// EarlyExitEQ applies the EQ predicate on the "early_exit" field.
func EarlyExitEQ(v bool) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldEarlyExit, v))
}

// EarlyExitNEQ applies the NEQ predicate on the "early_exit" field.
func EarlyExitNEQ(v bool) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldEarlyExit, v))
}

// ReviewModeEQ applies the EQ predicate on the "review_mode" field.
func ReviewModeEQ(v bool) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldReviewMode, v))
}

// ReviewModeNEQ applies the NEQ predicate on the "review_mode" field.
func ReviewModeNEQ(v bool) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldReviewMode, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldLTE(FieldDurationMs, v))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.FieldNotNull(FieldPlan))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizSessionEvent) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizSessionEvent) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizSessionEvent) predicate.QuizSessionEvent {
	return predicate.QuizSessionEvent(sql.NotPredicates(p))
}
