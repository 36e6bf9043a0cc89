// Code generated by ent, DO NOT EDIT.

package probeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldChildID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldTopic, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldCorrect, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldTotal, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldPassed, v))
}

// NextIntervalDays applies equality check predicate on the "next_interval_days" field. It's identical to NextIntervalDaysEQ.
func NextIntervalDays(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldNextIntervalDays, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldChildID, v))
}

// ChildIDContains applies the Contains predicate on the "child_id" field.
func ChildIDContains(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContains(FieldChildID, v))
}

// ChildIDHasPrefix applies the HasPrefix predicate on the "child_id" field.
func ChildIDHasPrefix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasPrefix(FieldChildID, v))
}

// ChildIDHasSuffix applies the HasSuffix predicate on the "child_id" field.
func ChildIDHasSuffix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasSuffix(FieldChildID, v))
}

// ChildIDEqualFold applies the EqualFold predicate on the "child_id" field.
func ChildIDEqualFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEqualFold(FieldChildID, v))
}

// ChildIDContainsFold applies the ContainsFold predicate on the "child_id" field.
func ChildIDContainsFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContainsFold(FieldChildID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContainsFold(FieldTopic, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldCorrect, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldTotal, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldPassed, v))
}

// NextIntervalDaysEQ applies the EQ predicate on the "next_interval_days" field.
func NextIntervalDaysEQ(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldNextIntervalDays, v))
}

// NextIntervalDaysNEQ applies the NEQ predicate on the "next_interval_days" field.
func NextIntervalDaysNEQ(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldNextIntervalDays, v))
}

// NextIntervalDaysIn applies the In predicate on the "next_interval_days" field.
func NextIntervalDaysIn(vs ...int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldNextIntervalDays, vs...))
}

// NextIntervalDaysNotIn applies the NotIn predicate on the "next_interval_days" field.
func NextIntervalDaysNotIn(vs ...int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldNextIntervalDays, vs...))
}

// NextIntervalDaysGT applies the GT predicate on the "next_interval_days" field.
func NextIntervalDaysGT(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldNextIntervalDays, v))
}

// NextIntervalDaysGTE applies the GTE predicate on the "next_interval_days" field.
func NextIntervalDaysGTE(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldNextIntervalDays, v))
}

// NextIntervalDaysLT applies the LT predicate on the "next_interval_days" field.
func NextIntervalDaysLT(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldNextIntervalDays, v))
}

// NextIntervalDaysLTE applies the LTE predicate on the "next_interval_days" field.
func NextIntervalDaysLTE(v int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldNextIntervalDays, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProbeEvent) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProbeEvent) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProbeEvent) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.NotPredicates(p))
}
