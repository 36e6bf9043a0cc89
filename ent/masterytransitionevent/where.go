// Code generated by ent, DO NOT EDIT.

package masterytransitionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldChildID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldTopic, v))
}

// FromBand applies equality check predicate on the "from_band" field. It's identical to FromBandEQ.
func FromBand(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldFromBand, v))
}

// ToBand applies equality check predicate on the "to_band" field. It's identical to ToBandEQ.
func ToBand(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldToBand, v))
}

// PKnown applies equality check predicate on the "p_known" field. It's identical to PKnownEQ.
func PKnown(v float64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldPKnown, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldTrigger, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLTE(FieldChildID, v))
}

// ChildIDContains applies the Contains predicate on the "child_id" field.
func ChildIDContains(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldContains(FieldChildID, v))
}

// ChildIDHasPrefix applies the HasPrefix predicate on the "child_id" field.
func ChildIDHasPrefix(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldHasPrefix(FieldChildID, v))
}

// ChildIDHasSuffix applies the HasSuffix predicate on the "child_id" field.
func ChildIDHasSuffix(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldHasSuffix(FieldChildID, v))
}

// ChildIDEqualFold applies the EqualFold predicate on the "child_id" field.
func ChildIDEqualFold(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEqualFold(FieldChildID, v))
}

// ChildIDContainsFold applies the ContainsFold predicate on the "child_id" field.
func ChildIDContainsFold(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldContainsFold(FieldChildID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldContainsFold(FieldTopic, v))
}

// FromBandEQ applies the EQ predicate on the "from_band" field.
func FromBandEQ(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldFromBand, v))
}

// FromBandNEQ applies the NEQ predicate on the "from_band" field.
func FromBandNEQ(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNEQ(FieldFromBand, v))
}

// FromBandIn applies the In predicate on the "from_band" field.
func FromBandIn(vs ...string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldIn(FieldFromBand, vs...))
}

// FromBandNotIn applies the NotIn predicate on the "from_band" field.
func FromBandNotIn(vs ...string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNotIn(FieldFromBand, vs...))
}

// FromBandGT applies the GT predicate on the "from_band" field.
func FromBandGT(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGT(FieldFromBand, v))
}

// FromBandGTE applies the GTE predicate on the "from_band" field.
func FromBandGTE(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGTE(FieldFromBand, v))
}

// FromBandLT applies the LT predicate on the "from_band" field.
func FromBandLT(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLT(FieldFromBand, v))
}

// FromBandLTE applies the LTE predicate on the "from_band" field.
func FromBandLTE(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLTE(FieldFromBand, v))
}

// FromBandContains applies the Contains predicate on the "from_band" field.
func FromBandContains(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldContains(FieldFromBand, v))
}

// FromBandHasPrefix applies the HasPrefix predicate on the "from_band" field.
func FromBandHasPrefix(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldHasPrefix(FieldFromBand, v))
}

// FromBandHasSuffix applies the HasSuffix predicate on the "from_band" field.
func FromBandHasSuffix(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldHasSuffix(FieldFromBand, v))
}

// FromBandEqualFold applies the EqualFold predicate on the "from_band" field.
func FromBandEqualFold(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEqualFold(FieldFromBand, v))
}

// FromBandContainsFold applies the ContainsFold predicate on the "from_band" field.
func FromBandContainsFold(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldContainsFold(FieldFromBand, v))
}

// ToBandEQ applies the EQ predicate on the "to_band" field.
func ToBandEQ(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldToBand, v))
}

// ToBandNEQ applies the NEQ predicate on the "to_band" field.
func ToBandNEQ(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNEQ(FieldToBand, v))
}

// ToBandIn applies the In predicate on the "to_band" field.
func ToBandIn(vs ...string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldIn(FieldToBand, vs...))
}

// ToBandNotIn applies the NotIn predicate on the "to_band" field.
func ToBandNotIn(vs ...string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNotIn(FieldToBand, vs...))
}

// ToBandGT applies the GT predicate on the "to_band" field.
func ToBandGT(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGT(FieldToBand, v))
}

// ToBandGTE applies the GTE predicate on the "to_band" field.
func ToBandGTE(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGTE(FieldToBand, v))
}

// ToBandLT applies the LT predicate on the "to_band" field.
func ToBandLT(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLT(FieldToBand, v))
}

// ToBandLTE applies the LTE predicate on the "to_band" field.
func ToBandLTE(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLTE(FieldToBand, v))
}

// ToBandContains applies the Contains predicate on the "to_band" field.
func ToBandContains(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldContains(FieldToBand, v))
}

// ToBandHasPrefix applies the HasPrefix predicate on the "to_band" field.
func ToBandHasPrefix(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldHasPrefix(FieldToBand, v))
}

// ToBandHasSuffix applies the HasSuffix predicate on the "to_band" field.
func ToBandHasSuffix(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldHasSuffix(FieldToBand, v))
}

// ToBandEqualFold applies the EqualFold predicate on the "to_band" field.
func ToBandEqualFold(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEqualFold(FieldToBand, v))
}

// ToBandContainsFold applies the ContainsFold predicate on the "to_band" field.
func ToBandContainsFold(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldContainsFold(FieldToBand, v))
}

// PKnownEQ applies the EQ predicate on the "p_known" field.
func PKnownEQ(v float64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldPKnown, v))
}

// PKnownNEQ applies the NEQ predicate on the "p_known" field.
func PKnownNEQ(v float64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNEQ(FieldPKnown, v))
}

// PKnownIn applies the In predicate on the "p_known" field.
func PKnownIn(vs ...float64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldIn(FieldPKnown, vs...))
}

// PKnownNotIn applies the NotIn predicate on the "p_known" field.
func PKnownNotIn(vs ...float64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNotIn(FieldPKnown, vs...))
}

// PKnownGT applies the GT predicate on the "p_known" field.
func PKnownGT(v float64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGT(FieldPKnown, v))
}

// PKnownGTE applies the GTE predicate on the "p_known" field.
func PKnownGTE(v float64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGTE(FieldPKnown, v))
}

// PKnownLT applies the LT predicate on the "p_known" field.
func PKnownLT(v float64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLT(FieldPKnown, v))
}

// PKnownLTE applies the LTE predicate on the "p_known" field.
func PKnownLTE(v float64) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLTE(FieldPKnown, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryTransitionEvent) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryTransitionEvent) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryTransitionEvent) predicate.MasteryTransitionEvent {
	return predicate.MasteryTransitionEvent(sql.NotPredicates(p))
}
