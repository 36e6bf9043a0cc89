// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/adaptiq/ent/answerevent"
	"github.com/abhisek/adaptiq/ent/evaluationevent"
	"github.com/abhisek/adaptiq/ent/masterytransitionevent"
	"github.com/abhisek/adaptiq/ent/probeevent"
	"github.com/abhisek/adaptiq/ent/profile"
	"github.com/abhisek/adaptiq/ent/quizsessionevent"
	"github.com/abhisek/adaptiq/ent/schema"
	"github.com/abhisek/adaptiq/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescChildID is the schema descriptor for child_id field.
	answereventDescChildID := answereventFields[1].Descriptor()
	// answerevent.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	answerevent.ChildIDValidator = answereventDescChildID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[2].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescSubjectID is the schema descriptor for subject_id field.
	answereventDescSubjectID := answereventFields[3].Descriptor()
	// answerevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	answerevent.SubjectIDValidator = answereventDescSubjectID.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[4].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescProbe is the schema descriptor for probe field.
	answereventDescProbe := answereventFields[5].Descriptor()
	// answerevent.DefaultProbe holds the default value on creation for the probe field.
	answerevent.DefaultProbe = answereventDescProbe.Default.(bool)
	evaluationeventMixin := schema.EvaluationEvent{}.Mixin()
	evaluationeventMixinFields0 := evaluationeventMixin[0].Fields()
	_ = evaluationeventMixinFields0
	evaluationeventFields := schema.EvaluationEvent{}.Fields()
	_ = evaluationeventFields
	// evaluationeventDescTimestamp is the schema descriptor for timestamp field.
	evaluationeventDescTimestamp := evaluationeventMixinFields0[1].Descriptor()
	// evaluationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evaluationevent.DefaultTimestamp = evaluationeventDescTimestamp.Default.(func() time.Time)
	// evaluationeventDescEvaluationID is the schema descriptor for evaluation_id field.
	evaluationeventDescEvaluationID := evaluationeventFields[0].Descriptor()
	// evaluationevent.EvaluationIDValidator is a validator for the "evaluation_id" field. It is called by the builders before save.
	evaluationevent.EvaluationIDValidator = evaluationeventDescEvaluationID.Validators[0].(func(string) error)
	// evaluationeventDescChildID is the schema descriptor for child_id field.
	evaluationeventDescChildID := evaluationeventFields[1].Descriptor()
	// evaluationevent.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	evaluationevent.ChildIDValidator = evaluationeventDescChildID.Validators[0].(func(string) error)
	// evaluationeventDescSubjectID is the schema descriptor for subject_id field.
	evaluationeventDescSubjectID := evaluationeventFields[2].Descriptor()
	// evaluationevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	evaluationevent.SubjectIDValidator = evaluationeventDescSubjectID.Validators[0].(func(string) error)
	masterytransitioneventMixin := schema.MasteryTransitionEvent{}.Mixin()
	masterytransitioneventMixinFields0 := masterytransitioneventMixin[0].Fields()
	_ = masterytransitioneventMixinFields0
	masterytransitioneventFields := schema.MasteryTransitionEvent{}.Fields()
	_ = masterytransitioneventFields
	// masterytransitioneventDescTimestamp is the schema descriptor for timestamp field.
	masterytransitioneventDescTimestamp := masterytransitioneventMixinFields0[1].Descriptor()
	// masterytransitionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masterytransitionevent.DefaultTimestamp = masterytransitioneventDescTimestamp.Default.(func() time.Time)
	// masterytransitioneventDescChildID is the schema descriptor for child_id field.
	masterytransitioneventDescChildID := masterytransitioneventFields[0].Descriptor()
	// masterytransitionevent.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	masterytransitionevent.ChildIDValidator = masterytransitioneventDescChildID.Validators[0].(func(string) error)
	// masterytransitioneventDescTopic is the schema descriptor for topic field.
	masterytransitioneventDescTopic := masterytransitioneventFields[1].Descriptor()
	// masterytransitionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	masterytransitionevent.TopicValidator = masterytransitioneventDescTopic.Validators[0].(func(string) error)
	// masterytransitioneventDescFromBand is the schema descriptor for from_band field.
	masterytransitioneventDescFromBand := masterytransitioneventFields[2].Descriptor()
	// masterytransitionevent.FromBandValidator is a validator for the "from_band" field. It is called by the builders before save.
	masterytransitionevent.FromBandValidator = masterytransitioneventDescFromBand.Validators[0].(func(string) error)
	// masterytransitioneventDescToBand is the schema descriptor for to_band field.
	masterytransitioneventDescToBand := masterytransitioneventFields[3].Descriptor()
	// masterytransitionevent.ToBandValidator is a validator for the "to_band" field. It is called by the builders before save.
	masterytransitionevent.ToBandValidator = masterytransitioneventDescToBand.Validators[0].(func(string) error)
	// masterytransitioneventDescTrigger is the schema descriptor for trigger field.
	masterytransitioneventDescTrigger := masterytransitioneventFields[5].Descriptor()
	// masterytransitionevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masterytransitionevent.TriggerValidator = masterytransitioneventDescTrigger.Validators[0].(func(string) error)
	probeeventMixin := schema.ProbeEvent{}.Mixin()
	probeeventMixinFields0 := probeeventMixin[0].Fields()
	_ = probeeventMixinFields0
	probeeventFields := schema.ProbeEvent{}.Fields()
	_ = probeeventFields
	// probeeventDescTimestamp is the schema descriptor for timestamp field.
	probeeventDescTimestamp := probeeventMixinFields0[1].Descriptor()
	// probeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	probeevent.DefaultTimestamp = probeeventDescTimestamp.Default.(func() time.Time)
	// probeeventDescChildID is the schema descriptor for child_id field.
	probeeventDescChildID := probeeventFields[0].Descriptor()
	// probeevent.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	probeevent.ChildIDValidator = probeeventDescChildID.Validators[0].(func(string) error)
	// probeeventDescTopic is the schema descriptor for topic field.
	probeeventDescTopic := probeeventFields[1].Descriptor()
	// probeevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	probeevent.TopicValidator = probeeventDescTopic.Validators[0].(func(string) error)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescChildID is the schema descriptor for child_id field.
	profileDescChildID := profileFields[0].Descriptor()
	// profile.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	profile.ChildIDValidator = profileDescChildID.Validators[0].(func(string) error)
	// profileDescFamilyID is the schema descriptor for family_id field.
	profileDescFamilyID := profileFields[1].Descriptor()
	// profile.FamilyIDValidator is a validator for the "family_id" field. It is called by the builders before save.
	profile.FamilyIDValidator = profileDescFamilyID.Validators[0].(func(string) error)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizsessioneventMixin := schema.QuizSessionEvent{}.Mixin()
	quizsessioneventMixinFields0 := quizsessioneventMixin[0].Fields()
	_ = quizsessioneventMixinFields0
	quizsessioneventFields := schema.QuizSessionEvent{}.Fields()
	_ = quizsessioneventFields
	// quizsessioneventDescTimestamp is the schema descriptor for timestamp field.
	quizsessioneventDescTimestamp := quizsessioneventMixinFields0[1].Descriptor()
	// quizsessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizsessionevent.DefaultTimestamp = quizsessioneventDescTimestamp.Default.(func() time.Time)
	// quizsessioneventDescSessionID is the schema descriptor for session_id field.
	quizsessioneventDescSessionID := quizsessioneventFields[0].Descriptor()
	// quizsessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizsessionevent.SessionIDValidator = quizsessioneventDescSessionID.Validators[0].(func(string) error)
	// quizsessioneventDescChildID is the schema descriptor for child_id field.
	quizsessioneventDescChildID := quizsessioneventFields[1].Descriptor()
	// quizsessionevent.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	quizsessionevent.ChildIDValidator = quizsessioneventDescChildID.Validators[0].(func(string) error)
	// quizsessioneventDescSubjectID is the schema descriptor for subject_id field.
	quizsessioneventDescSubjectID := quizsessioneventFields[2].Descriptor()
	// quizsessionevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	quizsessionevent.SubjectIDValidator = quizsessioneventDescSubjectID.Validators[0].(func(string) error)
	// quizsessioneventDescEndReason is the schema descriptor for end_reason field.
	quizsessioneventDescEndReason := quizsessioneventFields[5].Descriptor()
	// quizsessionevent.EndReasonValidator is a validator for the "end_reason" field. It is called by the builders before save.
	quizsessionevent.EndReasonValidator = quizsessioneventDescEndReason.Validators[0].(func(string) error)
	// quizsessioneventDescEarlyExit is the schema descriptor for early_exit field.
	quizsessioneventDescEarlyExit := quizsessioneventFields[6].Descriptor()
	// quizsessionevent.DefaultEarlyExit holds the default value on creation for the early_exit field.
	quizsessionevent.DefaultEarlyExit = quizsessioneventDescEarlyExit.Default.(bool)
	// quizsessioneventDescReviewMode is the schema descriptor for review_mode field.
	quizsessioneventDescReviewMode := quizsessioneventFields[7].Descriptor()
	// quizsessionevent.DefaultReviewMode holds the default value on creation for the review_mode field.
	quizsessionevent.DefaultReviewMode = quizsessioneventDescReviewMode.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescChildID is the schema descriptor for child_id field.
	snapshotDescChildID := snapshotFields[0].Descriptor()
	// snapshot.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	snapshot.ChildIDValidator = snapshotDescChildID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
