// Code generated by ent, DO NOT EDIT.

package evaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evaluationevent type in the database.
	Label = "evaluation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEvaluationID holds the string denoting the evaluation_id field in the database.
	FieldEvaluationID = "evaluation_id"
	// FieldChildID holds the string denoting the child_id field in the database.
	FieldChildID = "child_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldWeakTopics holds the string denoting the weak_topics field in the database.
	FieldWeakTopics = "weak_topics"
	// FieldStrongTopics holds the string denoting the strong_topics field in the database.
	FieldStrongTopics = "strong_topics"
	// FieldTopicScores holds the string denoting the topic_scores field in the database.
	FieldTopicScores = "topic_scores"
	// Table holds the table name of the evaluationevent in the database.
	Table = "evaluation_events"
)

// Columns holds all SQL columns for evaluationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEvaluationID,
	FieldChildID,
	FieldSubjectID,
	FieldScore,
	FieldWeakTopics,
	FieldStrongTopics,
	FieldTopicScores,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// EvaluationIDValidator is a validator for the "evaluation_id" field. It is called by the builders before save.
	EvaluationIDValidator func(string) error
	// ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	ChildIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
)

// OrderOption defines the ordering options for the EvaluationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEvaluationID orders the results by the evaluation_id field.
func ByEvaluationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationID, opts...).ToFunc()
}

// ByChildID orders the results by the child_id field.
func ByChildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}
