// Code generated by ent, DO NOT EDIT.

package quizsessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizsessionevent type in the database.
	Label = "quiz_session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldChildID holds the string denoting the child_id field in the database.
	FieldChildID = "child_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldEndReason holds the string denoting the end_reason field in the database.
	FieldEndReason = "end_reason"
	// FieldEarlyExit holds the string denoting the early_exit field in the database.
	FieldEarlyExit = "early_exit"
	// FieldReviewMode holds the string denoting the review_mode field in the database.
	FieldReviewMode = "review_mode"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// Table holds the table name of the quizsessionevent in the database.
	Table = "quiz_session_events"
)

// Columns holds all SQL columns for quizsessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldChildID,
	FieldSubjectID,
	FieldQuestionCount,
	FieldCorrectCount,
	FieldEndReason,
	FieldEarlyExit,
	FieldReviewMode,
	FieldDurationMs,
	FieldPlan,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	ChildIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// EndReasonValidator is a validator for the "end_reason" field. It is called by the builders before save.
	EndReasonValidator func(string) error
	// DefaultEarlyExit holds the default value on creation for the "early_exit" field.
	DefaultEarlyExit bool
	// DefaultReviewMode holds the default value on creation for the "review_mode" field.
	DefaultReviewMode bool
)

// OrderOption defines the ordering options for the QuizSessionEvent queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByChildID orders the results by the child_id field.
func ByChildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByEndReason orders the results by the end_reason field.
func ByEndReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndReason, opts...).ToFunc()
}

// ByEarlyExit orders the results by the early_exit field.
func ByEarlyExit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarlyExit, opts...).ToFunc()
}

// ByReviewMode orders the results by the review_mode field.
func ByReviewMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewMode, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}
