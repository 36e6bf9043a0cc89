// Code generated by ent, DO NOT EDIT.

package masterytransitionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masterytransitionevent type in the database.
	Label = "mastery_transition_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldChildID holds the string denoting the child_id field in the database.
	FieldChildID = "child_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldFromBand holds the string denoting the from_band field in the database.
	FieldFromBand = "from_band"
	// FieldToBand holds the string denoting the to_band field in the database.
	FieldToBand = "to_band"
	// FieldPKnown holds the string denoting the p_known field in the database.
	FieldPKnown = "p_known"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// Table holds the table name of the masterytransitionevent in the database.
	Table = "mastery_transition_events"
)

// Columns holds all SQL columns for masterytransitionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldChildID,
	FieldTopic,
	FieldFromBand,
	FieldToBand,
	FieldPKnown,
	FieldTrigger,
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
	// ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	ChildIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// FromBandValidator is a validator for the "from_band" field. It is called by the builders before save.
	FromBandValidator func(string) error
	// ToBandValidator is a validator for the "to_band" field. It is called by the builders before save.
	ToBandValidator func(string) error
	// TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	TriggerValidator func(string) error
)

// OrderOption defines the ordering options for the MasteryTransitionEvent queries.
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

// ByChildID orders the results by the child_id field.
func ByChildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByFromBand orders the results by the from_band field.
func ByFromBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromBand, opts...).ToFunc()
}

// ByToBand orders the results by the to_band field.
func ByToBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToBand, opts...).ToFunc()
}

// ByPKnown orders the results by the p_known field.
func ByPKnown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPKnown, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}
