// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/evaluationevent"
)

// EvaluationEvent is the model entity for the EvaluationEvent schema.
type EvaluationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// EvaluationID holds the value of the "evaluation_id" field.
	EvaluationID string `json:"evaluation_id,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID string `json:"child_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// Overall score in [0,1]
	Score float64 `json:"score,omitempty"`
	// WeakTopics holds the value of the "weak_topics" field.
	WeakTopics []string `json:"weak_topics,omitempty"`
	// StrongTopics holds the value of the "strong_topics" field.
	StrongTopics []string `json:"strong_topics,omitempty"`
	// Per-topic accuracy where the evaluation reported it
	TopicScores  map[string]float64 `json:"topic_scores,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationevent.FieldWeakTopics, evaluationevent.FieldStrongTopics, evaluationevent.FieldTopicScores:
			values[i] = new([]byte)
		case evaluationevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case evaluationevent.FieldID, evaluationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case evaluationevent.FieldEvaluationID, evaluationevent.FieldChildID, evaluationevent.FieldSubjectID:
			values[i] = new(sql.NullString)
		case evaluationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationEvent fields.
func (_m *EvaluationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evaluationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case evaluationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case evaluationevent.FieldEvaluationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_id", values[i])
			} else if value.Valid {
				_m.EvaluationID = value.String
			}
		case evaluationevent.FieldChildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value.Valid {
				_m.ChildID = value.String
			}
		case evaluationevent.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case evaluationevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case evaluationevent.FieldWeakTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakTopics); err != nil {
					return fmt.Errorf("unmarshal field weak_topics: %w", err)
				}
			}
		case evaluationevent.FieldStrongTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strong_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StrongTopics); err != nil {
					return fmt.Errorf("unmarshal field strong_topics: %w", err)
				}
			}
		case evaluationevent.FieldTopicScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topic_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopicScores); err != nil {
					return fmt.Errorf("unmarshal field topic_scores: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvaluationEvent.
// Note that you need to call EvaluationEvent.Unwrap() before calling this method if this EvaluationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationEvent) Update() *EvaluationEventUpdateOne {
	return NewEvaluationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationEvent) Unwrap() *EvaluationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("evaluation_id=")
	builder.WriteString(_m.EvaluationID)
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(_m.ChildID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("weak_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakTopics))
	builder.WriteString(", ")
	builder.WriteString("strong_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.StrongTopics))
	builder.WriteString(", ")
	builder.WriteString("topic_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicScores))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationEvents is a parsable slice of EvaluationEvent.
type EvaluationEvents []*EvaluationEvent
