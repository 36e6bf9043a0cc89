// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/quizsessionevent"
	"github.com/abhisek/adaptiq/ent/schema"
)

// QuizSessionEvent is the model entity for the QuizSessionEvent schema.
type QuizSessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID string `json:"child_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// QuestionCount holds the value of the "question_count" field.
	QuestionCount int `json:"question_count,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// completed, fatigue, frustration, or abandoned
	EndReason string `json:"end_reason,omitempty"`
	// EarlyExit holds the value of the "early_exit" field.
	EarlyExit bool `json:"early_exit,omitempty"`
	// Whether gap-review biasing was active
	ReviewMode bool `json:"review_mode,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// The composed plan as served
	Plan         []schema.PlanSlot `json:"plan,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizSessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizsessionevent.FieldPlan:
			values[i] = new([]byte)
		case quizsessionevent.FieldEarlyExit, quizsessionevent.FieldReviewMode:
			values[i] = new(sql.NullBool)
		case quizsessionevent.FieldID, quizsessionevent.FieldSequence, quizsessionevent.FieldQuestionCount, quizsessionevent.FieldCorrectCount, quizsessionevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case quizsessionevent.FieldSessionID, quizsessionevent.FieldChildID, quizsessionevent.FieldSubjectID, quizsessionevent.FieldEndReason:
			values[i] = new(sql.NullString)
		case quizsessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizSessionEvent fields.
func (_m *QuizSessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizsessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizsessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizsessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizsessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case quizsessionevent.FieldChildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value.Valid {
				_m.ChildID = value.String
			}
		case quizsessionevent.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case quizsessionevent.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case quizsessionevent.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case quizsessionevent.FieldEndReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_reason", values[i])
			} else if value.Valid {
				_m.EndReason = value.String
			}
		case quizsessionevent.FieldEarlyExit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field early_exit", values[i])
			} else if value.Valid {
				_m.EarlyExit = value.Bool
			}
		case quizsessionevent.FieldReviewMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field review_mode", values[i])
			} else if value.Valid {
				_m.ReviewMode = value.Bool
			}
		case quizsessionevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case quizsessionevent.FieldPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Plan); err != nil {
					return fmt.Errorf("unmarshal field plan: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizSessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuizSessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizSessionEvent.
// Note that you need to call QuizSessionEvent.Unwrap() before calling this method if this QuizSessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizSessionEvent) Update() *QuizSessionEventUpdateOne {
	return NewQuizSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizSessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizSessionEvent) Unwrap() *QuizSessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizSessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizSessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizSessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(_m.ChildID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("end_reason=")
	builder.WriteString(_m.EndReason)
	builder.WriteString(", ")
	builder.WriteString("early_exit=")
	builder.WriteString(fmt.Sprintf("%v", _m.EarlyExit))
	builder.WriteString(", ")
	builder.WriteString("review_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewMode))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plan))
	builder.WriteByte(')')
	return builder.String()
}

// QuizSessionEvents is a parsable slice of QuizSessionEvent.
type QuizSessionEvents []*QuizSessionEvent
