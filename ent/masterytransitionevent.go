// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/masterytransitionevent"
)

// MasteryTransitionEvent is the model entity for the MasteryTransitionEvent schema.
type MasteryTransitionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID string `json:"child_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// FromBand holds the value of the "from_band" field.
	FromBand string `json:"from_band,omitempty"`
	// ToBand holds the value of the "to_band" field.
	ToBand string `json:"to_band,omitempty"`
	// PKnown holds the value of the "p_known" field.
	PKnown float64 `json:"p_known,omitempty"`
	// quiz, evaluation, probe, or bootstrap
	Trigger      string `json:"trigger,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MasteryTransitionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case masterytransitionevent.FieldPKnown:
			values[i] = new(sql.NullFloat64)
		case masterytransitionevent.FieldID, masterytransitionevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case masterytransitionevent.FieldChildID, masterytransitionevent.FieldTopic, masterytransitionevent.FieldFromBand, masterytransitionevent.FieldToBand, masterytransitionevent.FieldTrigger:
			values[i] = new(sql.NullString)
		case masterytransitionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MasteryTransitionEvent fields.
func (_m *MasteryTransitionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case masterytransitionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case masterytransitionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case masterytransitionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case masterytransitionevent.FieldChildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value.Valid {
				_m.ChildID = value.String
			}
		case masterytransitionevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case masterytransitionevent.FieldFromBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_band", values[i])
			} else if value.Valid {
				_m.FromBand = value.String
			}
		case masterytransitionevent.FieldToBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_band", values[i])
			} else if value.Valid {
				_m.ToBand = value.String
			}
		case masterytransitionevent.FieldPKnown:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p_known", values[i])
			} else if value.Valid {
				_m.PKnown = value.Float64
			}
		case masterytransitionevent.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MasteryTransitionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MasteryTransitionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MasteryTransitionEvent.
// Note that you need to call MasteryTransitionEvent.Unwrap() before calling this method if this MasteryTransitionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MasteryTransitionEvent) Update() *MasteryTransitionEventUpdateOne {
	return NewMasteryTransitionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MasteryTransitionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MasteryTransitionEvent) Unwrap() *MasteryTransitionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MasteryTransitionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MasteryTransitionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MasteryTransitionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(_m.ChildID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("from_band=")
	builder.WriteString(_m.FromBand)
	builder.WriteString(", ")
	builder.WriteString("to_band=")
	builder.WriteString(_m.ToBand)
	builder.WriteString(", ")
	builder.WriteString("p_known=")
	builder.WriteString(fmt.Sprintf("%v", _m.PKnown))
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(_m.Trigger)
	builder.WriteByte(')')
	return builder.String()
}

// MasteryTransitionEvents is a parsable slice of MasteryTransitionEvent.
type MasteryTransitionEvents []*MasteryTransitionEvent
