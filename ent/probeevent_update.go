// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/predicate"
	"github.com/abhisek/adaptiq/ent/probeevent"
)

// ProbeEventUpdate is the builder for updating ProbeEvent entities.
type ProbeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProbeEventMutation
}

// Where appends a list predicates to the ProbeEventUpdate builder.
func (_u *ProbeEventUpdate) Where(ps ...predicate.ProbeEvent) *ProbeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *ProbeEventUpdate) SetChildID(v string) *ProbeEventUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableChildID(v *string) *ProbeEventUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProbeEventUpdate) SetTopic(v string) *ProbeEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableTopic(v *string) *ProbeEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ProbeEventUpdate) SetCorrect(v int) *ProbeEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableCorrect(v *int) *ProbeEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ProbeEventUpdate) AddCorrect(v int) *ProbeEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ProbeEventUpdate) SetTotal(v int) *ProbeEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableTotal(v *int) *ProbeEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ProbeEventUpdate) AddTotal(v int) *ProbeEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ProbeEventUpdate) SetPassed(v bool) *ProbeEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillablePassed(v *bool) *ProbeEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetNextIntervalDays sets the "next_interval_days" field.
func (_u *ProbeEventUpdate) SetNextIntervalDays(v int) *ProbeEventUpdate {
	_u.mutation.ResetNextIntervalDays()
	_u.mutation.SetNextIntervalDays(v)
	return _u
}

// SetNillableNextIntervalDays sets the "next_interval_days" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableNextIntervalDays(v *int) *ProbeEventUpdate {
	if v != nil {
		_u.SetNextIntervalDays(*v)
	}
	return _u
}

// AddNextIntervalDays adds value to the "next_interval_days" field.
func (_u *ProbeEventUpdate) AddNextIntervalDays(v int) *ProbeEventUpdate {
	_u.mutation.AddNextIntervalDays(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ProbeEventUpdate) SetSessionID(v string) *ProbeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableSessionID(v *string) *ProbeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ProbeEventUpdate) ClearSessionID() *ProbeEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ProbeEventMutation object of the builder.
func (_u *ProbeEventUpdate) Mutation() *ProbeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProbeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProbeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProbeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProbeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProbeEventUpdate) check() error {
	if v, ok := _u.mutation.ChildID(); ok {
		if err := probeevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "ProbeEvent.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := probeevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProbeEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ProbeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(probeevent.Table, probeevent.Columns, sqlgraph.NewFieldSpec(probeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(probeevent.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(probeevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(probeevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(probeevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(probeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(probeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(probeevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextIntervalDays(); ok {
		_spec.SetField(probeevent.FieldNextIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextIntervalDays(); ok {
		_spec.AddField(probeevent.FieldNextIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(probeevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(probeevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{probeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProbeEventUpdateOne is the builder for updating a single ProbeEvent entity.
type ProbeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProbeEventMutation
}

// SetChildID sets the "child_id" field.
func (_u *ProbeEventUpdateOne) SetChildID(v string) *ProbeEventUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableChildID(v *string) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProbeEventUpdateOne) SetTopic(v string) *ProbeEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableTopic(v *string) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ProbeEventUpdateOne) SetCorrect(v int) *ProbeEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableCorrect(v *int) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ProbeEventUpdateOne) AddCorrect(v int) *ProbeEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ProbeEventUpdateOne) SetTotal(v int) *ProbeEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableTotal(v *int) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ProbeEventUpdateOne) AddTotal(v int) *ProbeEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ProbeEventUpdateOne) SetPassed(v bool) *ProbeEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillablePassed(v *bool) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetNextIntervalDays sets the "next_interval_days" field.
func (_u *ProbeEventUpdateOne) SetNextIntervalDays(v int) *ProbeEventUpdateOne {
	_u.mutation.ResetNextIntervalDays()
	_u.mutation.SetNextIntervalDays(v)
	return _u
}

// SetNillableNextIntervalDays sets the "next_interval_days" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableNextIntervalDays(v *int) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetNextIntervalDays(*v)
	}
	return _u
}

// AddNextIntervalDays adds value to the "next_interval_days" field.
func (_u *ProbeEventUpdateOne) AddNextIntervalDays(v int) *ProbeEventUpdateOne {
	_u.mutation.AddNextIntervalDays(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ProbeEventUpdateOne) SetSessionID(v string) *ProbeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableSessionID(v *string) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ProbeEventUpdateOne) ClearSessionID() *ProbeEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ProbeEventMutation object of the builder.
func (_u *ProbeEventUpdateOne) Mutation() *ProbeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProbeEventUpdate builder.
func (_u *ProbeEventUpdateOne) Where(ps ...predicate.ProbeEvent) *ProbeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProbeEventUpdateOne) Select(field string, fields ...string) *ProbeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProbeEvent entity.
func (_u *ProbeEventUpdateOne) Save(ctx context.Context) (*ProbeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProbeEventUpdateOne) SaveX(ctx context.Context) *ProbeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProbeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProbeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProbeEventUpdateOne) check() error {
	if v, ok := _u.mutation.ChildID(); ok {
		if err := probeevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "ProbeEvent.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := probeevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProbeEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ProbeEventUpdateOne) sqlSave(ctx context.Context) (_node *ProbeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(probeevent.Table, probeevent.Columns, sqlgraph.NewFieldSpec(probeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProbeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, probeevent.FieldID)
		for _, f := range fields {
			if !probeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != probeevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(probeevent.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(probeevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(probeevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(probeevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(probeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(probeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(probeevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextIntervalDays(); ok {
		_spec.SetField(probeevent.FieldNextIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextIntervalDays(); ok {
		_spec.AddField(probeevent.FieldNextIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(probeevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(probeevent.FieldSessionID, field.TypeString)
	}
	_node = &ProbeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{probeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
