// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/masterytransitionevent"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// MasteryTransitionEventUpdate is the builder for updating MasteryTransitionEvent entities.
type MasteryTransitionEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryTransitionEventMutation
}

// Where appends a list predicates to the MasteryTransitionEventUpdate builder.
func (_u *MasteryTransitionEventUpdate) Where(ps ...predicate.MasteryTransitionEvent) *MasteryTransitionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *MasteryTransitionEventUpdate) SetChildID(v string) *MasteryTransitionEventUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdate) SetNillableChildID(v *string) *MasteryTransitionEventUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MasteryTransitionEventUpdate) SetTopic(v string) *MasteryTransitionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdate) SetNillableTopic(v *string) *MasteryTransitionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetFromBand sets the "from_band" field.
func (_u *MasteryTransitionEventUpdate) SetFromBand(v string) *MasteryTransitionEventUpdate {
	_u.mutation.SetFromBand(v)
	return _u
}

// SetNillableFromBand sets the "from_band" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdate) SetNillableFromBand(v *string) *MasteryTransitionEventUpdate {
	if v != nil {
		_u.SetFromBand(*v)
	}
	return _u
}

// SetToBand sets the "to_band" field.
func (_u *MasteryTransitionEventUpdate) SetToBand(v string) *MasteryTransitionEventUpdate {
	_u.mutation.SetToBand(v)
	return _u
}

// SetNillableToBand sets the "to_band" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdate) SetNillableToBand(v *string) *MasteryTransitionEventUpdate {
	if v != nil {
		_u.SetToBand(*v)
	}
	return _u
}

// SetPKnown sets the "p_known" field.
func (_u *MasteryTransitionEventUpdate) SetPKnown(v float64) *MasteryTransitionEventUpdate {
	_u.mutation.ResetPKnown()
	_u.mutation.SetPKnown(v)
	return _u
}

// SetNillablePKnown sets the "p_known" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdate) SetNillablePKnown(v *float64) *MasteryTransitionEventUpdate {
	if v != nil {
		_u.SetPKnown(*v)
	}
	return _u
}

// AddPKnown adds value to the "p_known" field.
func (_u *MasteryTransitionEventUpdate) AddPKnown(v float64) *MasteryTransitionEventUpdate {
	_u.mutation.AddPKnown(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryTransitionEventUpdate) SetTrigger(v string) *MasteryTransitionEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdate) SetNillableTrigger(v *string) *MasteryTransitionEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// Mutation returns the MasteryTransitionEventMutation object of the builder.
func (_u *MasteryTransitionEventUpdate) Mutation() *MasteryTransitionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryTransitionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryTransitionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryTransitionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryTransitionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryTransitionEventUpdate) check() error {
	if v, ok := _u.mutation.ChildID(); ok {
		if err := masterytransitionevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := masterytransitionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromBand(); ok {
		if err := masterytransitionevent.FromBandValidator(v); err != nil {
			return &ValidationError{Name: "from_band", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.from_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToBand(); ok {
		if err := masterytransitionevent.ToBandValidator(v); err != nil {
			return &ValidationError{Name: "to_band", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.to_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masterytransitionevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryTransitionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterytransitionevent.Table, masterytransitionevent.Columns, sqlgraph.NewFieldSpec(masterytransitionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(masterytransitionevent.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(masterytransitionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromBand(); ok {
		_spec.SetField(masterytransitionevent.FieldFromBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToBand(); ok {
		_spec.SetField(masterytransitionevent.FieldToBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.PKnown(); ok {
		_spec.SetField(masterytransitionevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPKnown(); ok {
		_spec.AddField(masterytransitionevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masterytransitionevent.FieldTrigger, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterytransitionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryTransitionEventUpdateOne is the builder for updating a single MasteryTransitionEvent entity.
type MasteryTransitionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryTransitionEventMutation
}

// SetChildID sets the "child_id" field.
func (_u *MasteryTransitionEventUpdateOne) SetChildID(v string) *MasteryTransitionEventUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdateOne) SetNillableChildID(v *string) *MasteryTransitionEventUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MasteryTransitionEventUpdateOne) SetTopic(v string) *MasteryTransitionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdateOne) SetNillableTopic(v *string) *MasteryTransitionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetFromBand sets the "from_band" field.
func (_u *MasteryTransitionEventUpdateOne) SetFromBand(v string) *MasteryTransitionEventUpdateOne {
	_u.mutation.SetFromBand(v)
	return _u
}

// SetNillableFromBand sets the "from_band" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdateOne) SetNillableFromBand(v *string) *MasteryTransitionEventUpdateOne {
	if v != nil {
		_u.SetFromBand(*v)
	}
	return _u
}

// SetToBand sets the "to_band" field.
func (_u *MasteryTransitionEventUpdateOne) SetToBand(v string) *MasteryTransitionEventUpdateOne {
	_u.mutation.SetToBand(v)
	return _u
}

// SetNillableToBand sets the "to_band" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdateOne) SetNillableToBand(v *string) *MasteryTransitionEventUpdateOne {
	if v != nil {
		_u.SetToBand(*v)
	}
	return _u
}

// SetPKnown sets the "p_known" field.
func (_u *MasteryTransitionEventUpdateOne) SetPKnown(v float64) *MasteryTransitionEventUpdateOne {
	_u.mutation.ResetPKnown()
	_u.mutation.SetPKnown(v)
	return _u
}

// SetNillablePKnown sets the "p_known" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdateOne) SetNillablePKnown(v *float64) *MasteryTransitionEventUpdateOne {
	if v != nil {
		_u.SetPKnown(*v)
	}
	return _u
}

// AddPKnown adds value to the "p_known" field.
func (_u *MasteryTransitionEventUpdateOne) AddPKnown(v float64) *MasteryTransitionEventUpdateOne {
	_u.mutation.AddPKnown(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryTransitionEventUpdateOne) SetTrigger(v string) *MasteryTransitionEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryTransitionEventUpdateOne) SetNillableTrigger(v *string) *MasteryTransitionEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// Mutation returns the MasteryTransitionEventMutation object of the builder.
func (_u *MasteryTransitionEventUpdateOne) Mutation() *MasteryTransitionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryTransitionEventUpdate builder.
func (_u *MasteryTransitionEventUpdateOne) Where(ps ...predicate.MasteryTransitionEvent) *MasteryTransitionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryTransitionEventUpdateOne) Select(field string, fields ...string) *MasteryTransitionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryTransitionEvent entity.
func (_u *MasteryTransitionEventUpdateOne) Save(ctx context.Context) (*MasteryTransitionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryTransitionEventUpdateOne) SaveX(ctx context.Context) *MasteryTransitionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryTransitionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryTransitionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryTransitionEventUpdateOne) check() error {
	if v, ok := _u.mutation.ChildID(); ok {
		if err := masterytransitionevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := masterytransitionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromBand(); ok {
		if err := masterytransitionevent.FromBandValidator(v); err != nil {
			return &ValidationError{Name: "from_band", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.from_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToBand(); ok {
		if err := masterytransitionevent.ToBandValidator(v); err != nil {
			return &ValidationError{Name: "to_band", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.to_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masterytransitionevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryTransitionEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryTransitionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterytransitionevent.Table, masterytransitionevent.Columns, sqlgraph.NewFieldSpec(masterytransitionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryTransitionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masterytransitionevent.FieldID)
		for _, f := range fields {
			if !masterytransitionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masterytransitionevent.FieldID {
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
		_spec.SetField(masterytransitionevent.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(masterytransitionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromBand(); ok {
		_spec.SetField(masterytransitionevent.FieldFromBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToBand(); ok {
		_spec.SetField(masterytransitionevent.FieldToBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.PKnown(); ok {
		_spec.SetField(masterytransitionevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPKnown(); ok {
		_spec.AddField(masterytransitionevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masterytransitionevent.FieldTrigger, field.TypeString, value)
	}
	_node = &MasteryTransitionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterytransitionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
