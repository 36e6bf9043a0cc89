// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/masterytransitionevent"
)

// MasteryTransitionEventCreate is the builder for creating a MasteryTransitionEvent entity.
type MasteryTransitionEventCreate struct {
	config
	mutation *MasteryTransitionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MasteryTransitionEventCreate) SetSequence(v int64) *MasteryTransitionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MasteryTransitionEventCreate) SetTimestamp(v time.Time) *MasteryTransitionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MasteryTransitionEventCreate) SetNillableTimestamp(v *time.Time) *MasteryTransitionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *MasteryTransitionEventCreate) SetChildID(v string) *MasteryTransitionEventCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *MasteryTransitionEventCreate) SetTopic(v string) *MasteryTransitionEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetFromBand sets the "from_band" field.
func (_c *MasteryTransitionEventCreate) SetFromBand(v string) *MasteryTransitionEventCreate {
	_c.mutation.SetFromBand(v)
	return _c
}

// SetToBand sets the "to_band" field.
func (_c *MasteryTransitionEventCreate) SetToBand(v string) *MasteryTransitionEventCreate {
	_c.mutation.SetToBand(v)
	return _c
}

// SetPKnown sets the "p_known" field.
func (_c *MasteryTransitionEventCreate) SetPKnown(v float64) *MasteryTransitionEventCreate {
	_c.mutation.SetPKnown(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *MasteryTransitionEventCreate) SetTrigger(v string) *MasteryTransitionEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// Mutation returns the MasteryTransitionEventMutation object of the builder.
func (_c *MasteryTransitionEventCreate) Mutation() *MasteryTransitionEventMutation {
	return _c.mutation
}

// Save creates the MasteryTransitionEvent in the database.
func (_c *MasteryTransitionEventCreate) Save(ctx context.Context) (*MasteryTransitionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryTransitionEventCreate) SaveX(ctx context.Context) *MasteryTransitionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryTransitionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryTransitionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryTransitionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := masterytransitionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryTransitionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MasteryTransitionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MasteryTransitionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "MasteryTransitionEvent.child_id"`)}
	}
	if v, ok := _c.mutation.ChildID(); ok {
		if err := masterytransitionevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.child_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "MasteryTransitionEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := masterytransitionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromBand(); !ok {
		return &ValidationError{Name: "from_band", err: errors.New(`ent: missing required field "MasteryTransitionEvent.from_band"`)}
	}
	if v, ok := _c.mutation.FromBand(); ok {
		if err := masterytransitionevent.FromBandValidator(v); err != nil {
			return &ValidationError{Name: "from_band", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.from_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToBand(); !ok {
		return &ValidationError{Name: "to_band", err: errors.New(`ent: missing required field "MasteryTransitionEvent.to_band"`)}
	}
	if v, ok := _c.mutation.ToBand(); ok {
		if err := masterytransitionevent.ToBandValidator(v); err != nil {
			return &ValidationError{Name: "to_band", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.to_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PKnown(); !ok {
		return &ValidationError{Name: "p_known", err: errors.New(`ent: missing required field "MasteryTransitionEvent.p_known"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "MasteryTransitionEvent.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := masterytransitionevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryTransitionEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_c *MasteryTransitionEventCreate) sqlSave(ctx context.Context) (*MasteryTransitionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasteryTransitionEventCreate) createSpec() (*MasteryTransitionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryTransitionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masterytransitionevent.Table, sqlgraph.NewFieldSpec(masterytransitionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(masterytransitionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(masterytransitionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(masterytransitionevent.FieldChildID, field.TypeString, value)
		_node.ChildID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(masterytransitionevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.FromBand(); ok {
		_spec.SetField(masterytransitionevent.FieldFromBand, field.TypeString, value)
		_node.FromBand = value
	}
	if value, ok := _c.mutation.ToBand(); ok {
		_spec.SetField(masterytransitionevent.FieldToBand, field.TypeString, value)
		_node.ToBand = value
	}
	if value, ok := _c.mutation.PKnown(); ok {
		_spec.SetField(masterytransitionevent.FieldPKnown, field.TypeFloat64, value)
		_node.PKnown = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(masterytransitionevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	return _node, _spec
}

// MasteryTransitionEventCreateBulk is the builder for creating many MasteryTransitionEvent entities in bulk.
type MasteryTransitionEventCreateBulk struct {
	config
	err      error
	builders []*MasteryTransitionEventCreate
}

// Save creates the MasteryTransitionEvent entities in the database.
func (_c *MasteryTransitionEventCreateBulk) Save(ctx context.Context) ([]*MasteryTransitionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryTransitionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryTransitionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MasteryTransitionEventCreateBulk) SaveX(ctx context.Context) []*MasteryTransitionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryTransitionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryTransitionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
