// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/probeevent"
)

// ProbeEventCreate is the builder for creating a ProbeEvent entity.
type ProbeEventCreate struct {
	config
	mutation *ProbeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProbeEventCreate) SetSequence(v int64) *ProbeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProbeEventCreate) SetTimestamp(v time.Time) *ProbeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProbeEventCreate) SetNillableTimestamp(v *time.Time) *ProbeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *ProbeEventCreate) SetChildID(v string) *ProbeEventCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ProbeEventCreate) SetTopic(v string) *ProbeEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ProbeEventCreate) SetCorrect(v int) *ProbeEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *ProbeEventCreate) SetTotal(v int) *ProbeEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ProbeEventCreate) SetPassed(v bool) *ProbeEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNextIntervalDays sets the "next_interval_days" field.
func (_c *ProbeEventCreate) SetNextIntervalDays(v int) *ProbeEventCreate {
	_c.mutation.SetNextIntervalDays(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ProbeEventCreate) SetSessionID(v string) *ProbeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ProbeEventCreate) SetNillableSessionID(v *string) *ProbeEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the ProbeEventMutation object of the builder.
func (_c *ProbeEventCreate) Mutation() *ProbeEventMutation {
	return _c.mutation
}

// Save creates the ProbeEvent in the database.
func (_c *ProbeEventCreate) Save(ctx context.Context) (*ProbeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProbeEventCreate) SaveX(ctx context.Context) *ProbeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProbeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProbeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProbeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := probeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProbeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProbeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProbeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "ProbeEvent.child_id"`)}
	}
	if v, ok := _c.mutation.ChildID(); ok {
		if err := probeevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "ProbeEvent.child_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ProbeEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := probeevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProbeEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ProbeEvent.correct"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ProbeEvent.total"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ProbeEvent.passed"`)}
	}
	if _, ok := _c.mutation.NextIntervalDays(); !ok {
		return &ValidationError{Name: "next_interval_days", err: errors.New(`ent: missing required field "ProbeEvent.next_interval_days"`)}
	}
	return nil
}

func (_c *ProbeEventCreate) sqlSave(ctx context.Context) (*ProbeEvent, error) {
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

func (_c *ProbeEventCreate) createSpec() (*ProbeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProbeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(probeevent.Table, sqlgraph.NewFieldSpec(probeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(probeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(probeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(probeevent.FieldChildID, field.TypeString, value)
		_node.ChildID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(probeevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(probeevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(probeevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(probeevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.NextIntervalDays(); ok {
		_spec.SetField(probeevent.FieldNextIntervalDays, field.TypeInt, value)
		_node.NextIntervalDays = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(probeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// ProbeEventCreateBulk is the builder for creating many ProbeEvent entities in bulk.
type ProbeEventCreateBulk struct {
	config
	err      error
	builders []*ProbeEventCreate
}

// Save creates the ProbeEvent entities in the database.
func (_c *ProbeEventCreateBulk) Save(ctx context.Context) ([]*ProbeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProbeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProbeEventMutation)
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
func (_c *ProbeEventCreateBulk) SaveX(ctx context.Context) []*ProbeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProbeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProbeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
