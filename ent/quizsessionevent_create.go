// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/quizsessionevent"
	"github.com/abhisek/adaptiq/ent/schema"
)

// QuizSessionEventCreate is the builder for creating a QuizSessionEvent entity.
type QuizSessionEventCreate struct {
	config
	mutation *QuizSessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizSessionEventCreate) SetSequence(v int64) *QuizSessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizSessionEventCreate) SetTimestamp(v time.Time) *QuizSessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizSessionEventCreate) SetNillableTimestamp(v *time.Time) *QuizSessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuizSessionEventCreate) SetSessionID(v string) *QuizSessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *QuizSessionEventCreate) SetChildID(v string) *QuizSessionEventCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *QuizSessionEventCreate) SetSubjectID(v string) *QuizSessionEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *QuizSessionEventCreate) SetQuestionCount(v int) *QuizSessionEventCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *QuizSessionEventCreate) SetCorrectCount(v int) *QuizSessionEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetEndReason sets the "end_reason" field.
func (_c *QuizSessionEventCreate) SetEndReason(v string) *QuizSessionEventCreate {
	_c.mutation.SetEndReason(v)
	return _c
}

// SetEarlyExit sets the "early_exit" field.
func (_c *QuizSessionEventCreate) SetEarlyExit(v bool) *QuizSessionEventCreate {
	_c.mutation.SetEarlyExit(v)
	return _c
}

// SetNillableEarlyExit sets the "early_exit" field if the given value is not nil.
func (_c *QuizSessionEventCreate) SetNillableEarlyExit(v *bool) *QuizSessionEventCreate {
	if v != nil {
		_c.SetEarlyExit(*v)
	}
	return _c
}

// SetReviewMode sets the "review_mode" field.
func (_c *QuizSessionEventCreate) SetReviewMode(v bool) *QuizSessionEventCreate {
	_c.mutation.SetReviewMode(v)
	return _c
}

// SetNillableReviewMode sets the "review_mode" field if the given value is not nil.
func (_c *QuizSessionEventCreate) SetNillableReviewMode(v *bool) *QuizSessionEventCreate {
	if v != nil {
		_c.SetReviewMode(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *QuizSessionEventCreate) SetDurationMs(v int64) *QuizSessionEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *QuizSessionEventCreate) SetPlan(v []schema.PlanSlot) *QuizSessionEventCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// Mutation returns the QuizSessionEventMutation object of the builder.
func (_c *QuizSessionEventCreate) Mutation() *QuizSessionEventMutation {
	return _c.mutation
}

// Save creates the QuizSessionEvent in the database.
func (_c *QuizSessionEventCreate) Save(ctx context.Context) (*QuizSessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizSessionEventCreate) SaveX(ctx context.Context) *QuizSessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizSessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizsessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.EarlyExit(); !ok {
		v := quizsessionevent.DefaultEarlyExit
		_c.mutation.SetEarlyExit(v)
	}
	if _, ok := _c.mutation.ReviewMode(); !ok {
		v := quizsessionevent.DefaultReviewMode
		_c.mutation.SetReviewMode(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizSessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizSessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizSessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizSessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "QuizSessionEvent.child_id"`)}
	}
	if v, ok := _c.mutation.ChildID(); ok {
		if err := quizsessionevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.child_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "QuizSessionEvent.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := quizsessionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "QuizSessionEvent.question_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "QuizSessionEvent.correct_count"`)}
	}
	if _, ok := _c.mutation.EndReason(); !ok {
		return &ValidationError{Name: "end_reason", err: errors.New(`ent: missing required field "QuizSessionEvent.end_reason"`)}
	}
	if v, ok := _c.mutation.EndReason(); ok {
		if err := quizsessionevent.EndReasonValidator(v); err != nil {
			return &ValidationError{Name: "end_reason", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.end_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EarlyExit(); !ok {
		return &ValidationError{Name: "early_exit", err: errors.New(`ent: missing required field "QuizSessionEvent.early_exit"`)}
	}
	if _, ok := _c.mutation.ReviewMode(); !ok {
		return &ValidationError{Name: "review_mode", err: errors.New(`ent: missing required field "QuizSessionEvent.review_mode"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "QuizSessionEvent.duration_ms"`)}
	}
	return nil
}

func (_c *QuizSessionEventCreate) sqlSave(ctx context.Context) (*QuizSessionEvent, error) {
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

func (_c *QuizSessionEventCreate) createSpec() (*QuizSessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizSessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizsessionevent.Table, sqlgraph.NewFieldSpec(quizsessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizsessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizsessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizsessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(quizsessionevent.FieldChildID, field.TypeString, value)
		_node.ChildID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(quizsessionevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(quizsessionevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(quizsessionevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.EndReason(); ok {
		_spec.SetField(quizsessionevent.FieldEndReason, field.TypeString, value)
		_node.EndReason = value
	}
	if value, ok := _c.mutation.EarlyExit(); ok {
		_spec.SetField(quizsessionevent.FieldEarlyExit, field.TypeBool, value)
		_node.EarlyExit = value
	}
	if value, ok := _c.mutation.ReviewMode(); ok {
		_spec.SetField(quizsessionevent.FieldReviewMode, field.TypeBool, value)
		_node.ReviewMode = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(quizsessionevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(quizsessionevent.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	return _node, _spec
}

// QuizSessionEventCreateBulk is the builder for creating many QuizSessionEvent entities in bulk.
type QuizSessionEventCreateBulk struct {
	config
	err      error
	builders []*QuizSessionEventCreate
}

// Save creates the QuizSessionEvent entities in the database.
func (_c *QuizSessionEventCreateBulk) Save(ctx context.Context) ([]*QuizSessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizSessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizSessionEventMutation)
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
func (_c *QuizSessionEventCreateBulk) SaveX(ctx context.Context) []*QuizSessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
