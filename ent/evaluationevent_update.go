// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/evaluationevent"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// EvaluationEventUpdate is the builder for updating EvaluationEvent entities.
type EvaluationEventUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdate) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *EvaluationEventUpdate) SetEvaluationID(v string) *EvaluationEventUpdate {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableEvaluationID(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *EvaluationEventUpdate) SetChildID(v string) *EvaluationEventUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableChildID(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *EvaluationEventUpdate) SetSubjectID(v string) *EvaluationEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableSubjectID(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EvaluationEventUpdate) SetScore(v float64) *EvaluationEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableScore(v *float64) *EvaluationEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EvaluationEventUpdate) AddScore(v float64) *EvaluationEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *EvaluationEventUpdate) SetWeakTopics(v []string) *EvaluationEventUpdate {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *EvaluationEventUpdate) AppendWeakTopics(v []string) *EvaluationEventUpdate {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *EvaluationEventUpdate) ClearWeakTopics() *EvaluationEventUpdate {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetStrongTopics sets the "strong_topics" field.
func (_u *EvaluationEventUpdate) SetStrongTopics(v []string) *EvaluationEventUpdate {
	_u.mutation.SetStrongTopics(v)
	return _u
}

// AppendStrongTopics appends value to the "strong_topics" field.
func (_u *EvaluationEventUpdate) AppendStrongTopics(v []string) *EvaluationEventUpdate {
	_u.mutation.AppendStrongTopics(v)
	return _u
}

// ClearStrongTopics clears the value of the "strong_topics" field.
func (_u *EvaluationEventUpdate) ClearStrongTopics() *EvaluationEventUpdate {
	_u.mutation.ClearStrongTopics()
	return _u
}

// SetTopicScores sets the "topic_scores" field.
func (_u *EvaluationEventUpdate) SetTopicScores(v map[string]float64) *EvaluationEventUpdate {
	_u.mutation.SetTopicScores(v)
	return _u
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (_u *EvaluationEventUpdate) ClearTopicScores() *EvaluationEventUpdate {
	_u.mutation.ClearTopicScores()
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdate) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdate) check() error {
	if v, ok := _u.mutation.EvaluationID(); ok {
		if err := evaluationevent.EvaluationIDValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.evaluation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChildID(); ok {
		if err := evaluationevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := evaluationevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EvaluationID(); ok {
		_spec.SetField(evaluationevent.FieldEvaluationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(evaluationevent.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(evaluationevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(evaluationevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(evaluationevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(evaluationevent.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationevent.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(evaluationevent.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.StrongTopics(); ok {
		_spec.SetField(evaluationevent.FieldStrongTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrongTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationevent.FieldStrongTopics, value)
		})
	}
	if _u.mutation.StrongTopicsCleared() {
		_spec.ClearField(evaluationevent.FieldStrongTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicScores(); ok {
		_spec.SetField(evaluationevent.FieldTopicScores, field.TypeJSON, value)
	}
	if _u.mutation.TopicScoresCleared() {
		_spec.ClearField(evaluationevent.FieldTopicScores, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationEventUpdateOne is the builder for updating a single EvaluationEvent entity.
type EvaluationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *EvaluationEventUpdateOne) SetEvaluationID(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableEvaluationID(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *EvaluationEventUpdateOne) SetChildID(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableChildID(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *EvaluationEventUpdateOne) SetSubjectID(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableSubjectID(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EvaluationEventUpdateOne) SetScore(v float64) *EvaluationEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableScore(v *float64) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EvaluationEventUpdateOne) AddScore(v float64) *EvaluationEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *EvaluationEventUpdateOne) SetWeakTopics(v []string) *EvaluationEventUpdateOne {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *EvaluationEventUpdateOne) AppendWeakTopics(v []string) *EvaluationEventUpdateOne {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *EvaluationEventUpdateOne) ClearWeakTopics() *EvaluationEventUpdateOne {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetStrongTopics sets the "strong_topics" field.
func (_u *EvaluationEventUpdateOne) SetStrongTopics(v []string) *EvaluationEventUpdateOne {
	_u.mutation.SetStrongTopics(v)
	return _u
}

// AppendStrongTopics appends value to the "strong_topics" field.
func (_u *EvaluationEventUpdateOne) AppendStrongTopics(v []string) *EvaluationEventUpdateOne {
	_u.mutation.AppendStrongTopics(v)
	return _u
}

// ClearStrongTopics clears the value of the "strong_topics" field.
func (_u *EvaluationEventUpdateOne) ClearStrongTopics() *EvaluationEventUpdateOne {
	_u.mutation.ClearStrongTopics()
	return _u
}

// SetTopicScores sets the "topic_scores" field.
func (_u *EvaluationEventUpdateOne) SetTopicScores(v map[string]float64) *EvaluationEventUpdateOne {
	_u.mutation.SetTopicScores(v)
	return _u
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (_u *EvaluationEventUpdateOne) ClearTopicScores() *EvaluationEventUpdateOne {
	_u.mutation.ClearTopicScores()
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdateOne) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdateOne) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationEventUpdateOne) Select(field string, fields ...string) *EvaluationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationEvent entity.
func (_u *EvaluationEventUpdateOne) Save(ctx context.Context) (*EvaluationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) SaveX(ctx context.Context) *EvaluationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdateOne) check() error {
	if v, ok := _u.mutation.EvaluationID(); ok {
		if err := evaluationevent.EvaluationIDValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.evaluation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChildID(); ok {
		if err := evaluationevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := evaluationevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationevent.FieldID)
		for _, f := range fields {
			if !evaluationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationevent.FieldID {
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
	if value, ok := _u.mutation.EvaluationID(); ok {
		_spec.SetField(evaluationevent.FieldEvaluationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(evaluationevent.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(evaluationevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(evaluationevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(evaluationevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(evaluationevent.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationevent.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(evaluationevent.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.StrongTopics(); ok {
		_spec.SetField(evaluationevent.FieldStrongTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrongTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationevent.FieldStrongTopics, value)
		})
	}
	if _u.mutation.StrongTopicsCleared() {
		_spec.ClearField(evaluationevent.FieldStrongTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicScores(); ok {
		_spec.SetField(evaluationevent.FieldTopicScores, field.TypeJSON, value)
	}
	if _u.mutation.TopicScoresCleared() {
		_spec.ClearField(evaluationevent.FieldTopicScores, field.TypeJSON)
	}
	_node = &EvaluationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
