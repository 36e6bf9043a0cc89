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
	"github.com/abhisek/adaptiq/ent/predicate"
	"github.com/abhisek/adaptiq/ent/quizsessionevent"
	"github.com/abhisek/adaptiq/ent/schema"
)

// QuizSessionEventUpdate is the builder for updating QuizSessionEvent entities.
type QuizSessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizSessionEventMutation
}

// Where appends a list predicates to the QuizSessionEventUpdate builder.
func (_u *QuizSessionEventUpdate) Where(ps ...predicate.QuizSessionEvent) *QuizSessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizSessionEventUpdate) SetSessionID(v string) *QuizSessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableSessionID(v *string) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *QuizSessionEventUpdate) SetChildID(v string) *QuizSessionEventUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableChildID(v *string) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *QuizSessionEventUpdate) SetSubjectID(v string) *QuizSessionEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableSubjectID(v *string) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *QuizSessionEventUpdate) SetQuestionCount(v int) *QuizSessionEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableQuestionCount(v *int) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *QuizSessionEventUpdate) AddQuestionCount(v int) *QuizSessionEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizSessionEventUpdate) SetCorrectCount(v int) *QuizSessionEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableCorrectCount(v *int) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizSessionEventUpdate) AddCorrectCount(v int) *QuizSessionEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetEndReason sets the "end_reason" field.
func (_u *QuizSessionEventUpdate) SetEndReason(v string) *QuizSessionEventUpdate {
	_u.mutation.SetEndReason(v)
	return _u
}

// SetNillableEndReason sets the "end_reason" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableEndReason(v *string) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetEndReason(*v)
	}
	return _u
}

// SetEarlyExit sets the "early_exit" field.
func (_u *QuizSessionEventUpdate) SetEarlyExit(v bool) *QuizSessionEventUpdate {
	_u.mutation.SetEarlyExit(v)
	return _u
}

// SetNillableEarlyExit sets the "early_exit" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableEarlyExit(v *bool) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetEarlyExit(*v)
	}
	return _u
}

// SetReviewMode sets the "review_mode" field.
func (_u *QuizSessionEventUpdate) SetReviewMode(v bool) *QuizSessionEventUpdate {
	_u.mutation.SetReviewMode(v)
	return _u
}

// SetNillableReviewMode sets the "review_mode" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableReviewMode(v *bool) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetReviewMode(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *QuizSessionEventUpdate) SetDurationMs(v int64) *QuizSessionEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableDurationMs(v *int64) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *QuizSessionEventUpdate) AddDurationMs(v int64) *QuizSessionEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetPlan sets the "plan" field.
func (_u *QuizSessionEventUpdate) SetPlan(v []schema.PlanSlot) *QuizSessionEventUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *QuizSessionEventUpdate) AppendPlan(v []schema.PlanSlot) *QuizSessionEventUpdate {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *QuizSessionEventUpdate) ClearPlan() *QuizSessionEventUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// Mutation returns the QuizSessionEventMutation object of the builder.
func (_u *QuizSessionEventUpdate) Mutation() *QuizSessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizSessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizSessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChildID(); ok {
		if err := quizsessionevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := quizsessionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndReason(); ok {
		if err := quizsessionevent.EndReasonValidator(v); err != nil {
			return &ValidationError{Name: "end_reason", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.end_reason": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsessionevent.Table, quizsessionevent.Columns, sqlgraph.NewFieldSpec(quizsessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizsessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(quizsessionevent.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(quizsessionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(quizsessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizsessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizsessionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizsessionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndReason(); ok {
		_spec.SetField(quizsessionevent.FieldEndReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.EarlyExit(); ok {
		_spec.SetField(quizsessionevent.FieldEarlyExit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewMode(); ok {
		_spec.SetField(quizsessionevent.FieldReviewMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(quizsessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(quizsessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(quizsessionevent.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizsessionevent.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(quizsessionevent.FieldPlan, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizSessionEventUpdateOne is the builder for updating a single QuizSessionEvent entity.
type QuizSessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizSessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizSessionEventUpdateOne) SetSessionID(v string) *QuizSessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableSessionID(v *string) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *QuizSessionEventUpdateOne) SetChildID(v string) *QuizSessionEventUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableChildID(v *string) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *QuizSessionEventUpdateOne) SetSubjectID(v string) *QuizSessionEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableSubjectID(v *string) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *QuizSessionEventUpdateOne) SetQuestionCount(v int) *QuizSessionEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableQuestionCount(v *int) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *QuizSessionEventUpdateOne) AddQuestionCount(v int) *QuizSessionEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizSessionEventUpdateOne) SetCorrectCount(v int) *QuizSessionEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableCorrectCount(v *int) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizSessionEventUpdateOne) AddCorrectCount(v int) *QuizSessionEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetEndReason sets the "end_reason" field.
func (_u *QuizSessionEventUpdateOne) SetEndReason(v string) *QuizSessionEventUpdateOne {
	_u.mutation.SetEndReason(v)
	return _u
}

// SetNillableEndReason sets the "end_reason" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableEndReason(v *string) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetEndReason(*v)
	}
	return _u
}

// SetEarlyExit sets the "early_exit" field.
func (_u *QuizSessionEventUpdateOne) SetEarlyExit(v bool) *QuizSessionEventUpdateOne {
	_u.mutation.SetEarlyExit(v)
	return _u
}

// SetNillableEarlyExit sets the "early_exit" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableEarlyExit(v *bool) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetEarlyExit(*v)
	}
	return _u
}

// SetReviewMode sets the "review_mode" field.
func (_u *QuizSessionEventUpdateOne) SetReviewMode(v bool) *QuizSessionEventUpdateOne {
	_u.mutation.SetReviewMode(v)
	return _u
}

// SetNillableReviewMode sets the "review_mode" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableReviewMode(v *bool) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetReviewMode(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *QuizSessionEventUpdateOne) SetDurationMs(v int64) *QuizSessionEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableDurationMs(v *int64) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *QuizSessionEventUpdateOne) AddDurationMs(v int64) *QuizSessionEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetPlan sets the "plan" field.
func (_u *QuizSessionEventUpdateOne) SetPlan(v []schema.PlanSlot) *QuizSessionEventUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *QuizSessionEventUpdateOne) AppendPlan(v []schema.PlanSlot) *QuizSessionEventUpdateOne {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *QuizSessionEventUpdateOne) ClearPlan() *QuizSessionEventUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// Mutation returns the QuizSessionEventMutation object of the builder.
func (_u *QuizSessionEventUpdateOne) Mutation() *QuizSessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizSessionEventUpdate builder.
func (_u *QuizSessionEventUpdateOne) Where(ps ...predicate.QuizSessionEvent) *QuizSessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizSessionEventUpdateOne) Select(field string, fields ...string) *QuizSessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizSessionEvent entity.
func (_u *QuizSessionEventUpdateOne) Save(ctx context.Context) (*QuizSessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSessionEventUpdateOne) SaveX(ctx context.Context) *QuizSessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizSessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChildID(); ok {
		if err := quizsessionevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := quizsessionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndReason(); ok {
		if err := quizsessionevent.EndReasonValidator(v); err != nil {
			return &ValidationError{Name: "end_reason", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.end_reason": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSessionEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizSessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsessionevent.Table, quizsessionevent.Columns, sqlgraph.NewFieldSpec(quizsessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizSessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizsessionevent.FieldID)
		for _, f := range fields {
			if !quizsessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizsessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizsessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(quizsessionevent.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(quizsessionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(quizsessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizsessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizsessionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizsessionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndReason(); ok {
		_spec.SetField(quizsessionevent.FieldEndReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.EarlyExit(); ok {
		_spec.SetField(quizsessionevent.FieldEarlyExit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewMode(); ok {
		_spec.SetField(quizsessionevent.FieldReviewMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(quizsessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(quizsessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(quizsessionevent.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizsessionevent.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(quizsessionevent.FieldPlan, field.TypeJSON)
	}
	_node = &QuizSessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
