// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/masterytransitionevent"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// MasteryTransitionEventDelete is the builder for deleting a MasteryTransitionEvent entity.
type MasteryTransitionEventDelete struct {
	config
	hooks    []Hook
	mutation *MasteryTransitionEventMutation
}

// Where appends a list predicates to the MasteryTransitionEventDelete builder.
func (_d *MasteryTransitionEventDelete) Where(ps ...predicate.MasteryTransitionEvent) *MasteryTransitionEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MasteryTransitionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MasteryTransitionEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MasteryTransitionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(masterytransitionevent.Table, sqlgraph.NewFieldSpec(masterytransitionevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MasteryTransitionEventDeleteOne is the builder for deleting a single MasteryTransitionEvent entity.
type MasteryTransitionEventDeleteOne struct {
	_d *MasteryTransitionEventDelete
}

// Where appends a list predicates to the MasteryTransitionEventDelete builder.
func (_d *MasteryTransitionEventDeleteOne) Where(ps ...predicate.MasteryTransitionEvent) *MasteryTransitionEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MasteryTransitionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{masterytransitionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MasteryTransitionEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
