// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/ent/predicate"
)

// InterpretationTaskDelete is the builder for deleting a InterpretationTask entity.
type InterpretationTaskDelete struct {
	config
	hooks    []Hook
	mutation *InterpretationTaskMutation
}

// Where appends a list predicates to the InterpretationTaskDelete builder.
func (_d *InterpretationTaskDelete) Where(ps ...predicate.InterpretationTask) *InterpretationTaskDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InterpretationTaskDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InterpretationTaskDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InterpretationTaskDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(interpretationtask.Table, sqlgraph.NewFieldSpec(interpretationtask.FieldID, field.TypeString))
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

// InterpretationTaskDeleteOne is the builder for deleting a single InterpretationTask entity.
type InterpretationTaskDeleteOne struct {
	_d *InterpretationTaskDelete
}

// Where appends a list predicates to the InterpretationTaskDelete builder.
func (_d *InterpretationTaskDeleteOne) Where(ps ...predicate.InterpretationTask) *InterpretationTaskDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InterpretationTaskDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{interpretationtask.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InterpretationTaskDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
