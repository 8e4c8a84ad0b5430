// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/ent/tasktransition"
)

// TaskTransitionCreate is the builder for creating a TaskTransition entity.
type TaskTransitionCreate struct {
	config
	mutation *TaskTransitionMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TaskTransitionCreate) SetTaskID(v string) *TaskTransitionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *TaskTransitionCreate) SetSequence(v int) *TaskTransitionCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *TaskTransitionCreate) SetStatusCode(v int) *TaskTransitionCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *TaskTransitionCreate) SetProgress(v int) *TaskTransitionCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *TaskTransitionCreate) SetMessage(v string) *TaskTransitionCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *TaskTransitionCreate) SetNillableMessage(v *string) *TaskTransitionCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskTransitionCreate) SetCreatedAt(v time.Time) *TaskTransitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskTransitionCreate) SetNillableCreatedAt(v *time.Time) *TaskTransitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTask sets the "task" edge to the InterpretationTask entity.
func (_c *TaskTransitionCreate) SetTask(v *InterpretationTask) *TaskTransitionCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskTransitionMutation object of the builder.
func (_c *TaskTransitionCreate) Mutation() *TaskTransitionMutation {
	return _c.mutation
}

// Save creates the TaskTransition in the database.
func (_c *TaskTransitionCreate) Save(ctx context.Context) (*TaskTransition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskTransitionCreate) SaveX(ctx context.Context) *TaskTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskTransitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskTransitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskTransitionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tasktransition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskTransitionCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskTransition.task_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TaskTransition.sequence"`)}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "TaskTransition.status_code"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "TaskTransition.progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskTransition.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskTransition.task"`)}
	}
	return nil
}

func (_c *TaskTransitionCreate) sqlSave(ctx context.Context) (*TaskTransition, error) {
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

func (_c *TaskTransitionCreate) createSpec() (*TaskTransition, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskTransition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tasktransition.Table, sqlgraph.NewFieldSpec(tasktransition.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(tasktransition.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(tasktransition.FieldStatusCode, field.TypeInt, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(tasktransition.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(tasktransition.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tasktransition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tasktransition.TaskTable,
			Columns: []string{tasktransition.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interpretationtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskTransitionCreateBulk is the builder for creating many TaskTransition entities in bulk.
type TaskTransitionCreateBulk struct {
	config
	err      error
	builders []*TaskTransitionCreate
}

// Save creates the TaskTransition entities in the database.
func (_c *TaskTransitionCreateBulk) Save(ctx context.Context) ([]*TaskTransition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskTransition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskTransitionMutation)
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
func (_c *TaskTransitionCreateBulk) SaveX(ctx context.Context) []*TaskTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskTransitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskTransitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
