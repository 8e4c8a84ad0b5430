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

// InterpretationTaskCreate is the builder for creating a InterpretationTask entity.
type InterpretationTaskCreate struct {
	config
	mutation *InterpretationTaskMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InterpretationTaskCreate) SetUserID(v string) *InterpretationTaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDeityID sets the "deity_id" field.
func (_c *InterpretationTaskCreate) SetDeityID(v string) *InterpretationTaskCreate {
	_c.mutation.SetDeityID(v)
	return _c
}

// SetTemple sets the "temple" field.
func (_c *InterpretationTaskCreate) SetTemple(v string) *InterpretationTaskCreate {
	_c.mutation.SetTemple(v)
	return _c
}

// SetFortuneNumber sets the "fortune_number" field.
func (_c *InterpretationTaskCreate) SetFortuneNumber(v int) *InterpretationTaskCreate {
	_c.mutation.SetFortuneNumber(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *InterpretationTaskCreate) SetQuestion(v string) *InterpretationTaskCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *InterpretationTaskCreate) SetContext(v map[string]string) *InterpretationTaskCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *InterpretationTaskCreate) SetLanguage(v string) *InterpretationTaskCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableLanguage(v *string) *InterpretationTaskCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InterpretationTaskCreate) SetStatus(v interpretationtask.Status) *InterpretationTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableStatus(v *interpretationtask.Status) *InterpretationTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *InterpretationTaskCreate) SetProgress(v int) *InterpretationTaskCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableProgress(v *int) *InterpretationTaskCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *InterpretationTaskCreate) SetStatusCode(v int) *InterpretationTaskCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableStatusCode(v *int) *InterpretationTaskCreate {
	if v != nil {
		_c.SetStatusCode(*v)
	}
	return _c
}

// SetStatusMessage sets the "status_message" field.
func (_c *InterpretationTaskCreate) SetStatusMessage(v string) *InterpretationTaskCreate {
	_c.mutation.SetStatusMessage(v)
	return _c
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableStatusMessage(v *string) *InterpretationTaskCreate {
	if v != nil {
		_c.SetStatusMessage(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *InterpretationTaskCreate) SetPriority(v int) *InterpretationTaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillablePriority(v *int) *InterpretationTaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *InterpretationTaskCreate) SetCancelRequested(v bool) *InterpretationTaskCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableCancelRequested(v *bool) *InterpretationTaskCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *InterpretationTaskCreate) SetClaimedBy(v string) *InterpretationTaskCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableClaimedBy(v *string) *InterpretationTaskCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *InterpretationTaskCreate) SetRetryCount(v int) *InterpretationTaskCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableRetryCount(v *int) *InterpretationTaskCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *InterpretationTaskCreate) SetSubmittedAt(v time.Time) *InterpretationTaskCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableSubmittedAt(v *time.Time) *InterpretationTaskCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InterpretationTaskCreate) SetStartedAt(v time.Time) *InterpretationTaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableStartedAt(v *time.Time) *InterpretationTaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *InterpretationTaskCreate) SetCompletedAt(v time.Time) *InterpretationTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableCompletedAt(v *time.Time) *InterpretationTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *InterpretationTaskCreate) SetLastActivityAt(v time.Time) *InterpretationTaskCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableLastActivityAt(v *time.Time) *InterpretationTaskCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetResponseText sets the "response_text" field.
func (_c *InterpretationTaskCreate) SetResponseText(v string) *InterpretationTaskCreate {
	_c.mutation.SetResponseText(v)
	return _c
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableResponseText(v *string) *InterpretationTaskCreate {
	if v != nil {
		_c.SetResponseText(*v)
	}
	return _c
}

// SetResponseSections sets the "response_sections" field.
func (_c *InterpretationTaskCreate) SetResponseSections(v map[string]string) *InterpretationTaskCreate {
	_c.mutation.SetResponseSections(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *InterpretationTaskCreate) SetConfidence(v float64) *InterpretationTaskCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableConfidence(v *float64) *InterpretationTaskCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSources sets the "sources" field.
func (_c *InterpretationTaskCreate) SetSources(v []string) *InterpretationTaskCreate {
	_c.mutation.SetSources(v)
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *InterpretationTaskCreate) SetProcessingTimeMs(v int64) *InterpretationTaskCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableProcessingTimeMs(v *int64) *InterpretationTaskCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetErrorCategory sets the "error_category" field.
func (_c *InterpretationTaskCreate) SetErrorCategory(v string) *InterpretationTaskCreate {
	_c.mutation.SetErrorCategory(v)
	return _c
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableErrorCategory(v *string) *InterpretationTaskCreate {
	if v != nil {
		_c.SetErrorCategory(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *InterpretationTaskCreate) SetErrorMessage(v string) *InterpretationTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableErrorMessage(v *string) *InterpretationTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCanGenerateReport sets the "can_generate_report" field.
func (_c *InterpretationTaskCreate) SetCanGenerateReport(v bool) *InterpretationTaskCreate {
	_c.mutation.SetCanGenerateReport(v)
	return _c
}

// SetNillableCanGenerateReport sets the "can_generate_report" field if the given value is not nil.
func (_c *InterpretationTaskCreate) SetNillableCanGenerateReport(v *bool) *InterpretationTaskCreate {
	if v != nil {
		_c.SetCanGenerateReport(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterpretationTaskCreate) SetID(v string) *InterpretationTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTransitionIDs adds the "transitions" edge to the TaskTransition entity by IDs.
func (_c *InterpretationTaskCreate) AddTransitionIDs(ids ...int) *InterpretationTaskCreate {
	_c.mutation.AddTransitionIDs(ids...)
	return _c
}

// AddTransitions adds the "transitions" edges to the TaskTransition entity.
func (_c *InterpretationTaskCreate) AddTransitions(v ...*TaskTransition) *InterpretationTaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransitionIDs(ids...)
}

// Mutation returns the InterpretationTaskMutation object of the builder.
func (_c *InterpretationTaskCreate) Mutation() *InterpretationTaskMutation {
	return _c.mutation
}

// Save creates the InterpretationTask in the database.
func (_c *InterpretationTaskCreate) Save(ctx context.Context) (*InterpretationTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterpretationTaskCreate) SaveX(ctx context.Context) *InterpretationTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterpretationTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterpretationTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterpretationTaskCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := interpretationtask.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := interpretationtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := interpretationtask.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		v := interpretationtask.DefaultStatusCode
		_c.mutation.SetStatusCode(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := interpretationtask.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := interpretationtask.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := interpretationtask.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := interpretationtask.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
	if _, ok := _c.mutation.CanGenerateReport(); !ok {
		v := interpretationtask.DefaultCanGenerateReport
		_c.mutation.SetCanGenerateReport(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterpretationTaskCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InterpretationTask.user_id"`)}
	}
	if _, ok := _c.mutation.DeityID(); !ok {
		return &ValidationError{Name: "deity_id", err: errors.New(`ent: missing required field "InterpretationTask.deity_id"`)}
	}
	if _, ok := _c.mutation.Temple(); !ok {
		return &ValidationError{Name: "temple", err: errors.New(`ent: missing required field "InterpretationTask.temple"`)}
	}
	if _, ok := _c.mutation.FortuneNumber(); !ok {
		return &ValidationError{Name: "fortune_number", err: errors.New(`ent: missing required field "InterpretationTask.fortune_number"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "InterpretationTask.question"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "InterpretationTask.language"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InterpretationTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := interpretationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InterpretationTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "InterpretationTask.progress"`)}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "InterpretationTask.status_code"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "InterpretationTask.priority"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "InterpretationTask.cancel_requested"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "InterpretationTask.retry_count"`)}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "InterpretationTask.submitted_at"`)}
	}
	if _, ok := _c.mutation.CanGenerateReport(); !ok {
		return &ValidationError{Name: "can_generate_report", err: errors.New(`ent: missing required field "InterpretationTask.can_generate_report"`)}
	}
	return nil
}

func (_c *InterpretationTaskCreate) sqlSave(ctx context.Context) (*InterpretationTask, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected InterpretationTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterpretationTaskCreate) createSpec() (*InterpretationTask, *sqlgraph.CreateSpec) {
	var (
		_node = &InterpretationTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interpretationtask.Table, sqlgraph.NewFieldSpec(interpretationtask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(interpretationtask.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DeityID(); ok {
		_spec.SetField(interpretationtask.FieldDeityID, field.TypeString, value)
		_node.DeityID = value
	}
	if value, ok := _c.mutation.Temple(); ok {
		_spec.SetField(interpretationtask.FieldTemple, field.TypeString, value)
		_node.Temple = value
	}
	if value, ok := _c.mutation.FortuneNumber(); ok {
		_spec.SetField(interpretationtask.FieldFortuneNumber, field.TypeInt, value)
		_node.FortuneNumber = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(interpretationtask.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(interpretationtask.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(interpretationtask.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(interpretationtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(interpretationtask.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(interpretationtask.FieldStatusCode, field.TypeInt, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.StatusMessage(); ok {
		_spec.SetField(interpretationtask.FieldStatusMessage, field.TypeString, value)
		_node.StatusMessage = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(interpretationtask.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(interpretationtask.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(interpretationtask.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(interpretationtask.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(interpretationtask.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(interpretationtask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(interpretationtask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(interpretationtask.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = &value
	}
	if value, ok := _c.mutation.ResponseText(); ok {
		_spec.SetField(interpretationtask.FieldResponseText, field.TypeString, value)
		_node.ResponseText = value
	}
	if value, ok := _c.mutation.ResponseSections(); ok {
		_spec.SetField(interpretationtask.FieldResponseSections, field.TypeJSON, value)
		_node.ResponseSections = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(interpretationtask.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Sources(); ok {
		_spec.SetField(interpretationtask.FieldSources, field.TypeJSON, value)
		_node.Sources = value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(interpretationtask.FieldProcessingTimeMs, field.TypeInt64, value)
		_node.ProcessingTimeMs = value
	}
	if value, ok := _c.mutation.ErrorCategory(); ok {
		_spec.SetField(interpretationtask.FieldErrorCategory, field.TypeString, value)
		_node.ErrorCategory = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(interpretationtask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CanGenerateReport(); ok {
		_spec.SetField(interpretationtask.FieldCanGenerateReport, field.TypeBool, value)
		_node.CanGenerateReport = value
	}
	if nodes := _c.mutation.TransitionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interpretationtask.TransitionsTable,
			Columns: []string{interpretationtask.TransitionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasktransition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InterpretationTaskCreateBulk is the builder for creating many InterpretationTask entities in bulk.
type InterpretationTaskCreateBulk struct {
	config
	err      error
	builders []*InterpretationTaskCreate
}

// Save creates the InterpretationTask entities in the database.
func (_c *InterpretationTaskCreateBulk) Save(ctx context.Context) ([]*InterpretationTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterpretationTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterpretationTaskMutation)
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
func (_c *InterpretationTaskCreateBulk) SaveX(ctx context.Context) []*InterpretationTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterpretationTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterpretationTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
