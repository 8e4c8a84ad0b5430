// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/ent/predicate"
	"github.com/templeworks/lingqian/ent/tasktransition"
)

// InterpretationTaskUpdate is the builder for updating InterpretationTask entities.
type InterpretationTaskUpdate struct {
	config
	hooks    []Hook
	mutation *InterpretationTaskMutation
}

// Where appends a list predicates to the InterpretationTaskUpdate builder.
func (_u *InterpretationTaskUpdate) Where(ps ...predicate.InterpretationTask) *InterpretationTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContext sets the "context" field.
func (_u *InterpretationTaskUpdate) SetContext(v map[string]string) *InterpretationTaskUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *InterpretationTaskUpdate) ClearContext() *InterpretationTaskUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *InterpretationTaskUpdate) SetLanguage(v string) *InterpretationTaskUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableLanguage(v *string) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InterpretationTaskUpdate) SetStatus(v interpretationtask.Status) *InterpretationTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableStatus(v *interpretationtask.Status) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *InterpretationTaskUpdate) SetProgress(v int) *InterpretationTaskUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableProgress(v *int) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *InterpretationTaskUpdate) AddProgress(v int) *InterpretationTaskUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *InterpretationTaskUpdate) SetStatusCode(v int) *InterpretationTaskUpdate {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableStatusCode(v *int) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *InterpretationTaskUpdate) AddStatusCode(v int) *InterpretationTaskUpdate {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *InterpretationTaskUpdate) SetStatusMessage(v string) *InterpretationTaskUpdate {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableStatusMessage(v *string) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *InterpretationTaskUpdate) ClearStatusMessage() *InterpretationTaskUpdate {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InterpretationTaskUpdate) SetPriority(v int) *InterpretationTaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillablePriority(v *int) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *InterpretationTaskUpdate) AddPriority(v int) *InterpretationTaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *InterpretationTaskUpdate) SetCancelRequested(v bool) *InterpretationTaskUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableCancelRequested(v *bool) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *InterpretationTaskUpdate) SetClaimedBy(v string) *InterpretationTaskUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableClaimedBy(v *string) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *InterpretationTaskUpdate) ClearClaimedBy() *InterpretationTaskUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *InterpretationTaskUpdate) SetRetryCount(v int) *InterpretationTaskUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableRetryCount(v *int) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *InterpretationTaskUpdate) AddRetryCount(v int) *InterpretationTaskUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InterpretationTaskUpdate) SetStartedAt(v time.Time) *InterpretationTaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableStartedAt(v *time.Time) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InterpretationTaskUpdate) ClearStartedAt() *InterpretationTaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InterpretationTaskUpdate) SetCompletedAt(v time.Time) *InterpretationTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableCompletedAt(v *time.Time) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InterpretationTaskUpdate) ClearCompletedAt() *InterpretationTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *InterpretationTaskUpdate) SetLastActivityAt(v time.Time) *InterpretationTaskUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableLastActivityAt(v *time.Time) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *InterpretationTaskUpdate) ClearLastActivityAt() *InterpretationTaskUpdate {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetResponseText sets the "response_text" field.
func (_u *InterpretationTaskUpdate) SetResponseText(v string) *InterpretationTaskUpdate {
	_u.mutation.SetResponseText(v)
	return _u
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableResponseText(v *string) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetResponseText(*v)
	}
	return _u
}

// ClearResponseText clears the value of the "response_text" field.
func (_u *InterpretationTaskUpdate) ClearResponseText() *InterpretationTaskUpdate {
	_u.mutation.ClearResponseText()
	return _u
}

// SetResponseSections sets the "response_sections" field.
func (_u *InterpretationTaskUpdate) SetResponseSections(v map[string]string) *InterpretationTaskUpdate {
	_u.mutation.SetResponseSections(v)
	return _u
}

// ClearResponseSections clears the value of the "response_sections" field.
func (_u *InterpretationTaskUpdate) ClearResponseSections() *InterpretationTaskUpdate {
	_u.mutation.ClearResponseSections()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InterpretationTaskUpdate) SetConfidence(v float64) *InterpretationTaskUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableConfidence(v *float64) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InterpretationTaskUpdate) AddConfidence(v float64) *InterpretationTaskUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InterpretationTaskUpdate) ClearConfidence() *InterpretationTaskUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetSources sets the "sources" field.
func (_u *InterpretationTaskUpdate) SetSources(v []string) *InterpretationTaskUpdate {
	_u.mutation.SetSources(v)
	return _u
}

// AppendSources appends value to the "sources" field.
func (_u *InterpretationTaskUpdate) AppendSources(v []string) *InterpretationTaskUpdate {
	_u.mutation.AppendSources(v)
	return _u
}

// ClearSources clears the value of the "sources" field.
func (_u *InterpretationTaskUpdate) ClearSources() *InterpretationTaskUpdate {
	_u.mutation.ClearSources()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *InterpretationTaskUpdate) SetProcessingTimeMs(v int64) *InterpretationTaskUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableProcessingTimeMs(v *int64) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *InterpretationTaskUpdate) AddProcessingTimeMs(v int64) *InterpretationTaskUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *InterpretationTaskUpdate) ClearProcessingTimeMs() *InterpretationTaskUpdate {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetErrorCategory sets the "error_category" field.
func (_u *InterpretationTaskUpdate) SetErrorCategory(v string) *InterpretationTaskUpdate {
	_u.mutation.SetErrorCategory(v)
	return _u
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableErrorCategory(v *string) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetErrorCategory(*v)
	}
	return _u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (_u *InterpretationTaskUpdate) ClearErrorCategory() *InterpretationTaskUpdate {
	_u.mutation.ClearErrorCategory()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InterpretationTaskUpdate) SetErrorMessage(v string) *InterpretationTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableErrorMessage(v *string) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InterpretationTaskUpdate) ClearErrorMessage() *InterpretationTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCanGenerateReport sets the "can_generate_report" field.
func (_u *InterpretationTaskUpdate) SetCanGenerateReport(v bool) *InterpretationTaskUpdate {
	_u.mutation.SetCanGenerateReport(v)
	return _u
}

// SetNillableCanGenerateReport sets the "can_generate_report" field if the given value is not nil.
func (_u *InterpretationTaskUpdate) SetNillableCanGenerateReport(v *bool) *InterpretationTaskUpdate {
	if v != nil {
		_u.SetCanGenerateReport(*v)
	}
	return _u
}

// AddTransitionIDs adds the "transitions" edge to the TaskTransition entity by IDs.
func (_u *InterpretationTaskUpdate) AddTransitionIDs(ids ...int) *InterpretationTaskUpdate {
	_u.mutation.AddTransitionIDs(ids...)
	return _u
}

// AddTransitions adds the "transitions" edges to the TaskTransition entity.
func (_u *InterpretationTaskUpdate) AddTransitions(v ...*TaskTransition) *InterpretationTaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransitionIDs(ids...)
}

// Mutation returns the InterpretationTaskMutation object of the builder.
func (_u *InterpretationTaskUpdate) Mutation() *InterpretationTaskMutation {
	return _u.mutation
}

// ClearTransitions clears all "transitions" edges to the TaskTransition entity.
func (_u *InterpretationTaskUpdate) ClearTransitions() *InterpretationTaskUpdate {
	_u.mutation.ClearTransitions()
	return _u
}

// RemoveTransitionIDs removes the "transitions" edge to TaskTransition entities by IDs.
func (_u *InterpretationTaskUpdate) RemoveTransitionIDs(ids ...int) *InterpretationTaskUpdate {
	_u.mutation.RemoveTransitionIDs(ids...)
	return _u
}

// RemoveTransitions removes "transitions" edges to TaskTransition entities.
func (_u *InterpretationTaskUpdate) RemoveTransitions(v ...*TaskTransition) *InterpretationTaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransitionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterpretationTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterpretationTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterpretationTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterpretationTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterpretationTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := interpretationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InterpretationTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InterpretationTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interpretationtask.Table, interpretationtask.Columns, sqlgraph.NewFieldSpec(interpretationtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(interpretationtask.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(interpretationtask.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(interpretationtask.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interpretationtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(interpretationtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(interpretationtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(interpretationtask.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(interpretationtask.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(interpretationtask.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(interpretationtask.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(interpretationtask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(interpretationtask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(interpretationtask.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(interpretationtask.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(interpretationtask.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(interpretationtask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(interpretationtask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(interpretationtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(interpretationtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(interpretationtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(interpretationtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(interpretationtask.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(interpretationtask.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseText(); ok {
		_spec.SetField(interpretationtask.FieldResponseText, field.TypeString, value)
	}
	if _u.mutation.ResponseTextCleared() {
		_spec.ClearField(interpretationtask.FieldResponseText, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseSections(); ok {
		_spec.SetField(interpretationtask.FieldResponseSections, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSectionsCleared() {
		_spec.ClearField(interpretationtask.FieldResponseSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(interpretationtask.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(interpretationtask.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(interpretationtask.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sources(); ok {
		_spec.SetField(interpretationtask.FieldSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interpretationtask.FieldSources, value)
		})
	}
	if _u.mutation.SourcesCleared() {
		_spec.ClearField(interpretationtask.FieldSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(interpretationtask.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(interpretationtask.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(interpretationtask.FieldProcessingTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.ErrorCategory(); ok {
		_spec.SetField(interpretationtask.FieldErrorCategory, field.TypeString, value)
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(interpretationtask.FieldErrorCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(interpretationtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(interpretationtask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CanGenerateReport(); ok {
		_spec.SetField(interpretationtask.FieldCanGenerateReport, field.TypeBool, value)
	}
	if _u.mutation.TransitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransitionsIDs(); len(nodes) > 0 && !_u.mutation.TransitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransitionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interpretationtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterpretationTaskUpdateOne is the builder for updating a single InterpretationTask entity.
type InterpretationTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterpretationTaskMutation
}

// SetContext sets the "context" field.
func (_u *InterpretationTaskUpdateOne) SetContext(v map[string]string) *InterpretationTaskUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *InterpretationTaskUpdateOne) ClearContext() *InterpretationTaskUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *InterpretationTaskUpdateOne) SetLanguage(v string) *InterpretationTaskUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableLanguage(v *string) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InterpretationTaskUpdateOne) SetStatus(v interpretationtask.Status) *InterpretationTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableStatus(v *interpretationtask.Status) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *InterpretationTaskUpdateOne) SetProgress(v int) *InterpretationTaskUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableProgress(v *int) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *InterpretationTaskUpdateOne) AddProgress(v int) *InterpretationTaskUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *InterpretationTaskUpdateOne) SetStatusCode(v int) *InterpretationTaskUpdateOne {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableStatusCode(v *int) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *InterpretationTaskUpdateOne) AddStatusCode(v int) *InterpretationTaskUpdateOne {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *InterpretationTaskUpdateOne) SetStatusMessage(v string) *InterpretationTaskUpdateOne {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableStatusMessage(v *string) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *InterpretationTaskUpdateOne) ClearStatusMessage() *InterpretationTaskUpdateOne {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InterpretationTaskUpdateOne) SetPriority(v int) *InterpretationTaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillablePriority(v *int) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *InterpretationTaskUpdateOne) AddPriority(v int) *InterpretationTaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *InterpretationTaskUpdateOne) SetCancelRequested(v bool) *InterpretationTaskUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableCancelRequested(v *bool) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *InterpretationTaskUpdateOne) SetClaimedBy(v string) *InterpretationTaskUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableClaimedBy(v *string) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *InterpretationTaskUpdateOne) ClearClaimedBy() *InterpretationTaskUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *InterpretationTaskUpdateOne) SetRetryCount(v int) *InterpretationTaskUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableRetryCount(v *int) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *InterpretationTaskUpdateOne) AddRetryCount(v int) *InterpretationTaskUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InterpretationTaskUpdateOne) SetStartedAt(v time.Time) *InterpretationTaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableStartedAt(v *time.Time) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InterpretationTaskUpdateOne) ClearStartedAt() *InterpretationTaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InterpretationTaskUpdateOne) SetCompletedAt(v time.Time) *InterpretationTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InterpretationTaskUpdateOne) ClearCompletedAt() *InterpretationTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *InterpretationTaskUpdateOne) SetLastActivityAt(v time.Time) *InterpretationTaskUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableLastActivityAt(v *time.Time) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *InterpretationTaskUpdateOne) ClearLastActivityAt() *InterpretationTaskUpdateOne {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetResponseText sets the "response_text" field.
func (_u *InterpretationTaskUpdateOne) SetResponseText(v string) *InterpretationTaskUpdateOne {
	_u.mutation.SetResponseText(v)
	return _u
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableResponseText(v *string) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetResponseText(*v)
	}
	return _u
}

// ClearResponseText clears the value of the "response_text" field.
func (_u *InterpretationTaskUpdateOne) ClearResponseText() *InterpretationTaskUpdateOne {
	_u.mutation.ClearResponseText()
	return _u
}

// SetResponseSections sets the "response_sections" field.
func (_u *InterpretationTaskUpdateOne) SetResponseSections(v map[string]string) *InterpretationTaskUpdateOne {
	_u.mutation.SetResponseSections(v)
	return _u
}

// ClearResponseSections clears the value of the "response_sections" field.
func (_u *InterpretationTaskUpdateOne) ClearResponseSections() *InterpretationTaskUpdateOne {
	_u.mutation.ClearResponseSections()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InterpretationTaskUpdateOne) SetConfidence(v float64) *InterpretationTaskUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableConfidence(v *float64) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InterpretationTaskUpdateOne) AddConfidence(v float64) *InterpretationTaskUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InterpretationTaskUpdateOne) ClearConfidence() *InterpretationTaskUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetSources sets the "sources" field.
func (_u *InterpretationTaskUpdateOne) SetSources(v []string) *InterpretationTaskUpdateOne {
	_u.mutation.SetSources(v)
	return _u
}

// AppendSources appends value to the "sources" field.
func (_u *InterpretationTaskUpdateOne) AppendSources(v []string) *InterpretationTaskUpdateOne {
	_u.mutation.AppendSources(v)
	return _u
}

// ClearSources clears the value of the "sources" field.
func (_u *InterpretationTaskUpdateOne) ClearSources() *InterpretationTaskUpdateOne {
	_u.mutation.ClearSources()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *InterpretationTaskUpdateOne) SetProcessingTimeMs(v int64) *InterpretationTaskUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableProcessingTimeMs(v *int64) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *InterpretationTaskUpdateOne) AddProcessingTimeMs(v int64) *InterpretationTaskUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *InterpretationTaskUpdateOne) ClearProcessingTimeMs() *InterpretationTaskUpdateOne {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetErrorCategory sets the "error_category" field.
func (_u *InterpretationTaskUpdateOne) SetErrorCategory(v string) *InterpretationTaskUpdateOne {
	_u.mutation.SetErrorCategory(v)
	return _u
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableErrorCategory(v *string) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetErrorCategory(*v)
	}
	return _u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (_u *InterpretationTaskUpdateOne) ClearErrorCategory() *InterpretationTaskUpdateOne {
	_u.mutation.ClearErrorCategory()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InterpretationTaskUpdateOne) SetErrorMessage(v string) *InterpretationTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableErrorMessage(v *string) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InterpretationTaskUpdateOne) ClearErrorMessage() *InterpretationTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCanGenerateReport sets the "can_generate_report" field.
func (_u *InterpretationTaskUpdateOne) SetCanGenerateReport(v bool) *InterpretationTaskUpdateOne {
	_u.mutation.SetCanGenerateReport(v)
	return _u
}

// SetNillableCanGenerateReport sets the "can_generate_report" field if the given value is not nil.
func (_u *InterpretationTaskUpdateOne) SetNillableCanGenerateReport(v *bool) *InterpretationTaskUpdateOne {
	if v != nil {
		_u.SetCanGenerateReport(*v)
	}
	return _u
}

// AddTransitionIDs adds the "transitions" edge to the TaskTransition entity by IDs.
func (_u *InterpretationTaskUpdateOne) AddTransitionIDs(ids ...int) *InterpretationTaskUpdateOne {
	_u.mutation.AddTransitionIDs(ids...)
	return _u
}

// AddTransitions adds the "transitions" edges to the TaskTransition entity.
func (_u *InterpretationTaskUpdateOne) AddTransitions(v ...*TaskTransition) *InterpretationTaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransitionIDs(ids...)
}

// Mutation returns the InterpretationTaskMutation object of the builder.
func (_u *InterpretationTaskUpdateOne) Mutation() *InterpretationTaskMutation {
	return _u.mutation
}

// ClearTransitions clears all "transitions" edges to the TaskTransition entity.
func (_u *InterpretationTaskUpdateOne) ClearTransitions() *InterpretationTaskUpdateOne {
	_u.mutation.ClearTransitions()
	return _u
}

// RemoveTransitionIDs removes the "transitions" edge to TaskTransition entities by IDs.
func (_u *InterpretationTaskUpdateOne) RemoveTransitionIDs(ids ...int) *InterpretationTaskUpdateOne {
	_u.mutation.RemoveTransitionIDs(ids...)
	return _u
}

// RemoveTransitions removes "transitions" edges to TaskTransition entities.
func (_u *InterpretationTaskUpdateOne) RemoveTransitions(v ...*TaskTransition) *InterpretationTaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransitionIDs(ids...)
}

// Where appends a list predicates to the InterpretationTaskUpdate builder.
func (_u *InterpretationTaskUpdateOne) Where(ps ...predicate.InterpretationTask) *InterpretationTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterpretationTaskUpdateOne) Select(field string, fields ...string) *InterpretationTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterpretationTask entity.
func (_u *InterpretationTaskUpdateOne) Save(ctx context.Context) (*InterpretationTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterpretationTaskUpdateOne) SaveX(ctx context.Context) *InterpretationTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterpretationTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterpretationTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterpretationTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := interpretationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InterpretationTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InterpretationTaskUpdateOne) sqlSave(ctx context.Context) (_node *InterpretationTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interpretationtask.Table, interpretationtask.Columns, sqlgraph.NewFieldSpec(interpretationtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterpretationTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interpretationtask.FieldID)
		for _, f := range fields {
			if !interpretationtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interpretationtask.FieldID {
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
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(interpretationtask.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(interpretationtask.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(interpretationtask.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interpretationtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(interpretationtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(interpretationtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(interpretationtask.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(interpretationtask.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(interpretationtask.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(interpretationtask.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(interpretationtask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(interpretationtask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(interpretationtask.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(interpretationtask.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(interpretationtask.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(interpretationtask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(interpretationtask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(interpretationtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(interpretationtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(interpretationtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(interpretationtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(interpretationtask.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(interpretationtask.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseText(); ok {
		_spec.SetField(interpretationtask.FieldResponseText, field.TypeString, value)
	}
	if _u.mutation.ResponseTextCleared() {
		_spec.ClearField(interpretationtask.FieldResponseText, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseSections(); ok {
		_spec.SetField(interpretationtask.FieldResponseSections, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSectionsCleared() {
		_spec.ClearField(interpretationtask.FieldResponseSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(interpretationtask.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(interpretationtask.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(interpretationtask.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sources(); ok {
		_spec.SetField(interpretationtask.FieldSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interpretationtask.FieldSources, value)
		})
	}
	if _u.mutation.SourcesCleared() {
		_spec.ClearField(interpretationtask.FieldSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(interpretationtask.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(interpretationtask.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(interpretationtask.FieldProcessingTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.ErrorCategory(); ok {
		_spec.SetField(interpretationtask.FieldErrorCategory, field.TypeString, value)
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(interpretationtask.FieldErrorCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(interpretationtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(interpretationtask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CanGenerateReport(); ok {
		_spec.SetField(interpretationtask.FieldCanGenerateReport, field.TypeBool, value)
	}
	if _u.mutation.TransitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransitionsIDs(); len(nodes) > 0 && !_u.mutation.TransitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransitionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InterpretationTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interpretationtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
