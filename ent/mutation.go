// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/ent/predicate"
	"github.com/templeworks/lingqian/ent/tasktransition"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInterpretationTask = "InterpretationTask"
	TypeTaskTransition     = "TaskTransition"
)

// InterpretationTaskMutation represents an operation that mutates the InterpretationTask nodes in the graph.
type InterpretationTaskMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	deity_id              *string
	temple                *string
	fortune_number        *int
	addfortune_number     *int
	question              *string
	context               *map[string]string
	language              *string
	status                *interpretationtask.Status
	progress              *int
	addprogress           *int
	status_code           *int
	addstatus_code        *int
	status_message        *string
	priority              *int
	addpriority           *int
	cancel_requested      *bool
	claimed_by            *string
	retry_count           *int
	addretry_count        *int
	submitted_at          *time.Time
	started_at            *time.Time
	completed_at          *time.Time
	last_activity_at      *time.Time
	response_text         *string
	response_sections     *map[string]string
	confidence            *float64
	addconfidence         *float64
	sources               *[]string
	appendsources         []string
	processing_time_ms    *int64
	addprocessing_time_ms *int64
	error_category        *string
	error_message         *string
	can_generate_report   *bool
	clearedFields         map[string]struct{}
	transitions           map[int]struct{}
	removedtransitions    map[int]struct{}
	clearedtransitions    bool
	done                  bool
	oldValue              func(context.Context) (*InterpretationTask, error)
	predicates            []predicate.InterpretationTask
}

var _ ent.Mutation = (*InterpretationTaskMutation)(nil)

// interpretationtaskOption allows management of the mutation configuration using functional options.
type interpretationtaskOption func(*InterpretationTaskMutation)

// newInterpretationTaskMutation creates new mutation for the InterpretationTask entity.
func newInterpretationTaskMutation(c config, op Op, opts ...interpretationtaskOption) *InterpretationTaskMutation {
	m := &InterpretationTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeInterpretationTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterpretationTaskID sets the ID field of the mutation.
func withInterpretationTaskID(id string) interpretationtaskOption {
	return func(m *InterpretationTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *InterpretationTask
		)
		m.oldValue = func(ctx context.Context) (*InterpretationTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterpretationTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterpretationTask sets the old InterpretationTask of the mutation.
func withInterpretationTask(node *InterpretationTask) interpretationtaskOption {
	return func(m *InterpretationTaskMutation) {
		m.oldValue = func(context.Context) (*InterpretationTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterpretationTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterpretationTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InterpretationTask entities.
func (m *InterpretationTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterpretationTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterpretationTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterpretationTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InterpretationTaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InterpretationTaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InterpretationTaskMutation) ResetUserID() {
	m.user_id = nil
}

// SetDeityID sets the "deity_id" field.
func (m *InterpretationTaskMutation) SetDeityID(s string) {
	m.deity_id = &s
}

// DeityID returns the value of the "deity_id" field in the mutation.
func (m *InterpretationTaskMutation) DeityID() (r string, exists bool) {
	v := m.deity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeityID returns the old "deity_id" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldDeityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeityID: %w", err)
	}
	return oldValue.DeityID, nil
}

// ResetDeityID resets all changes to the "deity_id" field.
func (m *InterpretationTaskMutation) ResetDeityID() {
	m.deity_id = nil
}

// SetTemple sets the "temple" field.
func (m *InterpretationTaskMutation) SetTemple(s string) {
	m.temple = &s
}

// Temple returns the value of the "temple" field in the mutation.
func (m *InterpretationTaskMutation) Temple() (r string, exists bool) {
	v := m.temple
	if v == nil {
		return
	}
	return *v, true
}

// OldTemple returns the old "temple" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldTemple(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemple is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemple requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemple: %w", err)
	}
	return oldValue.Temple, nil
}

// ResetTemple resets all changes to the "temple" field.
func (m *InterpretationTaskMutation) ResetTemple() {
	m.temple = nil
}

// SetFortuneNumber sets the "fortune_number" field.
func (m *InterpretationTaskMutation) SetFortuneNumber(i int) {
	m.fortune_number = &i
	m.addfortune_number = nil
}

// FortuneNumber returns the value of the "fortune_number" field in the mutation.
func (m *InterpretationTaskMutation) FortuneNumber() (r int, exists bool) {
	v := m.fortune_number
	if v == nil {
		return
	}
	return *v, true
}

// OldFortuneNumber returns the old "fortune_number" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldFortuneNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFortuneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFortuneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFortuneNumber: %w", err)
	}
	return oldValue.FortuneNumber, nil
}

// AddFortuneNumber adds i to the "fortune_number" field.
func (m *InterpretationTaskMutation) AddFortuneNumber(i int) {
	if m.addfortune_number != nil {
		*m.addfortune_number += i
	} else {
		m.addfortune_number = &i
	}
}

// AddedFortuneNumber returns the value that was added to the "fortune_number" field in this mutation.
func (m *InterpretationTaskMutation) AddedFortuneNumber() (r int, exists bool) {
	v := m.addfortune_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetFortuneNumber resets all changes to the "fortune_number" field.
func (m *InterpretationTaskMutation) ResetFortuneNumber() {
	m.fortune_number = nil
	m.addfortune_number = nil
}

// SetQuestion sets the "question" field.
func (m *InterpretationTaskMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *InterpretationTaskMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *InterpretationTaskMutation) ResetQuestion() {
	m.question = nil
}

// SetContext sets the "context" field.
func (m *InterpretationTaskMutation) SetContext(value map[string]string) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *InterpretationTaskMutation) Context() (r map[string]string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldContext(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *InterpretationTaskMutation) ClearContext() {
	m.context = nil
	m.clearedFields[interpretationtask.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *InterpretationTaskMutation) ContextCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *InterpretationTaskMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, interpretationtask.FieldContext)
}

// SetLanguage sets the "language" field.
func (m *InterpretationTaskMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *InterpretationTaskMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *InterpretationTaskMutation) ResetLanguage() {
	m.language = nil
}

// SetStatus sets the "status" field.
func (m *InterpretationTaskMutation) SetStatus(i interpretationtask.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InterpretationTaskMutation) Status() (r interpretationtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldStatus(ctx context.Context) (v interpretationtask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InterpretationTaskMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *InterpretationTaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *InterpretationTaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *InterpretationTaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *InterpretationTaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *InterpretationTaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetStatusCode sets the "status_code" field.
func (m *InterpretationTaskMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *InterpretationTaskMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldStatusCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *InterpretationTaskMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *InterpretationTaskMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *InterpretationTaskMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
}

// SetStatusMessage sets the "status_message" field.
func (m *InterpretationTaskMutation) SetStatusMessage(s string) {
	m.status_message = &s
}

// StatusMessage returns the value of the "status_message" field in the mutation.
func (m *InterpretationTaskMutation) StatusMessage() (r string, exists bool) {
	v := m.status_message
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusMessage returns the old "status_message" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldStatusMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusMessage: %w", err)
	}
	return oldValue.StatusMessage, nil
}

// ClearStatusMessage clears the value of the "status_message" field.
func (m *InterpretationTaskMutation) ClearStatusMessage() {
	m.status_message = nil
	m.clearedFields[interpretationtask.FieldStatusMessage] = struct{}{}
}

// StatusMessageCleared returns if the "status_message" field was cleared in this mutation.
func (m *InterpretationTaskMutation) StatusMessageCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldStatusMessage]
	return ok
}

// ResetStatusMessage resets all changes to the "status_message" field.
func (m *InterpretationTaskMutation) ResetStatusMessage() {
	m.status_message = nil
	delete(m.clearedFields, interpretationtask.FieldStatusMessage)
}

// SetPriority sets the "priority" field.
func (m *InterpretationTaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *InterpretationTaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *InterpretationTaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *InterpretationTaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *InterpretationTaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *InterpretationTaskMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *InterpretationTaskMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *InterpretationTaskMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *InterpretationTaskMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *InterpretationTaskMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldClaimedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *InterpretationTaskMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[interpretationtask.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *InterpretationTaskMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *InterpretationTaskMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, interpretationtask.FieldClaimedBy)
}

// SetRetryCount sets the "retry_count" field.
func (m *InterpretationTaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *InterpretationTaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *InterpretationTaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *InterpretationTaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *InterpretationTaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *InterpretationTaskMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *InterpretationTaskMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *InterpretationTaskMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *InterpretationTaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InterpretationTaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *InterpretationTaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[interpretationtask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *InterpretationTaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *InterpretationTaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, interpretationtask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *InterpretationTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *InterpretationTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *InterpretationTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[interpretationtask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *InterpretationTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *InterpretationTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, interpretationtask.FieldCompletedAt)
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *InterpretationTaskMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *InterpretationTaskMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *InterpretationTaskMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[interpretationtask.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *InterpretationTaskMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *InterpretationTaskMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, interpretationtask.FieldLastActivityAt)
}

// SetResponseText sets the "response_text" field.
func (m *InterpretationTaskMutation) SetResponseText(s string) {
	m.response_text = &s
}

// ResponseText returns the value of the "response_text" field in the mutation.
func (m *InterpretationTaskMutation) ResponseText() (r string, exists bool) {
	v := m.response_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseText returns the old "response_text" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldResponseText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseText: %w", err)
	}
	return oldValue.ResponseText, nil
}

// ClearResponseText clears the value of the "response_text" field.
func (m *InterpretationTaskMutation) ClearResponseText() {
	m.response_text = nil
	m.clearedFields[interpretationtask.FieldResponseText] = struct{}{}
}

// ResponseTextCleared returns if the "response_text" field was cleared in this mutation.
func (m *InterpretationTaskMutation) ResponseTextCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldResponseText]
	return ok
}

// ResetResponseText resets all changes to the "response_text" field.
func (m *InterpretationTaskMutation) ResetResponseText() {
	m.response_text = nil
	delete(m.clearedFields, interpretationtask.FieldResponseText)
}

// SetResponseSections sets the "response_sections" field.
func (m *InterpretationTaskMutation) SetResponseSections(value map[string]string) {
	m.response_sections = &value
}

// ResponseSections returns the value of the "response_sections" field in the mutation.
func (m *InterpretationTaskMutation) ResponseSections() (r map[string]string, exists bool) {
	v := m.response_sections
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseSections returns the old "response_sections" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldResponseSections(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseSections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseSections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseSections: %w", err)
	}
	return oldValue.ResponseSections, nil
}

// ClearResponseSections clears the value of the "response_sections" field.
func (m *InterpretationTaskMutation) ClearResponseSections() {
	m.response_sections = nil
	m.clearedFields[interpretationtask.FieldResponseSections] = struct{}{}
}

// ResponseSectionsCleared returns if the "response_sections" field was cleared in this mutation.
func (m *InterpretationTaskMutation) ResponseSectionsCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldResponseSections]
	return ok
}

// ResetResponseSections resets all changes to the "response_sections" field.
func (m *InterpretationTaskMutation) ResetResponseSections() {
	m.response_sections = nil
	delete(m.clearedFields, interpretationtask.FieldResponseSections)
}

// SetConfidence sets the "confidence" field.
func (m *InterpretationTaskMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *InterpretationTaskMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *InterpretationTaskMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *InterpretationTaskMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *InterpretationTaskMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[interpretationtask.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *InterpretationTaskMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *InterpretationTaskMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, interpretationtask.FieldConfidence)
}

// SetSources sets the "sources" field.
func (m *InterpretationTaskMutation) SetSources(s []string) {
	m.sources = &s
	m.appendsources = nil
}

// Sources returns the value of the "sources" field in the mutation.
func (m *InterpretationTaskMutation) Sources() (r []string, exists bool) {
	v := m.sources
	if v == nil {
		return
	}
	return *v, true
}

// OldSources returns the old "sources" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldSources(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSources: %w", err)
	}
	return oldValue.Sources, nil
}

// AppendSources adds s to the "sources" field.
func (m *InterpretationTaskMutation) AppendSources(s []string) {
	m.appendsources = append(m.appendsources, s...)
}

// AppendedSources returns the list of values that were appended to the "sources" field in this mutation.
func (m *InterpretationTaskMutation) AppendedSources() ([]string, bool) {
	if len(m.appendsources) == 0 {
		return nil, false
	}
	return m.appendsources, true
}

// ClearSources clears the value of the "sources" field.
func (m *InterpretationTaskMutation) ClearSources() {
	m.sources = nil
	m.appendsources = nil
	m.clearedFields[interpretationtask.FieldSources] = struct{}{}
}

// SourcesCleared returns if the "sources" field was cleared in this mutation.
func (m *InterpretationTaskMutation) SourcesCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldSources]
	return ok
}

// ResetSources resets all changes to the "sources" field.
func (m *InterpretationTaskMutation) ResetSources() {
	m.sources = nil
	m.appendsources = nil
	delete(m.clearedFields, interpretationtask.FieldSources)
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *InterpretationTaskMutation) SetProcessingTimeMs(i int64) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *InterpretationTaskMutation) ProcessingTimeMs() (r int64, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldProcessingTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *InterpretationTaskMutation) AddProcessingTimeMs(i int64) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *InterpretationTaskMutation) AddedProcessingTimeMs() (r int64, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (m *InterpretationTaskMutation) ClearProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
	m.clearedFields[interpretationtask.FieldProcessingTimeMs] = struct{}{}
}

// ProcessingTimeMsCleared returns if the "processing_time_ms" field was cleared in this mutation.
func (m *InterpretationTaskMutation) ProcessingTimeMsCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldProcessingTimeMs]
	return ok
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *InterpretationTaskMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
	delete(m.clearedFields, interpretationtask.FieldProcessingTimeMs)
}

// SetErrorCategory sets the "error_category" field.
func (m *InterpretationTaskMutation) SetErrorCategory(s string) {
	m.error_category = &s
}

// ErrorCategory returns the value of the "error_category" field in the mutation.
func (m *InterpretationTaskMutation) ErrorCategory() (r string, exists bool) {
	v := m.error_category
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCategory returns the old "error_category" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldErrorCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCategory: %w", err)
	}
	return oldValue.ErrorCategory, nil
}

// ClearErrorCategory clears the value of the "error_category" field.
func (m *InterpretationTaskMutation) ClearErrorCategory() {
	m.error_category = nil
	m.clearedFields[interpretationtask.FieldErrorCategory] = struct{}{}
}

// ErrorCategoryCleared returns if the "error_category" field was cleared in this mutation.
func (m *InterpretationTaskMutation) ErrorCategoryCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldErrorCategory]
	return ok
}

// ResetErrorCategory resets all changes to the "error_category" field.
func (m *InterpretationTaskMutation) ResetErrorCategory() {
	m.error_category = nil
	delete(m.clearedFields, interpretationtask.FieldErrorCategory)
}

// SetErrorMessage sets the "error_message" field.
func (m *InterpretationTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *InterpretationTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *InterpretationTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[interpretationtask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *InterpretationTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[interpretationtask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *InterpretationTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, interpretationtask.FieldErrorMessage)
}

// SetCanGenerateReport sets the "can_generate_report" field.
func (m *InterpretationTaskMutation) SetCanGenerateReport(b bool) {
	m.can_generate_report = &b
}

// CanGenerateReport returns the value of the "can_generate_report" field in the mutation.
func (m *InterpretationTaskMutation) CanGenerateReport() (r bool, exists bool) {
	v := m.can_generate_report
	if v == nil {
		return
	}
	return *v, true
}

// OldCanGenerateReport returns the old "can_generate_report" field's value of the InterpretationTask entity.
// If the InterpretationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationTaskMutation) OldCanGenerateReport(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanGenerateReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanGenerateReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanGenerateReport: %w", err)
	}
	return oldValue.CanGenerateReport, nil
}

// ResetCanGenerateReport resets all changes to the "can_generate_report" field.
func (m *InterpretationTaskMutation) ResetCanGenerateReport() {
	m.can_generate_report = nil
}

// AddTransitionIDs adds the "transitions" edge to the TaskTransition entity by ids.
func (m *InterpretationTaskMutation) AddTransitionIDs(ids ...int) {
	if m.transitions == nil {
		m.transitions = make(map[int]struct{})
	}
	for i := range ids {
		m.transitions[ids[i]] = struct{}{}
	}
}

// ClearTransitions clears the "transitions" edge to the TaskTransition entity.
func (m *InterpretationTaskMutation) ClearTransitions() {
	m.clearedtransitions = true
}

// TransitionsCleared reports if the "transitions" edge to the TaskTransition entity was cleared.
func (m *InterpretationTaskMutation) TransitionsCleared() bool {
	return m.clearedtransitions
}

// RemoveTransitionIDs removes the "transitions" edge to the TaskTransition entity by IDs.
func (m *InterpretationTaskMutation) RemoveTransitionIDs(ids ...int) {
	if m.removedtransitions == nil {
		m.removedtransitions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.transitions, ids[i])
		m.removedtransitions[ids[i]] = struct{}{}
	}
}

// RemovedTransitions returns the removed IDs of the "transitions" edge to the TaskTransition entity.
func (m *InterpretationTaskMutation) RemovedTransitionsIDs() (ids []int) {
	for id := range m.removedtransitions {
		ids = append(ids, id)
	}
	return
}

// TransitionsIDs returns the "transitions" edge IDs in the mutation.
func (m *InterpretationTaskMutation) TransitionsIDs() (ids []int) {
	for id := range m.transitions {
		ids = append(ids, id)
	}
	return
}

// ResetTransitions resets all changes to the "transitions" edge.
func (m *InterpretationTaskMutation) ResetTransitions() {
	m.transitions = nil
	m.clearedtransitions = false
	m.removedtransitions = nil
}

// Where appends a list predicates to the InterpretationTaskMutation builder.
func (m *InterpretationTaskMutation) Where(ps ...predicate.InterpretationTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterpretationTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterpretationTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterpretationTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterpretationTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterpretationTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterpretationTask).
func (m *InterpretationTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterpretationTaskMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.user_id != nil {
		fields = append(fields, interpretationtask.FieldUserID)
	}
	if m.deity_id != nil {
		fields = append(fields, interpretationtask.FieldDeityID)
	}
	if m.temple != nil {
		fields = append(fields, interpretationtask.FieldTemple)
	}
	if m.fortune_number != nil {
		fields = append(fields, interpretationtask.FieldFortuneNumber)
	}
	if m.question != nil {
		fields = append(fields, interpretationtask.FieldQuestion)
	}
	if m.context != nil {
		fields = append(fields, interpretationtask.FieldContext)
	}
	if m.language != nil {
		fields = append(fields, interpretationtask.FieldLanguage)
	}
	if m.status != nil {
		fields = append(fields, interpretationtask.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, interpretationtask.FieldProgress)
	}
	if m.status_code != nil {
		fields = append(fields, interpretationtask.FieldStatusCode)
	}
	if m.status_message != nil {
		fields = append(fields, interpretationtask.FieldStatusMessage)
	}
	if m.priority != nil {
		fields = append(fields, interpretationtask.FieldPriority)
	}
	if m.cancel_requested != nil {
		fields = append(fields, interpretationtask.FieldCancelRequested)
	}
	if m.claimed_by != nil {
		fields = append(fields, interpretationtask.FieldClaimedBy)
	}
	if m.retry_count != nil {
		fields = append(fields, interpretationtask.FieldRetryCount)
	}
	if m.submitted_at != nil {
		fields = append(fields, interpretationtask.FieldSubmittedAt)
	}
	if m.started_at != nil {
		fields = append(fields, interpretationtask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, interpretationtask.FieldCompletedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, interpretationtask.FieldLastActivityAt)
	}
	if m.response_text != nil {
		fields = append(fields, interpretationtask.FieldResponseText)
	}
	if m.response_sections != nil {
		fields = append(fields, interpretationtask.FieldResponseSections)
	}
	if m.confidence != nil {
		fields = append(fields, interpretationtask.FieldConfidence)
	}
	if m.sources != nil {
		fields = append(fields, interpretationtask.FieldSources)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, interpretationtask.FieldProcessingTimeMs)
	}
	if m.error_category != nil {
		fields = append(fields, interpretationtask.FieldErrorCategory)
	}
	if m.error_message != nil {
		fields = append(fields, interpretationtask.FieldErrorMessage)
	}
	if m.can_generate_report != nil {
		fields = append(fields, interpretationtask.FieldCanGenerateReport)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterpretationTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interpretationtask.FieldUserID:
		return m.UserID()
	case interpretationtask.FieldDeityID:
		return m.DeityID()
	case interpretationtask.FieldTemple:
		return m.Temple()
	case interpretationtask.FieldFortuneNumber:
		return m.FortuneNumber()
	case interpretationtask.FieldQuestion:
		return m.Question()
	case interpretationtask.FieldContext:
		return m.Context()
	case interpretationtask.FieldLanguage:
		return m.Language()
	case interpretationtask.FieldStatus:
		return m.Status()
	case interpretationtask.FieldProgress:
		return m.Progress()
	case interpretationtask.FieldStatusCode:
		return m.StatusCode()
	case interpretationtask.FieldStatusMessage:
		return m.StatusMessage()
	case interpretationtask.FieldPriority:
		return m.Priority()
	case interpretationtask.FieldCancelRequested:
		return m.CancelRequested()
	case interpretationtask.FieldClaimedBy:
		return m.ClaimedBy()
	case interpretationtask.FieldRetryCount:
		return m.RetryCount()
	case interpretationtask.FieldSubmittedAt:
		return m.SubmittedAt()
	case interpretationtask.FieldStartedAt:
		return m.StartedAt()
	case interpretationtask.FieldCompletedAt:
		return m.CompletedAt()
	case interpretationtask.FieldLastActivityAt:
		return m.LastActivityAt()
	case interpretationtask.FieldResponseText:
		return m.ResponseText()
	case interpretationtask.FieldResponseSections:
		return m.ResponseSections()
	case interpretationtask.FieldConfidence:
		return m.Confidence()
	case interpretationtask.FieldSources:
		return m.Sources()
	case interpretationtask.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case interpretationtask.FieldErrorCategory:
		return m.ErrorCategory()
	case interpretationtask.FieldErrorMessage:
		return m.ErrorMessage()
	case interpretationtask.FieldCanGenerateReport:
		return m.CanGenerateReport()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterpretationTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interpretationtask.FieldUserID:
		return m.OldUserID(ctx)
	case interpretationtask.FieldDeityID:
		return m.OldDeityID(ctx)
	case interpretationtask.FieldTemple:
		return m.OldTemple(ctx)
	case interpretationtask.FieldFortuneNumber:
		return m.OldFortuneNumber(ctx)
	case interpretationtask.FieldQuestion:
		return m.OldQuestion(ctx)
	case interpretationtask.FieldContext:
		return m.OldContext(ctx)
	case interpretationtask.FieldLanguage:
		return m.OldLanguage(ctx)
	case interpretationtask.FieldStatus:
		return m.OldStatus(ctx)
	case interpretationtask.FieldProgress:
		return m.OldProgress(ctx)
	case interpretationtask.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case interpretationtask.FieldStatusMessage:
		return m.OldStatusMessage(ctx)
	case interpretationtask.FieldPriority:
		return m.OldPriority(ctx)
	case interpretationtask.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case interpretationtask.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case interpretationtask.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case interpretationtask.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case interpretationtask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case interpretationtask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case interpretationtask.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case interpretationtask.FieldResponseText:
		return m.OldResponseText(ctx)
	case interpretationtask.FieldResponseSections:
		return m.OldResponseSections(ctx)
	case interpretationtask.FieldConfidence:
		return m.OldConfidence(ctx)
	case interpretationtask.FieldSources:
		return m.OldSources(ctx)
	case interpretationtask.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case interpretationtask.FieldErrorCategory:
		return m.OldErrorCategory(ctx)
	case interpretationtask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case interpretationtask.FieldCanGenerateReport:
		return m.OldCanGenerateReport(ctx)
	}
	return nil, fmt.Errorf("unknown InterpretationTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterpretationTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interpretationtask.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interpretationtask.FieldDeityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeityID(v)
		return nil
	case interpretationtask.FieldTemple:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemple(v)
		return nil
	case interpretationtask.FieldFortuneNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFortuneNumber(v)
		return nil
	case interpretationtask.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case interpretationtask.FieldContext:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case interpretationtask.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case interpretationtask.FieldStatus:
		v, ok := value.(interpretationtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case interpretationtask.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case interpretationtask.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case interpretationtask.FieldStatusMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusMessage(v)
		return nil
	case interpretationtask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case interpretationtask.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case interpretationtask.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case interpretationtask.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case interpretationtask.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case interpretationtask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case interpretationtask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case interpretationtask.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case interpretationtask.FieldResponseText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseText(v)
		return nil
	case interpretationtask.FieldResponseSections:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseSections(v)
		return nil
	case interpretationtask.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case interpretationtask.FieldSources:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSources(v)
		return nil
	case interpretationtask.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case interpretationtask.FieldErrorCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCategory(v)
		return nil
	case interpretationtask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case interpretationtask.FieldCanGenerateReport:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanGenerateReport(v)
		return nil
	}
	return fmt.Errorf("unknown InterpretationTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterpretationTaskMutation) AddedFields() []string {
	var fields []string
	if m.addfortune_number != nil {
		fields = append(fields, interpretationtask.FieldFortuneNumber)
	}
	if m.addprogress != nil {
		fields = append(fields, interpretationtask.FieldProgress)
	}
	if m.addstatus_code != nil {
		fields = append(fields, interpretationtask.FieldStatusCode)
	}
	if m.addpriority != nil {
		fields = append(fields, interpretationtask.FieldPriority)
	}
	if m.addretry_count != nil {
		fields = append(fields, interpretationtask.FieldRetryCount)
	}
	if m.addconfidence != nil {
		fields = append(fields, interpretationtask.FieldConfidence)
	}
	if m.addprocessing_time_ms != nil {
		fields = append(fields, interpretationtask.FieldProcessingTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterpretationTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interpretationtask.FieldFortuneNumber:
		return m.AddedFortuneNumber()
	case interpretationtask.FieldProgress:
		return m.AddedProgress()
	case interpretationtask.FieldStatusCode:
		return m.AddedStatusCode()
	case interpretationtask.FieldPriority:
		return m.AddedPriority()
	case interpretationtask.FieldRetryCount:
		return m.AddedRetryCount()
	case interpretationtask.FieldConfidence:
		return m.AddedConfidence()
	case interpretationtask.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterpretationTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interpretationtask.FieldFortuneNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFortuneNumber(v)
		return nil
	case interpretationtask.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case interpretationtask.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	case interpretationtask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case interpretationtask.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case interpretationtask.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case interpretationtask.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown InterpretationTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterpretationTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interpretationtask.FieldContext) {
		fields = append(fields, interpretationtask.FieldContext)
	}
	if m.FieldCleared(interpretationtask.FieldStatusMessage) {
		fields = append(fields, interpretationtask.FieldStatusMessage)
	}
	if m.FieldCleared(interpretationtask.FieldClaimedBy) {
		fields = append(fields, interpretationtask.FieldClaimedBy)
	}
	if m.FieldCleared(interpretationtask.FieldStartedAt) {
		fields = append(fields, interpretationtask.FieldStartedAt)
	}
	if m.FieldCleared(interpretationtask.FieldCompletedAt) {
		fields = append(fields, interpretationtask.FieldCompletedAt)
	}
	if m.FieldCleared(interpretationtask.FieldLastActivityAt) {
		fields = append(fields, interpretationtask.FieldLastActivityAt)
	}
	if m.FieldCleared(interpretationtask.FieldResponseText) {
		fields = append(fields, interpretationtask.FieldResponseText)
	}
	if m.FieldCleared(interpretationtask.FieldResponseSections) {
		fields = append(fields, interpretationtask.FieldResponseSections)
	}
	if m.FieldCleared(interpretationtask.FieldConfidence) {
		fields = append(fields, interpretationtask.FieldConfidence)
	}
	if m.FieldCleared(interpretationtask.FieldSources) {
		fields = append(fields, interpretationtask.FieldSources)
	}
	if m.FieldCleared(interpretationtask.FieldProcessingTimeMs) {
		fields = append(fields, interpretationtask.FieldProcessingTimeMs)
	}
	if m.FieldCleared(interpretationtask.FieldErrorCategory) {
		fields = append(fields, interpretationtask.FieldErrorCategory)
	}
	if m.FieldCleared(interpretationtask.FieldErrorMessage) {
		fields = append(fields, interpretationtask.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterpretationTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterpretationTaskMutation) ClearField(name string) error {
	switch name {
	case interpretationtask.FieldContext:
		m.ClearContext()
		return nil
	case interpretationtask.FieldStatusMessage:
		m.ClearStatusMessage()
		return nil
	case interpretationtask.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case interpretationtask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case interpretationtask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case interpretationtask.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	case interpretationtask.FieldResponseText:
		m.ClearResponseText()
		return nil
	case interpretationtask.FieldResponseSections:
		m.ClearResponseSections()
		return nil
	case interpretationtask.FieldConfidence:
		m.ClearConfidence()
		return nil
	case interpretationtask.FieldSources:
		m.ClearSources()
		return nil
	case interpretationtask.FieldProcessingTimeMs:
		m.ClearProcessingTimeMs()
		return nil
	case interpretationtask.FieldErrorCategory:
		m.ClearErrorCategory()
		return nil
	case interpretationtask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown InterpretationTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterpretationTaskMutation) ResetField(name string) error {
	switch name {
	case interpretationtask.FieldUserID:
		m.ResetUserID()
		return nil
	case interpretationtask.FieldDeityID:
		m.ResetDeityID()
		return nil
	case interpretationtask.FieldTemple:
		m.ResetTemple()
		return nil
	case interpretationtask.FieldFortuneNumber:
		m.ResetFortuneNumber()
		return nil
	case interpretationtask.FieldQuestion:
		m.ResetQuestion()
		return nil
	case interpretationtask.FieldContext:
		m.ResetContext()
		return nil
	case interpretationtask.FieldLanguage:
		m.ResetLanguage()
		return nil
	case interpretationtask.FieldStatus:
		m.ResetStatus()
		return nil
	case interpretationtask.FieldProgress:
		m.ResetProgress()
		return nil
	case interpretationtask.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case interpretationtask.FieldStatusMessage:
		m.ResetStatusMessage()
		return nil
	case interpretationtask.FieldPriority:
		m.ResetPriority()
		return nil
	case interpretationtask.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case interpretationtask.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case interpretationtask.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case interpretationtask.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case interpretationtask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case interpretationtask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case interpretationtask.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case interpretationtask.FieldResponseText:
		m.ResetResponseText()
		return nil
	case interpretationtask.FieldResponseSections:
		m.ResetResponseSections()
		return nil
	case interpretationtask.FieldConfidence:
		m.ResetConfidence()
		return nil
	case interpretationtask.FieldSources:
		m.ResetSources()
		return nil
	case interpretationtask.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case interpretationtask.FieldErrorCategory:
		m.ResetErrorCategory()
		return nil
	case interpretationtask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case interpretationtask.FieldCanGenerateReport:
		m.ResetCanGenerateReport()
		return nil
	}
	return fmt.Errorf("unknown InterpretationTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterpretationTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transitions != nil {
		edges = append(edges, interpretationtask.EdgeTransitions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterpretationTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case interpretationtask.EdgeTransitions:
		ids := make([]ent.Value, 0, len(m.transitions))
		for id := range m.transitions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterpretationTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtransitions != nil {
		edges = append(edges, interpretationtask.EdgeTransitions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterpretationTaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case interpretationtask.EdgeTransitions:
		ids := make([]ent.Value, 0, len(m.removedtransitions))
		for id := range m.removedtransitions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterpretationTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtransitions {
		edges = append(edges, interpretationtask.EdgeTransitions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterpretationTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case interpretationtask.EdgeTransitions:
		return m.clearedtransitions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterpretationTaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown InterpretationTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterpretationTaskMutation) ResetEdge(name string) error {
	switch name {
	case interpretationtask.EdgeTransitions:
		m.ResetTransitions()
		return nil
	}
	return fmt.Errorf("unknown InterpretationTask edge %s", name)
}

// TaskTransitionMutation represents an operation that mutates the TaskTransition nodes in the graph.
type TaskTransitionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int
	addsequence    *int
	status_code    *int
	addstatus_code *int
	progress       *int
	addprogress    *int
	message        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*TaskTransition, error)
	predicates     []predicate.TaskTransition
}

var _ ent.Mutation = (*TaskTransitionMutation)(nil)

// tasktransitionOption allows management of the mutation configuration using functional options.
type tasktransitionOption func(*TaskTransitionMutation)

// newTaskTransitionMutation creates new mutation for the TaskTransition entity.
func newTaskTransitionMutation(c config, op Op, opts ...tasktransitionOption) *TaskTransitionMutation {
	m := &TaskTransitionMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskTransition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskTransitionID sets the ID field of the mutation.
func withTaskTransitionID(id int) tasktransitionOption {
	return func(m *TaskTransitionMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskTransition
		)
		m.oldValue = func(ctx context.Context) (*TaskTransition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskTransition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskTransition sets the old TaskTransition of the mutation.
func withTaskTransition(node *TaskTransition) tasktransitionOption {
	return func(m *TaskTransitionMutation) {
		m.oldValue = func(context.Context) (*TaskTransition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskTransitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskTransitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskTransitionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskTransitionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskTransition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskTransitionMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskTransitionMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskTransition entity.
// If the TaskTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTransitionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskTransitionMutation) ResetTaskID() {
	m.task = nil
}

// SetSequence sets the "sequence" field.
func (m *TaskTransitionMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TaskTransitionMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TaskTransition entity.
// If the TaskTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTransitionMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TaskTransitionMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TaskTransitionMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TaskTransitionMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetStatusCode sets the "status_code" field.
func (m *TaskTransitionMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *TaskTransitionMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the TaskTransition entity.
// If the TaskTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTransitionMutation) OldStatusCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *TaskTransitionMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *TaskTransitionMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *TaskTransitionMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
}

// SetProgress sets the "progress" field.
func (m *TaskTransitionMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *TaskTransitionMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the TaskTransition entity.
// If the TaskTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTransitionMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *TaskTransitionMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *TaskTransitionMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *TaskTransitionMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetMessage sets the "message" field.
func (m *TaskTransitionMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *TaskTransitionMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the TaskTransition entity.
// If the TaskTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTransitionMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *TaskTransitionMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[tasktransition.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *TaskTransitionMutation) MessageCleared() bool {
	_, ok := m.clearedFields[tasktransition.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *TaskTransitionMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, tasktransition.FieldMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskTransitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskTransitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskTransition entity.
// If the TaskTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTransitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskTransitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the InterpretationTask entity.
func (m *TaskTransitionMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[tasktransition.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the InterpretationTask entity was cleared.
func (m *TaskTransitionMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskTransitionMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskTransitionMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskTransitionMutation builder.
func (m *TaskTransitionMutation) Where(ps ...predicate.TaskTransition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskTransitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskTransitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskTransition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskTransitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskTransitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskTransition).
func (m *TaskTransitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskTransitionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task != nil {
		fields = append(fields, tasktransition.FieldTaskID)
	}
	if m.sequence != nil {
		fields = append(fields, tasktransition.FieldSequence)
	}
	if m.status_code != nil {
		fields = append(fields, tasktransition.FieldStatusCode)
	}
	if m.progress != nil {
		fields = append(fields, tasktransition.FieldProgress)
	}
	if m.message != nil {
		fields = append(fields, tasktransition.FieldMessage)
	}
	if m.created_at != nil {
		fields = append(fields, tasktransition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskTransitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tasktransition.FieldTaskID:
		return m.TaskID()
	case tasktransition.FieldSequence:
		return m.Sequence()
	case tasktransition.FieldStatusCode:
		return m.StatusCode()
	case tasktransition.FieldProgress:
		return m.Progress()
	case tasktransition.FieldMessage:
		return m.Message()
	case tasktransition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskTransitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tasktransition.FieldTaskID:
		return m.OldTaskID(ctx)
	case tasktransition.FieldSequence:
		return m.OldSequence(ctx)
	case tasktransition.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case tasktransition.FieldProgress:
		return m.OldProgress(ctx)
	case tasktransition.FieldMessage:
		return m.OldMessage(ctx)
	case tasktransition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskTransition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTransitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tasktransition.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case tasktransition.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case tasktransition.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case tasktransition.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case tasktransition.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case tasktransition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskTransition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskTransitionMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, tasktransition.FieldSequence)
	}
	if m.addstatus_code != nil {
		fields = append(fields, tasktransition.FieldStatusCode)
	}
	if m.addprogress != nil {
		fields = append(fields, tasktransition.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskTransitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tasktransition.FieldSequence:
		return m.AddedSequence()
	case tasktransition.FieldStatusCode:
		return m.AddedStatusCode()
	case tasktransition.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTransitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tasktransition.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case tasktransition.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	case tasktransition.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown TaskTransition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskTransitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tasktransition.FieldMessage) {
		fields = append(fields, tasktransition.FieldMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskTransitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskTransitionMutation) ClearField(name string) error {
	switch name {
	case tasktransition.FieldMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown TaskTransition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskTransitionMutation) ResetField(name string) error {
	switch name {
	case tasktransition.FieldTaskID:
		m.ResetTaskID()
		return nil
	case tasktransition.FieldSequence:
		m.ResetSequence()
		return nil
	case tasktransition.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case tasktransition.FieldProgress:
		m.ResetProgress()
		return nil
	case tasktransition.FieldMessage:
		m.ResetMessage()
		return nil
	case tasktransition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskTransition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskTransitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, tasktransition.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskTransitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tasktransition.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskTransitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskTransitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskTransitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, tasktransition.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskTransitionMutation) EdgeCleared(name string) bool {
	switch name {
	case tasktransition.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskTransitionMutation) ClearEdge(name string) error {
	switch name {
	case tasktransition.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskTransition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskTransitionMutation) ResetEdge(name string) error {
	switch name {
	case tasktransition.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskTransition edge %s", name)
}
