// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/templeworks/lingqian/ent/interpretationtask"
)

// InterpretationTask is the model entity for the InterpretationTask schema.
type InterpretationTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user; only the owner may read or cancel
	UserID string `json:"user_id,omitempty"`
	// DeityID holds the value of the "deity_id" field.
	DeityID string `json:"deity_id,omitempty"`
	// Temple corpus resolved from deity_id at submission
	Temple string `json:"temple,omitempty"`
	// FortuneNumber holds the value of the "fortune_number" field.
	FortuneNumber int `json:"fortune_number,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// Free-form submission context
	Context map[string]string `json:"context,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Status holds the value of the "status" field.
	Status interpretationtask.Status `json:"status,omitempty"`
	// 0..100, non-decreasing while processing
	Progress int `json:"progress,omitempty"`
	// Latest numeric pipeline status code
	StatusCode int `json:"status_code,omitempty"`
	// Latest advisory server-localized message
	StatusMessage string `json:"status_message,omitempty"`
	// Higher first; ties broken FIFO on submitted_at
	Priority int `json:"priority,omitempty"`
	// Set by the owner; observed by the worker at suspension points
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// Worker id that holds the claim
	ClaimedBy string `json:"claimed_by,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Worker liveness for stuck detection
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	// Concatenated seven-section interpretation
	ResponseText string `json:"response_text,omitempty"`
	// Structured interpretation keyed by section label
	ResponseSections map[string]string `json:"response_sections,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Contributing chunk identifiers
	Sources []string `json:"sources,omitempty"`
	// ProcessingTimeMs holds the value of the "processing_time_ms" field.
	ProcessingTimeMs int64 `json:"processing_time_ms,omitempty"`
	// ErrorCategory holds the value of the "error_category" field.
	ErrorCategory string `json:"error_category,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// CanGenerateReport holds the value of the "can_generate_report" field.
	CanGenerateReport bool `json:"can_generate_report,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InterpretationTaskQuery when eager-loading is set.
	Edges        InterpretationTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InterpretationTaskEdges holds the relations/edges for other nodes in the graph.
type InterpretationTaskEdges struct {
	// Transitions holds the value of the transitions edge.
	Transitions []*TaskTransition `json:"transitions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TransitionsOrErr returns the Transitions value or an error if the edge
// was not loaded in eager-loading.
func (e InterpretationTaskEdges) TransitionsOrErr() ([]*TaskTransition, error) {
	if e.loadedTypes[0] {
		return e.Transitions, nil
	}
	return nil, &NotLoadedError{edge: "transitions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterpretationTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interpretationtask.FieldContext, interpretationtask.FieldResponseSections, interpretationtask.FieldSources:
			values[i] = new([]byte)
		case interpretationtask.FieldCancelRequested, interpretationtask.FieldCanGenerateReport:
			values[i] = new(sql.NullBool)
		case interpretationtask.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case interpretationtask.FieldFortuneNumber, interpretationtask.FieldProgress, interpretationtask.FieldStatusCode, interpretationtask.FieldPriority, interpretationtask.FieldRetryCount, interpretationtask.FieldProcessingTimeMs:
			values[i] = new(sql.NullInt64)
		case interpretationtask.FieldID, interpretationtask.FieldUserID, interpretationtask.FieldDeityID, interpretationtask.FieldTemple, interpretationtask.FieldQuestion, interpretationtask.FieldLanguage, interpretationtask.FieldStatus, interpretationtask.FieldStatusMessage, interpretationtask.FieldClaimedBy, interpretationtask.FieldResponseText, interpretationtask.FieldErrorCategory, interpretationtask.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case interpretationtask.FieldSubmittedAt, interpretationtask.FieldStartedAt, interpretationtask.FieldCompletedAt, interpretationtask.FieldLastActivityAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterpretationTask fields.
func (_m *InterpretationTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interpretationtask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case interpretationtask.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case interpretationtask.FieldDeityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deity_id", values[i])
			} else if value.Valid {
				_m.DeityID = value.String
			}
		case interpretationtask.FieldTemple:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field temple", values[i])
			} else if value.Valid {
				_m.Temple = value.String
			}
		case interpretationtask.FieldFortuneNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fortune_number", values[i])
			} else if value.Valid {
				_m.FortuneNumber = int(value.Int64)
			}
		case interpretationtask.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case interpretationtask.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case interpretationtask.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case interpretationtask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = interpretationtask.Status(value.String)
			}
		case interpretationtask.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case interpretationtask.FieldStatusCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status_code", values[i])
			} else if value.Valid {
				_m.StatusCode = int(value.Int64)
			}
		case interpretationtask.FieldStatusMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_message", values[i])
			} else if value.Valid {
				_m.StatusMessage = value.String
			}
		case interpretationtask.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case interpretationtask.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case interpretationtask.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = value.String
			}
		case interpretationtask.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case interpretationtask.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = value.Time
			}
		case interpretationtask.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case interpretationtask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case interpretationtask.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = new(time.Time)
				*_m.LastActivityAt = value.Time
			}
		case interpretationtask.FieldResponseText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_text", values[i])
			} else if value.Valid {
				_m.ResponseText = value.String
			}
		case interpretationtask.FieldResponseSections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_sections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseSections); err != nil {
					return fmt.Errorf("unmarshal field response_sections: %w", err)
				}
			}
		case interpretationtask.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case interpretationtask.FieldSources:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sources", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sources); err != nil {
					return fmt.Errorf("unmarshal field sources: %w", err)
				}
			}
		case interpretationtask.FieldProcessingTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_ms", values[i])
			} else if value.Valid {
				_m.ProcessingTimeMs = value.Int64
			}
		case interpretationtask.FieldErrorCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_category", values[i])
			} else if value.Valid {
				_m.ErrorCategory = value.String
			}
		case interpretationtask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case interpretationtask.FieldCanGenerateReport:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_generate_report", values[i])
			} else if value.Valid {
				_m.CanGenerateReport = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterpretationTask.
// This includes values selected through modifiers, order, etc.
func (_m *InterpretationTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTransitions queries the "transitions" edge of the InterpretationTask entity.
func (_m *InterpretationTask) QueryTransitions() *TaskTransitionQuery {
	return NewInterpretationTaskClient(_m.config).QueryTransitions(_m)
}

// Update returns a builder for updating this InterpretationTask.
// Note that you need to call InterpretationTask.Unwrap() before calling this method if this InterpretationTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterpretationTask) Update() *InterpretationTaskUpdateOne {
	return NewInterpretationTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterpretationTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterpretationTask) Unwrap() *InterpretationTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterpretationTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterpretationTask) String() string {
	var builder strings.Builder
	builder.WriteString("InterpretationTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("deity_id=")
	builder.WriteString(_m.DeityID)
	builder.WriteString(", ")
	builder.WriteString("temple=")
	builder.WriteString(_m.Temple)
	builder.WriteString(", ")
	builder.WriteString("fortune_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.FortuneNumber))
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("status_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusCode))
	builder.WriteString(", ")
	builder.WriteString("status_message=")
	builder.WriteString(_m.StatusMessage)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	builder.WriteString("claimed_by=")
	builder.WriteString(_m.ClaimedBy)
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("submitted_at=")
	builder.WriteString(_m.SubmittedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastActivityAt; v != nil {
		builder.WriteString("last_activity_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("response_text=")
	builder.WriteString(_m.ResponseText)
	builder.WriteString(", ")
	builder.WriteString("response_sections=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseSections))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("sources=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sources))
	builder.WriteString(", ")
	builder.WriteString("processing_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTimeMs))
	builder.WriteString(", ")
	builder.WriteString("error_category=")
	builder.WriteString(_m.ErrorCategory)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("can_generate_report=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanGenerateReport))
	builder.WriteByte(')')
	return builder.String()
}

// InterpretationTasks is a parsable slice of InterpretationTask.
type InterpretationTasks []*InterpretationTask
