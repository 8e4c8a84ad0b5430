// Code generated by ent, DO NOT EDIT.

package interpretationtask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the interpretationtask type in the database.
	Label = "interpretation_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDeityID holds the string denoting the deity_id field in the database.
	FieldDeityID = "deity_id"
	// FieldTemple holds the string denoting the temple field in the database.
	FieldTemple = "temple"
	// FieldFortuneNumber holds the string denoting the fortune_number field in the database.
	FieldFortuneNumber = "fortune_number"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldStatusCode holds the string denoting the status_code field in the database.
	FieldStatusCode = "status_code"
	// FieldStatusMessage holds the string denoting the status_message field in the database.
	FieldStatusMessage = "status_message"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldResponseText holds the string denoting the response_text field in the database.
	FieldResponseText = "response_text"
	// FieldResponseSections holds the string denoting the response_sections field in the database.
	FieldResponseSections = "response_sections"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSources holds the string denoting the sources field in the database.
	FieldSources = "sources"
	// FieldProcessingTimeMs holds the string denoting the processing_time_ms field in the database.
	FieldProcessingTimeMs = "processing_time_ms"
	// FieldErrorCategory holds the string denoting the error_category field in the database.
	FieldErrorCategory = "error_category"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCanGenerateReport holds the string denoting the can_generate_report field in the database.
	FieldCanGenerateReport = "can_generate_report"
	// EdgeTransitions holds the string denoting the transitions edge name in mutations.
	EdgeTransitions = "transitions"
	// TaskTransitionFieldID holds the string denoting the ID field of the TaskTransition.
	TaskTransitionFieldID = "id"
	// Table holds the table name of the interpretationtask in the database.
	Table = "interpretation_tasks"
	// TransitionsTable is the table that holds the transitions relation/edge.
	TransitionsTable = "task_transitions"
	// TransitionsInverseTable is the table name for the TaskTransition entity.
	// It exists in this package in order to avoid circular dependency with the "tasktransition" package.
	TransitionsInverseTable = "task_transitions"
	// TransitionsColumn is the table column denoting the transitions relation/edge.
	TransitionsColumn = "task_id"
)

// Columns holds all SQL columns for interpretationtask fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDeityID,
	FieldTemple,
	FieldFortuneNumber,
	FieldQuestion,
	FieldContext,
	FieldLanguage,
	FieldStatus,
	FieldProgress,
	FieldStatusCode,
	FieldStatusMessage,
	FieldPriority,
	FieldCancelRequested,
	FieldClaimedBy,
	FieldRetryCount,
	FieldSubmittedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastActivityAt,
	FieldResponseText,
	FieldResponseSections,
	FieldConfidence,
	FieldSources,
	FieldProcessingTimeMs,
	FieldErrorCategory,
	FieldErrorMessage,
	FieldCanGenerateReport,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// DefaultStatusCode holds the default value on creation for the "status_code" field.
	DefaultStatusCode int
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultSubmittedAt holds the default value on creation for the "submitted_at" field.
	DefaultSubmittedAt func() time.Time
	// DefaultCanGenerateReport holds the default value on creation for the "can_generate_report" field.
	DefaultCanGenerateReport bool
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("interpretationtask: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the InterpretationTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDeityID orders the results by the deity_id field.
func ByDeityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeityID, opts...).ToFunc()
}

// ByTemple orders the results by the temple field.
func ByTemple(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemple, opts...).ToFunc()
}

// ByFortuneNumber orders the results by the fortune_number field.
func ByFortuneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFortuneNumber, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByStatusCode orders the results by the status_code field.
func ByStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusCode, opts...).ToFunc()
}

// ByStatusMessage orders the results by the status_message field.
func ByStatusMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusMessage, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByResponseText orders the results by the response_text field.
func ByResponseText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseText, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByProcessingTimeMs orders the results by the processing_time_ms field.
func ByProcessingTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeMs, opts...).ToFunc()
}

// ByErrorCategory orders the results by the error_category field.
func ByErrorCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCategory, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCanGenerateReport orders the results by the can_generate_report field.
func ByCanGenerateReport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanGenerateReport, opts...).ToFunc()
}

// ByTransitionsCount orders the results by transitions count.
func ByTransitionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTransitionsStep(), opts...)
	}
}

// ByTransitions orders the results by transitions terms.
func ByTransitions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransitionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTransitionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransitionsInverseTable, TaskTransitionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TransitionsTable, TransitionsColumn),
	)
}
