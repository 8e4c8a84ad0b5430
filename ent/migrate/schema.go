// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InterpretationTasksColumns holds the columns for the "interpretation_tasks" table.
	InterpretationTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "deity_id", Type: field.TypeString},
		{Name: "temple", Type: field.TypeString},
		{Name: "fortune_number", Type: field.TypeInt},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "language", Type: field.TypeString, Default: "zh"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "status_code", Type: field.TypeInt, Default: 0},
		{Name: "status_message", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
		{Name: "response_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_sections", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "sources", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "error_category", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "can_generate_report", Type: field.TypeBool, Default: false},
	}
	// InterpretationTasksTable holds the schema information for the "interpretation_tasks" table.
	InterpretationTasksTable = &schema.Table{
		Name:       "interpretation_tasks",
		Columns:    InterpretationTasksColumns,
		PrimaryKey: []*schema.Column{InterpretationTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interpretationtask_status",
				Unique:  false,
				Columns: []*schema.Column{InterpretationTasksColumns[8]},
			},
			{
				Name:    "interpretationtask_user_id_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{InterpretationTasksColumns[1], InterpretationTasksColumns[16]},
			},
			{
				Name:    "interpretationtask_status_priority_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{InterpretationTasksColumns[8], InterpretationTasksColumns[12], InterpretationTasksColumns[16]},
			},
			{
				Name:    "interpretationtask_status_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{InterpretationTasksColumns[8], InterpretationTasksColumns[19]},
			},
		},
	}
	// TaskTransitionsColumns holds the columns for the "task_transitions" table.
	TaskTransitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "status_code", Type: field.TypeInt},
		{Name: "progress", Type: field.TypeInt},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskTransitionsTable holds the schema information for the "task_transitions" table.
	TaskTransitionsTable = &schema.Table{
		Name:       "task_transitions",
		Columns:    TaskTransitionsColumns,
		PrimaryKey: []*schema.Column{TaskTransitionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_transitions_interpretation_tasks_transitions",
				Columns:    []*schema.Column{TaskTransitionsColumns[6]},
				RefColumns: []*schema.Column{InterpretationTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tasktransition_task_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{TaskTransitionsColumns[6], TaskTransitionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InterpretationTasksTable,
		TaskTransitionsTable,
	}
)

func init() {
	TaskTransitionsTable.ForeignKeys[0].RefTable = InterpretationTasksTable
}
