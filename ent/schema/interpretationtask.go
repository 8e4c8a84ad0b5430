package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterpretationTask holds the schema definition for a single submitted
// fortune-interpretation request and its lifecycle.
type InterpretationTask struct {
	ent.Schema
}

// Fields of the InterpretationTask.
func (InterpretationTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Owning user; only the owner may read or cancel"),
		field.String("deity_id").
			Immutable(),
		field.String("temple").
			Immutable().
			Comment("Temple corpus resolved from deity_id at submission"),
		field.Int("fortune_number").
			Immutable(),
		field.Text("question").
			Immutable(),
		field.JSON("context", map[string]string{}).
			Optional().
			Comment("Free-form submission context"),
		field.String("language").
			Default("zh"),
		field.Enum("status").
			Values("queued", "processing", "completed", "failed", "cancelled").
			Default("queued"),
		field.Int("progress").
			Default(0).
			Comment("0..100, non-decreasing while processing"),
		field.Int("status_code").
			Default(0).
			Comment("Latest numeric pipeline status code"),
		field.String("status_message").
			Optional().
			Comment("Latest advisory server-localized message"),
		field.Int("priority").
			Default(0).
			Comment("Higher first; ties broken FIFO on submitted_at"),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Set by the owner; observed by the worker at suspension points"),
		field.String("claimed_by").
			Optional().
			Comment("Worker id that holds the claim"),
		field.Int("retry_count").
			Default(0),
		field.Time("submitted_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_activity_at").
			Optional().
			Nillable().
			Comment("Worker liveness for stuck detection"),
		field.Text("response_text").
			Optional().
			Comment("Concatenated seven-section interpretation"),
		field.JSON("response_sections", map[string]string{}).
			Optional().
			Comment("Structured interpretation keyed by section label"),
		field.Float("confidence").
			Optional(),
		field.JSON("sources", []string{}).
			Optional().
			Comment("Contributing chunk identifiers"),
		field.Int64("processing_time_ms").
			Optional(),
		field.String("error_category").
			Optional(),
		field.String("error_message").
			Optional(),
		field.Bool("can_generate_report").
			Default(false),
	}
}

// Edges of the InterpretationTask.
func (InterpretationTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transitions", TaskTransition.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the InterpretationTask.
func (InterpretationTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id", "submitted_at"),
		index.Fields("status", "priority", "submitted_at"),
		index.Fields("status", "last_activity_at"),
	}
}
