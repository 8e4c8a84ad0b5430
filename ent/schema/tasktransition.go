package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskTransition is the append-only journal of status-code transitions,
// sufficient to reconstruct the event stream for any task after the in-memory
// backlog is gone.
type TaskTransition struct {
	ent.Schema
}

// Fields of the TaskTransition.
func (TaskTransition) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("Strictly increasing within a task"),
		field.Int("status_code").
			Immutable(),
		field.Int("progress").
			Immutable(),
		field.String("message").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskTransition.
func (TaskTransition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", InterpretationTask.Type).
			Ref("transitions").
			Unique().
			Required().
			Field("task_id").
			Immutable(),
	}
}

// Indexes of the TaskTransition.
func (TaskTransition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "sequence").
			Unique(),
	}
}
