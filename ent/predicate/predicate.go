// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InterpretationTask is the predicate function for interpretationtask builders.
type InterpretationTask func(*sql.Selector)

// TaskTransition is the predicate function for tasktransition builders.
type TaskTransition func(*sql.Selector)
