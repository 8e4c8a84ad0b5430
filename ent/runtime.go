// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/ent/schema"
	"github.com/templeworks/lingqian/ent/tasktransition"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	interpretationtaskFields := schema.InterpretationTask{}.Fields()
	_ = interpretationtaskFields
	// interpretationtaskDescLanguage is the schema descriptor for language field.
	interpretationtaskDescLanguage := interpretationtaskFields[7].Descriptor()
	// interpretationtask.DefaultLanguage holds the default value on creation for the language field.
	interpretationtask.DefaultLanguage = interpretationtaskDescLanguage.Default.(string)
	// interpretationtaskDescProgress is the schema descriptor for progress field.
	interpretationtaskDescProgress := interpretationtaskFields[9].Descriptor()
	// interpretationtask.DefaultProgress holds the default value on creation for the progress field.
	interpretationtask.DefaultProgress = interpretationtaskDescProgress.Default.(int)
	// interpretationtaskDescStatusCode is the schema descriptor for status_code field.
	interpretationtaskDescStatusCode := interpretationtaskFields[10].Descriptor()
	// interpretationtask.DefaultStatusCode holds the default value on creation for the status_code field.
	interpretationtask.DefaultStatusCode = interpretationtaskDescStatusCode.Default.(int)
	// interpretationtaskDescPriority is the schema descriptor for priority field.
	interpretationtaskDescPriority := interpretationtaskFields[12].Descriptor()
	// interpretationtask.DefaultPriority holds the default value on creation for the priority field.
	interpretationtask.DefaultPriority = interpretationtaskDescPriority.Default.(int)
	// interpretationtaskDescCancelRequested is the schema descriptor for cancel_requested field.
	interpretationtaskDescCancelRequested := interpretationtaskFields[13].Descriptor()
	// interpretationtask.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	interpretationtask.DefaultCancelRequested = interpretationtaskDescCancelRequested.Default.(bool)
	// interpretationtaskDescRetryCount is the schema descriptor for retry_count field.
	interpretationtaskDescRetryCount := interpretationtaskFields[15].Descriptor()
	// interpretationtask.DefaultRetryCount holds the default value on creation for the retry_count field.
	interpretationtask.DefaultRetryCount = interpretationtaskDescRetryCount.Default.(int)
	// interpretationtaskDescSubmittedAt is the schema descriptor for submitted_at field.
	interpretationtaskDescSubmittedAt := interpretationtaskFields[16].Descriptor()
	// interpretationtask.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	interpretationtask.DefaultSubmittedAt = interpretationtaskDescSubmittedAt.Default.(func() time.Time)
	// interpretationtaskDescCanGenerateReport is the schema descriptor for can_generate_report field.
	interpretationtaskDescCanGenerateReport := interpretationtaskFields[27].Descriptor()
	// interpretationtask.DefaultCanGenerateReport holds the default value on creation for the can_generate_report field.
	interpretationtask.DefaultCanGenerateReport = interpretationtaskDescCanGenerateReport.Default.(bool)
	tasktransitionFields := schema.TaskTransition{}.Fields()
	_ = tasktransitionFields
	// tasktransitionDescCreatedAt is the schema descriptor for created_at field.
	tasktransitionDescCreatedAt := tasktransitionFields[5].Descriptor()
	// tasktransition.DefaultCreatedAt holds the default value on creation for the created_at field.
	tasktransition.DefaultCreatedAt = tasktransitionDescCreatedAt.Default.(func() time.Time)
}
