// Package llm adapts the model sidecar for interpretation drafting. The
// generation contract is structured: every draft must parse into the fixed
// seven-section Interpretation before it leaves this package.
package llm

import (
	"context"

	"github.com/templeworks/lingqian/pkg/models"
)

// Role identifies the author of a prompt message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the prompt conversation.
type Message struct {
	Role    Role
	Content string
}

// Request carries an assembled prompt to the generation backend.
type Request struct {
	TaskID   string
	Messages []Message
}

// Result is a parsed generation outcome. Raw preserves the model text the
// interpretation was decoded from.
type Result struct {
	Interpretation models.Interpretation
	Raw            string
	SchemaApplied  bool
}

// Client drafts structured interpretations.
type Client interface {
	Generate(ctx context.Context, req Request) (*Result, error)
	Close() error
}

// interpretationSchema constrains generation to the seven-section contract.
// Providers that cannot enforce it natively receive it inside the prompt.
const interpretationSchema = `{
  "type": "object",
  "properties": {
    "LineByLineInterpretation": {"type": "string"},
    "OverallDevelopment": {"type": "string"},
    "PositiveFactors": {"type": "string"},
    "Challenges": {"type": "string"},
    "SuggestedActions": {"type": "string"},
    "SupplementaryNotes": {"type": "string"},
    "Conclusion": {"type": "string"}
  },
  "required": [
    "LineByLineInterpretation",
    "OverallDevelopment",
    "PositiveFactors",
    "Challenges",
    "SuggestedActions",
    "SupplementaryNotes",
    "Conclusion"
  ]
}`
