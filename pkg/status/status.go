// Package status defines the closed numeric status-code set published on the
// progress bus and streamed to clients. Codes are grouped by phase:
// 0-9 queue/init, 10-19 RAG, 20-39 LLM, 40-49 LLM streaming heartbeat,
// 50-59 validation, 60-69 completion, 70-79 errors. The set is stable;
// clients translate codes to localized strings locally.
package status

import "github.com/templeworks/lingqian/pkg/fault"

// Code is a numeric pipeline status code.
type Code int

// Queue / init phase (0-9).
const (
	Queued       Code = 0
	Initializing Code = 1
	CacheHit     Code = 2
)

// RAG phase (10-19).
const (
	RAGStart      Code = 10
	RAGConnecting Code = 11
	RAGSearching  Code = 12
	RAGSorting    Code = 13
	RAGComplete   Code = 14
)

// LLM phase (20-39).
const (
	LLMContext    Code = 20
	LLMGenerating Code = 21
)

// LLM streaming heartbeat phase (40-49).
const (
	LLMStreamingEarly    Code = 40
	LLMStreamingMiddle   Code = 41
	LLMStreamingLate     Code = 42
	LLMStreamingOvertime Code = 43
)

// Validation and completion phases (50-69).
const (
	Validating Code = 50
	Finalizing Code = 60
	Completed  Code = 61
)

// Error phase (70-79).
const (
	ErrInternal              Code = 70
	ErrInvalidInput          Code = 71
	ErrNotFound              Code = 72
	ErrDependencyUnavailable Code = 73
	ErrTimeout               Code = 74
	ErrMalformedOutput       Code = 75
	ErrCancelled             Code = 76
)

// progressByCode maps each non-heartbeat code to its canonical progress value.
// Heartbeat codes (40-43) carry live progress computed by the orchestrator and
// have no fixed entry.
var progressByCode = map[Code]int{
	Queued:        0,
	Initializing:  5,
	CacheHit:      10,
	RAGStart:      20,
	RAGConnecting: 25,
	RAGSearching:  35,
	RAGSorting:    45,
	RAGComplete:   50,
	LLMContext:    55,
	LLMGenerating: 60,
	Validating:    92,
	Finalizing:    95,
	Completed:     100,
}

// Progress returns the canonical progress percentage for a code, or -1 if the
// code has no fixed progress (heartbeat and error codes).
func (c Code) Progress() int {
	if p, ok := progressByCode[c]; ok {
		return p
	}
	return -1
}

// IsTerminal reports whether the code ends a task lifecycle.
func (c Code) IsTerminal() bool {
	return c == Completed || c.IsError()
}

// IsError reports whether the code is in the error band.
func (c Code) IsError() bool {
	return c >= ErrInternal && c <= ErrCancelled
}

// ErrorCode maps a failure category to its status code.
func ErrorCode(category fault.Category) Code {
	switch category {
	case fault.CategoryInvalidInput:
		return ErrInvalidInput
	case fault.CategoryNotFound:
		return ErrNotFound
	case fault.CategoryDependencyUnavailable:
		return ErrDependencyUnavailable
	case fault.CategoryTimeout:
		return ErrTimeout
	case fault.CategoryMalformedOutput:
		return ErrMalformedOutput
	case fault.CategoryCancelled:
		return ErrCancelled
	default:
		return ErrInternal
	}
}
