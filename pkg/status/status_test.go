package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/templeworks/lingqian/pkg/fault"
)

func TestProgressMonotonicAcrossLifecycle(t *testing.T) {
	order := []Code{
		Queued, Initializing, RAGStart, RAGConnecting, RAGSearching,
		RAGSorting, RAGComplete, LLMContext, LLMGenerating,
		Validating, Finalizing, Completed,
	}
	prev := -1
	for _, code := range order {
		p := code.Progress()
		assert.GreaterOrEqual(t, p, prev, "progress for code %d regressed", code)
		prev = p
	}
	assert.Equal(t, 0, Queued.Progress())
	assert.Equal(t, 100, Completed.Progress())
}

func TestHeartbeatCodesHaveNoCanonicalProgress(t *testing.T) {
	for _, code := range []Code{LLMStreamingEarly, LLMStreamingMiddle, LLMStreamingLate, LLMStreamingOvertime} {
		assert.Equal(t, -1, code.Progress(), "heartbeat code %d should be unmapped", code)
	}
}

func TestTerminalAndErrorClassification(t *testing.T) {
	assert.True(t, Completed.IsTerminal())
	assert.True(t, ErrTimeout.IsTerminal())
	assert.True(t, ErrCancelled.IsTerminal())
	assert.False(t, Validating.IsTerminal())
	assert.False(t, Queued.IsTerminal())

	assert.False(t, Completed.IsError())
	assert.True(t, ErrInternal.IsError())
	assert.True(t, ErrCancelled.IsError())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		category fault.Category
		want     Code
	}{
		{fault.CategoryInternal, ErrInternal},
		{fault.CategoryInvalidInput, ErrInvalidInput},
		{fault.CategoryNotFound, ErrNotFound},
		{fault.CategoryDependencyUnavailable, ErrDependencyUnavailable},
		{fault.CategoryTimeout, ErrTimeout},
		{fault.CategoryMalformedOutput, ErrMalformedOutput},
		{fault.CategoryCancelled, ErrCancelled},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorCode(tt.category))
	}
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageZH, ParseLanguage(""))
	assert.Equal(t, LanguageZH, ParseLanguage("zh"))
	assert.Equal(t, LanguageEN, ParseLanguage("en"))
	assert.Equal(t, LanguageJA, ParseLanguage("ja"))
	assert.Equal(t, LanguageZH, ParseLanguage("fr"))
}

func TestValidLanguage(t *testing.T) {
	assert.True(t, ValidLanguage(""))
	assert.True(t, ValidLanguage("zh"))
	assert.True(t, ValidLanguage("en"))
	assert.True(t, ValidLanguage("ja"))
	assert.False(t, ValidLanguage("fr"))
}

func TestMessage_CoversAllCodesInAllLanguages(t *testing.T) {
	codes := []Code{
		Queued, Initializing, CacheHit,
		RAGStart, RAGConnecting, RAGSearching, RAGSorting, RAGComplete,
		LLMContext, LLMGenerating,
		LLMStreamingEarly, LLMStreamingMiddle, LLMStreamingLate, LLMStreamingOvertime,
		Validating, Finalizing, Completed,
		ErrInternal, ErrInvalidInput, ErrNotFound, ErrDependencyUnavailable,
		ErrTimeout, ErrMalformedOutput, ErrCancelled,
	}
	for _, lang := range []Language{LanguageZH, LanguageEN, LanguageJA} {
		for _, code := range codes {
			assert.NotEmpty(t, Message(lang, code), "missing %s message for code %d", lang, code)
		}
	}
}
