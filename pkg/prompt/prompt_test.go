package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeworks/lingqian/pkg/llm"
	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/status"
)

func sampleInput(lang status.Language) Input {
	return Input{
		Language:      lang,
		DeityID:       "guan_yin",
		Temple:        "GuanYin100",
		FortuneNumber: 27,
		Question:      "  Should I change jobs THIS year?  ",
		Context:       map[string]string{"age": "34", "occupation": "engineer"},
		Poem: []models.PoemChunk{{
			ID:           "guanyin100-27-0",
			Temple:       "GuanYin100",
			PoemNumber:   27,
			FortuneLevel: "中吉",
			Title:        "第二十七签",
			Body:         "一谋一用一番书，虑后思前不敢为。",
			RAGAnalysis:  "此签言谋事宜慎。",
		}},
		Contextual: []models.ScoredChunk{{
			Chunk:    models.PoemChunk{ID: "ctx-1", Title: "相近签文", Body: "参考内容"},
			Distance: 0.3,
		}},
	}
}

func TestBuild_Structure(t *testing.T) {
	messages := Build(sampleInput(status.LanguageZH))
	require.Len(t, messages, 2)
	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, llm.RoleUser, messages[1].Role)

	user := messages[1].Content
	assert.Contains(t, user, "GuanYin100")
	assert.Contains(t, user, "第27签")
	assert.Contains(t, user, "中吉")
	assert.Contains(t, user, "一谋一用一番书")
	assert.Contains(t, user, "此签言谋事宜慎")
	assert.Contains(t, user, "参考内容")
	assert.Contains(t, user, "LineByLineInterpretation")
	assert.Contains(t, user, "Conclusion")
}

func TestBuild_QuestionVerbatim(t *testing.T) {
	// The question goes into the prompt exactly as submitted; normalization
	// is a cache concern only.
	messages := Build(sampleInput(status.LanguageZH))
	assert.Contains(t, messages[1].Content, "  Should I change jobs THIS year?  ")
}

func TestBuild_LanguageSelectsPreamble(t *testing.T) {
	zh := Build(sampleInput(status.LanguageZH))[0].Content
	en := Build(sampleInput(status.LanguageEN))[0].Content
	ja := Build(sampleInput(status.LanguageJA))[0].Content

	assert.Contains(t, zh, "解签师")
	assert.Contains(t, en, "interpreter")
	assert.Contains(t, ja, "解籤師")
	assert.NotEqual(t, zh, en)
	assert.NotEqual(t, en, ja)
}

func TestBuild_ContextKeysDeterministic(t *testing.T) {
	a := Build(sampleInput(status.LanguageEN))[1].Content
	for i := 0; i < 20; i++ {
		assert.Equal(t, a, Build(sampleInput(status.LanguageEN))[1].Content)
	}
	assert.Less(t, strings.Index(a, "age: 34"), strings.Index(a, "occupation: engineer"))
}

func TestBuild_NoContextualSection(t *testing.T) {
	in := sampleInput(status.LanguageEN)
	in.Contextual = nil
	user := Build(in)[1].Content
	assert.NotContains(t, user, "Related references")
}

func TestBuildTightened_NamesShortSections(t *testing.T) {
	in := sampleInput(status.LanguageEN)
	messages := BuildTightened(in, []string{"Challenges", "Conclusion"})
	require.Len(t, messages, 2)

	user := messages[1].Content
	assert.Contains(t, user, "Challenges, Conclusion")
	assert.Contains(t, user, "expanded")

	// The tightened prompt is a strict superset of the original.
	assert.True(t, strings.HasPrefix(user, Build(in)[1].Content))
}
