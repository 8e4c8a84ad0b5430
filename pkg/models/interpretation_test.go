package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func filled(n int) string { return strings.Repeat("字", n) }

func validInterpretation() Interpretation {
	return Interpretation{
		LineByLineInterpretation: filled(MinLineByLineLength),
		OverallDevelopment:       filled(MinMajorSection),
		PositiveFactors:          filled(MinMajorSection),
		Challenges:               filled(MinMajorSection),
		SuggestedActions:         filled(MinMajorSection),
		SupplementaryNotes:       filled(MinMinorSection),
		Conclusion:               filled(MinMinorSection),
	}
}

func TestShortSections(t *testing.T) {
	interp := validInterpretation()
	assert.Empty(t, interp.ShortSections())

	interp.Challenges = "too short"
	interp.Conclusion = "  " + filled(MinMinorSection-1) + "  " // trimmed before measuring
	assert.Equal(t, []string{"Challenges", "Conclusion"}, interp.ShortSections())
}

func TestShortSections_RuneLengthNotByteLength(t *testing.T) {
	// CJK text is three bytes per rune; the minimum is in characters.
	interp := validInterpretation()
	interp.SupplementaryNotes = filled(MinMinorSection)
	assert.Empty(t, interp.ShortSections())
}

func TestConcatenate_OrderAndLabels(t *testing.T) {
	interp := validInterpretation()
	text := interp.Concatenate()

	labels := []string{
		"LineByLineInterpretation", "OverallDevelopment", "PositiveFactors",
		"Challenges", "SuggestedActions", "SupplementaryNotes", "Conclusion",
	}
	prev := -1
	for _, label := range labels {
		idx := strings.Index(text, label+":\n")
		assert.Greater(t, idx, prev, "label %s out of order", label)
		prev = idx
	}
}

func TestTotalLength_CountsRunes(t *testing.T) {
	interp := validInterpretation()
	assert.Equal(t, len([]rune(interp.Concatenate())), interp.TotalLength())
	assert.GreaterOrEqual(t, interp.TotalLength(), MinTotalLength)
}
