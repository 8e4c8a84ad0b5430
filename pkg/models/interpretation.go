package models

import "strings"

// Section minimum lengths for the structured interpretation, in characters.
const (
	MinLineByLineLength = 100
	MinMajorSection     = 50
	MinMinorSection     = 30

	// Bounds on the concatenated response text.
	MinTotalLength = 300
	MaxTotalLength = 20000
)

// Interpretation is the fixed seven-section structured output contract for
// the generation backend. Field order is normative.
type Interpretation struct {
	LineByLineInterpretation string `json:"LineByLineInterpretation"`
	OverallDevelopment       string `json:"OverallDevelopment"`
	PositiveFactors          string `json:"PositiveFactors"`
	Challenges               string `json:"Challenges"`
	SuggestedActions         string `json:"SuggestedActions"`
	SupplementaryNotes       string `json:"SupplementaryNotes"`
	Conclusion               string `json:"Conclusion"`
}

// section pairs a label with its content and minimum length.
type section struct {
	label   string
	content string
	minLen  int
}

func (i *Interpretation) sections() []section {
	return []section{
		{"LineByLineInterpretation", i.LineByLineInterpretation, MinLineByLineLength},
		{"OverallDevelopment", i.OverallDevelopment, MinMajorSection},
		{"PositiveFactors", i.PositiveFactors, MinMajorSection},
		{"Challenges", i.Challenges, MinMajorSection},
		{"SuggestedActions", i.SuggestedActions, MinMajorSection},
		{"SupplementaryNotes", i.SupplementaryNotes, MinMinorSection},
		{"Conclusion", i.Conclusion, MinMinorSection},
	}
}

// ShortSections returns the labels of sections below their minimum length.
func (i *Interpretation) ShortSections() []string {
	var short []string
	for _, s := range i.sections() {
		if len([]rune(strings.TrimSpace(s.content))) < s.minLen {
			short = append(short, s.label)
		}
	}
	return short
}

// Concatenate renders the seven sections into a single response text,
// preserving section labels and normative order.
func (i *Interpretation) Concatenate() string {
	var b strings.Builder
	for idx, s := range i.sections() {
		if idx > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s.label)
		b.WriteString(":\n")
		b.WriteString(strings.TrimSpace(s.content))
	}
	return b.String()
}

// TotalLength returns the rune length of the concatenated response.
func (i *Interpretation) TotalLength() int {
	return len([]rune(i.Concatenate()))
}
