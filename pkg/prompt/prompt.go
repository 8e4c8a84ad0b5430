// Package prompt assembles the generation conversation: a localized system
// role, the drawn poem with its fortune level, retrieved context chunks, and
// the seeker's question, followed by the seven-section output instruction.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/templeworks/lingqian/pkg/llm"
	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/status"
)

// Input is everything the prompt needs. Poem holds the chunks of the drawn
// poem itself; Contextual holds similarity-search results, already ranked.
type Input struct {
	Language      status.Language
	DeityID       string
	Temple        string
	FortuneNumber int
	Question      string
	Context       map[string]string
	Poem          []models.PoemChunk
	Contextual    []models.ScoredChunk
}

var systemPreambles = map[status.Language]string{
	status.LanguageZH: "你是一位资深的解签师，精通中国传统庙宇求签文化。你的解读既尊重传统签文的本意，又能结合求签者的具体处境给出温和而务实的指引。不作绝对化的断言，不渲染恐惧。",
	status.LanguageEN: "You are an experienced interpreter of Chinese temple fortune poems. Your readings honor the traditional meaning of each poem while offering gentle, practical guidance grounded in the seeker's situation. Avoid absolute predictions and fear-mongering.",
	status.LanguageJA: "あなたは中国寺院のおみくじ（霊籤）の解釈に精通した経験豊かな解籤師です。籤詩の伝統的な意味を尊重しつつ、相談者の状況に即した穏やかで実践的な助言を行います。断定的な予言や不安を煽る表現は避けてください。",
}

var sectionInstructions = map[status.Language]string{
	status.LanguageZH: `请以 JSON 对象回复，且只输出该对象，包含以下七个键（顺序固定）：
LineByLineInterpretation（逐句解读签诗）、OverallDevelopment（整体运势发展）、PositiveFactors（有利因素）、Challenges（需要注意的挑战）、SuggestedActions（建议采取的行动）、SupplementaryNotes（补充说明）、Conclusion（结语）。
各部分需内容充实，针对求签者的问题展开。`,
	status.LanguageEN: `Reply with a single JSON object and nothing else, containing exactly these seven keys in this order:
LineByLineInterpretation, OverallDevelopment, PositiveFactors, Challenges, SuggestedActions, SupplementaryNotes, Conclusion.
Each section must be substantive and address the seeker's question directly.`,
	status.LanguageJA: `次の七つのキーをこの順序で含む JSON オブジェクトのみを返答してください：
LineByLineInterpretation（籤詩の逐句解釈）、OverallDevelopment（全体の運勢）、PositiveFactors（有利な要素）、Challenges（注意すべき課題）、SuggestedActions（推奨される行動）、SupplementaryNotes（補足）、Conclusion（結び）。
各セクションは相談者の質問に即した充実した内容にしてください。`,
}

// Build assembles the full generation conversation for one task.
func Build(in Input) []llm.Message {
	lang := in.Language
	if _, ok := systemPreambles[lang]; !ok {
		lang = status.LanguageZH
	}

	var b strings.Builder
	writePoem(&b, lang, in)
	writeContextual(&b, lang, in.Contextual)
	writeQuestion(&b, lang, in)
	b.WriteString("\n")
	b.WriteString(sectionInstructions[lang])

	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPreambles[lang]},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

// BuildTightened rebuilds the conversation for a validation retry, naming
// the sections that came back too thin.
func BuildTightened(in Input, shortSections []string) []llm.Message {
	messages := Build(in)
	last := &messages[len(messages)-1]

	var note string
	switch in.Language {
	case status.LanguageEN:
		note = fmt.Sprintf("\n\nImportant: the following sections must be expanded with concrete, substantive content: %s. Do not pad with repetition.",
			strings.Join(shortSections, ", "))
	case status.LanguageJA:
		note = fmt.Sprintf("\n\n重要：次のセクションは具体的で充実した内容に拡充してください：%s。繰り返しによる水増しは避けてください。",
			strings.Join(shortSections, "、"))
	default:
		note = fmt.Sprintf("\n\n重要：以下部分必须扩充为具体、充实的内容：%s。不要用重复语句凑字数。",
			strings.Join(shortSections, "、"))
	}
	last.Content += note
	return messages
}

func writePoem(b *strings.Builder, lang status.Language, in Input) {
	switch lang {
	case status.LanguageEN:
		fmt.Fprintf(b, "Temple: %s\nPoem number: %d\n", in.Temple, in.FortuneNumber)
	case status.LanguageJA:
		fmt.Fprintf(b, "寺院：%s\n籤番号：第%d番\n", in.Temple, in.FortuneNumber)
	default:
		fmt.Fprintf(b, "庙宇：%s\n签号：第%d签\n", in.Temple, in.FortuneNumber)
	}

	for _, chunk := range in.Poem {
		if chunk.FortuneLevel != "" {
			fmt.Fprintf(b, "%s: %s\n", label(lang, "Fortune level", "吉凶", "吉凶"), chunk.FortuneLevel)
		}
		if chunk.Title != "" {
			fmt.Fprintf(b, "%s: %s\n", label(lang, "Title", "签题", "籤題"), chunk.Title)
		}
		fmt.Fprintf(b, "%s:\n%s\n", label(lang, "Poem text", "签文", "籤詩"), strings.TrimSpace(chunk.Body))
		if chunk.RAGAnalysis != "" {
			fmt.Fprintf(b, "%s:\n%s\n", label(lang, "Traditional analysis", "传统解析", "伝統的解釈"), strings.TrimSpace(chunk.RAGAnalysis))
		}
	}
}

func writeContextual(b *strings.Builder, lang status.Language, contextual []models.ScoredChunk) {
	if len(contextual) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", label(lang, "Related references", "相关参考", "関連する参考資料"))
	for _, scored := range contextual {
		c := scored.Chunk
		if c.Title != "" {
			fmt.Fprintf(b, "- %s: %s\n", c.Title, strings.TrimSpace(c.Body))
		} else {
			fmt.Fprintf(b, "- %s\n", strings.TrimSpace(c.Body))
		}
	}
}

func writeQuestion(b *strings.Builder, lang status.Language, in Input) {
	// The question is quoted verbatim. Normalization happens only for cache
	// fingerprinting, never here.
	fmt.Fprintf(b, "\n%s: %s\n", label(lang, "Seeker's question", "求签问题", "相談内容"), in.Question)
	keys := make([]string, 0, len(in.Context))
	for key := range in.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(b, "%s: %s\n", key, in.Context[key])
	}
}

func label(lang status.Language, en, zh, ja string) string {
	switch lang {
	case status.LanguageEN:
		return en
	case status.LanguageJA:
		return ja
	default:
		return zh
	}
}
