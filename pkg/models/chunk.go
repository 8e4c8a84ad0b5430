package models

// PoemChunk is one immutable, independently searchable fragment of a numbered
// poem. (temple, poem_number) is the primary semantic key; several chunks may
// exist per poem (per-language commentary, structured analysis), but at least
// one chunk always carries the full poem body.
type PoemChunk struct {
	ID           string            `json:"chunk_id"`
	Temple       string            `json:"temple"`
	PoemNumber   int               `json:"poem_number"`
	FortuneLevel string            `json:"fortune_level,omitempty"`
	Title        string            `json:"title,omitempty"`
	Body         string            `json:"body"`
	Language     string            `json:"language,omitempty"`
	Analysis     map[string]string `json:"analysis,omitempty"`
	RAGAnalysis  string            `json:"rag_analysis,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// ScoredChunk pairs a chunk with its cosine distance to the query.
// Distance is in [0, 2]; lower is closer.
type ScoredChunk struct {
	Chunk    PoemChunk `json:"chunk"`
	Distance float64   `json:"distance"`
}
