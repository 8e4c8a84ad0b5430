// Package vectorstore provides the similarity index over poem chunks:
// exact lookup by (temple, number) and cosine-distance search over chunk
// embeddings, both guarded by the vector-store circuit breaker.
package vectorstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	pgvector "github.com/pgvector/pgvector-go"

	"github.com/templeworks/lingqian/pkg/breaker"
	"github.com/templeworks/lingqian/pkg/fault"
	"github.com/templeworks/lingqian/pkg/models"
)

// Embedder turns query text into the vector space of the ingested chunks.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Filters restricts a similarity search to structural metadata. Zero values
// mean "no restriction"; set fields are conjoined.
type Filters struct {
	Temple   string
	Language string
}

// Stats summarizes the index for health reporting.
type Stats struct {
	TotalChunks   int `json:"total_chunks"`
	UniqueTemples int `json:"unique_temples"`
}

// Store is the poem chunk index backed by pgvector. Read-only: ingestion is
// an external job.
type Store struct {
	db       *sql.DB
	embedder Embedder

	// dbBreaker guards direct chunk reads; searchBreaker guards the
	// embedding-backed similarity path, which also depends on the model
	// sidecar and fails differently.
	dbBreaker     *breaker.Breaker
	searchBreaker *breaker.Breaker
	timeout       time.Duration

	// Chunks are immutable once ingested, so exact lookups memoize forever.
	memo *poemMemo
}

// New creates a vector store adapter. All operations run under a breaker and
// a per-call wall-clock timeout.
func New(db *sql.DB, embedder Embedder, dbBreaker, searchBreaker *breaker.Breaker, timeout time.Duration) *Store {
	return &Store{
		db:            db,
		embedder:      embedder,
		dbBreaker:     dbBreaker,
		searchBreaker: searchBreaker,
		timeout:       timeout,
		memo:          newPoemMemo(),
	}
}

const chunkColumns = `chunk_id, temple, poem_number, fortune_level, title, body, language, analysis, rag_analysis, metadata`

// GetPoem returns every chunk of the poem identified by (temple, number).
// Fails with a NotFound fault when the key has no chunks.
func (s *Store) GetPoem(ctx context.Context, temple string, number int) ([]models.PoemChunk, error) {
	if chunks, ok := s.memo.get(temple, number); ok {
		return chunks, nil
	}

	var chunks []models.PoemChunk
	err := s.guarded(ctx, s.dbBreaker, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx,
			`SELECT `+chunkColumns+` FROM poem_chunks WHERE temple = $1 AND poem_number = $2 ORDER BY chunk_id`,
			temple, number)
		if err != nil {
			return fmt.Errorf("querying poem %s#%d: %w", temple, number, err)
		}
		defer rows.Close()

		for rows.Next() {
			chunk, err := scanChunk(rows)
			if err != nil {
				return err
			}
			chunks = append(chunks, chunk)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fault.Newf(fault.CategoryNotFound, "no chunks for poem %s#%d", temple, number)
	}

	s.memo.put(temple, number, chunks)
	return chunks, nil
}

// Search returns up to topK chunks by ascending cosine distance to the query
// text, restricted by filters.
func (s *Store) Search(ctx context.Context, query string, topK int, filters Filters) ([]models.ScoredChunk, error) {
	if topK <= 0 {
		return nil, nil
	}

	var results []models.ScoredChunk
	err := s.guarded(ctx, s.searchBreaker, func(ctx context.Context) error {
		vecs, err := s.embedder.Embed(ctx, []string{query})
		if err != nil {
			return fmt.Errorf("embedding query: %w", err)
		}

		q := `SELECT ` + chunkColumns + `, embedding <=> $1 AS distance
		      FROM poem_chunks WHERE embedding IS NOT NULL`
		args := []any{pgvector.NewVector(vecs[0])}
		if filters.Temple != "" {
			args = append(args, filters.Temple)
			q += fmt.Sprintf(" AND temple = $%d", len(args))
		}
		if filters.Language != "" {
			args = append(args, filters.Language)
			q += fmt.Sprintf(" AND language = $%d", len(args))
		}
		args = append(args, topK)
		q += fmt.Sprintf(" ORDER BY distance ASC LIMIT $%d", len(args))

		rows, err := s.db.QueryContext(ctx, q, args...)
		if err != nil {
			return fmt.Errorf("similarity search: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			scored, err := scanScoredChunk(rows)
			if err != nil {
				return err
			}
			results = append(results, scored)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Stats reports index totals for health reporting.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.guarded(ctx, s.dbBreaker, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx,
			`SELECT COUNT(*), COUNT(DISTINCT temple) FROM poem_chunks`,
		).Scan(&stats.TotalChunks, &stats.UniqueTemples)
	})
	return stats, err
}

// guarded runs fn under the given circuit breaker and the per-call timeout,
// classifying timeouts at the boundary.
func (s *Store) guarded(ctx context.Context, brk *breaker.Breaker, fn func(ctx context.Context) error) error {
	return brk.Call(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		if err := fn(callCtx); err != nil {
			if callCtx.Err() == context.DeadlineExceeded {
				return fault.New(fault.CategoryTimeout, err)
			}
			return err
		}
		return nil
	})
}

// rowScanner is satisfied by *sql.Rows and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanChunk(row rowScanner) (models.PoemChunk, error) {
	var (
		chunk        models.PoemChunk
		fortuneLevel sql.NullString
		title        sql.NullString
		language     sql.NullString
		ragAnalysis  sql.NullString
		analysisRaw  []byte
		metadataRaw  []byte
	)
	if err := row.Scan(&chunk.ID, &chunk.Temple, &chunk.PoemNumber, &fortuneLevel,
		&title, &chunk.Body, &language, &analysisRaw, &ragAnalysis, &metadataRaw); err != nil {
		return models.PoemChunk{}, fmt.Errorf("scanning chunk: %w", err)
	}
	chunk.FortuneLevel = fortuneLevel.String
	chunk.Title = title.String
	chunk.Language = language.String
	chunk.RAGAnalysis = ragAnalysis.String
	if len(analysisRaw) > 0 {
		if err := json.Unmarshal(analysisRaw, &chunk.Analysis); err != nil {
			return models.PoemChunk{}, fmt.Errorf("decoding chunk analysis: %w", err)
		}
	}
	if len(metadataRaw) > 0 {
		if err := json.Unmarshal(metadataRaw, &chunk.Metadata); err != nil {
			return models.PoemChunk{}, fmt.Errorf("decoding chunk metadata: %w", err)
		}
	}
	return chunk, nil
}

func scanScoredChunk(rows *sql.Rows) (models.ScoredChunk, error) {
	var (
		scored       models.ScoredChunk
		fortuneLevel sql.NullString
		title        sql.NullString
		language     sql.NullString
		ragAnalysis  sql.NullString
		analysisRaw  []byte
		metadataRaw  []byte
	)
	c := &scored.Chunk
	if err := rows.Scan(&c.ID, &c.Temple, &c.PoemNumber, &fortuneLevel, &title,
		&c.Body, &language, &analysisRaw, &ragAnalysis, &metadataRaw, &scored.Distance); err != nil {
		return models.ScoredChunk{}, fmt.Errorf("scanning scored chunk: %w", err)
	}
	c.FortuneLevel = fortuneLevel.String
	c.Title = title.String
	c.Language = language.String
	c.RAGAnalysis = ragAnalysis.String
	if len(analysisRaw) > 0 {
		if err := json.Unmarshal(analysisRaw, &c.Analysis); err != nil {
			return models.ScoredChunk{}, fmt.Errorf("decoding chunk analysis: %w", err)
		}
	}
	if len(metadataRaw) > 0 {
		if err := json.Unmarshal(metadataRaw, &c.Metadata); err != nil {
			return models.ScoredChunk{}, fmt.Errorf("decoding chunk metadata: %w", err)
		}
	}
	return scored, nil
}
