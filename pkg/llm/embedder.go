package llm

import (
	"context"
	"fmt"

	pb "github.com/templeworks/lingqian/proto"
)

// Embedder calls the model sidecar's embedding RPC. It shares the client's
// connection; the vector-store breaker wraps it at the call site.
type Embedder struct {
	client pb.ModelServiceClient
	model  string
}

// NewEmbedder builds an embedder on the client's existing connection.
func NewEmbedder(c *GRPCClient) *Embedder {
	return &Embedder{client: c.client, model: c.model}
}

// Embed maps texts to vectors, one per input, in input order.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.client.Embed(ctx, &pb.EmbedRequest{Texts: texts, Model: e.model})
	if err != nil {
		return nil, fmt.Errorf("embedding %d texts: %w", len(texts), err)
	}
	if len(resp.Vectors) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors", len(texts), len(resp.Vectors))
	}

	vectors := make([][]float32, len(resp.Vectors))
	for i, v := range resp.Vectors {
		vectors[i] = v.Values
	}
	return vectors, nil
}
