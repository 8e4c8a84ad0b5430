package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/templeworks/lingqian/proto"

	"github.com/templeworks/lingqian/pkg/breaker"
	"github.com/templeworks/lingqian/pkg/config"
	"github.com/templeworks/lingqian/pkg/fault"
	"github.com/templeworks/lingqian/pkg/models"
)

// maxDecodeRetries bounds re-generation attempts when the model returns
// text that does not decode into the structured contract.
const maxDecodeRetries = 2

// GRPCClient talks to the model sidecar over gRPC.
type GRPCClient struct {
	conn        *grpc.ClientConn
	client      pb.ModelServiceClient
	breaker     *breaker.Breaker
	model       string
	temperature float32
	maxTokens   int32
	timeout     time.Duration
	logger      *slog.Logger
}

// NewGRPCClient connects to the model sidecar. The connection is lazy; a
// sidecar that is down surfaces on the first Generate call, through brk.
func NewGRPCClient(cfg config.LLMConfig, brk *breaker.Breaker, logger *slog.Logger) (*GRPCClient, error) {
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connecting to model service at %s: %w", cfg.Addr, err)
	}

	logger.Info("model client configured", "addr", cfg.Addr, "model", cfg.Model)

	return &GRPCClient{
		conn:        conn,
		client:      pb.NewModelServiceClient(conn),
		breaker:     brk,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		maxTokens:   int32(cfg.MaxTokens),
		timeout:     cfg.Timeout,
		logger:      logger,
	}, nil
}

// Close tears down the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Generate drafts an interpretation and decodes it into the structured
// contract. Undecodable output is retried with a corrective turn appended;
// after maxDecodeRetries the call fails with a malformed-output fault.
func (c *GRPCClient) Generate(ctx context.Context, req Request) (*Result, error) {
	messages := make([]Message, len(req.Messages))
	copy(messages, req.Messages)

	var lastErr error
	for attempt := 0; attempt <= maxDecodeRetries; attempt++ {
		resp, err := c.generateOnce(ctx, req.TaskID, messages)
		if err != nil {
			return nil, err
		}

		result, err := decodeResult(resp)
		if err == nil {
			return result, nil
		}
		lastErr = err

		c.logger.Warn("model output did not decode, retrying",
			"task_id", req.TaskID, "attempt", attempt+1, "error", err)

		// Feed the bad output back with a corrective instruction so the
		// model can repair it rather than regenerate blind.
		messages = append(messages,
			Message{Role: RoleAssistant, Content: resp.Content},
			Message{Role: RoleUser, Content: "The previous reply was not valid JSON for the required schema. Reply again with only a single JSON object matching the schema, no surrounding text."},
		)
	}

	return nil, fault.Newf(fault.CategoryMalformedOutput,
		"model output undecodable after %d attempts: %v", maxDecodeRetries+1, lastErr)
}

// generateOnce performs one guarded RPC. Only transport failures count
// against the breaker; decode failures are handled by the caller.
func (c *GRPCClient) generateOnce(ctx context.Context, taskID string, messages []Message) (*pb.GenerateResponse, error) {
	pbMessages := make([]*pb.Message, len(messages))
	for i, msg := range messages {
		pbMessages[i] = &pb.Message{
			Role:    pbRole(msg.Role),
			Content: msg.Content,
		}
	}

	temperature := c.temperature
	maxTokens := c.maxTokens
	req := &pb.GenerateRequest{
		TaskId:             taskID,
		Messages:           pbMessages,
		Model:              c.model,
		Temperature:        &temperature,
		MaxTokens:          &maxTokens,
		ResponseSchemaJson: interpretationSchema,
	}

	var resp *pb.GenerateResponse
	err := c.breaker.Call(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		var err error
		resp, err = c.client.Generate(callCtx, req)
		if err != nil {
			switch callCtx.Err() {
			case context.DeadlineExceeded:
				return fault.Newf(fault.CategoryTimeout, "model generation timed out after %s: %w", c.timeout, err)
			case context.Canceled:
				// The caller gave up mid-call. Wrapping the context error
				// keeps the chain intact so the breaker does not count this
				// as a dependency failure.
				return fault.New(fault.CategoryCancelled,
					fmt.Errorf("model generation interrupted: %w", context.Canceled))
			}
			return fault.Newf(fault.CategoryDependencyUnavailable, "model generation failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func pbRole(role Role) pb.Message_Role {
	switch role {
	case RoleSystem:
		return pb.Message_ROLE_SYSTEM
	case RoleAssistant:
		return pb.Message_ROLE_ASSISTANT
	default:
		return pb.Message_ROLE_USER
	}
}

// decodeResult extracts the JSON object from the model reply and decodes it.
// Models that embed the object in prose or a code fence still decode as long
// as exactly one object is present.
func decodeResult(resp *pb.GenerateResponse) (*Result, error) {
	body, err := extractJSONObject(resp.Content)
	if err != nil {
		return nil, err
	}

	var interp models.Interpretation
	dec := json.NewDecoder(strings.NewReader(body))
	if err := dec.Decode(&interp); err != nil {
		return nil, fmt.Errorf("decoding interpretation: %w", err)
	}

	return &Result{
		Interpretation: interp,
		Raw:            resp.Content,
		SchemaApplied:  resp.SchemaApplied,
	}, nil
}

// extractJSONObject returns the outermost {...} in text, tolerating markdown
// fences and leading prose.
func extractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in model reply")
	}
	return text[start : end+1], nil
}
