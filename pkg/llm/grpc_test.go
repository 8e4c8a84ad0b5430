package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/templeworks/lingqian/pkg/breaker"
	"github.com/templeworks/lingqian/pkg/fault"
	pb "github.com/templeworks/lingqian/proto"
)

const wellFormed = `{
	"LineByLineInterpretation": "line by line",
	"OverallDevelopment": "overall",
	"PositiveFactors": "positives",
	"Challenges": "challenges",
	"SuggestedActions": "actions",
	"SupplementaryNotes": "notes",
	"Conclusion": "conclusion"
}`

func TestDecodeResult_PlainObject(t *testing.T) {
	result, err := decodeResult(&pb.GenerateResponse{Content: wellFormed, SchemaApplied: true})
	require.NoError(t, err)
	assert.Equal(t, "line by line", result.Interpretation.LineByLineInterpretation)
	assert.Equal(t, "conclusion", result.Interpretation.Conclusion)
	assert.True(t, result.SchemaApplied)
	assert.Equal(t, wellFormed, result.Raw)
}

func TestDecodeResult_ToleratesFencesAndProse(t *testing.T) {
	content := "Here is the interpretation:\n```json\n" + wellFormed + "\n```\nHope this helps."
	result, err := decodeResult(&pb.GenerateResponse{Content: content})
	require.NoError(t, err)
	assert.Equal(t, "overall", result.Interpretation.OverallDevelopment)
}

func TestDecodeResult_NoObject(t *testing.T) {
	_, err := decodeResult(&pb.GenerateResponse{Content: "I cannot answer that."})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON object")
}

func TestDecodeResult_InvalidJSON(t *testing.T) {
	_, err := decodeResult(&pb.GenerateResponse{Content: `{"LineByLineInterpretation": `})
	require.Error(t, err)
}

// stubModelService stands in for the generated gRPC client.
type stubModelService struct {
	generate func(ctx context.Context, in *pb.GenerateRequest) (*pb.GenerateResponse, error)
}

func (s *stubModelService) Generate(ctx context.Context, in *pb.GenerateRequest, _ ...grpc.CallOption) (*pb.GenerateResponse, error) {
	return s.generate(ctx, in)
}

func (s *stubModelService) Embed(context.Context, *pb.EmbedRequest, ...grpc.CallOption) (*pb.EmbedResponse, error) {
	return &pb.EmbedResponse{}, nil
}

func newStubClient(stub *stubModelService, brk *breaker.Breaker) *GRPCClient {
	return &GRPCClient{
		client:  stub,
		breaker: brk,
		model:   "test-model",
		timeout: time.Minute,
		logger:  slog.Default(),
	}
}

func TestGenerate_CallerCancellationIsNotADependencyFailure(t *testing.T) {
	brk := breaker.New("llm", 2, time.Minute)
	stub := &stubModelService{generate: func(ctx context.Context, _ *pb.GenerateRequest) (*pb.GenerateResponse, error) {
		<-ctx.Done()
		return nil, errors.New("rpc error: code = Canceled desc = context canceled")
	}}
	c := newStubClient(stub, brk)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 3; i++ {
		_, err := c.Generate(ctx, Request{TaskID: "t-cancel", Messages: []Message{{Role: RoleUser, Content: "hi"}}})
		require.Error(t, err)
		assert.True(t, fault.Is(err, fault.CategoryCancelled))
		assert.ErrorIs(t, err, context.Canceled)
	}

	snap := brk.Snapshot()
	assert.Equal(t, breaker.StateClosed, snap.State, "cancellations must not trip the breaker")
	assert.Zero(t, snap.Failures)
}

func TestGenerate_TransportFailureCountsAgainstBreaker(t *testing.T) {
	brk := breaker.New("llm", 1, time.Minute)
	stub := &stubModelService{generate: func(context.Context, *pb.GenerateRequest) (*pb.GenerateResponse, error) {
		return nil, errors.New("connection refused")
	}}
	c := newStubClient(stub, brk)

	_, err := c.Generate(context.Background(), Request{TaskID: "t-down", Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.CategoryDependencyUnavailable))
	assert.Equal(t, breaker.StateOpen, brk.Snapshot().State)
}

func TestGenerate_UndecodableOutputRetriesWithCorrectiveTurn(t *testing.T) {
	var turns []int
	stub := &stubModelService{generate: func(_ context.Context, in *pb.GenerateRequest) (*pb.GenerateResponse, error) {
		turns = append(turns, len(in.Messages))
		return &pb.GenerateResponse{Content: "not json"}, nil
	}}
	c := newStubClient(stub, breaker.New("llm", 5, time.Minute))

	_, err := c.Generate(context.Background(), Request{TaskID: "t-garbled", Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.CategoryMalformedOutput))

	// Each retry appends the bad reply plus a corrective instruction.
	assert.Equal(t, []int{1, 3, 5}, turns)
}

func TestExtractJSONObject(t *testing.T) {
	body, err := extractJSONObject(`prefix {"a": {"b": 1}} suffix`)
	require.NoError(t, err)
	assert.Equal(t, `{"a": {"b": 1}}`, body)

	_, err = extractJSONObject("} {")
	assert.Error(t, err)
}
