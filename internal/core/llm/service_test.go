package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type blockingProvider struct{}

func (blockingProvider) Complete(ctx context.Context, req *CompletionRequest) (*Completion, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) GetProviderName() string { return "blocking" }

type staticProvider struct {
	completion *Completion
	err        error
}

func (p staticProvider) Complete(ctx context.Context, req *CompletionRequest) (*Completion, error) {
	return p.completion, p.err
}

func (p staticProvider) GetProviderName() string { return "static" }

func TestService_Timeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewService(blockingProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := svc.Complete(context.Background(), &CompletionRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestService_PassesThrough(t *testing.T) {
	want := &Completion{Content: "hello", ToolCalls: []ToolCall{{Name: "save_faq"}}}
	svc := NewServiceWithProvider(staticProvider{completion: want})

	got, err := svc.Complete(context.Background(), &CompletionRequest{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "static", svc.GetProviderName())
}

func TestService_ProviderError(t *testing.T) {
	boom := errors.New("503 service unavailable")
	svc := NewServiceWithProvider(staticProvider{err: boom})

	_, err := svc.Complete(context.Background(), &CompletionRequest{})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), &ProviderConfig{Type: ProviderOpenAI})
	assert.Error(t, err, "api key required")

	_, err = NewProvider(context.Background(), &ProviderConfig{Type: "bard", APIKey: "k"})
	assert.Error(t, err)

	p, err := NewProvider(context.Background(), &ProviderConfig{Type: ProviderOpenAI, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "OpenAI-compatible", p.GetProviderName())
}
