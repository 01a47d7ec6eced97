package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const defaultTimeout = 60 * time.Second

// ErrTimeout is returned when the provider does not answer within the service timeout.
var ErrTimeout = errors.New("completion request timed out")

// Service wraps LLM provider untuk dependency injection and bounds every call
// with a timeout. Calls are never retried: a retry could replay extractions.
type Service struct {
	provider LLMProvider
	timeout  time.Duration
}

// NewService creates LLM service around provider with the given per-call timeout
func NewService(provider LLMProvider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{provider: provider, timeout: timeout}
}

// NewServiceWithProvider creates service with custom provider (for testing)
func NewServiceWithProvider(provider LLMProvider) *Service {
	return NewService(provider, defaultTimeout)
}

// Complete sends one non-streaming completion request.
func (s *Service) Complete(ctx context.Context, req *CompletionRequest) (*Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Complete(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: %v", ErrTimeout, s.timeout, err)
		}
		return nil, err
	}
	return resp, nil
}

// GetProviderName returns current provider name
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
