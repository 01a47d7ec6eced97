package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/repositories"
)

type fakeProvider struct {
	mu         sync.Mutex
	completion *llm.Completion
	err        error
	requests   []*llm.CompletionRequest
}

func (f *fakeProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.Completion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	out := *f.completion
	return &out, nil
}

func (f *fakeProvider) GetProviderName() string { return "fake" }

func (f *fakeProvider) lastRequest(t *testing.T) *llm.CompletionRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func reply(content string, calls ...llm.ToolCall) *fakeProvider {
	return &fakeProvider{completion: &llm.Completion{Content: content, ToolCalls: calls}}
}

func call(name, args string) llm.ToolCall {
	return llm.ToolCall{Name: name, Arguments: []byte(args)}
}

type testEnv struct {
	store    repositories.Store
	accounts *AccountService
	profiles *ProfileService
	chat     *ChatService
}

func newTestEnv(store repositories.Store, provider llm.LLMProvider) *testEnv {
	accounts := NewAccountService(store)
	chat := NewChatService(store, accounts, llm.NewServiceWithProvider(provider))

	// strictly increasing clock so message order is observable
	var tick int64
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	chat.now = func() time.Time {
		return base.Add(time.Duration(atomic.AddInt64(&tick, 1)) * time.Second)
	}

	return &testEnv{
		store:    store,
		accounts: accounts,
		profiles: NewProfileService(store, accounts, 100),
		chat:     chat,
	}
}

var acme = &auth.Identity{Subject: "user_acme", Email: "owner@acme.test"}

func userTurn(content string) []models.ChatTurn {
	return []models.ChatTurn{{Role: "user", Content: content}}
}

// staleLookupStore reports the account as missing once, as if another
// instance inserted it between our lookup and our insert.
type staleLookupStore struct {
	repositories.Store
	stale int32
}

func (s *staleLookupStore) Accounts() repositories.AccountRepo {
	return &staleAccounts{AccountRepo: s.Store.Accounts(), s: s}
}

type staleAccounts struct {
	repositories.AccountRepo
	s *staleLookupStore
}

func (a *staleAccounts) GetByExternalID(ctx context.Context, externalID string) (*models.Account, error) {
	if atomic.CompareAndSwapInt32(&a.s.stale, 1, 0) {
		return nil, repositories.ErrNotFound
	}
	return a.AccountRepo.GetByExternalID(ctx, externalID)
}

// failingTxStore fails every transaction.
type failingTxStore struct {
	repositories.Store
}

var errTxFailed = errors.New("transaction failed")

func (s *failingTxStore) Transaction(ctx context.Context, fn func(tx repositories.Store) error) error {
	return errTxFailed
}
