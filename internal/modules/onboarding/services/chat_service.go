package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/metrics"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/extraction"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/repositories"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/errx"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/utils"
)

// FallbackReply replaces an empty model reply.
const FallbackReply = "Sorry, I had trouble responding. Please try again."

type ChatService struct {
	store    repositories.Store
	accounts *AccountService
	llm      *llm.Service
	now      func() time.Time
}

func NewChatService(store repositories.Store, accounts *AccountService, llmService *llm.Service) *ChatService {
	return &ChatService{
		store:    store,
		accounts: accounts,
		llm:      llmService,
		now:      time.Now,
	}
}

// HandleTurn turns the latest user utterance into one persisted assistant
// reply. The user message is stored before the model is called and is kept
// whatever happens afterwards. The profile patch and the assistant message
// commit together.
func (s *ChatService) HandleTurn(ctx context.Context, identity *auth.Identity, turns []models.ChatTurn) (*models.ChatResponse, error) {
	if err := ValidateTurns(turns); err != nil {
		return nil, err
	}

	account, err := s.accounts.Ensure(ctx, identity)
	if err != nil {
		metrics.ObserveTurn(metrics.OutcomePersistence)
		return nil, err
	}
	fields := map[string]interface{}{"account_id": account.ID.String()}

	last := turns[len(turns)-1]
	userMsg := models.NewMessage(account.ID, models.RoleUser, strings.TrimSpace(last.Content), s.now())
	if err := s.store.Messages().Append(ctx, userMsg); err != nil {
		utils.LogError("❌ failed to store user message", err, fields)
		metrics.ObserveTurn(metrics.OutcomePersistence)
		return nil, errx.Persistence(err)
	}

	profile, err := s.store.Profiles().GetByAccountID(ctx, account.ID)
	if err != nil {
		utils.LogError("❌ failed to load profile", err, fields)
		metrics.ObserveTurn(metrics.OutcomePersistence)
		return nil, errx.Persistence(err)
	}

	req := &llm.CompletionRequest{
		System:   BuildSystemPrompt(profile),
		Messages: toLLMMessages(turns),
		Tools:    extraction.Definitions(),
	}

	started := time.Now()
	completion, err := s.llm.Complete(ctx, req)
	metrics.ObserveModelRequest(started)
	if err != nil {
		fields["provider"] = s.llm.GetProviderName()
		utils.LogError("❌ completion request failed", err, fields)
		metrics.ObserveTurn(metrics.OutcomeUpstream)
		return nil, errx.Upstream(err)
	}

	previousCompany := profile.Brand().CompanyName
	now := s.now()
	meta, patched := s.applyToolCalls(profile, completion.ToolCalls, now, fields)

	content := strings.TrimSpace(completion.Content)
	if content == "" {
		content = FallbackReply
	}
	assistantMsg := models.NewMessage(account.ID, models.RoleAssistant, content, now)
	assistantMsg.SetMetadata(meta)

	company := profile.Brand().CompanyName
	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		if patched {
			if err := tx.Profiles().Save(ctx, profile); err != nil {
				return err
			}
			if company != "" && company != previousCompany {
				if err := tx.Accounts().SetCompanyName(ctx, account.ID, company); err != nil {
					return err
				}
			}
		}
		return tx.Messages().Append(ctx, assistantMsg)
	})
	if err != nil {
		utils.LogError("❌ failed to store assistant turn", err, fields)
		metrics.ObserveTurn(metrics.OutcomePersistence)
		return nil, errx.Persistence(err)
	}

	metrics.ObserveTurn(metrics.OutcomeOK)
	return &models.ChatResponse{Role: models.RoleAssistant, Content: content}, nil
}

// applyToolCalls decodes and applies each call in order. Unknown operations
// are logged and skipped. It reports whether any operation changed the profile.
func (s *ChatService) applyToolCalls(profile *models.Profile, calls []llm.ToolCall, now time.Time, fields map[string]interface{}) (models.MessageMetadata, bool) {
	var results []models.OperationResult
	patched := false

	for _, call := range calls {
		op, err := extraction.Decode(call.Name, call.Arguments)
		if errors.Is(err, extraction.ErrUnknownOperation) {
			utils.LogWarn("⚠️ ignoring unknown extraction operation", merge(fields, map[string]interface{}{
				"operation": call.Name,
			}))
			continue
		}
		if err == nil {
			err = op.Apply(profile, now)
		}

		result := models.OperationResult{Name: call.Name, Success: err == nil}
		if err != nil {
			result.Error = err.Error()
			utils.LogWarn("⚠️ extraction not applied", merge(fields, map[string]interface{}{
				"operation": call.Name,
				"error":     err.Error(),
			}))
		} else {
			patched = true
		}
		metrics.ObserveExtraction(call.Name, result.Success)
		results = append(results, result)
	}

	return models.MetadataFor(results), patched
}

// ValidateTurns checks the dialogue shape before anything is stored.
func ValidateTurns(turns []models.ChatTurn) error {
	if len(turns) == 0 {
		return errx.Validation("Messages required")
	}
	for _, t := range turns {
		if !models.Role(t.Role).Valid() {
			return errx.Validation("invalid message role: " + t.Role)
		}
	}
	last := turns[len(turns)-1]
	if models.Role(last.Role) != models.RoleUser {
		return errx.Validation("last message must be from the user")
	}
	if strings.TrimSpace(last.Content) == "" {
		return errx.Validation("message content required")
	}
	return nil
}

// toLLMMessages drops client-supplied system turns; the server instruction
// replaces them.
func toLLMMessages(turns []models.ChatTurn) []llm.Message {
	out := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		switch models.Role(t.Role) {
		case models.RoleUser:
			out = append(out, llm.Message{Role: llm.RoleUser, Content: t.Content})
		case models.RoleAssistant:
			out = append(out, llm.Message{Role: llm.RoleAssistant, Content: t.Content})
		}
	}
	return out
}

func merge(base, extra map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
