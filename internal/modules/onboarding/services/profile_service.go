package services

import (
	"context"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/repositories"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/errx"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/utils"
)

type ProfileService struct {
	store        repositories.Store
	accounts     *AccountService
	historyLimit int
}

func NewProfileService(store repositories.Store, accounts *AccountService, historyLimit int) *ProfileService {
	if historyLimit <= 0 {
		historyLimit = 100
	}
	return &ProfileService{
		store:        store,
		accounts:     accounts,
		historyLimit: historyLimit,
	}
}

// History returns the caller's messages, oldest first, with the profile.
// Callers that never chatted get an empty history and no profile.
func (s *ProfileService) History(ctx context.Context, identity *auth.Identity) (*models.HistoryResponse, error) {
	resp := &models.HistoryResponse{Messages: []models.HistoryMessage{}}

	account, err := s.accounts.Lookup(ctx, identity)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return resp, nil
	}

	messages, err := s.store.Messages().ListByAccountID(ctx, account.ID, s.historyLimit)
	if err != nil {
		return nil, errx.Persistence(err)
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, models.HistoryMessage{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	profile, err := s.store.Profiles().GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, errx.Persistence(err)
	}
	resp.Profile = profile
	resp.AccountID = &account.ID
	return resp, nil
}

// Progress reports the stage, completion percentage and per-step status.
func (s *ProfileService) Progress(ctx context.Context, identity *auth.Identity) (*models.ProgressResponse, error) {
	account, err := s.accounts.Ensure(ctx, identity)
	if err != nil {
		return nil, err
	}

	profile, err := s.store.Profiles().GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, errx.Persistence(err)
	}
	lastMessageAt, err := s.store.Messages().LastMessageAt(ctx, account.ID)
	if err != nil {
		return nil, errx.Persistence(err)
	}

	stages := make([]models.StageProgress, 0, len(models.ProgressStages))
	for _, stage := range models.ProgressStages {
		stages = append(stages, models.StageProgress{
			Stage:  stage,
			Status: models.StageStatusFor(stage, profile.OnboardingStage),
		})
	}

	return &models.ProgressResponse{
		Stage:         profile.OnboardingStage,
		Completion:    models.Completion(profile),
		Stages:        stages,
		CompletedAt:   profile.CompletedAt,
		LastMessageAt: lastMessageAt,
	}, nil
}

// UpdateCompany applies the settings form as a brand merge-patch.
func (s *ProfileService) UpdateCompany(ctx context.Context, identity *auth.Identity, req models.UpdateCompanyRequest) (*models.Profile, error) {
	if blank(req.CompanyName) && blank(req.Website) && blank(req.Industry) {
		return nil, errx.Validation("at least one of companyName, website or industry is required")
	}

	account, err := s.accounts.Ensure(ctx, identity)
	if err != nil {
		return nil, err
	}

	var updated *models.Profile
	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		profile, err := tx.Profiles().GetByAccountID(ctx, account.ID)
		if err != nil {
			return err
		}
		profile.PatchBrand(req.BrandPatch())
		profile.UpdatedAt = time.Now()
		if err := tx.Profiles().Save(ctx, profile); err != nil {
			return err
		}
		if !blank(req.CompanyName) {
			if err := tx.Accounts().SetCompanyName(ctx, account.ID, profile.Brand().CompanyName); err != nil {
				return err
			}
		}
		updated = profile
		return nil
	})
	if err != nil {
		utils.LogError("❌ failed to update company settings", err, map[string]interface{}{
			"account_id": account.ID.String(),
		})
		return nil, errx.Persistence(err)
	}
	return updated, nil
}

func blank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}
