package services

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/repositories"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/errx"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/utils"
)

type AccountService struct {
	store repositories.Store
	group singleflight.Group
}

func NewAccountService(store repositories.Store) *AccountService {
	return &AccountService{store: store}
}

// Ensure returns the caller's account, creating it together with an empty
// profile on first contact. Concurrent first requests in this process share
// one lookup; a duplicate insert from another process is resolved by
// re-reading the row that won.
func (s *AccountService) Ensure(ctx context.Context, identity *auth.Identity) (*models.Account, error) {
	v, err, _ := s.group.Do(identity.Subject, func() (interface{}, error) {
		return s.ensure(ctx, identity)
	})
	if err != nil {
		return nil, err
	}
	account := *v.(*models.Account)
	return &account, nil
}

func (s *AccountService) ensure(ctx context.Context, identity *auth.Identity) (*models.Account, error) {
	account, err := s.store.Accounts().GetByExternalID(ctx, identity.Subject)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, errx.Persistence(err)
	}

	account = &models.Account{
		ExternalID: identity.Subject,
		Email:      identity.Email,
		Tier:       models.TierStarter,
	}
	err = s.store.Accounts().CreateWithProfile(ctx, account, models.NewProfile(account.ID))
	switch {
	case err == nil:
		utils.LogInfo("✅ account created", map[string]interface{}{
			"account_id":  account.ID.String(),
			"external_id": identity.Subject,
		})
		return account, nil
	case errors.Is(err, repositories.ErrAlreadyExists):
		account, err = s.store.Accounts().GetByExternalID(ctx, identity.Subject)
		if err != nil {
			return nil, errx.Persistence(err)
		}
		return account, nil
	default:
		return nil, errx.Persistence(err)
	}
}

// Lookup returns the caller's account, or nil when they have never been seen.
func (s *AccountService) Lookup(ctx context.Context, identity *auth.Identity) (*models.Account, error) {
	account, err := s.store.Accounts().GetByExternalID(ctx, identity.Subject)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errx.Persistence(err)
	}
	return account, nil
}
