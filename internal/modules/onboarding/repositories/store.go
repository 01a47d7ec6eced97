package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
)

type AccountRepo interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.Account, error)
	// CreateWithProfile inserts the account and its empty profile atomically.
	// A second insert for the same external id fails with ErrAlreadyExists.
	CreateWithProfile(ctx context.Context, account *models.Account, profile *models.Profile) error
	SetCompanyName(ctx context.Context, accountID uuid.UUID, name string) error
}

type ProfileRepo interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
}

type MessageRepo interface {
	Append(ctx context.Context, msg *models.Message) error
	// ListByAccountID returns at most limit messages, oldest first.
	ListByAccountID(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Message, error)
	// LastMessageAt returns nil when the account has no messages.
	LastMessageAt(ctx context.Context, accountID uuid.UUID) (*time.Time, error)
}

// Store is the handle services receive instead of a global client.
type Store interface {
	Accounts() AccountRepo
	Profiles() ProfileRepo
	Messages() MessageRepo
	// Transaction runs fn against a store whose writes commit together.
	Transaction(ctx context.Context, fn func(tx Store) error) error
	Driver() string
}
