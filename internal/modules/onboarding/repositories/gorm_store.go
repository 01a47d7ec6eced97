package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by Postgres through GORM.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Accounts() AccountRepo { return &accountRepo{db: s.db} }
func (s *gormStore) Profiles() ProfileRepo { return &profileRepo{db: s.db} }
func (s *gormStore) Messages() MessageRepo { return &messageRepo{db: s.db} }
func (s *gormStore) Driver() string        { return "postgres" }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

type accountRepo struct {
	db *gorm.DB
}

func (r *accountRepo) GetByExternalID(ctx context.Context, externalID string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&account).Error
	if err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (r *accountRepo) CreateWithProfile(ctx context.Context, account *models.Account, profile *models.Profile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		profile.AccountID = account.ID
		return tx.Create(profile).Error
	})
	return translate(err)
}

func (r *accountRepo) SetCompanyName(ctx context.Context, accountID uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("company_name", name)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type profileRepo struct {
	db *gorm.DB
}

func (r *profileRepo) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// Save writes the three sub-objects and the stage columns of an existing profile.
func (r *profileRepo) Save(ctx context.Context, profile *models.Profile) error {
	result := r.db.WithContext(ctx).Model(profile).
		Select("brand_data", "business_context", "voice_personality", "onboarding_stage", "completed_at", "updated_at").
		Updates(profile)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type messageRepo struct {
	db *gorm.DB
}

func (r *messageRepo) Append(ctx context.Context, msg *models.Message) error {
	return translate(r.db.WithContext(ctx).Create(msg).Error)
}

func (r *messageRepo) ListByAccountID(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Message, error) {
	var messages []models.Message
	query := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&messages).Error; err != nil {
		return nil, translate(err)
	}
	return messages, nil
}

func (r *messageRepo) LastMessageAt(ctx context.Context, accountID uuid.UUID) (*time.Time, error) {
	var last models.Message
	err := r.db.WithContext(ctx).
		Select("created_at").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &last.CreatedAt, nil
}
