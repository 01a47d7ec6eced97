package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
)

func createAccount(t *testing.T, store Store, externalID string) *models.Account {
	t.Helper()
	account := &models.Account{ExternalID: externalID, Tier: models.TierStarter}
	require.NoError(t, store.Accounts().CreateWithProfile(context.Background(), account, models.NewProfile(uuid.Nil)))
	return account
}

func TestMemoryStore_CreateWithProfile(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	account := createAccount(t, store, "user_1")
	assert.NotEqual(t, uuid.Nil, account.ID)

	got, err := store.Accounts().GetByExternalID(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)

	profile, err := store.Profiles().GetByAccountID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageBrand, profile.OnboardingStage)
	assert.Equal(t, account.ID, profile.AccountID)
}

func TestMemoryStore_DuplicateExternalID(t *testing.T) {
	store := NewMemoryStore()
	createAccount(t, store, "user_1")

	err := store.Accounts().CreateWithProfile(context.Background(),
		&models.Account{ExternalID: "user_1"}, models.NewProfile(uuid.Nil))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestMemoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Accounts().GetByExternalID(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Profiles().GetByAccountID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Messages().Append(ctx, models.NewMessage(uuid.New(), models.RoleUser, "hi", time.Now()))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ProfileReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	account := createAccount(t, store, "user_1")

	profile, err := store.Profiles().GetByAccountID(ctx, account.ID)
	require.NoError(t, err)
	profile.AddFAQ(models.FAQ{Question: "q", Answer: "a"})

	again, err := store.Profiles().GetByAccountID(ctx, account.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Context().FAQs, "unsaved changes must not leak")

	require.NoError(t, store.Profiles().Save(ctx, profile))
	again, err = store.Profiles().GetByAccountID(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, again.Context().FAQs, 1)
}

func TestMemoryStore_MessagesOrderedAndLimited(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	account := createAccount(t, store, "user_1")
	other := createAccount(t, store, "user_2")

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Messages().Append(ctx, models.NewMessage(account.ID, models.RoleUser, "second", base.Add(time.Second))))
	require.NoError(t, store.Messages().Append(ctx, models.NewMessage(account.ID, models.RoleUser, "first", base)))
	require.NoError(t, store.Messages().Append(ctx, models.NewMessage(account.ID, models.RoleAssistant, "third", base.Add(2*time.Second))))
	require.NoError(t, store.Messages().Append(ctx, models.NewMessage(other.ID, models.RoleUser, "elsewhere", base)))

	msgs, err := store.Messages().ListByAccountID(ctx, account.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
	assert.Equal(t, "third", msgs[2].Content)

	msgs, err = store.Messages().ListByAccountID(ctx, account.ID, 2)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	last, err := store.Messages().LastMessageAt(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, base.Add(2*time.Second), *last)

	none, err := store.Messages().LastMessageAt(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestMemoryStore_TransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	account := createAccount(t, store, "user_1")
	boom := errors.New("boom")

	err := store.Transaction(ctx, func(tx Store) error {
		require.NoError(t, tx.Messages().Append(ctx, models.NewMessage(account.ID, models.RoleAssistant, "lost", time.Now())))
		require.NoError(t, tx.Accounts().SetCompanyName(ctx, account.ID, "Acme"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	msgs, err := store.Messages().ListByAccountID(ctx, account.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)
	got, err := store.Accounts().GetByExternalID(ctx, "user_1")
	require.NoError(t, err)
	assert.Nil(t, got.CompanyName)
}

func TestMemoryStore_TransactionCommits(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	account := createAccount(t, store, "user_1")

	err := store.Transaction(ctx, func(tx Store) error {
		if err := tx.Accounts().SetCompanyName(ctx, account.ID, "Acme"); err != nil {
			return err
		}
		return tx.Messages().Append(ctx, models.NewMessage(account.ID, models.RoleAssistant, "kept", time.Now()))
	})
	require.NoError(t, err)

	msgs, err := store.Messages().ListByAccountID(ctx, account.ID, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	got, err := store.Accounts().GetByExternalID(ctx, "user_1")
	require.NoError(t, err)
	require.NotNil(t, got.CompanyName)
	assert.Equal(t, "Acme", *got.CompanyName)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(fmt.Errorf("query: %w", gorm.ErrRecordNotFound)), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)), ErrAlreadyExists)
	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
}
