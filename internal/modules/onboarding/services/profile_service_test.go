package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/repositories"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/errx"
)

func strPtr(s string) *string { return &s }

func TestHistory_UnknownCaller(t *testing.T) {
	env := newTestEnv(repositories.NewMemoryStore(), reply("unused"))

	history, err := env.profiles.History(context.Background(), acme)
	require.NoError(t, err)
	assert.Empty(t, history.Messages)
	assert.NotNil(t, history.Messages, "encodes as an empty list")
	assert.Nil(t, history.Profile)
	assert.Nil(t, history.AccountID)
}

func TestHistory_ReturnsMessagesOldestFirst(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(repositories.NewMemoryStore(), reply("Nice to meet you"))

	_, err := env.chat.HandleTurn(ctx, acme, userTurn("Hi"))
	require.NoError(t, err)

	history, err := env.profiles.History(ctx, acme)
	require.NoError(t, err)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "Hi", history.Messages[0].Content)
	assert.Equal(t, "Nice to meet you", history.Messages[1].Content)
	assert.True(t, history.Messages[0].CreatedAt.Before(history.Messages[1].CreatedAt))
	require.NotNil(t, history.Profile)
	require.NotNil(t, history.AccountID)
	assert.Equal(t, history.Profile.AccountID, *history.AccountID)
}

func TestHistory_RespectsLimit(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	env := newTestEnv(store, reply("ok"))
	env.profiles = NewProfileService(store, env.accounts, 3)

	for i := 0; i < 3; i++ {
		_, err := env.chat.HandleTurn(ctx, acme, userTurn("hello"))
		require.NoError(t, err)
	}

	history, err := env.profiles.History(ctx, acme)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 3)
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	provider := reply("Great!", call("save_brand_info", `{"company_name":"Acme Inc","website":"https://acme.test"}`),
		call("advance_stage", `{"stage":"voice"}`))
	env := newTestEnv(repositories.NewMemoryStore(), provider)

	progress, err := env.profiles.Progress(ctx, acme)
	require.NoError(t, err)
	assert.Equal(t, models.StageBrand, progress.Stage)
	assert.Equal(t, 0, progress.Completion)
	assert.Nil(t, progress.LastMessageAt)

	_, err = env.chat.HandleTurn(ctx, acme, userTurn("Acme Inc, acme.test"))
	require.NoError(t, err)

	progress, err = env.profiles.Progress(ctx, acme)
	require.NoError(t, err)
	assert.Equal(t, models.StageVoice, progress.Stage)
	assert.Equal(t, 17, progress.Completion)
	assert.NotNil(t, progress.LastMessageAt)
	assert.Nil(t, progress.CompletedAt)
	assert.Equal(t, []models.StageProgress{
		{Stage: models.StageBrand, Status: models.StageStatusComplete},
		{Stage: models.StageContext, Status: models.StageStatusComplete},
		{Stage: models.StageVoice, Status: models.StageStatusCurrent},
		{Stage: models.StageReview, Status: models.StageStatusPending},
	}, progress.Stages)
}

func TestUpdateCompany(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(repositories.NewMemoryStore(), reply("unused"))

	profile, err := env.profiles.UpdateCompany(ctx, acme, models.UpdateCompanyRequest{
		CompanyName: strPtr("Acme Inc"),
		Industry:    strPtr("Retail"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", profile.Brand().CompanyName)
	assert.Equal(t, "Retail", profile.Brand().Industry)

	profile, err = env.profiles.UpdateCompany(ctx, acme, models.UpdateCompanyRequest{Website: strPtr("https://acme.test")})
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", profile.Brand().CompanyName, "merge keeps earlier fields")
	assert.Equal(t, "https://acme.test", profile.Brand().Website)

	account, err := env.accounts.Lookup(ctx, acme)
	require.NoError(t, err)
	require.NotNil(t, account.CompanyName)
	assert.Equal(t, "Acme Inc", *account.CompanyName)
}

func TestUpdateCompany_RequiresAField(t *testing.T) {
	env := newTestEnv(repositories.NewMemoryStore(), reply("unused"))

	_, err := env.profiles.UpdateCompany(context.Background(), acme, models.UpdateCompanyRequest{Website: strPtr("  ")})
	assert.True(t, errx.IsKind(err, errx.KindValidation))
}

func TestBuildSystemPrompt(t *testing.T) {
	p := models.NewProfile(uuid.New())
	prompt := BuildSystemPrompt(p)
	assert.Contains(t, prompt, "CURRENT STAGE: brand")
	assert.Contains(t, prompt, "Start by asking for the company name")

	p.OnboardingStage = models.StageComplete
	prompt = BuildSystemPrompt(p)
	assert.Contains(t, prompt, "Onboarding is complete")
	assert.NotContains(t, prompt, "Start by asking")
}
