package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceStage(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		current   Stage
		target    Stage
		wantStage Stage
		changed   bool
		wantErr   error
	}{
		{name: "forward one", current: StageBrand, target: StageContext, wantStage: StageContext, changed: true},
		{name: "forward skipping", current: StageBrand, target: StageReview, wantStage: StageReview, changed: true},
		{name: "same stage is a no-op", current: StageVoice, target: StageVoice, wantStage: StageVoice},
		{name: "backwards is a no-op", current: StageVoice, target: StageBrand, wantStage: StageVoice},
		{name: "unknown target", current: StageBrand, target: Stage("done"), wantStage: StageBrand, wantErr: ErrUnknownStage},
		{name: "complete is terminal", current: StageComplete, target: StageComplete, wantStage: StageComplete, wantErr: ErrOnboardingComplete},
		{name: "complete rejects earlier stages", current: StageComplete, target: StageBrand, wantStage: StageComplete, wantErr: ErrOnboardingComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfile(uuid.New())
			p.OnboardingStage = tt.current

			changed, err := AdvanceStage(p, tt.target, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.wantStage, p.OnboardingStage)
		})
	}
}

func TestAdvanceStage_ReplayIsIdempotent(t *testing.T) {
	p := NewProfile(uuid.New())
	now := time.Now()

	changed, err := AdvanceStage(p, StageContext, now)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = AdvanceStage(p, StageContext, now)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, StageContext, p.OnboardingStage)
}

func TestAdvanceStage_CompleteStampsCompletedAt(t *testing.T) {
	p := NewProfile(uuid.New())
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	_, err := AdvanceStage(p, StageReview, now)
	require.NoError(t, err)
	assert.Nil(t, p.CompletedAt)

	_, err = AdvanceStage(p, StageComplete, now)
	require.NoError(t, err)
	require.NotNil(t, p.CompletedAt)
	assert.Equal(t, now, *p.CompletedAt)

	_, err = AdvanceStage(p, StageComplete, now.Add(time.Hour))
	require.ErrorIs(t, err, ErrOnboardingComplete)
	assert.Equal(t, now, *p.CompletedAt)
}

func TestStageStatusFor(t *testing.T) {
	assert.Equal(t, StageStatusComplete, StageStatusFor(StageBrand, StageVoice))
	assert.Equal(t, StageStatusCurrent, StageStatusFor(StageVoice, StageVoice))
	assert.Equal(t, StageStatusPending, StageStatusFor(StageReview, StageVoice))
	assert.Equal(t, StageStatusComplete, StageStatusFor(StageReview, StageComplete))
}

func TestParseStage(t *testing.T) {
	s, err := ParseStage("voice")
	require.NoError(t, err)
	assert.Equal(t, StageVoice, s)

	_, err = ParseStage("Voice")
	assert.ErrorIs(t, err, ErrUnknownStage)
}
