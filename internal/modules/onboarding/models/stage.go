package models

import (
	"errors"
	"time"
)

// Stage is a phase of the onboarding conversation.
type Stage string

const (
	StageBrand    Stage = "brand"
	StageContext  Stage = "context"
	StageVoice    Stage = "voice"
	StageReview   Stage = "review"
	StageComplete Stage = "complete"
)

var (
	ErrUnknownStage       = errors.New("unknown onboarding stage")
	ErrOnboardingComplete = errors.New("onboarding already complete")
)

// stageOrder is the strict linear progression.
var stageOrder = []Stage{StageBrand, StageContext, StageVoice, StageReview, StageComplete}

// ProgressStages are the stages shown as steps on the onboarding screen.
var ProgressStages = []Stage{StageBrand, StageContext, StageVoice, StageReview}

// AllStages returns the stages in order.
func AllStages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Index returns the position of s in the progression, or -1 if s is unknown.
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Stage) Valid() bool {
	return s.Index() >= 0
}

// ParseStage validates a raw stage name.
func ParseStage(raw string) (Stage, error) {
	s := Stage(raw)
	if !s.Valid() {
		return "", ErrUnknownStage
	}
	return s, nil
}

// AdvanceStage sets the profile's stage to target when target is ahead of the
// current stage. Replays and backwards requests are no-ops. Once the profile
// is complete every request is rejected with ErrOnboardingComplete. Reaching
// complete stamps CompletedAt.
func AdvanceStage(p *Profile, target Stage, now time.Time) (bool, error) {
	if !target.Valid() {
		return false, ErrUnknownStage
	}

	current := p.OnboardingStage
	if !current.Valid() {
		current = StageBrand
	}
	if current == StageComplete {
		return false, ErrOnboardingComplete
	}
	if target.Index() <= current.Index() {
		return false, nil
	}

	p.OnboardingStage = target
	if target == StageComplete {
		completedAt := now
		p.CompletedAt = &completedAt
	}
	return true, nil
}

// StageStatus is the display status of a stage relative to the current one.
type StageStatus string

const (
	StageStatusComplete StageStatus = "complete"
	StageStatusCurrent  StageStatus = "current"
	StageStatusPending  StageStatus = "pending"
)

// StageStatusFor reports how stage should be displayed when current is the
// profile's stage.
func StageStatusFor(stage, current Stage) StageStatus {
	si, ci := stage.Index(), current.Index()
	switch {
	case si < ci:
		return StageStatusComplete
	case si == ci:
		return StageStatusCurrent
	default:
		return StageStatusPending
	}
}
