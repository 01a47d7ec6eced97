package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
)

type profileSnapshot struct {
	BrandData        models.BrandData        `json:"brand_data"`
	BusinessContext  models.BusinessContext  `json:"business_context"`
	VoicePersonality models.VoicePersonality `json:"voice_personality"`
}

// BuildSystemPrompt builds the onboarding instruction for the profile's
// current stage, embedding what has already been collected.
func BuildSystemPrompt(p *models.Profile) string {
	var sb strings.Builder

	sb.WriteString("You are an expert onboarding specialist helping clients set up their AI agent for their business.\n\n")
	sb.WriteString("Your goal is to gather information through natural conversation, not static forms. ")
	sb.WriteString("Make it feel like talking to a helpful consultant.\n\n")

	sb.WriteString("STAGES TO COMPLETE:\n")
	sb.WriteString("1. brand - Company name, website, industry, brand colors, logo\n")
	sb.WriteString("2. context - Products/services, FAQs, policies\n")
	sb.WriteString("3. voice - Tone, sample messages, words to use/avoid, greeting, sign-off\n")
	sb.WriteString("4. review - Show summary, get approval\n\n")

	sb.WriteString(fmt.Sprintf("CURRENT STAGE: %s\n", p.OnboardingStage))
	sb.WriteString(fmt.Sprintf("PROFILE COMPLETION: %d%%\n\n", models.Completion(p)))

	snapshot, err := json.MarshalIndent(profileSnapshot{
		BrandData:        p.Brand(),
		BusinessContext:  p.Context(),
		VoicePersonality: p.Voice(),
	}, "", "  ")
	if err == nil {
		sb.WriteString("=== COLLECTED SO FAR ===\n")
		sb.Write(snapshot)
		sb.WriteString("\n\n")
	}

	sb.WriteString("CONVERSATION GUIDELINES:\n")
	sb.WriteString("- Ask ONE question at a time\n")
	sb.WriteString("- Never ask again for information already collected above\n")
	sb.WriteString("- Keep it conversational and friendly\n")
	sb.WriteString("- Celebrate small wins: \"Great!\" \"Got it!\" \"Perfect!\"\n")
	sb.WriteString("- Whenever the client shares information, call the matching save_* function\n")
	sb.WriteString("- Call advance_stage once the current stage has enough information\n")

	if p.OnboardingStage == models.StageComplete {
		sb.WriteString("\nOnboarding is complete. Answer questions about the collected profile but do not change the stage.\n")
	} else if models.Completion(p) == 0 {
		sb.WriteString("\nStart by asking for the company name if this is a new conversation.\n")
	}

	return sb.String()
}
