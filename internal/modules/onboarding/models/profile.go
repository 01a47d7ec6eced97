package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BrandData is the brand sub-object of a profile
type BrandData struct {
	CompanyName string   `json:"company_name,omitempty"`
	Website     string   `json:"website,omitempty"`
	Industry    string   `json:"industry,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	LogoURL     string   `json:"logo_url,omitempty"`
}

type Product struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BusinessContext holds what the agent needs to know about the business
type BusinessContext struct {
	Products []Product         `json:"products,omitempty"`
	FAQs     []FAQ             `json:"faqs,omitempty"`
	Policies map[string]string `json:"policies,omitempty"`
}

// VoicePersonality describes how the agent should sound
type VoicePersonality struct {
	Tone         []string `json:"tone,omitempty"`
	Examples     []string `json:"examples,omitempty"`
	WordsToUse   []string `json:"words_to_use,omitempty"`
	WordsToAvoid []string `json:"words_to_avoid,omitempty"`
	Greeting     string   `json:"greeting,omitempty"`
	Signoff      string   `json:"signoff,omitempty"`
}

// Profile is the record built up through the onboarding chat. Exactly one per account.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"account_id"`

	BrandData        datatypes.JSONType[BrandData]        `gorm:"type:jsonb;not null;default:'{}'" json:"brand_data"`
	BusinessContext  datatypes.JSONType[BusinessContext]  `gorm:"type:jsonb;not null;default:'{}'" json:"business_context"`
	VoicePersonality datatypes.JSONType[VoicePersonality] `gorm:"type:jsonb;not null;default:'{}'" json:"voice_personality"`

	OnboardingStage Stage      `gorm:"type:text;not null;default:'brand'" json:"onboarding_stage"`
	CompletedAt     *time.Time `json:"completed_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate sets UUID before creating
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// NewProfile returns the empty profile every account starts with.
func NewProfile(accountID uuid.UUID) *Profile {
	return &Profile{
		ID:               uuid.New(),
		AccountID:        accountID,
		BrandData:        datatypes.NewJSONType(BrandData{}),
		BusinessContext:  datatypes.NewJSONType(BusinessContext{}),
		VoicePersonality: datatypes.NewJSONType(VoicePersonality{}),
		OnboardingStage:  StageBrand,
	}
}

func (p *Profile) Brand() BrandData {
	return p.BrandData.Data()
}

func (p *Profile) Context() BusinessContext {
	return p.BusinessContext.Data()
}

func (p *Profile) Voice() VoicePersonality {
	return p.VoicePersonality.Data()
}

// Clone returns a deep copy so callers can patch without touching the original.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := *p

	brand := p.Brand()
	brand.Colors = cloneStrings(brand.Colors)
	out.BrandData = datatypes.NewJSONType(brand)

	ctx := p.Context()
	ctx.Products = append([]Product(nil), ctx.Products...)
	ctx.FAQs = append([]FAQ(nil), ctx.FAQs...)
	if ctx.Policies != nil {
		policies := make(map[string]string, len(ctx.Policies))
		for k, v := range ctx.Policies {
			policies[k] = v
		}
		ctx.Policies = policies
	}
	out.BusinessContext = datatypes.NewJSONType(ctx)

	voice := p.Voice()
	voice.Tone = cloneStrings(voice.Tone)
	voice.Examples = cloneStrings(voice.Examples)
	voice.WordsToUse = cloneStrings(voice.WordsToUse)
	voice.WordsToAvoid = cloneStrings(voice.WordsToAvoid)
	out.VoicePersonality = datatypes.NewJSONType(voice)

	if p.CompletedAt != nil {
		completedAt := *p.CompletedAt
		out.CompletedAt = &completedAt
	}
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
