package extraction

import (
	"time"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
)

// Name identifies an extraction operation the model may call.
type Name string

const (
	SaveBrandInfo   Name = "save_brand_info"
	SaveProduct     Name = "save_product"
	SaveFAQ         Name = "save_faq"
	SavePolicy      Name = "save_policy"
	SaveVoiceTraits Name = "save_voice_traits"
	AdvanceStage    Name = "advance_stage"
)

// Operation is a decoded, validated extraction. The set of implementations
// is closed: one per Name.
type Operation interface {
	Name() Name
	Apply(p *models.Profile, now time.Time) error
}

type BrandInfo struct {
	CompanyName *string  `json:"company_name"`
	Website     *string  `json:"website"`
	Industry    *string  `json:"industry"`
	LogoURL     *string  `json:"logo_url"`
	Colors      []string `json:"colors"`
}

func (BrandInfo) Name() Name { return SaveBrandInfo }

func (o BrandInfo) Apply(p *models.Profile, _ time.Time) error {
	p.PatchBrand(models.BrandPatch{
		CompanyName: o.CompanyName,
		Website:     o.Website,
		Industry:    o.Industry,
		LogoURL:     o.LogoURL,
		Colors:      o.Colors,
	})
	return nil
}

type ProductInfo struct {
	ProductName string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

func (ProductInfo) Name() Name { return SaveProduct }

func (o ProductInfo) Apply(p *models.Profile, _ time.Time) error {
	p.AddProduct(models.Product{
		Name:        o.ProductName,
		Description: o.Description,
		Price:       o.Price,
	})
	return nil
}

type FAQInfo struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (FAQInfo) Name() Name { return SaveFAQ }

func (o FAQInfo) Apply(p *models.Profile, _ time.Time) error {
	p.AddFAQ(models.FAQ{Question: o.Question, Answer: o.Answer})
	return nil
}

type PolicyInfo struct {
	PolicyType string `json:"policy_type"`
	PolicyText string `json:"policy_text"`
}

func (PolicyInfo) Name() Name { return SavePolicy }

func (o PolicyInfo) Apply(p *models.Profile, _ time.Time) error {
	p.SetPolicy(o.PolicyType, o.PolicyText)
	return nil
}

type VoiceTraits struct {
	Tone         []string `json:"tone"`
	Examples     []string `json:"examples"`
	WordsToUse   []string `json:"words_to_use"`
	WordsToAvoid []string `json:"words_to_avoid"`
	Greeting     *string  `json:"greeting"`
	Signoff      *string  `json:"signoff"`
}

func (VoiceTraits) Name() Name { return SaveVoiceTraits }

func (o VoiceTraits) Apply(p *models.Profile, _ time.Time) error {
	p.PatchVoice(models.VoicePatch{
		Tone:         o.Tone,
		Examples:     o.Examples,
		WordsToUse:   o.WordsToUse,
		WordsToAvoid: o.WordsToAvoid,
		Greeting:     o.Greeting,
		Signoff:      o.Signoff,
	})
	return nil
}

type StageAdvance struct {
	Stage string `json:"stage"`
}

func (StageAdvance) Name() Name { return AdvanceStage }

func (o StageAdvance) Apply(p *models.Profile, now time.Time) error {
	stage, err := models.ParseStage(o.Stage)
	if err != nil {
		return err
	}
	_, err = models.AdvanceStage(p, stage, now)
	return err
}
