package models

import (
	"strings"

	"gorm.io/datatypes"
)

// BrandPatch is a partial update of BrandData. Nil scalars are left alone;
// colors are appended.
type BrandPatch struct {
	CompanyName *string
	Website     *string
	Industry    *string
	LogoURL     *string
	Colors      []string
}

// IsEmpty reports whether the patch would change nothing.
func (b BrandPatch) IsEmpty() bool {
	return b.CompanyName == nil && b.Website == nil && b.Industry == nil && b.LogoURL == nil && len(b.Colors) == 0
}

// VoicePatch is a partial update of VoicePersonality. List fields are
// appended, greeting and signoff replace.
type VoicePatch struct {
	Tone         []string
	Examples     []string
	WordsToUse   []string
	WordsToAvoid []string
	Greeting     *string
	Signoff      *string
}

func (p *Profile) PatchBrand(patch BrandPatch) {
	brand := p.Brand()
	setIfPresent(&brand.CompanyName, patch.CompanyName)
	setIfPresent(&brand.Website, patch.Website)
	setIfPresent(&brand.Industry, patch.Industry)
	setIfPresent(&brand.LogoURL, patch.LogoURL)
	brand.Colors = appendUnique(brand.Colors, patch.Colors)
	p.BrandData = datatypes.NewJSONType(brand)
}

func (p *Profile) AddProduct(product Product) {
	ctx := p.Context()
	ctx.Products = append(ctx.Products, product)
	p.BusinessContext = datatypes.NewJSONType(ctx)
}

func (p *Profile) AddFAQ(faq FAQ) {
	ctx := p.Context()
	ctx.FAQs = append(ctx.FAQs, faq)
	p.BusinessContext = datatypes.NewJSONType(ctx)
}

// SetPolicy merges one policy into the policies mapping, replacing any text
// already stored under the same type.
func (p *Profile) SetPolicy(policyType, text string) {
	ctx := p.Context()
	if ctx.Policies == nil {
		ctx.Policies = make(map[string]string)
	}
	ctx.Policies[policyType] = text
	p.BusinessContext = datatypes.NewJSONType(ctx)
}

func (p *Profile) PatchVoice(patch VoicePatch) {
	voice := p.Voice()
	voice.Tone = appendUnique(voice.Tone, patch.Tone)
	voice.Examples = appendUnique(voice.Examples, patch.Examples)
	voice.WordsToUse = appendUnique(voice.WordsToUse, patch.WordsToUse)
	voice.WordsToAvoid = appendUnique(voice.WordsToAvoid, patch.WordsToAvoid)
	setIfPresent(&voice.Greeting, patch.Greeting)
	setIfPresent(&voice.Signoff, patch.Signoff)
	p.VoicePersonality = datatypes.NewJSONType(voice)
}

func setIfPresent(dst *string, v *string) {
	if v == nil {
		return
	}
	if trimmed := strings.TrimSpace(*v); trimmed != "" {
		*dst = trimmed
	}
}

// appendUnique appends the non-blank items of add that are not already in
// list. Existing entries are never removed.
func appendUnique(list, add []string) []string {
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		seen[v] = struct{}{}
	}
	for _, v := range add {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		list = append(list, v)
	}
	return list
}
