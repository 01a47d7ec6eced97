package models

import "math"

// completionChecks is the denominator: 5 brand fields, 3 business context
// aggregates and 4 voice fields.
const completionChecks = 12

// Completion scores how much of the profile is filled, as a percentage in
// [0,100]. A field counts only when present and, for lists and mappings,
// non-empty.
func Completion(p *Profile) int {
	if p == nil {
		return 0
	}

	brand := p.Brand()
	ctx := p.Context()
	voice := p.Voice()

	checks := []bool{
		brand.CompanyName != "",
		brand.Website != "",
		brand.Industry != "",
		len(brand.Colors) > 0,
		brand.LogoURL != "",

		len(ctx.Products) > 0,
		len(ctx.FAQs) > 0,
		len(ctx.Policies) > 0,

		len(voice.Tone) > 0,
		len(voice.Examples) > 0,
		voice.Greeting != "",
		voice.Signoff != "",
	}

	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}

	return int(math.Round(100 * float64(filled) / completionChecks))
}
