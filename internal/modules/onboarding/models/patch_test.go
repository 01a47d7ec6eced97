package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPatchBrand_MergesScalarsAndAppendsColors(t *testing.T) {
	p := NewProfile(uuid.New())
	p.PatchBrand(BrandPatch{CompanyName: strPtr("Acme Inc"), Colors: []string{"red"}})
	p.PatchBrand(BrandPatch{Website: strPtr("https://acme.test"), Colors: []string{"blue", "red"}})

	brand := p.Brand()
	assert.Equal(t, "Acme Inc", brand.CompanyName, "absent fields are left alone")
	assert.Equal(t, "https://acme.test", brand.Website)
	assert.Equal(t, []string{"red", "blue"}, brand.Colors)
}

func TestAddProduct_AppendsToList(t *testing.T) {
	p := NewProfile(uuid.New())
	p.AddProduct(Product{Name: "Widget", Description: "A thing"})

	assert.Equal(t, []Product{{Name: "Widget", Description: "A thing"}}, p.Context().Products)

	price := 9.5
	p.AddProduct(Product{Name: "Gadget", Description: "Another", Price: &price})
	assert.Len(t, p.Context().Products, 2)
	assert.Equal(t, "Widget", p.Context().Products[0].Name)
}

func TestSetPolicy_KeyMerges(t *testing.T) {
	p := NewProfile(uuid.New())
	p.SetPolicy("refund", "14 days")
	p.SetPolicy("shipping", "2 days")
	p.SetPolicy("refund", "30 days")

	assert.Equal(t, map[string]string{"refund": "30 days", "shipping": "2 days"}, p.Context().Policies)
}

func TestPatchVoice(t *testing.T) {
	p := NewProfile(uuid.New())
	p.PatchVoice(VoicePatch{Tone: []string{"friendly"}, Greeting: strPtr("Hi")})
	p.PatchVoice(VoicePatch{Tone: []string{"witty", "friendly"}, Signoff: strPtr("Bye")})

	voice := p.Voice()
	assert.Equal(t, []string{"friendly", "witty"}, voice.Tone)
	assert.Equal(t, "Hi", voice.Greeting)
	assert.Equal(t, "Bye", voice.Signoff)
}

func TestClone_IsDeep(t *testing.T) {
	p := NewProfile(uuid.New())
	p.PatchBrand(BrandPatch{Colors: []string{"red"}})
	p.SetPolicy("refund", "30 days")

	c := p.Clone()
	c.PatchBrand(BrandPatch{Colors: []string{"blue"}})
	c.SetPolicy("refund", "none")

	assert.Equal(t, []string{"red"}, p.Brand().Colors)
	assert.Equal(t, "30 days", p.Context().Policies["refund"])
}

func TestMetadataFor(t *testing.T) {
	assert.Equal(t, MessageMetadata{}, MetadataFor(nil))

	meta := MetadataFor([]OperationResult{
		{Name: "save_brand_info", Success: true},
		{Name: "save_product", Success: false, Error: "missing"},
	})
	assert.Equal(t, "save_brand_info", meta.FunctionCall)
	if assert.NotNil(t, meta.Success) {
		assert.False(t, *meta.Success)
	}
	assert.Len(t, meta.Calls, 2)
}
