package extraction

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
)

var (
	ErrUnknownOperation = errors.New("unknown extraction operation")
	ErrMissingArgument  = errors.New("missing required argument")
	ErrInvalidArguments = errors.New("invalid extraction arguments")
)

type spec struct {
	description string
	properties  map[string]jsonschema.Definition
	required    []string
	decode      func(json.RawMessage) (Operation, error)
}

var (
	str      = jsonschema.Definition{Type: jsonschema.String}
	strList  = jsonschema.Definition{Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}}
	stageIDs = func() []string {
		out := make([]string, 0, len(models.AllStages()))
		for _, s := range models.AllStages() {
			out = append(out, string(s))
		}
		return out
	}()
)

// order fixes the sequence in which operations are offered to the model.
var order = []Name{SaveBrandInfo, SaveProduct, SaveFAQ, SavePolicy, SaveVoiceTraits, AdvanceStage}

var registry = map[Name]spec{
	SaveBrandInfo: {
		description: "Save brand details the client shared: company name, website, industry, brand colors, logo URL.",
		properties: map[string]jsonschema.Definition{
			"company_name": describe(str, "Company or brand name"),
			"website":      describe(str, "Company website URL"),
			"industry":     describe(str, "Industry the business operates in"),
			"colors":       describe(strList, "Brand colors, e.g. hex codes or names"),
			"logo_url":     describe(str, "URL of the company logo"),
		},
		decode: decodeAs[BrandInfo],
	},
	SaveProduct: {
		description: "Save one product or service the business offers.",
		properties: map[string]jsonschema.Definition{
			"name":        describe(str, "Product or service name"),
			"description": describe(str, "Short description"),
			"price":       {Type: jsonschema.Number, Description: "Price, when the client mentioned one"},
		},
		required: []string{"name", "description"},
		decode:   decodeAs[ProductInfo],
	},
	SaveFAQ: {
		description: "Save a frequently asked question and its answer.",
		properties: map[string]jsonschema.Definition{
			"question": describe(str, "The customer question"),
			"answer":   describe(str, "The answer the agent should give"),
		},
		required: []string{"question", "answer"},
		decode:   decodeAs[FAQInfo],
	},
	SavePolicy: {
		description: "Save a business policy such as refunds, shipping or support hours.",
		properties: map[string]jsonschema.Definition{
			"policy_type": describe(str, "Policy key, e.g. refund, shipping, support_hours"),
			"policy_text": describe(str, "Full policy text"),
		},
		required: []string{"policy_type", "policy_text"},
		decode:   decodeAs[PolicyInfo],
	},
	SaveVoiceTraits: {
		description: "Save how the agent should sound: tone, example messages, words to use or avoid, greeting, sign-off.",
		properties: map[string]jsonschema.Definition{
			"tone":           describe(strList, "Tone adjectives, e.g. friendly, professional"),
			"examples":       describe(strList, "Example messages in the brand voice"),
			"words_to_use":   describe(strList, "Preferred words or phrases"),
			"words_to_avoid": describe(strList, "Words or phrases to avoid"),
			"greeting":       describe(str, "Standard greeting"),
			"signoff":        describe(str, "Standard sign-off"),
		},
		decode: decodeAs[VoiceTraits],
	},
	AdvanceStage: {
		description: "Move onboarding to the next stage once the current stage has enough information.",
		properties: map[string]jsonschema.Definition{
			"stage": {Type: jsonschema.String, Enum: stageIDs, Description: "Stage to move to"},
		},
		decode: decodeAs[StageAdvance],
	},
}

func describe(def jsonschema.Definition, description string) jsonschema.Definition {
	def.Description = description
	return def
}

func decodeAs[T Operation](raw json.RawMessage) (Operation, error) {
	var op T
	if err := json.Unmarshal(raw, &op); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return op, nil
}

// Definitions returns the operation library offered to the model.
func Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(order))
	for _, name := range order {
		s := registry[name]
		defs = append(defs, llm.ToolDefinition{
			Name:        string(name),
			Description: s.description,
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: s.properties,
				Required:   s.required,
			},
		})
	}
	return defs
}

// RequiredArguments lists the arguments an operation cannot do without.
func RequiredArguments(name Name) []string {
	return append([]string(nil), registry[name].required...)
}

// Decode looks up the named operation, checks its required arguments and
// decodes args into the typed operation.
func Decode(name string, args json.RawMessage) (Operation, error) {
	s, ok := registry[Name(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	var fields map[string]any
	if err := json.Unmarshal(args, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	for _, key := range s.required {
		v, ok := fields[key].(string)
		if !ok || strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("%w: %s requires %s", ErrMissingArgument, name, key)
		}
	}

	return s.decode(args)
}
