package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/genai"
)

type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewGeminiProvider(ctx context.Context, cfg *ProviderConfig) (*GeminiProvider, error) {
	model := cfg.Model
	if model == "" || strings.Contains(model, "/") {
		// OpenRouter-style ids ("vendor/model") mean nothing to the Gemini API
		model = "gemini-2.5-flash"
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

func (p *GeminiProvider) GetProviderName() string {
	return "Google Gemini"
}

func (p *GeminiProvider) Complete(ctx context.Context, req *CompletionRequest) (*Completion, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleUser:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		}
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(p.temperature),
		MaxOutputTokens: int32(p.maxTokens),
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if len(req.Tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, 0, len(req.Tools))
		for _, t := range req.Tools {
			params := t.Parameters
			decls = append(decls, &genai.FunctionDeclaration{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  toGenAISchema(&params),
			})
		}
		config.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini error (model: %s): %w", p.model, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response from Gemini (candidates: %d)", len(resp.Candidates))
	}

	out := &Completion{}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		text.WriteString(part.Text)
		if part.FunctionCall != nil {
			args, err := json.Marshal(part.FunctionCall.Args)
			if err != nil {
				return nil, fmt.Errorf("failed to encode function call args: %w", err)
			}
			out.ToolCalls = append(out.ToolCalls, ToolCall{
				ID:        part.FunctionCall.ID,
				Name:      part.FunctionCall.Name,
				Arguments: args,
			})
		}
	}
	out.Content = text.String()

	return out, nil
}

// toGenAISchema converts the JSON schema used for OpenAI tools into the
// Gemini function declaration schema.
func toGenAISchema(def *jsonschema.Definition) *genai.Schema {
	if def == nil {
		return nil
	}

	schema := &genai.Schema{
		Description: def.Description,
		Enum:        def.Enum,
		Required:    def.Required,
	}

	switch def.Type {
	case jsonschema.Object:
		schema.Type = genai.TypeObject
	case jsonschema.Array:
		schema.Type = genai.TypeArray
	case jsonschema.Number:
		schema.Type = genai.TypeNumber
	case jsonschema.Integer:
		schema.Type = genai.TypeInteger
	case jsonschema.Boolean:
		schema.Type = genai.TypeBoolean
	default:
		schema.Type = genai.TypeString
	}

	if len(def.Properties) > 0 {
		schema.Properties = make(map[string]*genai.Schema, len(def.Properties))
		for name, prop := range def.Properties {
			prop := prop
			schema.Properties[name] = toGenAISchema(&prop)
		}
	}
	if def.Items != nil {
		schema.Items = toGenAISchema(def.Items)
	}

	return schema
}
