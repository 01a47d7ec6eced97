package llm

import (
	"encoding/json"

	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the dialogue sent to the model
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToolDefinition describes a named operation the model may invoke
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  jsonschema.Definition
}

// ToolCall is an operation invocation returned by the model
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

type CompletionRequest struct {
	System   string
	Messages []Message
	Tools    []ToolDefinition
}

// Completion is a single non-streaming model response. Content may be empty
// when the model only returned tool calls.
type Completion struct {
	Content   string
	ToolCalls []ToolCall
}
