package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role of a chat message author
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// OperationResult records one extraction the model asked for on a turn.
type OperationResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// MessageMetadata is attached to assistant messages that carried extractions.
type MessageMetadata struct {
	FunctionCall string            `json:"function_call,omitempty"`
	Success      *bool             `json:"success,omitempty"`
	Calls        []OperationResult `json:"calls,omitempty"`
}

// Message is one entry of an account's append-only chat log.
type Message struct {
	ID        uuid.UUID                           `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AccountID uuid.UUID                           `gorm:"type:uuid;not null;index:idx_messages_account_created,priority:1" json:"account_id"`
	Role      Role                                `gorm:"type:text;not null" json:"role"`
	Content   string                              `gorm:"type:text;not null" json:"content"`
	Metadata  datatypes.JSONType[MessageMetadata] `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
	CreatedAt time.Time                           `gorm:"index:idx_messages_account_created,priority:2" json:"created_at"`
}

// TableName specifies the table name
func (Message) TableName() string {
	return "messages"
}

// BeforeCreate sets UUID before creating
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// NewMessage builds a message stamped at now.
func NewMessage(accountID uuid.UUID, role Role, content string, now time.Time) *Message {
	return &Message{
		ID:        uuid.New(),
		AccountID: accountID,
		Role:      role,
		Content:   content,
		Metadata:  datatypes.NewJSONType(MessageMetadata{}),
		CreatedAt: now,
	}
}

// MetadataFor summarises the extractions of one turn. FunctionCall names the
// first operation; Success is true only when every operation applied.
func MetadataFor(results []OperationResult) MessageMetadata {
	if len(results) == 0 {
		return MessageMetadata{}
	}
	success := true
	for _, r := range results {
		success = success && r.Success
	}
	return MessageMetadata{
		FunctionCall: results[0].Name,
		Success:      &success,
		Calls:        results,
	}
}

func (m *Message) SetMetadata(meta MessageMetadata) {
	m.Metadata = datatypes.NewJSONType(meta)
}

// Meta returns the decoded metadata.
func (m *Message) Meta() MessageMetadata {
	return m.Metadata.Data()
}
