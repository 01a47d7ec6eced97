package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TierStarter    = "starter"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

// Account is a business identity registered with the portal. One per
// identity-provider subject, created lazily on first contact.
type Account struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ExternalID  string    `gorm:"type:text;not null;uniqueIndex" json:"external_id"`
	Email       string    `gorm:"type:text" json:"email"`
	CompanyName *string   `gorm:"type:text" json:"company_name"`
	Tier        string    `gorm:"type:text;not null;default:'starter'" json:"tier"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate sets UUID before creating
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
