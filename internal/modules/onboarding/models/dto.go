package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one {role, content} entry of the dialogue sent by the dashboard.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatTurn `json:"messages"`
}

type ChatResponse struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type HistoryMessage struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryResponse carries a nil profile and account id for callers that have
// never chatted.
type HistoryResponse struct {
	Messages  []HistoryMessage `json:"messages"`
	Profile   *Profile         `json:"profile"`
	AccountID *uuid.UUID       `json:"accountId"`
}

type StageProgress struct {
	Stage  Stage       `json:"stage"`
	Status StageStatus `json:"status"`
}

type ProgressResponse struct {
	Stage         Stage           `json:"stage"`
	Completion    int             `json:"completion"`
	Stages        []StageProgress `json:"stages"`
	CompletedAt   *time.Time      `json:"completedAt"`
	LastMessageAt *time.Time      `json:"lastMessageAt"`
}

type UpdateCompanyRequest struct {
	CompanyName *string `json:"companyName"`
	Website     *string `json:"website"`
	Industry    *string `json:"industry"`
}

// BrandPatch converts the request into a brand merge-patch.
func (r UpdateCompanyRequest) BrandPatch() BrandPatch {
	return BrandPatch{
		CompanyName: r.CompanyName,
		Website:     r.Website,
		Industry:    r.Industry,
	}
}

type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	CompanyName *string   `json:"companyName"`
	Tier        string    `json:"tier"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewAccountResponse(a *Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		CompanyName: a.CompanyName,
		Tier:        a.Tier,
		CreatedAt:   a.CreatedAt,
	}
}
