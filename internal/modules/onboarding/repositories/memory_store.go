package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
)

type memoryData struct {
	accounts   map[uuid.UUID]models.Account
	byExternal map[string]uuid.UUID
	profiles   map[uuid.UUID]*models.Profile // keyed by account id
	messages   []models.Message
}

func (d *memoryData) clone() *memoryData {
	out := &memoryData{
		accounts:   make(map[uuid.UUID]models.Account, len(d.accounts)),
		byExternal: make(map[string]uuid.UUID, len(d.byExternal)),
		profiles:   make(map[uuid.UUID]*models.Profile, len(d.profiles)),
		messages:   append([]models.Message(nil), d.messages...),
	}
	for k, v := range d.accounts {
		out.accounts[k] = v
	}
	for k, v := range d.byExternal {
		out.byExternal[k] = v
	}
	for k, v := range d.profiles {
		out.profiles[k] = v.Clone()
	}
	return out
}

type memoryStore struct {
	mu   *sync.Mutex
	data *memoryData
}

// NewMemoryStore returns a process-local Store. It enforces the same unique
// external id as the accounts table and is used for tests and STORE_DRIVER=memory.
func NewMemoryStore() Store {
	return &memoryStore{
		mu: &sync.Mutex{},
		data: &memoryData{
			accounts:   make(map[uuid.UUID]models.Account),
			byExternal: make(map[string]uuid.UUID),
			profiles:   make(map[uuid.UUID]*models.Profile),
		},
	}
}

func (s *memoryStore) Accounts() AccountRepo { return memAccounts{s} }
func (s *memoryStore) Profiles() ProfileRepo { return memProfiles{s} }
func (s *memoryStore) Messages() MessageRepo { return memMessages{s} }
func (s *memoryStore) Driver() string        { return "memory" }

// Transaction stages writes on a copy and swaps it in only when fn succeeds.
// Other callers block until the transaction finishes.
func (s *memoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.data.clone()
	if err := fn(&memoryStore{mu: &sync.Mutex{}, data: staged}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	*s.data = *staged
	return nil
}

type memAccounts struct{ s *memoryStore }

func (r memAccounts) GetByExternalID(ctx context.Context, externalID string) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.data.byExternal[externalID]
	if !ok {
		return nil, ErrNotFound
	}
	account := r.s.data.accounts[id]
	return &account, nil
}

func (r memAccounts) CreateWithProfile(ctx context.Context, account *models.Account, profile *models.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.byExternal[account.ExternalID]; ok {
		return ErrAlreadyExists
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.Tier == "" {
		account.Tier = models.TierStarter
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profile.AccountID = account.ID
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = account.CreatedAt
		profile.UpdatedAt = account.CreatedAt
	}

	r.s.data.accounts[account.ID] = *account
	r.s.data.byExternal[account.ExternalID] = account.ID
	r.s.data.profiles[account.ID] = profile.Clone()
	return nil
}

func (r memAccounts) SetCompanyName(ctx context.Context, accountID uuid.UUID, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.data.accounts[accountID]
	if !ok {
		return ErrNotFound
	}
	account.CompanyName = &name
	r.s.data.accounts[accountID] = account
	return nil
}

type memProfiles struct{ s *memoryStore }

func (r memProfiles) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.data.profiles[accountID]
	if !ok {
		return nil, ErrNotFound
	}
	return profile.Clone(), nil
}

func (r memProfiles) Save(ctx context.Context, profile *models.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.profiles[profile.AccountID]; !ok {
		return ErrNotFound
	}
	profile.UpdatedAt = time.Now()
	r.s.data.profiles[profile.AccountID] = profile.Clone()
	return nil
}

type memMessages struct{ s *memoryStore }

func (r memMessages) Append(ctx context.Context, msg *models.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.accounts[msg.AccountID]; !ok {
		return ErrNotFound
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	r.s.data.messages = append(r.s.data.messages, *msg)
	return nil
}

func (r memMessages) ListByAccountID(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Message
	for _, m := range r.s.data.messages {
		if m.AccountID == accountID {
			out = append(out, m)
		}
	}
	// stable keeps arrival order for equal timestamps
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memMessages) LastMessageAt(ctx context.Context, accountID uuid.UUID) (*time.Time, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var last *time.Time
	for _, m := range r.s.data.messages {
		if m.AccountID != accountID {
			continue
		}
		if last == nil || m.CreatedAt.After(*last) {
			createdAt := m.CreatedAt
			last = &createdAt
		}
	}
	return last, nil
}
