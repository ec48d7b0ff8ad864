package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/auth"
)

type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*auth.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*auth.Account)}
}

func (r *AccountRepository) Seed(accounts ...*auth.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acc := range accounts {
		r.accounts[acc.ID] = acc
	}
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*auth.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[id]
	if !ok || acc.DeletedAt != nil {
		return nil, auth.ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*auth.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, acc := range r.accounts {
		if acc.DeletedAt == nil && strings.EqualFold(acc.Email, email) {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, auth.ErrAccountNotFound
}

func (r *AccountRepository) Create(ctx context.Context, acc *auth.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *acc
	r.accounts[acc.ID] = &cp
	return nil
}

func (r *AccountRepository) UpdateLastLogin(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[id]
	if !ok || acc.DeletedAt != nil {
		return auth.ErrAccountNotFound
	}
	now := time.Now()
	acc.LastLoginAt = &now
	return nil
}
