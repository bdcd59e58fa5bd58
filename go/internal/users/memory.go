package users

import (
	"context"
	"sync"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
)

// MemoryRepository is the in-memory account store used in dev mode and
// tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account // keyed by user id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]Account)}
}

func (r *MemoryRepository) CreateAccount(_ context.Context, account Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.User.ID]; ok {
		return nil, apierror.Newf(apierror.KindValidation, "account with id %s already exists", account.User.ID)
	}
	r.accounts[account.User.ID] = account
	return &account, nil
}

func (r *MemoryRepository) GetAccountByUsername(_ context.Context, username string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.User.Username == username {
			return &a, nil
		}
	}
	return nil, errAccountNotFound
}

func (r *MemoryRepository) GetAccountByEmail(_ context.Context, email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.User.Email == email {
			return &a, nil
		}
	}
	return nil, errAccountNotFound
}
