package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// memoryAccountRepository keeps accounts in a map keyed by email. It is used
// when no DSN is configured and by end-to-end tests.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

// NewMemoryAccountRepository returns an empty in-process [AccountRepository].
func NewMemoryAccountRepository(logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating in-memory account repository")
	return &memoryAccountRepository{
		accounts: make(map[string]models.Account),
	}
}

func (r *memoryAccountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[email]
	if !ok {
		return models.Account{}, ErrNoAccountWasFound
	}

	return account, nil
}

func (r *memoryAccountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Email]; exists {
		return models.Account{}, ErrEmailAlreadyExists
	}
	r.accounts[account.Email] = account

	return account, nil
}
