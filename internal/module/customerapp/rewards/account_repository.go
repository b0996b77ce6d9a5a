package rewards

import (
	"context"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/kelvinwijaya/kopitiam/pkg/errors"
	"github.com/kelvinwijaya/kopitiam/pkg/status"
)

type AccountRepository interface {
	FindByToken(ctx context.Context, token string) (Account, error)
	Save(ctx context.Context, token string, account Account) error
}

type accountRepository struct {
	logger   *logrus.Logger
	mu       sync.RWMutex
	accounts map[string]Account
}

func NewAccountRepository(logger *logrus.Logger) AccountRepository {
	return &accountRepository{
		logger:   logger,
		accounts: make(map[string]Account),
	}
}

// FindByToken implements AccountRepository.
func (r *accountRepository) FindByToken(ctx context.Context, token string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[token]
	if !ok {
		return Account{}, errors.New(http.StatusNotFound, status.NOT_FOUND, "rewards account is not found for the session")
	}

	return account, nil
}

// Save implements AccountRepository.
func (r *accountRepository) Save(ctx context.Context, token string, account Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[token] = account

	return nil
}
