package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// CartRepository keeps each session's ordered cart lines. An unknown
// session simply has an empty cart.
type CartRepository interface {
	FindBySession(ctx context.Context, token string) ([]CartItem, error)
	Save(ctx context.Context, token string, lines []CartItem) error
	Clear(ctx context.Context, token string) error
}

type cartRepository struct {
	logger *logrus.Logger
	mu     sync.RWMutex
	carts  map[string][]CartItem
}

func NewCartRepository(logger *logrus.Logger) CartRepository {
	return &cartRepository{
		logger: logger,
		carts:  make(map[string][]CartItem),
	}
}

// FindBySession implements CartRepository.
func (r *cartRepository) FindBySession(ctx context.Context, token string) ([]CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := r.carts[token]

	data := make([]CartItem, len(lines))
	copy(data, lines)

	return data, nil
}

// Save implements CartRepository.
func (r *cartRepository) Save(ctx context.Context, token string, lines []CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]CartItem, len(lines))
	copy(data, lines)
	r.carts[token] = data

	return nil
}

// Clear implements CartRepository.
func (r *cartRepository) Clear(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, token)

	return nil
}
