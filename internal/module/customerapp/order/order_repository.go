package order

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type OrderRepository interface {
	Save(ctx context.Context, token string, o Order) error
	FindManyBySession(ctx context.Context, token string) ([]Order, error)
}

type orderRepository struct {
	logger *logrus.Logger
	mu     sync.RWMutex
	orders map[string][]Order
}

func NewOrderRepository(logger *logrus.Logger) OrderRepository {
	return &orderRepository{
		logger: logger,
		orders: make(map[string][]Order),
	}
}

// Save implements OrderRepository.
func (r *orderRepository) Save(ctx context.Context, token string, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[token] = append(r.orders[token], o)

	return nil
}

// FindManyBySession implements OrderRepository.
func (r *orderRepository) FindManyBySession(ctx context.Context, token string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := r.orders[token]

	data := make([]Order, len(orders))
	copy(data, orders)

	return data, nil
}
