package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kelvinwijaya/kopitiam/pkg/errors"
	"github.com/kelvinwijaya/kopitiam/pkg/status"
)

// Session identifies one anonymous customer for the lifetime of the
// process. There are no accounts; the token is minted server-side.
type Session struct {
	Token     string
	CreatedAt time.Time
}

type contextKey struct{}

func ContextWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromCtx(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(contextKey{}).(Session)
	if !ok {
		return Session{}, errors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "session is not found on the request context")
	}

	return s, nil
}

type Store interface {
	Fetch(ctx context.Context, token string) (Session, error)
	Save(ctx context.Context, s Session) error
}

type inMemoryStore struct {
	logger   *logrus.Logger
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewInMemoryStore(logger *logrus.Logger) Store {
	return &inMemoryStore{
		logger:   logger,
		sessions: make(map[string]Session),
	}
}

// Fetch implements Store.
func (s *inMemoryStore) Fetch(ctx context.Context, token string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return Session{}, errors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "session is not found")
	}

	return sess, nil
}

// Save implements Store.
func (s *inMemoryStore) Save(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.Token] = sess

	return nil
}
