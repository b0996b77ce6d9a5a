package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/rewards"
	"github.com/kelvinwijaya/kopitiam/internal/pkg/session"
)

const SessionTokenHeader = "X-Session-Token"

// AccountSeed is the rewards account a fresh session starts with.
type AccountSeed struct {
	Points     int64
	TotalSpent float64
	Visits     int64
}

// CustomerSession establishes the anonymous customer session. An
// unknown or missing token gets a fresh session with a seeded rewards
// account; the token is always echoed back so the storefront can keep
// it.
type CustomerSession struct {
	logger            *logrus.Logger
	store             session.Store
	accountRepository rewards.AccountRepository
	seed              AccountSeed
}

func NewCustomerSessionMiddleware(logger *logrus.Logger, store session.Store, accountRepository rewards.AccountRepository, seed AccountSeed) *CustomerSession {
	return &CustomerSession{
		logger:            logger,
		store:             store,
		accountRepository: accountRepository,
		seed:              seed,
	}
}

func (m *CustomerSession) Establish(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var sess session.Session

		token := r.Header.Get(SessionTokenHeader)
		if token != "" {
			if existing, err := m.store.Fetch(ctx, token); err == nil {
				sess = existing
			}
		}

		if sess.Token == "" {
			now := time.Now()
			sess = session.Session{
				Token:     uuid.NewString(),
				CreatedAt: now,
			}

			if err := m.store.Save(ctx, sess); err != nil {
				m.logger.WithContext(ctx).WithError(err).Error()
			}

			account := rewards.NewAccount(m.seed.Points, m.seed.TotalSpent, m.seed.Visits, now)
			if err := m.accountRepository.Save(ctx, sess.Token, account); err != nil {
				m.logger.WithContext(ctx).WithError(err).Error()
			}
		}

		w.Header().Set(SessionTokenHeader, sess.Token)

		ctx = session.ContextWithSession(ctx, sess)
		next(w, r.WithContext(ctx))
	}
}
