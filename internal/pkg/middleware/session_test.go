package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/rewards"
	"github.com/kelvinwijaya/kopitiam/internal/pkg/session"
	"github.com/kelvinwijaya/kopitiam/pkg/applogger"
)

func newTestCustomerSession() (*CustomerSession, rewards.AccountRepository) {
	logger := applogger.GetLogrus()
	accountRepository := rewards.NewAccountRepository(logger)

	m := NewCustomerSessionMiddleware(logger, session.NewInMemoryStore(logger), accountRepository, AccountSeed{})

	return m, accountRepository
}

func TestEstablishMintsSessionAndSeedsAccount(t *testing.T) {
	m, accountRepository := newTestCustomerSession()

	var got session.Session
	handler := m.Establish(func(w http.ResponseWriter, r *http.Request) {
		sess, err := session.FromCtx(r.Context())
		if err != nil {
			t.Fatalf("expected a session on the context, got %v", err)
		}
		got = sess
	})

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodGet, "/kopitiam/v1/customerapp/menu", nil))

	if got.Token == "" {
		t.Fatal("expected a minted session token")
	}
	if recorder.Header().Get(SessionTokenHeader) != got.Token {
		t.Error("expected the session token echoed in the response header")
	}

	account, err := accountRepository.FindByToken(context.Background(), got.Token)
	if err != nil {
		t.Fatalf("expected a seeded rewards account, got %v", err)
	}
	if account.Tier != rewards.TierBronze {
		t.Errorf("expected a fresh account at Bronze, got %s", account.Tier)
	}
}

func TestEstablishReusesKnownToken(t *testing.T) {
	m, _ := newTestCustomerSession()

	var first session.Session
	handler := m.Establish(func(w http.ResponseWriter, r *http.Request) {
		first, _ = session.FromCtx(r.Context())
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var second session.Session
	handler = m.Establish(func(w http.ResponseWriter, r *http.Request) {
		second, _ = session.FromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionTokenHeader, first.Token)
	handler(httptest.NewRecorder(), req)

	if second.Token != first.Token {
		t.Errorf("expected the known token reused, got %s", second.Token)
	}
}

func TestEstablishReplacesUnknownToken(t *testing.T) {
	m, _ := newTestCustomerSession()

	var got session.Session
	handler := m.Establish(func(w http.ResponseWriter, r *http.Request) {
		got, _ = session.FromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionTokenHeader, "stale-token")

	recorder := httptest.NewRecorder()
	handler(recorder, req)

	if got.Token == "" || got.Token == "stale-token" {
		t.Errorf("expected a fresh session for an unknown token, got %q", got.Token)
	}
	if recorder.Header().Get(SessionTokenHeader) != got.Token {
		t.Error("expected the replacement token echoed in the response header")
	}
}
