package rewards

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/kelvinwijaya/kopitiam/internal/pkg/session"
	"github.com/kelvinwijaya/kopitiam/pkg/applogger"
	"github.com/kelvinwijaya/kopitiam/pkg/errors"
)

func newTestRewardsUseCase(t *testing.T, token string, account Account) RewardsUseCase {
	t.Helper()

	logger := applogger.GetLogrus()
	catalog := defaultCatalog()

	accountRepository := NewAccountRepository(logger)
	if err := accountRepository.Save(context.Background(), token, account); err != nil {
		t.Fatalf("expected no error seeding the account, got %v", err)
	}

	return NewRewardsUseCase(RewardsUseCaseProperty{
		Logger:               logger,
		Timeout:              5 * time.Second,
		AccountRepository:    accountRepository,
		PromotionRepository:  NewPromotionRepository(logger, catalog.Promotions),
		RedemptionRepository: NewRedemptionRepository(logger, catalog.Redemptions),
	})
}

func testSessionCtx(token string) context.Context {
	return session.ContextWithSession(context.Background(), session.Session{
		Token:     token,
		CreatedAt: time.Now(),
	})
}

func TestGetAccount(t *testing.T) {
	token := "account-session"
	useCase := newTestRewardsUseCase(t, token, NewAccount(0, 120, 4, time.Now()))

	resp, err := useCase.GetAccount(testSessionCtx(token))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.Tier != TierGold {
		t.Errorf("expected tier Gold for 120 spent, got %s", resp.Tier)
	}
	if !almostEqual(resp.TierMultiplier, 1.5) {
		t.Errorf("expected tier multiplier 1.5, got %.1f", resp.TierMultiplier)
	}
}

func TestGetAccountWithoutSession(t *testing.T) {
	useCase := newTestRewardsUseCase(t, "some-session", NewAccount(0, 0, 0, time.Now()))

	_, err := useCase.GetAccount(context.Background())
	if err == nil {
		t.Fatal("expected an error without a session on the context")
	}

	ae := errors.Destruct(err)
	if ae.HTTPStatusCode != http.StatusUnauthorized {
		t.Errorf("expected status code 401, got %d", ae.HTTPStatusCode)
	}
}

func TestGetCatalog(t *testing.T) {
	token := "catalog-session"
	useCase := newTestRewardsUseCase(t, token, NewAccount(0, 0, 0, time.Now()))

	resp, err := useCase.GetCatalog(testSessionCtx(token))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(resp.Promotions) == 0 || len(resp.Redemptions) == 0 {
		t.Fatal("expected the built-in catalog to have promotions and redemptions")
	}
}

func TestApplyPromotionReplacesPrevious(t *testing.T) {
	token := "promo-session"
	useCase := newTestRewardsUseCase(t, token, NewAccount(0, 0, 0, time.Now()))
	ctx := testSessionCtx(token)

	resp, err := useCase.ApplyPromotion(ctx, ApplyPromotionRequest{PromotionID: "weekend-special"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.AppliedPromotionID != "weekend-special" {
		t.Errorf("expected weekend-special applied, got %s", resp.AppliedPromotionID)
	}

	resp, err = useCase.ApplyPromotion(ctx, ApplyPromotionRequest{PromotionID: "double-points"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.AppliedPromotionID != "double-points" {
		t.Errorf("expected the second promotion to replace the first, got %s", resp.AppliedPromotionID)
	}
}

func TestApplyPromotionUnknownID(t *testing.T) {
	token := "promo-unknown-session"
	useCase := newTestRewardsUseCase(t, token, NewAccount(0, 0, 0, time.Now()))

	_, err := useCase.ApplyPromotion(testSessionCtx(token), ApplyPromotionRequest{PromotionID: "no-such-promo"})
	if err == nil {
		t.Fatal("expected an error for an unknown promotion")
	}

	ae := errors.Destruct(err)
	if ae.HTTPStatusCode != http.StatusNotFound {
		t.Errorf("expected status code 404, got %d", ae.HTTPStatusCode)
	}
}

func TestApplyRedemptionInsufficientPoints(t *testing.T) {
	token := "redeem-poor-session"
	useCase := newTestRewardsUseCase(t, token, NewAccount(80, 0, 0, time.Now()))
	ctx := testSessionCtx(token)

	_, err := useCase.ApplyRedemption(ctx, ApplyRedemptionRequest{RedemptionID: "free-kopi"})
	if err == nil {
		t.Fatal("expected an error when points do not cover the redemption")
	}

	ae := errors.Destruct(err)
	if ae.HTTPStatusCode != http.StatusBadRequest {
		t.Errorf("expected status code 400, got %d", ae.HTTPStatusCode)
	}

	resp, err := useCase.GetAccount(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.AppliedRedemptionID != "" {
		t.Error("expected the failed redemption to leave the account untouched")
	}
	if resp.Points != 80 {
		t.Errorf("expected the point balance unchanged, got %d", resp.Points)
	}
}

func TestApplyRedemption(t *testing.T) {
	token := "redeem-session"
	useCase := newTestRewardsUseCase(t, token, NewAccount(200, 0, 0, time.Now()))

	resp, err := useCase.ApplyRedemption(testSessionCtx(token), ApplyRedemptionRequest{RedemptionID: "discount-10"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.AppliedRedemptionID != "discount-10" {
		t.Errorf("expected discount-10 applied, got %s", resp.AppliedRedemptionID)
	}
	if resp.Points != 200 {
		t.Errorf("expected no points debited before checkout, got %d", resp.Points)
	}
}

func TestQuoteOrderTotal(t *testing.T) {
	token := "quote-session"
	useCase := newTestRewardsUseCase(t, token, NewAccount(200, 0, 0, time.Now()))
	ctx := testSessionCtx(token)

	if _, err := useCase.ApplyPromotion(ctx, ApplyPromotionRequest{PromotionID: "weekend-special"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := useCase.ApplyRedemption(ctx, ApplyRedemptionRequest{RedemptionID: "discount-10"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	pricing, err := useCase.QuoteOrderTotal(ctx, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !almostEqual(pricing.Total, 7.20) {
		t.Errorf("expected total 7.20 after stacked discounts, got %.2f", pricing.Total)
	}

	// Below the promotion's minimum spend only the redemption bites.
	pricing, err = useCase.QuoteOrderTotal(ctx, 4)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !almostEqual(pricing.PromotionDiscount, 0) {
		t.Errorf("expected no promotion discount below minimum spend, got %.2f", pricing.PromotionDiscount)
	}
	if !almostEqual(pricing.Total, 3.60) {
		t.Errorf("expected total 3.60, got %.2f", pricing.Total)
	}
}

func TestCompleteCheckout(t *testing.T) {
	token := "checkout-session"
	useCase := newTestRewardsUseCase(t, token, NewAccount(200, 45, 3, time.Now()))
	ctx := testSessionCtx(token)

	if _, err := useCase.ApplyPromotion(ctx, ApplyPromotionRequest{PromotionID: "weekend-special"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := useCase.ApplyRedemption(ctx, ApplyRedemptionRequest{RedemptionID: "discount-10"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	result, err := useCase.CompleteCheckout(ctx, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !almostEqual(result.Pricing.Total, 7.20) {
		t.Errorf("expected total 7.20, got %.2f", result.Pricing.Total)
	}
	// Bronze tier at checkout time, points earned on the pre-discount
	// subtotal.
	if result.PointsEarned != 10 {
		t.Errorf("expected 10 points earned, got %d", result.PointsEarned)
	}

	account := result.Account
	if account.Points != 200+10-150 {
		t.Errorf("expected point balance 60 after earn and debit, got %d", account.Points)
	}
	if !almostEqual(account.TotalSpent, 55) {
		t.Errorf("expected total spent 55, got %.2f", account.TotalSpent)
	}
	if account.Visits != 4 {
		t.Errorf("expected 4 visits, got %d", account.Visits)
	}
	if account.Tier != TierSilver {
		t.Errorf("expected the tier recomputed to Silver, got %s", account.Tier)
	}
	if account.AppliedPromotionID != "" || account.AppliedRedemptionID != "" {
		t.Error("expected the single-use promotion and redemption to be cleared")
	}

	// A follow-up order earns at the new tier with nothing applied.
	result, err = useCase.CompleteCheckout(ctx, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !almostEqual(result.Pricing.Total, 10) {
		t.Errorf("expected an undiscounted total, got %.2f", result.Pricing.Total)
	}
	if result.PointsEarned != 12 {
		t.Errorf("expected 12 points at the Silver multiplier, got %d", result.PointsEarned)
	}
}

func TestCompleteCheckoutDoublePoints(t *testing.T) {
	token := "double-session"
	useCase := newTestRewardsUseCase(t, token, NewAccount(0, 150, 5, time.Now()))
	ctx := testSessionCtx(token)

	if _, err := useCase.ApplyPromotion(ctx, ApplyPromotionRequest{PromotionID: "double-points"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	result, err := useCase.CompleteCheckout(ctx, 20)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Gold multiplier then doubled: floor(20 * 1.5) * 2.
	if result.PointsEarned != 60 {
		t.Errorf("expected 60 points, got %d", result.PointsEarned)
	}
	if !almostEqual(result.Pricing.Total, 20) {
		t.Errorf("expected a points promotion to leave the total alone, got %.2f", result.Pricing.Total)
	}
}
