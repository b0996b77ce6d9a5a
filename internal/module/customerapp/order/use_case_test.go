package order

import (
	"context"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/cart"
	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/menu"
	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/payment"
	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/rewards"
	"github.com/kelvinwijaya/kopitiam/internal/pkg/session"
	"github.com/kelvinwijaya/kopitiam/pkg/applogger"
	"github.com/kelvinwijaya/kopitiam/pkg/errors"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type orderUseCaseFixture struct {
	useCase        OrderUseCase
	cartRepository cart.CartRepository
	rewardsUseCase rewards.RewardsUseCase
}

func newOrderUseCaseFixture(t *testing.T, token string) orderUseCaseFixture {
	t.Helper()

	logger := applogger.GetLogrus()

	cartRepository := cart.NewCartRepository(logger)

	accountRepository := rewards.NewAccountRepository(logger)
	if err := accountRepository.Save(context.Background(), token, rewards.NewAccount(0, 0, 0, time.Now())); err != nil {
		t.Fatalf("expected no error seeding the account, got %v", err)
	}

	catalog := rewards.LoadCatalog(logger, "")
	rewardsUseCase := rewards.NewRewardsUseCase(rewards.RewardsUseCaseProperty{
		Logger:               logger,
		Timeout:              5 * time.Second,
		AccountRepository:    accountRepository,
		PromotionRepository:  rewards.NewPromotionRepository(logger, catalog.Promotions),
		RedemptionRepository: rewards.NewRedemptionRepository(logger, catalog.Redemptions),
	})

	useCase := NewOrderUseCase(OrderUseCaseProperty{
		Logger:                logger,
		Timeout:               5 * time.Second,
		EstimatedPrepDuration: 15 * time.Minute,
		CartRepository:        cartRepository,
		OrderRepository:       NewOrderRepository(logger),
		RewardsUseCase:        rewardsUseCase,
		PaymentRepository:     payment.NewPaymentRepository(logger, time.Millisecond),
	})

	return orderUseCaseFixture{
		useCase:        useCase,
		cartRepository: cartRepository,
		rewardsUseCase: rewardsUseCase,
	}
}

func testSessionCtx(token string) context.Context {
	return session.ContextWithSession(context.Background(), session.Session{
		Token:     token,
		CreatedAt: time.Now(),
	})
}

func seedCart(t *testing.T, repository cart.CartRepository, token string) {
	t.Helper()

	err := repository.Save(context.Background(), token, []cart.CartItem{
		{
			ItemID:         "kopi-001",
			Name:           "Kopi",
			Category:       "coffee",
			BasePrice:      2.20,
			Customizations: menu.DefaultCustomizations(),
			UnitPrice:      2.20,
			Quantity:       2,
		},
		{
			ItemID:         "teh-001",
			Name:           "Teh",
			Category:       "tea",
			BasePrice:      2.00,
			Customizations: menu.DefaultCustomizations(),
			UnitPrice:      2.40,
			Quantity:       1,
		},
	})
	if err != nil {
		t.Fatalf("expected no error seeding the cart, got %v", err)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	token := "empty-cart-session"
	fixture := newOrderUseCaseFixture(t, token)

	_, err := fixture.useCase.PlaceOrder(testSessionCtx(token), PlaceOrderRequest{
		TableNumber:   7,
		PaymentMethod: "card",
	})
	if err == nil {
		t.Fatal("expected an error for an empty cart")
	}

	ae := errors.Destruct(err)
	if ae.HTTPStatusCode != http.StatusBadRequest {
		t.Errorf("expected status code 400, got %d", ae.HTTPStatusCode)
	}
}

func TestPlaceOrder(t *testing.T) {
	token := "place-order-session"
	fixture := newOrderUseCaseFixture(t, token)
	ctx := testSessionCtx(token)

	seedCart(t, fixture.cartRepository, token)

	resp, err := fixture.useCase.PlaceOrder(ctx, PlaceOrderRequest{
		TableNumber:   7,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.ID == "" {
		t.Error("expected a generated order id")
	}
	if resp.Status != "PAID" {
		t.Errorf("expected status PAID after settlement, got %s", resp.Status)
	}
	if resp.TransactionID == nil || *resp.TransactionID == "" {
		t.Error("expected a transaction id from the gateway")
	}
	if !almostEqual(resp.Subtotal, 6.80) {
		t.Errorf("expected subtotal 6.80, got %.2f", resp.Subtotal)
	}
	if !almostEqual(resp.TotalAmount, 6.80) {
		t.Errorf("expected an undiscounted total of 6.80, got %.2f", resp.TotalAmount)
	}
	if resp.PointsEarned != 6 {
		t.Errorf("expected 6 points earned, got %d", resp.PointsEarned)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(resp.Items))
	}
	if resp.Items[0].OrderID != resp.ID {
		t.Error("expected order items to reference the order")
	}
	if !resp.EstimatedReadyAt.After(resp.CreatedAt) {
		t.Error("expected the estimated ready time to fall after creation")
	}

	lines, err := fixture.cartRepository.FindBySession(ctx, token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected the cart cleared after checkout, got %d lines", len(lines))
	}
}

func TestPlaceOrderWithPromotion(t *testing.T) {
	token := "promo-order-session"
	fixture := newOrderUseCaseFixture(t, token)
	ctx := testSessionCtx(token)

	seedCart(t, fixture.cartRepository, token)

	if _, err := fixture.rewardsUseCase.ApplyPromotion(ctx, rewards.ApplyPromotionRequest{PromotionID: "weekend-special"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	resp, err := fixture.useCase.PlaceOrder(ctx, PlaceOrderRequest{
		TableNumber:   3,
		PaymentMethod: "counter",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !almostEqual(resp.PromotionDiscount, 1.36) {
		t.Errorf("expected promotion discount 1.36, got %.2f", resp.PromotionDiscount)
	}
	if !almostEqual(resp.TotalAmount, 5.44) {
		t.Errorf("expected total 5.44, got %.2f", resp.TotalAmount)
	}
	if resp.PromotionID != "weekend-special" {
		t.Errorf("expected the applied promotion recorded on the order, got %s", resp.PromotionID)
	}
}

func TestGetManyOrder(t *testing.T) {
	token := "history-session"
	fixture := newOrderUseCaseFixture(t, token)
	ctx := testSessionCtx(token)

	resp, err := fixture.useCase.GetManyOrder(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp) != 0 {
		t.Fatalf("expected no orders before checkout, got %d", len(resp))
	}

	seedCart(t, fixture.cartRepository, token)
	placed, err := fixture.useCase.PlaceOrder(ctx, PlaceOrderRequest{
		TableNumber:   1,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	resp, err = fixture.useCase.GetManyOrder(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected one order, got %d", len(resp))
	}
	if resp[0].ID != placed.ID {
		t.Errorf("expected order %s, got %s", placed.ID, resp[0].ID)
	}
}
