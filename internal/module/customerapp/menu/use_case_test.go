package menu

import (
	"context"
	"testing"
	"time"

	"github.com/kelvinwijaya/kopitiam/pkg/applogger"
	"github.com/kelvinwijaya/kopitiam/pkg/errors"
)

func newTestMenuUseCase() MenuUseCase {
	logger := applogger.GetLogrus()

	return NewMenuUseCase(MenuUseCaseProperty{
		Logger:            logger,
		Timeout:           5 * time.Second,
		PricingRules:      testPricingRules,
		CatalogRepository: NewCatalogRepository(logger, ""),
	})
}

func TestGetMenu(t *testing.T) {
	useCase := newTestMenuUseCase()

	resp, err := useCase.GetMenu(context.Background(), GetMenuRequest{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Items) == 0 {
		t.Fatal("expected the built-in menu to have items")
	}

	coffee, err := useCase.GetMenu(context.Background(), GetMenuRequest{Category: "coffee"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, item := range coffee.Items {
		if item.Category != "coffee" {
			t.Errorf("expected only coffee items, got category %s", item.Category)
		}
	}
	if len(coffee.Items) >= len(resp.Items) {
		t.Error("expected the category filter to narrow the menu")
	}
}

func TestQuoteItemPrice(t *testing.T) {
	useCase := newTestMenuUseCase()

	resp, err := useCase.QuoteItemPrice(context.Background(), QuoteItemPriceRequest{
		ItemID: "kopi-001",
		Customizations: CustomizationOptions{
			CupSize:     CupSizeLarge,
			Temperature: TemperatureCold,
			SugarLevel:  SugarLevelNormal,
			MilkType:    MilkTypeCondensed,
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !almostEqual(resp.UnitPrice, 3.00) {
		t.Errorf("expected unit price 3.00, got %.2f", resp.UnitPrice)
	}
}

func TestQuoteItemPriceUnknownItem(t *testing.T) {
	useCase := newTestMenuUseCase()

	_, err := useCase.QuoteItemPrice(context.Background(), QuoteItemPriceRequest{
		ItemID:         "kopi-999",
		Customizations: DefaultCustomizations(),
	})
	if err == nil {
		t.Fatal("expected an error for an unknown item")
	}

	ae := errors.Destruct(err)
	if ae.HTTPStatusCode != 404 {
		t.Errorf("expected status code 404, got %d", ae.HTTPStatusCode)
	}
}
