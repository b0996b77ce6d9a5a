package menu

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type MenuUseCase interface {
	GetMenu(ctx context.Context, req GetMenuRequest) (GetMenuResponse, error)
	QuoteItemPrice(ctx context.Context, req QuoteItemPriceRequest) (QuoteItemPriceResponse, error)
}

type menuUseCase struct {
	logger            *logrus.Logger
	timeout           time.Duration
	pricingRules      PricingRules
	catalogRepository CatalogRepository
}

type MenuUseCaseProperty struct {
	Logger            *logrus.Logger
	Timeout           time.Duration
	PricingRules      PricingRules
	CatalogRepository CatalogRepository
}

func NewMenuUseCase(props MenuUseCaseProperty) MenuUseCase {
	return &menuUseCase{
		logger:            props.Logger,
		timeout:           props.Timeout,
		pricingRules:      props.PricingRules,
		catalogRepository: props.CatalogRepository,
	}
}

// GetMenu implements MenuUseCase.
func (u *menuUseCase) GetMenu(ctx context.Context, req GetMenuRequest) (GetMenuResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	var items []MenuItem
	var err error

	if req.Category != "" {
		items, err = u.catalogRepository.FindManyByCategory(ctx, req.Category)
	} else {
		items, err = u.catalogRepository.FindMany(ctx)
	}
	if err != nil {
		return GetMenuResponse{}, err
	}

	resp := GetMenuResponse{}
	resp.PopulateFromEntities(items, u.pricingRules)

	return resp, nil
}

// QuoteItemPrice implements MenuUseCase.
func (u *menuUseCase) QuoteItemPrice(ctx context.Context, req QuoteItemPriceRequest) (QuoteItemPriceResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	item, err := u.catalogRepository.FindByID(ctx, req.ItemID)
	if err != nil {
		return QuoteItemPriceResponse{}, err
	}

	customizations := Normalize(item, req.Customizations)
	unitPrice := UnitPrice(item, customizations, u.pricingRules)

	resp := QuoteItemPriceResponse{
		ItemID:         item.ID,
		Name:           item.Name,
		BasePrice:      item.BasePrice,
		Customizations: customizations,
		UnitPrice:      unitPrice,
	}

	return resp, nil
}
