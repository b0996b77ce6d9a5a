package cart

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/menu"
	"github.com/kelvinwijaya/kopitiam/internal/pkg/session"
)

type CartUseCase interface {
	ViewCart(ctx context.Context) (ViewCartResponse, error)
	AddItem(ctx context.Context, req AddItemRequest) (ViewCartResponse, error)
	UpdateQuantity(ctx context.Context, req UpdateQuantityRequest) (ViewCartResponse, error)
	RemoveLine(ctx context.Context, req RemoveLineRequest) (ViewCartResponse, error)
}

type cartUseCase struct {
	logger            *logrus.Logger
	timeout           time.Duration
	pricingRules      menu.PricingRules
	catalogRepository menu.CatalogRepository
	cartRepository    CartRepository
}

type CartUseCaseProperty struct {
	Logger            *logrus.Logger
	Timeout           time.Duration
	PricingRules      menu.PricingRules
	CatalogRepository menu.CatalogRepository
	CartRepository    CartRepository
}

func NewCartUseCase(props CartUseCaseProperty) CartUseCase {
	return &cartUseCase{
		logger:            props.Logger,
		timeout:           props.Timeout,
		pricingRules:      props.PricingRules,
		catalogRepository: props.CatalogRepository,
		cartRepository:    props.CartRepository,
	}
}

// ViewCart implements CartUseCase.
func (u *cartUseCase) ViewCart(ctx context.Context) (ViewCartResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return ViewCartResponse{}, err
	}

	lines, err := u.cartRepository.FindBySession(ctx, sess.Token)
	if err != nil {
		return ViewCartResponse{}, err
	}

	resp := ViewCartResponse{}
	resp.PopulateFromEntities(lines)

	return resp, nil
}

// AddItem implements CartUseCase. Adding an item with a customization
// set already in the cart bumps that line's quantity; the unit price
// recorded at first add is kept, not requoted. A new combination is
// appended as a fresh line, so the cart keeps its insertion order.
func (u *cartUseCase) AddItem(ctx context.Context, req AddItemRequest) (ViewCartResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return ViewCartResponse{}, err
	}

	item, err := u.catalogRepository.FindByID(ctx, req.ItemID)
	if err != nil {
		return ViewCartResponse{}, err
	}

	customizations := menu.Normalize(item, req.Customizations)

	lines, err := u.cartRepository.FindBySession(ctx, sess.Token)
	if err != nil {
		return ViewCartResponse{}, err
	}

	merged := false
	for k := range lines {
		if lines[k].Matches(item.ID, customizations) {
			lines[k].Quantity++
			merged = true
			break
		}
	}

	if !merged {
		lines = append(lines, CartItem{
			ItemID:         item.ID,
			Name:           item.Name,
			Category:       item.Category,
			BasePrice:      item.BasePrice,
			Customizations: customizations,
			UnitPrice:      menu.UnitPrice(item, customizations, u.pricingRules),
			Quantity:       1,
		})
	}

	if err := u.cartRepository.Save(ctx, sess.Token, lines); err != nil {
		return ViewCartResponse{}, err
	}

	resp := ViewCartResponse{}
	resp.PopulateFromEntities(lines)

	return resp, nil
}

// UpdateQuantity implements CartUseCase. Quantity 0 removes the line;
// updating a line that is not in the cart is a no-op.
func (u *cartUseCase) UpdateQuantity(ctx context.Context, req UpdateQuantityRequest) (ViewCartResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	if req.Quantity == 0 {
		return u.RemoveLine(ctx, RemoveLineRequest{
			ItemID:         req.ItemID,
			Customizations: req.Customizations,
		})
	}

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return ViewCartResponse{}, err
	}

	lines, err := u.cartRepository.FindBySession(ctx, sess.Token)
	if err != nil {
		return ViewCartResponse{}, err
	}

	for k := range lines {
		if lines[k].Matches(req.ItemID, req.Customizations) {
			lines[k].Quantity = req.Quantity
			break
		}
	}

	if err := u.cartRepository.Save(ctx, sess.Token, lines); err != nil {
		return ViewCartResponse{}, err
	}

	resp := ViewCartResponse{}
	resp.PopulateFromEntities(lines)

	return resp, nil
}

// RemoveLine implements CartUseCase. Removing a line that is already
// gone leaves the cart unchanged.
func (u *cartUseCase) RemoveLine(ctx context.Context, req RemoveLineRequest) (ViewCartResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return ViewCartResponse{}, err
	}

	lines, err := u.cartRepository.FindBySession(ctx, sess.Token)
	if err != nil {
		return ViewCartResponse{}, err
	}

	remaining := make([]CartItem, 0, len(lines))
	for _, line := range lines {
		if line.Matches(req.ItemID, req.Customizations) {
			continue
		}
		remaining = append(remaining, line)
	}

	if err := u.cartRepository.Save(ctx, sess.Token, remaining); err != nil {
		return ViewCartResponse{}, err
	}

	resp := ViewCartResponse{}
	resp.PopulateFromEntities(remaining)

	return resp, nil
}
