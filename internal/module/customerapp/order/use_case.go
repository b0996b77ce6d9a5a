package order

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/cart"
	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/payment"
	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/rewards"
	"github.com/kelvinwijaya/kopitiam/internal/pkg/session"
	"github.com/kelvinwijaya/kopitiam/internal/pkg/util"
	"github.com/kelvinwijaya/kopitiam/pkg/errors"
	"github.com/kelvinwijaya/kopitiam/pkg/status"
)

type OrderUseCase interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (PlaceOrderResponse, error)
	GetManyOrder(ctx context.Context) (GetManyOrderResponse, error)
}

type orderUseCase struct {
	logger                *logrus.Logger
	timeout               time.Duration
	estimatedPrepDuration time.Duration
	cartRepository        cart.CartRepository
	orderRepository       OrderRepository
	rewardsUseCase        rewards.RewardsUseCase
	paymentRepository     payment.PaymentRepository
}

type OrderUseCaseProperty struct {
	Logger                *logrus.Logger
	Timeout               time.Duration
	EstimatedPrepDuration time.Duration
	CartRepository        cart.CartRepository
	OrderRepository       OrderRepository
	RewardsUseCase        rewards.RewardsUseCase
	PaymentRepository     payment.PaymentRepository
}

func NewOrderUseCase(props OrderUseCaseProperty) OrderUseCase {
	return &orderUseCase{
		logger:                props.Logger,
		timeout:               props.Timeout,
		estimatedPrepDuration: props.EstimatedPrepDuration,
		cartRepository:        props.CartRepository,
		orderRepository:       props.OrderRepository,
		rewardsUseCase:        props.RewardsUseCase,
		paymentRepository:     props.PaymentRepository,
	}
}

// PlaceOrder implements OrderUseCase. Prices the session's cart
// through the rewards engine, charges the simulated gateway, applies
// the rewards checkout transition, records the order and clears the
// cart.
func (u *orderUseCase) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (PlaceOrderResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return PlaceOrderResponse{}, err
	}

	lines, err := u.cartRepository.FindBySession(ctx, sess.Token)
	if err != nil {
		return PlaceOrderResponse{}, err
	}

	if len(lines) == 0 {
		return PlaceOrderResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "cart is empty")
	}

	subtotal := cart.Subtotal(lines)

	pricing, err := u.rewardsUseCase.QuoteOrderTotal(ctx, subtotal)
	if err != nil {
		return PlaceOrderResponse{}, err
	}

	now := time.Now()
	o := Order{
		ID:            util.GenerateSequenceWithPrefix("KO"),
		TableNumber:   req.TableNumber,
		PaymentMethod: req.PaymentMethod,
		Status:        "WAITING_FOR_PAYMENT",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	items := make([]Item, len(lines))
	for k, v := range lines {
		items[k] = Item{
			OrderID:        o.ID,
			ItemID:         v.ItemID,
			Name:           v.Name,
			Customizations: v.Customizations,
			UnitPrice:      v.UnitPrice,
			Quantity:       v.Quantity,
		}
	}
	o.Items = items

	chargeResponse, err := u.paymentRepository.Charge(ctx, payment.ChargeRequest{
		OrderID: o.ID,
		Method:  req.PaymentMethod,
		Amount:  pricing.Total,
	})
	if err != nil {
		return PlaceOrderResponse{}, err
	}

	result, err := u.rewardsUseCase.CompleteCheckout(ctx, subtotal)
	if err != nil {
		return PlaceOrderResponse{}, err
	}

	o.TransactionID = &chargeResponse.TransactionID
	o.Status = "PAID"
	o.Subtotal = result.Pricing.Subtotal
	o.PromotionDiscount = result.Pricing.PromotionDiscount
	o.RedemptionDiscount = result.Pricing.RedemptionDiscount
	o.TotalAmount = result.Pricing.Total
	o.PointsEarned = result.PointsEarned
	o.EstimatedReadyAt = now.Add(u.estimatedPrepDuration)
	o.UpdatedAt = chargeResponse.PaidAt

	if result.Promotion != nil {
		o.PromotionID = result.Promotion.ID
	}
	if result.Redemption != nil {
		o.RedemptionID = result.Redemption.ID
	}

	if err := u.orderRepository.Save(ctx, sess.Token, o); err != nil {
		return PlaceOrderResponse{}, err
	}

	if err := u.cartRepository.Clear(ctx, sess.Token); err != nil {
		return PlaceOrderResponse{}, err
	}

	resp := PlaceOrderResponse{}
	resp.PopulateFromEntity(o)

	return resp, nil
}

// GetManyOrder implements OrderUseCase.
func (u *orderUseCase) GetManyOrder(ctx context.Context) (GetManyOrderResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return GetManyOrderResponse{}, err
	}

	orders, err := u.orderRepository.FindManyBySession(ctx, sess.Token)
	if err != nil {
		return GetManyOrderResponse{}, err
	}

	resp := make(GetManyOrderResponse, len(orders))
	for k, v := range orders {
		r := PlaceOrderResponse{}
		r.PopulateFromEntity(v)
		resp[k] = r
	}

	return resp, nil
}
