package rewards

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kelvinwijaya/kopitiam/internal/pkg/session"
	"github.com/kelvinwijaya/kopitiam/pkg/errors"
	"github.com/kelvinwijaya/kopitiam/pkg/status"
)

type RewardsUseCase interface {
	GetAccount(ctx context.Context) (AccountResponse, error)
	GetCatalog(ctx context.Context) (GetCatalogResponse, error)
	ApplyPromotion(ctx context.Context, req ApplyPromotionRequest) (AccountResponse, error)
	ApplyRedemption(ctx context.Context, req ApplyRedemptionRequest) (AccountResponse, error)
	QuoteOrderTotal(ctx context.Context, subtotal float64) (OrderPricing, error)
	CompleteCheckout(ctx context.Context, originalSubtotal float64) (CheckoutResult, error)
}

// CheckoutResult is handed to the order module once a payment settles:
// the priced order plus the rewards transition that came with it.
type CheckoutResult struct {
	Pricing      OrderPricing
	PointsEarned int64
	Account      Account
	Promotion    *Promotion
	Redemption   *Redemption
}

type rewardsUseCase struct {
	logger               *logrus.Logger
	timeout              time.Duration
	accountRepository    AccountRepository
	promotionRepository  PromotionRepository
	redemptionRepository RedemptionRepository
}

type RewardsUseCaseProperty struct {
	Logger               *logrus.Logger
	Timeout              time.Duration
	AccountRepository    AccountRepository
	PromotionRepository  PromotionRepository
	RedemptionRepository RedemptionRepository
}

func NewRewardsUseCase(props RewardsUseCaseProperty) RewardsUseCase {
	return &rewardsUseCase{
		logger:               props.Logger,
		timeout:              props.Timeout,
		accountRepository:    props.AccountRepository,
		promotionRepository:  props.PromotionRepository,
		redemptionRepository: props.RedemptionRepository,
	}
}

// GetAccount implements RewardsUseCase.
func (u *rewardsUseCase) GetAccount(ctx context.Context) (AccountResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return AccountResponse{}, err
	}

	account, err := u.accountRepository.FindByToken(ctx, sess.Token)
	if err != nil {
		return AccountResponse{}, err
	}

	resp := AccountResponse{}
	resp.PopulateFromEntity(account)

	return resp, nil
}

// GetCatalog implements RewardsUseCase.
func (u *rewardsUseCase) GetCatalog(ctx context.Context) (GetCatalogResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	promotions, err := u.promotionRepository.FindMany(ctx)
	if err != nil {
		return GetCatalogResponse{}, err
	}

	redemptions, err := u.redemptionRepository.FindMany(ctx)
	if err != nil {
		return GetCatalogResponse{}, err
	}

	resp := GetCatalogResponse{}
	resp.PopulateFromEntities(promotions, redemptions)

	return resp, nil
}

// ApplyPromotion implements RewardsUseCase. At most one promotion is
// applied at a time; applying another replaces it.
func (u *rewardsUseCase) ApplyPromotion(ctx context.Context, req ApplyPromotionRequest) (AccountResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return AccountResponse{}, err
	}

	account, err := u.accountRepository.FindByToken(ctx, sess.Token)
	if err != nil {
		return AccountResponse{}, err
	}

	promotion, err := u.promotionRepository.FindByID(ctx, req.PromotionID)
	if err != nil {
		return AccountResponse{}, err
	}

	if !promotion.Active(time.Now()) {
		return AccountResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "promotion is no longer active")
	}

	account.AppliedPromotionID = promotion.ID

	if err := u.accountRepository.Save(ctx, sess.Token, account); err != nil {
		return AccountResponse{}, err
	}

	resp := AccountResponse{}
	resp.PopulateFromEntity(account)

	return resp, nil
}

// ApplyRedemption implements RewardsUseCase. The point balance must
// cover the redemption's cost at selection time; otherwise the account
// is left untouched and the caller is told why.
func (u *rewardsUseCase) ApplyRedemption(ctx context.Context, req ApplyRedemptionRequest) (AccountResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return AccountResponse{}, err
	}

	account, err := u.accountRepository.FindByToken(ctx, sess.Token)
	if err != nil {
		return AccountResponse{}, err
	}

	redemption, err := u.redemptionRepository.FindByID(ctx, req.RedemptionID)
	if err != nil {
		return AccountResponse{}, err
	}

	if account.Points < redemption.PointsCost {
		return AccountResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "insufficient points")
	}

	account.AppliedRedemptionID = redemption.ID

	if err := u.accountRepository.Save(ctx, sess.Token, account); err != nil {
		return AccountResponse{}, err
	}

	resp := AccountResponse{}
	resp.PopulateFromEntity(account)

	return resp, nil
}

// QuoteOrderTotal implements RewardsUseCase. Eligibility of the applied
// promotion is re-evaluated on every derivation, so a promotion below
// its minimum spend simply yields no discount until the cart qualifies.
func (u *rewardsUseCase) QuoteOrderTotal(ctx context.Context, subtotal float64) (OrderPricing, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return OrderPricing{}, err
	}

	account, err := u.accountRepository.FindByToken(ctx, sess.Token)
	if err != nil {
		return OrderPricing{}, err
	}

	promotion, redemption, err := u.findApplied(ctx, account)
	if err != nil {
		return OrderPricing{}, err
	}

	return PriceOrder(subtotal, promotion, redemption, time.Now()), nil
}

// CompleteCheckout implements RewardsUseCase. Fires once per settled
// order: prices the order, accrues points on the pre-discount subtotal,
// debits the applied redemption, bumps spend and visits, recomputes the
// tier, and clears the single-use promotion/redemption.
func (u *rewardsUseCase) CompleteCheckout(ctx context.Context, originalSubtotal float64) (CheckoutResult, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := session.FromCtx(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}

	account, err := u.accountRepository.FindByToken(ctx, sess.Token)
	if err != nil {
		return CheckoutResult{}, err
	}

	promotion, redemption, err := u.findApplied(ctx, account)
	if err != nil {
		return CheckoutResult{}, err
	}

	now := time.Now()
	pricing := PriceOrder(originalSubtotal, promotion, redemption, now)
	pointsEarned := PointsEarned(originalSubtotal, account.Tier, DoublePoints(promotion, now))

	account.Points += pointsEarned
	if redemption != nil {
		account.Points -= redemption.PointsCost
	}
	account.TotalSpent += originalSubtotal
	account.Visits++
	account.Tier = TierFor(account.TotalSpent)
	account.AppliedPromotionID = ""
	account.AppliedRedemptionID = ""

	if err := u.accountRepository.Save(ctx, sess.Token, account); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		Pricing:      pricing,
		PointsEarned: pointsEarned,
		Account:      account,
		Promotion:    promotion,
		Redemption:   redemption,
	}, nil
}

func (u *rewardsUseCase) findApplied(ctx context.Context, account Account) (*Promotion, *Redemption, error) {
	var promotion *Promotion
	var redemption *Redemption

	if account.AppliedPromotionID != "" {
		p, err := u.promotionRepository.FindByID(ctx, account.AppliedPromotionID)
		if err != nil {
			return nil, nil, err
		}
		promotion = &p
	}

	if account.AppliedRedemptionID != "" {
		rd, err := u.redemptionRepository.FindByID(ctx, account.AppliedRedemptionID)
		if err != nil {
			return nil, nil, err
		}
		redemption = &rd
	}

	return promotion, redemption, nil
}
