package rewards

import (
	"math"
	"time"
)

type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// TierFor derives the loyalty tier from cumulative spend. The tier is
// always recomputed from the total, never adjusted incrementally.
func TierFor(totalSpent float64) Tier {
	switch {
	case totalSpent >= 200:
		return TierPlatinum
	case totalSpent >= 100:
		return TierGold
	case totalSpent >= 50:
		return TierSilver
	default:
		return TierBronze
	}
}

func TierMultiplier(tier Tier) float64 {
	switch tier {
	case TierSilver:
		return 1.2
	case TierGold:
		return 1.5
	case TierPlatinum:
		return 2.0
	default:
		return 1.0
	}
}

type Account struct {
	Points              int64
	TotalSpent          float64
	Visits              int64
	Tier                Tier
	JoinDate            time.Time
	AppliedPromotionID  string
	AppliedRedemptionID string
}

func NewAccount(points int64, totalSpent float64, visits int64, joinDate time.Time) Account {
	return Account{
		Points:     points,
		TotalSpent: totalSpent,
		Visits:     visits,
		Tier:       TierFor(totalSpent),
		JoinDate:   joinDate,
	}
}

type PromotionType string

const (
	PromotionTypeDiscount PromotionType = "discount"
	PromotionTypePoints   PromotionType = "points"
	PromotionTypeFreeItem PromotionType = "freeItem"
)

type Promotion struct {
	ID          string
	Title       string
	Description string
	Type        PromotionType
	Value       float64
	MinSpend    *float64
	ValidUntil  time.Time
	IsActive    bool
}

func (p Promotion) Active(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.ValidUntil.IsZero() {
		return true
	}

	return !now.After(p.ValidUntil)
}

type RedemptionType string

const (
	RedemptionTypeDiscount RedemptionType = "discount"
	RedemptionTypeFreeItem RedemptionType = "freeItem"
)

type Redemption struct {
	ID          string
	Name        string
	Description string
	PointsCost  int64
	Type        RedemptionType
	Value       float64
}

// OrderPricing is the monetary breakdown of one order. Discounts are
// taken off the running total in a fixed order: promotion first, then
// redemption, composing multiplicatively.
type OrderPricing struct {
	Subtotal           float64
	PromotionDiscount  float64
	RedemptionDiscount float64
	Total              float64
}

// PriceOrder derives the payable total for a cart subtotal with at
// most one promotion and one redemption applied. A discount promotion
// below its minimum spend is silently inert; points and freeItem types
// never touch the monetary path.
func PriceOrder(subtotal float64, promotion *Promotion, redemption *Redemption, now time.Time) OrderPricing {
	pricing := OrderPricing{
		Subtotal: subtotal,
		Total:    subtotal,
	}

	if promotion != nil && promotion.Type == PromotionTypeDiscount && promotion.Active(now) {
		if promotion.MinSpend == nil || subtotal >= *promotion.MinSpend {
			discount := pricing.Total * promotion.Value
			pricing.PromotionDiscount = discount
			pricing.Total -= discount
		}
	}

	if redemption != nil && redemption.Type == RedemptionTypeDiscount {
		discount := pricing.Total * redemption.Value
		pricing.RedemptionDiscount = discount
		pricing.Total -= discount
	}

	return pricing
}

// DoublePoints reports whether the applied promotion doubles point
// earning for the order.
func DoublePoints(promotion *Promotion, now time.Time) bool {
	return promotion != nil && promotion.Type == PromotionTypePoints && promotion.Value == 2 && promotion.Active(now)
}

// PointsEarned computes loyalty points for an order. Points are earned
// on the pre-discount subtotal, scaled by the tier multiplier and
// floored to a whole number.
func PointsEarned(originalSubtotal float64, tier Tier, doublePoints bool) int64 {
	points := int64(math.Floor(originalSubtotal * TierMultiplier(tier)))
	if doublePoints {
		points *= 2
	}

	return points
}
