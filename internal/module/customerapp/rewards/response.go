package rewards

import "time"

type AccountResponse struct {
	Points              int64     `json:"points"`
	TotalSpent          float64   `json:"total_spent"`
	Visits              int64     `json:"visits"`
	Tier                Tier      `json:"tier"`
	TierMultiplier      float64   `json:"tier_multiplier"`
	JoinDate            time.Time `json:"join_date"`
	AppliedPromotionID  string    `json:"applied_promotion_id,omitempty"`
	AppliedRedemptionID string    `json:"applied_redemption_id,omitempty"`
}

func (r *AccountResponse) PopulateFromEntity(a Account) {
	r.Points = a.Points
	r.TotalSpent = a.TotalSpent
	r.Visits = a.Visits
	r.Tier = a.Tier
	r.TierMultiplier = TierMultiplier(a.Tier)
	r.JoinDate = a.JoinDate
	r.AppliedPromotionID = a.AppliedPromotionID
	r.AppliedRedemptionID = a.AppliedRedemptionID
}

type GetCatalogResponse struct {
	Promotions  []PromotionResponse  `json:"promotions"`
	Redemptions []RedemptionResponse `json:"redemptions"`
}

type PromotionResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        PromotionType `json:"type"`
	Value       float64       `json:"value"`
	MinSpend    *float64      `json:"min_spend,omitempty"`
	ValidUntil  *time.Time    `json:"valid_until,omitempty"`
	IsActive    bool          `json:"is_active"`
}

type RedemptionResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	PointsCost  int64          `json:"points_cost"`
	Type        RedemptionType `json:"type"`
	Value       float64        `json:"value"`
}

func (r *GetCatalogResponse) PopulateFromEntities(promotions []Promotion, redemptions []Redemption) {
	promotionsResponse := make([]PromotionResponse, len(promotions))
	for k, v := range promotions {
		pr := PromotionResponse{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Type:        v.Type,
			Value:       v.Value,
			MinSpend:    v.MinSpend,
			IsActive:    v.IsActive,
		}
		if !v.ValidUntil.IsZero() {
			validUntil := v.ValidUntil
			pr.ValidUntil = &validUntil
		}
		promotionsResponse[k] = pr
	}
	r.Promotions = promotionsResponse

	redemptionsResponse := make([]RedemptionResponse, len(redemptions))
	for k, v := range redemptions {
		redemptionsResponse[k] = RedemptionResponse{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			PointsCost:  v.PointsCost,
			Type:        v.Type,
			Value:       v.Value,
		}
	}
	r.Redemptions = redemptionsResponse
}
