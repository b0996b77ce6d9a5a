package rewards

type ApplyPromotionRequest struct {
	PromotionID string `json:"promotion_id" validate:"required"`
}

type ApplyRedemptionRequest struct {
	RedemptionID string `json:"redemption_id" validate:"required"`
}
