package menu

type GetMenuRequest struct {
	Category string `validate:"omitempty,oneof=coffee tea specialty food desserts"`
}

type QuoteItemPriceRequest struct {
	ItemID         string               `json:"item_id" validate:"required"`
	Customizations CustomizationOptions `json:"customizations" validate:"required"`
}
