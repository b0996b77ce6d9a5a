package cart

import "github.com/kelvinwijaya/kopitiam/internal/module/customerapp/menu"

type AddItemRequest struct {
	ItemID         string                    `json:"item_id" validate:"required"`
	Customizations menu.CustomizationOptions `json:"customizations"`
}

type UpdateQuantityRequest struct {
	ItemID         string                    `json:"item_id" validate:"required"`
	Customizations menu.CustomizationOptions `json:"customizations"`
	Quantity       int64                     `json:"quantity" validate:"gte=0"`
}

type RemoveLineRequest struct {
	ItemID         string                    `json:"item_id" validate:"required"`
	Customizations menu.CustomizationOptions `json:"customizations"`
}
