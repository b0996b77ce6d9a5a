package menu

type GetMenuResponse struct {
	Items []MenuItemResponse `json:"items"`
}

type MenuItemResponse struct {
	ID                      string                  `json:"id"`
	Name                    string                  `json:"name"`
	Description             string                  `json:"description"`
	BasePrice               float64                 `json:"base_price"`
	Category                string                  `json:"category"`
	Popular                 bool                    `json:"popular"`
	AvailableCustomizations AvailableCustomizations `json:"available_customizations"`
	LargeCupUpcharge        float64                 `json:"large_cup_upcharge"`
	ColdUpcharge            float64                 `json:"cold_upcharge"`
}

func (r *GetMenuResponse) PopulateFromEntities(items []MenuItem, rules PricingRules) {
	itemsResponse := make([]MenuItemResponse, len(items))
	for k, v := range items {
		itemsResponse[k] = MenuItemResponse{
			ID:                      v.ID,
			Name:                    v.Name,
			Description:             v.Description,
			BasePrice:               v.BasePrice,
			Category:                v.Category,
			Popular:                 v.Popular,
			AvailableCustomizations: v.AvailableCustomizations,
			LargeCupUpcharge:        rules.LargeCupUpcharge,
			ColdUpcharge:            rules.ColdUpcharge,
		}
	}
	r.Items = itemsResponse
}

type QuoteItemPriceResponse struct {
	ItemID         string               `json:"item_id"`
	Name           string               `json:"name"`
	BasePrice      float64              `json:"base_price"`
	Customizations CustomizationOptions `json:"customizations"`
	UnitPrice      float64              `json:"unit_price"`
}
