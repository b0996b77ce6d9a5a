package cart

import "github.com/kelvinwijaya/kopitiam/internal/module/customerapp/menu"

type ViewCartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalItems int64              `json:"total_items"`
	Subtotal   float64            `json:"subtotal"`
}

type CartLineResponse struct {
	ItemID         string                    `json:"item_id"`
	Name           string                    `json:"name"`
	Category       string                    `json:"category"`
	BasePrice      float64                   `json:"base_price"`
	Customizations menu.CustomizationOptions `json:"customizations"`
	UnitPrice      float64                   `json:"unit_price"`
	Quantity       int64                     `json:"quantity"`
	LineTotal      float64                   `json:"line_total"`
}

func (r *ViewCartResponse) PopulateFromEntities(lines []CartItem) {
	linesResponse := make([]CartLineResponse, len(lines))
	for k, v := range lines {
		linesResponse[k] = CartLineResponse{
			ItemID:         v.ItemID,
			Name:           v.Name,
			Category:       v.Category,
			BasePrice:      v.BasePrice,
			Customizations: v.Customizations,
			UnitPrice:      v.UnitPrice,
			Quantity:       v.Quantity,
			LineTotal:      v.UnitPrice * float64(v.Quantity),
		}
	}

	r.Lines = linesResponse
	r.TotalItems = TotalItems(lines)
	r.Subtotal = Subtotal(lines)
}
