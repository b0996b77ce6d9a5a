package order

import (
	"time"

	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/menu"
)

type GetManyOrderResponse []PlaceOrderResponse

type PlaceOrderResponse struct {
	ID                 string         `json:"id"`
	TableNumber        int64          `json:"table_number"`
	PaymentMethod      string         `json:"payment_method"`
	TransactionID      *string        `json:"transaction_id"`
	Status             string         `json:"status"`
	Items              []ItemResponse `json:"items"`
	Subtotal           float64        `json:"subtotal"`
	PromotionDiscount  float64        `json:"promotion_discount"`
	RedemptionDiscount float64        `json:"redemption_discount"`
	TotalAmount        float64        `json:"total_amount"`
	PromotionID        string         `json:"promotion_id,omitempty"`
	RedemptionID       string         `json:"redemption_id,omitempty"`
	PointsEarned       int64          `json:"points_earned"`
	EstimatedReadyAt   time.Time      `json:"estimated_ready_at"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type ItemResponse struct {
	OrderID        string                    `json:"order_id"`
	ItemID         string                    `json:"item_id"`
	Name           string                    `json:"name"`
	Customizations menu.CustomizationOptions `json:"customizations"`
	UnitPrice      float64                   `json:"unit_price"`
	Quantity       int64                     `json:"quantity"`
}

func (r *PlaceOrderResponse) PopulateFromEntity(o Order) {
	r.ID = o.ID
	r.TableNumber = o.TableNumber
	r.PaymentMethod = o.PaymentMethod
	r.TransactionID = o.TransactionID
	r.Status = o.Status
	r.Subtotal = o.Subtotal
	r.PromotionDiscount = o.PromotionDiscount
	r.RedemptionDiscount = o.RedemptionDiscount
	r.TotalAmount = o.TotalAmount
	r.PromotionID = o.PromotionID
	r.RedemptionID = o.RedemptionID
	r.PointsEarned = o.PointsEarned
	r.EstimatedReadyAt = o.EstimatedReadyAt
	r.CreatedAt = o.CreatedAt
	r.UpdatedAt = o.UpdatedAt

	itemsResponse := make([]ItemResponse, len(o.Items))
	for k, v := range o.Items {
		itemsResponse[k] = ItemResponse{
			OrderID:        v.OrderID,
			ItemID:         v.ItemID,
			Name:           v.Name,
			Customizations: v.Customizations,
			UnitPrice:      v.UnitPrice,
			Quantity:       v.Quantity,
		}
	}
	r.Items = itemsResponse
}
