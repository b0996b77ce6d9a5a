package order

import (
	"time"

	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/menu"
)

type Order struct {
	ID                 string
	TableNumber        int64
	PaymentMethod      string
	TransactionID      *string
	Status             string
	Items              []Item
	Subtotal           float64
	PromotionDiscount  float64
	RedemptionDiscount float64
	TotalAmount        float64
	PromotionID        string
	RedemptionID       string
	PointsEarned       int64
	EstimatedReadyAt   time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Item struct {
	OrderID        string
	ItemID         string
	Name           string
	Customizations menu.CustomizationOptions
	UnitPrice      float64
	Quantity       int64
}
