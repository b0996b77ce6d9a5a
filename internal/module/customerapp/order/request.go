package order

type PlaceOrderRequest struct {
	TableNumber   int64  `json:"table_number" validate:"required,gte=1"`
	PaymentMethod string `json:"payment_method" validate:"oneof=card counter"`
}
