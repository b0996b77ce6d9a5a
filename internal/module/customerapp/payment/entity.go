package payment

import "time"

const (
	MethodCard    = "card"
	MethodCounter = "counter"
)

type ChargeRequest struct {
	OrderID string
	Method  string
	Amount  float64
}

type ChargeResponse struct {
	TransactionID     string
	TransactionStatus string
	PaidAt            time.Time
}
