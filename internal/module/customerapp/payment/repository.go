package payment

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kelvinwijaya/kopitiam/pkg/errors"
	"github.com/kelvinwijaya/kopitiam/pkg/status"
)

type PaymentRepository interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResponse, error)
}

// paymentRepository simulates the payment gateway: every charge
// settles after a fixed processing delay. No real gateway is involved.
type paymentRepository struct {
	logger          *logrus.Logger
	processingDelay time.Duration
}

func NewPaymentRepository(logger *logrus.Logger, processingDelay time.Duration) PaymentRepository {
	return &paymentRepository{
		logger:          logger,
		processingDelay: processingDelay,
	}
}

// Charge implements PaymentRepository.
func (r *paymentRepository) Charge(ctx context.Context, req ChargeRequest) (ChargeResponse, error) {
	select {
	case <-ctx.Done():
		r.logger.WithContext(ctx).WithError(ctx.Err()).Error()
		return ChargeResponse{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while charging the payment")
	case <-time.After(r.processingDelay):
	}

	return ChargeResponse{
		TransactionID:     uuid.NewString(),
		TransactionStatus: "settlement",
		PaidAt:            time.Now(),
	}, nil
}
