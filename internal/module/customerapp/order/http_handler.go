package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	internalMiddleware "github.com/kelvinwijaya/kopitiam/internal/pkg/middleware"
	"github.com/kelvinwijaya/kopitiam/pkg/errors"
	publicMiddleware "github.com/kelvinwijaya/kopitiam/pkg/middleware"
	"github.com/kelvinwijaya/kopitiam/pkg/response"
	"github.com/kelvinwijaya/kopitiam/pkg/status"
)

type HTTPHandler struct {
	Validate     *validator.Validate
	OrderUseCase OrderUseCase
}

func InitHTTPHandler(router *mux.Router, customerSession *internalMiddleware.CustomerSession, validate *validator.Validate, orderUseCase OrderUseCase) {
	handler := &HTTPHandler{
		Validate:     validate,
		OrderUseCase: orderUseCase,
	}

	router.HandleFunc("/kopitiam/v1/customerapp/orders", publicMiddleware.SetRouteChain(handler.PlaceOrder, customerSession.Establish)).Methods(http.MethodPost)
	router.HandleFunc("/kopitiam/v1/customerapp/orders", publicMiddleware.SetRouteChain(handler.GetManyOrder, customerSession.Establish)).Methods(http.MethodGet)
}

func (handler HTTPHandler) validate(ctx context.Context, payload interface{}) error {
	err := handler.Validate.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	errorFields := err.(validator.ValidationErrors)

	errMessages := make([]string, len(errorFields))

	for k, errorField := range errorFields {
		errMessages[k] = fmt.Sprintf("invalid '%s' with value '%v'", errorField.Field(), errorField.Value())
	}

	errorMessage := strings.Join(errMessages, ", ")

	return fmt.Errorf(errorMessage)
}

func (handler HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := PlaceOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusUnprocessableEntity, response.RESTEnvelope{
			Status:  status.UNPROCESSABLE_ENTITY,
			Message: err.Error(),
		})

		return
	}

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	resp, err := handler.OrderUseCase.PlaceOrder(ctx, req)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}
	response.JSON(w, http.StatusCreated, response.RESTEnvelope{
		Status:  status.CREATED,
		Message: "order has been successfully placed",
		Data:    resp,
		Meta:    nil,
	})

}

func (handler HTTPHandler) GetManyOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := handler.OrderUseCase.GetManyOrder(ctx)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}
	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "list of orders",
		Data:    resp,
		Meta:    nil,
	})

}
