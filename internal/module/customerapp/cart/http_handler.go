package cart

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
	Validate    *validator.Validate
	CartUseCase CartUseCase
}

func InitHTTPHandler(router *mux.Router, customerSession *internalMiddleware.CustomerSession, validate *validator.Validate, cartUseCase CartUseCase) {
	handler := &HTTPHandler{
		Validate:    validate,
		CartUseCase: cartUseCase,
	}

	router.HandleFunc("/kopitiam/v1/customerapp/cart", publicMiddleware.SetRouteChain(handler.ViewCart, customerSession.Establish)).Methods(http.MethodGet)
	router.HandleFunc("/kopitiam/v1/customerapp/cart/items", publicMiddleware.SetRouteChain(handler.AddItem, customerSession.Establish)).Methods(http.MethodPost)
	router.HandleFunc("/kopitiam/v1/customerapp/cart/items", publicMiddleware.SetRouteChain(handler.UpdateQuantity, customerSession.Establish)).Methods(http.MethodPut)
	router.HandleFunc("/kopitiam/v1/customerapp/cart/items", publicMiddleware.SetRouteChain(handler.RemoveLine, customerSession.Establish)).Methods(http.MethodDelete)
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

func (handler HTTPHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := handler.CartUseCase.ViewCart(ctx)
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
		Message: "cart contents",
		Data:    resp,
		Meta:    nil,
	})

}

func (handler HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := AddItemRequest{}
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

	resp, err := handler.CartUseCase.AddItem(ctx, req)
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
		Message: "item has been successfully added to the cart",
		Data:    resp,
		Meta:    nil,
	})

}

func (handler HTTPHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := UpdateQuantityRequest{}
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

	resp, err := handler.CartUseCase.UpdateQuantity(ctx, req)
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
		Message: "cart line has been successfully updated",
		Data:    resp,
		Meta:    nil,
	})

}

func (handler HTTPHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := RemoveLineRequest{}
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

	resp, err := handler.CartUseCase.RemoveLine(ctx, req)
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
		Message: "cart line has been successfully removed",
		Data:    resp,
		Meta:    nil,
	})

}
