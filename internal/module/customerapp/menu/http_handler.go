package menu

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
	MenuUseCase MenuUseCase
}

func InitHTTPHandler(router *mux.Router, customerSession *internalMiddleware.CustomerSession, validate *validator.Validate, menuUseCase MenuUseCase) {
	handler := &HTTPHandler{
		Validate:    validate,
		MenuUseCase: menuUseCase,
	}

	router.HandleFunc("/kopitiam/v1/customerapp/menu", publicMiddleware.SetRouteChain(handler.GetMenu, customerSession.Establish)).Methods(http.MethodGet)
	router.HandleFunc("/kopitiam/v1/customerapp/menu/quote", publicMiddleware.SetRouteChain(handler.QuoteItemPrice, customerSession.Establish)).Methods(http.MethodPost)
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

func (handler HTTPHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := GetMenuRequest{
		Category: r.URL.Query().Get("category"),
	}

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	resp, err := handler.MenuUseCase.GetMenu(ctx, req)
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
		Message: "list of menu items",
		Data:    resp,
		Meta:    nil,
	})

}

func (handler HTTPHandler) QuoteItemPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := QuoteItemPriceRequest{}
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

	resp, err := handler.MenuUseCase.QuoteItemPrice(ctx, req)
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
		Message: "item price has been successfully quoted",
		Data:    resp,
		Meta:    nil,
	})

}
