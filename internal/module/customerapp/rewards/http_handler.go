package rewards

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/kelvinwijaya/kopitiam/pkg/errors"
	publicMiddleware "github.com/kelvinwijaya/kopitiam/pkg/middleware"
	"github.com/kelvinwijaya/kopitiam/pkg/response"
	"github.com/kelvinwijaya/kopitiam/pkg/status"
)

type HTTPHandler struct {
	Validate       *validator.Validate
	RewardsUseCase RewardsUseCase
}

// SessionMiddleware is the session-establishment middleware the routes
// are chained through; declared here rather than imported from
// internal/pkg/middleware because that package depends on this one.
type SessionMiddleware interface {
	Establish(next http.HandlerFunc) http.HandlerFunc
}

func InitHTTPHandler(router *mux.Router, customerSession SessionMiddleware, validate *validator.Validate, rewardsUseCase RewardsUseCase) {
	handler := &HTTPHandler{
		Validate:       validate,
		RewardsUseCase: rewardsUseCase,
	}

	router.HandleFunc("/kopitiam/v1/customerapp/rewards/account", publicMiddleware.SetRouteChain(handler.GetAccount, customerSession.Establish)).Methods(http.MethodGet)
	router.HandleFunc("/kopitiam/v1/customerapp/rewards/catalog", publicMiddleware.SetRouteChain(handler.GetCatalog, customerSession.Establish)).Methods(http.MethodGet)
	router.HandleFunc("/kopitiam/v1/customerapp/rewards/promotions/apply", publicMiddleware.SetRouteChain(handler.ApplyPromotion, customerSession.Establish)).Methods(http.MethodPost)
	router.HandleFunc("/kopitiam/v1/customerapp/rewards/redemptions/apply", publicMiddleware.SetRouteChain(handler.ApplyRedemption, customerSession.Establish)).Methods(http.MethodPost)
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

func (handler HTTPHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := handler.RewardsUseCase.GetAccount(ctx)
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
		Message: "rewards account",
		Data:    resp,
		Meta:    nil,
	})

}

func (handler HTTPHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := handler.RewardsUseCase.GetCatalog(ctx)
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
		Message: "rewards catalog",
		Data:    resp,
		Meta:    nil,
	})

}

func (handler HTTPHandler) ApplyPromotion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := ApplyPromotionRequest{}
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

	resp, err := handler.RewardsUseCase.ApplyPromotion(ctx, req)
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
		Message: "promotion has been successfully applied",
		Data:    resp,
		Meta:    nil,
	})

}

func (handler HTTPHandler) ApplyRedemption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := ApplyRedemptionRequest{}
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

	resp, err := handler.RewardsUseCase.ApplyRedemption(ctx, req)
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
		Message: "reward redemption has been successfully applied",
		Data:    resp,
		Meta:    nil,
	})

}
