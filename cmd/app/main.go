package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/kelvinwijaya/kopitiam/config"
	customerapp_cart "github.com/kelvinwijaya/kopitiam/internal/module/customerapp/cart"
	customerapp_menu "github.com/kelvinwijaya/kopitiam/internal/module/customerapp/menu"
	customerapp_order "github.com/kelvinwijaya/kopitiam/internal/module/customerapp/order"
	customerapp_payment "github.com/kelvinwijaya/kopitiam/internal/module/customerapp/payment"
	customerapp_rewards "github.com/kelvinwijaya/kopitiam/internal/module/customerapp/rewards"
	internalMiddleware "github.com/kelvinwijaya/kopitiam/internal/pkg/middleware"
	"github.com/kelvinwijaya/kopitiam/internal/pkg/session"
	"github.com/kelvinwijaya/kopitiam/pkg/applogger"
	"github.com/kelvinwijaya/kopitiam/pkg/middleware"
	"github.com/kelvinwijaya/kopitiam/pkg/server"
	"github.com/kelvinwijaya/kopitiam/pkg/validator"
)

var c *config.Config

func init() {
	c = config.Get()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := applogger.GetLogrus()

	validate := validator.Get()

	pricingRules := customerapp_menu.PricingRules{
		LargeCupUpcharge: c.Pricing.LargeCupUpcharge,
		ColdUpcharge:     c.Pricing.ColdUpcharge,
	}

	rewardsCatalog := customerapp_rewards.LoadCatalog(logger, c.Catalog.RewardsFile)

	sessionStore := session.NewInMemoryStore(logger)

	router := mux.NewRouter()
	router.Use(
		middleware.NewHTTPRequestLogger(logger, c.Application.Debug, http.StatusInternalServerError).Middleware,
	)

	// customer's app
	customerappCatalogRepo := customerapp_menu.NewCatalogRepository(logger, c.Catalog.MenuFile)
	customerappCartRepo := customerapp_cart.NewCartRepository(logger)
	customerappAccountRepo := customerapp_rewards.NewAccountRepository(logger)
	customerappPromotionRepo := customerapp_rewards.NewPromotionRepository(logger, rewardsCatalog.Promotions)
	customerappRedemptionRepo := customerapp_rewards.NewRedemptionRepository(logger, rewardsCatalog.Redemptions)
	customerappOrderRepo := customerapp_order.NewOrderRepository(logger)
	paymentRepo := customerapp_payment.NewPaymentRepository(logger, c.Payment.ProcessingDelay)

	customerSessionMiddleware := internalMiddleware.NewCustomerSessionMiddleware(logger, sessionStore, customerappAccountRepo, internalMiddleware.AccountSeed{
		Points:     c.Rewards.SeedPoints,
		TotalSpent: c.Rewards.SeedTotalSpent,
		Visits:     c.Rewards.SeedVisits,
	})

	customerappMenuUseCase := customerapp_menu.NewMenuUseCase(customerapp_menu.MenuUseCaseProperty{
		Logger:            logger,
		Timeout:           c.Application.Timeout,
		PricingRules:      pricingRules,
		CatalogRepository: customerappCatalogRepo,
	})
	customerapp_menu.InitHTTPHandler(router, customerSessionMiddleware, validate, customerappMenuUseCase)

	customerappCartUseCase := customerapp_cart.NewCartUseCase(customerapp_cart.CartUseCaseProperty{
		Logger:            logger,
		Timeout:           c.Application.Timeout,
		PricingRules:      pricingRules,
		CatalogRepository: customerappCatalogRepo,
		CartRepository:    customerappCartRepo,
	})
	customerapp_cart.InitHTTPHandler(router, customerSessionMiddleware, validate, customerappCartUseCase)

	customerappRewardsUseCase := customerapp_rewards.NewRewardsUseCase(customerapp_rewards.RewardsUseCaseProperty{
		Logger:               logger,
		Timeout:              c.Application.Timeout,
		AccountRepository:    customerappAccountRepo,
		PromotionRepository:  customerappPromotionRepo,
		RedemptionRepository: customerappRedemptionRepo,
	})
	customerapp_rewards.InitHTTPHandler(router, customerSessionMiddleware, validate, customerappRewardsUseCase)

	customerappOrderUseCase := customerapp_order.NewOrderUseCase(customerapp_order.OrderUseCaseProperty{
		Logger:                logger,
		Timeout:               c.Application.Timeout,
		EstimatedPrepDuration: c.Order.EstimatedPrepDuration,
		CartRepository:        customerappCartRepo,
		OrderRepository:       customerappOrderRepo,
		RewardsUseCase:        customerappRewardsUseCase,
		PaymentRepository:     paymentRepo,
	})
	customerapp_order.InitHTTPHandler(router, customerSessionMiddleware, validate, customerappOrderUseCase)

	handler := middleware.SetChain(
		router,
		cors.New(cors.Options{
			AllowedOrigins:   c.CORS.AllowedOrigins,
			AllowedMethods:   c.CORS.AllowedMethods,
			AllowedHeaders:   c.CORS.AllowedHeaders,
			ExposedHeaders:   c.CORS.ExposedHeaders,
			MaxAge:           c.CORS.MaxAge,
			AllowCredentials: c.CORS.AllowCredentials,
		}).Handler,
	)

	srv := &server.Server{
		Server: http.Server{
			Addr:    fmt.Sprintf(":%d", c.Application.Port),
			Handler: handler,
		},
		Logger: logger,
	}

	go func() {
		srv.ListenAndServe()
	}()

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm

	srv.Shutdown(ctx)
}
