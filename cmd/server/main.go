package main

import (
	"net/http"

	"codmart-be/internal/api"
	"codmart-be/internal/auth"
	"codmart-be/internal/cart"
	"codmart-be/internal/catalog"
	"codmart-be/internal/config"
	"codmart-be/internal/db"
	"codmart-be/internal/logger"
	"codmart-be/internal/middleware"
	"codmart-be/internal/order"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := db.Open(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	catalogRepo := catalog.NewStaticRepository()
	catalogSvc := catalog.NewService(catalogRepo)

	cartSvc := cart.NewService(catalogRepo, cart.PolicyLenient)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	authMgr := auth.NewManager(cfg.JWTSecret, cfg.AdminPasswordHash)

	h := api.NewHandler(catalogSvc, cartSvc, orderSvc, authMgr)

	handler := middleware.LoggingMiddleware(
		middleware.RateLimitMiddleware(h.Routes()),
	)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, handler); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
