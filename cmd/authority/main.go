package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/acecbt/acetoken/internal/pkg/config"
	"github.com/acecbt/acetoken/internal/pkg/database"
	"github.com/acecbt/acetoken/internal/pkg/health"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/middleware"
	natspkg "github.com/acecbt/acetoken/internal/pkg/nats"
	"github.com/acecbt/acetoken/internal/pkg/server"
	"github.com/acecbt/acetoken/services/authority/gateway"
	"github.com/acecbt/acetoken/services/authority/handler"
	httpHandler "github.com/acecbt/acetoken/services/authority/handler/http"
	"github.com/acecbt/acetoken/services/authority/repository"
	"github.com/acecbt/acetoken/services/authority/usecase"
)

func main() {
	appName := "token-authority"
	configs := config.InitConfig("config/authority.env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	tokenRepo := repository.NewTokenRepo(configs, postgresClient.GetDB())
	accountRepo := repository.NewAccountRepo(configs, postgresClient.GetDB())

	// Initialize gateway
	tokenGW := gateway.NewTokenGW(natsClient, configs)

	// Initialize usecase
	tokenUC := usecase.NewTokenAuthorityUC(tokenRepo, accountRepo, tokenGW, configs)

	// Seed the bootstrap admin account from config
	if err := tokenUC.EnsureAdminAccount(context.Background()); err != nil {
		zapLogger.Fatal("Failed to seed admin account", logger.Err(err))
	}

	// Handlers for HTTP
	tokenHandler := httpHandler.NewTokenHandler(tokenUC)
	authHandler := httpHandler.NewAuthHandler(tokenUC)
	paymentHandler := httpHandler.NewPaymentHandler(tokenUC)

	h := handler.NewHandler(tokenHandler, authHandler, paymentHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
