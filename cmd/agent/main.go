package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/acecbt/acetoken/internal/pkg/config"
	"github.com/acecbt/acetoken/internal/pkg/database"
	"github.com/acecbt/acetoken/internal/pkg/health"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/middleware"
	"github.com/acecbt/acetoken/internal/pkg/server"
	"github.com/acecbt/acetoken/services/agent/gateway"
	"github.com/acecbt/acetoken/services/agent/handler"
	httpHandler "github.com/acecbt/acetoken/services/agent/handler/http"
	"github.com/acecbt/acetoken/services/agent/repository"
	"github.com/acecbt/acetoken/services/agent/usecase"
)

func main() {
	appName := "exam-agent"
	configs := config.InitConfig("config/agent.env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.Bool("force_offline", configs.Authority.ForceOffline),
	)

	// Initialize Redis client for the local cache
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize repository (token cache, session store, student registry)
	agentRepo := repository.NewAgentRepo(configs, redisClient)

	// Initialize gateways
	authorityGW := gateway.NewAuthorityGW(configs)
	deviceGW := gateway.NewDeviceGW()

	// Initialize usecase
	accessUC := usecase.NewAccessAgentUC(agentRepo, agentRepo, agentRepo, authorityGW, deviceGW, configs)

	// Handlers for HTTP
	accessHandler := httpHandler.NewAccessHandler(accessUC)
	tokenHandler := httpHandler.NewTokenHandler(accessUC)
	authHandler := httpHandler.NewAuthHandler(accessUC)

	h := handler.NewHandler(accessHandler, tokenHandler, authHandler, configs)

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
