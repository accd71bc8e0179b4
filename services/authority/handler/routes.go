package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/acecbt/acetoken/internal/pkg/middleware"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/services/authority/handler/http"
)

// Handler coordinates the HTTP handlers for the authority service
type Handler struct {
	tokenHandler   *http.TokenHandler
	authHandler    *http.AuthHandler
	paymentHandler *http.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	tokenHandler *http.TokenHandler,
	authHandler *http.AuthHandler,
	paymentHandler *http.PaymentHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tokenHandler:   tokenHandler,
		authHandler:    authHandler,
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all authority routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)

	tokenGroup := e.Group("/tokens")
	tokenGroup.POST("/verify", h.tokenHandler.VerifyToken)
	tokenGroup.POST("/issue-from-payment", h.paymentHandler.IssueFromPayment)

	// Admin routes behind JWT session auth and the admin role gate
	admin := e.Group("/admin", middleware.JWTAuthMiddleware(h.cfg.JWT), middleware.AdminOnly())

	adminTokens := admin.Group("/tokens")
	adminTokens.POST("", h.tokenHandler.CreateToken)
	adminTokens.GET("", h.tokenHandler.ListTokens)
	adminTokens.PUT("/:code/deactivate", h.tokenHandler.DeactivateToken)
	adminTokens.PUT("/:code/reactivate", h.tokenHandler.ReactivateToken)
	adminTokens.PUT("/:code/reset-device", h.tokenHandler.ResetTokenDevice)
	adminTokens.DELETE("/:code", h.tokenHandler.DeleteToken)

	admin.POST("/students", h.authHandler.RegisterStudent)
}
