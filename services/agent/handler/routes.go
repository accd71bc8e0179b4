package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/acecbt/acetoken/internal/pkg/middleware"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/services/agent/handler/http"
)

// Handler coordinates the HTTP handlers for the agent service
type Handler struct {
	accessHandler *http.AccessHandler
	tokenHandler  *http.TokenHandler
	authHandler   *http.AuthHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	accessHandler *http.AccessHandler,
	tokenHandler *http.TokenHandler,
	authHandler *http.AuthHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		accessHandler: accessHandler,
		tokenHandler:  tokenHandler,
		authHandler:   authHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers all agent routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (admission and login happen before any session exists)
	e.POST("/access/verify", h.accessHandler.VerifyAccess)
	authGroup := e.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)

	// Session routes require a valid session token of any role
	session := e.Group("/session", middleware.JWTAuthMiddleware(h.cfg.JWT))
	session.GET("", h.accessHandler.CurrentSession)
	session.DELETE("", h.accessHandler.Logout)

	// Admin routes behind the session token and the admin role gate
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
