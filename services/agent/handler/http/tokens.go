package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/internal/utils"
	"github.com/acecbt/acetoken/services/agent"
)

// TokenHandler handles token administration performed from the device
type TokenHandler struct {
	accessUC agent.AccessUC
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(accessUC agent.AccessUC) *TokenHandler {
	return &TokenHandler{
		accessUC: accessUC,
	}
}

// CreateToken handles token issuance requests from the device admin
func (h *TokenHandler) CreateToken(c echo.Context) error {
	var req models.CreateTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	code, err := h.accessUC.CreateToken(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create token", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to create token")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Token created successfully", map[string]string{
		"code": code,
	})
}

// ListTokens handles listing requests, merging local and authority views
func (h *TokenHandler) ListTokens(c echo.Context) error {
	summaries, err := h.accessUC.ListTokens(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list tokens", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list tokens")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tokens retrieved successfully", summaries)
}

// DeactivateToken handles deactivation requests
func (h *TokenHandler) DeactivateToken(c echo.Context) error {
	return h.setActive(c, false, "Token deactivated successfully")
}

// ReactivateToken handles reactivation requests
func (h *TokenHandler) ReactivateToken(c echo.Context) error {
	return h.setActive(c, true, "Token reactivated successfully")
}

func (h *TokenHandler) setActive(c echo.Context, active bool, message string) error {
	code := c.Param("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Invalid token code")
	}

	if err := h.accessUC.SetTokenActive(c.Request().Context(), code, active); err != nil {
		return tokenAdminErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}

// ResetTokenDevice handles device-reset requests
func (h *TokenHandler) ResetTokenDevice(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Invalid token code")
	}

	if err := h.accessUC.ResetTokenDevice(c.Request().Context(), code); err != nil {
		return tokenAdminErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token device binding reset", nil)
}

// DeleteToken handles deletion requests
func (h *TokenHandler) DeleteToken(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Invalid token code")
	}

	if err := h.accessUC.DeleteToken(c.Request().Context(), code); err != nil {
		return tokenAdminErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token deleted successfully", nil)
}

func tokenAdminErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCode):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error("Token operation failed", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Token operation failed")
	}
}
