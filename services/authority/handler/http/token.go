package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/internal/utils"
	"github.com/acecbt/acetoken/services/authority"
)

// TokenHandler handles HTTP requests for token lifecycle operations
type TokenHandler struct {
	tokenUC authority.TokenUC
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(tokenUC authority.TokenUC) *TokenHandler {
	return &TokenHandler{
		tokenUC: tokenUC,
	}
}

// CreateToken handles admin token issuance requests
func (h *TokenHandler) CreateToken(c echo.Context) error {
	var req models.CreateTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	code, err := h.tokenUC.CreateToken(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create token", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to create token")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Token created successfully", map[string]string{
		"code": code,
	})
}

// VerifyToken handles verification and binding attempts from devices
func (h *TokenHandler) VerifyToken(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.tokenUC.VerifyAndBind(c.Request().Context(), &req)
	if err != nil {
		return tokenErrorResponse(c, err)
	}

	if resp.RequiresBinding {
		return utils.SuccessResponse(c, http.StatusOK, "Binding confirmation required", resp)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Token verified successfully", resp)
}

// ListTokens handles admin token listing requests
func (h *TokenHandler) ListTokens(c echo.Context) error {
	summaries, err := h.tokenUC.ListTokens(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list tokens", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list tokens")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tokens retrieved successfully", summaries)
}

// DeactivateToken handles admin deactivation requests
func (h *TokenHandler) DeactivateToken(c echo.Context) error {
	return h.setActive(c, false, "Token deactivated successfully")
}

// ReactivateToken handles admin reactivation requests
func (h *TokenHandler) ReactivateToken(c echo.Context) error {
	return h.setActive(c, true, "Token reactivated successfully")
}

func (h *TokenHandler) setActive(c echo.Context, active bool, message string) error {
	code := c.Param("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Invalid token code")
	}

	if err := h.tokenUC.SetTokenActive(c.Request().Context(), code, active); err != nil {
		return tokenErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}

// ResetTokenDevice handles admin device-reset requests
func (h *TokenHandler) ResetTokenDevice(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Invalid token code")
	}

	if err := h.tokenUC.ResetTokenDevice(c.Request().Context(), code); err != nil {
		return tokenErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token device binding reset", nil)
}

// DeleteToken handles admin deletion requests
func (h *TokenHandler) DeleteToken(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Invalid token code")
	}

	if err := h.tokenUC.DeleteToken(c.Request().Context(), code); err != nil {
		return tokenErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token deleted successfully", nil)
}

// tokenErrorResponse maps lifecycle errors onto HTTP statuses. Denial
// messages travel in the error body so devices can mirror them verbatim.
func tokenErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCode):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrDeactivated),
		errors.Is(err, apperrors.ErrExpired),
		errors.Is(err, apperrors.ErrDeviceMismatch):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrDeviceUnverified):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.Error("Token operation failed", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Token operation failed")
	}
}
