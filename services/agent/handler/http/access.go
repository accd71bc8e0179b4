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

// AccessHandler handles HTTP requests for exam admission on the device
type AccessHandler struct {
	accessUC agent.AccessUC
}

// NewAccessHandler creates a new access handler
func NewAccessHandler(accessUC agent.AccessUC) *AccessHandler {
	return &AccessHandler{
		accessUC: accessUC,
	}
}

// VerifyAccess handles admission attempts entered on this device
func (h *AccessHandler) VerifyAccess(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accessUC.VerifyAccess(c.Request().Context(), &req)
	if err != nil {
		return accessErrorResponse(c, err)
	}

	if resp.RequiresBinding {
		return utils.SuccessResponse(c, http.StatusOK, "Binding confirmation required", resp)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Access granted", resp)
}

// CurrentSession returns the active session on this device
func (h *AccessHandler) CurrentSession(c echo.Context) error {
	session, err := h.accessUC.CurrentSession(c.Request().Context())
	if err != nil {
		logger.Error("Failed to load session", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to load session")
	}
	if session == nil {
		return utils.NotFoundResponse(c, "No active session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved successfully", session)
}

// Logout ends the active session on this device
func (h *AccessHandler) Logout(c echo.Context) error {
	if err := h.accessUC.Logout(c.Request().Context()); err != nil {
		logger.Error("Failed to clear session", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to clear session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// accessErrorResponse maps admission errors onto HTTP statuses. Denial
// messages are surfaced verbatim so proctors see the same wording the
// authority produced.
func accessErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCode):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrDeactivated),
		errors.Is(err, apperrors.ErrExpired),
		errors.Is(err, apperrors.ErrDeviceMismatch):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrDeviceUnverified):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrNetworkUnavailable):
		return utils.ServiceUnavailableResponse(c, err.Error())
	default:
		logger.Error("Access verification failed", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Access verification failed")
	}
}
