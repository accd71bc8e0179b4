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

// AuthHandler handles credential authentication on the device
type AuthHandler struct {
	accessUC agent.AccessUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accessUC agent.AccessUC) *AuthHandler {
	return &AuthHandler{
		accessUC: accessUC,
	}
}

// Login handles credential logins, online or against local records
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accessUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Login failed", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Login failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// RegisterStudent handles manual student registration on the device
func (h *AuthHandler) RegisterStudent(c echo.Context) error {
	var req models.RegisterStudentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	identity, err := h.accessUC.RegisterStudent(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateAccount):
			return utils.ConflictResponse(c, err.Error())
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			return utils.BadRequestResponse(c, "Full name, registration number and password are required")
		default:
			logger.Error("Student registration failed", logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Student registration failed")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Student registered successfully", identity)
}
