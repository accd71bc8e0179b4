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

// AuthHandler handles HTTP requests for credential operations
type AuthHandler struct {
	tokenUC authority.TokenUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(tokenUC authority.TokenUC) *AuthHandler {
	return &AuthHandler{
		tokenUC: tokenUC,
	}
}

// Login handles username/password login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.tokenUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Login failed", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Login failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// RegisterStudent handles manual student registration requests
func (h *AuthHandler) RegisterStudent(c echo.Context) error {
	var req models.RegisterStudentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	identity, err := h.tokenUC.RegisterStudent(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateAccount) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Student registration failed", logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Student registered successfully", identity)
}
