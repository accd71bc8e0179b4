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

// PaymentHandler handles HTTP requests for payment-backed token issuance
type PaymentHandler struct {
	tokenUC authority.TokenUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(tokenUC authority.TokenUC) *PaymentHandler {
	return &PaymentHandler{
		tokenUC: tokenUC,
	}
}

// IssueFromPayment verifies a payment reference and issues a token
func (h *PaymentHandler) IssueFromPayment(c echo.Context) error {
	var req models.IssueFromPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PaymentRef == "" {
		return utils.BadRequestResponse(c, "Payment reference is required")
	}

	code, err := h.tokenUC.IssueFromPayment(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPaymentNotVerified),
			errors.Is(err, apperrors.ErrInvalidAmount):
			return utils.ForbiddenResponse(c, err.Error())
		default:
			logger.Error("Payment-backed issuance failed",
				logger.String("payment_ref", req.PaymentRef),
				logger.ErrorField(err))
			return utils.ServiceUnavailableResponse(c, "Payment verification unavailable")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Token issued successfully", map[string]string{
		"code": code,
	})
}
