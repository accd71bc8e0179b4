package usecase

import (
	"context"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

// IssueFromPayment verifies a payment reference against the payment gateway
// and issues a token on success
func (u *TokenAuthorityUC) IssueFromPayment(ctx context.Context, req *models.IssueFromPaymentRequest) (string, error) {
	verification, err := u.tokenGW.VerifyPayment(ctx, req.PaymentRef)
	if err != nil {
		return "", err
	}

	if !verification.Paid {
		logger.Warn("Payment reference not settled",
			logger.String("payment_ref", req.PaymentRef))
		return "", apperrors.ErrPaymentNotVerified
	}

	if verification.Amount < u.cfg.Payment.MinimumAmount {
		logger.Warn("Payment below minimum amount",
			logger.String("payment_ref", req.PaymentRef),
			logger.Float64("amount", verification.Amount),
			logger.Float64("minimum", u.cfg.Payment.MinimumAmount))
		return "", apperrors.ErrInvalidAmount
	}

	return u.CreateToken(ctx, &models.CreateTokenRequest{
		Source:      models.TokenSourceStudent,
		PaymentRef:  verification.Reference,
		AmountPaid:  verification.Amount,
		ExamType:    req.ExamType,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
}
