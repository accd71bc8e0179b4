package gateway

import (
	"context"

	"github.com/acecbt/acetoken/internal/pkg/models"
)

// PublishTokenEvent publishes a token lifecycle event to the audit stream
func (g *TokenGW) PublishTokenEvent(ctx context.Context, event *models.TokenEvent) error {
	return g.natsGateway.PublishTokenEvent(ctx, event)
}

// VerifyPayment checks a payment reference against the payment provider
func (g *TokenGW) VerifyPayment(ctx context.Context, paymentRef string) (*models.PaymentVerification, error) {
	return g.paymentGateway.VerifyPayment(ctx, paymentRef)
}
