package authority

import (
	"context"

	"github.com/acecbt/acetoken/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/acecbt/acetoken/services/authority TokenGW

// TokenGW defines the outbound gateway interface for the authority service
type TokenGW interface {
	PublishTokenEvent(ctx context.Context, event *models.TokenEvent) error
	VerifyPayment(ctx context.Context, paymentRef string) (*models.PaymentVerification, error)
}
