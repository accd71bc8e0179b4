package gateway

import (
	"github.com/acecbt/acetoken/internal/pkg/models"
	natspkg "github.com/acecbt/acetoken/internal/pkg/nats"
	"github.com/acecbt/acetoken/services/authority"
	gateway_http "github.com/acecbt/acetoken/services/authority/gateway/http"
	gateway_nats "github.com/acecbt/acetoken/services/authority/gateway/nats"
)

// TokenGW handles outbound gateway operations for the authority service
type TokenGW struct {
	natsGateway    *gateway_nats.NATSGateway
	paymentGateway *gateway_http.PaymentGateway
}

// NewTokenGW creates a new gateway instance with NATS and payment clients
func NewTokenGW(natsClient *natspkg.Client, cfg *models.Config) authority.TokenGW {
	return &TokenGW{
		natsGateway:    gateway_nats.NewNATSGateway(natsClient),
		paymentGateway: gateway_http.NewPaymentGateway(cfg.Payment),
	}
}
