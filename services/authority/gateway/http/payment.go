package gateway_http

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	httpclient "github.com/acecbt/acetoken/internal/pkg/http"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/internal/pkg/retry"
)

// PaymentGateway is an HTTP client for the payment provider's verification API
type PaymentGateway struct {
	client  *httpclient.Client
	retrier *retry.Retrier
}

// NewPaymentGateway creates a new payment gateway client
func NewPaymentGateway(cfg models.PaymentConfig) *PaymentGateway {
	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = func(err error) bool {
		// Provider verdicts are final, only transport failures are retried
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			return statusErr.StatusCode >= 500
		}
		return true
	}

	return &PaymentGateway{
		client:  httpclient.NewClientWithAPIKey(cfg.GatewayURL, cfg.APIKey, cfg.RequestTimeout),
		retrier: retry.New(retryConfig, logger.GetGlobalLogger()),
	}
}

// providerVerifyResponse mirrors the provider's transaction verification
// payload. Amounts come back in the currency's minor unit.
type providerVerifyResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Reference string  `json:"reference"`
		Status    string  `json:"status"`
		Amount    float64 `json:"amount"`
		Currency  string  `json:"currency"`
	} `json:"data"`
}

// VerifyPayment checks a payment reference against the provider
func (g *PaymentGateway) VerifyPayment(ctx context.Context, paymentRef string) (*models.PaymentVerification, error) {
	endpoint := fmt.Sprintf("/transaction/verify/%s", url.PathEscape(paymentRef))

	var resp providerVerifyResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.GetJSON(ctx, endpoint, &resp)
	})
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
			logger.Warn("Payment reference rejected by provider",
				logger.String("payment_ref", paymentRef),
				logger.Int("status_code", statusErr.StatusCode))
			return nil, fmt.Errorf("payment verification rejected: %w", err)
		}
		return nil, fmt.Errorf("payment provider unreachable: %w", err)
	}

	return &models.PaymentVerification{
		Reference: resp.Data.Reference,
		Paid:      resp.Status && resp.Data.Status == "success",
		Amount:    resp.Data.Amount / 100,
		Currency:  resp.Data.Currency,
	}, nil
}
