package gateway_http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	httpclient "github.com/acecbt/acetoken/internal/pkg/http"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

// AuthorityClient is the HTTP client for the remote token authority. Every
// denial the authority can issue comes back as the matching sentinel error;
// anything that prevents a verdict from being read, transport failures and
// non-JSON bodies included, comes back as ErrNetworkUnavailable so callers
// fall back to the local cache.
type AuthorityClient struct {
	client *httpclient.Client
}

// NewAuthorityClient creates a new authority HTTP client
func NewAuthorityClient(cfg models.AuthorityConfig) *AuthorityClient {
	return &AuthorityClient{
		client: httpclient.NewClient(cfg.BaseURL, cfg.RequestTimeout),
	}
}

// SetSessionToken sets the bearer token attached to admin calls
func (c *AuthorityClient) SetSessionToken(token string) {
	c.client.SetBearerToken(token)
}

// sentinels the authority serializes verbatim into error bodies
var denialMessages = map[string]error{
	apperrors.ErrInvalidCode.Error():        apperrors.ErrInvalidCode,
	apperrors.ErrDeactivated.Error():        apperrors.ErrDeactivated,
	apperrors.ErrExpired.Error():            apperrors.ErrExpired,
	apperrors.ErrDeviceMismatch.Error():     apperrors.ErrDeviceMismatch,
	apperrors.ErrInvalidCredentials.Error(): apperrors.ErrInvalidCredentials,
	apperrors.ErrDuplicateAccount.Error():   apperrors.ErrDuplicateAccount,
	apperrors.ErrPaymentNotVerified.Error(): apperrors.ErrPaymentNotVerified,
	apperrors.ErrInvalidAmount.Error():      apperrors.ErrInvalidAmount,
}

// translateError turns a client error into a local sentinel. notFound is the
// denial assumed for a 404 whose message is not recognized. Any other
// unrecognized 4xx keeps its own message, an auth failure must not read as
// a missing access code.
func translateError(err error, notFound error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode >= 500 {
			return fmt.Errorf("%w: %v", apperrors.ErrNetworkUnavailable, err)
		}
		if sentinel, ok := denialMessages[statusErr.Message]; ok {
			return sentinel
		}
		if statusErr.StatusCode == http.StatusNotFound {
			return notFound
		}
		return fmt.Errorf("authority refused request: %w", err)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrNetworkUnavailable, err)
}

// envelope mirrors the authority's standard response body
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// VerifyToken submits a verification and binding attempt to the authority
func (c *AuthorityClient) VerifyToken(ctx context.Context, req *models.VerifyRequest) (*models.VerifyResponse, error) {
	var resp envelope[models.VerifyResponse]
	if err := c.client.PostJSON(ctx, "/tokens/verify", req, &resp); err != nil {
		return nil, translateError(err, apperrors.ErrInvalidCode)
	}
	return &resp.Data, nil
}

// CreateToken asks the authority to issue a new token
func (c *AuthorityClient) CreateToken(ctx context.Context, req *models.CreateTokenRequest) (string, error) {
	var resp envelope[struct {
		Code string `json:"code"`
	}]
	if err := c.doAdmin(ctx, func(ctx context.Context) error {
		return c.client.PostJSON(ctx, "/admin/tokens", req, &resp)
	}); err != nil {
		return "", err
	}
	return resp.Data.Code, nil
}

// ListTokens fetches the authority's token summaries
func (c *AuthorityClient) ListTokens(ctx context.Context) ([]models.TokenSummary, error) {
	var resp envelope[[]models.TokenSummary]
	if err := c.doAdmin(ctx, func(ctx context.Context) error {
		return c.client.GetJSON(ctx, "/admin/tokens", &resp)
	}); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SetTokenActive deactivates or reactivates a token at the authority
func (c *AuthorityClient) SetTokenActive(ctx context.Context, code string, active bool) error {
	action := "deactivate"
	if active {
		action = "reactivate"
	}
	endpoint := fmt.Sprintf("/admin/tokens/%s/%s", url.PathEscape(code), action)
	return c.doAdmin(ctx, func(ctx context.Context) error {
		return c.client.PutJSON(ctx, endpoint, nil, nil)
	})
}

// ResetTokenDevice clears a token's device binding at the authority
func (c *AuthorityClient) ResetTokenDevice(ctx context.Context, code string) error {
	endpoint := fmt.Sprintf("/admin/tokens/%s/reset-device", url.PathEscape(code))
	return c.doAdmin(ctx, func(ctx context.Context) error {
		return c.client.PutJSON(ctx, endpoint, nil, nil)
	})
}

// DeleteToken removes a token at the authority
func (c *AuthorityClient) DeleteToken(ctx context.Context, code string) error {
	endpoint := fmt.Sprintf("/admin/tokens/%s", url.PathEscape(code))
	return c.doAdmin(ctx, func(ctx context.Context) error {
		return c.client.DeleteJSON(ctx, endpoint, nil)
	})
}

// Login submits a credential login to the authority
func (c *AuthorityClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	var resp envelope[models.AuthResponse]
	if err := c.client.PostJSON(ctx, "/auth/login", req, &resp); err != nil {
		return nil, translateError(err, apperrors.ErrInvalidCredentials)
	}

	// Admin calls reuse the session granted here
	c.client.SetBearerToken(resp.Data.SessionToken)
	return &resp.Data, nil
}

// RegisterStudent registers a student account at the authority
func (c *AuthorityClient) RegisterStudent(ctx context.Context, req *models.RegisterStudentRequest) (*models.Identity, error) {
	var resp envelope[models.Identity]
	if err := c.doAdmin(ctx, func(ctx context.Context) error {
		return c.client.PostJSON(ctx, "/admin/students", req, &resp)
	}); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *AuthorityClient) doAdmin(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return translateError(err, apperrors.ErrInvalidCode)
	}
	return nil
}
