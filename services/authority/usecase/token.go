package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	jwtpkg "github.com/acecbt/acetoken/internal/pkg/jwt"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/internal/utils"
	"github.com/acecbt/acetoken/services/authority"
)

var _ authority.TokenUC = (*TokenAuthorityUC)(nil)

// CreateToken issues a fresh access token and returns its code
func (u *TokenAuthorityUC) CreateToken(ctx context.Context, req *models.CreateTokenRequest) (string, error) {
	source := req.Source
	if source == "" {
		source = models.TokenSourceAdmin
	}

	token := &models.Token{
		Code:        utils.GenerateAccessCode(u.cfg.Token.Prefix),
		IsActive:    true,
		ExamType:    req.ExamType,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		PaymentRef:  req.PaymentRef,
		AmountPaid:  req.AmountPaid,
		GeneratedBy: source,
	}

	if err := u.tokenRepo.CreateToken(ctx, token); err != nil {
		return "", fmt.Errorf("failed to create token: %w", err)
	}

	u.publishEvent(ctx, &models.TokenEvent{
		Type:   models.TokenEventCreated,
		Code:   token.Code,
		Source: token.GeneratedBy,
	})

	logger.Info("Access token created",
		logger.String("code", token.Code),
		logger.String("exam_type", string(token.ExamType)),
		logger.String("source", string(token.GeneratedBy)))

	return token.Code, nil
}

// VerifyAndBind runs the token admission state machine. Order matters:
// deactivation dominates every other verdict, expiry dominates binding, and
// binding a fresh token requires explicit confirmation from the caller.
func (u *TokenAuthorityUC) VerifyAndBind(ctx context.Context, req *models.VerifyRequest) (*models.VerifyResponse, error) {
	code := utils.NormalizeAccessCode(req.Code)
	if err := utils.ValidateAccessCode(code); err != nil {
		return nil, apperrors.ErrInvalidCode
	}
	if req.DeviceFingerprint == "" {
		return nil, apperrors.ErrDeviceUnverified
	}

	token, err := u.tokenRepo.GetTokenByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !token.IsActive {
		return nil, apperrors.ErrDeactivated
	}
	if token.IsExpired(now) {
		return nil, apperrors.ErrExpired
	}

	if token.IsBound() {
		if !token.BoundTo(req.DeviceFingerprint) {
			return nil, apperrors.ErrDeviceMismatch
		}
		return u.admit(token)
	}

	if !req.ConfirmBinding {
		return &models.VerifyResponse{RequiresBinding: true}, nil
	}

	// An expiry set at a previous binding survives a device reset, so a
	// rebind keeps it instead of starting a fresh validity window
	expiresAt := now.AddDate(0, 0, u.cfg.Token.BindingValidityDays)
	if token.ExpiresAt != nil {
		expiresAt = *token.ExpiresAt
	}
	token, err = u.tokenRepo.BindToken(ctx, code, req.DeviceFingerprint, now, expiresAt)
	if err != nil {
		return nil, err
	}

	u.publishEvent(ctx, &models.TokenEvent{
		Type:              models.TokenEventBound,
		Code:              code,
		DeviceFingerprint: req.DeviceFingerprint,
	})

	logger.Info("Access token bound",
		logger.String("code", code),
		logger.Time("expires_at", expiresAt))

	return u.admit(token)
}

// admit produces the identity and session token for an admitted token
func (u *TokenAuthorityUC) admit(token *models.Token) (*models.VerifyResponse, error) {
	identity := &models.Identity{
		Role:      models.RoleStudent,
		FullName:  token.FullName,
		RegNumber: token.Code,
		ExamType:  token.ExamType,
	}

	sessionToken, _, err := jwtpkg.GenerateToken(identity, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &models.VerifyResponse{
		Identity:     identity,
		SessionToken: sessionToken,
		Token:        token,
	}, nil
}

// SetTokenActive deactivates or reactivates a token
func (u *TokenAuthorityUC) SetTokenActive(ctx context.Context, code string, active bool) error {
	code = utils.NormalizeAccessCode(code)
	if err := u.tokenRepo.SetTokenActive(ctx, code, active); err != nil {
		return err
	}

	eventType := models.TokenEventDeactivated
	if active {
		eventType = models.TokenEventReactivated
	}
	u.publishEvent(ctx, &models.TokenEvent{Type: eventType, Code: code})

	logger.Info("Access token status changed",
		logger.String("code", code),
		logger.Bool("active", active))

	return nil
}

// ResetTokenDevice clears a token's device binding so it can be re-bound.
// The expiry set at the first binding stays in force across the reset.
func (u *TokenAuthorityUC) ResetTokenDevice(ctx context.Context, code string) error {
	code = utils.NormalizeAccessCode(code)
	if err := u.tokenRepo.ResetTokenDevice(ctx, code); err != nil {
		return err
	}

	u.publishEvent(ctx, &models.TokenEvent{Type: models.TokenEventReset, Code: code})

	logger.Info("Access token device binding reset", logger.String("code", code))
	return nil
}

// DeleteToken permanently removes a token
func (u *TokenAuthorityUC) DeleteToken(ctx context.Context, code string) error {
	code = utils.NormalizeAccessCode(code)
	if err := u.tokenRepo.DeleteToken(ctx, code); err != nil {
		return err
	}

	u.publishEvent(ctx, &models.TokenEvent{Type: models.TokenEventDeleted, Code: code})

	logger.Info("Access token deleted", logger.String("code", code))
	return nil
}

// ListTokens returns a summary view of every token
func (u *TokenAuthorityUC) ListTokens(ctx context.Context) ([]models.TokenSummary, error) {
	tokens, err := u.tokenRepo.ListTokens(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]models.TokenSummary, 0, len(tokens))
	for _, token := range tokens {
		summaries = append(summaries, token.Summarize(now))
	}

	return summaries, nil
}

// publishEvent publishes a lifecycle event to the audit stream. Event
// delivery is best effort: a broker outage must not fail the operation.
func (u *TokenAuthorityUC) publishEvent(ctx context.Context, event *models.TokenEvent) {
	event.OccurredAt = time.Now()
	if err := u.tokenGW.PublishTokenEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish token event",
			logger.String("type", string(event.Type)),
			logger.String("code", event.Code),
			logger.Err(err))
	}
}
