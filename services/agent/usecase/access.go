package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	jwtpkg "github.com/acecbt/acetoken/internal/pkg/jwt"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/internal/utils"
	"github.com/acecbt/acetoken/services/agent"
)

var _ agent.AccessUC = (*AccessAgentUC)(nil)

// remoteOutcome classifies an authority call for the fallback decision
type remoteOutcome int

const (
	remoteOK remoteOutcome = iota
	// remoteDenied is a verdict: it propagates unchanged, the cache is
	// never consulted to second-guess the authority
	remoteDenied
	// remoteFallback is the absence of a verdict: transport failure,
	// timeout or an unreadable response body
	remoteFallback
)

func classifyRemote(err error) remoteOutcome {
	switch {
	case err == nil:
		return remoteOK
	case apperrors.IsPermanentDenial(err), errors.Is(err, apperrors.ErrBindingRequired):
		return remoteDenied
	default:
		return remoteFallback
	}
}

// opContext bounds a whole logical operation, device resolution and remote
// calls included
func (u *AccessAgentUC) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.cfg.Authority.OperationTimeout > 0 {
		return context.WithTimeout(ctx, u.cfg.Authority.OperationTimeout)
	}
	return context.WithCancel(ctx)
}

// resolveFingerprint resolves the device identity under its own timeout
func (u *AccessAgentUC) resolveFingerprint(ctx context.Context) (string, error) {
	if u.cfg.Device.ResolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.Device.ResolveTimeout)
		defer cancel()
	}
	return u.deviceGW.Fingerprint(ctx)
}

// VerifyAccess runs the admission flow: authority first, local cache when
// the authority cannot be reached. A denial from either side is final.
func (u *AccessAgentUC) VerifyAccess(ctx context.Context, req *models.VerifyRequest) (*models.VerifyResponse, error) {
	ctx, cancel := u.opContext(ctx)
	defer cancel()

	code := utils.NormalizeAccessCode(req.Code)
	if err := utils.ValidateAccessCode(code); err != nil {
		return nil, apperrors.ErrInvalidCode
	}
	req.Code = code

	fingerprint, err := u.resolveFingerprint(ctx)
	if err != nil {
		return nil, err
	}
	req.DeviceFingerprint = fingerprint

	if !u.forceOffline {
		resp, err := u.authorityGW.VerifyToken(ctx, req)
		switch classifyRemote(err) {
		case remoteOK:
			if resp.RequiresBinding {
				return resp, nil
			}
			u.mirrorToken(ctx, resp.Token)
			u.startSession(ctx, resp.Identity, resp.SessionToken, models.SessionModeOnline)
			return resp, nil
		case remoteDenied:
			return nil, err
		case remoteFallback:
			logger.Warn("Authority unreachable, verifying against local cache",
				logger.String("code", code),
				logger.Err(err))
		}
	}

	return u.verifyLocally(ctx, req)
}

// verifyLocally runs the admission state machine against the local cache
func (u *AccessAgentUC) verifyLocally(ctx context.Context, req *models.VerifyRequest) (*models.VerifyResponse, error) {
	token, err := u.tokenCache.GetToken(ctx, req.Code)
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
	} else {
		if !req.ConfirmBinding {
			return &models.VerifyResponse{RequiresBinding: true}, nil
		}
		// A rebind after a device reset keeps the expiry from the first
		// binding rather than opening a fresh validity window
		expiresAt := now.AddDate(0, 0, u.cfg.Token.BindingValidityDays)
		if token.ExpiresAt != nil {
			expiresAt = *token.ExpiresAt
		}
		token, err = u.tokenCache.BindToken(ctx, req.Code, req.DeviceFingerprint, now, expiresAt)
		if err != nil {
			return nil, err
		}
		logger.Info("Access token bound locally",
			logger.String("code", req.Code),
			logger.Time("expires_at", expiresAt))
	}

	identity := &models.Identity{
		Role:      models.RoleStudent,
		FullName:  token.FullName,
		RegNumber: token.Code,
		ExamType:  token.ExamType,
	}

	sessionToken, _, err := jwtpkg.GenerateToken(identity, u.cfg)
	if err != nil {
		return nil, err
	}

	u.startSession(ctx, identity, sessionToken, models.SessionModeOffline)

	return &models.VerifyResponse{
		Identity:     identity,
		SessionToken: sessionToken,
		Token:        token,
	}, nil
}

// mirrorToken caches a token the authority just admitted. The mirror carries
// cache provenance so later listings can tell it apart from tokens created
// on this device. Failure to mirror never fails the access.
func (u *AccessAgentUC) mirrorToken(ctx context.Context, token *models.Token) {
	if token == nil {
		return
	}

	mirror := *token
	mirror.GeneratedBy = models.TokenSourceOnlineCache

	if err := u.tokenCache.SaveToken(ctx, &mirror); err != nil {
		logger.Warn("Failed to mirror token into local cache",
			logger.String("code", mirror.Code),
			logger.Err(err))
	}
}

// startSession persists the active session, best effort
func (u *AccessAgentUC) startSession(ctx context.Context, identity *models.Identity, sessionToken string, mode models.SessionMode) {
	session := &models.Session{
		Identity:     identity,
		SessionToken: sessionToken,
		Mode:         mode,
		StartedAt:    time.Now(),
	}
	if err := u.sessions.SaveSession(ctx, session); err != nil {
		logger.Warn("Failed to persist session", logger.Err(err))
	}
}

// CurrentSession returns the active session, nil when none exists
func (u *AccessAgentUC) CurrentSession(ctx context.Context) (*models.Session, error) {
	return u.sessions.GetSession(ctx)
}

// Logout clears the active session
func (u *AccessAgentUC) Logout(ctx context.Context) error {
	return u.sessions.ClearSession(ctx)
}
