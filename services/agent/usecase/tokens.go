package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/internal/utils"
)

// CreateToken issues a token through the authority, or locally when the
// authority cannot be reached. Locally created tokens carry the manual
// source so they can be reconciled later.
func (u *AccessAgentUC) CreateToken(ctx context.Context, req *models.CreateTokenRequest) (string, error) {
	ctx, cancel := u.opContext(ctx)
	defer cancel()

	if !u.forceOffline {
		code, err := u.authorityGW.CreateToken(ctx, req)
		switch classifyRemote(err) {
		case remoteOK:
			return code, nil
		case remoteDenied:
			return "", err
		case remoteFallback:
			logger.Warn("Authority unreachable, creating token locally", logger.Err(err))
		}
	}

	token := &models.Token{
		Code:        utils.GenerateAccessCode(u.cfg.Token.Prefix),
		IsActive:    true,
		CreatedAt:   time.Now(),
		ExamType:    req.ExamType,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		PaymentRef:  req.PaymentRef,
		AmountPaid:  req.AmountPaid,
		GeneratedBy: models.TokenSourceManual,
	}

	if err := u.tokenCache.SaveToken(ctx, token); err != nil {
		return "", err
	}

	logger.Info("Access token created locally",
		logger.String("code", token.Code),
		logger.String("exam_type", string(token.ExamType)))

	return token.Code, nil
}

// ListTokens merges the authority's view with the local cache. The authority
// wins for codes both sides know; local-only tokens are kept.
func (u *AccessAgentUC) ListTokens(ctx context.Context) ([]models.TokenSummary, error) {
	ctx, cancel := u.opContext(ctx)
	defer cancel()

	local, err := u.tokenCache.ListTokens(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	localSummaries := make([]models.TokenSummary, 0, len(local))
	for _, token := range local {
		localSummaries = append(localSummaries, token.Summarize(now))
	}

	if u.forceOffline {
		return localSummaries, nil
	}

	remote, err := u.authorityGW.ListTokens(ctx)
	if err != nil {
		logger.Warn("Authority unreachable, listing local cache only", logger.Err(err))
		return localSummaries, nil
	}

	seen := make(map[string]bool, len(remote))
	merged := make([]models.TokenSummary, 0, len(remote)+len(localSummaries))
	for _, summary := range remote {
		seen[summary.Code] = true
		merged = append(merged, summary)
	}
	for _, summary := range localSummaries {
		if !seen[summary.Code] {
			merged = append(merged, summary)
		}
	}

	// Both sides list newest first on their own; the merge has to restore
	// that order across them
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged, nil
}

// SetTokenActive toggles a token at the authority, falling back to the local
// cache when unreachable. After a remote success the local mirror is updated
// too so the cache does not serve a stale verdict.
func (u *AccessAgentUC) SetTokenActive(ctx context.Context, code string, active bool) error {
	code = utils.NormalizeAccessCode(code)
	return u.adminOp(ctx, code,
		func(ctx context.Context) error { return u.authorityGW.SetTokenActive(ctx, code, active) },
		func(ctx context.Context) error { return u.tokenCache.SetTokenActive(ctx, code, active) },
	)
}

// ResetTokenDevice clears a token's binding, authority first
func (u *AccessAgentUC) ResetTokenDevice(ctx context.Context, code string) error {
	code = utils.NormalizeAccessCode(code)
	return u.adminOp(ctx, code,
		func(ctx context.Context) error { return u.authorityGW.ResetTokenDevice(ctx, code) },
		func(ctx context.Context) error { return u.tokenCache.ResetTokenDevice(ctx, code) },
	)
}

// DeleteToken removes a token, authority first
func (u *AccessAgentUC) DeleteToken(ctx context.Context, code string) error {
	code = utils.NormalizeAccessCode(code)
	return u.adminOp(ctx, code,
		func(ctx context.Context) error { return u.authorityGW.DeleteToken(ctx, code) },
		func(ctx context.Context) error { return u.tokenCache.DeleteToken(ctx, code) },
	)
}

// adminOp runs a lifecycle mutation remote-first with local fallback
func (u *AccessAgentUC) adminOp(ctx context.Context, code string, remote, local func(ctx context.Context) error) error {
	ctx, cancel := u.opContext(ctx)
	defer cancel()

	if !u.forceOffline {
		err := remote(ctx)
		switch classifyRemote(err) {
		case remoteOK:
			// Keep the mirror in step; a code the cache never saw is fine
			if lerr := local(ctx); lerr != nil && !errors.Is(lerr, apperrors.ErrInvalidCode) {
				logger.Warn("Failed to apply token change to local cache",
					logger.String("code", code),
					logger.Err(lerr))
			}
			return nil
		case remoteDenied:
			return err
		case remoteFallback:
			logger.Warn("Authority unreachable, applying token change locally",
				logger.String("code", code),
				logger.Err(err))
		}
	}

	return local(ctx)
}
