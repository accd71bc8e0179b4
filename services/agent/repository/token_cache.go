package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/constants"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

// SaveToken stores a token in the local cache, keeping the code index in sync
func (r *AgentRepo) SaveToken(ctx context.Context, token *models.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	key := fmt.Sprintf(constants.KeyTokenCache, token.Code)

	existing, err := r.redisClient.Get(ctx, key)
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	if err := r.redisClient.Set(ctx, key, string(data), 0); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	// Only new codes join the index, a resave must not duplicate the entry
	if existing == "" {
		if err := r.redisClient.LPush(ctx, constants.KeyTokenCacheIndex, token.Code); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
	}

	return nil
}

// GetToken retrieves a token from the local cache by its code
func (r *AgentRepo) GetToken(ctx context.Context, code string) (*models.Token, error) {
	key := fmt.Sprintf(constants.KeyTokenCache, code)

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrInvalidCode
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	// A record that no longer parses reads as absent so one bad write
	// cannot wedge the verification flow
	var token models.Token
	if err := json.Unmarshal([]byte(data), &token); err != nil {
		logger.Warn("Corrupt token record in local cache",
			logger.String("code", code),
			logger.Err(err))
		return nil, apperrors.ErrInvalidCode
	}

	return &token, nil
}

// BindToken binds a cached token to a device fingerprint. Same verdict rules
// as the authority: an unbound token binds, a token bound to the same device
// is a no-op, anything else is a mismatch.
func (r *AgentRepo) BindToken(ctx context.Context, code, fingerprint string, boundAt, expiresAt time.Time) (*models.Token, error) {
	token, err := r.GetToken(ctx, code)
	if err != nil {
		return nil, err
	}

	if token.IsBound() {
		if !token.BoundTo(fingerprint) {
			return nil, apperrors.ErrDeviceMismatch
		}
		return token, nil
	}

	token.DeviceFingerprint = &fingerprint
	token.BoundAt = &boundAt
	token.ExpiresAt = &expiresAt

	if err := r.SaveToken(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

// SetTokenActive toggles the active flag on a cached token
func (r *AgentRepo) SetTokenActive(ctx context.Context, code string, active bool) error {
	token, err := r.GetToken(ctx, code)
	if err != nil {
		return err
	}

	token.IsActive = active
	return r.SaveToken(ctx, token)
}

// ResetTokenDevice clears the binding of a cached token. The expiry set at
// first binding is kept, so a reset cannot extend the token's lifetime.
func (r *AgentRepo) ResetTokenDevice(ctx context.Context, code string) error {
	token, err := r.GetToken(ctx, code)
	if err != nil {
		return err
	}

	token.DeviceFingerprint = nil
	token.BoundAt = nil
	return r.SaveToken(ctx, token)
}

// DeleteToken removes a token from the local cache and its index
func (r *AgentRepo) DeleteToken(ctx context.Context, code string) error {
	key := fmt.Sprintf(constants.KeyTokenCache, code)

	if _, err := r.GetToken(ctx, code); err != nil {
		return err
	}

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if err := r.redisClient.LRem(ctx, constants.KeyTokenCacheIndex, code); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return nil
}

// ListTokens returns all cached tokens, newest first. Corrupt records are
// skipped so a single bad entry cannot take down the listing.
func (r *AgentRepo) ListTokens(ctx context.Context) ([]*models.Token, error) {
	codes, err := r.redisClient.LRange(ctx, constants.KeyTokenCacheIndex, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	tokens := make([]*models.Token, 0, len(codes))
	for _, code := range codes {
		token, err := r.GetToken(ctx, code)
		if err != nil {
			logger.Warn("Skipping unreadable cached token",
				logger.String("code", code),
				logger.Err(err))
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}
