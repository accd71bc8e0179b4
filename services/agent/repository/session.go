package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/constants"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

// SaveSession persists the active session, replacing any previous one
func (r *AgentRepo) SaveSession(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.redisClient.Set(ctx, constants.KeyCurrentSession, string(data), 0); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return nil
}

// GetSession returns the active session, or nil when none exists
func (r *AgentRepo) GetSession(ctx context.Context) (*models.Session, error) {
	data, err := r.redisClient.Get(ctx, constants.KeyCurrentSession)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	// A session that no longer parses reads as no session at all
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		logger.Warn("Corrupt session record in local store", logger.Err(err))
		return nil, nil
	}

	return &session, nil
}

// ClearSession removes the active session
func (r *AgentRepo) ClearSession(ctx context.Context) error {
	if err := r.redisClient.Delete(ctx, constants.KeyCurrentSession); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return nil
}
