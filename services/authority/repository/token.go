package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

// CreateToken inserts a new token record
func (r *TokenRepo) CreateToken(ctx context.Context, token *models.Token) error {
	token.CreatedAt = time.Now()

	query := `
		INSERT INTO tokens (code, is_active, device_fingerprint, bound_at, expires_at,
			created_at, exam_type, full_name, phone_number, email,
			payment_ref, amount_paid, generated_by
		) VALUES (:code, :is_active, :device_fingerprint, :bound_at, :expires_at,
			:created_at, :exam_type, :full_name, :phone_number, :email,
			:payment_ref, :amount_paid, :generated_by)
	`
	_, err := r.db.NamedExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}

	return nil
}

// GetTokenByCode retrieves a token by its access code
func (r *TokenRepo) GetTokenByCode(ctx context.Context, code string) (*models.Token, error) {
	query := `
		SELECT code, is_active, device_fingerprint, bound_at, expires_at,
			created_at, exam_type, full_name, phone_number, email,
			payment_ref, amount_paid, generated_by
		FROM tokens
		WHERE code = $1
	`

	var token models.Token
	err := r.db.GetContext(ctx, &token, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvalidCode
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return &token, nil
}

// BindToken binds the token to a device fingerprint. The update only matches
// an unbound row, so two devices racing on the same code cannot both win:
// the loser's update touches zero rows and the re-read decides whether that
// is an idempotent same-device success or a mismatch.
func (r *TokenRepo) BindToken(ctx context.Context, code, fingerprint string, boundAt, expiresAt time.Time) (*models.Token, error) {
	query := `
		UPDATE tokens
		SET device_fingerprint = $1, bound_at = $2, expires_at = $3
		WHERE code = $4 AND device_fingerprint IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, fingerprint, boundAt, expiresAt, code)
	if err != nil {
		return nil, fmt.Errorf("failed to bind token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to bind token: %w", err)
	}

	token, err := r.GetTokenByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		if !token.BoundTo(fingerprint) {
			return nil, apperrors.ErrDeviceMismatch
		}
	}

	return token, nil
}

// SetTokenActive toggles the active flag on a token
func (r *TokenRepo) SetTokenActive(ctx context.Context, code string, active bool) error {
	query := `UPDATE tokens SET is_active = $1 WHERE code = $2`

	result, err := r.db.ExecContext(ctx, query, active, code)
	if err != nil {
		return fmt.Errorf("failed to update token status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update token status: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrInvalidCode
	}

	return nil
}

// ResetTokenDevice clears the device binding so the token can be bound
// again on a replacement device. Any expiry already set stays in place.
func (r *TokenRepo) ResetTokenDevice(ctx context.Context, code string) error {
	query := `
		UPDATE tokens
		SET device_fingerprint = NULL, bound_at = NULL
		WHERE code = $1
	`

	result, err := r.db.ExecContext(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to reset token device: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reset token device: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrInvalidCode
	}

	return nil
}

// DeleteToken permanently removes a token record
func (r *TokenRepo) DeleteToken(ctx context.Context, code string) error {
	query := `DELETE FROM tokens WHERE code = $1`

	result, err := r.db.ExecContext(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrInvalidCode
	}

	return nil
}

// ListTokens returns all tokens, newest first
func (r *TokenRepo) ListTokens(ctx context.Context) ([]*models.Token, error) {
	query := `
		SELECT code, is_active, device_fingerprint, bound_at, expires_at,
			created_at, exam_type, full_name, phone_number, email,
			payment_ref, amount_paid, generated_by
		FROM tokens
		ORDER BY created_at DESC
	`

	var tokens []*models.Token
	if err := r.db.SelectContext(ctx, &tokens, query); err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	return tokens, nil
}
