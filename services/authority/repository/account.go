package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

// CreateAccount inserts a new credentialed account
func (r *AccountRepo) CreateAccount(ctx context.Context, account *models.Account) error {
	account.ID = uuid.New()
	account.CreatedAt = time.Now()

	query := `
		INSERT INTO accounts (id, username, password_hash, role,
			full_name, reg_number, exam_type, created_at
		) VALUES (:id, :username, :password_hash, :role,
			:full_name, :reg_number, :exam_type, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, account)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateAccount
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// GetAccountByUsername retrieves an account by its username
func (r *AccountRepo) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `
		SELECT id, username, password_hash, role, full_name, reg_number, exam_type, created_at
		FROM accounts
		WHERE username = $1
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// EnsureAdminAccount seeds the admin account on startup if it does not exist
func (r *AccountRepo) EnsureAdminAccount(ctx context.Context, username, passwordHash string) error {
	query := `
		INSERT INTO accounts (id, username, password_hash, role,
			full_name, reg_number, exam_type, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (username) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		uuid.New(), username, passwordHash, models.RoleAdmin,
		"Administrator", "", models.ExamTypeBoth, time.Now())
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	return nil
}

// isUniqueViolation reports whether the error is a postgres unique constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
