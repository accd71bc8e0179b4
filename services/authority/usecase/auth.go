package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	jwtpkg "github.com/acecbt/acetoken/internal/pkg/jwt"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

// Login authenticates a credentialed account and issues a session token
func (u *TokenAuthorityUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	account, err := u.accountRepo.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	// A role constraint in the request must match the stored account: an
	// admin login form cannot admit a student account and vice versa.
	if req.Role != "" && req.Role != account.Role {
		return nil, apperrors.ErrInvalidCredentials
	}

	identity := account.Identity()
	sessionToken, expiresAt, err := jwtpkg.GenerateToken(identity, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	logger.Info("Account logged in",
		logger.String("username", account.Username),
		logger.String("role", string(account.Role)))

	return &models.AuthResponse{
		Identity:     identity,
		SessionToken: sessionToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// RegisterStudent creates a credentialed student account for manual login
func (u *TokenAuthorityUC) RegisterStudent(ctx context.Context, req *models.RegisterStudentRequest) (*models.Identity, error) {
	regNumber := strings.TrimSpace(req.RegNumber)
	if regNumber == "" || req.FullName == "" || req.Password == "" {
		return nil, fmt.Errorf("full name, registration number and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Username:     regNumber,
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
		FullName:     req.FullName,
		RegNumber:    regNumber,
		ExamType:     req.ExamType,
	}

	if err := u.accountRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	logger.Info("Student registered",
		logger.String("reg_number", regNumber),
		logger.String("exam_type", string(req.ExamType)))

	return account.Identity(), nil
}

// EnsureAdminAccount seeds the configured admin credentials on startup
func (u *TokenAuthorityUC) EnsureAdminAccount(ctx context.Context) error {
	if u.cfg.Admin.Username == "" || u.cfg.Admin.Password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return u.accountRepo.EnsureAdminAccount(ctx, u.cfg.Admin.Username, string(hash))
}
