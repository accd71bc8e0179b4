package authority

import (
	"context"
	"time"

	"github.com/acecbt/acetoken/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/acecbt/acetoken/services/authority TokenRepo,AccountRepo

// TokenRepo defines the token record store interface
type TokenRepo interface {
	CreateToken(ctx context.Context, token *models.Token) error
	GetTokenByCode(ctx context.Context, code string) (*models.Token, error)

	// BindToken is a conditional update: it succeeds only if the token is
	// still unbound at write time, or already bound to the same fingerprint.
	BindToken(ctx context.Context, code, fingerprint string, boundAt, expiresAt time.Time) (*models.Token, error)

	SetTokenActive(ctx context.Context, code string, active bool) error
	ResetTokenDevice(ctx context.Context, code string) error
	DeleteToken(ctx context.Context, code string) error
	ListTokens(ctx context.Context) ([]*models.Token, error)
}

// AccountRepo defines the credential account store interface
type AccountRepo interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)
	EnsureAdminAccount(ctx context.Context, username, passwordHash string) error
}
