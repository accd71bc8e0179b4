package agent

import (
	"context"

	"github.com/acecbt/acetoken/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/acecbt/acetoken/services/agent AccessUC

// AccessUC represents the device access usecase interface. Every operation
// reconciles against the remote authority first and falls back to the local
// cache when the authority cannot be reached.
type AccessUC interface {
	// token access
	VerifyAccess(ctx context.Context, req *models.VerifyRequest) (*models.VerifyResponse, error)
	CreateToken(ctx context.Context, req *models.CreateTokenRequest) (string, error)
	ListTokens(ctx context.Context) ([]models.TokenSummary, error)
	SetTokenActive(ctx context.Context, code string, active bool) error
	ResetTokenDevice(ctx context.Context, code string) error
	DeleteToken(ctx context.Context, code string) error

	// credential access
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RegisterStudent(ctx context.Context, req *models.RegisterStudentRequest) (*models.Identity, error)

	// session
	CurrentSession(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
}
