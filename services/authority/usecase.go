package authority

import (
	"context"

	"github.com/acecbt/acetoken/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/acecbt/acetoken/services/authority TokenUC

// TokenUC represents the token authority usecase interface
type TokenUC interface {
	// token lifecycle
	CreateToken(ctx context.Context, req *models.CreateTokenRequest) (string, error)
	VerifyAndBind(ctx context.Context, req *models.VerifyRequest) (*models.VerifyResponse, error)
	SetTokenActive(ctx context.Context, code string, active bool) error
	ResetTokenDevice(ctx context.Context, code string) error
	DeleteToken(ctx context.Context, code string) error
	ListTokens(ctx context.Context) ([]models.TokenSummary, error)

	// payment-backed issuance
	IssueFromPayment(ctx context.Context, req *models.IssueFromPaymentRequest) (string, error)

	// credential accounts
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RegisterStudent(ctx context.Context, req *models.RegisterStudentRequest) (*models.Identity, error)
}
