package agent

import (
	"context"

	"github.com/acecbt/acetoken/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/acecbt/acetoken/services/agent AuthorityGW,DeviceGW

// AuthorityGW is the client interface to the remote token authority.
// Implementations translate authority denials into the local sentinel errors
// and report transport failures as ErrNetworkUnavailable.
type AuthorityGW interface {
	VerifyToken(ctx context.Context, req *models.VerifyRequest) (*models.VerifyResponse, error)
	CreateToken(ctx context.Context, req *models.CreateTokenRequest) (string, error)
	ListTokens(ctx context.Context) ([]models.TokenSummary, error)
	SetTokenActive(ctx context.Context, code string, active bool) error
	ResetTokenDevice(ctx context.Context, code string) error
	DeleteToken(ctx context.Context, code string) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RegisterStudent(ctx context.Context, req *models.RegisterStudentRequest) (*models.Identity, error)
}

// DeviceGW resolves the stable identity of the machine the agent runs on
type DeviceGW interface {
	Fingerprint(ctx context.Context) (string, error)
}
