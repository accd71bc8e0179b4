package agent

import (
	"context"
	"time"

	"github.com/acecbt/acetoken/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/acecbt/acetoken/services/agent TokenCache,SessionStore,StudentRegistry

// TokenCache is the device-local token store. It holds tokens created while
// offline and mirrors of tokens last seen at the authority.
type TokenCache interface {
	SaveToken(ctx context.Context, token *models.Token) error
	GetToken(ctx context.Context, code string) (*models.Token, error)
	BindToken(ctx context.Context, code, fingerprint string, boundAt, expiresAt time.Time) (*models.Token, error)
	SetTokenActive(ctx context.Context, code string, active bool) error
	ResetTokenDevice(ctx context.Context, code string) error
	DeleteToken(ctx context.Context, code string) error
	ListTokens(ctx context.Context) ([]*models.Token, error)
}

// SessionStore persists the single active session on the device
type SessionStore interface {
	SaveSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context) (*models.Session, error)
	ClearSession(ctx context.Context) error
}

// StudentRegistry holds students registered on this device while offline
type StudentRegistry interface {
	SaveStudent(ctx context.Context, student *models.StudentRecord) error
	GetStudent(ctx context.Context, regNumber string) (*models.StudentRecord, error)
	ListStudents(ctx context.Context) ([]*models.StudentRecord, error)
}
