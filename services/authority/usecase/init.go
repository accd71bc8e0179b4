package usecase

import (
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/services/authority"
)

// TokenAuthorityUC implements the token authority usecase
type TokenAuthorityUC struct {
	tokenRepo   authority.TokenRepo
	accountRepo authority.AccountRepo
	tokenGW     authority.TokenGW
	cfg         *models.Config
}

// NewTokenAuthorityUC creates a new token authority usecase instance
func NewTokenAuthorityUC(
	tokenRepo authority.TokenRepo,
	accountRepo authority.AccountRepo,
	tokenGW authority.TokenGW,
	cfg *models.Config,
) *TokenAuthorityUC {
	return &TokenAuthorityUC{
		tokenRepo:   tokenRepo,
		accountRepo: accountRepo,
		tokenGW:     tokenGW,
		cfg:         cfg,
	}
}
