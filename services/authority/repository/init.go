package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/acecbt/acetoken/internal/pkg/models"
)

// TokenRepo implements the token repository interface
type TokenRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTokenRepo creates a new token repository instance
func NewTokenRepo(cfg *models.Config, db *sqlx.DB) *TokenRepo {
	return &TokenRepo{
		cfg: cfg,
		db:  db,
	}
}

// AccountRepo implements the credential account repository interface
type AccountRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAccountRepo creates a new account repository instance
func NewAccountRepo(cfg *models.Config, db *sqlx.DB) *AccountRepo {
	return &AccountRepo{
		cfg: cfg,
		db:  db,
	}
}
