package repository

import (
	"github.com/acecbt/acetoken/internal/pkg/database"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

// AgentRepo implements the device-local stores on Redis: the token cache,
// the session store and the student registry share one client.
type AgentRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewAgentRepo creates a new agent repository instance
func NewAgentRepo(cfg *models.Config, redisClient *database.RedisClient) *AgentRepo {
	return &AgentRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}
