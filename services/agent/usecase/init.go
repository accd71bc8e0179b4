package usecase

import (
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/services/agent"
)

// AccessAgentUC implements the device access usecase
type AccessAgentUC struct {
	tokenCache  agent.TokenCache
	sessions    agent.SessionStore
	students    agent.StudentRegistry
	authorityGW agent.AuthorityGW
	deviceGW    agent.DeviceGW
	cfg         *models.Config

	// forceOffline pins the agent to the local cache. Captured at
	// construction so the mode cannot flip mid-operation.
	forceOffline bool
}

// NewAccessAgentUC creates a new access agent usecase instance
func NewAccessAgentUC(
	tokenCache agent.TokenCache,
	sessions agent.SessionStore,
	students agent.StudentRegistry,
	authorityGW agent.AuthorityGW,
	deviceGW agent.DeviceGW,
	cfg *models.Config,
) *AccessAgentUC {
	return &AccessAgentUC{
		tokenCache:   tokenCache,
		sessions:     sessions,
		students:     students,
		authorityGW:  authorityGW,
		deviceGW:     deviceGW,
		cfg:          cfg,
		forceOffline: cfg.Authority.ForceOffline,
	}
}
