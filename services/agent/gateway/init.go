package gateway

import (
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/services/agent"
	gateway_device "github.com/acecbt/acetoken/services/agent/gateway/device"
	gateway_http "github.com/acecbt/acetoken/services/agent/gateway/http"
)

// NewAuthorityGW creates the authority gateway for the agent
func NewAuthorityGW(cfg *models.Config) agent.AuthorityGW {
	return gateway_http.NewAuthorityClient(cfg.Authority)
}

// NewDeviceGW creates the device identity gateway for the agent
func NewDeviceGW() agent.DeviceGW {
	return gateway_device.NewFingerprintProvider()
}
