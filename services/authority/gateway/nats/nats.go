package gateway_nats

import (
	"context"
	"encoding/json"

	"github.com/acecbt/acetoken/internal/pkg/constants"
	"github.com/acecbt/acetoken/internal/pkg/models"
	natspkg "github.com/acecbt/acetoken/internal/pkg/nats"
)

// NATSGateway implements the NATS publishing operations for the authority service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishTokenEvent publishes a token lifecycle event on the subject matching
// its event type
func (g *NATSGateway) PublishTokenEvent(ctx context.Context, event *models.TokenEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(subjectFor(event.Type), data)
}

func subjectFor(eventType models.TokenEventType) string {
	switch eventType {
	case models.TokenEventCreated:
		return constants.SubjectTokenCreated
	case models.TokenEventBound:
		return constants.SubjectTokenBound
	case models.TokenEventDeactivated:
		return constants.SubjectTokenDeactivated
	case models.TokenEventReactivated:
		return constants.SubjectTokenReactivated
	case models.TokenEventReset:
		return constants.SubjectTokenReset
	case models.TokenEventDeleted:
		return constants.SubjectTokenDeleted
	default:
		return string(eventType)
	}
}
