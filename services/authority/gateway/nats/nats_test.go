package gateway_nats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acecbt/acetoken/internal/pkg/constants"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

func TestSubjectFor(t *testing.T) {
	testCases := []struct {
		eventType models.TokenEventType
		want      string
	}{
		{models.TokenEventCreated, constants.SubjectTokenCreated},
		{models.TokenEventBound, constants.SubjectTokenBound},
		{models.TokenEventDeactivated, constants.SubjectTokenDeactivated},
		{models.TokenEventReactivated, constants.SubjectTokenReactivated},
		{models.TokenEventReset, constants.SubjectTokenReset},
		{models.TokenEventDeleted, constants.SubjectTokenDeleted},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, subjectFor(tc.eventType))
	}
}
