package models

import "time"

// TokenEventType identifies a token lifecycle transition
type TokenEventType string

const (
	TokenEventCreated     TokenEventType = "token.created"
	TokenEventBound       TokenEventType = "token.bound"
	TokenEventDeactivated TokenEventType = "token.deactivated"
	TokenEventReactivated TokenEventType = "token.reactivated"
	TokenEventReset       TokenEventType = "token.reset"
	TokenEventDeleted     TokenEventType = "token.deleted"
)

// TokenEvent is published to the audit stream on every lifecycle transition
type TokenEvent struct {
	Type              TokenEventType `json:"type"`
	Code              string         `json:"code"`
	DeviceFingerprint string         `json:"device_fingerprint,omitempty"`
	Source            TokenSource    `json:"source,omitempty"`
	OccurredAt        time.Time      `json:"occurred_at"`
}
