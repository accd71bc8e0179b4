package models

import "time"

// SessionMode records whether the session was granted by the remote
// authority or by local verification against the device cache
type SessionMode string

const (
	SessionModeOnline  SessionMode = "online"
	SessionModeOffline SessionMode = "offline"
)

// Session is the active session persisted on the device
type Session struct {
	Identity     *Identity   `json:"identity"`
	SessionToken string      `json:"session_token"`
	Mode         SessionMode `json:"mode"`
	StartedAt    time.Time   `json:"started_at"`
}
