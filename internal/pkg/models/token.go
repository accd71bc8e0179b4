package models

import (
	"time"
)

// TokenSource identifies where an access token originated
type TokenSource string

const (
	TokenSourceAdmin       TokenSource = "ADMIN"
	TokenSourceStudent     TokenSource = "STUDENT"
	TokenSourceOnlineCache TokenSource = "ONLINE_CACHE"
	TokenSourceManual      TokenSource = "manual"
)

// ExamType identifies which exam a token or identity is entitled to
type ExamType string

const (
	ExamTypeJAMB ExamType = "JAMB"
	ExamTypeWAEC ExamType = "WAEC"
	ExamTypeBoth ExamType = "BOTH"
)

// Token represents a single-use, device-bound exam access token.
// DeviceFingerprint nil means unbound; ExpiresAt nil means no expiry has
// been set yet (expiry starts at first binding).
type Token struct {
	Code              string      `json:"code" db:"code"`
	IsActive          bool        `json:"is_active" db:"is_active"`
	DeviceFingerprint *string     `json:"device_fingerprint,omitempty" db:"device_fingerprint"`
	BoundAt           *time.Time  `json:"bound_at,omitempty" db:"bound_at"`
	ExpiresAt         *time.Time  `json:"expires_at,omitempty" db:"expires_at"`
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`
	ExamType          ExamType    `json:"exam_type" db:"exam_type"`
	FullName          string      `json:"full_name" db:"full_name"`
	PhoneNumber       string      `json:"phone_number" db:"phone_number"`
	Email             string      `json:"email" db:"email"`
	PaymentRef        string      `json:"payment_ref" db:"payment_ref"`
	AmountPaid        float64     `json:"amount_paid" db:"amount_paid"`
	GeneratedBy       TokenSource `json:"generated_by" db:"generated_by"`
}

// IsBound reports whether the token is bound to a device
func (t *Token) IsBound() bool {
	return t.DeviceFingerprint != nil && *t.DeviceFingerprint != ""
}

// IsExpired reports whether the token has expired at the given instant.
// Tokens with no expiry set never expire.
func (t *Token) IsExpired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// BoundTo reports whether the token is bound to the given fingerprint
func (t *Token) BoundTo(fingerprint string) bool {
	return t.DeviceFingerprint != nil && *t.DeviceFingerprint == fingerprint
}

// TokenSummary is the listing view of a token
type TokenSummary struct {
	Code          string     `json:"code"`
	IsActive      bool       `json:"is_active"`
	Bound         bool       `json:"bound"`
	ExamType      ExamType   `json:"exam_type"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	RemainingDays int        `json:"remaining_days"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Summarize computes the listing view of the token at the given instant
func (t *Token) Summarize(now time.Time) TokenSummary {
	summary := TokenSummary{
		Code:      t.Code,
		IsActive:  t.IsActive,
		Bound:     t.IsBound(),
		ExamType:  t.ExamType,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}

	switch {
	case !t.IsActive:
		summary.Status = "deactivated"
	case t.IsExpired(now):
		summary.Status = "expired"
	case !t.IsBound():
		summary.Status = "unused"
	default:
		summary.Status = "in use"
	}

	if t.ExpiresAt != nil && t.ExpiresAt.After(now) {
		summary.RemainingDays = int(t.ExpiresAt.Sub(now).Hours() / 24)
	}

	return summary
}

// CreateTokenRequest carries the inputs for token issuance
type CreateTokenRequest struct {
	Source      TokenSource `json:"source"`
	PaymentRef  string      `json:"payment_ref"`
	AmountPaid  float64     `json:"amount_paid"`
	ExamType    ExamType    `json:"exam_type"`
	FullName    string      `json:"full_name"`
	PhoneNumber string      `json:"phone_number"`
	Email       string      `json:"email"`
}

// VerifyRequest carries a token verification / binding attempt
type VerifyRequest struct {
	Code              string `json:"code"`
	DeviceFingerprint string `json:"device_fingerprint"`
	ConfirmBinding    bool   `json:"confirm_binding"`
}

// VerifyResponse is either a successful identity or a binding-confirmation
// request. RequiresBinding true means the caller must re-invoke with
// ConfirmBinding set after explicit user consent.
type VerifyResponse struct {
	RequiresBinding bool      `json:"requires_binding"`
	Identity        *Identity `json:"identity,omitempty"`
	SessionToken    string    `json:"session_token,omitempty"`
	Token           *Token    `json:"token,omitempty"`
}

// IssueFromPaymentRequest carries a payment-backed issuance request
type IssueFromPaymentRequest struct {
	PaymentRef  string   `json:"payment_ref"`
	Email       string   `json:"email"`
	FullName    string   `json:"full_name"`
	PhoneNumber string   `json:"phone_number"`
	ExamType    ExamType `json:"exam_type"`
}

// PaymentVerification is the opaque gateway's answer for a payment reference
type PaymentVerification struct {
	Reference string  `json:"reference"`
	Paid      bool    `json:"paid"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}
