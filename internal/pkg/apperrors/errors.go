package apperrors

import "errors"

// Sentinel errors for the token lifecycle and access flows. The permanent
// denials carry distinct messages because the remediation differs: a missing
// code needs re-entry, a device mismatch needs an admin reset, an expired
// code needs a repurchase.
var (
	ErrInvalidCode    = errors.New("access code not found")
	ErrDeactivated    = errors.New("access code has been deactivated")
	ErrExpired        = errors.New("access code has expired")
	ErrDeviceMismatch = errors.New("access code is locked to another device")

	// ErrBindingRequired is a control signal, not a failure: the caller must
	// obtain explicit user confirmation and retry with confirm set.
	ErrBindingRequired = errors.New("binding confirmation required")

	ErrDeviceUnverified   = errors.New("device identity could not be verified")
	ErrNetworkUnavailable = errors.New("token authority unreachable")
	ErrStorage            = errors.New("local storage failure")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateAccount   = errors.New("registration number already registered")

	ErrPaymentNotVerified = errors.New("payment could not be verified")
	ErrInvalidAmount      = errors.New("payment amount below required minimum")
)

// IsPermanentDenial reports whether the error is a terminal verdict that must
// propagate to the caller unchanged. Transient failures (network, timeout)
// are not permanent: the reconciliation layer retries them against the local
// cache instead.
func IsPermanentDenial(err error) bool {
	return errors.Is(err, ErrInvalidCode) ||
		errors.Is(err, ErrDeactivated) ||
		errors.Is(err, ErrExpired) ||
		errors.Is(err, ErrDeviceMismatch) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrDuplicateAccount) ||
		errors.Is(err, ErrPaymentNotVerified) ||
		errors.Is(err, ErrInvalidAmount)
}
