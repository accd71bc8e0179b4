package gateway_device

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
)

// machine-id locations probed in order
var machineIDPaths = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
}

// FingerprintProvider derives a stable device fingerprint from host identity
// sources. The raw identifiers never leave the machine, only their hash does.
type FingerprintProvider struct{}

// NewFingerprintProvider creates a new fingerprint provider
func NewFingerprintProvider() *FingerprintProvider {
	return &FingerprintProvider{}
}

// Fingerprint returns the device fingerprint, computing it from the machine
// id and hostname. Resolution respects ctx so a stalled probe cannot hang
// the access flow.
func (p *FingerprintProvider) Fingerprint(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrDeviceUnverified, err)
	}

	type result struct {
		fingerprint string
		err         error
	}

	ch := make(chan result, 1)
	go func() {
		fp, err := p.resolve()
		ch <- result{fingerprint: fp, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", apperrors.ErrDeviceUnverified, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return "", fmt.Errorf("%w: %v", apperrors.ErrDeviceUnverified, res.err)
		}
		return res.fingerprint, nil
	}
}

func (p *FingerprintProvider) resolve() (string, error) {
	var parts []string

	for _, path := range machineIDPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if id := strings.TrimSpace(string(data)); id != "" {
			parts = append(parts, id)
			break
		}
	}

	hostname, err := os.Hostname()
	if err == nil && hostname != "" {
		parts = append(parts, hostname)
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no machine identity source available")
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:]), nil
}
