package utils

import (
	cryptorand "crypto/rand"
	"fmt"
	mathrand "math/rand"
	"regexp"
	"strings"

	"github.com/acecbt/acetoken/internal/pkg/logger"
)

// codeAlphabet is the 32-symbol alphabet for access codes. Visually
// ambiguous characters (0/O, 1/I) are excluded so codes survive being read
// over the phone or copied from a printout.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeGroups    = 3
	codeGroupSize = 4
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]+(-[A-HJ-NP-Z2-9]{4}){3}$`)

// GenerateAccessCode generates a fresh access code of the form
// PREFIX-XXXX-XXXX-XXXX. Randomness comes from a cryptographically strong
// source; if that source is unavailable the generator falls back to
// math/rand and logs the degraded-security path rather than failing
// issuance outright.
func GenerateAccessCode(prefix string) string {
	parts := make([]string, 0, codeGroups+1)
	parts = append(parts, strings.ToUpper(prefix))

	symbols := randomSymbols(codeGroups * codeGroupSize)
	for i := 0; i < codeGroups; i++ {
		parts = append(parts, string(symbols[i*codeGroupSize:(i+1)*codeGroupSize]))
	}

	return strings.Join(parts, "-")
}

// randomSymbols draws n symbols from the code alphabet
func randomSymbols(n int) []byte {
	out := make([]byte, n)

	raw := make([]byte, n)
	if _, err := cryptorand.Read(raw); err != nil {
		// Degraded-security path: pseudo-random codes are guessable in a way
		// crypto-random codes are not, so make the fallback loud.
		logger.Warn("crypto/rand unavailable, falling back to pseudo-random access code generation",
			logger.Err(err))
		for i := range raw {
			raw[i] = byte(mathrand.Intn(256))
		}
	}

	for i, b := range raw {
		out[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return out
}

// NormalizeAccessCode canonicalizes user-typed codes: trimmed and upper-cased
func NormalizeAccessCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateAccessCode reports whether the code has the expected shape
func ValidateAccessCode(code string) error {
	if !codePattern.MatchString(NormalizeAccessCode(code)) {
		return fmt.Errorf("malformed access code %q", code)
	}
	return nil
}
