package jwt

import (
	"time"

	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateToken generates a session JWT for the given identity
func GenerateToken(identity *models.Identity, cfg *models.Config) (string, int64, error) {
	// Set token expiration time
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	// Create claims
	claims := jwt.MapClaims{
		"reg_number": identity.RegNumber,
		"full_name":  identity.FullName,
		"role":       string(identity.Role),
		"exam_type":  string(identity.ExamType),
		"exp":        expiresAt,
		"iss":        cfg.JWT.Issuer,
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign token with configured secret
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session JWT and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	// Parse token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, err
}

// IdentityFromClaims reconstructs the session identity from validated claims
func IdentityFromClaims(claims *jwt.MapClaims) *models.Identity {
	identity := &models.Identity{}
	if v, ok := (*claims)["reg_number"].(string); ok {
		identity.RegNumber = v
	}
	if v, ok := (*claims)["full_name"].(string); ok {
		identity.FullName = v
	}
	if v, ok := (*claims)["role"].(string); ok {
		identity.Role = models.Role(v)
	}
	if v, ok := (*claims)["exam_type"].(string); ok {
		identity.ExamType = models.ExamType(v)
	}
	return identity
}
