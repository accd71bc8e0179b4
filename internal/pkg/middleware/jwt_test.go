package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/acecbt/acetoken/internal/pkg/jwt"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

func jwtTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "middleware-test-secret",
			Expiration: 60,
			Issuer:     "acetoken-test",
		},
	}
}

func runGuarded(t *testing.T, cfg *models.Config, authHeader string, adminGate bool) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/tokens", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	if adminGate {
		handler = AdminOnly()(handler)
	}
	err := JWTAuthMiddleware(cfg.JWT)(handler)(c)
	require.NoError(t, err)
	return rec
}

func TestJWTAuthMiddleware_AdminSessionReachesHandler(t *testing.T) {
	cfg := jwtTestConfig()

	// The admin identity carries no registration number
	token, _, err := jwtpkg.GenerateToken(&models.Identity{
		Role:     models.RoleAdmin,
		FullName: "Administrator",
	}, cfg)
	require.NoError(t, err)

	rec := runGuarded(t, cfg, "Bearer "+token, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_StudentSessionReachesHandler(t *testing.T) {
	cfg := jwtTestConfig()

	token, _, err := jwtpkg.GenerateToken(&models.Identity{
		Role:      models.RoleStudent,
		RegNumber: "ACE-ABCD-EFGH-JKLM",
	}, cfg)
	require.NoError(t, err)

	rec := runGuarded(t, cfg, "Bearer "+token, false)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_StudentBlockedByAdminGate(t *testing.T) {
	cfg := jwtTestConfig()

	token, _, err := jwtpkg.GenerateToken(&models.Identity{
		Role:      models.RoleStudent,
		RegNumber: "ACE-ABCD-EFGH-JKLM",
	}, cfg)
	require.NoError(t, err)

	rec := runGuarded(t, cfg, "Bearer "+token, true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	cfg := jwtTestConfig()

	wrongSecret := jwtTestConfig()
	wrongSecret.JWT.Secret = "a-different-secret"
	forged, _, err := jwtpkg.GenerateToken(&models.Identity{Role: models.RoleAdmin}, wrongSecret)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
	}{
		{"Missing Header", ""},
		{"Malformed Header", "Token abc"},
		{"Forged Token", "Bearer " + forged},
		{"Garbage Token", "Bearer not.a.jwt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runGuarded(t, cfg, tc.header, false)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
