package middleware

import (
	"strings"

	"github.com/acecbt/acetoken/internal/pkg/jwt"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/internal/utils"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware creates a middleware for JWT session authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			// Validate the token using our JWT package
			claims, err := jwt.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			// Admin identities carry no registration number, so the role
			// claim is the one every session token must have
			identity := jwt.IdentityFromClaims(claims)
			if identity.Role == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			// Set the identity and role in the context
			c.Set("identity", identity)
			c.Set("role", string(identity.Role))

			return next(c)
		}
	}
}

// AdminOnly rejects requests from non-admin identities. Must run after
// JWTAuthMiddleware.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != string(models.RoleAdmin) {
				return utils.ForbiddenResponse(c, "Administrator access required")
			}
			return next(c)
		}
	}
}
