package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/hoopspot/hoopspot/internal/pkg/jwt"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/internal/utils"
)

// ContextKeyUserID is the echo context key holding the authenticated user ID
const ContextKeyUserID = "user_id"

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := claims["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set(ContextKeyUserID, fmt.Sprintf("%v", userID))

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user ID set by the JWT middleware
func UserIDFromContext(c echo.Context) string {
	if id, ok := c.Get(ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}
