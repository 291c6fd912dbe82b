package middleware

import (
	"net/http"
	"strings"

	"markethub/internal/delivery/http/response"
	"markethub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the authentication middleware.
const (
	KeyAccountEmail = "accountEmail"
	KeyAccountRole  = "accountRole"
	KeyAccountName  = "accountName"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccess(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(KeyAccountEmail, claims.Email)
		c.Set(KeyAccountRole, claims.Role)
		c.Set(KeyAccountName, claims.Name)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the account has a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(KeyAccountRole).(string)
			if !ok || role != requiredRole {
				return echo.NewHTTPError(http.StatusForbidden, "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// AccountEmail extracts the authenticated account email from the context.
func AccountEmail(c echo.Context) string {
	email, _ := c.Get(KeyAccountEmail).(string)

	return email
}
