// Package middleware contains the echo middleware of the API server.
package middleware

import (
	"strings"

	"academia/internal/delivery/api/response"
	"academia/internal/domain/entity"
	"academia/internal/domain/service"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID          = "userID"
	contextKeyRoles           = "roles"
	contextKeyProfileComplete = "profileComplete"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores its subject on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "An access token is required")
		}
		if claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))
		c.Set(contextKeyProfileComplete, claims.ProfileComplete)

		return next(c)
	}
}

// RequireRole rejects callers holding none of roles. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	required := make([]string, 0, len(roles))
	for _, role := range roles {
		required = append(required, "'"+role.String()+"'")
	}
	denied := "Permission denied: require " + strings.Join(required, " or ") + " role"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !held.ContainsAny(roles...) {
				return response.Forbidden(c, "FORBIDDEN", denied)
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}

// GetActor returns the authenticated caller, or nil on public routes.
func GetActor(c echo.Context) *usecase.Actor {
	userID, ok := GetUserID(c)
	if !ok {
		return nil
	}
	roles, _ := GetRoles(c)

	return &usecase.Actor{UserID: userID, Roles: roles}
}

// IsProfileComplete reports the profile flag carried by the access token.
func IsProfileComplete(c echo.Context) bool {
	complete, _ := c.Get(contextKeyProfileComplete).(bool)

	return complete
}
