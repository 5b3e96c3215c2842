package middleware

import (
	"net/http"
	"strings"

	"keyhub/internal/domain/entity"
	"keyhub/internal/domain/repository"
	"keyhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUserID is the echo context key carrying the authenticated user's id.
	ContextKeyUserID = "userID"

	// ContextKeyRole is the echo context key carrying the authenticated user's role.
	ContextKeyRole = "role"
)

// AuthMiddleware provides middleware for JWT authentication and role
// authorization. Every failure, missing header, bad token, unknown user or
// wrong role, yields a 401 with an empty body; the response never says which
// check failed.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the caller to a stored
// user. The role comes from the user record, not the token, so a role change
// takes effect on the next request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.NoContent(http.StatusUnauthorized)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.NoContent(http.StatusUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.NoContent(http.StatusUnauthorized)
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.NoContent(http.StatusUnauthorized)
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyRole, user.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller's role. It must
// be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok || role != requiredRole {
				return c.NoContent(http.StatusUnauthorized)
			}

			return next(c)
		}
	}
}

// UserID extracts the authenticated user's id from the echo context.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	return id, ok
}
