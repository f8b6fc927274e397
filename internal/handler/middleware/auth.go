package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/cookie"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var roleHierarchy = map[user.Role]int{
	user.RoleGuest: 1,
	user.RoleHost:  2,
	user.RoleAdmin: 3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setIdentity(c, userID, role)
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("role missing from context"), "Internal server error", nil)
			return
		}

		if !hasMinimumRole(role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, access.ErrForbidden, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, userID, role)
		c.Next()
	}
}

// cookie first, then Authorization: Bearer
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, userID uuid.UUID, role user.Role) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	c.Set("jwt_claims", map[string]any{
		"user_id": userID.String(),
		"role":    string(role),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor returns the zero Actor for anonymous requests; access.CanModify rejects it.
func GetActor(c *gin.Context) access.Actor {
	id, ok := GetUserID(c)
	if !ok {
		return access.Actor{}
	}
	role, _ := GetUserRole(c)
	return access.NewActor(id, role)
}
