package auth

import (
	"context"
	"net/http"
	"strings"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextUserIDKey = "user_id"
	contextUserKey   = "user"
)

// UserLookup loads the account behind a verified token
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens *TokenService
	users  UserLookup
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *TokenService, users UserLookup) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		userID, err := m.tokens.ValidateAccessToken(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			return
		}

		user, err := m.users.GetByID(c.Request.Context(), userID)
		if err != nil || !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			return
		}

		SetUser(c, user)
		c.Next()
	}
}

// SetUser stores the authenticated user on the gin and request contexts
func SetUser(c *gin.Context, user *models.User) {
	c.Set(contextUserIDKey, user.ID)
	c.Set(contextUserKey, user)
	c.Request = c.Request.WithContext(logger.ContextWithUserID(c.Request.Context(), user.ID.String()))
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(contextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUser is a helper function to extract the authenticated user from context
func GetUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}

	u, ok := user.(*models.User)
	return u, ok
}
