package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/projectdeck/project-management-api/internal/errors"
	"github.com/projectdeck/project-management-api/internal/models"
	"github.com/projectdeck/project-management-api/internal/token"
)

const (
	identityKey     = "auth_identity"
	refreshTokenKey = "auth_refresh_token"
)

// Identity is the authenticated caller, extracted from a verified token.
type Identity struct {
	ID    models.EntityID
	Email string
}

// RequireAuth verifies the bearer access token and stores the caller's
// identity in the context. On failure nothing downstream runs.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			apierrors.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{ID: claims.UserID(), Email: claims.Email})
		c.Next()
	}
}

// RequireRefreshAuth verifies the bearer refresh token. The raw token is
// kept alongside the identity so the handler can compare it against the
// stored hash.
func RequireRefreshAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			apierrors.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		claims, err := tokens.VerifyRefreshToken(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{ID: claims.UserID(), Email: claims.Email})
		c.Set(refreshTokenKey, tokenString)
		c.Next()
	}
}

// GetIdentity retrieves the authenticated identity from the context.
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)
	return identity, ok
}

// GetRefreshToken retrieves the raw presented refresh token.
func GetRefreshToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(refreshTokenKey)
	if !exists {
		return "", false
	}

	tokenString, ok := value.(string)
	return tokenString, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return "", false
	}
	return strings.TrimSpace(tokenString), true
}
