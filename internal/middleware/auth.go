package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Delo1999/quiztopia/internal/auth"
	"github.com/Delo1999/quiztopia/internal/repository"
	"github.com/Delo1999/quiztopia/internal/responses"
	"github.com/Delo1999/quiztopia/internal/validation"
)

const (
	authUserKey     = "auth_user_id"
	authEmailKey    = "auth_email"
	authUsernameKey = "auth_username"
)

// RequireAuth validates the bearer token, re-resolves the subject against the
// user store, and sets the caller identity on the request context.
//
// Every failure mode (missing header, malformed token, bad signature,
// expired, subject no longer exists) returns the same 401 body; the specific
// cause is only logged. A token for a since-deleted account is rejected even
// though it still verifies.
func RequireAuth(tokens *auth.TokenService, users repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			reject(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			reject(c, "malformed authorization header")
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			reject(c, err.Error())
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				reject(c, "token subject no longer exists")
			} else {
				slog.Error("auth user lookup failed", "error", err)
				responses.InternalServerError(c, validation.MsgInternalError)
				c.Abort()
			}
			return
		}

		c.Set(authUserKey, user.ID)
		c.Set(authEmailKey, user.Email)
		c.Set(authUsernameKey, user.Username)

		c.Next()
	}
}

func reject(c *gin.Context, reason string) {
	slog.Warn("authentication rejected", "reason", reason, "path", c.FullPath())
	responses.Unauthorized(c, validation.MsgUnauthorized)
	c.Abort()
}

// GetAuthUserID retrieves the authenticated user ID from context
func GetAuthUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(authUserKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetAuthEmail retrieves the authenticated email from context
func GetAuthEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(authEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetAuthUsername retrieves the authenticated username from context
func GetAuthUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(authUsernameKey)
	if !exists {
		return "", false
	}
	return username.(string), true
}
