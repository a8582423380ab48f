package gateway

import (
	"errors"
	"strings"

	"reward-platform/internal/apierrors"
	"reward-platform/internal/observability"
	"reward-platform/internal/user/processor"

	"github.com/gin-gonic/gin"
)

// Keys under which Authenticate stores the caller's identity in the gin context
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// Headers carrying the caller's identity to the backend services
const (
	HeaderUserID = "X-User-ID"
	HeaderRole   = "X-User-Role"
)

// Authenticate verifies the bearer access token and stores the caller's identity
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		stripIdentity(c)

		tokenHeader := c.GetHeader("Authorization")
		if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
			apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
			return
		}

		claims, err := processor.ValidateAccessToken(strings.TrimPrefix(tokenHeader, "Bearer "), secret)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, processor.ErrExpiredToken) {
				message = "Token expired"
			}
			apierrors.RespondWithError(c, apierrors.Unauthorized(message))
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Request.Header.Set(HeaderUserID, claims.Subject)
		c.Request.Header.Set(HeaderRole, claims.Role)

		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "user_id", Value: claims.Subject},
			observability.Field{Key: "role", Value: claims.Role},
		)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// stripIdentity drops identity headers sent by the client
func stripIdentity(c *gin.Context) {
	c.Request.Header.Del(HeaderUserID)
	c.Request.Header.Del(HeaderRole)
}

// RequireRoles rejects callers whose role is not one of roles. It must run after Authenticate.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := allowed[c.GetString(ContextRole)]; !ok {
			apierrors.RespondWithError(c, apierrors.Forbidden("You do not have permission to access this resource"))
			return
		}
		c.Next()
	}
}
