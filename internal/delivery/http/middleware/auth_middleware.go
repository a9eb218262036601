package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-skillmatch-backend/internal/delivery/http/response"
	"go-skillmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var key string

		// 1. Try to get token from Header
		if authHeader != "" {
			key = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				key = cookie
			}
		}

		if key == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		// Opaque token lookup. The key is replaced on every login, so a
		// stale key from an older session resolves to nothing.
		user, err := authUC.Authenticate(c.Request.Context(), key)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// Gin lookups use string keys; the usecases read typed keys off the
		// request context. Set both.
		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)
		c.Set(string(domain.KeyUserRole), user.UserType)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUsername, user.Username)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.UserType)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
