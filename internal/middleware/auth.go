package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aishield/api/internal/service"
)

const CurrentUserKey = "current_user"

// Auth resolves the session cookie against the session store and stashes the
// owning user on the context. Unlike Guard, this is the precise check: absent,
// expired, and orphaned sessions all end in a 401.
func Auth(cookieName string, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := auth.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
