package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Guard classifies every inbound path and redirects page traffic based on
// cookie presence alone. It never validates the token: an expired cookie
// passes the gate and is rejected later by whatever handler resolves the
// session. Callers must treat pass-through as provisional.
func Guard(cookieName string) gin.HandlerFunc {
	authAPIPaths := []string{"/api/auth/login", "/api/auth/register", "/api/auth/logout"}

	return func(c *gin.Context) {
		p := c.Request.URL.Path

		for _, bypass := range authAPIPaths {
			if strings.HasPrefix(p, bypass) {
				c.Next()
				return
			}
		}

		_, err := c.Cookie(cookieName)
		authenticated := err == nil

		if strings.HasPrefix(p, "/dashboard") && !authenticated {
			q := url.Values{"returnTo": {p}}
			c.Redirect(http.StatusFound, "/login?"+q.Encode())
			c.Abort()
			return
		}

		if (p == "/login" || p == "/register") && authenticated {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}

		c.Next()
	}
}
