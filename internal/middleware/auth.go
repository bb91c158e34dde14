package middleware

import (
	"net/http"

	"inventory-portal/internal/models"
	"inventory-portal/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Principal(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole gates a route to the given roles. A signed-in user with
// the wrong role is bounced back to the dashboard with a notice, never
// a hard 403.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	roleSet := map[models.Role]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		p := session.Principal(c)
		if p == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if _, ok := roleSet[p.Role]; !ok {
			session.Flash(c, "error", "Access denied. Admin privileges required.")
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
