package middleware

import (
	"inventory-portal/internal/database"
	"inventory-portal/internal/session"

	"github.com/gin-gonic/gin"
)

// InjectUser resolves the session principal once per request and loads
// the full user record into the gin context for handlers and templates.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p := session.Principal(c); p != nil {
			if user, err := database.FindUserByID(p.UserID); err == nil {
				c.Set("CurrentUser", user)
			}
		}
		c.Next()
	}
}
