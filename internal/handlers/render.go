package handlers

import (
	"inventory-portal/internal/models"
	"inventory-portal/internal/session"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and threads the current user plus pending flash
// messages into every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(*models.User); ok {
			data["CurrentUser"] = u
			data["CurrentUsername"] = u.Username
			data["CurrentUserRole"] = u.Role
			data["IsAdmin"] = u.Role == models.RoleAdmin
		}
	}

	if flashes := session.Flashes(c); len(flashes) > 0 {
		data["Flashes"] = flashes
	}

	c.HTML(status, tmpl, data)
}
