package handlers

import (
	"net/http"

	"inventory-portal/internal/database"
	"inventory-portal/internal/logger"
	"inventory-portal/internal/models"

	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func Dashboard(c *gin.Context) {
	summary, err := database.AggregateInventory()
	if err != nil {
		logger.Errorf("dashboard aggregation: %v", err)
		render(c, http.StatusInternalServerError, "dashboard.html", gin.H{
			"error": "Could not load dashboard data",
		})
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"totalItems":  summary.TotalItems,
		"totalValue":  summary.TotalValue,
		"lowStock":    summary.LowStockCount,
		"recentItems": summary.RecentItems,
	})
}

func Inventory(c *gin.Context) {
	items, err := database.ListInventoryItems()
	if err != nil {
		logger.Errorf("list inventory: %v", err)
	}
	render(c, http.StatusOK, "inventory.html", gin.H{"items": items})
}

func Profile(c *gin.Context) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	render(c, http.StatusOK, "profile.html", gin.H{"user": uVal.(*models.User)})
}

// Admin lists every account with profile data. Role-gated in the router.
func Admin(c *gin.Context) {
	users, err := database.ListUsers()
	if err != nil {
		logger.Errorf("list users: %v", err)
	}
	render(c, http.StatusOK, "admin.html", gin.H{"users": users})
}
