package server

import (
	"fmt"

	"inventory-portal/internal/config"
	"inventory-portal/internal/handlers"
	"inventory-portal/internal/hash"
	"inventory-portal/internal/middleware"
	"inventory-portal/internal/models"
	"inventory-portal/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", cfg.StaticDir)
	r.SetFuncMap(templateFuncs())
	r.LoadHTMLGlob(cfg.TemplateGlob)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("inventory_session", store))
	r.Use(middleware.InjectUser())

	hasher := hash.ForMode(cfg.Hardened())
	auth := &handlers.AuthHandler{Users: service.NewUserService(hasher)}
	reset := &handlers.ResetHandler{Reset: service.NewResetService(hasher, cfg.Hardened())}

	r.GET("/", handlers.Index)
	r.GET("/health", handlers.Health)

	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	r.GET("/logout", auth.Logout)

	r.GET("/forgot-password", reset.ShowForgotPassword)
	r.POST("/forgot-password", reset.ForgotPassword)
	r.GET("/reset-password", reset.ShowResetPassword)
	r.POST("/reset-password", reset.ResetPassword)

	signedIn := r.Group("/")
	signedIn.Use(middleware.RequireAuth())

	signedIn.GET("/dashboard", handlers.Dashboard)
	signedIn.GET("/inventory", handlers.Inventory)
	signedIn.GET("/profile", handlers.Profile)
	signedIn.GET("/admin",
		middleware.RequireRole(models.RoleAdmin),
		handlers.Admin,
	)

	return r
}

func templateFuncs() map[string]any {
	return map[string]any{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}
}
