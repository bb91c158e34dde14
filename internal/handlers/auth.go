package handlers

import (
	"errors"
	"net/http"

	"inventory-portal/internal/logger"
	"inventory-portal/internal/service"
	"inventory-portal/internal/session"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	Users *service.UserService
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data"})
		return
	}

	principal, err := h.Users.Authenticate(form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, service.ErrAuthFailure) {
			logger.Errorf("login: %v", err)
		}
		render(c, http.StatusOK, "login.html", gin.H{"error": "Invalid username or password"})
		return
	}

	if err := session.SetPrincipal(c, principal); err != nil {
		logger.Errorf("save session: %v", err)
		render(c, http.StatusInternalServerError, "login.html", gin.H{"error": "Could not establish session"})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

type registerForm struct {
	Username        string `form:"username"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid form data"})
		return
	}

	_, err := h.Users.Register(form.Username, form.Password, form.ConfirmPassword)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			render(c, http.StatusBadRequest, "register.html", gin.H{"error": vErr.Reason})
		case errors.Is(err, service.ErrDuplicateUser):
			render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Username already exists"})
		default:
			logger.Errorf("register: %v", err)
			render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "An error occurred while creating your account"})
		}
		return
	}

	session.Flash(c, "success", "Account created successfully! You can now log in.")
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		logger.Errorf("clear session: %v", err)
	}
	session.Flash(c, "info", "You have been logged out successfully")
	c.Redirect(http.StatusFound, "/login")
}
