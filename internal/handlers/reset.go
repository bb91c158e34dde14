package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"inventory-portal/internal/logger"
	"inventory-portal/internal/service"
	"inventory-portal/internal/session"

	"github.com/gin-gonic/gin"
)

// The token travels as a query parameter on the reset-password URL,
// exactly as the reference implementation ships it.
const tokenParam = "temp-forgot-password-token"

// ResetHandler serves the forgot-password / reset-password flow.
type ResetHandler struct {
	Reset *service.ResetService
}

func (h *ResetHandler) ShowForgotPassword(c *gin.Context) {
	render(c, http.StatusOK, "forgot_password.html", gin.H{"error": ""})
}

type forgotForm struct {
	Username        string `form:"username"`
	CurrentPassword string `form:"current_password"`
}

func (h *ResetHandler) ForgotPassword(c *gin.Context) {
	var form forgotForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "forgot_password.html", gin.H{"error": "Invalid form data"})
		return
	}

	token, err := h.Reset.Request(form.Username, form.CurrentPassword)
	if err != nil {
		if !errors.Is(err, service.ErrAuthFailure) {
			logger.Errorf("reset request: %v", err)
		}
		render(c, http.StatusOK, "forgot_password.html", gin.H{"error": "Invalid username or current password"})
		return
	}

	c.Redirect(http.StatusFound, "/reset-password?"+tokenParam+"="+url.QueryEscape(token))
}

func (h *ResetHandler) ShowResetPassword(c *gin.Context) {
	token := c.Query(tokenParam)
	render(c, http.StatusOK, "reset_password.html", gin.H{
		"error":    "",
		"token":    token,
		"username": h.Reset.TokenUsername(token),
	})
}

type resetForm struct {
	Username        string `form:"username"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (h *ResetHandler) ResetPassword(c *gin.Context) {
	token := c.Query(tokenParam)

	var form resetForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "reset_password.html", gin.H{
			"error": "Invalid form data",
			"token": token,
		})
		return
	}

	if err := h.Reset.Apply(token, form.Username, form.NewPassword, form.ConfirmPassword); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			render(c, http.StatusOK, "reset_password.html", gin.H{
				"error":    vErr.Reason,
				"token":    token,
				"username": form.Username,
			})
			return
		}
		logger.Errorf("reset apply: %v", err)
		render(c, http.StatusInternalServerError, "reset_password.html", gin.H{
			"error":    "An error occurred while resetting the password",
			"token":    token,
			"username": form.Username,
		})
		return
	}

	session.Flash(c, "success", "Password successfully reset! You can now log in.")
	c.Redirect(http.StatusFound, "/login")
}
