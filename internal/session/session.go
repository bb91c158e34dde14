// Package session wraps gin-contrib cookie sessions with typed
// accessors for the principal and flash messages.
package session

import (
	"encoding/gob"

	"inventory-portal/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const principalKey = "PRINCIPAL"

// FlashMessage is an inline notice rendered once on the next page.
// Level is one of "error", "success", "info".
type FlashMessage struct {
	Level   string
	Message string
}

func init() {
	gob.Register(models.Principal{})
	gob.Register(FlashMessage{})
}

func SetPrincipal(c *gin.Context, p *models.Principal) error {
	s := sessions.Default(c)
	s.Set(principalKey, *p)
	return s.Save()
}

func Principal(c *gin.Context) *models.Principal {
	s := sessions.Default(c)
	if obj := s.Get(principalKey); obj != nil {
		if p, ok := obj.(models.Principal); ok {
			return &p
		}
	}
	return nil
}

func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

func Flash(c *gin.Context, level, message string) {
	s := sessions.Default(c)
	s.AddFlash(FlashMessage{Level: level, Message: message})
	_ = s.Save()
}

// Flashes drains and returns the pending flash messages.
func Flashes(c *gin.Context) []FlashMessage {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save()

	out := make([]FlashMessage, 0, len(raw))
	for _, r := range raw {
		if f, ok := r.(FlashMessage); ok {
			out = append(out, f)
		}
	}
	return out
}
