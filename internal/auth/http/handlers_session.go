package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apimw "github.com/ugchub/ugchub-backend/internal/api/http/middleware"
	"github.com/ugchub/ugchub-backend/internal/auth/domain"
	"github.com/ugchub/ugchub-backend/internal/i18n"
	"github.com/ugchub/ugchub-backend/internal/logging"
)

// Login validates the form, then tries the credentials against the session store.
// Unknown email and wrong password produce the same response.
func (h *Handler) Login(c *gin.Context) {
	p := apimw.Printer(c)

	var form domain.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": p.T(i18n.KeyInvalidBody)})
		return
	}
	form.Email = strings.TrimSpace(form.Email)

	if errs := form.Validate(); !errs.Empty() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": domain.LoginFormErrors{
			Email:    p.T(errs.Email),
			Password: p.T(errs.Password),
			Role:     p.T(errs.Role),
		}})
		return
	}

	if !h.sessions.Login(form.Email, form.Password, form.Role) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": p.T(i18n.KeyInvalidCredentials)})
		return
	}

	identity, _ := h.sessions.Current()
	logging.New(c.Request.Context()).Infof("auth.login", "role=%s identity=%s", identity.Role, identity.ID)

	c.JSON(http.StatusOK, gin.H{"user": identity})
}

// Logout clears the session; calling it without a session is not an error.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Logout()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Session reports the resident identity, if any.
func (h *Handler) Session(c *gin.Context) {
	identity, ok := h.sessions.Current()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": identity})
}
