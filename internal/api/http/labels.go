package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apimw "github.com/ugchub/ugchub-backend/internal/api/http/middleware"
)

// Labels serves the static label switch for the resolved language.
func Labels(c *gin.Context) {
	p := apimw.Printer(c)
	c.JSON(http.StatusOK, gin.H{
		"lang":   p.Lang().String(),
		"labels": p.Labels(),
	})
}
