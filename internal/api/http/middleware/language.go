package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/ugchub/ugchub-backend/internal/i18n"
)

const CtxPrinter = "i18n_printer"

// Language resolves the request language and stores an i18n.Printer in the
// Gin context. A ?lang= choice is persisted as a cookie.
func Language(resolver *i18n.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag, persist := resolver.Resolve(c.Request)
		if persist {
			i18n.SetLanguageCookie(c.Writer, tag)
		}
		c.Header("Content-Language", tag.String())
		c.Set(CtxPrinter, i18n.NewPrinter(tag))
		c.Next()
	}
}

// Printer returns the request's printer, or a Spanish one when the
// Language middleware did not run.
func Printer(c *gin.Context) *i18n.Printer {
	if v, ok := c.Get(CtxPrinter); ok {
		if p, ok := v.(*i18n.Printer); ok {
			return p
		}
	}
	return i18n.NewPrinter(language.Spanish)
}
