package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apimw "github.com/ugchub/ugchub-backend/internal/api/http/middleware"
	"github.com/ugchub/ugchub-backend/internal/auth"
	"github.com/ugchub/ugchub-backend/internal/auth/domain"
	"github.com/ugchub/ugchub-backend/internal/i18n"
)

// LoginPath is where guarded views send the client back to.
const LoginPath = "/login"

// Authorizer is the part of the session store the guard needs.
type Authorizer interface {
	Authorize(roles ...domain.Role) (domain.Identity, error)
}

// RequireRole lets the request through only when an identity is resident
// and, if roles are given, its role is one of them. The identity is stored
// in the Gin context for handlers.
//
//   - 401 Unauthorized: nobody is logged in
//   - 403 Forbidden: the resident identity has another role
func RequireRole(store Authorizer, roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := store.Authorize(roles...)
		if err != nil {
			p := apimw.Printer(c)
			switch {
			case errors.Is(err, domain.ErrNotAuthenticated):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":    p.T(i18n.KeyAuthRequired),
					"redirect": LoginPath,
				})
			case errors.Is(err, domain.ErrRoleNotAllowed):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":    p.T(i18n.KeyAuthForbidden),
					"redirect": LoginPath,
				})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		auth.SetIdentity(c, identity)
		c.Next()
	}
}
