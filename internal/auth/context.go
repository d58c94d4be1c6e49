package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/ugchub/ugchub-backend/internal/auth/domain"
)

const CtxIdentity = "identity"

// SetIdentity stores the authorized identity in the Gin context.
func SetIdentity(c *gin.Context, identity domain.Identity) {
	c.Set(CtxIdentity, identity)
}

// Identity extracts the identity set by RequireRole.
func Identity(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
