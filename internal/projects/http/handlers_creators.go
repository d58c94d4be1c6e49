package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apimw "github.com/ugchub/ugchub-backend/internal/api/http/middleware"
	"github.com/ugchub/ugchub-backend/internal/auth"
)

func (h *Handler) ListCreators(c *gin.Context) {
	p := apimw.Printer(c)
	c.JSON(http.StatusOK, gin.H{"creators": newCreatorViews(h.projects.AvailableCreators(), p)})
}

func (h *Handler) GetCreator(c *gin.Context) {
	creator, err := h.projects.Creator(c.Param("id"))
	if err != nil {
		h.writeError(c, "creators.get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"creator": newCreatorView(creator, apimw.Printer(c))})
}

// CreatorProjects is the proposals view: the creator plus every project
// they have been assigned to.
func (h *Handler) CreatorProjects(c *gin.Context) {
	p := apimw.Printer(c)

	creator, err := h.projects.Creator(c.Param("id"))
	if err != nil {
		h.writeError(c, "creators.projects", err)
		return
	}
	projects, err := h.projects.ProjectsWithCreator(creator.ID)
	if err != nil {
		h.writeError(c, "creators.projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"creator":  newCreatorView(creator, p),
		"projects": newProjectViews(projects, p),
	})
}

// Dashboard greets the resident identity with the project summary.
func (h *Handler) Dashboard(c *gin.Context) {
	identity, ok := auth.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	p := apimw.Printer(c)
	c.JSON(http.StatusOK, gin.H{
		"user":       identity,
		"role_label": p.T("role." + string(identity.Role)),
		"stats":      h.projects.Stats(),
	})
}
