package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apimw "github.com/ugchub/ugchub-backend/internal/api/http/middleware"
	"github.com/ugchub/ugchub-backend/internal/i18n"
	"github.com/ugchub/ugchub-backend/internal/logging"
	"github.com/ugchub/ugchub-backend/internal/projects/domain"
)

// CreateProject validates the create-project form and appends a new project.
func (h *Handler) CreateProject(c *gin.Context) {
	p := apimw.Printer(c)

	var form domain.ProjectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": p.T(i18n.KeyInvalidBody)})
		return
	}
	in, errs := form.Validate()
	if !errs.Empty() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs.Map(p.T)})
		return
	}

	project, err := h.projects.CreateProject(in)
	if err != nil {
		h.writeError(c, "projects.create", err)
		return
	}

	logging.New(c.Request.Context()).Infof("projects.create", "project=%s status=%s", project.ID, project.Status)
	c.JSON(http.StatusCreated, gin.H{
		"message": p.T(i18n.KeyProjectCreated),
		"project": newProjectView(project, p),
	})
}

// ListProjects is the project library.
func (h *Handler) ListProjects(c *gin.Context) {
	p := apimw.Printer(c)
	c.JSON(http.StatusOK, gin.H{"projects": newProjectViews(h.projects.Projects(), p)})
}

func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.projects.Project(c.Param("id"))
	if err != nil {
		h.writeError(c, "projects.get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": newProjectView(project, apimw.Printer(c))})
}

// UpdateProject applies a partial edit. Only the fields present in the body
// are changed; the merged project must still pass the date and bound rules.
func (h *Handler) UpdateProject(c *gin.Context) {
	p := apimw.Printer(c)

	var form domain.ProjectPatchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": p.T(i18n.KeyInvalidBody)})
		return
	}
	patch, errs := form.Validate()
	if !errs.Empty() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs.Map(p.T)})
		return
	}

	project, err := h.projects.UpdateProject(c.Param("id"), patch)
	if err != nil {
		h.writeError(c, "projects.update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": newProjectView(project, p)})
}

// AddCreators assigns the selected catalog creators to a project.
func (h *Handler) AddCreators(c *gin.Context) {
	p := apimw.Printer(c)

	var req addCreatorsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": p.T(i18n.KeyInvalidBody)})
		return
	}
	if len(req.CreatorIDs) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"creator_ids": p.T(i18n.KeyCreatorIDsRequired)}})
		return
	}

	project, err := h.projects.AddCreatorsToProject(c.Param("id"), req.CreatorIDs)
	if err != nil {
		h.writeError(c, "projects.add_creators", err)
		return
	}

	logging.New(c.Request.Context()).Infof("projects.add_creators", "project=%s assigned=%d", project.ID, len(project.AssignedCreators))
	c.JSON(http.StatusOK, gin.H{"project": newProjectView(project, p)})
}

// AvailableCreators returns the whole catalog for the add-creators view and
// flags the ones already on the project.
func (h *Handler) AvailableCreators(c *gin.Context) {
	p := apimw.Printer(c)

	project, err := h.projects.Project(c.Param("id"))
	if err != nil {
		h.writeError(c, "projects.available_creators", err)
		return
	}

	type item struct {
		creatorView
		Assigned bool `json:"assigned"`
	}
	creators := h.projects.AvailableCreators()
	items := make([]item, len(creators))
	for i, cr := range creators {
		items[i] = item{creatorView: newCreatorView(cr, p), Assigned: project.HasCreator(cr.ID)}
	}
	c.JSON(http.StatusOK, gin.H{"project_id": project.ID, "creators": items})
}

func (h *Handler) writeError(c *gin.Context, operation string, err error) {
	p := apimw.Printer(c)
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Errors.Map(p.T)})
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": p.T(i18n.KeyProjectNotFound)})
	case errors.Is(err, domain.ErrCreatorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": p.T(i18n.KeyCreatorNotFound)})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": p.T(i18n.KeyProjectStatusInvalid)})
	default:
		logging.New(c.Request.Context()).Error(operation, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
