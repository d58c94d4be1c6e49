package http

import (
	"github.com/ugchub/ugchub-backend/internal/events"
	"github.com/ugchub/ugchub-backend/internal/i18n"
	"github.com/ugchub/ugchub-backend/internal/projects/domain"
	"github.com/ugchub/ugchub-backend/internal/projects/service"
)

// Handler bundles the dependencies for project and creator endpoints.
type Handler struct {
	projects *service.ProjectService
	hub      *events.Hub
}

// New creates a handler. hub may be nil, in which case the event stream
// only sends the initial snapshot and keep-alives.
func New(projects *service.ProjectService, hub *events.Hub) *Handler {
	return &Handler{projects: projects, hub: hub}
}

type projectView struct {
	domain.Project
	StatusLabel      string          `json:"status_label"`
	Staffing         domain.Staffing `json:"staffing"`
	AssignedCreators []creatorView   `json:"assigned_creators"`
}

type creatorView struct {
	domain.Creator
	RelationLabel string `json:"relation_label"`
}

func newProjectView(p domain.Project, pr *i18n.Printer) projectView {
	assigned := make([]creatorView, len(p.AssignedCreators))
	for i, c := range p.AssignedCreators {
		assigned[i] = newCreatorView(c, pr)
	}
	return projectView{
		Project:          p,
		StatusLabel:      pr.T("status." + string(p.Status)),
		Staffing:         p.Staffing(),
		AssignedCreators: assigned,
	}
}

func newProjectViews(ps []domain.Project, pr *i18n.Printer) []projectView {
	out := make([]projectView, len(ps))
	for i, p := range ps {
		out[i] = newProjectView(p, pr)
	}
	return out
}

func newCreatorView(c domain.Creator, pr *i18n.Printer) creatorView {
	return creatorView{
		Creator:       c,
		RelationLabel: pr.T("relation." + string(c.RelationStatus)),
	}
}

func newCreatorViews(cs []domain.Creator, pr *i18n.Printer) []creatorView {
	out := make([]creatorView, len(cs))
	for i, c := range cs {
		out[i] = newCreatorView(c, pr)
	}
	return out
}

type addCreatorsReq struct {
	CreatorIDs []string `json:"creator_ids"`
}
