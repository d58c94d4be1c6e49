package service

import (
	"time"

	"github.com/ugchub/ugchub-backend/internal/events"
	"github.com/ugchub/ugchub-backend/internal/projects/domain"
	"github.com/ugchub/ugchub-backend/internal/projects/repository"
)

// ProjectService is the domain store: the project list plus the fixed
// creator catalog.
type ProjectService struct {
	repo    *repository.ProjectRepository
	catalog *repository.CatalogRepository
	hub     *events.Hub
	now     func() time.Time
}

// NewProjectService creates a store with no projects. hub may be nil.
func NewProjectService(repo *repository.ProjectRepository, catalog *repository.CatalogRepository, hub *events.Hub) *ProjectService {
	return &ProjectService{
		repo:    repo,
		catalog: catalog,
		hub:     hub,
		now:     time.Now,
	}
}

// CreateProject appends a new draft project (or in.Status when set) with no
// assigned creators.
func (s *ProjectService) CreateProject(in domain.ProjectInput) (domain.Project, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.Valid() {
		return domain.Project{}, domain.ErrInvalidStatus
	}

	now := s.now().UTC()
	p := domain.Project{
		ID:               domain.NewProjectID(),
		Name:             in.Name,
		Description:      in.Description,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		MinCreators:      in.MinCreators,
		MaxCreators:      in.MaxCreators,
		Status:           status,
		AssignedCreators: []domain.Creator{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created := s.repo.Insert(p)

	s.publish(events.TypeProjectCreated, created)
	return created, nil
}

// UpdateProject merges patch over the project. A merge that leaves the end
// before the start or min above max fails with a *domain.ValidationError.
func (s *ProjectService) UpdateProject(id string, patch domain.ProjectPatch) (domain.Project, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Project{}, domain.ErrInvalidStatus
	}

	updated, err := s.repo.Update(id, func(p *domain.Project) error {
		if errs := patch.CheckAgainst(*p); !errs.Empty() {
			return &domain.ValidationError{Errors: errs}
		}
		*p = patch.Apply(*p)
		p.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}

	s.publish(events.TypeProjectUpdated, updated)
	return updated, nil
}

// AddCreatorsToProject appends snapshots of the catalog creators named in
// creatorIDs that are not assigned yet, in creatorIDs order. Ids missing
// from the catalog are skipped.
func (s *ProjectService) AddCreatorsToProject(projectID string, creatorIDs []string) (domain.Project, error) {
	added := 0
	updated, err := s.repo.Update(projectID, func(p *domain.Project) error {
		for _, id := range creatorIDs {
			if p.HasCreator(id) {
				continue
			}
			c, ok := s.catalog.Get(id)
			if !ok {
				continue
			}
			p.AssignedCreators = append(p.AssignedCreators, c)
			added++
		}
		if added > 0 {
			p.UpdatedAt = s.now().UTC()
		}
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}

	if added > 0 {
		s.publish(events.TypeCreatorsAdded, updated)
	}
	return updated, nil
}

// AvailableCreators returns the whole catalog, including creators already
// assigned to some project.
func (s *ProjectService) AvailableCreators() []domain.Creator {
	return s.catalog.List()
}

// CatalogSize is the number of creators loaded from the seed.
func (s *ProjectService) CatalogSize() int {
	return s.catalog.Len()
}

func (s *ProjectService) Creator(id string) (domain.Creator, error) {
	c, ok := s.catalog.Get(id)
	if !ok {
		return domain.Creator{}, domain.ErrCreatorNotFound
	}
	return c, nil
}

// Projects returns every project in creation order.
func (s *ProjectService) Projects() []domain.Project {
	return s.repo.List(nil)
}

func (s *ProjectService) Project(id string) (domain.Project, error) {
	return s.repo.Get(id)
}

// ProjectsWithCreator lists the projects a creator has been assigned to.
func (s *ProjectService) ProjectsWithCreator(creatorID string) ([]domain.Project, error) {
	if _, ok := s.catalog.Get(creatorID); !ok {
		return nil, domain.ErrCreatorNotFound
	}
	return s.repo.List(func(p domain.Project) bool {
		return p.HasCreator(creatorID)
	}), nil
}

// Stats summarizes the project list for the dashboard.
func (s *ProjectService) Stats() domain.Stats {
	projects := s.repo.List(nil)

	st := domain.Stats{TotalProjects: len(projects)}
	for _, p := range projects {
		st.AssignedCreators += len(p.AssignedCreators)
		if p.Status == domain.StatusActive {
			st.ActiveProjects++
		}
	}
	return st
}

func (s *ProjectService) publish(typ string, p domain.Project) {
	s.hub.Publish(events.Event{
		Topic:   events.TopicProjects,
		Type:    typ,
		Subject: p.ID,
		Payload: p.Clone(),
	})
}
