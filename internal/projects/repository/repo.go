package repository

import (
	"sync"

	"github.com/ugchub/ugchub-backend/internal/projects/domain"
)

// ProjectRepository keeps projects in memory, in creation order.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects []domain.Project
	index    map[string]int
}

// NewProjectRepository creates an empty repository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{index: make(map[string]int)}
}

// Insert appends p at the end of the list. The repository stores its own copy.
func (r *ProjectRepository) Insert(p domain.Project) domain.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.index[p.ID] = len(r.projects)
	r.projects = append(r.projects, p.Clone())
	return p.Clone()
}

// Update runs fn on a working copy of the project with the given id and
// stores the copy only if fn returns nil. The whole call holds the write
// lock, so fn must not call back into the repository.
func (r *ProjectRepository) Update(id string, fn func(*domain.Project) error) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return domain.Project{}, domain.ErrProjectNotFound
	}

	working := r.projects[i].Clone()
	if err := fn(&working); err != nil {
		return domain.Project{}, err
	}
	r.projects[i] = working
	return working.Clone(), nil
}

func (r *ProjectRepository) Get(id string) (domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return r.projects[i].Clone(), nil
}

// List returns copies of every project, optionally filtered by keep.
func (r *ProjectRepository) List(keep func(domain.Project) bool) []domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if keep != nil && !keep(p) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}
