package repository

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ugchub/ugchub-backend/internal/projects/domain"
)

//go:embed seed/creators.yaml
var defaultCatalogYAML []byte

// CatalogRepository is the fixed creator catalog. It is never mutated after
// construction, so reads need no locking.
type CatalogRepository struct {
	creators []domain.Creator
	byID     map[string]int
}

// NewCatalogRepository indexes creators. Ids must be unique.
func NewCatalogRepository(creators []domain.Creator) (*CatalogRepository, error) {
	r := &CatalogRepository{
		creators: make([]domain.Creator, 0, len(creators)),
		byID:     make(map[string]int, len(creators)),
	}
	for _, c := range creators {
		if c.ID == "" {
			return nil, fmt.Errorf("catalog: creator %q has no id", c.Name)
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("catalog: %w: %q", domain.ErrDuplicateCreatorID, c.ID)
		}
		if !c.RelationStatus.Valid() {
			return nil, fmt.Errorf("catalog: creator %q has unknown relation status %q", c.ID, c.RelationStatus)
		}
		r.byID[c.ID] = len(r.creators)
		r.creators = append(r.creators, c.Clone())
	}
	return r, nil
}

// DefaultCatalog returns the embedded five-creator catalog.
func DefaultCatalog() *CatalogRepository {
	r, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return r
}

// LoadCatalog reads a YAML catalog from path, or the embedded one when path is empty.
func LoadCatalog(path string) (*CatalogRepository, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML list of creators.
func ParseCatalog(data []byte) (*CatalogRepository, error) {
	var creators []domain.Creator
	if err := yaml.Unmarshal(data, &creators); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewCatalogRepository(creators)
}

// List returns a copy of the catalog in seed order.
func (r *CatalogRepository) List() []domain.Creator {
	out := make([]domain.Creator, len(r.creators))
	for i, c := range r.creators {
		out[i] = c.Clone()
	}
	return out
}

func (r *CatalogRepository) Get(id string) (domain.Creator, bool) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Creator{}, false
	}
	return r.creators[i].Clone(), true
}

func (r *CatalogRepository) Len() int {
	return len(r.creators)
}
