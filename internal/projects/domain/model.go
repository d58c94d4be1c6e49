package domain

import "time"

// Status is the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusDraft     Status = "draft"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusDraft:
		return true
	}
	return false
}

// RelationStatus tags a creator's relationship with one project.
type RelationStatus string

const (
	RelationNegotiating RelationStatus = "negotiating"
	RelationHired       RelationStatus = "hired"
	RelationCompleted   RelationStatus = "completed"
	RelationRejected    RelationStatus = "rejected"
)

func (r RelationStatus) Valid() bool {
	switch r {
	case RelationNegotiating, RelationHired, RelationCompleted, RelationRejected:
		return true
	}
	return false
}

// Creator is a catalog entry. Assigned creators are value snapshots of it.
type Creator struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Email          string         `json:"email" yaml:"email"`
	Avatar         string         `json:"avatar,omitempty" yaml:"avatar"`
	Specialty      string         `json:"specialty" yaml:"specialty"`
	Rating         float64        `json:"rating" yaml:"rating"`
	Location       string         `json:"location" yaml:"location"`
	Languages      []string       `json:"languages,omitempty" yaml:"languages"`
	RelationStatus RelationStatus `json:"relation_status" yaml:"relation_status"`
}

// Clone returns a copy that shares no memory with c.
func (c Creator) Clone() Creator {
	if c.Languages != nil {
		c.Languages = append([]string(nil), c.Languages...)
	}
	return c
}

// Project is a brand campaign creators get assigned to.
type Project struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	MinCreators      *int       `json:"min_creators,omitempty"`
	MaxCreators      *int       `json:"max_creators,omitempty"`
	Status           Status     `json:"status"`
	AssignedCreators []Creator  `json:"assigned_creators"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Clone returns a deep copy of p.
func (p Project) Clone() Project {
	if p.EndDate != nil {
		end := *p.EndDate
		p.EndDate = &end
	}
	if p.MinCreators != nil {
		n := *p.MinCreators
		p.MinCreators = &n
	}
	if p.MaxCreators != nil {
		n := *p.MaxCreators
		p.MaxCreators = &n
	}
	assigned := make([]Creator, len(p.AssignedCreators))
	for i, c := range p.AssignedCreators {
		assigned[i] = c.Clone()
	}
	p.AssignedCreators = assigned
	return p
}

// HasCreator reports whether creatorID is already assigned.
func (p Project) HasCreator(creatorID string) bool {
	for _, c := range p.AssignedCreators {
		if c.ID == creatorID {
			return true
		}
	}
	return false
}

// Staffing compares the assignment count with the optional bounds.
type Staffing string

const (
	StaffingUnder  Staffing = "under"
	StaffingWithin Staffing = "within"
	StaffingOver   Staffing = "over"
)

// Staffing is informational only; the store never blocks on it.
func (p Project) Staffing() Staffing {
	n := len(p.AssignedCreators)
	switch {
	case p.MinCreators != nil && n < *p.MinCreators:
		return StaffingUnder
	case p.MaxCreators != nil && n > *p.MaxCreators:
		return StaffingOver
	}
	return StaffingWithin
}

// ProjectInput is what a caller supplies to create a project; id,
// assignments and timestamps are assigned by the store.
type ProjectInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	MinCreators *int
	MaxCreators *int
	// Status defaults to StatusDraft when empty.
	Status Status
}

// ProjectPatch is a partial update: nil fields keep their current value.
// The Clear flags remove an optional field and win over a value set in
// the same patch.
type ProjectPatch struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	MinCreators *int
	MaxCreators *int
	Status      *Status

	ClearEndDate     bool
	ClearMinCreators bool
	ClearMaxCreators bool
}

// Apply returns a copy of p with the patch merged over it.
func (patch ProjectPatch) Apply(p Project) Project {
	p = p.Clone()
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		end := *patch.EndDate
		p.EndDate = &end
	}
	if patch.ClearEndDate {
		p.EndDate = nil
	}
	if patch.MinCreators != nil {
		n := *patch.MinCreators
		p.MinCreators = &n
	}
	if patch.ClearMinCreators {
		p.MinCreators = nil
	}
	if patch.MaxCreators != nil {
		n := *patch.MaxCreators
		p.MaxCreators = &n
	}
	if patch.ClearMaxCreators {
		p.MaxCreators = nil
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	return p
}

// Stats is the brand dashboard summary.
type Stats struct {
	TotalProjects    int `json:"total_projects"`
	AssignedCreators int `json:"assigned_creators"`
	ActiveProjects   int `json:"active_projects"`
}
