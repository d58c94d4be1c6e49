package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of project dates in forms.
const DateLayout = "2006-01-02"

// Message keys rendered by the i18n label switch.
const (
	KeyNameRequired        = "project.name.required"
	KeyDescriptionRequired = "project.description.required"
	KeyStartDateRequired   = "project.start_date.required"
	KeyDateInvalid         = "project.date.invalid"
	KeyEndBeforeStart      = "project.end_date.before_start"
	KeyCreatorsInvalid     = "project.creators.invalid"
	KeyMinExceedsMax       = "project.creators.min_exceeds_max"
	KeyStatusInvalid       = "project.status.invalid"
)

// ProjectForm is the create-project form as typed by the user.
type ProjectForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	MinCreators string `json:"min_creators"`
	MaxCreators string `json:"max_creators"`
	Status      string `json:"status"`
}

// ProjectFormErrors holds one message key per form field; empty means valid.
type ProjectFormErrors struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	MinCreators string `json:"min_creators,omitempty"`
	MaxCreators string `json:"max_creators,omitempty"`
	Status      string `json:"status,omitempty"`
}

func (e ProjectFormErrors) Empty() bool {
	return e == ProjectFormErrors{}
}

// Map applies fn to every non-empty field, e.g. to translate message keys.
func (e ProjectFormErrors) Map(fn func(string) string) ProjectFormErrors {
	apply := func(s string) string {
		if s == "" {
			return ""
		}
		return fn(s)
	}
	return ProjectFormErrors{
		Name:        apply(e.Name),
		Description: apply(e.Description),
		StartDate:   apply(e.StartDate),
		EndDate:     apply(e.EndDate),
		MinCreators: apply(e.MinCreators),
		MaxCreators: apply(e.MaxCreators),
		Status:      apply(e.Status),
	}
}

// Validate checks the form and converts it into a ProjectInput. The input
// is only meaningful when the returned errors are Empty.
func (f ProjectForm) Validate() (ProjectInput, ProjectFormErrors) {
	var (
		in   ProjectInput
		errs ProjectFormErrors
	)

	in.Name = strings.TrimSpace(f.Name)
	if in.Name == "" {
		errs.Name = KeyNameRequired
	}

	in.Description = strings.TrimSpace(f.Description)
	if in.Description == "" {
		errs.Description = KeyDescriptionRequired
	}

	if strings.TrimSpace(f.StartDate) == "" {
		errs.StartDate = KeyStartDateRequired
	} else if d, err := parseDate(f.StartDate); err != nil {
		errs.StartDate = KeyDateInvalid
	} else {
		in.StartDate = d
	}

	if strings.TrimSpace(f.EndDate) != "" {
		if d, err := parseDate(f.EndDate); err != nil {
			errs.EndDate = KeyDateInvalid
		} else {
			in.EndDate = &d
		}
	}
	if in.EndDate != nil && errs.StartDate == "" && in.EndDate.Before(in.StartDate) {
		errs.EndDate = KeyEndBeforeStart
	}

	if n, ok := parseCount(f.MinCreators); !ok {
		errs.MinCreators = KeyCreatorsInvalid
	} else {
		in.MinCreators = n
	}
	if n, ok := parseCount(f.MaxCreators); !ok {
		errs.MaxCreators = KeyCreatorsInvalid
	} else {
		in.MaxCreators = n
	}
	if in.MinCreators != nil && in.MaxCreators != nil && *in.MinCreators > *in.MaxCreators {
		errs.MinCreators = KeyMinExceedsMax
	}

	if s := strings.TrimSpace(f.Status); s != "" {
		in.Status = Status(s)
		if !in.Status.Valid() {
			errs.Status = KeyStatusInvalid
		}
	}

	return in, errs
}

// ProjectPatchForm is a partial edit; nil fields are left untouched. An
// empty end_date, min_creators or max_creators clears that field.
type ProjectPatchForm struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	MinCreators *string `json:"min_creators"`
	MaxCreators *string `json:"max_creators"`
	Status      *string `json:"status"`
}

// Validate checks only the supplied fields. Dates and bounds that depend on
// the stored project are checked later by CheckAgainst.
func (f ProjectPatchForm) Validate() (ProjectPatch, ProjectFormErrors) {
	var (
		patch ProjectPatch
		errs  ProjectFormErrors
	)

	if f.Name != nil {
		name := strings.TrimSpace(*f.Name)
		if name == "" {
			errs.Name = KeyNameRequired
		}
		patch.Name = &name
	}

	if f.Description != nil {
		desc := strings.TrimSpace(*f.Description)
		if desc == "" {
			errs.Description = KeyDescriptionRequired
		}
		patch.Description = &desc
	}

	if f.StartDate != nil {
		if d, err := parseDate(*f.StartDate); err != nil {
			errs.StartDate = KeyDateInvalid
		} else {
			patch.StartDate = &d
		}
	}

	if f.EndDate != nil && strings.TrimSpace(*f.EndDate) == "" {
		patch.ClearEndDate = true
	} else if f.EndDate != nil {
		if d, err := parseDate(*f.EndDate); err != nil {
			errs.EndDate = KeyDateInvalid
		} else {
			patch.EndDate = &d
		}
	}
	if patch.StartDate != nil && patch.EndDate != nil && patch.EndDate.Before(*patch.StartDate) {
		errs.EndDate = KeyEndBeforeStart
	}

	if f.MinCreators != nil {
		if n, ok := parseCount(*f.MinCreators); !ok {
			errs.MinCreators = KeyCreatorsInvalid
		} else if n == nil {
			patch.ClearMinCreators = true
		} else {
			patch.MinCreators = n
		}
	}
	if f.MaxCreators != nil {
		if n, ok := parseCount(*f.MaxCreators); !ok {
			errs.MaxCreators = KeyCreatorsInvalid
		} else if n == nil {
			patch.ClearMaxCreators = true
		} else {
			patch.MaxCreators = n
		}
	}
	if patch.MinCreators != nil && patch.MaxCreators != nil && *patch.MinCreators > *patch.MaxCreators {
		errs.MinCreators = KeyMinExceedsMax
	}

	if f.Status != nil {
		s := Status(strings.TrimSpace(*f.Status))
		if !s.Valid() {
			errs.Status = KeyStatusInvalid
		}
		patch.Status = &s
	}

	return patch, errs
}

// CheckAgainst merges the patch over current and re-runs the rules that
// span two fields, so a lone min_creators or end_date cannot break them.
func (patch ProjectPatch) CheckAgainst(current Project) ProjectFormErrors {
	var errs ProjectFormErrors
	merged := patch.Apply(current)
	if merged.EndDate != nil && merged.EndDate.Before(merged.StartDate) {
		errs.EndDate = KeyEndBeforeStart
	}
	if merged.MinCreators != nil && merged.MaxCreators != nil && *merged.MinCreators > *merged.MaxCreators {
		errs.MinCreators = KeyMinExceedsMax
	}
	return errs
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// parseCount accepts an empty string (no bound) or a non-negative integer.
func parseCount(s string) (*int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, false
	}
	return &n, true
}
