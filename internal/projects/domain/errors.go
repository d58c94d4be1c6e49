package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrCreatorNotFound    = errors.New("creator not found")
	ErrInvalidStatus      = errors.New("invalid project status")
	ErrDuplicateCreatorID = errors.New("duplicate creator id in catalog")
)

// ValidationError rejects an update whose merged result breaks a form rule.
type ValidationError struct {
	Errors ProjectFormErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project update: %+v", e.Errors)
}
