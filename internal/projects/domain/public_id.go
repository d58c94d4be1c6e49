package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const projectIDPrefix = "project"

// NewProjectID generates a random project id, e.g. "project-3f0c...".
func NewProjectID() string {
	return fmt.Sprintf("%s-%s", projectIDPrefix, uuid.NewString())
}
