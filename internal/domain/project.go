package domain

import (
	"fmt"
	"strings"
	"time"
)

// UnrecordedProjectLabel is shown for time logged without a project id.
const UnrecordedProjectLabel = "Unrecorded Project"

type Project struct {
	ID        string
	Name      string
	Category  string
	CreatedAt time.Time
}

// Validate checks the fields required before a project is stored.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	return nil
}

// DisplayID returns the first 8 characters of the project id.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
