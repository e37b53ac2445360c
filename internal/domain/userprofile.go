package domain

import (
	"fmt"
	"strings"
	"time"
)

// VolunteerProfile is a team member whose time entries feed the reports.
type VolunteerProfile struct {
	ID                   string
	FirstName            string
	LastName             string
	Email                string
	WeeklyCommittedHours float64
	Active               bool
	CreatedAt            time.Time
}

// FullName joins first and last name, skipping empty parts.
func (p *VolunteerProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p *VolunteerProfile) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if p.WeeklyCommittedHours < 0 {
		return fmt.Errorf("weekly committed hours must be >= 0, got %v", p.WeeklyCommittedHours)
	}
	return nil
}

// WeeklyHours compares the hours a volunteer logged in a week with their commitment.
type WeeklyHours struct {
	Profile   VolunteerProfile
	Logged    float64
	Committed float64
}

func (w WeeklyHours) MetCommitment() bool {
	return w.Logged >= w.Committed
}
