package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProfileRepo interface {
	Create(ctx context.Context, p *domain.VolunteerProfile) error
	GetByID(ctx context.Context, id string) (*domain.VolunteerProfile, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.VolunteerProfile, error)
	Update(ctx context.Context, p *domain.VolunteerProfile) error
}

// TimeEntryRepo stores logged entries. Date bounds are inclusive calendar
// days; a zero time leaves that side of the range open.
type TimeEntryRepo interface {
	Create(ctx context.Context, e *domain.LoggedEntry) error
	GetByID(ctx context.Context, id string) (*domain.LoggedEntry, error)
	// ListByUsers returns entries logged by any of userIDs. An empty
	// userIDs matches every user.
	ListByUsers(ctx context.Context, userIDs []string, from, to time.Time) ([]*domain.LoggedEntry, error)
	// ListByProjectsExcludingUsers returns time other people logged on the
	// given projects.
	ListByProjectsExcludingUsers(ctx context.Context, projectIDs, userIDs []string, from, to time.Time) ([]*domain.LoggedEntry, error)
	ListByUserWeek(ctx context.Context, userID string, weekStart time.Time) ([]*domain.LoggedEntry, error)
	Update(ctx context.Context, e *domain.LoggedEntry) error
	Delete(ctx context.Context, id string) error
}
