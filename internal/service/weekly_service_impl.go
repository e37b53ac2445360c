package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/repository"
)

type weeklyService struct {
	profiles repository.ProfileRepo
	entries  repository.TimeEntryRepo
}

func NewWeeklyService(profiles repository.ProfileRepo, entries repository.TimeEntryRepo) WeeklyService {
	return &weeklyService{profiles: profiles, entries: entries}
}

// Summary compares each active volunteer's logged hours for the seven days
// starting at weekStart with their weekly commitment.
func (s *weeklyService) Summary(ctx context.Context, weekStart time.Time) ([]domain.WeeklyHours, error) {
	profiles, err := s.profiles.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("loading volunteer profiles: %w", err)
	}

	out := make([]domain.WeeklyHours, 0, len(profiles))
	for _, p := range profiles {
		entries, err := s.entries.ListByUserWeek(ctx, p.ID, weekStart)
		if err != nil {
			return nil, fmt.Errorf("loading week for %s: %w", p.FullName(), err)
		}
		minutes := 0
		for _, e := range entries {
			minutes += e.Hours*60 + e.Minutes
		}
		out = append(out, domain.WeeklyHours{
			Profile:   *p,
			Logged:    float64(minutes) / 60,
			Committed: p.WeeklyCommittedHours,
		})
	}
	return out, nil
}

// WeekStart returns the Monday on or before t, at midnight UTC.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
