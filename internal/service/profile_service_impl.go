package service

import (
	"context"
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/repository"
	"github.com/google/uuid"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Create(ctx context.Context, p *domain.VolunteerProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC()
	return s.profiles.Create(ctx, p)
}

func (s *profileService) List(ctx context.Context, activeOnly bool) ([]*domain.VolunteerProfile, error) {
	return s.profiles.List(ctx, activeOnly)
}
