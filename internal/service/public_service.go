package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Haribaskar21/Profile-backend/internal/model"
	"github.com/Haribaskar21/Profile-backend/internal/repository"
)

// PublicProfile is the unauthenticated aggregate view of one user's page.
// Profile is null when the user never filled theirs in.
type PublicProfile struct {
	Profile    *model.Profile     `json:"profile"`
	Skills     []model.Skill      `json:"skills"`
	Experience []model.Experience `json:"experience"`
}

type PublicProfileService interface {
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (*PublicProfile, error)
}

type publicProfileService struct {
	profileRepo    repository.ProfileRepository
	skillRepo      repository.SkillRepository
	experienceRepo repository.ExperienceRepository
}

func NewPublicProfileService(
	profileRepo repository.ProfileRepository,
	skillRepo repository.SkillRepository,
	experienceRepo repository.ExperienceRepository,
) PublicProfileService {
	return &publicProfileService{
		profileRepo:    profileRepo,
		skillRepo:      skillRepo,
		experienceRepo: experienceRepo,
	}
}

func (s *publicProfileService) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*PublicProfile, error) {
	profile, err := s.profileRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.skillRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	experience, err := s.experienceRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &PublicProfile{
		Profile:    profile,
		Skills:     skills,
		Experience: experience,
	}, nil
}
