package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Haribaskar21/Profile-backend/internal/model"
	"github.com/Haribaskar21/Profile-backend/internal/repository"
)

type ExperienceService interface {
	ListExperience(ctx context.Context, ownerID uuid.UUID) ([]model.Experience, error)
	CreateExperience(ctx context.Context, exp *model.Experience) (*model.Experience, error)
	DeleteExperience(ctx context.Context, ownerID, expID uuid.UUID) error
}

type experienceService struct {
	experienceRepo repository.ExperienceRepository
}

func NewExperienceService(experienceRepo repository.ExperienceRepository) ExperienceService {
	return &experienceService{experienceRepo: experienceRepo}
}

func (s *experienceService) ListExperience(ctx context.Context, ownerID uuid.UUID) ([]model.Experience, error) {
	return s.experienceRepo.ListByOwner(ctx, ownerID)
}

func (s *experienceService) CreateExperience(ctx context.Context, exp *model.Experience) (*model.Experience, error) {
	return s.experienceRepo.Create(ctx, exp)
}

func (s *experienceService) DeleteExperience(ctx context.Context, ownerID, expID uuid.UUID) error {
	return s.experienceRepo.Delete(ctx, ownerID, expID)
}
