package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Haribaskar21/Profile-backend/internal/model"
	"github.com/Haribaskar21/Profile-backend/internal/repository"
)

type ProfileService interface {
	GetOwnProfile(ctx context.Context, ownerID uuid.UUID) (*model.Profile, error)
	UpdateOwnProfile(ctx context.Context, ownerID uuid.UUID, update repository.ProfileUpdate) (*model.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetOwnProfile(ctx context.Context, ownerID uuid.UUID) (*model.Profile, error) {
	return s.profileRepo.GetOrCreate(ctx, ownerID)
}

func (s *profileService) UpdateOwnProfile(ctx context.Context, ownerID uuid.UUID, update repository.ProfileUpdate) (*model.Profile, error) {
	return s.profileRepo.Upsert(ctx, ownerID, update)
}
