package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Haribaskar21/Profile-backend/internal/events"
	"github.com/Haribaskar21/Profile-backend/internal/model"
	"github.com/Haribaskar21/Profile-backend/internal/repository"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillService interface {
	ListSkills(ctx context.Context, ownerID uuid.UUID) ([]model.Skill, error)
	CreateSkill(ctx context.Context, ownerID uuid.UUID, name, level string) (*model.Skill, error)
	DeleteSkill(ctx context.Context, ownerID, skillID uuid.UUID) error
	EndorseSkill(ctx context.Context, ownerID, skillID uuid.UUID) (*model.Skill, error)
}

type skillService struct {
	skillRepo repository.SkillRepository
	publisher events.EventPublisher
}

func NewSkillService(skillRepo repository.SkillRepository, publisher events.EventPublisher) SkillService {
	return &skillService{
		skillRepo: skillRepo,
		publisher: publisher,
	}
}

func (s *skillService) ListSkills(ctx context.Context, ownerID uuid.UUID) ([]model.Skill, error) {
	return s.skillRepo.ListByOwner(ctx, ownerID)
}

func (s *skillService) CreateSkill(ctx context.Context, ownerID uuid.UUID, name, level string) (*model.Skill, error) {
	skill := &model.Skill{
		UserID: ownerID,
		Name:   name,
		Level:  level,
	}

	return s.skillRepo.Create(ctx, skill)
}

func (s *skillService) DeleteSkill(ctx context.Context, ownerID, skillID uuid.UUID) error {
	return s.skillRepo.Delete(ctx, ownerID, skillID)
}

func (s *skillService) EndorseSkill(ctx context.Context, ownerID, skillID uuid.UUID) (*model.Skill, error) {
	skill, err := s.skillRepo.Endorse(ctx, ownerID, skillID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSkillNotFound
		}

		return nil, err
	}

	if err := s.publisher.PublishSkillEndorsed(skill.ID, ownerID, skill.Endorsements); err != nil {
		slog.WarnContext(ctx, "Failed to publish skill.endorsed event", slog.String("error", err.Error()))
	}

	return skill, nil
}
