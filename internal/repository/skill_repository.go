package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Haribaskar21/Profile-backend/internal/model"
)

type SkillRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) (*model.Skill, error)
	Delete(ctx context.Context, ownerID, skillID uuid.UUID) error
	Endorse(ctx context.Context, ownerID, skillID uuid.UUID) (*model.Skill, error)
}

type postgresSkillRepository struct {
	db *sqlx.DB
}

func NewPostgresSkillRepository(db *sqlx.DB) SkillRepository {
	return &postgresSkillRepository{db: db}
}

func (r *postgresSkillRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Skill, error) {
	var skills []model.Skill
	query := `SELECT id, user_id, name, level, endorsements FROM skills WHERE user_id = $1 ORDER BY name`
	err := r.db.SelectContext(ctx, &skills, query, ownerID)

	if err != nil {
		return nil, err
	}

	if skills == nil {
		skills = []model.Skill{}
	}

	return skills, nil
}

func (r *postgresSkillRepository) Create(ctx context.Context, skill *model.Skill) (*model.Skill, error) {
	query := `
		INSERT INTO skills (user_id, name, level)
		VALUES ($1, $2, $3)
		RETURNING id, endorsements
	`

	row := r.db.QueryRowxContext(ctx, query, skill.UserID, skill.Name, skill.Level)
	err := row.Scan(&skill.ID, &skill.Endorsements)

	if err != nil {
		return nil, err
	}

	return skill, nil
}

// Delete filters by id and owner in one statement; deleting a foreign or
// unknown skill is a silent no-op.
func (r *postgresSkillRepository) Delete(ctx context.Context, ownerID, skillID uuid.UUID) error {
	query := `DELETE FROM skills WHERE id = $1 AND user_id = $2`
	_, err := r.db.ExecContext(ctx, query, skillID, ownerID)
	return err
}

// Endorse bumps the endorsement counter in a single UPDATE so concurrent
// endorsements never lose increments. sql.ErrNoRows means the skill does
// not exist or belongs to someone else.
func (r *postgresSkillRepository) Endorse(ctx context.Context, ownerID, skillID uuid.UUID) (*model.Skill, error) {
	var skill model.Skill
	query := `
		UPDATE skills SET endorsements = endorsements + 1
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, level, endorsements
	`
	err := r.db.GetContext(ctx, &skill, query, skillID, ownerID)

	if err != nil {
		return nil, err
	}

	return &skill, nil
}
