package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Haribaskar21/Profile-backend/internal/model"
)

type ExperienceRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Experience, error)
	Create(ctx context.Context, exp *model.Experience) (*model.Experience, error)
	Delete(ctx context.Context, ownerID, expID uuid.UUID) error
}

type postgresExperienceRepository struct {
	db *sqlx.DB
}

func NewPostgresExperienceRepository(db *sqlx.DB) ExperienceRepository {
	return &postgresExperienceRepository{db: db}
}

func (r *postgresExperienceRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Experience, error) {
	var entries []model.Experience
	query := `
		SELECT id, user_id, role, company, start_date, end_date, description
		FROM experiences
		WHERE user_id = $1
		ORDER BY start_date DESC
	`
	err := r.db.SelectContext(ctx, &entries, query, ownerID)

	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []model.Experience{}
	}

	return entries, nil
}

func (r *postgresExperienceRepository) Create(ctx context.Context, exp *model.Experience) (*model.Experience, error) {
	query := `
		INSERT INTO experiences (user_id, role, company, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	row := r.db.QueryRowxContext(ctx, query, exp.UserID, exp.Role, exp.Company, exp.StartDate, exp.EndDate, exp.Description)
	err := row.Scan(&exp.ID)

	if err != nil {
		return nil, err
	}

	return exp, nil
}

func (r *postgresExperienceRepository) Delete(ctx context.Context, ownerID, expID uuid.UUID) error {
	query := `DELETE FROM experiences WHERE id = $1 AND user_id = $2`
	_, err := r.db.ExecContext(ctx, query, expID, ownerID)
	return err
}
