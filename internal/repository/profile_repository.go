package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Haribaskar21/Profile-backend/internal/model"
)

// ProfileUpdate carries the allow-listed fields a caller may change.
// Nil pointers leave the stored value untouched.
type ProfileUpdate struct {
	Title    *string
	Bio      *string
	Location *string
}

type ProfileRepository interface {
	GetOrCreate(ctx context.Context, ownerID uuid.UUID) (*model.Profile, error)
	Upsert(ctx context.Context, ownerID uuid.UUID, update ProfileUpdate) (*model.Profile, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Profile, error)
}

type postgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) ProfileRepository {
	return &postgresProfileRepository{db: db}
}

// GetOrCreate returns the owner's profile, inserting a blank one if none
// exists yet. The insert and the read are a single statement so two
// concurrent first reads cannot create duplicate rows.
func (r *postgresProfileRepository) GetOrCreate(ctx context.Context, ownerID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	query := `
		INSERT INTO profiles (user_id, title, bio, location)
		VALUES ($1, '', '', '')
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, title, bio, location
	`
	err := r.db.GetContext(ctx, &profile, query, ownerID)

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *postgresProfileRepository) Upsert(ctx context.Context, ownerID uuid.UUID, update ProfileUpdate) (*model.Profile, error) {
	var profile model.Profile
	query := `
		INSERT INTO profiles (user_id, title, bio, location)
		VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''))
		ON CONFLICT (user_id) DO UPDATE SET
			title = COALESCE($2, profiles.title),
			bio = COALESCE($3, profiles.bio),
			location = COALESCE($4, profiles.location)
		RETURNING id, user_id, title, bio, location
	`
	err := r.db.GetContext(ctx, &profile, query, ownerID, update.Title, update.Bio, update.Location)

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// FindByOwner returns nil without an error when no profile exists. The
// public aggregate endpoint renders that as a null profile.
func (r *postgresProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	query := `SELECT id, user_id, title, bio, location FROM profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, ownerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &profile, nil
}
