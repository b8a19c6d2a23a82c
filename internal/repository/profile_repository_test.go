package repository_test

import (
	"context"
	"regexp"
	"testing"

	repo "github.com/Haribaskar21/Profile-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPostgresProfileRepository_GetOrCreate(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresProfileRepository(sqlxDB)

	id := uuid.New()
	ownerID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "bio", "location"}).
		AddRow(id, ownerID, "", "", "")
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO profiles (user_id, title, bio, location)
		VALUES ($1, '', '', '')
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, title, bio, location
	`)).WithArgs(ownerID).WillReturnRows(rows)

	p, err := r.GetOrCreate(context.Background(), ownerID)
	require.NoError(t, err)
	require.Equal(t, ownerID, p.UserID)
	require.Empty(t, p.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProfileRepository_Upsert_PartialFields(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresProfileRepository(sqlxDB)

	ownerID := uuid.New()
	title := "Backend Engineer"
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "bio", "location"}).
		AddRow(uuid.New(), ownerID, title, "old bio", "Chennai")
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO profiles (user_id, title, bio, location)
		VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''))
		ON CONFLICT (user_id) DO UPDATE SET
			title = COALESCE($2, profiles.title),
			bio = COALESCE($3, profiles.bio),
			location = COALESCE($4, profiles.location)
		RETURNING id, user_id, title, bio, location
	`)).WithArgs(ownerID, title, nil, nil).WillReturnRows(rows)

	p, err := r.Upsert(context.Background(), ownerID, repo.ProfileUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, p.Title)
	require.Equal(t, "old bio", p.Bio)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProfileRepository_FindByOwner_Missing(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresProfileRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, title, bio, location FROM profiles WHERE user_id = $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "bio", "location"}))

	p, err := r.FindByOwner(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, p)
	require.NoError(t, mock.ExpectationsWereMet())
}
