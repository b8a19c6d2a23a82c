package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/Haribaskar21/Profile-backend/internal/model"
	repo "github.com/Haribaskar21/Profile-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPostgresExperienceRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresExperienceRepository(sqlxDB)

	id := uuid.New()
	ownerID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO experiences (user_id, role, company, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`)).WithArgs(ownerID, "Engineer", "Acme", "2022-01", "2024-06", "Built things").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	exp := &model.Experience{
		UserID:      ownerID,
		Role:        "Engineer",
		Company:     "Acme",
		StartDate:   "2022-01",
		EndDate:     "2024-06",
		Description: "Built things",
	}
	created, err := r.Create(context.Background(), exp)
	require.NoError(t, err)
	require.Equal(t, id, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresExperienceRepository_ListByOwner_Empty(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresExperienceRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, user_id, role, company, start_date, end_date, description
		FROM experiences
		WHERE user_id = $1
		ORDER BY start_date DESC
	`)).WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "role", "company", "start_date", "end_date", "description"}))

	entries, err := r.ListByOwner(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresExperienceRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresExperienceRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM experiences WHERE id = $1 AND user_id = $2`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.Delete(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
