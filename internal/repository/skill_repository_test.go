package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/Haribaskar21/Profile-backend/internal/model"
	repo "github.com/Haribaskar21/Profile-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPostgresSkillRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSkillRepository(sqlxDB)

	id := uuid.New()
	ownerID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO skills (user_id, name, level)
		VALUES ($1, $2, $3)
		RETURNING id, endorsements
	`)).WithArgs(ownerID, "Go", "advanced").
		WillReturnRows(sqlmock.NewRows([]string{"id", "endorsements"}).AddRow(id, 0))

	skill := &model.Skill{UserID: ownerID, Name: "Go", Level: "advanced"}
	created, err := r.Create(context.Background(), skill)
	require.NoError(t, err)
	require.Equal(t, id, created.ID)
	require.Zero(t, created.Endorsements)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSkillRepository_ListByOwner_Empty(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSkillRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, name, level, endorsements FROM skills WHERE user_id = $1 ORDER BY name`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "level", "endorsements"}))

	skills, err := r.ListByOwner(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, skills)
	require.Empty(t, skills)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSkillRepository_Endorse_Increments(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSkillRepository(sqlxDB)

	skillID := uuid.New()
	ownerID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "level", "endorsements"}).
		AddRow(skillID, ownerID, "Go", "advanced", 4)
	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE skills SET endorsements = endorsements + 1
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, level, endorsements
	`)).WithArgs(skillID, ownerID).WillReturnRows(rows)

	skill, err := r.Endorse(context.Background(), ownerID, skillID)
	require.NoError(t, err)
	require.Equal(t, 4, skill.Endorsements)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSkillRepository_Endorse_ForeignSkill(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSkillRepository(sqlxDB)

	// a skill owned by someone else matches zero rows
	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE skills SET endorsements = endorsements + 1
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, level, endorsements
	`)).WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).WillReturnError(sql.ErrNoRows)

	_, err := r.Endorse(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSkillRepository_Delete_NoOpWhenNotOwned(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSkillRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM skills WHERE id = $1 AND user_id = $2`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.Delete(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
