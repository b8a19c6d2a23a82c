package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateExperiencesTable, downCreateExperiencesTable)
}

func upCreateExperiencesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE experiences (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  user_id UUID NOT NULL REFERENCES users(id),
	  role TEXT NOT NULL,
	  company TEXT NOT NULL,
	  start_date TEXT NOT NULL DEFAULT '',
	  end_date TEXT NOT NULL DEFAULT '',
	  description TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX idx_experiences_user_id ON experiences(user_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateExperiencesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS experiences;`
	_, err := tx.ExecContext(ctx, query)
	return err
}
