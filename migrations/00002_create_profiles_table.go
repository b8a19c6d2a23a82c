package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateProfilesTable, downCreateProfilesTable)
}

func upCreateProfilesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE profiles (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  user_id UUID UNIQUE NOT NULL REFERENCES users(id),
	  title TEXT NOT NULL DEFAULT '',
	  bio TEXT NOT NULL DEFAULT '',
	  location TEXT NOT NULL DEFAULT ''
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateProfilesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS profiles;`
	_, err := tx.ExecContext(ctx, query)
	return err
}
