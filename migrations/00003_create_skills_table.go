package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSkillsTable, downCreateSkillsTable)
}

func upCreateSkillsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE skills (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  user_id UUID NOT NULL REFERENCES users(id),
	  name TEXT NOT NULL,
	  level TEXT NOT NULL DEFAULT '',
	  endorsements INTEGER NOT NULL DEFAULT 0 CHECK (endorsements >= 0)
	);
	CREATE INDEX idx_skills_user_id ON skills(user_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateSkillsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS skills;`
	_, err := tx.ExecContext(ctx, query)
	return err
}
