package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/sala/internal/domain/theme"
)

// migration is one schema version. Steps only create what is missing and
// never touch collections owned by other steps.
type migration struct {
	version int
	name    string
	apply   func(ctx context.Context, tx *sql.Tx, seed []theme.Theme) error
}

var migrations = []migration{
	{version: 1, name: "attendances", apply: createAttendances},
	{version: 2, name: "clients", apply: createClients},
	{version: 3, name: "themes", apply: createThemes},
}

func (db *DB) migrate(ctx context.Context, seed []theme.Theme) error {
	current, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := db.applyMigration(ctx, m, seed); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
	}
	return nil
}

func (db *DB) applyMigration(ctx context.Context, m migration, seed []theme.Theme) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := m.apply(ctx, tx, seed); err != nil {
		return err
	}
	// PRAGMA does not take bound parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
		return err
	}
	return tx.Commit()
}

func createAttendances(ctx context.Context, tx *sql.Tx, _ []theme.Theme) error {
	_, err := tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS attendances (
    id TEXT PRIMARY KEY,
    start_date TEXT NOT NULL DEFAULT '',
    start_time TEXT NOT NULL DEFAULT '',
    document TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL DEFAULT '',
    theme TEXT NOT NULL DEFAULT '',
    subtheme TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    email_guidance TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_attendances_start_date ON attendances(start_date);
CREATE INDEX IF NOT EXISTS idx_attendances_document ON attendances(document);
`)
	return err
}

func createClients(ctx context.Context, tx *sql.Tx, _ []theme.Theme) error {
	_, err := tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS clients (
    document TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    name TEXT NOT NULL,
    fantasy_name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    city TEXT NOT NULL DEFAULT '',
    uf TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

func createThemes(ctx context.Context, tx *sql.Tx, seed []theme.Theme) error {
	if _, err := tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS themes (
    id TEXT PRIMARY KEY,
    label TEXT NOT NULL,
    subthemes TEXT NOT NULL DEFAULT '[]',
    position INTEGER NOT NULL
);
`); err != nil {
		return err
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM themes").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, t := range seed {
		subthemes, err := encodeSubthemes(t.Subthemes)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO themes (id, label, subthemes, position) VALUES (?, ?, ?, ?)`,
			t.ID, t.Label, subthemes, i,
		); err != nil {
			return fmt.Errorf("seeding theme %q: %w", t.ID, err)
		}
	}
	return nil
}
