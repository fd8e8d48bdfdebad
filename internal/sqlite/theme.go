package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rpggio/sala/internal/domain/theme"
	"github.com/rpggio/sala/internal/repository"
)

// ThemeRepository implements theme.Repository for SQLite
type ThemeRepository struct {
	db *DB
}

// NewThemeRepository creates a new ThemeRepository
func NewThemeRepository(db *DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// Upsert inserts the theme at the end of the list or overwrites the label
// and subthemes of the existing one, keeping its position.
func (r *ThemeRepository) Upsert(ctx context.Context, t *theme.Theme) error {
	if err := r.db.checkReady(); err != nil {
		return err
	}

	subthemes, err := encodeSubthemes(t.Subthemes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO themes (id, label, subthemes, position)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM themes))
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			subthemes = excluded.subthemes
	`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.Label, subthemes); err != nil {
		return storageError("failed to upsert theme", err)
	}
	return nil
}

// Get retrieves a theme by ID
func (r *ThemeRepository) Get(ctx context.Context, id string) (*theme.Theme, error) {
	if err := r.db.checkReady(); err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT id, label, subthemes FROM themes WHERE id = ?`, id)
	t, err := scanTheme(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, storageError("failed to get theme", err)
	}
	return &t, nil
}

// List returns every theme in position order.
func (r *ThemeRepository) List(ctx context.Context) ([]theme.Theme, error) {
	if err := r.db.checkReady(); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, label, subthemes FROM themes ORDER BY position, id`)
	if err != nil {
		return nil, storageError("failed to list themes", err)
	}
	defer rows.Close()

	themes := []theme.Theme{}
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, storageError("failed to scan theme", err)
		}
		themes = append(themes, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("failed to list themes", err)
	}
	return themes, nil
}

// Delete removes a theme. Deleting a missing id is a no-op.
func (r *ThemeRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.checkReady(); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM themes WHERE id = ?`, id); err != nil {
		return storageError("failed to delete theme", err)
	}
	return nil
}

func scanTheme(s scanner) (theme.Theme, error) {
	var (
		t   theme.Theme
		raw string
	)
	if err := s.Scan(&t.ID, &t.Label, &raw); err != nil {
		return theme.Theme{}, err
	}
	if err := json.Unmarshal([]byte(raw), &t.Subthemes); err != nil {
		return theme.Theme{}, fmt.Errorf("decoding subthemes of %q: %w", t.ID, err)
	}
	if t.Subthemes == nil {
		t.Subthemes = []string{}
	}
	return t, nil
}

func encodeSubthemes(subthemes []string) (string, error) {
	if subthemes == nil {
		subthemes = []string{}
	}
	b, err := json.Marshal(subthemes)
	if err != nil {
		return "", fmt.Errorf("encoding subthemes: %w", err)
	}
	return string(b), nil
}
