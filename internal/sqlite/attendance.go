package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/repository"
)

// AttendanceRepository implements attendance.Repository for SQLite
type AttendanceRepository struct {
	db *DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = `id, start_date, start_time, document, name, theme, subtheme, description, email_guidance`

// Upsert inserts the record or overwrites every column of the existing one.
func (r *AttendanceRepository) Upsert(ctx context.Context, rec *attendance.Record) error {
	if err := r.db.checkReady(); err != nil {
		return err
	}

	query := `
		INSERT INTO attendances (` + attendanceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			start_date = excluded.start_date,
			start_time = excluded.start_time,
			document = excluded.document,
			name = excluded.name,
			theme = excluded.theme,
			subtheme = excluded.subtheme,
			description = excluded.description,
			email_guidance = excluded.email_guidance
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.StartDate,
		rec.StartTime,
		rec.Document,
		rec.Name,
		rec.Theme,
		rec.Subtheme,
		rec.Description,
		rec.EmailGuidance,
	)
	if err != nil {
		return storageError("failed to upsert attendance", err)
	}
	return nil
}

// Get retrieves an attendance by ID
func (r *AttendanceRepository) Get(ctx context.Context, id string) (*attendance.Record, error) {
	if err := r.db.checkReady(); err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE id = ?`, id)
	rec, err := scanAttendance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, storageError("failed to get attendance", err)
	}
	return rec, nil
}

// List returns every attendance in insertion order.
func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	if err := r.db.checkReady(); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+attendanceColumns+` FROM attendances ORDER BY rowid`)
	if err != nil {
		return nil, storageError("failed to list attendances", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, storageError("failed to scan attendance", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("failed to list attendances", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAttendance(s scanner) (*attendance.Record, error) {
	var rec attendance.Record
	err := s.Scan(
		&rec.ID,
		&rec.StartDate,
		&rec.StartTime,
		&rec.Document,
		&rec.Name,
		&rec.Theme,
		&rec.Subtheme,
		&rec.Description,
		&rec.EmailGuidance,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
