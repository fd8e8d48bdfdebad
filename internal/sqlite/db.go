package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/rpggio/sala/internal/domain/theme"
	"github.com/rpggio/sala/internal/repository"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
	ready atomic.Bool
}

// Open opens the database at path and checks that it is reachable. Any
// failure is reported as repository.ErrStorageUnavailable.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", repository.ErrStorageUnavailable, path, err)
	}

	// One connection keeps writes serialized and lets :memory: databases
	// survive across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: open %s: %w", repository.ErrStorageUnavailable, path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: configure %s: %w", repository.ErrStorageUnavailable, path, err)
	}

	return &DB{DB: db}, nil
}

// Init applies pending schema versions and marks the store ready. seed is
// written into the theme collection only when that collection is created
// empty, so calling Init again never duplicates it.
func (db *DB) Init(ctx context.Context, seed []theme.Theme) error {
	if err := db.migrate(ctx, seed); err != nil {
		return storageError("initializing store", err)
	}
	db.ready.Store(true)
	return nil
}

// Ready reports whether Init has completed.
func (db *DB) Ready() bool {
	return db.ready.Load()
}

// SchemaVersion returns the applied schema version.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, storageError("reading schema version", err)
	}
	return v, nil
}

func (db *DB) checkReady() error {
	if !db.ready.Load() {
		return repository.ErrStoreNotReady
	}
	return nil
}
