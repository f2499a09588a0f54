package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

// SQLitePersister appends every snapshot to a table, keeping the full save
// history; Load returns the newest row.
type SQLitePersister struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLitePersister opens (creating if needed) the database at path.
func OpenSQLitePersister(ctx context.Context, path string) (*SQLitePersister, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS customization_settings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			color_theme TEXT NOT NULL,
			settings TEXT NOT NULL,
			saved_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("prepare settings database: %w", err)
		}
	}
	return &SQLitePersister{db: db, now: time.Now}, nil
}

// Name implements ports.Persister.
func (s *SQLitePersister) Name() string { return "sqlite" }

// Load implements ports.Persister.
func (s *SQLitePersister) Load(ctx context.Context) (ports.Snapshot, error) {
	var snapshot ports.Snapshot
	err := s.db.QueryRowContext(ctx,
		`SELECT color_theme, settings FROM customization_settings ORDER BY id DESC LIMIT 1`,
	).Scan(&snapshot.ColorTheme, &snapshot.Settings)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.Snapshot{}, nil
	}
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("load settings: %w", err)
	}
	return snapshot, nil
}

// Save implements ports.Persister.
func (s *SQLitePersister) Save(ctx context.Context, snapshot ports.Snapshot) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO customization_settings (color_theme, settings, saved_at_unixms) VALUES (?, ?, ?)`,
		snapshot.ColorTheme, snapshot.Settings, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// Count returns the number of stored snapshots.
func (s *SQLitePersister) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customization_settings`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Close releases the database handle.
func (s *SQLitePersister) Close() error {
	return s.db.Close()
}
