// Package store handles SQLite persistence of scan history.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/sanjiv13/sectorplot/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for scan history. Parsed observations are never
// persisted; only per-scan metadata is.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id INTEGER PRIMARY KEY,
			path TEXT NOT NULL,
			scanned_at TEXT NOT NULL,
			markers INTEGER NOT NULL,
			custom_var TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scans_scanned_at ON scans(scanned_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertScan records a completed file scan.
func (s *Store) InsertScan(ctx context.Context, rec model.ScanRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO scans (path, scanned_at, markers, custom_var) VALUES (?, ?, ?, ?)`,
		rec.Path,
		rec.ScannedAt.Format(time.RFC3339Nano),
		rec.Markers,
		rec.CustomVar,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListScans returns the most recent scans, newest first. A non-positive last
// returns everything.
func (s *Store) ListScans(ctx context.Context, last int) ([]model.ScanRecord, error) {
	limit := -1
	if last > 0 {
		limit = last
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, scanned_at, markers, custom_var
		 FROM scans
		 ORDER BY scanned_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.ScanRecord
	for rows.Next() {
		var rec model.ScanRecord
		var scannedAt string
		if err := rows.Scan(&rec.ID, &rec.Path, &scannedAt, &rec.Markers, &rec.CustomVar); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, scannedAt)
		if err != nil {
			return nil, err
		}
		rec.ScannedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
