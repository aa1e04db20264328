// Package store provides a SQLite-backed cache for parsed launch datasets.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/launchdash/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed dataset caching keyed by file path.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked state of one dataset file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
	RowCount  int
	Lines     int
	ParsedAt  time.Time
}

// Matches reports whether the tracked state still describes a file with the
// given mtime and size.
func (fi FileInfo) Matches(mtimeNs, sizeBytes int64) bool {
	return fi.MtimeNs == mtimeNs && fi.SizeBytes == sizeBytes
}

// Lookup returns the tracked state for path. ok is false when the file has
// never been cached.
func (c *Cache) Lookup(path string) (fi FileInfo, ok bool, err error) {
	var parsedAt string
	err = c.db.QueryRow(`SELECT mtime_ns, size_bytes, row_count, lines, parsed_at
		FROM file_tracker WHERE file_path = ?`, path).
		Scan(&fi.MtimeNs, &fi.SizeBytes, &fi.RowCount, &fi.Lines, &parsedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return FileInfo{}, false, nil
	}
	if err != nil {
		return FileInfo{}, false, err
	}
	fi.ParsedAt, _ = time.Parse(time.RFC3339, parsedAt)
	return fi, true, nil
}

// SaveRecords replaces the cached rows for path in a single transaction.
func (c *Cache) SaveRecords(path string, mtimeNs, sizeBytes int64, lines int, records []model.LaunchRecord) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker
		(file_path, mtime_ns, size_bytes, row_count, lines, parsed_at)
		VALUES (?, ?, ?, ?, ?, ?)`, path, mtimeNs, sizeBytes, len(records), lines, now)
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM launch_records WHERE file_path = ?", path); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO launch_records
		(file_path, row_idx, launch_site, payload_kg, class, booster_category)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		if _, err = stmt.Exec(path, i, r.Site, r.PayloadKg, r.Class, r.BoosterCategory); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadRecords reads the cached rows for path in their original file order.
func (c *Cache) LoadRecords(path string) ([]model.LaunchRecord, error) {
	rows, err := c.db.Query(`SELECT launch_site, payload_kg, class, booster_category
		FROM launch_records WHERE file_path = ? ORDER BY row_idx`, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.LaunchRecord
	for rows.Next() {
		var r model.LaunchRecord
		if err := rows.Scan(&r.Site, &r.PayloadKg, &r.Class, &r.BoosterCategory); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
