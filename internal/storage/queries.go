package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pable/go-screp-view/internal/model"
)

// Entry is one cache record to insert.
type Entry struct {
	Hash         string
	File         model.RepFile
	MapName      string
	Matchup      string
	MatchDate    string
	ScrepVersion string
	RawJSON      []byte
}

// Put stores (or replaces) the raw screp output for a replay.
func (db *DB) Put(e Entry) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO reps
			(hash, filename, path, size, map_name, matchup, match_date, screp_version, raw_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Hash, e.File.Filename, e.File.Path, e.File.Size,
		e.MapName, e.Matchup, e.MatchDate, e.ScrepVersion, string(e.RawJSON),
	)
	if err != nil {
		return fmt.Errorf("insert rep: %w", err)
	}
	return nil
}

// Get returns the cached raw JSON for a replay hash, or ok=false on a miss.
// An entry produced by a different screp version counts as a miss.
func (db *DB) Get(hash, screpVersion string) (rawJSON []byte, ok bool, err error) {
	var raw string
	err = db.conn.QueryRow(
		`SELECT raw_json FROM reps WHERE hash = ? AND screp_version = ?`,
		hash, screpVersion,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query rep: %w", err)
	}
	return []byte(raw), true, nil
}

// GetByPath returns the cached raw JSON for a replay file path, matched by
// path and size so a changed file misses.
func (db *DB) GetByPath(path string, size int64, screpVersion string) (rawJSON []byte, ok bool, err error) {
	var raw string
	err = db.conn.QueryRow(
		`SELECT raw_json FROM reps WHERE path = ? AND size = ? AND screp_version = ?`,
		path, size, screpVersion,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query rep by path: %w", err)
	}
	return []byte(raw), true, nil
}

// List returns all cached replays, most recently added first.
func (db *DB) List() ([]model.CachedRep, error) {
	rows, err := db.conn.Query(`
		SELECT hash, filename, path, size, map_name, matchup, match_date, screp_version, added_at
		FROM reps ORDER BY added_at DESC, hash`)
	if err != nil {
		return nil, fmt.Errorf("list reps: %w", err)
	}
	defer rows.Close()

	var reps []model.CachedRep
	for rows.Next() {
		var r model.CachedRep
		if err := rows.Scan(&r.Hash, &r.Filename, &r.Path, &r.Size,
			&r.MapName, &r.Matchup, &r.MatchDate, &r.ScrepVersion, &r.AddedAt); err != nil {
			return nil, fmt.Errorf("scan rep: %w", err)
		}
		reps = append(reps, r)
	}
	return reps, rows.Err()
}

// DropAll removes every cached replay.
func (db *DB) DropAll() error {
	if _, err := db.conn.Exec(`DELETE FROM reps`); err != nil {
		return fmt.Errorf("drop reps: %w", err)
	}
	return nil
}
