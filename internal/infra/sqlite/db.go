// Package sqlite provides SQLite-based persistent storage for ppoom.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Key-value store for daily session, character, and streak
		// state, held as JSON payloads keyed by well-known names.
		`CREATE TABLE IF NOT EXISTS state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Mission assignment ledger, one row per closed day. The
		// anti-repetition lookback reads the trailing rows.
		`CREATE TABLE IF NOT EXISTS mission_history (
			date          TEXT PRIMARY KEY,
			missions      TEXT NOT NULL,
			fatigue_pct   INTEGER NOT NULL,
			all_completed BOOLEAN DEFAULT 0
		)`,

		// Daily fatigue snapshots for pattern analysis, pruned to a
		// rolling 90-day window on write.
		`CREATE TABLE IF NOT EXISTS daily_history (
			date          TEXT PRIMARY KEY,
			fatigue_pct   INTEGER NOT NULL,
			sleep_hours   REAL DEFAULT 0,
			step_count    INTEGER DEFAULT 0,
			screen_hours  REAL DEFAULT 0,
			missions_done INTEGER DEFAULT 0
		)`,

		// Notification log
		`CREATE TABLE IF NOT EXISTS notifications (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			kind         TEXT NOT NULL,
			title        TEXT NOT NULL,
			body         TEXT NOT NULL,
			action_label TEXT NOT NULL DEFAULT '',
			created_at   INTEGER NOT NULL,
			read         BOOLEAN DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notif_created ON notifications(created_at)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── State Key-Value ────────────────────────────────────────────────────────

// SetState stores a state key-value pair.
func (d *DB) SetState(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetState retrieves a state value by key.
// Returns "" if key not found.
func (d *DB) GetState(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// DeleteStatePrefix removes every state key with the given prefix.
func (d *DB) DeleteStatePrefix(prefix string) error {
	_, err := d.db.Exec(
		`DELETE FROM state WHERE key LIKE ? ESCAPE '\'`,
		escapeLike(prefix)+"%",
	)
	return err
}

// escapeLike protects literal LIKE metacharacters in a prefix.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
