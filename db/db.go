// Package db keeps a local history of drawn frames in SQLite. The
// history exists purely for diagnostics: correlating panel ghosting or
// missed redraws with what the pipeline actually drew and how long it
// took.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// Seed creates the frame history schema if it does not exist yet.
func Seed(conn *sql.DB) error {
	_, err := conn.Exec(`CREATE TABLE IF NOT EXISTS frames (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		drawn_at TIMESTAMP NOT NULL,
		angle REAL NOT NULL,
		battery_percent INTEGER NOT NULL,
		indicators TEXT NOT NULL,
		alarm_shown INTEGER NOT NULL,
		fault TEXT NOT NULL DEFAULT '',
		duration_ms INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create frames table: %w", err)
	}
	_, err = conn.Exec(`CREATE INDEX IF NOT EXISTS idx_frames_drawn_at ON frames(drawn_at)`)
	if err != nil {
		return fmt.Errorf("failed to create frames index: %w", err)
	}
	return nil
}
