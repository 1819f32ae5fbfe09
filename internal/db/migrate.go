package db

import (
	"database/sql"
	"fmt"
)

// All contains the ordered list of migrations to apply.
var All = []string{
	`CREATE TABLE conversions (
		id            INTEGER PRIMARY KEY,
		run_id        TEXT UNIQUE NOT NULL,
		source        TEXT NOT NULL,
		output_path   TEXT NOT NULL,
		test_name     TEXT NOT NULL,
		browser       TEXT NOT NULL,
		headless      INTEGER NOT NULL DEFAULT 0,
		action_count  INTEGER NOT NULL,
		skipped_count INTEGER NOT NULL,
		created_at    DATETIME NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE INDEX conversions_created_at ON conversions (created_at)`,
}

func Migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`)
	if err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count); err != nil {
		return fmt.Errorf("checking schema_version: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return fmt.Errorf("initializing schema version: %w", err)
		}
	}

	var current int
	if err := db.QueryRow(`SELECT version FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := current; i < len(All); i++ {
		if err := apply(db, i); err != nil {
			return err
		}
	}

	return nil
}

func apply(db *sql.DB, i int) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning migration %d: %w", i+1, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(All[i]); err != nil {
		return fmt.Errorf("migration %d failed: %w", i+1, err)
	}
	if _, err := tx.Exec(`UPDATE schema_version SET version = ?`, i+1); err != nil {
		return fmt.Errorf("updating schema version to %d: %w", i+1, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %d: %w", i+1, err)
	}
	return nil
}
