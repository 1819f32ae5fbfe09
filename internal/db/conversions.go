package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Conversion is one row of the history table.
type Conversion struct {
	ID           int64
	RunID        string
	Source       string // script path, or "codegen" for live recordings
	OutputPath   string // "-" when written to stdout
	TestName     string
	Browser      string
	Headless     bool
	ActionCount  int
	SkippedCount int
	CreatedAt    string
}

// InsertConversion stores c and returns it with ID and RunID filled in.
func InsertConversion(sqlDB *sql.DB, c Conversion) (Conversion, error) {
	c.RunID = uuid.NewString()
	res, err := sqlDB.Exec(`
		INSERT INTO conversions (run_id, source, output_path, test_name, browser, headless, action_count, skipped_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, c.RunID, c.Source, c.OutputPath, c.TestName, c.Browser, c.Headless, c.ActionCount, c.SkippedCount)
	if err != nil {
		return c, fmt.Errorf("inserting conversion: %w", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return c, fmt.Errorf("reading conversion id: %w", err)
	}
	return c, nil
}

// ListConversions returns up to limit conversions, newest first. A limit
// of zero or less returns all of them.
func ListConversions(sqlDB *sql.DB, limit int) ([]Conversion, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := sqlDB.Query(`
		SELECT id, run_id, source, output_path, test_name, browser, headless, action_count, skipped_count, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var out []Conversion
	for rows.Next() {
		var c Conversion
		if err := scanConversion(rows, &c); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanConversion(rows *sql.Rows, c *Conversion) error {
	return rows.Scan(&c.ID, &c.RunID, &c.Source, &c.OutputPath, &c.TestName, &c.Browser,
		&c.Headless, &c.ActionCount, &c.SkippedCount, &c.CreatedAt)
}
