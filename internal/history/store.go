// Package history provides SQLite-backed persistence of planning runs,
// feeding the coverage trend view. Planning itself never touches it.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"
)

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	total_lines    INTEGER NOT NULL,
	covered_lines  INTEGER NOT NULL,
	gap_count      INTEGER NOT NULL,
	recorded_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_recorded_at ON runs(recorded_at);
`

// Run is one recorded planning run.
type Run struct {
	ID           int64
	TotalLines   int
	CoveredLines int
	GapCount     int
	RecordedAt   time.Time
}

// Percent returns the aggregate coverage as a rounded whole percentage.
func (r Run) Percent() int {
	if r.TotalLines == 0 {
		return 100
	}
	return int(math.Round(float64(r.CoveredLines) / float64(r.TotalLines) * 100))
}

// Store persists runs in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path with
// recommended pragmas and runs the schema migration.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// Single connection: WAL allows concurrent reads but a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schemaV1); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one run.
func (s *Store) Record(ctx context.Context, run Run) error {
	const q = `INSERT INTO runs (total_lines, covered_lines, gap_count, recorded_at)
VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q,
		run.TotalLines,
		run.CoveredLines,
		run.GapCount,
		run.RecordedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns up to limit most recent runs in chronological order.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	const q = `SELECT id, total_lines, covered_lines, gap_count, recorded_at
FROM (
	SELECT * FROM runs ORDER BY recorded_at DESC, id DESC LIMIT ?
)
ORDER BY recorded_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var recordedAt int64
		if err := rows.Scan(&r.ID, &r.TotalLines, &r.CoveredLines, &r.GapCount, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.RecordedAt = time.Unix(recordedAt, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Trend returns the aggregate percentages of the most recent runs in
// chronological order, ready for sparkline rendering.
func (s *Store) Trend(ctx context.Context, limit int) ([]int, error) {
	runs, err := s.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	percents := make([]int, 0, len(runs))
	for _, r := range runs {
		percents = append(percents, r.Percent())
	}
	return percents, nil
}
