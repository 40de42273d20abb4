package ledger

import (
	"database/sql"
	"fmt"
	"time"
)

// RunStats are the outcome counters of one scan pass.
type RunStats struct {
	Scanned int
	Replied int
	Skipped int
	Failed  int
}

// Run is one scan invocation as recorded in the ledger.
type Run struct {
	RunID      int64
	StartedAt  time.Time
	FinishedAt sql.NullTime
	Subreddit  string
	Stats      RunStats
}

// StartRun opens a run row and returns its id.
func (l *Ledger) StartRun(subreddit string) (int64, error) {
	result, err := l.Exec("INSERT INTO runs (subreddit) VALUES (?)", subreddit)
	if err != nil {
		return 0, fmt.Errorf("failed to start run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// FinishRun closes a run row with its final counters.
func (l *Ledger) FinishRun(runID int64, stats RunStats) error {
	_, err := l.Exec(`
		UPDATE runs
		SET finished_at = CURRENT_TIMESTAMP, scanned = ?, replied = ?, skipped = ?, failed = ?
		WHERE run_id = ?
	`, stats.Scanned, stats.Replied, stats.Skipped, stats.Failed, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run %d: %w", runID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (l *Ledger) ListRuns(limit int) ([]Run, error) {
	rows, err := l.Query(`
		SELECT run_id, started_at, finished_at, subreddit, scanned, replied, skipped, failed
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		err := rows.Scan(&r.RunID, &r.StartedAt, &r.FinishedAt, &r.Subreddit,
			&r.Stats.Scanned, &r.Stats.Replied, &r.Stats.Skipped, &r.Stats.Failed)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, nil
}
