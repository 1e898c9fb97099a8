// Package journal persists agent runs and their steps in SQLite.
//
// A Store is an event subscriber: register it on an events.Registry and every run started,
// step added and run finished is written as it happens. Records are append-only except for
// the finish stamp on a run.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rodrigo1987mza/reactagent"
	_ "modernc.org/sqlite"
)

// Outcomes stored for finished runs.
const (
	OutcomeAnswered = "answered"
	OutcomeFailed   = "failed"
)

// Run is a journaled run. FinishedAt is zero while the run is still in progress.
type Run struct {
	ID         string
	Question   string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcome    string
	Answer     string
	Error      string
	Steps      int
}

// Store is an SQLite store for runs and steps. All public methods are safe for concurrent
// use.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates or opens a journal at path. The schema is created automatically on first use.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}
	// Writes arrive synchronously from the agent loop; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: slog.New(slog.DiscardHandler)}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal schema: %w", err)
	}
	return s, nil
}

// WithLogger sets the logger used to report write failures from event callbacks.
func (s *Store) WithLogger(logger *slog.Logger) *Store {
	s.logger = logger
	return s
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		question    TEXT NOT NULL,
		started_at  TEXT NOT NULL,
		finished_at TEXT,
		outcome     TEXT,
		answer      TEXT,
		error       TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

	CREATE TABLE IF NOT EXISTS steps (
		id         TEXT PRIMARY KEY,
		run_id     TEXT NOT NULL REFERENCES runs(id),
		idx        INTEGER NOT NULL,
		kind       TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (run_id, idx)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// StartRun records the start of a run.
func (s *Store) StartRun(ctx context.Context, runID, question string, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, question, started_at) VALUES (?, ?, ?)`,
		runID, question, formatTime(at),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// AddStep records a step at the given position of a run.
func (s *Store) AddStep(ctx context.Context, runID string, index int, step reactagent.Step) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO steps (id, run_id, idx, kind, content, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		step.ID.String(), runID, index, string(step.Kind), step.Content, formatTime(step.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert step: %w", err)
	}
	return nil
}

// FinishRun stamps a run with its end time and outcome. A nil runErr means answered.
func (s *Store) FinishRun(ctx context.Context, runID, answer string, runErr error, at time.Time) error {
	outcome, errText := OutcomeAnswered, ""
	if runErr != nil {
		outcome, errText = OutcomeFailed, runErr.Error()
		answer = ""
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, outcome = ?, answer = ?, error = ? WHERE id = ?`,
		formatTime(at), outcome, answer, errText, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish run: run %s not found", runID)
	}
	return nil
}

// Runs returns the most recent runs, newest first. A non-positive limit returns all runs.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	return s.queryRuns(ctx, "ORDER BY r.started_at DESC, r.rowid DESC LIMIT ?", limit)
}

// Run returns a single run. Returns ErrRunNotFound when it does not exist.
func (s *Store) Run(ctx context.Context, runID string) (*Run, error) {
	runs, err := s.queryRuns(ctx, "WHERE r.id = ?", runID)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrRunNotFound
	}
	return &runs[0], nil
}

// queryRuns selects runs with the given trailing clause. The clause is always a constant
// from this file.
func (s *Store) queryRuns(ctx context.Context, clause string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.question, r.started_at,
		        COALESCE(r.finished_at, ''), COALESCE(r.outcome, ''),
		        COALESCE(r.answer, ''), COALESCE(r.error, ''),
		        (SELECT COUNT(*) FROM steps st WHERE st.run_id = r.id)
		 FROM runs r `+clause,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished string
		if err := rows.Scan(&r.ID, &r.Question, &started, &finished,
			&r.Outcome, &r.Answer, &r.Error, &r.Steps); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		if finished != "" {
			if r.FinishedAt, err = parseTime(finished); err != nil {
				return nil, err
			}
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Steps returns the steps of a run in emission order.
func (s *Store) Steps(ctx context.Context, runID string) ([]reactagent.Step, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, content, created_at FROM steps WHERE run_id = ? ORDER BY idx`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}
	defer rows.Close()

	var steps []reactagent.Step
	for rows.Next() {
		var id, kind, created string
		var step reactagent.Step
		if err := rows.Scan(&id, &kind, &step.Content, &created); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		if step.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse step id: %w", err)
		}
		if step.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		step.Kind = reactagent.StepKind(kind)
		steps = append(steps, step)
	}
	return steps, rows.Err()
}

// ErrRunNotFound is returned by Run for unknown run IDs.
var ErrRunNotFound = errors.New("run not found")

// timeLayout is fixed width so timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
