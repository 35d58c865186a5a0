package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/starford/brf/internal/models"
)

// RunInfo describes a run at the moment it starts.
type RunInfo struct {
	Dir    string
	Mode   string
	Prefix string
}

// Entry is one recorded rename attempt.
type Entry struct {
	RunID     string
	Seq       int
	OldName   string
	NewName   string
	Checksum  string
	Status    models.Status
	Error     string
	RenamedAt time.Time
}

// Run records the outcomes of one run. It satisfies rename.Recorder.
type Run struct {
	db *DB
	id string
}

// ID returns the run identifier.
func (r *Run) ID() string {
	return r.id
}

// BeginRun inserts a new run row and returns a recorder bound to it.
func (db *DB) BeginRun(ctx context.Context, info RunInfo) (*Run, error) {
	id := uuid.NewString()
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO runs (id, dir, mode, prefix, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, info.Dir, info.Mode, info.Prefix, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("journal: begin run: %w", err)
	}
	return &Run{db: db, id: id}, nil
}

// Record stores one outcome.
func (r *Run) Record(ctx context.Context, o models.Outcome) error {
	var errText string
	if o.Err != nil {
		errText = o.Err.Error()
	}
	_, err := r.db.conn.ExecContext(ctx, `
		INSERT INTO renames (run_id, seq, old_name, new_name, checksum, status, error, renamed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.id, o.Seq, o.OldName, o.NewName, o.Checksum, string(o.Status), errText, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("journal: record %s: %w", o.OldName, err)
	}
	return nil
}

// Entries returns the recorded attempts of a run in processing order.
func (db *DB) Entries(ctx context.Context, runID string) ([]Entry, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT run_id, seq, old_name, new_name, checksum, status, error, renamed_at
		FROM renames WHERE run_id = ? ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("journal: entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var status string
		if err := rows.Scan(&e.RunID, &e.Seq, &e.OldName, &e.NewName, &e.Checksum, &status, &e.Error, &e.RenamedAt); err != nil {
			return nil, err
		}
		e.Status = models.Status(status)
		out = append(out, e)
	}
	return out, rows.Err()
}

// LastRunID returns the most recently started run, or "" if none.
func (db *DB) LastRunID(ctx context.Context) (string, error) {
	var id string
	err := db.conn.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY started_at DESC, rowid DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("journal: last run: %w", err)
	}
	return id, nil
}
