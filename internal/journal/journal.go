// Package journal records applied cell update lists in SQLite for diagnostics.
// It never stores or restores grid state.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/cellgrid/internal/grid"
)

// Batch kinds.
const (
	KindPaste = "paste"
	KindEdit  = "edit"
)

var (
	// ErrClosed is returned when the journal is used after Close.
	ErrClosed = errors.New("journal is closed")
	// ErrInvalidKind is returned for batch kinds other than paste or edit.
	ErrInvalidKind = errors.New("invalid batch kind")
)

// Batch is one recorded update list.
type Batch struct {
	ID         int64
	Kind       string
	Applied    int
	RecordedAt time.Time
	Updates    []grid.CellUpdate
}

// Journal is a SQLite-backed update log.
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the journal at path and runs migrations.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, errors.New("journal path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Journal writes arrive from concurrent commands; SQLite allows one writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	j := &Journal{db: db, now: time.Now}
	if err := j.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return j, nil
}

// RecordBatch stores an update list with its sequence order in one transaction.
func (j *Journal) RecordBatch(ctx context.Context, kind string, updates []grid.CellUpdate, applied int) error {
	if j == nil || j.db == nil {
		return ErrClosed
	}
	if kind != KindPaste && kind != KindEdit {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO batches (kind, applied, recorded_at) VALUES (?, ?, ?)`,
		kind,
		applied,
		j.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting batch: %w", err)
	}

	batchID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO batch_updates (batch_id, seq, row, col, value) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing update insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for seq, u := range updates {
		if _, err := stmt.ExecContext(ctx, batchID, seq, u.Row, u.Col, u.Value); err != nil {
			return fmt.Errorf("inserting update %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}
	return nil
}

// Recent returns up to limit batches, newest first, with updates in sequence order.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Batch, error) {
	if j == nil || j.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		return nil, nil
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, kind, applied, recorded_at
		FROM batches
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying batches: %w", err)
	}

	var batches []Batch
	for rows.Next() {
		var (
			b          Batch
			recordedAt string
		)
		if err := rows.Scan(&b.ID, &b.Kind, &b.Applied, &recordedAt); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scanning batch: %w", err)
		}
		b.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("parsing recorded at: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterating batches: %w", err)
	}
	_ = rows.Close()

	for i := range batches {
		updates, err := j.updatesFor(ctx, batches[i].ID)
		if err != nil {
			return nil, err
		}
		batches[i].Updates = updates
	}

	return batches, nil
}

func (j *Journal) updatesFor(ctx context.Context, batchID int64) ([]grid.CellUpdate, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT row, col, value
		FROM batch_updates
		WHERE batch_id = ?
		ORDER BY seq
	`, batchID)
	if err != nil {
		return nil, fmt.Errorf("querying updates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var updates []grid.CellUpdate
	for rows.Next() {
		var u grid.CellUpdate
		if err := rows.Scan(&u.Row, &u.Col, &u.Value); err != nil {
			return nil, fmt.Errorf("scanning update: %w", err)
		}
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating updates: %w", err)
	}
	return updates, nil
}

// Close releases the database handle.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}
