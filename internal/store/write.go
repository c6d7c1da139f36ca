package store

import (
	"context"
	"database/sql"
	"fmt"
)

// RecordRun stores a run and its quantities in one transaction and returns
// the run with ID and Seq filled in.
//
// If run.ID is empty a new ID is generated. Seq is always assigned here as
// one more than the highest recorded seq, starting at 1.
func (s *Store) RecordRun(ctx context.Context, run Run) (Run, error) {
	if run.Scenario == "" {
		return Run{}, fmt.Errorf("record run: scenario name is required")
	}
	if run.ID == "" {
		run.ID = s.ids.Generate()
	}

	errBlob, err := encodeErrors(run.Errors)
	if err != nil {
		return Run{}, fmt.Errorf("record run %s: %w", run.ID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var seq int64
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(seq), 0) + 1 FROM runs").Scan(&seq); err != nil {
		return Run{}, fmt.Errorf("next seq: %w", err)
	}
	run.Seq = seq

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, scenario, pass, errors, seq)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Scenario, boolToInt(run.Pass), errBlob, run.Seq)
	if err != nil {
		return Run{}, fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	if err := insertQuantities(ctx, tx, run); err != nil {
		return Run{}, err
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("commit run %s: %w", run.ID, err)
	}
	return run, nil
}

func insertQuantities(ctx context.Context, tx *sql.Tx, run Run) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO quantities (run_id, name, value, base, slots, rendered)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare quantity insert: %w", err)
	}
	defer stmt.Close()

	for _, q := range run.Quantities {
		base, slots, err := encodeDimension(q.Dimension)
		if err != nil {
			return fmt.Errorf("quantity %s: %w", q.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, run.ID, q.Name, q.Value, base, slots, q.Rendered); err != nil {
			return fmt.Errorf("insert quantity %s: %w", q.Name, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
