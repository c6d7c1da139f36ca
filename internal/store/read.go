package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrRunNotFound is returned by ReadRun for an unknown ID.
var ErrRunNotFound = errors.New("run not found")

// Read queries. COLLATE binds to the ordering expression and must precede
// ASC/DESC.
const (
	listRunsQuery = `
		SELECT id, scenario, pass, errors, seq
		FROM runs
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`
	listScenarioRunsQuery = `
		SELECT id, scenario, pass, errors, seq
		FROM runs
		WHERE scenario = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`
	readRunQuery = `
		SELECT id, scenario, pass, errors, seq
		FROM runs
		WHERE id = ?
	`
	readQuantitiesQuery = `
		SELECT name, value, base, slots, rendered
		FROM quantities
		WHERE run_id = ?
		ORDER BY name COLLATE BINARY ASC
	`
)

// ListRuns returns every recorded run without its quantities, ordered by
// seq then id. An empty scenario lists all runs.
func (s *Store) ListRuns(ctx context.Context, scenario string) ([]Run, error) {
	query := listRunsQuery
	var args []any
	if scenario != "" {
		query = listScenarioRunsQuery
		args = append(args, scenario)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRun returns one run with its quantities ordered by name.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, readRunQuery, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return Run{}, err
	}

	run.Quantities, err = s.readQuantities(ctx, id)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

func (s *Store) readQuantities(ctx context.Context, runID string) ([]Quantity, error) {
	rows, err := s.db.QueryContext(ctx, readQuantitiesQuery, runID)
	if err != nil {
		return nil, fmt.Errorf("query quantities for %s: %w", runID, err)
	}
	defer rows.Close()

	quantities := []Quantity{}
	for rows.Next() {
		var (
			q           Quantity
			base, slots []byte
		)
		if err := rows.Scan(&q.Name, &q.Value, &base, &slots, &q.Rendered); err != nil {
			return nil, fmt.Errorf("scan quantity: %w", err)
		}
		q.Dimension, err = decodeDimension(base, slots)
		if err != nil {
			return nil, fmt.Errorf("quantity %s: %w", q.Name, err)
		}
		quantities = append(quantities, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quantities: %w", err)
	}
	return quantities, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run     Run
		pass    int
		errBlob []byte
	)
	if err := sc.Scan(&run.ID, &run.Scenario, &pass, &errBlob, &run.Seq); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.Pass = pass != 0

	errs, err := decodeErrors(errBlob)
	if err != nil {
		return Run{}, fmt.Errorf("run %s: %w", run.ID, err)
	}
	run.Errors = errs
	return run, nil
}
