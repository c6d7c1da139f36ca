package store

import (
	"github.com/roach88/siunit/internal/harness"
	"github.com/roach88/siunit/internal/unit"
)

// Run is one recorded scenario execution.
type Run struct {
	ID       string
	Scenario string
	Pass     bool
	Errors   []string

	// Seq is assigned by RecordRun. It is the only ordering key.
	Seq int64

	Quantities []Quantity
}

// Quantity is a bound scenario quantity as it stood when the run finished.
type Quantity struct {
	Name      string
	Value     float64
	Dimension unit.Composite
	Rendered  string
}

// RunFromResult converts a harness result into a Run ready for recording.
// ID and Seq are left empty for RecordRun to fill.
func RunFromResult(scenario string, result *harness.Result) Run {
	run := Run{
		Scenario:   scenario,
		Pass:       result.Pass,
		Errors:     append([]string{}, result.Errors...),
		Quantities: make([]Quantity, 0, len(result.Quantities)),
	}
	for _, q := range result.Quantities {
		run.Quantities = append(run.Quantities, Quantity{
			Name:      q.Name,
			Value:     q.Value,
			Dimension: q.Dimension,
			Rendered:  q.Rendered,
		})
	}
	return run
}
