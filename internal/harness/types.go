package harness

import "github.com/roach88/siunit/internal/unit"

// TraceEvent records one executed step.
type TraceEvent struct {
	// Seq is 1-based and follows step order.
	Seq int64 `json:"seq"`

	// Let is the name the result was bound to.
	Let string `json:"let"`

	// Op is the operation applied.
	Op string `json:"op"`

	// Operands lists the operand names in order.
	Operands []string `json:"operands"`

	// Dimension is the encoding of the result. Zero when the step failed.
	Dimension unit.Composite `json:"dimension"`

	// Rendered is the plain rendering of the result dimension.
	Rendered string `json:"rendered,omitempty"`

	// Value is the numeric result.
	Value float64 `json:"value"`

	// Error is the error code when the step failed.
	Error string `json:"error,omitempty"`
}

// QuantitySnapshot is a bound quantity after the run.
type QuantitySnapshot struct {
	Name      string         `json:"name"`
	Value     float64        `json:"value"`
	Dimension unit.Composite `json:"dimension"`
	Rendered  string         `json:"rendered"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every step behaved as expected and every assertion
	// held.
	Pass bool `json:"pass"`

	// Trace contains one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Quantities holds every bound value, sorted by name.
	Quantities []QuantitySnapshot `json:"quantities"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:       true,
		Trace:      []TraceEvent{},
		Errors:     []string{},
		Quantities: []QuantitySnapshot{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// addTrace appends an event with the next sequence number.
func (r *Result) addTrace(ev TraceEvent) {
	ev.Seq = int64(len(r.Trace) + 1)
	r.Trace = append(r.Trace, ev)
}
