package harness

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/roach88/siunit/internal/quantity"
	"github.com/roach88/siunit/internal/quantity/derived"
	"github.com/roach88/siunit/internal/unit"
)

// value is the quantity type every scenario works in.
type value = quantity.Derived[float64]

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger used for step-level debug output. The default
// discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(r *runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type runner struct {
	logger *zap.Logger
	values map[string]value
	failed map[string]bool
	result *Result
}

// Run executes a scenario and returns the result.
//
// Validation failures in the scenario itself (unknown symbols, bad scale)
// are returned as errors. Unexpected step outcomes and failed assertions
// are reported in Result.Errors with Pass set to false.
//
// Run is deterministic: the same scenario always yields the same trace.
func Run(s *Scenario, opts ...Option) (*Result, error) {
	r := &runner{
		logger: zap.NewNop(),
		values: make(map[string]value, len(s.Quantities)+len(s.Steps)),
		failed: make(map[string]bool),
		result: NewResult(),
	}
	for _, opt := range opts {
		opt(r)
	}
	log := r.logger.With(zap.String("scenario", s.Name))

	// Sorted so that any error names the same quantity every time.
	for _, name := range slices.Sorted(maps.Keys(s.Quantities)) {
		v, err := buildQuantity(s.Quantities[name])
		if err != nil {
			return nil, fmt.Errorf("quantities[%s]: %w", name, err)
		}
		r.values[name] = v
		log.Debug("quantity bound",
			zap.String("name", name),
			zap.Stringer("value", v),
		)
	}

	for i, step := range s.Steps {
		r.execute(log, i, step)
	}

	for _, msg := range evaluateAssertions(r, s.Assertions) {
		r.result.AddError(msg)
	}

	for _, name := range slices.Sorted(maps.Keys(r.values)) {
		v := r.values[name]
		r.result.Quantities = append(r.result.Quantities, QuantitySnapshot{
			Name:      name,
			Value:     v.Number(),
			Dimension: v.Dimension(),
			Rendered:  v.Dimension().String(),
		})
	}

	log.Debug("scenario finished",
		zap.Bool("pass", r.result.Pass),
		zap.Int("steps", len(s.Steps)),
		zap.Int("errors", len(r.result.Errors)),
	)
	return r.result, nil
}

// execute runs one step and records it in the trace.
func (r *runner) execute(log *zap.Logger, index int, step Step) {
	operands := []string{step.Lhs}
	if step.Rhs != "" {
		operands = append(operands, step.Rhs)
	}
	ev := TraceEvent{Let: step.Let, Op: step.Op, Operands: operands}

	for _, name := range operands {
		if _, ok := r.values[name]; !ok {
			ev.Error = "unbound_operand"
			r.result.addTrace(ev)
			r.result.AddError(fmt.Sprintf("step %d (%s): operand %q is unavailable because an earlier step failed", index, step.Let, name))
			return
		}
	}

	out, err := r.apply(step)
	if err != nil {
		ev.Error = errorCode(err)
		r.result.addTrace(ev)
		r.failed[step.Let] = true

		if step.ExpectError == ev.Error {
			log.Debug("step failed as expected",
				zap.Int("step", index),
				zap.String("let", step.Let),
				zap.Error(err),
			)
			return
		}
		r.result.AddError(fmt.Sprintf("step %d (%s): unexpected error: %v", index, step.Let, err))
		return
	}

	ev.Dimension = out.Dimension()
	ev.Rendered = out.Dimension().String()
	ev.Value = out.Number()
	r.result.addTrace(ev)

	if step.ExpectError != "" {
		r.result.AddError(fmt.Sprintf("step %d (%s): expected %s, got %s", index, step.Let, step.ExpectError, out))
		return
	}

	r.values[step.Let] = out
	log.Debug("step completed",
		zap.Int("step", index),
		zap.String("let", step.Let),
		zap.String("op", step.Op),
		zap.Stringer("result", out),
	)
}

func (r *runner) apply(step Step) (value, error) {
	lhs := r.values[step.Lhs]
	rhs := r.values[step.Rhs]

	switch step.Op {
	case OpAdd:
		return lhs.Add(rhs)
	case OpSub:
		return lhs.Sub(rhs)
	case OpMul:
		return lhs.Mul(rhs), nil
	case OpDiv:
		return lhs.Div(rhs), nil
	case OpSimplify:
		return quantity.Simplify(lhs), nil
	case OpFlatten:
		return quantity.ToDerived(quantity.ToBase(lhs)), nil
	case OpExpand:
		return quantity.Expand(lhs), nil
	default:
		return value{}, fmt.Errorf("unknown op %q", step.Op)
	}
}

func errorCode(err error) string {
	if quantity.IsMismatch(err) {
		return ErrDimensionMismatch
	}
	return "error"
}

// buildQuantity turns a QuantitySpec into a value, applying its scale.
func buildQuantity(q QuantitySpec) (value, error) {
	dim, err := DimensionOf(q.Base, q.Named)
	if err != nil {
		return value{}, err
	}

	switch q.Scale {
	case "":
		return quantity.New(dim, q.Value), nil
	case "minutes", "hours":
		if !dim.Equal(unit.Second.Composite()) {
			return value{}, fmt.Errorf("scale %s needs a time dimension, got %s", q.Scale, dim)
		}
		if q.Scale == "minutes" {
			return derived.Minutes(q.Value), nil
		}
		return derived.Hours(q.Value), nil
	default:
		return value{}, fmt.Errorf("unknown scale %q", q.Scale)
	}
}

// DimensionOf builds a Composite from separate base and named exponent
// maps. Axis symbols are rejected in named and vice versa.
func DimensionOf(base, named map[string]int) (unit.Composite, error) {
	b, err := unit.FromExponents(base)
	if err != nil {
		return unit.Composite{}, fmt.Errorf("base: %w", err)
	}
	if b.HasSlots() {
		return unit.Composite{}, fmt.Errorf("base: named units belong under named")
	}

	n, err := unit.FromExponents(named)
	if err != nil {
		return unit.Composite{}, fmt.Errorf("named: %w", err)
	}
	if !n.Base.IsUnitless() {
		return unit.Composite{}, fmt.Errorf("named: base axes belong under base")
	}

	return unit.Composite{Base: b.Base, Slots: n.Slots}, nil
}
