package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/roach88/siunit/internal/unit"
)

// ValueTolerance is the absolute tolerance used by value_equals.
const ValueTolerance = 1e-9

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for _, event := range e.Trace {
			if event.Error != "" {
				fmt.Fprintf(&buf, "  [%d] %s = %s(%s) failed: %s\n", event.Seq, event.Let, event.Op, strings.Join(event.Operands, ", "), event.Error)
				continue
			}
			fmt.Fprintf(&buf, "  [%d] %s = %s(%s) -> %v %s\n", event.Seq, event.Let, event.Op, strings.Join(event.Operands, ", "), event.Value, event.Rendered)
		}
	}

	return buf.String()
}

// evaluateAssertions evaluates all assertions against the runner state.
// Returns a slice of error messages for failed assertions.
func evaluateAssertions(r *runner, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertDimensionEquals:
			err = r.assertDimension(assertion, false)
		case AssertEncodesAs:
			err = r.assertDimension(assertion, true)
		case AssertRenders:
			err = r.assertRenders(assertion)
		case AssertValueEquals:
			err = r.assertValue(assertion)
		case AssertStepFails:
			err = r.assertStepFails(assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}

func (r *runner) lookup(a Assertion) (value, error) {
	v, ok := r.values[a.Quantity]
	if !ok {
		return value{}, &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("quantity %q to be bound", a.Quantity),
			Actual:   "not bound (its step failed)",
			Trace:    r.result.Trace,
		}
	}
	return v, nil
}

// assertDimension compares dimensionally, or field by field when
// structural is set.
func (r *runner) assertDimension(a Assertion, structural bool) error {
	v, err := r.lookup(a)
	if err != nil {
		return err
	}
	want, err := DimensionOf(a.Base, a.Named)
	if err != nil {
		return fmt.Errorf("assertion %s on %s: %w", a.Type, a.Quantity, err)
	}

	got := v.Dimension()
	ok := got.Equal(want)
	if structural {
		ok = got.StructurallyEqual(want)
	}
	if ok {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%s to be %s (%#v)", a.Quantity, want, want),
		Actual:   fmt.Sprintf("%s (%#v)", got, got),
		Trace:    r.result.Trace,
	}
}

func (r *runner) assertRenders(a Assertion) error {
	v, err := r.lookup(a)
	if err != nil {
		return err
	}

	style := unit.Plain
	if a.Style != "" {
		s, ok := unit.Styles[a.Style]
		if !ok {
			return fmt.Errorf("assertion renders on %s: unknown style %q", a.Quantity, a.Style)
		}
		style = s
	}

	got := unit.Render(v.Dimension(), style)
	if got == a.Text {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%s to render as %q", a.Quantity, a.Text),
		Actual:   fmt.Sprintf("%q", got),
		Trace:    r.result.Trace,
	}
}

func (r *runner) assertValue(a Assertion) error {
	v, err := r.lookup(a)
	if err != nil {
		return err
	}

	if math.Abs(v.Number()-*a.Value) <= ValueTolerance {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%s to be %v", a.Quantity, *a.Value),
		Actual:   fmt.Sprintf("%v", v.Number()),
		Trace:    r.result.Trace,
	}
}

func (r *runner) assertStepFails(a Assertion) error {
	if r.failed[a.Step] {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("step %s to fail with %s", a.Step, ErrDimensionMismatch),
		Actual:   "step succeeded",
		Trace:    r.result.Trace,
	}
}
