package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/roach88/siunit/internal/unit"
)

func loadAndRun(t *testing.T, path string, opts ...Option) *Result {
	t.Helper()

	s, err := Load(path)
	require.NoError(t, err)

	result, err := Run(s, opts...)
	require.NoError(t, err)
	return result
}

func TestRun_ScenarioFilesPass(t *testing.T) {
	for _, path := range []string{
		"testdata/scenarios/power.yaml",
		"testdata/scenarios/simplify.yaml",
		"testdata/scenarios/time.yaml",
		"testdata/scenarios/energy.cue",
	} {
		t.Run(path, func(t *testing.T) {
			result := loadAndRun(t, path)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRun_TraceShape(t *testing.T) {
	result := loadAndRun(t, "testdata/scenarios/power.yaml")

	require.Len(t, result.Trace, 3)

	first := result.Trace[0]
	assert.Equal(t, int64(1), first.Seq)
	assert.Equal(t, "power", first.Let)
	assert.Equal(t, OpDiv, first.Op)
	assert.Equal(t, []string{"energy", "time"}, first.Operands)
	assert.Equal(t, "J / s", first.Rendered)
	assert.Equal(t, 3.0, first.Value)
	assert.Empty(t, first.Error)

	failed := result.Trace[2]
	assert.Equal(t, int64(3), failed.Seq)
	assert.Equal(t, ErrDimensionMismatch, failed.Error)
	assert.Empty(t, failed.Rendered)
}

func TestRun_QuantitiesSortedByName(t *testing.T) {
	result := loadAndRun(t, "testdata/scenarios/power.yaml")

	var names []string
	for _, q := range result.Quantities {
		names = append(names, q.Name)
	}
	// "bad" failed and is not bound.
	assert.Equal(t, []string{"energy", "other", "power", "time", "total"}, names)

	total := result.Quantities[4]
	assert.Equal(t, 4.0, total.Value)
	assert.True(t, total.Dimension.Equal(unit.Watt.Composite()))
	assert.Equal(t, "J / s", total.Rendered)
}

func TestRun_IsDeterministic(t *testing.T) {
	s, err := Load("testdata/scenarios/simplify.yaml")
	require.NoError(t, err)

	first, err := Run(s)
	require.NoError(t, err)
	want, err := MarshalTrace(s.Name, first)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Run(s)
		require.NoError(t, err)
		got, err := MarshalTrace(s.Name, again)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}
}

func TestRun_UnexpectedMismatch(t *testing.T) {
	s, err := ParseScenario([]byte(minimalHeader + `
  t: { value: 1, base: { s: 1 } }
steps:
  - { let: c, op: add, lhs: a, rhs: t }
  - { let: d, op: mul, lhs: c, rhs: a }
assertions:
  - { type: value_equals, quantity: a, value: 1 }
`))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "unexpected error")
	assert.Contains(t, result.Errors[0], "dimension mismatch")
	assert.Contains(t, result.Errors[1], `operand "c" is unavailable`)

	require.Len(t, result.Trace, 2)
	assert.Equal(t, "unbound_operand", result.Trace[1].Error)
}

func TestRun_ExpectedErrorButSucceeded(t *testing.T) {
	s, err := ParseScenario([]byte(minimalHeader + `
steps:
  - { let: c, op: add, lhs: a, rhs: b, expect_error: dimension_mismatch }
assertions:
  - { type: step_fails, step: c }
`))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "expected dimension_mismatch, got 3 m")
	assert.Contains(t, result.Errors[1], "Assertion failed: step_fails")
}

func TestRun_FailingAssertions(t *testing.T) {
	s, err := ParseScenario([]byte(minimalHeader + `
steps:
  - { let: c, op: add, lhs: a, rhs: b }
assertions:
  - { type: dimension_equals, quantity: c, base: { s: 1 } }
  - { type: encodes_as, quantity: c, base: { m: 1 }, named: { J: 0 } }
  - { type: encodes_as, quantity: c, named: { Hz: 1 } }
  - { type: renders, quantity: c, text: "meter" }
  - { type: renders, quantity: c, text: "m", style: nope }
  - { type: value_equals, quantity: c, value: 3.1 }
  - { type: value_equals, quantity: c, value: 3.0000000001 }
`))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 5)
	assert.Contains(t, result.Errors[0], "Assertion failed: dimension_equals")
	assert.Contains(t, result.Errors[0], "Full trace:")
	assert.Contains(t, result.Errors[1], "Assertion failed: encodes_as")
	assert.Contains(t, result.Errors[2], `"meter"`)
	assert.Contains(t, result.Errors[3], `unknown style "nope"`)
	assert.Contains(t, result.Errors[4], "Assertion failed: value_equals")
}

func TestRun_ScaleRequiresTime(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: bad_scale
description: x
quantities:
  a: { value: 1, base: { m: 1 }, scale: hours }
assertions:
  - { type: value_equals, quantity: a, value: 3600 }
`))
	require.NoError(t, err)

	_, err = Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantities[a]")
	assert.Contains(t, err.Error(), "needs a time dimension")
}

func TestRun_UnknownSymbol(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: bad_symbol
description: x
quantities:
  a: { value: 1, base: { furlong: 1 } }
assertions:
  - { type: value_equals, quantity: a, value: 1 }
`))
	require.NoError(t, err)

	_, err = Run(s)
	require.Error(t, err)
	assert.True(t, unit.IsUnknownSymbol(err))
}

func TestRun_LogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	result := loadAndRun(t, "testdata/scenarios/power.yaml", WithLogger(zap.New(core)))
	require.True(t, result.Pass)

	assert.Equal(t, 3, logs.FilterMessage("quantity bound").Len())
	assert.Equal(t, 2, logs.FilterMessage("step completed").Len())
	assert.Equal(t, 1, logs.FilterMessage("step failed as expected").Len())

	finished := logs.FilterMessage("scenario finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, "power_from_energy", finished[0].ContextMap()["scenario"])
	assert.Equal(t, true, finished[0].ContextMap()["pass"])
}

func TestWithLogger_IgnoresNil(t *testing.T) {
	result := loadAndRun(t, "testdata/scenarios/time.yaml", WithLogger(nil))
	assert.True(t, result.Pass)
}

func TestDimensionOf(t *testing.T) {
	c, err := DimensionOf(map[string]int{"m": 1}, map[string]int{"J": 1})
	require.NoError(t, err)
	assert.True(t, c.StructurallyEqual(unit.Joule.Composite().Multiply(unit.Meter.Composite())))

	_, err = DimensionOf(map[string]int{"J": 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "named units belong under named")

	_, err = DimensionOf(nil, map[string]int{"kg": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base axes belong under base")

	_, err = DimensionOf(nil, map[string]int{"J": 500})
	require.Error(t, err)
	assert.True(t, unit.IsOverflow(err))
}
