package harness

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Power(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/power.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, s)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestMarshalTrace_Canonical(t *testing.T) {
	result := NewResult()
	result.addTrace(TraceEvent{
		Let:      "x",
		Op:       OpMul,
		Operands: []string{"a<b", "c&d"},
		Rendered: "Ω",
		Value:    0.5,
	})

	got, err := MarshalTrace("canon", result)
	require.NoError(t, err)

	assert.Equal(t,
		`{"pass":true,"scenario":"canon","trace":[{"dimension":{"base":{},"named":{}},"let":"x","op":"mul","operands":["a<b","c&d"],"rendered":"Ω","seq":1,"value":0.5}]}`,
		string(got))
}

func TestMarshalTrace_NFC(t *testing.T) {
	result := NewResult()
	// "e" followed by a combining acute accent.
	result.addTrace(TraceEvent{Let: "e\u0301", Op: OpAdd, Operands: []string{}, Error: "x"})

	got, err := MarshalTrace("nfc", result)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"let":"`+"\u00e9"+`"`)
}

func TestMarshalTrace_RejectsNonFinite(t *testing.T) {
	result := NewResult()
	result.addTrace(TraceEvent{Let: "x", Op: OpDiv, Operands: []string{}, Value: math.Inf(1)})

	_, err := MarshalTrace("inf", result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-finite")
}

func TestMarshalTrace_LargeValuesHaveNoExponent(t *testing.T) {
	result := NewResult()
	result.addTrace(TraceEvent{Let: "x", Op: OpMul, Operands: []string{}, Value: 1e21})

	got, err := MarshalTrace("big", result)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"value":1000000000000000000000`)
}

func TestCheckGolden_UpdateThenCompare(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "golden")
	result := loadAndRun(t, "testdata/scenarios/time.yaml")

	require.NoError(t, CheckGolden(dir, "time_scaling", result, true))
	_, err := os.Stat(GoldenPath(dir, "time_scaling"))
	require.NoError(t, err)

	require.NoError(t, CheckGolden(dir, "time_scaling", result, false))

	other := loadAndRun(t, "testdata/scenarios/power.yaml")
	err = CheckGolden(dir, "time_scaling", other, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGoldenMismatch)
}

func TestCheckGolden_Missing(t *testing.T) {
	result := loadAndRun(t, "testdata/scenarios/time.yaml")

	err := CheckGolden(t.TempDir(), "absent", result, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read golden file")
}

func TestCheckGolden_MatchesCommittedFile(t *testing.T) {
	result := loadAndRun(t, "testdata/scenarios/power.yaml")
	assert.NoError(t, CheckGolden("testdata/golden", "power_from_energy", result, false))
}
