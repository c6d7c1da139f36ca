package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/siunit/internal/unit"
)

func TestDimensionCommands_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"simplify joule", []string{"simplify", "--base", "kg=1,m=2,s=-2"}, "J\n"},
		{"derive leftover length", []string{"derive", "--base", "kg=1,m=3,s=-2"}, "m J\n"},
		{"simplify power", []string{"simplify", "--named", "J=1", "--base", "s=-1"}, "W\n"},
		{"simplify unitless", []string{"simplify"}, "unitless\n"},
		{"flatten joule", []string{"flatten", "--named", "J=1"}, "kg m² / s²\n"},
		{"render as given", []string{"render", "--base", "kg=1,m=1,s=-2"}, "kg m / s²\n"},
		{"render dot", []string{"render", "--base", "kg=1,m=1,s=-2", "--style", "dot"}, "kg⋅m/s²\n"},
		{"names accepted", []string{"simplify", "--base", "kilogram=1,meter=2,second=-2"}, "J\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSimplifyCommand_JSON(t *testing.T) {
	out, err := execute(t, "simplify", "--base", "kg=1,m=2,s=-2", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Input     unit.Composite `json:"input"`
			Dimension unit.Composite `json:"dimension"`
			Rendered  string         `json:"rendered"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "J", resp.Data.Rendered)
	assert.True(t, resp.Data.Dimension.StructurallyEqual(unit.Joule.Composite()))
	assert.True(t, resp.Data.Input.Equal(unit.Joule.Composite()))
	assert.False(t, resp.Data.Input.HasSlots())
}

func TestFlattenCommand_JSON(t *testing.T) {
	out, err := execute(t, "flatten", "--named", "W=1", "--base", "s=1", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"dimension":{"kg":1,"m":2,"s":-2}`)
}

func TestDimensionCommands_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"named under base", []string{"simplify", "--base", "J=1"}, "named units belong under named"},
		{"axis under named", []string{"render", "--named", "kg=1"}, "base axes belong under base"},
		{"unknown symbol", []string{"flatten", "--base", "furlong=1"}, "furlong"},
		{"not an integer", []string{"simplify", "--base", "m=half"}, "invalid argument"},
		{"positional args", []string{"simplify", "kg"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestSimplifyCommand_VerboseLogsInput(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := NewSimplifyCommand(&RootOptions{Format: "text", Verbose: true})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--base", "kg=1,m=2,s=-3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "W\n", stdout.String())
	assert.Contains(t, stderr.String(), "input: kg m² / s³")
}
