package harness

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// LoadScenarioCUE reads a scenario written in CUE. The file must define a
// top-level "scenario" struct with the same fields as the YAML form:
//
//	scenario: {
//		name:        "power"
//		description: "J/s is W"
//		quantities: e: {value: 6, named: J: 1}
//		...
//	}
//
// CUE constraints and references are evaluated before decoding, so values
// may be computed.
func LoadScenarioCUE(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenarioCUE(data, path)
}

// ParseScenarioCUE parses scenario CUE. filename is used in error positions.
func ParseScenarioCUE(data []byte, filename string) (*Scenario, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", formatCUEError(err))
	}

	sv := v.LookupPath(cue.ParsePath("scenario"))
	if !sv.Exists() {
		return nil, fmt.Errorf("failed to parse CUE: no top-level scenario field")
	}
	if err := sv.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", formatCUEError(err))
	}

	var scenario Scenario
	if err := sv.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", formatCUEError(err))
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// formatCUEError keeps the first CUE error with its position.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	if pos := first.Position(); pos.IsValid() {
		return fmt.Errorf("%s:%d:%d: %s", pos.Filename(), pos.Line(), pos.Column(), first.Error())
	}
	return first
}
