package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of quantity operations with assertions on
// the outcome.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Quantities declares the starting values, keyed by name.
	Quantities map[string]QuantitySpec `yaml:"quantities" json:"quantities"`

	// Steps run in order. Each binds its result to Let.
	Steps []Step `yaml:"steps" json:"steps"`

	// Assertions are checked after every step has run.
	Assertions []Assertion `yaml:"assertions" json:"assertions"`
}

// QuantitySpec declares one starting quantity.
//
//	duration:
//	  value: 1.5
//	  base: { s: 1 }
//	  scale: hours
type QuantitySpec struct {
	// Value is the numeric payload.
	Value float64 `yaml:"value" json:"value"`

	// Base maps axis symbols to exponents.
	Base map[string]int `yaml:"base,omitempty" json:"base,omitempty"`

	// Named maps named-unit symbols to exponents.
	Named map[string]int `yaml:"named,omitempty" json:"named,omitempty"`

	// Scale is "", "minutes" or "hours". Scaled quantities must be a pure
	// time dimension; the value is converted to seconds.
	Scale string `yaml:"scale,omitempty" json:"scale,omitempty"`
}

// Step applies one operation and binds the result.
type Step struct {
	// Let names the result.
	Let string `yaml:"let" json:"let"`

	// Op is one of the Op* constants.
	Op string `yaml:"op" json:"op"`

	// Lhs names the first operand.
	Lhs string `yaml:"lhs" json:"lhs"`

	// Rhs names the second operand of a binary op.
	Rhs string `yaml:"rhs,omitempty" json:"rhs,omitempty"`

	// ExpectError is set to ErrDimensionMismatch when the step must fail.
	ExpectError string `yaml:"expect_error,omitempty" json:"expect_error,omitempty"`
}

// Step operations.
const (
	OpAdd      = "add"
	OpSub      = "sub"
	OpMul      = "mul"
	OpDiv      = "div"
	OpSimplify = "simplify"
	OpFlatten  = "flatten"
	OpExpand   = "expand"
)

// ErrDimensionMismatch is the error code recorded for a failed add or sub.
const ErrDimensionMismatch = "dimension_mismatch"

func isBinary(op string) bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

func isUnary(op string) bool {
	switch op {
	case OpSimplify, OpFlatten, OpExpand:
		return true
	}
	return false
}

// Assertion checks one property of the final state.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type" json:"type"`

	// Quantity names the bound value under test.
	Quantity string `yaml:"quantity,omitempty" json:"quantity,omitempty"`

	// Step names the step under test (step_fails).
	Step string `yaml:"step,omitempty" json:"step,omitempty"`

	// Base and Named give the expected dimension (dimension_equals,
	// encodes_as).
	Base  map[string]int `yaml:"base,omitempty" json:"base,omitempty"`
	Named map[string]int `yaml:"named,omitempty" json:"named,omitempty"`

	// Text is the expected rendering (renders).
	Text string `yaml:"text,omitempty" json:"text,omitempty"`

	// Style names the rendering style (renders). Defaults to plain.
	Style string `yaml:"style,omitempty" json:"style,omitempty"`

	// Value is the expected number (value_equals).
	Value *float64 `yaml:"value,omitempty" json:"value,omitempty"`
}

// Assertion type constants.
const (
	AssertDimensionEquals = "dimension_equals"
	AssertEncodesAs       = "encodes_as"
	AssertRenders         = "renders"
	AssertValueEquals     = "value_equals"
	AssertStepFails       = "step_fails"
)

// Load reads a scenario file, picking the decoder from the extension.
func Load(path string) (*Scenario, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadScenario(path)
	case ".cue":
		return LoadScenarioCUE(path)
	default:
		return nil, fmt.Errorf("unsupported scenario file %s: want .yaml, .yml or .cue", path)
	}
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and that every
// step and assertion refers to a name that exists by the time it runs.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Quantities) == 0 {
		return fmt.Errorf("quantities map is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for name, q := range s.Quantities {
		switch q.Scale {
		case "", "minutes", "hours":
		default:
			return fmt.Errorf("quantities[%s]: unknown scale %q", name, q.Scale)
		}
	}

	bound := make(map[string]bool, len(s.Quantities)+len(s.Steps))
	for name := range s.Quantities {
		bound[name] = true
	}
	steps := make(map[string]bool, len(s.Steps))

	for i, step := range s.Steps {
		if step.Let == "" {
			return fmt.Errorf("steps[%d]: let is required", i)
		}
		if bound[step.Let] {
			return fmt.Errorf("steps[%d]: %q is already bound", i, step.Let)
		}
		if step.Lhs == "" {
			return fmt.Errorf("steps[%d]: lhs is required", i)
		}
		if !bound[step.Lhs] {
			return fmt.Errorf("steps[%d]: lhs %q is not bound", i, step.Lhs)
		}

		switch {
		case isBinary(step.Op):
			if step.Rhs == "" {
				return fmt.Errorf("steps[%d]: rhs is required for %s", i, step.Op)
			}
			if !bound[step.Rhs] {
				return fmt.Errorf("steps[%d]: rhs %q is not bound", i, step.Rhs)
			}
		case isUnary(step.Op):
			if step.Rhs != "" {
				return fmt.Errorf("steps[%d]: rhs is not allowed for %s", i, step.Op)
			}
		case step.Op == "":
			return fmt.Errorf("steps[%d]: op is required", i)
		default:
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}

		switch step.ExpectError {
		case "":
		case ErrDimensionMismatch:
			if step.Op != OpAdd && step.Op != OpSub {
				return fmt.Errorf("steps[%d]: only add and sub can fail", i)
			}
		default:
			return fmt.Errorf("steps[%d]: unknown expect_error %q", i, step.ExpectError)
		}

		// A step expected to fail binds nothing.
		if step.ExpectError == "" {
			bound[step.Let] = true
		}
		steps[step.Let] = true
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a, bound, steps); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, bound, steps map[string]bool) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertDimensionEquals, AssertEncodesAs, AssertRenders, AssertValueEquals:
		if a.Quantity == "" {
			return fmt.Errorf("assertions[%d]: quantity is required for %s", index, a.Type)
		}
		if !bound[a.Quantity] {
			return fmt.Errorf("assertions[%d]: quantity %q is not bound", index, a.Quantity)
		}
	case AssertStepFails:
		if a.Step == "" {
			return fmt.Errorf("assertions[%d]: step is required for step_fails", index)
		}
		if !steps[a.Step] {
			return fmt.Errorf("assertions[%d]: no step named %q", index, a.Step)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	switch a.Type {
	case AssertRenders:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for renders", index)
		}
	case AssertValueEquals:
		if a.Value == nil {
			return fmt.Errorf("assertions[%d]: value is required for value_equals", index)
		}
	}
	return nil
}
