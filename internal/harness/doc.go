// Package harness runs scripted quantity scenarios and checks the results.
//
// # Scenario Format
//
// Scenarios are defined in YAML (or CUE, see LoadScenarioCUE) with the
// following structure:
//
//	name: power_from_energy
//	description: "J / s compares equal to W"
//	quantities:
//	  energy: { value: 6, named: { J: 1 } }
//	  time:   { value: 2, base: { s: 1 } }
//	  other:  { value: 1, named: { W: 1 } }
//	steps:
//	  - { let: power, op: div, lhs: energy, rhs: time }
//	  - { let: total, op: add, lhs: power, rhs: other }
//	  - { let: bad, op: add, lhs: energy, rhs: time, expect_error: dimension_mismatch }
//	assertions:
//	  - { type: dimension_equals, quantity: total, named: { W: 1 } }
//	  - { type: value_equals, quantity: total, value: 4 }
//	  - { type: step_fails, step: bad }
//
// # Operations
//
// add and sub require equal dimensions and fail with dimension_mismatch
// otherwise. mul and div always succeed. simplify, flatten and expand take
// a single operand (lhs).
//
// # Assertion Types
//
//   - dimension_equals: flattened dimensions match
//   - encodes_as: base and named exponents match field by field
//   - renders: the dimension renders as text in the given style
//   - value_equals: the number matches within ValueTolerance
//   - step_fails: the named step failed with dimension_mismatch
//
// # Deterministic Testing
//
// Quantities are bound in name order and steps run in file order, so the
// trace of a scenario never changes between runs. MarshalTrace gives the
// canonical JSON used for golden files.
package harness
