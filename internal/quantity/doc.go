// Package quantity pairs a number with a dimension.
//
// Value is generic over the dimension encoding (unit.Vector or
// unit.Composite) and over the numeric payload. Add and Sub check that both
// operands share a dimension; Mul and Div combine dimensions freely.
//
// Key constraints:
//   - Values are immutable. Every operation returns a new Value.
//   - Dimension comparison always goes through flattening, so J/s and W
//     are the same dimension.
//   - DimensionMismatch is the only error Add and Sub return.
//
// Factories for individual units live in the base and derived
// subpackages.
package quantity
