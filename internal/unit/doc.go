// Package unit provides the dimension algebra for siunit.
//
// A dimension is an exponent vector over the seven SI base quantities
// (Vector), optionally extended with exponents for the eighteen named
// derived units (Composite). The package also owns the identity catalog
// and the greedy simplifier that turns raw base exponents into readable
// combinations of named units.
//
// Key constraints:
//   - All types are immutable values; every operation returns a new value.
//   - Composite equality is defined by flattening to a Vector. The same
//     physical dimension has many valid slot encodings, so == is disabled
//     on Composite at compile time.
//   - The identity catalog is built once at package init and its order is
//     part of the observable contract: Simplify walks it in order.
//   - Exponents are int8. Multiply and Divide saturate; the Checked
//     variants report OVERFLOW instead.
//
// This package imports nothing internal. It never logs.
package unit
