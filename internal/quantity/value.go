package quantity

import (
	"fmt"

	"github.com/roach88/siunit/internal/unit"
)

// Number is the numeric payload of a Value. Every member can represent
// 3600, which rules out the 8-bit integer types.
type Number interface {
	~int | ~int16 | ~int32 | ~int64 |
		~uint | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Dimension is satisfied by unit.Vector and unit.Composite.
type Dimension[D any] interface {
	Multiply(D) D
	Divide(D) D
	Equal(D) bool
	ToDerived() unit.Composite
	String() string
}

// Value is a number tagged with a dimension.
type Value[D Dimension[D], N Number] struct {
	dim    D
	number N
}

// Base is a Value whose dimension is a pure base vector.
type Base[N Number] = Value[unit.Vector, N]

// Derived is a Value whose dimension may carry named-unit slots.
type Derived[N Number] = Value[unit.Composite, N]

// New binds n to dim.
func New[D Dimension[D], N Number](dim D, n N) Value[D, N] {
	return Value[D, N]{dim: dim, number: n}
}

// Dimension returns the dimension of v.
func (v Value[D, N]) Dimension() D { return v.dim }

// Number returns the numeric payload of v.
func (v Value[D, N]) Number() N { return v.number }

// Add returns v + o. The dimensions must be equal.
func (v Value[D, N]) Add(o Value[D, N]) (Value[D, N], error) {
	if !v.dim.Equal(o.dim) {
		return Value[D, N]{}, newMismatch("add", v.dim, o.dim)
	}
	return Value[D, N]{dim: v.dim, number: v.number + o.number}, nil
}

// Sub returns v - o. The dimensions must be equal.
func (v Value[D, N]) Sub(o Value[D, N]) (Value[D, N], error) {
	if !v.dim.Equal(o.dim) {
		return Value[D, N]{}, newMismatch("sub", v.dim, o.dim)
	}
	return Value[D, N]{dim: v.dim, number: v.number - o.number}, nil
}

// Mul returns v * o with the dimensions multiplied.
func (v Value[D, N]) Mul(o Value[D, N]) Value[D, N] {
	return Value[D, N]{dim: v.dim.Multiply(o.dim), number: v.number * o.number}
}

// Div returns v / o with the dimensions divided. Integer payloads follow Go
// division semantics: o must have a non-zero number or Div panics. Float
// payloads yield ±Inf or NaN instead.
func (v Value[D, N]) Div(o Value[D, N]) Value[D, N] {
	return Value[D, N]{dim: v.dim.Divide(o.dim), number: v.number / o.number}
}

// Equal reports whether v and o have equal dimensions and equal numbers.
func (v Value[D, N]) Equal(o Value[D, N]) bool {
	return v.number == o.number && v.dim.Equal(o.dim)
}

// String renders v as "<number> <dimension>", e.g. "2 s". A value whose
// dimension flattens to unitless renders as its number alone, whatever its
// encoding.
func (v Value[D, N]) String() string {
	if v.dim.ToDerived().IsUnitless() {
		return fmt.Sprint(v.number)
	}
	return fmt.Sprintf("%v %s", v.number, v.dim)
}
