package unit

import "math"

// Vector is a dimension expressed purely as exponents of the SI base
// quantities, indexed by Axis.
//
// Example: Vector{Kilogram: 1, Meter: 2, Second: -2} is the dimension of
// energy.
type Vector [AxisCount]int8

// Unitless is the multiplicative identity. It is also the zero Vector.
var Unitless = Vector{}

// Multiply adds exponents elementwise, saturating at the int8 bounds.
func (v Vector) Multiply(o Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = saturate(int(v[i]) + int(o[i]))
	}
	return out
}

// Divide subtracts exponents elementwise, saturating at the int8 bounds.
func (v Vector) Divide(o Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = saturate(int(v[i]) - int(o[i]))
	}
	return out
}

// CheckedMultiply is Multiply but returns an OVERFLOW error instead of
// saturating.
func (v Vector) CheckedMultiply(o Vector) (Vector, error) {
	var out Vector
	for i := range v {
		n, err := checked(int(v[i])+int(o[i]), "multiply", Axis(i).Symbol())
		if err != nil {
			return Vector{}, err
		}
		out[i] = n
	}
	return out, nil
}

// CheckedDivide is Divide but returns an OVERFLOW error instead of
// saturating.
func (v Vector) CheckedDivide(o Vector) (Vector, error) {
	var out Vector
	for i := range v {
		n, err := checked(int(v[i])-int(o[i]), "divide", Axis(i).Symbol())
		if err != nil {
			return Vector{}, err
		}
		out[i] = n
	}
	return out, nil
}

// Magnitude is the sum of absolute exponents. It is a simplicity cost, not
// a physical quantity.
func (v Vector) Magnitude() int {
	total := 0
	for _, n := range v {
		total += abs(int(n))
	}
	return total
}

// Equal reports structural equality. For vectors this is also dimensional
// equality.
func (v Vector) Equal(o Vector) bool {
	return v == o
}

// IsUnitless reports whether every exponent is zero.
func (v Vector) IsUnitless() bool {
	return v == Unitless
}

// Exponent returns the exponent on a single axis.
func (v Vector) Exponent(a Axis) int {
	return int(v[a])
}

// ToDerived wraps v into a Composite with zero named slots.
func (v Vector) ToDerived() Composite {
	return Composite{Base: v}
}

// Derive simplifies v into a readable combination of named units.
// Equivalent to v.ToDerived().Simplify().
func (v Vector) Derive() Composite {
	return v.ToDerived().Simplify()
}

func (v Vector) components() []component {
	out := make([]component, 0, AxisCount)
	for i, n := range v {
		out = append(out, component{
			symbol: Axis(i).Symbol(),
			name:   Axis(i).Name(),
			n:      int(n),
		})
	}
	return out
}

func saturate(n int) int8 {
	if n > math.MaxInt8 {
		return math.MaxInt8
	}
	if n < math.MinInt8 {
		return math.MinInt8
	}
	return int8(n)
}

func checked(n int, op, symbol string) (int8, error) {
	if n > math.MaxInt8 || n < math.MinInt8 {
		return 0, NewOverflowError(op, symbol, n)
	}
	return int8(n), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
