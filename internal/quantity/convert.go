package quantity

// Scaling constants used by the minute and hour factories.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
)

// ToDerived wraps the base vector of v into a composite with no named
// slots. The number is unchanged.
func ToDerived[N Number](v Base[N]) Derived[N] {
	return New(v.dim.ToDerived(), v.number)
}

// ToBase flattens every named slot of v into base exponents.
func ToBase[N Number](v Derived[N]) Base[N] {
	return New(v.dim.Flatten(), v.number)
}

// Derive simplifies the base vector of v into named units.
func Derive[N Number](v Base[N]) Derived[N] {
	return New(v.dim.Derive(), v.number)
}

// Simplify rewrites the dimension of v into a lower-magnitude encoding.
// The result is Equal to v.
func Simplify[N Number](v Derived[N]) Derived[N] {
	return New(v.dim.Simplify(), v.number)
}

// Expand rewrites every named slot of v back into base exponents, keeping
// the composite form.
func Expand[N Number](v Derived[N]) Derived[N] {
	return New(v.dim.Expand(), v.number)
}

