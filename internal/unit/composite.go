package unit

// Slots holds exponents of the named derived units, indexed by Named.
type Slots [NamedCount]int8

// Composite is a dimension expressed as residual base exponents plus
// named-unit exponents.
//
// Many encodings describe the same physical dimension (J/s and W, for
// example), so Composite values must be compared with Equal, never field by
// field. The blank field makes == a compile error; use Key for map keys.
type Composite struct {
	_ [0]func()

	// Base holds exponents not absorbed into any named unit.
	Base Vector

	// Slots holds the named-unit exponents.
	Slots Slots
}

// Multiply combines base exponents via Vector.Multiply and adds slot
// exponents, saturating at the int8 bounds.
func (c Composite) Multiply(o Composite) Composite {
	out := Composite{Base: c.Base.Multiply(o.Base)}
	for i := range c.Slots {
		out.Slots[i] = saturate(int(c.Slots[i]) + int(o.Slots[i]))
	}
	return out
}

// Divide combines base exponents via Vector.Divide and subtracts slot
// exponents, saturating at the int8 bounds.
func (c Composite) Divide(o Composite) Composite {
	out := Composite{Base: c.Base.Divide(o.Base)}
	for i := range c.Slots {
		out.Slots[i] = saturate(int(c.Slots[i]) - int(o.Slots[i]))
	}
	return out
}

// CheckedMultiply is Multiply but returns an OVERFLOW error instead of
// saturating.
func (c Composite) CheckedMultiply(o Composite) (Composite, error) {
	base, err := c.Base.CheckedMultiply(o.Base)
	if err != nil {
		return Composite{}, err
	}
	out := Composite{Base: base}
	for i := range c.Slots {
		n, err := checked(int(c.Slots[i])+int(o.Slots[i]), "multiply", Named(i).Symbol())
		if err != nil {
			return Composite{}, err
		}
		out.Slots[i] = n
	}
	return out, nil
}

// CheckedDivide is Divide but returns an OVERFLOW error instead of
// saturating.
func (c Composite) CheckedDivide(o Composite) (Composite, error) {
	base, err := c.Base.CheckedDivide(o.Base)
	if err != nil {
		return Composite{}, err
	}
	out := Composite{Base: base}
	for i := range c.Slots {
		n, err := checked(int(c.Slots[i])-int(o.Slots[i]), "divide", Named(i).Symbol())
		if err != nil {
			return Composite{}, err
		}
		out.Slots[i] = n
	}
	return out, nil
}

// Magnitude is the base magnitude plus the absolute value of every slot.
func (c Composite) Magnitude() int {
	total := c.Base.Magnitude()
	for _, n := range c.Slots {
		total += abs(int(n))
	}
	return total
}

// Flatten expands every named slot into its base equivalent and returns the
// resulting pure base vector. Exact and total.
func (c Composite) Flatten() Vector {
	out := c.Base
	for i, n := range c.Slots {
		base := Named(i).Vector()
		if n > 0 {
			for range int(n) {
				out = out.Multiply(base)
			}
		} else {
			for range -int(n) {
				out = out.Divide(base)
			}
		}
	}
	return out
}

// ToBase is an alias for Flatten.
func (c Composite) ToBase() Vector {
	return c.Flatten()
}

// ToDerived returns c unchanged. It lets Vector and Composite share the
// dimension constraint used by quantity.
func (c Composite) ToDerived() Composite {
	return c
}

// Key returns the canonical form of c, suitable as a map key.
func (c Composite) Key() Vector {
	return c.Flatten()
}

// Equal reports dimensional equality: both sides flatten to the same vector.
func (c Composite) Equal(o Composite) bool {
	return c.Flatten() == o.Flatten()
}

// StructurallyEqual compares the encodings field by field. Two dimensionally
// equal values may differ here; use it to pin encodings, not to compare
// dimensions.
func (c Composite) StructurallyEqual(o Composite) bool {
	return c.Base == o.Base && c.Slots == o.Slots
}

// IsUnitless reports whether c flattens to Unitless.
func (c Composite) IsUnitless() bool {
	return c.Flatten().IsUnitless()
}

// Exponent returns the slot exponent for a named unit.
func (c Composite) Exponent(n Named) int {
	return int(c.Slots[n])
}

// HasSlots reports whether any named slot is non-zero.
func (c Composite) HasSlots() bool {
	return c.Slots != Slots{}
}

// Expand rewrites every named slot back into base exponents by applying
// that unit's own basic identity, leaving a Composite with zero slots. The
// result's Base equals c.Flatten().
func (c Composite) Expand() Composite {
	out := c
	for i, n := range c.Slots {
		identity := IdentityOf(Named(i))
		if n > 0 {
			for range int(n) {
				out = out.Divide(identity)
			}
		} else {
			for range -int(n) {
				out = out.Multiply(identity)
			}
		}
	}
	return out
}

func (c Composite) components() []component {
	out := c.Base.components()
	for i, n := range c.Slots {
		out = append(out, component{
			symbol: Named(i).Symbol(),
			name:   Named(i).Name(),
			n:      int(n),
		})
	}
	return out
}
