package unit

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// FromExponents builds a Composite from a symbol-to-exponent map. Axis
// symbols land in Base, named-unit symbols in Slots. Names are accepted as
// well as symbols; repeated units are summed.
//
// Example: FromExponents(map[string]int{"kg": 1, "m": 1, "J": 1})
func FromExponents(exps map[string]int) (Composite, error) {
	var c Composite
	for _, key := range slices.Sorted(maps.Keys(exps)) {
		u, ok := Lookup(key)
		if !ok {
			return Composite{}, NewUnknownSymbolError(key)
		}
		switch u := u.(type) {
		case Axis:
			n, err := checked(int(c.Base[u])+exps[key], "build", u.Symbol())
			if err != nil {
				return Composite{}, err
			}
			c.Base[u] = n
		case Named:
			n, err := checked(int(c.Slots[u])+exps[key], "build", u.Symbol())
			if err != nil {
				return Composite{}, err
			}
			c.Slots[u] = n
		}
	}
	return c, nil
}

// VectorFromExponents is FromExponents restricted to base axes. Named-unit
// symbols are flattened into the vector.
func VectorFromExponents(exps map[string]int) (Vector, error) {
	c, err := FromExponents(exps)
	if err != nil {
		return Vector{}, err
	}
	return c.Flatten(), nil
}

// Exponents returns the non-zero exponents keyed by symbol.
func (v Vector) Exponents() map[string]int {
	out := make(map[string]int)
	for i, n := range v {
		if n != 0 {
			out[Axis(i).Symbol()] = int(n)
		}
	}
	return out
}

// NamedExponents returns the non-zero slot exponents keyed by symbol.
func (s Slots) NamedExponents() map[string]int {
	out := make(map[string]int)
	for i, n := range s {
		if n != 0 {
			out[Named(i).Symbol()] = int(n)
		}
	}
	return out
}

// MarshalJSON encodes v as {"kg":1,"m":2,"s":-2}, omitting zero exponents.
func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Exponents())
}

// UnmarshalJSON decodes the MarshalJSON form. Only axis symbols are accepted.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var exps map[string]int
	if err := json.Unmarshal(data, &exps); err != nil {
		return fmt.Errorf("vector: %w", err)
	}
	c, err := FromExponents(exps)
	if err != nil {
		return fmt.Errorf("vector: %w", err)
	}
	if c.HasSlots() {
		return fmt.Errorf("vector: named units not allowed in base exponents")
	}
	*v = c.Base
	return nil
}

type compositeJSON struct {
	Base  Vector         `json:"base"`
	Named map[string]int `json:"named"`
}

// MarshalJSON encodes c as {"base":{...},"named":{"J":1}}.
func (c Composite) MarshalJSON() ([]byte, error) {
	return json.Marshal(compositeJSON{Base: c.Base, Named: c.Slots.NamedExponents()})
}

// UnmarshalJSON decodes the MarshalJSON form.
func (c *Composite) UnmarshalJSON(data []byte) error {
	var raw compositeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("composite: %w", err)
	}
	named, err := FromExponents(raw.Named)
	if err != nil {
		return fmt.Errorf("composite: %w", err)
	}
	if named.Base != Unitless {
		return fmt.Errorf("composite: base axes not allowed in named exponents")
	}
	*c = Composite{Base: raw.Base, Slots: named.Slots}
	return nil
}
