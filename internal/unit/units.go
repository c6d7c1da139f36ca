package unit

import "strings"

// Unit is implemented by Axis and Named: anything with a fixed symbol and a
// fixed dimension.
type Unit interface {
	Symbol() string
	Name() string
	Vector() Vector
	Composite() Composite
}

// Axis identifies one SI base quantity. Axis values index Vector.
type Axis uint8

// Base quantities in declaration order. Rendering follows this order.
const (
	Kilogram Axis = iota
	Meter
	Second
	Mole
	Ampere
	Kelvin
	Candela

	AxisCount = int(Candela) + 1
)

var axisInfo = [AxisCount]struct {
	symbol string
	name   string
}{
	Kilogram: {"kg", "kilogram"},
	Meter:    {"m", "meter"},
	Second:   {"s", "second"},
	Mole:     {"mol", "mole"},
	Ampere:   {"A", "ampere"},
	Kelvin:   {"K", "kelvin"},
	Candela:  {"cd", "candela"},
}

// Symbol returns the SI symbol, e.g. "kg".
func (a Axis) Symbol() string { return axisInfo[a].symbol }

// Name returns the lower-case SI name, e.g. "kilogram".
func (a Axis) Name() string { return axisInfo[a].name }

// Vector returns the vector with exponent 1 on this axis.
func (a Axis) Vector() Vector {
	var v Vector
	v[a] = 1
	return v
}

// Composite returns a.Vector() with no named slots.
func (a Axis) Composite() Composite {
	return a.Vector().ToDerived()
}

func (a Axis) String() string { return a.Symbol() }

// Named identifies one named derived unit. Named values index Slots.
type Named uint8

// Named derived units in slot order.
const (
	Hertz Named = iota
	Newton
	Pascal
	Joule
	Watt
	Coulomb
	Volt
	Farad
	Ohm
	Siemens
	Weber
	Tesla
	Henry
	Lux
	Becquerel
	Gray
	Sievert
	Katal

	NamedCount = int(Katal) + 1
)

var namedInfo = [NamedCount]struct {
	symbol string
	name   string
	base   Vector
}{
	Hertz:     {"Hz", "hertz", Vector{Second: -1}},
	Newton:    {"N", "newton", Vector{Kilogram: 1, Meter: 1, Second: -2}},
	Pascal:    {"Pa", "pascal", Vector{Kilogram: 1, Meter: -1, Second: -2}},
	Joule:     {"J", "joule", Vector{Kilogram: 1, Meter: 2, Second: -2}},
	Watt:      {"W", "watt", Vector{Kilogram: 1, Meter: 2, Second: -3}},
	Coulomb:   {"C", "coulomb", Vector{Second: 1, Ampere: 1}},
	Volt:      {"V", "volt", Vector{Kilogram: 1, Meter: 2, Second: -3, Ampere: -1}},
	Farad:     {"F", "farad", Vector{Kilogram: -1, Meter: -2, Second: 4, Ampere: 2}},
	Ohm:       {"Ω", "ohm", Vector{Kilogram: 1, Meter: 2, Second: -3, Ampere: -2}},
	Siemens:   {"S", "siemens", Vector{Kilogram: -1, Meter: -2, Second: 3, Ampere: 2}},
	Weber:     {"Wb", "weber", Vector{Kilogram: 1, Meter: 2, Second: -2, Ampere: -1}},
	Tesla:     {"T", "tesla", Vector{Kilogram: 1, Second: -2, Ampere: -1}},
	Henry:     {"H", "henry", Vector{Kilogram: 1, Meter: 2, Second: -2, Ampere: -2}},
	Lux:       {"lx", "lux", Vector{Meter: -2, Candela: 1}},
	Becquerel: {"Bq", "becquerel", Vector{Second: -1}},
	Gray:      {"Gy", "gray", Vector{Meter: 2, Second: -2}},
	Sievert:   {"Sv", "sievert", Vector{Meter: 2, Second: -2}},
	Katal:     {"kat", "katal", Vector{Mole: 1, Second: -1}},
}

// Symbol returns the SI symbol, e.g. "J".
func (n Named) Symbol() string { return namedInfo[n].symbol }

// Name returns the lower-case SI name, e.g. "joule".
func (n Named) Name() string { return namedInfo[n].name }

// Vector returns the base-quantity equivalent of one n.
func (n Named) Vector() Vector { return namedInfo[n].base }

// Composite returns the single-slot encoding of n (exponent 1 in its own
// slot, zero base).
func (n Named) Composite() Composite {
	var c Composite
	c.Slots[n] = 1
	return c
}

func (n Named) String() string { return n.Symbol() }

// Units returns every axis followed by every named unit, in declaration order.
func Units() []Unit {
	units := make([]Unit, 0, AxisCount+NamedCount)
	for a := range AxisCount {
		units = append(units, Axis(a))
	}
	for n := range NamedCount {
		units = append(units, Named(n))
	}
	return units
}

var lookupTable = buildLookup()

func buildLookup() map[string]Unit {
	table := make(map[string]Unit, 2*(AxisCount+NamedCount))
	for _, u := range Units() {
		table[u.Symbol()] = u
		table[u.Name()] = u
	}
	return table
}

// Lookup resolves a symbol ("J", "Ω") or name ("joule", "ohm") to its unit.
// Symbols are case-sensitive ("S" is siemens, "s" is second); names are not.
func Lookup(s string) (Unit, bool) {
	if u, ok := lookupTable[s]; ok {
		return u, true
	}
	u, ok := lookupTable[strings.ToLower(s)]
	if !ok {
		return nil, false
	}
	// Don't let case folding turn a symbol into a different symbol ("S" -> "s").
	if u.Name() != strings.ToLower(s) {
		return nil, false
	}
	return u, true
}
