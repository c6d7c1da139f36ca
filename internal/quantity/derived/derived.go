// Package derived builds quantity values over composite dimensions.
//
// Named-unit factories set the unit's own slot, so derived.Joules(1)
// renders as "1 J". Axis factories set only the base vector.
package derived

import (
	"github.com/roach88/siunit/internal/quantity"
	"github.com/roach88/siunit/internal/unit"
)

// Scalar returns a unitless value.
func Scalar[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Unitless.ToDerived(), n)
}

// Kilograms returns n kilograms.
func Kilograms[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Kilogram.Composite(), n)
}

// Meters returns n meters.
func Meters[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Meter.Composite(), n)
}

// Seconds returns n seconds.
func Seconds[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Second.Composite(), n)
}

// Moles returns n moles.
func Moles[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Mole.Composite(), n)
}

// Amperes returns n amperes.
func Amperes[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Ampere.Composite(), n)
}

// Kelvin returns n kelvin.
func Kelvin[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Kelvin.Composite(), n)
}

// Candela returns n candela.
func Candela[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Candela.Composite(), n)
}

// Hertz returns n hertz.
func Hertz[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Hertz.Composite(), n)
}

// Newtons returns n newtons.
func Newtons[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Newton.Composite(), n)
}

// Pascals returns n pascals.
func Pascals[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Pascal.Composite(), n)
}

// Joules returns n joules.
func Joules[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Joule.Composite(), n)
}

// Watts returns n watts.
func Watts[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Watt.Composite(), n)
}

// Coulombs returns n coulombs.
func Coulombs[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Coulomb.Composite(), n)
}

// Volts returns n volts.
func Volts[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Volt.Composite(), n)
}

// Farads returns n farads.
func Farads[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Farad.Composite(), n)
}

// Ohms returns n ohms.
func Ohms[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Ohm.Composite(), n)
}

// Siemens returns n siemens.
func Siemens[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Siemens.Composite(), n)
}

// Webers returns n webers.
func Webers[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Weber.Composite(), n)
}

// Teslas returns n teslas.
func Teslas[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Tesla.Composite(), n)
}

// Henries returns n henries.
func Henries[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Henry.Composite(), n)
}

// Lux returns n lux.
func Lux[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Lux.Composite(), n)
}

// Becquerels returns n becquerels.
func Becquerels[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Becquerel.Composite(), n)
}

// Grays returns n grays.
func Grays[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Gray.Composite(), n)
}

// Sieverts returns n sieverts.
func Sieverts[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Sievert.Composite(), n)
}

// Katals returns n katals.
func Katals[N quantity.Number](n N) quantity.Derived[N] {
	return quantity.New(unit.Katal.Composite(), n)
}

// Minutes returns n minutes as seconds.
func Minutes[N quantity.Number](n N) quantity.Derived[N] {
	return Seconds(n * quantity.SecondsPerMinute)
}

// Hours returns n hours as seconds.
func Hours[N quantity.Number](n N) quantity.Derived[N] {
	return Seconds(n * quantity.SecondsPerHour)
}
