// Package base builds quantity values over pure base-exponent dimensions.
//
// Named-unit factories return the flattened vector, so base.Joules(1) has
// dimension kg m² / s².
package base

import (
	"github.com/roach88/siunit/internal/quantity"
	"github.com/roach88/siunit/internal/unit"
)

// Scalar returns a unitless value.
func Scalar[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Unitless, n)
}

// Kilograms returns n kilograms.
func Kilograms[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Kilogram.Vector(), n)
}

// Meters returns n meters.
func Meters[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Meter.Vector(), n)
}

// Seconds returns n seconds.
func Seconds[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Second.Vector(), n)
}

// Moles returns n moles.
func Moles[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Mole.Vector(), n)
}

// Amperes returns n amperes.
func Amperes[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Ampere.Vector(), n)
}

// Kelvin returns n kelvin.
func Kelvin[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Kelvin.Vector(), n)
}

// Candela returns n candela.
func Candela[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Candela.Vector(), n)
}

// Hertz returns n hertz.
// The dimension is the flattened vector, s⁻¹.
func Hertz[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Hertz.Vector(), n)
}

// Newtons returns n newtons.
func Newtons[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Newton.Vector(), n)
}

// Pascals returns n pascals.
func Pascals[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Pascal.Vector(), n)
}

// Joules returns n joules.
func Joules[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Joule.Vector(), n)
}

// Watts returns n watts.
func Watts[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Watt.Vector(), n)
}

// Coulombs returns n coulombs.
func Coulombs[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Coulomb.Vector(), n)
}

// Volts returns n volts.
func Volts[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Volt.Vector(), n)
}

// Farads returns n farads.
func Farads[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Farad.Vector(), n)
}

// Ohms returns n ohms.
func Ohms[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Ohm.Vector(), n)
}

// Siemens returns n siemens.
func Siemens[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Siemens.Vector(), n)
}

// Webers returns n webers.
func Webers[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Weber.Vector(), n)
}

// Teslas returns n teslas.
func Teslas[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Tesla.Vector(), n)
}

// Henries returns n henries.
func Henries[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Henry.Vector(), n)
}

// Lux returns n lux.
func Lux[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Lux.Vector(), n)
}

// Becquerels returns n becquerels.
func Becquerels[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Becquerel.Vector(), n)
}

// Grays returns n grays.
func Grays[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Gray.Vector(), n)
}

// Sieverts returns n sieverts.
func Sieverts[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Sievert.Vector(), n)
}

// Katals returns n katals.
func Katals[N quantity.Number](n N) quantity.Base[N] {
	return quantity.New(unit.Katal.Vector(), n)
}

// Minutes returns n minutes as seconds.
func Minutes[N quantity.Number](n N) quantity.Base[N] {
	return Seconds(n * quantity.SecondsPerMinute)
}

// Hours returns n hours as seconds.
func Hours[N quantity.Number](n N) quantity.Base[N] {
	return Seconds(n * quantity.SecondsPerHour)
}
