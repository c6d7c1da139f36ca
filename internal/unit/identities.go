package unit

// Identities are Composites that flatten to Unitless but have a non-zero
// encoding, e.g. "one joule is one kilogram square meter per square second".
// Multiplying or dividing by an identity never changes the dimension, only
// how it is expressed. Simplify uses them as rewrite rules.

// basicOrder is the walk order of the basic identities. Energy first, then
// the ampere family, then time, candela and mole.
var basicOrder = [NamedCount]Named{
	Joule,
	Watt,
	Newton,
	Pascal,
	Coulomb,
	Volt,
	Farad,
	Ohm,
	Siemens,
	Weber,
	Henry,
	Tesla,
	Hertz,
	Becquerel,
	Sievert,
	Gray,
	Lux,
	Katal,
}

var (
	basicIdentities = buildBasicIdentities()
	extraIdentities = buildExtraIdentities()
	catalog         = append(append([]Composite{}, basicIdentities...), extraIdentities...)
)

// basicIdentity trades the base exponents of n for one exponent in n's slot.
func basicIdentity(n Named) Composite {
	c := Composite{Base: Unitless.Divide(n.Vector())}
	c.Slots[n] = 1
	return c
}

func buildBasicIdentities() []Composite {
	out := make([]Composite, 0, NamedCount)
	for _, n := range basicOrder {
		out = append(out, basicIdentity(n))
	}
	return out
}

func buildExtraIdentities() []Composite {
	var (
		meter    = Meter.Composite()
		meterSq  = meter.Multiply(meter)
		second   = Second.Composite()
		ampere   = Ampere.Composite()
		kilogram = Kilogram.Composite()

		newton  = Newton.Composite()
		pascal  = Pascal.Composite()
		joule   = Joule.Composite()
		watt    = Watt.Composite()
		coulomb = Coulomb.Composite()
		volt    = Volt.Composite()
		farad   = Farad.Composite()
		ohm     = Ohm.Composite()
		siemens = Siemens.Composite()
		weber   = Weber.Composite()
		tesla   = Tesla.Composite()
		henry   = Henry.Composite()
		gray    = Gray.Composite()
		sievert = Sievert.Composite()
	)

	return []Composite{
		pascal.Divide(newton.Divide(meterSq)),
		joule.Divide(newton.Multiply(meter)),
		joule.Divide(coulomb.Multiply(volt)),
		joule.Divide(watt.Multiply(second)),
		watt.Divide(joule.Divide(second)),
		watt.Divide(volt.Multiply(ampere)),
		coulomb.Divide(farad.Multiply(volt)),
		volt.Divide(watt.Divide(ampere)),
		volt.Divide(joule.Divide(coulomb)),
		farad.Divide(coulomb.Divide(volt)),
		farad.Divide(second.Divide(ohm)),
		// ohm and siemens are reciprocal
		ohm.Multiply(siemens),
		ohm.Divide(volt.Divide(ampere)),
		siemens.Divide(ampere.Divide(volt)),
		weber.Divide(joule.Divide(ampere)),
		weber.Divide(tesla.Multiply(meter).Multiply(meter)),
		weber.Divide(volt.Multiply(second)),
		tesla.Divide(volt.Multiply(second).Divide(meterSq)),
		tesla.Divide(weber.Divide(meterSq)),
		tesla.Divide(newton.Divide(ampere.Multiply(meter))),
		henry.Divide(volt.Multiply(second).Divide(ampere)),
		henry.Divide(ohm.Multiply(second)),
		henry.Divide(weber.Divide(ampere)),
		gray.Divide(joule.Divide(kilogram)),
		sievert.Divide(joule.Divide(kilogram)),
	}
}

// Identities returns the full catalog in walk order: the basic identities
// followed by the identities between named units. The slice is a copy.
func Identities() []Composite {
	return append([]Composite(nil), catalog...)
}

// BasicIdentities returns one identity per named unit, in walk order.
func BasicIdentities() []Composite {
	return append([]Composite(nil), basicIdentities...)
}

// ExtraIdentities returns the identities relating named units to each other.
func ExtraIdentities() []Composite {
	return append([]Composite(nil), extraIdentities...)
}

// BasicOrder returns the named units in the order their basic identities
// appear in the catalog.
func BasicOrder() []Named {
	return append([]Named(nil), basicOrder[:]...)
}

// IdentityOf returns the basic identity for n.
func IdentityOf(n Named) Composite {
	return basicIdentity(n)
}
