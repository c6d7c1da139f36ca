package unit

import (
	"strconv"
	"strings"
)

// Style controls how Render lays out components.
type Style struct {
	// Glyph joins adjacent components, e.g. " " or "⋅".
	Glyph string
	// Separator sits between numerator and denominator, e.g. " / ".
	Separator string
	// Unitless is printed for the all-zero dimension.
	Unitless string
}

// Built-in styles.
var (
	// Plain renders "kg m / s²". It is what String uses.
	Plain = Style{Glyph: " ", Separator: " / ", Unitless: "unitless"}

	// Dot renders "kg⋅m/s²".
	Dot = Style{Glyph: "⋅", Separator: "/", Unitless: "Unitless"}
)

// Styles maps style names accepted by the CLI and config to styles.
var Styles = map[string]Style{
	"plain": Plain,
	"dot":   Dot,
}

type component struct {
	symbol string
	name   string
	n      int
}

// Renderable is implemented by Vector and Composite.
type Renderable interface {
	components() []component
}

// Render formats d in the given style. Components appear in declaration
// order (base axes, then named units). Exponent 1 is bare, exponent 0 is
// omitted. Negative exponents go after the separator, parenthesised when
// there is more than one.
func Render(d Renderable, style Style) string {
	comps := d.components()

	var pos, neg []string
	for _, c := range comps {
		switch {
		case c.n > 0:
			pos = append(pos, c.symbol+superscript(c.n))
		case c.n < 0:
			neg = append(neg, c.symbol+superscript(-c.n))
		}
	}

	if len(pos) == 0 && len(neg) == 0 {
		return style.Unitless
	}

	var b strings.Builder
	if len(pos) == 0 {
		b.WriteString("1")
	} else {
		b.WriteString(strings.Join(pos, style.Glyph))
	}
	if len(neg) == 0 {
		return b.String()
	}

	b.WriteString(style.Separator)
	if len(neg) > 1 {
		b.WriteString("(")
	}
	b.WriteString(strings.Join(neg, style.Glyph))
	if len(neg) > 1 {
		b.WriteString(")")
	}
	return b.String()
}

func (v Vector) String() string { return Render(v, Plain) }

func (c Composite) String() string { return Render(c, Plain) }

// GoString renders every non-zero component by name with signed exponents,
// e.g. Vector(kilogram⋅meter²⋅second⁻²).
func (v Vector) GoString() string { return debugString("Vector", v) }

// GoString renders every non-zero component by name with signed exponents,
// e.g. Composite(farad⋅sievert⁻²).
func (c Composite) GoString() string { return debugString("Composite", c) }

func debugString(kind string, d Renderable) string {
	var parts []string
	for _, c := range d.components() {
		if c.n != 0 {
			parts = append(parts, c.name+superscript(c.n))
		}
	}
	if len(parts) == 0 {
		return kind + "(unitless)"
	}
	return kind + "(" + strings.Join(parts, "⋅") + ")"
}

var superscriptDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// superscript renders n as Unicode superscript digits. 1 renders as "".
func superscript(n int) string {
	if n == 1 {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == '-' {
			return '⁻'
		}
		return superscriptDigits[r-'0']
	}, strconv.Itoa(n))
}
