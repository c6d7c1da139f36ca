package unit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestRender_Plain(t *testing.T) {
	tests := []struct {
		name string
		d    Renderable
		want string
	}{
		{"newton base", Vector{Kilogram: 1, Meter: 1, Second: -2}, "kg m / s²"},
		{"unitless vector", Unitless, "unitless"},
		{"unitless composite", Composite{}, "unitless"},
		{"only negatives", Vector{Second: -1}, "1 / s"},
		{"several negatives", Vector{Meter: -1, Second: -2}, "1 / (m s²)"},
		{"single positive", Meter.Vector(), "m"},
		{"large exponent", Vector{Meter: 12}, "m¹²"},
		{"composite with base", Joule.Composite().Multiply(Meter.Composite()), "m J"},
		{"composite slots", Farad.Composite().Divide(Sievert.Composite()).Divide(Sievert.Composite()), "F / S²"},
		{"mixed", Composite{Base: Vector{Kilogram: 1}, Slots: Slots{Sievert: 1, Joule: -1}}, "kg Sv / J"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.d, Plain))
		})
	}
}

func TestRender_Dot(t *testing.T) {
	assert.Equal(t, "kg⋅m/s²", Render(Newton.Vector(), Dot))
	assert.Equal(t, "s⁴⋅A²/(kg⋅m²)", Render(Farad.Vector(), Dot))
	assert.Equal(t, "Unitless", Render(Unitless, Dot))
}

func TestRender_StringUsesPlain(t *testing.T) {
	v := Watt.Vector()

	assert.Equal(t, Render(v, Plain), v.String())
	assert.Equal(t, "kg m² / s³", fmt.Sprint(v))
	assert.Equal(t, "W", Watt.Composite().String())
}

func TestRender_GoString(t *testing.T) {
	c := Farad.Composite().Divide(Sievert.Composite()).Divide(Sievert.Composite())

	assert.Equal(t, "Composite(farad⋅sievert⁻²)", c.GoString())
	assert.Equal(t, "Vector(kilogram⋅meter²⋅second⁻²)", Joule.Vector().GoString())
	assert.Equal(t, "Vector(unitless)", fmt.Sprintf("%#v", Unitless))
	assert.Equal(t, "Composite(unitless)", Composite{}.GoString())
}

func TestRender_Superscript(t *testing.T) {
	assert.Equal(t, "", superscript(1))
	assert.Equal(t, "²", superscript(2))
	assert.Equal(t, "⁻³", superscript(-3))
	assert.Equal(t, "¹²⁷", superscript(127))
	assert.Equal(t, "⁻¹²⁸", superscript(-128))
}

func TestRender_Styles(t *testing.T) {
	assert.Equal(t, Plain, Styles["plain"])
	assert.Equal(t, Dot, Styles["dot"])
}

func TestRender_UnitTableGolden(t *testing.T) {
	var b strings.Builder
	for _, u := range Units() {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", u.Symbol(), u.Name(), u.Vector())
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "units", []byte(b.String()))
}
