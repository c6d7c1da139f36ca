package derived

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/siunit/internal/unit"
)

func TestTimeScaling(t *testing.T) {
	assert.True(t, Minutes(1).Equal(Seconds(60)))
	assert.True(t, Hours(1).Equal(Seconds(3600)))
	assert.True(t, Hours(0.25).Equal(Seconds(900.0)))
	assert.Equal(t, "5400 s", Hours(1.5).String())
}

func TestFactories_SetOwnSlot(t *testing.T) {
	for _, c := range []struct {
		name string
		got  unit.Composite
		n    unit.Named
	}{
		{"hertz", Hertz(1).Dimension(), unit.Hertz},
		{"ohms", Ohms(1).Dimension(), unit.Ohm},
		{"siemens", Siemens(1).Dimension(), unit.Siemens},
		{"lux", Lux(1).Dimension(), unit.Lux},
		{"sieverts", Sieverts(1).Dimension(), unit.Sievert},
	} {
		t.Run(c.name, func(t *testing.T) {
			assert.True(t, c.got.StructurallyEqual(c.n.Composite()))
		})
	}

	assert.False(t, Meters(1).Dimension().HasSlots())
}

func TestFactories_MixedArithmetic(t *testing.T) {
	// C * V = J
	e := Coulombs(2).Mul(Volts(5))
	assert.True(t, e.Equal(Joules(10)))

	got, err := e.Add(Joules(1))
	require.NoError(t, err)
	assert.Equal(t, 11, got.Number())

	_, err = e.Add(Watts(1))
	assert.Error(t, err)
}

func TestFactories_GrayAndSievertShareDimension(t *testing.T) {
	sum, err := Grays(1.0).Add(Sieverts(2.0))
	require.NoError(t, err)
	assert.Equal(t, "3 Gy", sum.String())
}
