package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/unit"

	"github.com/syssam/quanta/units"
)

func TestToGonum(t *testing.T) {
	assert.Equal(t, unit.Length(1000), units.DistanceFromKm(1.0).ToGonum())
	assert.Equal(t, unit.Mass(2.5), units.MassFromKg(2.5).ToGonum())
	assert.Equal(t, unit.Temperature(273.15), units.TemperatureFromC(0.0).ToGonum())
	assert.Equal(t, unit.Time(90), units.TimeFromMin(1.5).ToGonum())
}

func TestFromGonum(t *testing.T) {
	d := units.DistanceFromGonum[float64](unit.Length(42))
	assert.Equal(t, 42.0, d.ToM())

	m := units.MassFromGonum[float32](unit.Mass(2))
	assert.Equal(t, float32(2), m.ToKg())

	a := units.AmountFromGonum[float64](unit.Mole(3))
	assert.Equal(t, 3.0, a.ToMol())

	l := units.LuminosityFromGonum[float64](unit.LuminousIntensity(5))
	assert.Equal(t, 5.0, l.ToCd())

	c := units.CurrentFromGonum[float64](unit.Current(1.5))
	assert.Equal(t, 1.5, c.ToA())

	k := units.TemperatureFromGonum[float64](unit.Temperature(300))
	assert.Equal(t, 300.0, k.ToK())
}
