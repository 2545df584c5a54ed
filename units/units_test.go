package units_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/quanta/units"
)

var _ fmt.Stringer = units.Distance[float64]{}

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"km to m", units.DistanceFromKm(1.0).ToM(), 1000},
		{"cm to m", units.DistanceFromCm(250.0).ToM(), 2.5},
		{"au to m", units.DistanceFromAu(1.0).ToM(), 1.495978707e+11},
		{"earth mass to kg", units.MassFromEarthMass(1.0).ToKg(), 5.9722e+24},
		{"solar mass to kg", units.MassFromSolarMass(1.0).ToKg(), 1.98855e+30},
		{"hours to seconds", units.TimeFromHr(2.0).ToS(), 7200},
		{"days to hours", units.TimeFromDays(1.0).ToHr(), 24},
		{"liters to cubic meters", units.VolumeFromL(500.0).ToM3(), 0.5},
		{"kph to mps", units.VelocityFromKph(36.0).ToMps(), 10},
		{"standard gravity to mps2", units.AccelerationFromG(1.0).ToMps2(), 9.80665},
		{"atm to pascals", units.PressureFromAtm(1.0).ToPa(), 101325},
		{"kwh to joules", units.EnergyFromKWh(1.0).ToJ(), 3.6e+06},
		{"horsepower to watts", units.PowerFromHp(1.0).ToW(), 745.69987158227},
		{"ghz to hz", units.FrequencyFromGHz(2.4).ToHz(), 2.4e+09},
		{"ampere hours to coulombs", units.ChargeFromAh(1.0).ToC(), 3600},
		{"molar to moles per cubic meter", units.ConcentrationFromM(1.0).ToMolpm3(), 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, tt.got, 1e-12)
		})
	}
}

func TestRoundTrips(t *testing.T) {
	assert.InEpsilon(t, 2.5, units.DistanceFromKm(2.5).ToKm(), 1e-12)
	assert.InEpsilon(t, 3.25, units.MassFromTons(3.25).ToTons(), 1e-12)
	assert.InEpsilon(t, 1.5, units.DistanceFromAu(1.5).ToAu(), 1e-12)
	assert.InEpsilon(t, 42.0, units.AmountFromCount(42.0).ToCount(), 1e-12)
	assert.InEpsilon(t, 0.75, units.EnergyFromCal(0.75).ToCal(), 1e-12)
	assert.InEpsilon(t, 12.5, units.MomentumFromGcmps(12.5).ToGcmps(), 1e-12)
}

func TestTemperatureAffine(t *testing.T) {
	assert.InDelta(t, 273.15, units.TemperatureFromC(0.0).ToK(), 1e-9)
	assert.InDelta(t, 0.0, units.TemperatureFromK(273.15).ToC(), 1e-9)
	assert.InDelta(t, 273.15, units.TemperatureFromF(32.0).ToK(), 1e-9)
	assert.InDelta(t, 212.0, units.TemperatureFromC(100.0).ToF(), 1e-9)
	assert.InDelta(t, 37.0, units.TemperatureFromF(98.6).ToC(), 1e-9)
}

func TestDerivedKinds(t *testing.T) {
	v := units.DistanceFromM(10.0).DivTime(units.TimeFromS(2.0))
	assert.Equal(t, 5.0, v.ToMps())

	f := units.MassFromKg(2.0).MulAcceleration(units.AccelerationFromMps2(3.0))
	assert.Equal(t, 6.0, f.ToN())

	e := f.MulDistance(units.DistanceFromM(4.0))
	assert.Equal(t, 24.0, e.ToJ())

	p := e.DivTime(units.TimeFromS(8.0))
	assert.Equal(t, 3.0, p.ToW())

	pr := f.DivArea(units.AreaFromM2(2.0))
	assert.Equal(t, 3.0, pr.ToPa())

	a := units.DistanceFromM(3.0).MulDistance(units.DistanceFromM(4.0))
	assert.Equal(t, 12.0, a.ToM2())

	vol := a.MulDistance(units.DistanceFromM(2.0))
	assert.Equal(t, 24.0, vol.ToM3())

	d := units.MassFromKg(10.0).DivVolume(units.VolumeFromM3(4.0))
	assert.Equal(t, 2.5, d.ToKgpm3())

	q := units.CurrentFromA(2.0).MulTime(units.TimeFromS(3.0))
	assert.Equal(t, 6.0, q.ToC())

	u := units.EnergyFromJ(10.0).DivCharge(units.ChargeFromC(2.0))
	assert.Equal(t, 5.0, u.ToV())

	mom := units.MassFromKg(2.0).MulVelocity(units.VelocityFromMps(3.0))
	assert.Equal(t, 6.0, mom.ToKgmps())

	c := units.AmountFromMol(6.0).DivVolume(units.VolumeFromM3(2.0))
	assert.Equal(t, 3.0, c.ToMolpm3())
}

func TestDerivedKindsInverse(t *testing.T) {
	// Each relation is usable from both factors and from the product.
	e := units.VoltageFromV(5.0).MulCharge(units.ChargeFromC(2.0))
	assert.Equal(t, 10.0, e.ToJ())
	assert.Equal(t, 5.0, e.DivCharge(units.ChargeFromC(2.0)).ToV())
	assert.Equal(t, 2.0, e.DivVoltage(units.VoltageFromV(5.0)).ToC())

	mom := units.MomentumFromKgmps(6.0)
	assert.Equal(t, 2.0, mom.DivMass(units.MassFromKg(3.0)).ToMps())
	assert.Equal(t, 3.0, mom.DivVelocity(units.VelocityFromMps(2.0)).ToKg())
	assert.Equal(t, 12.0, mom.MulVelocity(units.VelocityFromMps(2.0)).ToJ())
}

func TestScalarArithmetic(t *testing.T) {
	d := units.DistanceFromM(10.0)
	assert.Equal(t, 15.0, d.Add(units.DistanceFromM(5.0)).ToM())
	assert.Equal(t, 6.0, d.Sub(units.DistanceFromM(4.0)).ToM())
	assert.Equal(t, 25.0, d.Mul(2.5).ToM())
	assert.Equal(t, 2.5, d.Div(4.0).ToM())
	assert.Equal(t, 2.0, d.Ratio(units.DistanceFromM(5.0)))
	assert.Equal(t, -10.0, d.Neg().ToM())
	assert.Equal(t, 30.0, d.MulInt(3).ToM())
	assert.Equal(t, 5.0, d.MulF32(0.5).ToM())
	assert.Equal(t, 20.0, d.MulI64(2).ToM())
	assert.Equal(t, 2.5, d.MulF64(0.25).ToM())
}

func TestScalarAssign(t *testing.T) {
	d := units.DistanceFromM(10.0)
	d.AddAssign(units.DistanceFromM(2.0))
	assert.Equal(t, 12.0, d.ToM())
	d.SubAssign(units.DistanceFromM(4.0))
	assert.Equal(t, 8.0, d.ToM())
	d.MulAssign(2.0)
	assert.Equal(t, 16.0, d.ToM())
	d.DivAssign(4.0)
	assert.Equal(t, 4.0, d.ToM())
}

func TestReciprocal(t *testing.T) {
	assert.Equal(t, 0.5, units.TimeFromS(2.0).Inv().ToHz())
	assert.Equal(t, 0.25, units.FrequencyFromHz(4.0).Inv().ToS())
	assert.Equal(t, 1.5, units.PerTime(3.0, units.TimeFromS(2.0)).ToHz())
	assert.Equal(t, 1.5, units.PerTimeInt(3, units.TimeFromS(2.0)).ToHz())
	assert.Equal(t, 0.5, units.PerFrequency(2.0, units.FrequencyFromHz(4.0)).ToS())
	assert.Equal(t, 0.5, units.PerFrequencyF64(2.0, units.FrequencyFromHz(4.0)).ToS())
}

func TestUnitMetadata(t *testing.T) {
	assert.Equal(t, "meters", units.Distance[float64]{}.UnitName())
	assert.Equal(t, "m", units.Distance[float64]{}.UnitSymbol())
	assert.Equal(t, "m²", units.Area[float64]{}.UnitSymbol())
	assert.Equal(t, "m³", units.Volume[float64]{}.UnitSymbol())
	assert.Equal(t, "degrees kelvin", units.Temperature[float64]{}.UnitName())
	assert.Equal(t, "kilogram meters per second", units.Momentum[float64]{}.UnitName())
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.5 m", units.DistanceFromM(1.5).String())
	assert.Equal(t, "2 m²", units.AreaFromM2(2.0).String())
	assert.Equal(t, "300 K", units.TemperatureFromK(300.0).String())
	assert.Equal(t, "5 mps", units.VelocityFromMps(5.0).String())
}

func TestFloat32Storage(t *testing.T) {
	d := units.DistanceFromKm[float32](1.5)
	assert.Equal(t, float32(1500), d.ToM())
	assert.InEpsilon(t, 1.5, d.ToKm(), 1e-6)

	v := units.DistanceFromM[float32](9.0).DivTime(units.TimeFromS[float32](3.0))
	assert.Equal(t, float32(3), v.ToMps())
}
