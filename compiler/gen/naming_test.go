package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"distance", "Distance"},
		{"earth_mass_ratio", "EarthMassRatio"},
		{"angular_velocity", "AngularVelocity"},
		{"luminous_intensity", "LuminousIntensity"},
		{"amount", "Amount"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, typeName(tt.kind))
	}
}

func TestExportSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"m", "M"},
		{"km", "Km"},
		{"mA", "MA"},
		{"kWh", "KWh"},
		{"earth_mass", "EarthMass"},
		{"mps", "Mps"},
		{"C", "C"},
		{"m2", "M2"},
		{"kgpm3", "Kgpm3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exportSymbol(tt.symbol))
	}
}

func TestReceiver(t *testing.T) {
	assert.Equal(t, "d", receiver("Distance"))
	assert.Equal(t, "a", receiver("AngularVelocity"))
	assert.Equal(t, "t", receiver("Time"))
}

func TestValidKindName(t *testing.T) {
	valid := []string{"distance", "earth_mass", "velocity2", "amount_of_substance"}
	for _, name := range valid {
		assert.True(t, validKindName(name), name)
	}

	invalid := []string{"", "Distance", "2fast", "earth__mass", "earth_", "_mass", "map", "type", "dist-ance"}
	for _, name := range invalid {
		assert.False(t, validKindName(name), name)
	}
}

func TestValidSymbol(t *testing.T) {
	valid := []string{"m", "km", "mA", "kWh", "earth_mass", "m2"}
	for _, sym := range valid {
		assert.True(t, validSymbol(sym), sym)
	}

	invalid := []string{"", "9m", "m/s", "m²", "_m"}
	for _, sym := range invalid {
		assert.False(t, validSymbol(sym), sym)
	}
}

func TestValidFieldIdent(t *testing.T) {
	valid := []string{"m", "kg", "val2"}
	for _, name := range valid {
		assert.True(t, validFieldIdent(name), name)
	}

	invalid := []string{"", "map", "func", "2m", "m/s"}
	for _, name := range invalid {
		assert.False(t, validFieldIdent(name), name)
	}
}

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Base", categoryTitle("base"))
	assert.Equal(t, "Electromagnetic", categoryTitle("electromagnetic"))
}
