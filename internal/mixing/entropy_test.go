package mixing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropyOfMixing_Symmetric(t *testing.T) {
	fractions := []float64{1e-9, 1e-4, AtmosphericCO2Fraction, 0.1, 0.3, 0.5, 0.77, 0.999}

	for _, x := range fractions {
		s1, err := EntropyOfMixing(x, AmbientTemperature, GasConstant)
		require.NoError(t, err)
		s2, err := EntropyOfMixing(1-x, AmbientTemperature, GasConstant)
		require.NoError(t, err)

		assert.InEpsilon(t, s1, s2, 1e-6, "entropy should not depend on which species is the minority (x1=%g)", x)
	}
}

func TestEntropyOfMixing_NonNegative(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000
		s, err := EntropyOfMixing(x, AmbientTemperature, GasConstant)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s, 0.0, "x1=%g", x)
		assert.False(t, math.IsNaN(s), "x1=%g", x)
	}
}

func TestEntropyOfMixing_Limits(t *testing.T) {
	tests := []struct {
		name string
		x1   float64
		max  float64
	}{
		{"exactly zero", 0, 0},
		{"exactly one", 1, 0},
		{"trace minority", 1e-12, 1e-9},
		{"nearly pure minority", 1 - 1e-12, 1e-9},
		{"smallest subnormal", math.SmallestNonzeroFloat64, 1e-300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := EntropyOfMixing(tt.x1, AmbientTemperature, GasConstant)
			require.NoError(t, err)
			assert.False(t, math.IsNaN(s))
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, tt.max)
		})
	}
}

func TestEntropyOfMixing_EqualMixture(t *testing.T) {
	g, err := FreeEnergyOfMixing(0.5, AmbientTemperature, GasConstant)
	require.NoError(t, err)

	closedForm := -GasConstant * AmbientTemperature * math.Log(0.5)
	assert.InDelta(t, closedForm, g, 1e-9)
	assert.InDelta(t, 1688.6, g, 0.01)
}

func TestEntropyOfMixing_DomainErrors(t *testing.T) {
	tests := []struct {
		name  string
		x1    float64
		temp  float64
		r     float64
		field string
	}{
		{"negative fraction", -0.1, AmbientTemperature, GasConstant, "x1"},
		{"fraction above one", 1.1, AmbientTemperature, GasConstant, "x1"},
		{"NaN fraction", math.NaN(), AmbientTemperature, GasConstant, "x1"},
		{"zero temperature", 0.5, 0, GasConstant, "temperature"},
		{"negative temperature", 0.5, -10, GasConstant, "temperature"},
		{"infinite temperature", 0.5, math.Inf(1), GasConstant, "temperature"},
		{"zero gas constant", 0.5, AmbientTemperature, 0, "gas_constant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EntropyOfMixing(tt.x1, tt.temp, tt.r)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDomain)

			var de *DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.field, de.Field)
			assert.Equal(t, "EntropyOfMixing", de.Op)
		})
	}
}

func TestFreeEnergyOfMixing_PropagatesDomainError(t *testing.T) {
	_, err := FreeEnergyOfMixing(2, AmbientTemperature, GasConstant)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestFreeEnergyOfSeparationPerMoleMinority_Atmospheric(t *testing.T) {
	g, err := FreeEnergyOfSeparationPerMoleMinority(AtmosphericCO2Fraction, AmbientTemperature, GasConstant)
	require.NoError(t, err)

	// ≈ 21.43 kJ per mole of CO2
	assert.InDelta(t, 21430, g, 1)
}

func TestFreeEnergyOfSeparationPerMoleMinority_PureMinority(t *testing.T) {
	g, err := FreeEnergyOfSeparationPerMoleMinority(1, AmbientTemperature, GasConstant)
	require.NoError(t, err)
	assert.Equal(t, 0.0, g)
}

func TestFreeEnergyOfSeparationPerMoleMinority_DomainErrors(t *testing.T) {
	for _, x := range []float64{0, -1e-6, math.NaN(), 1.5} {
		_, err := FreeEnergyOfSeparationPerMoleMinority(x, AmbientTemperature, GasConstant)
		assert.ErrorIs(t, err, ErrDomain, "x1=%g", x)
	}
}

func TestFreeEnergyOfSeparationPerMoleMinority_DecreasingToHalf(t *testing.T) {
	xs := []float64{5e-324, 1e-320, 1e-310, 1e-300, 1e-12, 1e-9, 1e-6, 1e-4, 1e-3, 0.01, 0.05, 0.1, 0.2, 0.3, 0.4, 0.45, 0.5}

	prev := math.Inf(1)
	for _, x := range xs {
		g, err := FreeEnergyOfSeparationPerMoleMinority(x, AmbientTemperature, GasConstant)
		require.NoError(t, err)
		assert.Less(t, g, prev, "separation energy should fall as x1 rises (x1=%g)", x)
		prev = g
	}
}

func TestFreeEnergyOfSeparationPerMoleMinority_Diverges(t *testing.T) {
	at := func(x float64) float64 {
		g, err := FreeEnergyOfSeparationPerMoleMinority(x, AmbientTemperature, GasConstant)
		require.NoError(t, err)
		require.False(t, math.IsInf(g, 0) || math.IsNaN(g), "x1=%g", x)
		return g
	}

	dilute := at(0.1)
	assert.Greater(t, at(1e-6), 4*dilute)
	assert.Greater(t, at(1e-100), 50*dilute)
	assert.Greater(t, at(1e-300), at(1e-100))

	// subnormal fractions keep growing
	assert.Greater(t, at(1e-310), at(1e-300))
	assert.Greater(t, at(1e-320), at(1e-310))
	assert.Greater(t, at(5e-324), at(1e-320))

	// RT·(ln(1/x1) + 1) for a trace species
	rt := GasConstant * AmbientTemperature
	assert.InEpsilon(t, rt*(math.Log(1e12)+1), at(1e-12), 1e-6)

	// smallest subnormal is 2^-1074
	assert.InEpsilon(t, rt*(1074*math.Ln2+1), at(5e-324), 1e-9)
	assert.InDelta(t, 1.8160e6, at(5e-324), 1e3)
}

func TestLogx(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{1, 0},
		{math.E, 1},
		{1e-300, -300 * math.Ln10},
		{1e-310, -310 * math.Ln10},
		{5e-324, -1074 * math.Ln2},
	}
	for _, tt := range tests {
		assert.InEpsilon(t, tt.want+1, logx(tt.x)+1, 1e-12, "x=%g", tt.x)
	}
}
