package mixing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_LogSpacing(t *testing.T) {
	sc := SweepConfig{Min: 1e-4, Max: 1, Points: 50, Spacing: Log}

	pts, err := Collect(Sweep(sc, AmbientTemperature, GasConstant))
	require.NoError(t, err)
	require.Len(t, pts, 50)

	assert.Equal(t, 1e-4, pts[0].MoleFraction)
	assert.Equal(t, 1.0, pts[len(pts)-1].MoleFraction)

	for i, p := range pts {
		assert.False(t, math.IsNaN(p.SeparationPerMole) || math.IsInf(p.SeparationPerMole, 0), "point %d", i)
		assert.InDelta(t, 100*p.MoleFraction, p.MolePercent, 1e-12)
		if i > 0 {
			assert.Greater(t, p.MoleFraction, pts[i-1].MoleFraction, "point %d", i)
		}
	}

	// Evenly spaced in log10: one decade per ~12.25 steps.
	ratio := pts[1].MoleFraction / pts[0].MoleFraction
	assert.InEpsilon(t, math.Pow(1e4, 1.0/49), ratio, 1e-9)
}

func TestSweep_LinearSpacing(t *testing.T) {
	sc := SweepConfig{Min: 0.1, Max: 0.5, Points: 5, Spacing: Linear}

	pts, err := Collect(Sweep(sc, AmbientTemperature, GasConstant))
	require.NoError(t, err)
	require.Len(t, pts, 5)

	want := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	for i, p := range pts {
		assert.InDelta(t, want[i], p.MoleFraction, 1e-12)

		g, err := FreeEnergyOfSeparationPerMoleMinority(p.MoleFraction, AmbientTemperature, GasConstant)
		require.NoError(t, err)
		assert.Equal(t, g, p.SeparationPerMole)
	}
}

func TestSweep_Restartable(t *testing.T) {
	seq := Sweep(SweepConfig{Min: 1e-6, Max: 0.9, Points: 20, Spacing: Log}, AmbientTemperature, GasConstant)

	first, err := Collect(seq)
	require.NoError(t, err)
	second, err := Collect(seq)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSweep_Lazy(t *testing.T) {
	seq := Sweep(SweepConfig{Min: 1e-4, Max: 1, Points: 1000, Spacing: Log}, AmbientTemperature, GasConstant)

	pulled := 0
	for _, err := range seq {
		require.NoError(t, err)
		pulled++
		if pulled == 3 {
			break
		}
	}
	assert.Equal(t, 3, pulled)
}

func TestSweep_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		sc   SweepConfig
		temp float64
	}{
		{"too few points", SweepConfig{Min: 0.1, Max: 0.5, Points: 1}, AmbientTemperature},
		{"zero lower bound", SweepConfig{Min: 0, Max: 0.5, Points: 10, Spacing: Log}, AmbientTemperature},
		{"zero lower bound linear", SweepConfig{Min: 0, Max: 0.5, Points: 10}, AmbientTemperature},
		{"upper bound above one", SweepConfig{Min: 0.1, Max: 1.5, Points: 10}, AmbientTemperature},
		{"inverted bounds", SweepConfig{Min: 0.5, Max: 0.1, Points: 10}, AmbientTemperature},
		{"unknown spacing", SweepConfig{Min: 0.1, Max: 0.5, Points: 10, Spacing: Spacing(7)}, AmbientTemperature},
		{"bad temperature", SweepConfig{Min: 0.1, Max: 0.5, Points: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 0
			var last error
			for _, err := range Sweep(tt.sc, tt.temp, GasConstant) {
				n++
				last = err
			}
			assert.Equal(t, 1, n)
			assert.ErrorIs(t, last, ErrDomain)

			_, err := Collect(Sweep(tt.sc, tt.temp, GasConstant))
			assert.ErrorIs(t, err, ErrDomain)
		})
	}
}

func TestParseSpacing(t *testing.T) {
	tests := []struct {
		in      string
		want    Spacing
		wantErr bool
	}{
		{"linear", Linear, false},
		{"", Linear, false},
		{"LOG", Log, false},
		{"logarithmic", Log, false},
		{"cubic", Linear, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpacing(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDomain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}
