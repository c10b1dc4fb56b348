package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/mixing-energy/internal/mixing"
)

func TestParseScenario_OverridesDefaults(t *testing.T) {
	data := []byte(`
name: flue-gas
mole_fraction: 0.12
temperature_k: 313
year_days: 365.25
sweep:
  min: 0.001
  max: 0.5
  points: 25
  spacing: linear
`)

	sc, err := ParseScenario(data)
	require.NoError(t, err)

	assert.Equal(t, "flue-gas", sc.Name)
	assert.Equal(t, 0.12, sc.MoleFraction)
	assert.Equal(t, 313.0, sc.TemperatureK)
	assert.Equal(t, "CO2", sc.Species, "unset fields keep defaults")
	assert.Equal(t, mixing.MolarMassCO2, sc.MolarMass)
	assert.Equal(t, 25, sc.Sweep.Points)
	assert.Equal(t, "linear", sc.Sweep.Spacing)

	assert.Nil(t, sc.GasConstant)

	c := sc.Constants()
	assert.Equal(t, 365.25*86400, c.SecondsPerYear)
	assert.Equal(t, mixing.GasConstant, c.GasConstant)
}

func TestParseScenario_ExplicitZeros(t *testing.T) {
	sc, err := ParseScenario([]byte(`molar_mass_g_per_mol: 0
gas_constant: 0
year_days: 0
`))
	require.NoError(t, err)

	c := sc.Constants()
	assert.Zero(t, c.MolarMass)
	assert.Zero(t, c.GasConstant)
	assert.Zero(t, c.SecondsPerYear)
	assert.ErrorIs(t, c.Validate(), mixing.ErrDomain)
}

func TestParseScenario_Empty(t *testing.T) {
	sc, err := ParseScenario(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultScenario(), sc)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"wrong type", "mole_fraction: [not, a, number]"},
		{"misspelled key", "mole_fractoin: 0.5"},
		{"misspelled sweep key", "sweep:\n  pionts: 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parsing scenario")
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\ngas_constant: 8.314\n"), 0o600))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", sc.Name)
	assert.Equal(t, 8.314, sc.Constants().GasConstant)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultScenario(t *testing.T) {
	sc := DefaultScenario()
	assert.Equal(t, mixing.AtmosphericCO2Fraction, sc.MoleFraction)
	assert.Equal(t, mixing.DefaultConstants(), sc.Constants())

	cfg, err := sc.Sweep.SweepConfig()
	require.NoError(t, err)
	assert.Equal(t, mixing.Log, cfg.Spacing)
}
