// Package report evaluates separation-energy scenarios and renders them as
// text, JSON or a concentration-dependence plot.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/mixing-energy/internal/mixing"
)

// SweepSpec configures the concentration curve of a report.
type SweepSpec struct {
	// Min and Max bound the mole fraction.
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`

	// Points is the number of samples; 0 disables the curve and other values
	// below 2 are rejected.
	Points int `yaml:"points" json:"points"`

	// Spacing is "log" or "linear".
	Spacing string `yaml:"spacing" json:"spacing"`
}

// Scenario describes one state point plus the capture task to scale it to.
type Scenario struct {
	// Name labels the scenario in reports.
	Name string `yaml:"name" json:"name"`

	// Species is the display name of the minority species.
	Species string `yaml:"species" json:"species"`

	// MoleFraction is x1 of the minority species.
	MoleFraction float64 `yaml:"mole_fraction" json:"mole_fraction"`

	// TemperatureK is the absolute temperature.
	TemperatureK float64 `yaml:"temperature_k" json:"temperature_k"`

	// MolarMass is the minority species molar mass in g/mol.
	MolarMass float64 `yaml:"molar_mass_g_per_mol" json:"molar_mass_g_per_mol"`

	// GasConstant overrides R in J/(K·mol) when set.
	GasConstant *float64 `yaml:"gas_constant,omitempty" json:"gas_constant,omitempty"`

	// YearDays overrides the length of the year used by GW·yr when set.
	YearDays *float64 `yaml:"year_days,omitempty" json:"year_days,omitempty"`

	// CapturedMassKg is the total mass to separate; 0 skips the capture totals.
	CapturedMassKg float64 `yaml:"captured_mass_kg" json:"captured_mass_kg"`

	// CaptureYears spreads the capture over this many years to report an
	// average power; 0 skips it.
	CaptureYears float64 `yaml:"capture_years" json:"capture_years"`

	// Sweep configures the concentration curve.
	Sweep SweepSpec `yaml:"sweep" json:"sweep"`
}

// DefaultScenario returns CO2 at 411 ppm and 293 K, captured at 10 Gt per year.
func DefaultScenario() Scenario {
	return Scenario{
		Name:           "atmospheric-co2",
		Species:        "CO2",
		MoleFraction:   mixing.AtmosphericCO2Fraction,
		TemperatureK:   mixing.AmbientTemperature,
		MolarMass:      mixing.MolarMassCO2,
		CapturedMassKg: 10 * mixing.GigatonneKg,
		CaptureYears:   1,
		Sweep: SweepSpec{
			Min:     1e-4,
			Max:     1,
			Points:  200,
			Spacing: "log",
		},
	}
}

// LoadScenario reads a YAML scenario file. Fields missing from the file keep
// their DefaultScenario values.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes YAML scenario data on top of DefaultScenario.
// Unknown keys are rejected.
func ParseScenario(data []byte) (Scenario, error) {
	sc := DefaultScenario()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}
	return sc, nil
}

// Constants returns the mixing constants for the scenario: its molar mass
// and any explicit overrides applied to mixing.DefaultConstants. Values are
// not checked here; see mixing.Constants.Validate.
func (s Scenario) Constants() mixing.Constants {
	c := mixing.DefaultConstants()
	c.MolarMass = s.MolarMass
	if s.GasConstant != nil {
		c.GasConstant = *s.GasConstant
	}
	if s.YearDays != nil {
		c = c.WithYearDays(*s.YearDays)
	}
	return c
}

// SweepConfig converts the sweep section into a mixing.SweepConfig.
func (s SweepSpec) SweepConfig() (mixing.SweepConfig, error) {
	spacing, err := mixing.ParseSpacing(s.Spacing)
	if err != nil {
		return mixing.SweepConfig{}, err
	}
	return mixing.SweepConfig{Min: s.Min, Max: s.Max, Points: s.Points, Spacing: spacing}, nil
}
