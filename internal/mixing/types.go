package mixing

// Constants holds the physical constants and unit factors used by every
// calculation. It is a plain value: copy it and override fields to change a
// single constant without affecting other callers.
type Constants struct {
	// GasConstant is R in J/(K·mol).
	GasConstant float64

	// MolarMass is the molar mass of the minority species in g/mol.
	MolarMass float64

	// SecondsPerYear is the length of the year used by GW·yr and TW·yr
	// (default: NotionalYearDays × 86400 s).
	SecondsPerYear float64

	// JoulesPerKWh is the number of joules in one kilowatt-hour.
	JoulesPerKWh float64
}

// DefaultConstants returns the reference constants for CO2 in air.
func DefaultConstants() Constants {
	return Constants{
		GasConstant:    GasConstant,
		MolarMass:      MolarMassCO2,
		SecondsPerYear: NotionalYearDays * SecondsPerDay,
		JoulesPerKWh:   JoulesPerKWh,
	}
}

// Validate returns a DomainError for the first constant that is not a finite
// positive number.
func (c Constants) Validate() error {
	const op = "Constants"
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"gas_constant", c.GasConstant},
		{"molar_mass", c.MolarMass},
		{"seconds_per_year", c.SecondsPerYear},
		{"joules_per_kwh", c.JoulesPerKWh},
	} {
		if !finitePositive(f.value) {
			return domainErr(op, f.name, f.value, "constant must be finite and positive")
		}
	}
	return nil
}

// WithYearDays returns a copy of c whose year is days long.
func (c Constants) WithYearDays(days float64) Constants {
	c.SecondsPerYear = days * SecondsPerDay
	return c
}

// Quantities contains every derived quantity for one state point.
type Quantities struct {
	// MoleFraction is the mole fraction x1 of the minority species.
	MoleFraction float64 `json:"mole_fraction"`

	// Temperature is the absolute temperature in kelvin.
	Temperature float64 `json:"temperature_k"`

	// EntropyOfMixing is the entropy of mixing per mole of mixture in J/(K·mol).
	EntropyOfMixing float64 `json:"entropy_of_mixing_j_per_k_mol"`

	// FreeEnergyOfMixing is T × EntropyOfMixing, in J per mole of mixture.
	FreeEnergyOfMixing float64 `json:"free_energy_of_mixing_j_per_mol"`

	// SeparationPerMole is the free energy of separation in J per mole of
	// minority species.
	SeparationPerMole float64 `json:"separation_j_per_mol_minority"`

	// SeparationPerKg is the free energy of separation in J per kilogram of
	// minority species.
	SeparationPerKg float64 `json:"separation_j_per_kg"`

	// SeparationKWhPerKg is SeparationPerKg expressed in kWh/kg.
	SeparationKWhPerKg float64 `json:"separation_kwh_per_kg"`
}

// Point is a single sample of a concentration sweep.
type Point struct {
	// MoleFraction is x1.
	MoleFraction float64 `json:"mole_fraction"`

	// MolePercent is 100 × x1.
	MolePercent float64 `json:"mole_percent"`

	// SeparationPerMole is the free energy of separation in J per mole of
	// minority species at this fraction.
	SeparationPerMole float64 `json:"separation_j_per_mol_minority"`
}

// Spacing selects how sweep points are distributed between the bounds.
type Spacing int

const (
	// Linear spaces points evenly in x1.
	Linear Spacing = iota
	// Log spaces points evenly in log10(x1).
	Log
)

// String returns the spacing name used in configuration files.
func (s Spacing) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return "unknown"
	}
}
