// Package mixing computes the reversible (minimum) work of separating a
// binary ideal-gas mixture from its statistical-mechanical entropy of mixing.
package mixing

const (
	// GasConstant is the ideal gas constant R in J/(K·mol).
	// Source: CODATA 2014.
	GasConstant = 8.3144598

	// MolarMassCO2 is the molar mass of carbon dioxide in g/mol.
	MolarMassCO2 = 44.0

	// AtmosphericCO2Fraction is the mole fraction of CO2 in ambient air (411 ppm).
	// Source: NOAA Mauna Loa annual mean, 2019.
	AtmosphericCO2Fraction = 411e-6

	// AmbientTemperature is the reference ambient temperature in kelvin (20 °C).
	AmbientTemperature = 293.0

	// NotionalYearDays is the number of days in the year used for
	// power-integrated-over-a-year units (GW·yr, TW·yr).
	// The reference calculation uses 364 days; override Constants.SecondsPerYear
	// to use a calendar or Julian year instead.
	NotionalYearDays = 364

	// SecondsPerDay is the number of seconds in one day.
	SecondsPerDay = 86400.0

	// JoulesPerKWh is the number of joules in one kilowatt-hour.
	JoulesPerKWh = 3.6e6

	// GramsPerKilogram converts molar masses in g/mol to kg/mol.
	GramsPerKilogram = 1000.0

	// GigatonneKg is one gigatonne (10^9 metric tons) expressed in kilograms.
	GigatonneKg = 1e12
)
