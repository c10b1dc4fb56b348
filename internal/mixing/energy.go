package mixing

// ConvertMolarEnergyToMassEnergy converts an energy per mole into an energy per
// kilogram of a substance with the given molar mass in g/mol.
// Returns a DomainError if molarMass is not a finite positive number.
func ConvertMolarEnergyToMassEnergy(energyPerMole, molarMass float64) (float64, error) {
	if !finitePositive(molarMass) {
		return 0, domainErr("ConvertMolarEnergyToMassEnergy", "molar_mass", molarMass, "molar mass must be finite and positive")
	}
	return energyPerMole / (molarMass / GramsPerKilogram), nil
}

// TotalEnergyForMass scales an energy intensity (per kg) to a total mass in kg.
// Returns a DomainError if totalMass is not a finite positive number.
func TotalEnergyForMass(energyPerKg, totalMass float64) (float64, error) {
	if !finitePositive(totalMass) {
		return 0, domainErr("TotalEnergyForMass", "total_mass", totalMass, "mass must be finite and positive")
	}
	return energyPerKg * totalMass, nil
}

// AveragePower returns the mean power in watts needed to deliver totalEnergy
// joules over the given number of seconds.
func AveragePower(totalEnergy, seconds float64) (float64, error) {
	if !finitePositive(seconds) {
		return 0, domainErr("AveragePower", "seconds", seconds, "duration must be finite and positive")
	}
	return totalEnergy / seconds, nil
}

// PowerForCaptureRate returns the continuous power in watts needed to separate
// kgPerYear kilograms per year at an intensity of energyPerKg J/kg, using the
// year length in c.
func PowerForCaptureRate(energyPerKg, kgPerYear float64, c Constants) (float64, error) {
	total, err := TotalEnergyForMass(energyPerKg, kgPerYear)
	if err != nil {
		return 0, err
	}
	return AveragePower(total, c.SecondsPerYear)
}

// Evaluate computes every derived quantity for one state point with the
// constants in c.
func Evaluate(x1, t float64, c Constants) (Quantities, error) {
	s, err := EntropyOfMixing(x1, t, c.GasConstant)
	if err != nil {
		return Quantities{}, err
	}
	perMole, err := FreeEnergyOfSeparationPerMoleMinority(x1, t, c.GasConstant)
	if err != nil {
		return Quantities{}, err
	}
	perKg, err := ConvertMolarEnergyToMassEnergy(perMole, c.MolarMass)
	if err != nil {
		return Quantities{}, err
	}
	kwh, err := c.ConvertEnergy(perKg, Joule, KilowattHour)
	if err != nil {
		return Quantities{}, err
	}

	return Quantities{
		MoleFraction:       x1,
		Temperature:        t,
		EntropyOfMixing:    s,
		FreeEnergyOfMixing: t * s,
		SeparationPerMole:  perMole,
		SeparationPerKg:    perKg,
		SeparationKWhPerKg: kwh,
	}, nil
}
