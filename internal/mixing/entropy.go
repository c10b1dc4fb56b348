package mixing

import "math"

// EntropyOfMixing returns the molar entropy of mixing of a binary ideal gas,
// in the units of r per mole of mixture (J/(K·mol) for r = GasConstant):
//
//	s = -R × (x1·ln x1 + x2·ln x2),  x2 = 1 - x1
//
// The x·ln x terms vanish at x = 0, so x1 = 0 and x1 = 1 return exactly 0
// instead of NaN. The complementary term is evaluated as (1-m)·log1p(-m)
// on the smaller fraction m, which keeps full precision for trace species.
//
// Returns a DomainError if x1 is outside [0, 1] or if t or r is not a
// finite positive number.
func EntropyOfMixing(x1, t, r float64) (float64, error) {
	const op = "EntropyOfMixing"
	if err := checkFraction(op, x1); err != nil {
		return 0, err
	}
	if err := checkState(op, t, r); err != nil {
		return 0, err
	}

	m := math.Min(x1, 1-x1)
	sum := xlogx(m) + (1-m)*math.Log1p(-m)
	if sum == 0 {
		return 0, nil
	}
	return -r * sum, nil
}

// FreeEnergyOfMixing returns T × EntropyOfMixing: the reversible work of
// mixing per mole of mixture, which is also the minimum work to separate one
// mole of mixture back into its pure components.
func FreeEnergyOfMixing(x1, t, r float64) (float64, error) {
	s, err := EntropyOfMixing(x1, t, r)
	if err != nil {
		return 0, err
	}
	return t * s, nil
}

// FreeEnergyOfSeparationPerMoleMinority returns the minimum work to extract one
// mole of the minority species. Recovering one mole of it means processing
// 1/x1 moles of mixture, so the result is FreeEnergyOfMixing / x1.
//
// The result grows without bound (as RT·(ln(1/x1) + 1)) when x1 → 0.
// Below x1 = 0.5 it is evaluated as
//
//	-RT × (ln x1 + x2·log1p(-x1)/x1)
//
// so that no subnormal intermediate is divided by x1.
//
// Returns a DomainError if x1 is not in (0, 1].
func FreeEnergyOfSeparationPerMoleMinority(x1, t, r float64) (float64, error) {
	const op = "FreeEnergyOfSeparationPerMoleMinority"
	if !(x1 > 0) {
		return 0, domainErr(op, "x1", x1, "mole fraction must be in (0, 1]")
	}
	if x1 > 0.5 {
		g, err := FreeEnergyOfMixing(x1, t, r)
		if err != nil {
			return 0, err
		}
		return g / x1, nil
	}
	if err := checkState(op, t, r); err != nil {
		return 0, err
	}
	return -r * t * (logx(x1) + (1-x1)*math.Log1p(-x1)/x1), nil
}

// xlogx returns x·ln(x), continuously extended with 0 at x = 0.
func xlogx(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x * logx(x)
}

// logx is ln(x) for positive x, exact down to the smallest subnormal.
// The mantissa and exponent are split first because math.Log loses accuracy
// on subnormal inputs on some platforms.
func logx(x float64) float64 {
	frac, exp := math.Frexp(x)
	return math.Log(frac) + float64(exp)*math.Ln2
}

func checkFraction(op string, x1 float64) error {
	if math.IsNaN(x1) || x1 < 0 || x1 > 1 {
		return domainErr(op, "x1", x1, "mole fraction must be in [0, 1]")
	}
	return nil
}

func checkState(op string, t, r float64) error {
	if !finitePositive(t) {
		return domainErr(op, "temperature", t, "temperature must be a finite positive number of kelvin")
	}
	if !finitePositive(r) {
		return domainErr(op, "gas_constant", r, "gas constant must be finite and positive")
	}
	return nil
}
