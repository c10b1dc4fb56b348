package mixing

import (
	"iter"

	"github.com/rs/zerolog"
)

// SeparationCalculator computes separation energies for a binary ideal gas.
type SeparationCalculator interface {
	// Evaluate returns every derived quantity at mole fraction x1 and
	// temperature t (K).
	Evaluate(x1, t float64) (Quantities, error)

	// Sweep returns the separation energy curve over sc at temperature t.
	Sweep(sc SweepConfig, t float64) iter.Seq2[Point, error]

	// Convert converts an energy between two named units.
	Convert(value float64, from, to string) (float64, error)
}

// Calculator implements SeparationCalculator with a fixed set of constants.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	constants Constants
	logger    zerolog.Logger
}

// NewCalculator creates a Calculator using c for every calculation.
// The logger is copied; pass zerolog.Nop() to disable logging.
func NewCalculator(c Constants, logger zerolog.Logger) *Calculator {
	return &Calculator{
		constants: c,
		logger:    logger.With().Str("component", "mixing").Logger(),
	}
}

// Constants returns the constants the calculator was built with.
func (c *Calculator) Constants() Constants {
	return c.constants
}

// Evaluate returns every derived quantity at mole fraction x1 and temperature t.
func (c *Calculator) Evaluate(x1, t float64) (Quantities, error) {
	q, err := Evaluate(x1, t, c.constants)
	if err != nil {
		c.logger.Debug().Err(err).Float64("x1", x1).Float64("temperature", t).Msg("evaluation rejected")
		return Quantities{}, err
	}
	c.logger.Debug().
		Float64("x1", x1).
		Float64("temperature", t).
		Float64("j_per_mol", q.SeparationPerMole).
		Float64("kwh_per_kg", q.SeparationKWhPerKg).
		Msg("separation energy evaluated")
	return q, nil
}

// Sweep returns the separation energy curve over sc at temperature t.
func (c *Calculator) Sweep(sc SweepConfig, t float64) iter.Seq2[Point, error] {
	c.logger.Debug().
		Float64("min", sc.Min).
		Float64("max", sc.Max).
		Int("points", sc.Points).
		Stringer("spacing", sc.Spacing).
		Msg("sweep requested")
	return Sweep(sc, t, c.constants.GasConstant)
}

// Convert converts an energy between two named units using the calculator's
// year length and kWh factor.
func (c *Calculator) Convert(value float64, from, to string) (float64, error) {
	f, err := ParseUnit(from)
	if err != nil {
		return 0, err
	}
	u, err := ParseUnit(to)
	if err != nil {
		return 0, err
	}
	return c.constants.ConvertEnergy(value, f, u)
}
