package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/mixing-energy/internal/mixing"
)

// Capture scales the per-kilogram minimum to a total captured mass.
type Capture struct {
	MassKg        float64 `json:"mass_kg"`
	TotalJoules   float64 `json:"total_j"`
	TotalKWh      float64 `json:"total_kwh"`
	GigawattYears float64 `json:"gw_yr"`
	TerawattYears float64 `json:"tw_yr"`

	// Years and AveragePowerW are zero when the scenario has no capture period.
	Years         float64 `json:"years,omitempty"`
	AveragePowerW float64 `json:"average_power_w,omitempty"`
}

// Report is the evaluated form of a Scenario.
type Report struct {
	ID             string            `json:"id"`
	GeneratedAt    time.Time         `json:"generated_at"`
	Scenario       Scenario          `json:"scenario"`
	SecondsPerYear float64           `json:"seconds_per_year"`
	Quantities     mixing.Quantities `json:"quantities"`
	Capture        *Capture          `json:"capture,omitempty"`
	Curve          []mixing.Point    `json:"curve,omitempty"`
}

// Build evaluates sc. Domain errors from the calculation are returned wrapped
// with the scenario name and still match mixing.ErrDomain.
func Build(sc Scenario, logger zerolog.Logger) (*Report, error) {
	c := sc.Constants()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	calc := mixing.NewCalculator(c, logger)

	q, err := calc.Evaluate(sc.MoleFraction, sc.TemperatureK)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	r := &Report{
		ID:             uuid.New().String(),
		GeneratedAt:    time.Now().UTC(),
		Scenario:       sc,
		SecondsPerYear: c.SecondsPerYear,
		Quantities:     q,
	}

	if sc.CapturedMassKg != 0 {
		r.Capture, err = buildCapture(sc, c, q)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}

	if sc.Sweep.Points != 0 {
		cfg, err := sc.Sweep.SweepConfig()
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		r.Curve, err = mixing.Collect(calc.Sweep(cfg, sc.TemperatureK))
		if err != nil {
			return nil, fmt.Errorf("scenario %q: sweep: %w", sc.Name, err)
		}
	}

	logger.Info().
		Str("report_id", r.ID).
		Str("scenario", sc.Name).
		Float64("kj_per_mol", q.SeparationPerMole/1000).
		Float64("kwh_per_kg", q.SeparationKWhPerKg).
		Int("curve_points", len(r.Curve)).
		Msg("report built")

	return r, nil
}

func buildCapture(sc Scenario, c mixing.Constants, q mixing.Quantities) (*Capture, error) {
	total, err := mixing.TotalEnergyForMass(q.SeparationPerKg, sc.CapturedMassKg)
	if err != nil {
		return nil, err
	}

	capture := &Capture{MassKg: sc.CapturedMassKg, TotalJoules: total}
	for _, conv := range []struct {
		unit mixing.Unit
		dst  *float64
	}{
		{mixing.KilowattHour, &capture.TotalKWh},
		{mixing.GigawattYear, &capture.GigawattYears},
		{mixing.TerawattYear, &capture.TerawattYears},
	} {
		if *conv.dst, err = c.ConvertEnergy(total, mixing.Joule, conv.unit); err != nil {
			return nil, err
		}
	}

	if sc.CaptureYears != 0 {
		capture.Years = sc.CaptureYears
		capture.AveragePowerW, err = mixing.AveragePower(total, sc.CaptureYears*c.SecondsPerYear)
		if err != nil {
			return nil, err
		}
	}
	return capture, nil
}
