package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/rshade/mixing-energy/internal/mixing"
)

// WriteText writes a human-readable summary of r.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder
	sc := r.Scenario
	q := r.Quantities

	fmt.Fprintf(&b, "Scenario: %s (report %s)\n", sc.Name, r.ID)
	fmt.Fprintf(&b, "Mole fraction of %s: %s (%s ppm)\n", sc.Species, sig(q.MoleFraction, 4), sig(q.MoleFraction*1e6, 4))
	fmt.Fprintf(&b, "Temperature: %s K\n", sig(q.Temperature, 4))
	fmt.Fprintf(&b, "Entropy of mixing: %s J/(K·mol) of mixture\n", sig(q.EntropyOfMixing, 4))
	fmt.Fprintf(&b, "Free energy of mixing: %s J/mol of mixture\n", sig(q.FreeEnergyOfMixing, 4))
	fmt.Fprintf(&b, "Minimum energy to separate %s: %s kJ/mol\n", sc.Species, sig(q.SeparationPerMole/1000, 4))
	fmt.Fprintf(&b, "Minimum kWh needed to concentrate kg of %s: %s kWh/kg\n", sc.Species, sig(q.SeparationKWhPerKg, 3))

	if c := r.Capture; c != nil {
		fmt.Fprintf(&b, "Energy to capture %s of %s: %s kWh (%s GW·yr, %s TW·yr; %s-day year)\n",
			massLabel(c.MassKg), sc.Species, sig(c.TotalKWh, 3),
			sig(c.GigawattYears, 4), sig(c.TerawattYears, 3), sig(r.SecondsPerYear/mixing.SecondsPerDay, 5))
		if c.Years > 0 {
			fmt.Fprintf(&b, "Average power over %s yr: %s GW\n", sig(c.Years, 4), sig(c.AveragePowerW/1e9, 4))
		}
	}

	if n := len(r.Curve); n > 0 {
		fmt.Fprintf(&b, "Curve: %d points from %s%% to %s%% (%s spacing)\n",
			n, sig(r.Curve[0].MolePercent, 3), sig(r.Curve[n-1].MolePercent, 3), sc.Sweep.Spacing)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// sig formats v with n significant digits.
func sig(v float64, n int) string {
	return strconv.FormatFloat(v, 'g', n, 64)
}

func massLabel(kg float64) string {
	switch {
	case kg >= 1e12:
		return sig(kg/1e12, 4) + " Gt"
	case kg >= 1e3:
		return sig(kg/1e3, 4) + " t"
	default:
		return sig(kg, 4) + " kg"
	}
}
