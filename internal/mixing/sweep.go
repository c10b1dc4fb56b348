package mixing

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// SweepConfig describes a concentration sweep.
type SweepConfig struct {
	// Min and Max bound the mole fraction, 0 < Min < Max ≤ 1.
	Min float64
	Max float64

	// Points is the number of samples, including both bounds (≥ 2).
	Points int

	// Spacing selects linear or logarithmic sampling.
	Spacing Spacing
}

// ParseSpacing resolves "linear"/"lin" or "log"/"logarithmic".
func ParseSpacing(name string) (Spacing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "lin", "":
		return Linear, nil
	case "log", "logarithmic", "log10":
		return Log, nil
	}
	return Linear, &DomainError{Op: "ParseSpacing", Field: "spacing", Name: name, Reason: "spacing must be linear or log"}
}

func (sc SweepConfig) validate() error {
	const op = "Sweep"
	switch {
	case sc.Points < 2:
		return domainErr(op, "points", float64(sc.Points), "a sweep needs at least 2 points")
	case !(sc.Min > 0):
		return domainErr(op, "min", sc.Min, "lower bound must be greater than 0")
	case !(sc.Max <= 1):
		return domainErr(op, "max", sc.Max, "upper bound must not exceed 1")
	case !(sc.Min < sc.Max):
		return domainErr(op, "min", sc.Min, fmt.Sprintf("lower bound must be below upper bound %s", formatFloat(sc.Max)))
	case sc.Spacing != Linear && sc.Spacing != Log:
		return domainErr(op, "spacing", float64(sc.Spacing), "spacing must be linear or log")
	}
	return nil
}

// grid returns the sample fractions in increasing order.
func (sc SweepConfig) grid() []float64 {
	xs := make([]float64, sc.Points)
	if sc.Spacing == Log {
		floats.LogSpan(xs, sc.Min, sc.Max)
	} else {
		floats.Span(xs, sc.Min, sc.Max)
	}
	// Span arithmetic can land an ulp outside the bounds.
	xs[0] = sc.Min
	xs[len(xs)-1] = sc.Max
	for i := range xs {
		xs[i] = math.Min(math.Max(xs[i], sc.Min), sc.Max)
	}
	return xs
}

// Sweep returns a lazy sequence of the free energy of separation per mole of
// minority species over the fractions described by sc, at temperature t with
// gas constant r. Each point is evaluated only when pulled, and the sequence
// can be ranged over any number of times.
//
// An invalid configuration yields a single DomainError.
func Sweep(sc SweepConfig, t, r float64) iter.Seq2[Point, error] {
	return func(yield func(Point, error) bool) {
		if err := sc.validate(); err != nil {
			yield(Point{}, err)
			return
		}
		if err := checkState("Sweep", t, r); err != nil {
			yield(Point{}, err)
			return
		}
		for _, x := range sc.grid() {
			g, err := FreeEnergyOfSeparationPerMoleMinority(x, t, r)
			if !yield(Point{MoleFraction: x, MolePercent: 100 * x, SeparationPerMole: g}, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Collect drains a sweep into a slice, stopping at the first error.
func Collect(seq iter.Seq2[Point, error]) ([]Point, error) {
	var pts []Point
	for p, err := range seq {
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}
