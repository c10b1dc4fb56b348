package mixing

import (
	"sort"
	"strings"
)

// Unit is an energy unit. The zero value is not a valid unit.
type Unit string

// Supported energy units.
const (
	Joule        Unit = "J"
	Kilojoule    Unit = "kJ"
	Megajoule    Unit = "MJ"
	Gigajoule    Unit = "GJ"
	KilowattHour Unit = "kWh"
	MegawattHour Unit = "MWh"
	GigawattHour Unit = "GWh"
	GigawattYear Unit = "GW·yr"
	TerawattYear Unit = "TW·yr"
)

// unitAliases maps lower-cased names accepted by ParseUnit to units.
var unitAliases = map[string]Unit{
	"j":             Joule,
	"joule":         Joule,
	"joules":        Joule,
	"kj":            Kilojoule,
	"kilojoule":     Kilojoule,
	"kilojoules":    Kilojoule,
	"mj":            Megajoule,
	"megajoule":     Megajoule,
	"megajoules":    Megajoule,
	"gj":            Gigajoule,
	"gigajoule":     Gigajoule,
	"gigajoules":    Gigajoule,
	"kwh":           KilowattHour,
	"kilowatt-hour": KilowattHour,
	"kilowatthour":  KilowattHour,
	"mwh":           MegawattHour,
	"megawatt-hour": MegawattHour,
	"gwh":           GigawattHour,
	"gigawatt-hour": GigawattHour,
	"gw·yr":         GigawattYear,
	"gw-yr":         GigawattYear,
	"gwyr":          GigawattYear,
	"gigawatt-year": GigawattYear,
	"tw·yr":         TerawattYear,
	"tw-yr":         TerawattYear,
	"twyr":          TerawattYear,
	"terawatt-year": TerawattYear,
}

// ParseUnit resolves a unit symbol or name, case-insensitively.
// Returns a DomainError for unrecognized names.
func ParseUnit(name string) (Unit, error) {
	if u, ok := unitAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return u, nil
	}
	return "", &DomainError{Op: "ParseUnit", Field: "unit", Name: name, Reason: "unrecognized energy unit"}
}

// Units returns every supported unit, sorted by symbol.
func Units() []Unit {
	seen := make(map[Unit]bool)
	var out []Unit
	for _, u := range unitAliases {
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// JoulesPer returns the number of joules in one u.
// The year-based units use c.SecondsPerYear.
func (c Constants) JoulesPer(u Unit) (float64, error) {
	switch u {
	case Joule:
		return 1, nil
	case Kilojoule:
		return 1e3, nil
	case Megajoule:
		return 1e6, nil
	case Gigajoule:
		return 1e9, nil
	case KilowattHour:
		return c.JoulesPerKWh, nil
	case MegawattHour:
		return c.JoulesPerKWh * 1e3, nil
	case GigawattHour:
		return c.JoulesPerKWh * 1e6, nil
	case GigawattYear:
		if !finitePositive(c.SecondsPerYear) {
			return 0, domainErr("JoulesPer", "seconds_per_year", c.SecondsPerYear, "year length must be finite and positive")
		}
		return 1e9 * c.SecondsPerYear, nil
	case TerawattYear:
		if !finitePositive(c.SecondsPerYear) {
			return 0, domainErr("JoulesPer", "seconds_per_year", c.SecondsPerYear, "year length must be finite and positive")
		}
		return 1e12 * c.SecondsPerYear, nil
	}
	return 0, &DomainError{Op: "JoulesPer", Field: "unit", Name: string(u), Reason: "unrecognized energy unit"}
}

// ConvertEnergy converts value from one unit to another.
func (c Constants) ConvertEnergy(value float64, from, to Unit) (float64, error) {
	if from == to {
		if _, err := c.JoulesPer(from); err != nil {
			return 0, err
		}
		return value, nil
	}
	fromJ, err := c.JoulesPer(from)
	if err != nil {
		return 0, err
	}
	toJ, err := c.JoulesPer(to)
	if err != nil {
		return 0, err
	}
	return value * fromJ / toJ, nil
}

// ConvertEnergyUnits converts value between two named units using
// DefaultConstants. Names are resolved with ParseUnit.
func ConvertEnergyUnits(value float64, from, to string) (float64, error) {
	f, err := ParseUnit(from)
	if err != nil {
		return 0, err
	}
	t, err := ParseUnit(to)
	if err != nil {
		return 0, err
	}
	return DefaultConstants().ConvertEnergy(value, f, t)
}
