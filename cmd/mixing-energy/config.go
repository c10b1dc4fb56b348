package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/rshade/mixing-energy/internal/mixing"
	"github.com/rshade/mixing-energy/internal/report"
)

// Environment variables consulted when the matching flag is not given.
const (
	envScenario   = "MIXING_SCENARIO"
	envLogLevel   = "MIXING_LOG_LEVEL"
	envListenAddr = "MIXING_LISTEN_ADDR"
	envYearDays   = "MIXING_YEAR_DAYS"
)

// Output modes.
const (
	modeReport = "report"
	modeJSON   = "json"
	modePlot   = "plot"
	modeServe  = "serve"
)

// Config holds the command-line settings. Scenario fields are only applied
// when the corresponding flag was given explicitly.
type Config struct {
	Mode         string
	ScenarioPath string
	Output       string
	ListenAddr   string
	LogLevel     string
	LogFormat    string

	Name        string
	Fraction    float64
	Temperature float64
	MolarMass   float64
	YearDays    float64
	MassKg      float64
	Years       float64
	Points      int
	Spacing     string

	set map[string]bool
}

// parseConfig parses command-line arguments.
func parseConfig(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{set: make(map[string]bool)}
	def := report.DefaultScenario()

	fs := flag.NewFlagSet("mixing-energy", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Mode, "mode", modeReport, "Output mode: report, json, plot or serve")
	fs.StringVar(&cfg.ScenarioPath, "scenario", "", "Path to a YAML scenario file")
	fs.StringVar(&cfg.Output, "out", "separation-curve.png", "Plot output file (plot mode)")
	fs.StringVar(&cfg.ListenAddr, "listen", ":8080", "Listen address (serve mode)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", "console", "Log format: console or json")

	fs.StringVar(&cfg.Name, "name", def.Name, "Scenario name")
	fs.Float64Var(&cfg.Fraction, "fraction", def.MoleFraction, "Mole fraction of the minority species")
	fs.Float64Var(&cfg.Temperature, "temperature", def.TemperatureK, "Temperature in kelvin")
	fs.Float64Var(&cfg.MolarMass, "molar-mass", def.MolarMass, "Molar mass of the minority species in g/mol")
	fs.Float64Var(&cfg.YearDays, "year-days", mixing.NotionalYearDays, "Days per year for GW·yr and TW·yr")
	fs.Float64Var(&cfg.MassKg, "mass", def.CapturedMassKg, "Mass to capture in kg (0 to skip)")
	fs.Float64Var(&cfg.Years, "years", def.CaptureYears, "Capture period in years for the average power (0 to skip)")
	fs.IntVar(&cfg.Points, "points", def.Sweep.Points, "Number of sweep points (0 to skip the curve)")
	fs.StringVar(&cfg.Spacing, "spacing", def.Sweep.Spacing, "Sweep spacing: log or linear")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })

	switch cfg.Mode {
	case modeReport, modeJSON, modePlot, modeServe:
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	if !cfg.set["log-level"] {
		if lvl := os.Getenv(envLogLevel); lvl != "" {
			cfg.LogLevel = lvl
		}
	}
	return cfg, nil
}

// applyEnv fills settings that were not given as flags from the environment.
// Invalid values are logged and ignored.
func applyEnv(cfg *Config, logger zerolog.Logger) {
	if !cfg.set["scenario"] {
		if path := os.Getenv(envScenario); path != "" {
			cfg.ScenarioPath = path
		}
	}
	if !cfg.set["listen"] {
		if addr := os.Getenv(envListenAddr); addr != "" {
			cfg.ListenAddr = addr
		}
	}
	if !cfg.set["year-days"] {
		if raw := os.Getenv(envYearDays); raw != "" {
			if days, err := strconv.ParseFloat(raw, 64); err == nil && days > 0 {
				cfg.YearDays = days
				cfg.set["year-days"] = true
			} else {
				logger.Warn().Str("value", raw).Msgf("invalid %s, using default", envYearDays)
			}
		}
	}

	logger.Debug().
		Str("mode", cfg.Mode).
		Str("scenario", cfg.ScenarioPath).
		Float64("year_days", cfg.YearDays).
		Msg("configuration applied")
}

// buildScenario loads the scenario file, if any, and applies explicit flags
// on top of it.
func buildScenario(cfg *Config) (report.Scenario, error) {
	sc := report.DefaultScenario()
	if cfg.ScenarioPath != "" {
		var err error
		if sc, err = report.LoadScenario(cfg.ScenarioPath); err != nil {
			return report.Scenario{}, err
		}
	}

	if cfg.set["name"] {
		sc.Name = cfg.Name
	}
	if cfg.set["fraction"] {
		sc.MoleFraction = cfg.Fraction
	}
	if cfg.set["temperature"] {
		sc.TemperatureK = cfg.Temperature
	}
	if cfg.set["molar-mass"] {
		sc.MolarMass = cfg.MolarMass
	}
	if cfg.set["year-days"] {
		days := cfg.YearDays
		sc.YearDays = &days
	}
	if cfg.set["mass"] {
		sc.CapturedMassKg = cfg.MassKg
	}
	if cfg.set["years"] {
		sc.CaptureYears = cfg.Years
	}
	if cfg.set["points"] {
		sc.Sweep.Points = cfg.Points
	}
	if cfg.set["spacing"] {
		sc.Sweep.Spacing = cfg.Spacing
	}
	return sc, nil
}

// newLogger builds the process logger. An unparseable level falls back to
// info with a warning.
func newLogger(cfg *Config, w io.Writer) zerolog.Logger {
	out := w
	if cfg.LogFormat != "json" {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	logger := zerolog.New(out).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		logger.Warn().Str("value", cfg.LogLevel).Msg("invalid log level, using info")
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}
