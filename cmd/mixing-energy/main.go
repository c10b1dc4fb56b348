// Command mixing-energy reports the minimum work needed to separate CO2 (or
// any minority species) from an ideal binary gas mixture.
//
// Usage:
//
//	mixing-energy [--mode report|json|plot|serve] [--scenario FILE] [flags]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/mixing-energy/internal/mixing"
	"github.com/rshade/mixing-energy/internal/report"
	"github.com/rshade/mixing-energy/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "[mixing-energy] Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, stderr)
	applyEnv(cfg, logger)

	sc, err := buildScenario(cfg)
	if err != nil {
		return err
	}

	if cfg.Mode == modeServe {
		c := sc.Constants()
		if err := c.Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		return server.New(mixing.NewCalculator(c, logger), logger).ListenAndServe(ctx, cfg.ListenAddr)
	}

	r, err := report.Build(sc, logger)
	if err != nil {
		return err
	}

	switch cfg.Mode {
	case modeJSON:
		return report.WriteJSON(stdout, r)
	case modePlot:
		if err := report.Plot(r, cfg.Output); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Output).Int("points", len(r.Curve)).Msg("plot written")
		return nil
	default:
		return report.WriteText(stdout, r)
	}
}
