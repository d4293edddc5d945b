package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pairsum/internal/ctxlog"
	"github.com/specialistvlad/pairsum/internal/report"
	"github.com/specialistvlad/pairsum/internal/stopwatch"
)

// Run loads the values, runs every configured solver over them and prints
// the report. A malformed input file surfaces as a wrapped *input.ParseError.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "file", a.config.FilePath, "sum", a.config.Sum)

	printer := report.NewPrinter(a.outW)
	printer.Options(a.config.Sum, a.config.FilePath)

	values, err := a.source.Load(ctx, a.config.FilePath)
	if err != nil {
		return fmt.Errorf("failed to load values: %w", err)
	}
	a.logger.Info("Values loaded.", "count", len(values))
	printer.Discovered(a.config.FilePath, len(values))

	for _, s := range a.solvers {
		a.logger.Debug("Executing solver.", "solver", s.Name)
		sw := stopwatch.Start(a.clock)
		pairs := s.Solve(values, a.config.Sum)
		elapsed := sw.Elapsed()
		a.logger.Info("Solver finished.", "solver", s.Name, "pairs", len(pairs), "elapsed", elapsed)

		printer.Result(s.Title, pairs, elapsed)
	}

	if err := printer.Err(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
