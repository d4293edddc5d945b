package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/pairsum/internal/input"
	"github.com/specialistvlad/pairsum/internal/pairsum"
	"github.com/specialistvlad/pairsum/internal/stopwatch"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	source  input.Source
	clock   stopwatch.Clock
	solvers []pairsum.Solver
}

// Option customises an App. Used by tests to swap collaborators.
type Option func(*App)

// WithSource replaces the filesystem value source.
func WithSource(src input.Source) Option {
	return func(a *App) { a.source = src }
}

// WithClock replaces the wall clock used to time solvers.
func WithClock(clock stopwatch.Clock) Option {
	return func(a *App) { a.clock = clock }
}

// NewApp is the constructor for the main application. The report goes to
// outW and diagnostics to logW through an isolated logger. cfg must come from
// NewConfig; an unknown solver name is a programmer error and panics.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	solvers := make([]pairsum.Solver, 0, len(cfg.Solvers))
	for _, name := range cfg.Solvers {
		s, err := pairsum.Lookup(name)
		if err != nil {
			panic(fmt.Errorf("invalid configuration: %w", err))
		}
		solvers = append(solvers, s)
	}
	logger.Debug("Solvers resolved.", "count", len(solvers))

	a := &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		source:  input.NewFileSource(),
		solvers: solvers,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
