package pairsum

import (
	"errors"
	"fmt"
)

// ErrUnknownSolver is returned by Lookup for names outside the catalogue.
var ErrUnknownSolver = errors.New("unknown solver")

// Func is the signature shared by all solvers.
type Func func(values []int, target int) []Pair

// Solver is a named entry in the solver catalogue.
type Solver struct {
	// Name is the identifier used on the command line and in config files.
	Name string
	// Title is the human-readable name used in reports.
	Title string
	Solve Func
}

const (
	NaiveName   = "naive"
	IndexedName = "indexed"
)

// Solvers returns the catalogue in reporting order.
func Solvers() []Solver {
	return []Solver{
		{Name: NaiveName, Title: "NaiveSolver", Solve: Naive},
		{Name: IndexedName, Title: "IndexedSolver", Solve: Indexed},
	}
}

// Names returns the catalogue names in reporting order.
func Names() []string {
	all := Solvers()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	return names
}

// Lookup returns the solver registered under name.
func Lookup(name string) (Solver, error) {
	for _, s := range Solvers() {
		if s.Name == name {
			return s, nil
		}
	}
	return Solver{}, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}
