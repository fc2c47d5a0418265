// Package generator implements the randomized puzzle pipeline: seed a
// single digit, solve to obtain a full grid, then perform randomized
// digit removal gated by a solvability probe.
package generator

import "github.com/sudokuforge/engine/internal/ports"

// Generator creates puzzles using a provided Solver for both the
// initial full-grid solve and the per-removal solvability probe.
type Generator struct {
	Solver ports.Solver

	// FailureBudget is the consecutive-rejection cap on digit removal;
	// the recommended minimum is 81.
	FailureBudget int
}

// New wires a generator over the given solver, with the recommended
// failure budget.
func New(s ports.Solver) *Generator {
	return &Generator{Solver: s, FailureBudget: 81}
}

// Note: Generate is implemented in pipeline.go.
