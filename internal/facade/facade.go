// Package facade aggregates a Board and a difficulty level: it maps
// difficulties to generator calls, validates user moves against the
// board's constraint checks, and applies solver output.
package facade

import (
	"context"
	"errors"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/ports"
)

// ErrCellImmutable is returned by Put when the target cell is a
// generator-provided clue.
var ErrCellImmutable = errors.New("facade: cell is a generated clue")

// Game owns exactly one Board plus the current difficulty.
type Game struct {
	Solver    ports.Solver
	Generator ports.Generator

	board      *board.Board
	difficulty ports.Difficulty
}

// New wires a Game facade over the given solver and generator.
func New(s ports.Solver, g ports.Generator) *Game {
	return &Game{Solver: s, Generator: g, board: board.New()}
}

// Board returns the facade's current board.
func (gm *Game) Board() *board.Board { return gm.board }

// Difficulty returns the active difficulty.
func (gm *Game) Difficulty() ports.Difficulty { return gm.difficulty }

// NewGame invokes the generator and replaces the current board with
// the freshly generated puzzle.
func (gm *Game) NewGame(ctx context.Context, seed int64, difficulty ports.Difficulty) (ports.Stats, error) {
	b, stats, err := gm.Generator.Generate(ctx, seed, difficulty)
	if err != nil {
		return stats, err
	}
	gm.board = b
	gm.difficulty = difficulty
	return stats, nil
}

// Clear empties the board without regenerating.
func (gm *Game) Clear() {
	gm.board.Reset()
}

// Put is a checked user move: it rejects edits to Generated cells and
// otherwise delegates to Board.CanFit / Board.Put.
func (gm *Game) Put(x, y int, d uint8) (bool, board.ConstraintKind, error) {
	_, kind, err := gm.board.At(x, y)
	if err != nil {
		return false, board.NoConstraint, err
	}
	if kind == board.Generated {
		return false, board.NoConstraint, ErrCellImmutable
	}
	ok, reason, err := gm.board.CanFit(x, y, d)
	if err != nil {
		return false, board.NoConstraint, err
	}
	if !ok {
		return false, reason, nil
	}
	if err := gm.board.Put(x, y, d, board.UserGenerated); err != nil {
		return false, board.NoConstraint, err
	}
	return true, board.NoConstraint, nil
}

// Solve runs the solver over the current board and applies every
// resulting step to a previously empty cell, tagging it Solved.
// Steps are walked last-pushed-first (deepest covers first); order
// has no effect on correctness since every applied step targets a
// then-empty cell.
func (gm *Game) Solve(ctx context.Context) (bool, ports.Stats, error) {
	steps, ok, stats, err := gm.Solver.Solve(ctx, gm.board)
	if err != nil {
		return false, stats, err
	}
	if !ok {
		return false, stats, nil
	}
	for i := len(steps) - 1; i >= 0; i-- {
		st := steps[i]
		empty, err := gm.board.Empty(st.X, st.Y)
		if err != nil {
			return false, stats, err
		}
		if !empty {
			continue
		}
		if err := gm.board.Put(st.X, st.Y, st.V, board.Solved); err != nil {
			return false, stats, err
		}
	}
	return true, stats, nil
}
