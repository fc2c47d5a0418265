// Package ports defines the interfaces the Game facade uses to talk
// to the Solver and Generator, and the storage boundary for
// persistence, built around the provenance-tagged board.Board.
package ports

import (
	"context"
	"time"

	"github.com/sudokuforge/engine/internal/board"
)

// Stats captures performance characteristics of a solve/generate call.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// SolutionStep records one covered choice: digit v placed at (x,y).
type SolutionStep struct {
	X, Y int
	V    uint8
}

// Solver implements Algorithm X exact-cover search.
type Solver interface {
	// Solve returns the ordered steps that complete b, last-taken on
	// top, or ok=false if b has no solution.
	Solve(ctx context.Context, b *board.Board) (steps []SolutionStep, ok bool, stats Stats, err error)
	// Solvable reports whether Solve would succeed, without exposing
	// the solution.
	Solvable(ctx context.Context, b *board.Board) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty Difficulty) (*board.Board, Stats, error)
}

// Difficulty selects a target clue count.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// ClueCount maps a difficulty to its target clue count. Unknown
// difficulties fall back to Easy.
func ClueCount(d Difficulty) int {
	switch d {
	case Medium:
		return 20
	case Hard:
		return 15
	default:
		return 25
	}
}

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Easy"
	}
}

// Puzzle is a persisted, catalogued puzzle with metadata beyond the
// raw grid: seed, difficulty, and a display name.
type Puzzle struct {
	ID         string
	Seed       int64
	Difficulty Difficulty
	Board      *board.Board
	Name       string
	CreatedAt  int64
}

// PuzzleMeta is a lightweight catalog listing entry.
type PuzzleMeta struct {
	ID         string
	Name       string
	Difficulty Difficulty
	CreatedAt  int64
}

// Catalog persists and retrieves named puzzles, independent of the
// literal single-board binary format in internal/format.
type Catalog interface {
	Save(ctx context.Context, p *Puzzle) error
	Load(ctx context.Context, id string) (*Puzzle, error)
	List(ctx context.Context) ([]PuzzleMeta, error)
}
