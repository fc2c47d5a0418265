package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/sudokuforge/engine/internal/board"
)

// oracleSolve is a plain recursive backtracking solver, kept only as
// a cross-check oracle for AlgorithmX's output in tests. The engine's
// real solver path uses exact cover exclusively.
func oracleSolve(grid *[9][9]uint8) bool {
	r, c, ok := oracleFindEmpty(grid)
	if !ok {
		return true
	}
	for v := uint8(1); v <= 9; v++ {
		if oracleValid(grid, r, c, v) {
			grid[r][c] = v
			if oracleSolve(grid) {
				return true
			}
			grid[r][c] = 0
		}
	}
	return false
}

func oracleFindEmpty(grid *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func oracleValid(grid *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if grid[r][i] == v || grid[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if grid[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func TestAlgorithmXMatchesOracleOnRandomPartials(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		var grid [9][9]uint8
		oracleSolve(&grid) // the same full solved grid every trial (smallest-digit-first search); only the kept clues vary

		b := board.New()
		var oracleGrid [9][9]uint8
		for y := 0; y < 9; y++ {
			for x := 0; x < 9; x++ {
				if rng.Intn(3) != 0 { // keep ~1/3 of cells as clues
					continue
				}
				oracleGrid[y][x] = grid[y][x]
				if err := b.Put(x, y, grid[y][x], board.UserGenerated); err != nil {
					t.Fatalf("Put: %v", err)
				}
			}
		}

		wantSolvable := oracleSolve(&oracleGrid)
		s := New()
		gotOK, _, err := s.Solvable(context.Background(), b)
		if err != nil {
			t.Fatalf("Solvable: %v", err)
		}
		if gotOK != wantSolvable {
			t.Fatalf("trial %d: AlgorithmX solvable=%v, oracle solvable=%v", trial, gotOK, wantSolvable)
		}
	}
}
