// Package solver implements Knuth's Algorithm X over the Sudoku
// exact-cover matrix: MRV column selection, recursive cover/uncover
// via set snapshots, and solution-step extraction.
//
// This deliberately does not reproduce a doubly-linked dancing-links
// node mesh. The matrix is the dense exactcover.Matrix; "remaining
// rows/columns" are bool arrays, and backtracking restores them by
// cloning a snapshot rather than reversing link surgery, which is
// plenty fast at 9x9 scale.
package solver

import (
	"context"
	"time"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/exactcover"
	"github.com/sudokuforge/engine/internal/ports"
)

// AlgorithmX is the exact-cover Sudoku solver.
type AlgorithmX struct{}

// New returns a ready-to-use Algorithm X solver.
func New() *AlgorithmX { return &AlgorithmX{} }

// state is the SolverState for one solve call: which rows/columns of
// the matrix remain, plus the ordered list of covers chosen so far.
type state struct {
	matrix *exactcover.Matrix
	rows   [exactcover.Rows]bool
	cols   [exactcover.Cols]bool
	steps  []ports.SolutionStep
}

func newState(m *exactcover.Matrix) *state {
	st := &state{matrix: m}
	for i := range st.rows {
		st.rows[i] = true
	}
	for i := range st.cols {
		st.cols[i] = true
	}
	return st
}

type snapshot struct {
	rows [exactcover.Rows]bool
	cols [exactcover.Cols]bool
}

func (st *state) snapshot() snapshot {
	return snapshot{rows: st.rows, cols: st.cols}
}

func (st *state) restore(s snapshot) {
	st.rows = s.rows
	st.cols = s.cols
}

// cover removes row r's four columns and every row sharing any of
// them (including r itself) from the remaining sets.
func (st *state) cover(r int) {
	for _, c := range st.matrix.ColumnsOf(r) {
		if !st.cols[c] {
			continue
		}
		st.cols[c] = false
		for _, r2 := range st.matrix.RowsWithColumn(c) {
			st.rows[r2] = false
		}
	}
}

func decodeStep(r int) ports.SolutionStep {
	x, y, v := exactcover.DecodeRow(r)
	return ports.SolutionStep{X: x, Y: y, V: v}
}

// activeColumnCount counts the remaining rows that still set column c.
func (st *state) activeColumnCount(c int) int {
	n := 0
	for _, r := range st.matrix.RowsWithColumn(c) {
		if st.rows[r] {
			n++
		}
	}
	return n
}

// chooseColumn applies the MRV heuristic: the active column with the
// fewest remaining candidate rows, ties broken by smallest index.
func (st *state) chooseColumn() (col int, count int, any bool) {
	best, bestCount := -1, -1
	for c := 0; c < exactcover.Cols; c++ {
		if !st.cols[c] {
			continue
		}
		n := st.activeColumnCount(c)
		if best == -1 || n < bestCount {
			best, bestCount = c, n
			if n == 0 {
				break
			}
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestCount, true
}

// noColumnsRemain reports whether every constraint has been covered.
func (st *state) noColumnsRemain() bool {
	for c := 0; c < exactcover.Cols; c++ {
		if st.cols[c] {
			return false
		}
	}
	return true
}

func (st *state) search(ctx context.Context, nodes *int) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	if st.noColumnsRemain() {
		return true
	}
	c, count, any := st.chooseColumn()
	if !any || count == 0 {
		return false
	}
	for _, r := range st.matrix.RowsWithColumn(c) {
		if !st.rows[r] {
			continue
		}
		*nodes++
		snap := st.snapshot()
		st.cover(r)
		st.steps = append(st.steps, decodeStep(r))
		if st.search(ctx, nodes) {
			return true
		}
		st.steps = st.steps[:len(st.steps)-1]
		st.restore(snap)
	}
	return false
}

// Solve builds the matrix, pre-covers the board's clues in row-major
// order, then runs the recursive Algorithm X search. On success it
// returns every cover taken, clue restatements first and then the
// recursively discovered digits, in the order taken (the caller
// treats the tail of the slice as the top of the stack).
func (s *AlgorithmX) Solve(ctx context.Context, b *board.Board) ([]ports.SolutionStep, bool, ports.Stats, error) {
	start := time.Now()
	m := exactcover.Build()
	st := newState(m)

	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			v, _, err := b.At(x, y)
			if err != nil {
				return nil, false, ports.Stats{}, err
			}
			if v == 0 {
				continue
			}
			r := exactcover.ChoiceRow(x, y, v)
			if !st.rows[r] {
				// Conflicting clues: two equal digits sharing a
				// row, column or box already removed each other's
				// candidate rows.
				return nil, false, ports.Stats{Duration: time.Since(start)}, nil
			}
			st.cover(r)
			st.steps = append(st.steps, ports.SolutionStep{X: x, Y: y, V: v})
		}
	}

	nodes := 0
	ok := st.search(ctx, &nodes)
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		return nil, false, stats, nil
	}
	return st.steps, true, stats, nil
}

// Solvable reports whether Solve would succeed, without exposing the
// solution.
func (s *AlgorithmX) Solvable(ctx context.Context, b *board.Board) (bool, ports.Stats, error) {
	_, ok, stats, err := s.Solve(ctx, b)
	return ok, stats, err
}
