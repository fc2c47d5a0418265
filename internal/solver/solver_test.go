package solver

import (
	"context"
	"testing"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/ports"
)

var classicPuzzle = [9]string{
	"53..7....",
	"6..195...",
	".98....6.",
	"8...6...3",
	"4..8.3..1",
	"7...2...6",
	".6....28.",
	"...419..5",
	"....8..79",
}

var classicSolution = [9]string{
	"534678912",
	"672195348",
	"198342567",
	"859761423",
	"426853791",
	"713924856",
	"961537284",
	"287419635",
	"345286179",
}

func boardFromRows(t *testing.T, rows [9]string) *board.Board {
	t.Helper()
	b := board.New()
	for y, row := range rows {
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			v := uint8(ch - '0')
			if err := b.Put(x, y, v, board.UserGenerated); err != nil {
				t.Fatalf("Put(%d,%d,%d): %v", x, y, v, err)
			}
		}
	}
	return b
}

func applySteps(t *testing.T, b *board.Board, steps []ports.SolutionStep) {
	t.Helper()
	for _, st := range steps {
		empty, err := b.Empty(st.X, st.Y)
		if err != nil {
			t.Fatalf("Empty: %v", err)
		}
		if !empty {
			continue
		}
		if err := b.Put(st.X, st.Y, st.V, board.Solved); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
}

func TestSolveClassicPuzzle(t *testing.T) {
	b := boardFromRows(t, classicPuzzle)
	s := New()
	steps, ok, _, err := s.Solve(context.Background(), b)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !ok {
		t.Fatalf("expected solvable puzzle")
	}
	applySteps(t, b, steps)
	for y, row := range classicSolution {
		for x, ch := range row {
			want := uint8(ch - '0')
			got, _, _ := b.At(x, y)
			if got != want {
				t.Fatalf("cell (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
	if !b.Solved() {
		t.Fatalf("board not reported as solved")
	}
}

func TestSolveDetectsConflictingClues(t *testing.T) {
	b := board.New()
	if err := b.Put(0, 0, 5, board.UserGenerated); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := b.Put(1, 0, 5, board.UserGenerated); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s := New()
	steps, ok, _, err := s.Solve(context.Background(), b)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if ok || steps != nil {
		t.Fatalf("expected unsolvable, got ok=%v steps=%v", ok, steps)
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	b1 := boardFromRows(t, classicPuzzle)
	b2 := boardFromRows(t, classicPuzzle)
	s := New()
	steps1, ok1, _, err1 := s.Solve(context.Background(), b1)
	steps2, ok2, _, err2 := s.Solve(context.Background(), b2)
	if err1 != nil || err2 != nil {
		t.Fatalf("Solve errors: %v, %v", err1, err2)
	}
	if ok1 != ok2 || !ok1 {
		t.Fatalf("non-deterministic solvability")
	}
	if len(steps1) != len(steps2) {
		t.Fatalf("step count differs: %d vs %d", len(steps1), len(steps2))
	}
	for i := range steps1 {
		if steps1[i] != steps2[i] {
			t.Fatalf("step %d differs: %+v vs %+v", i, steps1[i], steps2[i])
		}
	}
}

func TestSolveAlreadySolvedBoardYieldsNoNewCells(t *testing.T) {
	b := boardFromRows(t, classicSolution)
	s := New()
	steps, ok, _, err := s.Solve(context.Background(), b)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !ok {
		t.Fatalf("expected solvable")
	}
	for _, st := range steps {
		empty, _ := b.Empty(st.X, st.Y)
		if empty {
			t.Fatalf("step %+v refers to a cell that was not a pre-existing clue", st)
		}
	}
}
