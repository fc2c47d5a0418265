package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/ports"
)

// ErrSeedUnsolvable is returned in the rare case where a single seed
// digit on an otherwise empty board turns out to be unsolvable.
var ErrSeedUnsolvable = errors.New("generator: seed produced an unsolvable board")

// Generate runs the pipeline: seed a random digit, solve for a full
// grid, then erase cells while a solvability probe still passes.
//
// The probe checks only solvability, not uniqueness of solution, so a
// generated puzzle is not guaranteed to have exactly one answer.
// Strengthening that to a uniqueness probe is left to the caller;
// AlgorithmX's Solvable already returns on the first solution found,
// which is what keeps this probe cheap.
func (g *Generator) Generate(ctx context.Context, seed int64, difficulty ports.Difficulty) (*board.Board, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	nodes := 0

	b := board.New()
	d := uint8(rng.Intn(9) + 1)
	sx, sy := rng.Intn(board.Size), rng.Intn(board.Size)
	if err := b.Put(sx, sy, d, board.Solved); err != nil {
		return nil, ports.Stats{}, err
	}

	steps, ok, stats, err := g.Solver.Solve(ctx, b)
	nodes += stats.Nodes
	if err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	if !ok {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrSeedUnsolvable
	}
	for _, st := range steps {
		empty, _ := b.Empty(st.X, st.Y)
		if !empty {
			continue
		}
		if err := b.Put(st.X, st.Y, st.V, board.Solved); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
	}

	target := ports.ClueCount(difficulty)
	toRemove := board.Size*board.Size - target
	failureBudget := g.FailureBudget
	if failureBudget < 81 {
		failureBudget = 81
	}

	removed := 0
	consecutiveFailures := 0
	for removed < toRemove && consecutiveFailures <= failureBudget {
		if ctx.Err() != nil {
			break
		}
		x, y := rng.Intn(board.Size), rng.Intn(board.Size)
		empty, _ := b.Empty(x, y)
		if empty {
			consecutiveFailures++
			continue
		}
		val, kind, _ := b.At(x, y)
		if err := b.Put(x, y, 0, board.None); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}

		stillSolvable, probeStats, err := g.Solver.Solvable(ctx, b)
		nodes += probeStats.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if stillSolvable {
			removed++
			consecutiveFailures = 0
			continue
		}
		if err := b.Put(x, y, val, kind); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		consecutiveFailures++
	}

	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			v, _, _ := b.At(x, y)
			if v == 0 {
				continue
			}
			if err := b.Put(x, y, v, board.Generated); err != nil {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
		}
	}

	return b, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
