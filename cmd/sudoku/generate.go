package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/format"
	"github.com/sudokuforge/engine/internal/generator"
	"github.com/sudokuforge/engine/internal/ports"
	"github.com/sudokuforge/engine/internal/solver"
)

func newGenerateCmd() *cobra.Command {
	var (
		difficulty  string
		seed        int64
		out         string
		profileKind string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new puzzle of the given difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileKind != "" {
				stop := startProfile(profileKind)
				defer stop()
			}

			s := seed
			if s == 0 {
				s = time.Now().UnixNano()
			}

			sv := solver.New()
			gen := generator.New(sv)
			b, stats, err := gen.Generate(cmd.Context(), s, parseDifficultyFlag(difficulty))
			if err != nil {
				return err
			}

			printBoard(cmd, b)
			fmt.Fprintf(cmd.OutOrStdout(), "seed=%d nodes=%d duration=%s\n", s, stats.Nodes, stats.Duration)

			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				return format.Save(f, b)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "easy|medium|hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = derived from current time)")
	cmd.Flags().StringVar(&out, "out", "", "write the generated board to this file in the engine's binary format")
	cmd.Flags().StringVar(&profileKind, "profile", "", "cpu|mem profiling of the generator, written to ./")
	return cmd
}

func parseDifficultyFlag(s string) ports.Difficulty {
	switch s {
	case "medium":
		return ports.Medium
	case "hard":
		return ports.Hard
	default:
		return ports.Easy
	}
}

func startProfile(kind string) func() {
	switch kind {
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop
	default:
		return profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop
	}
}

func printBoard(cmd *cobra.Command, b *board.Board) {
	w := cmd.OutOrStdout()
	b.Each(func(x, y int, v uint8, k board.Kind) {
		if v == 0 {
			fmt.Fprint(w, ".")
		} else {
			fmt.Fprintf(w, "%d", v)
		}
		if x == board.Size-1 {
			fmt.Fprintln(w)
		}
	})
}
