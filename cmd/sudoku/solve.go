package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sudokuforge/engine/internal/facade"
	"github.com/sudokuforge/engine/internal/format"
	"github.com/sudokuforge/engine/internal/generator"
	"github.com/sudokuforge/engine/internal/solver"
)

func newSolveCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle persisted in the engine's binary board format",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(in)
			if err != nil {
				return err
			}
			b, err := format.Load(f)
			f.Close()
			if err != nil {
				return err
			}

			sv := solver.New()
			gm := facade.New(sv, generator.New(sv))
			*gm.Board() = *b

			ok, stats, err := gm.Solve(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("sudoku: no solution (nodes=%d duration=%s)", stats.Nodes, stats.Duration)
			}

			printBoard(cmd, gm.Board())
			fmt.Fprintf(cmd.OutOrStdout(), "nodes=%d duration=%s\n", stats.Nodes, stats.Duration)

			if out != "" {
				of, err := os.Create(out)
				if err != nil {
					return err
				}
				defer of.Close()
				return format.Save(of, gm.Board())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "path to a board in the engine's binary format (required)")
	cmd.Flags().StringVar(&out, "out", "", "write the solved board to this file")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
