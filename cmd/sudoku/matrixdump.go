package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sudokuforge/engine/internal/exactcover"
	"github.com/sudokuforge/engine/internal/format"
)

func newMatrixDumpCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "matrix-dump",
		Short: "Dump the 729x324 exact-cover matrix as a grid of 0/1 rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := exactcover.Build()
			if err := m.Verify(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return format.DumpMatrix(w, m)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write to this file instead of stdout")
	return cmd
}
