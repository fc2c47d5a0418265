// Command sudoku is the CLI and HTTP front end for the engine: it
// wires the Board/Solver/Generator/Facade core to a cobra command
// tree and an optional HTTP server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var logLevel string
var persistPath string

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sudoku",
		Short: "Generate, solve and serve 9x9 Sudoku puzzles",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.PersistentFlags().StringVar(&persistPath, "persist-path", "./data/sudoku.db", "SQLite catalog path")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newMatrixDumpCmd())
	return root
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	switch logLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
