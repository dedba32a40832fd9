// Package cli wires the cobra command tree for the twophase binary:
// solving, table management, move verification, coordinate inspection,
// and the HTTP API server.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/twophase-go/solver/internal/solveerr"
)

var rootCmd = &cobra.Command{
	Use:   "twophase",
	Short: "A Kociemba two-phase 3x3x3 Rubik's cube solver",
	Long: `twophase solves a scrambled 3x3x3 cube with Kociemba's two-phase
algorithm: phase 1 reaches the <U,D,R2,L2,F2,B2> subgroup, phase 2 solves
within it. Move and pruning tables are generated once and cached on disk.`,
	Version: "1.0.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(coordsCmd)
	rootCmd.AddCommand(serveCmd)
}

// exitCodeFor maps an error to the process exit code the external
// interface commits to: 1 for invalid input or a search that exhausted its
// budget (anything the facelet/search layers reported as a *solveerr.Error),
// 2 for infrastructure failures such as a table load/build or server
// startup error, which have nothing to do with what the caller asked for.
func exitCodeFor(err error) int {
	if _, ok := solveerr.As(err); ok {
		return 1
	}
	return 2
}
