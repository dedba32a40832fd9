package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/twophase-go/solver/internal/tables"
	"github.com/twophase-go/solver/pkg/twophase"
)

var solveCmd = &cobra.Command{
	Use:   "solve [facelets]",
	Short: "Solve a cube given as a 54-character facelet string",
	Long: `Solve reads a cube state as a 54-character facelet string (U face
first, then R, F, D, L, B, each read left to right top to bottom) and
prints the move sequence that returns it to solved.

Use --headless for programmatic output: space-separated moves only, no
surrounding text.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		facelets := args[0]
		headless, _ := cmd.Flags().GetBool("headless")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		separator, _ := cmd.Flags().GetBool("separator")
		cachePath, _ := cmd.Flags().GetString("cache")

		tabs, err := loadTables(cachePath, headless)
		if err != nil {
			fatalf(headless, "Error loading tables", err)
		}

		ctx := context.Background()
		solution, err := twophase.Solve(ctx, facelets, tabs, twophase.Options{
			MaxDepth:  maxDepth,
			Timeout:   timeout,
			Separator: separator,
		})
		if err != nil {
			fatalf(headless, "Error solving cube", err)
		}

		if headless {
			fmt.Print(solution)
			return
		}
		fmt.Printf("Solution: %s\n", solution)
	},
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Duration("timeout", 10*time.Second, "Time budget for the optimization loop")
	solveCmd.Flags().Int("max-depth", 0, "Cap on phase-1 search depth (0 = search.DefaultMaxPhase1Depth)")
	solveCmd.Flags().Bool("separator", false, "Insert a \".\" token between the phase-1 and phase-2 portions of the solution")
	solveCmd.Flags().String("cache", "", "Table cache path (empty uses the default location)")
}

// loadTables loads or builds the table cache, showing a bubbletea progress
// screen unless headless output was requested.
func loadTables(cachePath string, headless bool) (*tables.Tables, error) {
	if headless {
		return tables.LoadOrBuild(context.Background(), cachePath, nil)
	}
	return loadTablesWithProgress(cachePath)
}

// fatalf prints label and err (unless headless output was requested, which
// keeps stdout to the machine-readable payload only) and exits with the
// code exitCodeFor derives from err: 1 for invalid input or an exhausted
// search, 2 for an infrastructure failure such as a table load error.
func fatalf(headless bool, label string, err error) {
	if !headless {
		fmt.Printf("%s: %v\n", label, err)
	}
	os.Exit(exitCodeFor(err))
}
