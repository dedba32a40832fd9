package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twophase-go/solver/internal/tables"
	"github.com/twophase-go/solver/internal/tui"
	"github.com/twophase-go/solver/pkg/twophase"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the move and pruning table cache",
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the table cache, showing progress",
	Run: func(cmd *cobra.Command, args []string) {
		cachePath, _ := cmd.Flags().GetString("cache")
		if _, err := loadTablesWithProgress(cachePath); err != nil {
			fmt.Printf("Error building tables: %v\n", err)
			os.Exit(exitCodeFor(err))
		}
		fmt.Println("Tables built and cached.")
	},
}

var tablesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a summary of the cached tables",
	Run: func(cmd *cobra.Command, args []string) {
		cachePath, _ := cmd.Flags().GetString("cache")
		tabs, err := tables.LoadOrBuild(context.Background(), cachePath, nil)
		if err != nil {
			fmt.Printf("Error loading tables: %v\n", err)
			os.Exit(exitCodeFor(err))
		}
		fmt.Println(twophase.Describe(tabs))
	},
}

func init() {
	tablesCmd.PersistentFlags().String("cache", "", "Table cache path (empty uses the default location)")
	tablesCmd.AddCommand(tablesBuildCmd)
	tablesCmd.AddCommand(tablesStatsCmd)
}

// loadTablesWithProgress loads the cache if valid, otherwise builds it
// behind a bubbletea progress screen and persists the result. A cache hit
// flashes the progress screen only briefly, since LoadOrBuild closes the
// progress channel immediately in that path.
func loadTablesWithProgress(cachePath string) (*tables.Tables, error) {
	return tui.RunBuild(func(progress chan<- tables.Progress) (*tables.Tables, error) {
		return tables.LoadOrBuild(context.Background(), cachePath, progress)
	})
}
