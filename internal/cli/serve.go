package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twophase-go/solver/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		cachePath, _ := cmd.Flags().GetString("cache")

		tabs, err := loadTablesWithProgress(cachePath)
		if err != nil {
			fmt.Printf("Error loading tables: %v\n", err)
			os.Exit(exitCodeFor(err))
		}

		server := web.NewServer(tabs)
		if err := server.Start(addr); err != nil {
			fmt.Printf("Error running server: %v\n", err)
			os.Exit(exitCodeFor(err))
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("cache", "", "Table cache path (empty uses the default location)")
}
