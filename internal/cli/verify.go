package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twophase-go/solver/pkg/twophase"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [facelets] [moves]",
	Short: "Check whether a move sequence solves a given cube",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := twophase.Verify(args[0], args[1]); err != nil {
			fmt.Printf("%v\n", err)
			os.Exit(exitCodeFor(err))
		}
		fmt.Println("Solved.")
	},
}
