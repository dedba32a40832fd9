package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twophase-go/solver/internal/coord"
	"github.com/twophase-go/solver/internal/facelet"
)

var coordsCmd = &cobra.Command{
	Use:   "coords [facelets]",
	Short: "Print every coordinate value for a cube state",
	Long: `coords decodes a facelet string and prints each of the eight
coordinates spec'd for the two-phase algorithm, useful for debugging table
generation and the search's pruning-table lookups.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := facelet.ParseFacelets(args[0])
		if err != nil {
			fmt.Printf("%v\n", err)
			os.Exit(exitCodeFor(err))
		}
		fmt.Printf("twist:            %d\n", coord.EncodeTwist(c))
		fmt.Printf("flip:             %d\n", coord.EncodeFlip(c))
		fmt.Printf("slice (sorted):   %d\n", coord.EncodeSliceSorted(c))
		fmt.Printf("slice (full):     %d\n", coord.EncodeSliceFull(c))
		fmt.Printf("u-edges:          %d\n", coord.EncodeUEdges(c))
		fmt.Printf("d-edges:          %d\n", coord.EncodeDEdges(c))
		fmt.Printf("corner perm:      %d\n", coord.EncodeCornerPerm(c))
		fmt.Printf("edge8 perm:       %d\n", coord.EncodeEdge8Perm(c))
		fmt.Printf("slice perm (G1):  %d\n", coord.EncodeSlicePermInG1(c))
		fmt.Printf("in G1:            %t\n", c.IsInG1())
	},
}
