// Package tables builds and persists the move and pruning tables the
// search drives IDA* with: for each coordinate domain, the successor
// coordinate under every move, and for each paired coordinate domain, an
// admissible lower bound on the moves remaining to the phase goal.
package tables

import "github.com/twophase-go/solver/internal/cubie"

// MoveTable[x][m] is the coordinate reached from x by applying moves[m].
type MoveTable [][]uint16

// coordCodec bundles a coordinate's encode/decode pair so buildMoveTable
// can stay generic across all eight coordinates spec.md §3 defines.
type coordCodec struct {
	size   int
	encode func(cubie.Cube) int
	decode func(int) cubie.Cube
}

// buildMoveTable generates MoveTable[x][m] by decoding x to a
// representative CubieCube, applying each move, and re-encoding — the
// exact procedure spec.md §4.3 specifies, and the one that makes
// encode(M*decode(x)) == MoveTable[x][m] true by construction.
func buildMoveTable(c coordCodec, moves []cubie.Move) MoveTable {
	table := make(MoveTable, c.size)
	for x := 0; x < c.size; x++ {
		row := make([]uint16, len(moves))
		rep := c.decode(x)
		for m, move := range moves {
			next := cubie.Apply(rep, move)
			row[m] = uint16(c.encode(next))
		}
		table[x] = row
	}
	return table
}
