package tables

import "fmt"

// PruneTable stores, packed 4 bits per entry, an admissible lower bound on
// the moves remaining to a phase's goal for every (a, b) coordinate pair,
// at index a*sizeB+b. A nibble of 15 means "at least 15" (the value
// saturates there; that remains an admissible bound, never an overestimate
// — see spec.md §4.4).
type PruneTable struct {
	data  []byte
	sizeB int
	total int
}

const saturate = 15

func newPruneTable(sizeB, total int) PruneTable {
	return PruneTable{data: make([]byte, (total+1)/2), sizeB: sizeB, total: total}
}

func (p PruneTable) nibble(idx int) int {
	b := p.data[idx/2]
	if idx%2 == 0 {
		return int(b & 0x0F)
	}
	return int(b >> 4)
}

func (p PruneTable) setNibble(idx, v int) {
	if v > saturate {
		v = saturate
	}
	shift := uint((idx % 2) * 4)
	mask := byte(0x0F) << shift
	p.data[idx/2] = (p.data[idx/2] &^ mask) | (byte(v) << shift)
}

// Get returns the stored bound for coordinate pair (a, b).
func (p PruneTable) Get(a, b int) int {
	return p.nibble(a*p.sizeB + b)
}

// buildPrunePhase1 and buildPrunePhase2 share the same BFS engine; they are
// kept as two names because they're called with phase-1 and phase-2 move
// tables respectively and the distinction is useful at call sites and in
// profiling output.
func buildPrunePhase1(moveA, moveB MoveTable, goalA, goalB int) (PruneTable, error) {
	return buildPruneBFS(moveA, moveB, goalA, goalB)
}

func buildPrunePhase2(moveA, moveB MoveTable, goalA, goalB int) (PruneTable, error) {
	return buildPruneBFS(moveA, moveB, goalA, goalB)
}

// buildPruneBFS runs a breadth-first search from the goal pair (goalA,
// goalB) over the product graph of moveA x moveB, using the same move
// index in lockstep on both coordinates (they come from the same Move
// slice). Forward expansion from the goal computes the true distance to
// the goal because every move's inverse is also present in the move set
// (spec.md §4.4): if goal reaches x by move m, x reaches goal by m's
// inverse, which is some other entry in the same move list.
func buildPruneBFS(moveA, moveB MoveTable, goalA, goalB int) (PruneTable, error) {
	sizeA := len(moveA)
	sizeB := len(moveB)
	total := sizeA * sizeB
	depth := make([]int16, total)
	for i := range depth {
		depth[i] = -1
	}
	goalIdx := goalA*sizeB + goalB
	depth[goalIdx] = 0
	queue := []int{goalIdx}
	numMoves := len(moveA[0])
	for len(queue) > 0 {
		var next []int
		for _, idx := range queue {
			a := idx / sizeB
			b := idx % sizeB
			d := depth[idx]
			for m := 0; m < numMoves; m++ {
				na := int(moveA[a][m])
				nb := int(moveB[b][m])
				nidx := na*sizeB + nb
				if depth[nidx] == -1 {
					depth[nidx] = d + 1
					next = append(next, nidx)
				}
			}
		}
		queue = next
	}
	pt := newPruneTable(sizeB, total)
	unreached := 0
	for idx, d := range depth {
		if d < 0 {
			unreached++
			d = saturate
		}
		pt.setNibble(idx, int(d))
	}
	if unreached > 0 {
		return PruneTable{}, fmt.Errorf("pruning table BFS left %d of %d entries unreached", unreached, total)
	}
	return pt, nil
}
