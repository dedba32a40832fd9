package tables

import (
	"testing"

	"github.com/twophase-go/solver/internal/coord"
	"github.com/twophase-go/solver/internal/cubie"
)

func TestBuildMoveTableShape(t *testing.T) {
	mt := buildMoveTable(codecSlicePermInG1, cubie.Phase2Moves)
	if len(mt) != coord.SlicePermInG1Size {
		t.Fatalf("len(mt) = %d, want %d", len(mt), coord.SlicePermInG1Size)
	}
	for x, row := range mt {
		if len(row) != len(cubie.Phase2Moves) {
			t.Fatalf("row %d has %d entries, want %d", x, len(row), len(cubie.Phase2Moves))
		}
	}
}

func TestMoveTableAgreesWithDirectApplication(t *testing.T) {
	mt := buildMoveTable(codecSlicePermInG1, cubie.Phase2Moves)
	for x := 0; x < coord.SlicePermInG1Size; x++ {
		rep := coord.DecodeSlicePermInG1(x)
		for m, move := range cubie.Phase2Moves {
			want := coord.EncodeSlicePermInG1(cubie.Apply(rep, move))
			if got := int(mt[x][m]); got != want {
				t.Errorf("mt[%d][%s] = %d, want %d", x, move, got, want)
			}
		}
	}
}

// The pruning tests pair the slice-perm table with the corner-perm table,
// as Build does: a table paired with itself moves in lockstep from (0, 0)
// and only ever reaches the diagonal pairs.
func TestPruneBFSReachesEveryEntry(t *testing.T) {
	cornerMT := buildMoveTable(codecCornerPerm, cubie.Phase2Moves)
	mt := buildMoveTable(codecSlicePermInG1, cubie.Phase2Moves)
	pt, err := buildPrunePhase2(cornerMT, mt, 0, 0)
	if err != nil {
		t.Fatalf("buildPrunePhase2: %v", err)
	}
	if pt.Get(0, 0) != 0 {
		t.Errorf("Get(0,0) = %d, want 0 (the goal itself)", pt.Get(0, 0))
	}
	for a := 0; a < coord.SlicePermInG1Size; a++ {
		for b := 0; b < coord.SlicePermInG1Size; b++ {
			if pt.Get(a, b) < 0 {
				t.Fatalf("negative bound at (%d,%d)", a, b)
			}
		}
	}
}

func TestPruneTableIsAdmissibleAfterOneMove(t *testing.T) {
	cornerMT := buildMoveTable(codecCornerPerm, cubie.Phase2Moves)
	mt := buildMoveTable(codecSlicePermInG1, cubie.Phase2Moves)
	pt, err := buildPrunePhase2(cornerMT, mt, 0, 0)
	if err != nil {
		t.Fatalf("buildPrunePhase2: %v", err)
	}
	for a := 0; a < coord.SlicePermInG1Size; a++ {
		for m, nb := range mt[a] {
			na := int(cornerMT[a][m])
			if pt.Get(na, int(nb)) > pt.Get(a, a)+1 {
				t.Errorf("bound increased by more than 1 across a single move: Get(%d,%d)=%d Get(%d,%d)=%d", a, a, pt.Get(a, a), na, nb, pt.Get(na, int(nb)))
			}
		}
	}
}
