package tables

import (
	"reflect"
	"testing"

	"github.com/twophase-go/solver/internal/cubie"
)

func smallTables() *Tables {
	mt := buildMoveTable(codecSlicePermInG1, cubie.Phase2Moves)
	pt, err := buildPrunePhase2(buildMoveTable(codecCornerPerm, cubie.Phase2Moves), mt, 0, 0)
	if err != nil {
		panic(err)
	}
	return &Tables{
		Phase1Twist: mt, Phase1Flip: mt, Phase1Slice: mt,
		Phase2Corner: mt, Phase2Edge8: mt, Phase2Slice: mt,
		UEdges: mt, DEdges: mt,
		PruneTwistSlice: pt, PruneFlipSlice: pt, PruneCornerSlice: pt, PruneEdge8Slice: pt,
	}
}

func TestEncodeDecodeTablesRoundTrip(t *testing.T) {
	t1 := smallTables()
	blob := encodeTables(t1)
	t2, err := decodeTables(blob)
	if err != nil {
		t.Fatalf("decodeTables: %v", err)
	}
	if !reflect.DeepEqual(t1.Phase1Twist, t2.Phase1Twist) {
		t.Error("Phase1Twist did not round-trip")
	}
	if t1.PruneTwistSlice.sizeB != t2.PruneTwistSlice.sizeB || t1.PruneTwistSlice.total != t2.PruneTwistSlice.total {
		t.Error("PruneTwistSlice metadata did not round-trip")
	}
	if !reflect.DeepEqual(t1.PruneTwistSlice.data, t2.PruneTwistSlice.data) {
		t.Error("PruneTwistSlice data did not round-trip")
	}
}

func TestChecksumDetectsCorruption(t *testing.T) {
	blob := encodeTables(smallTables())
	sum := checksumOf(blob)
	blob[0] ^= 0xFF
	corrupted := checksumOf(blob)
	match := true
	for i := range sum {
		if sum[i] != corrupted[i] {
			match = false
			break
		}
	}
	if match {
		t.Error("checksum did not change after corrupting the blob")
	}
}
