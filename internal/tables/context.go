package tables

import (
	"github.com/twophase-go/solver/internal/coord"
	"github.com/twophase-go/solver/internal/cubie"
)

// CacheVersion gates the persisted blob: bump it whenever a coordinate
// layout or move ordering changes so stale caches are regenerated instead
// of silently misread.
const CacheVersion = 1

// Progress reports table-generation progress to a caller (e.g. the
// bubbletea model behind `twophase tables build`). Step is a short label
// ("phase1-move", "phase1-prune", ...); Done/Total let the caller render a
// percentage.
type Progress struct {
	Step string
	Done int
	Total int
}

// Tables bundles every move and pruning table the search needs. It is
// built once (by Build or LoadOrBuild) and is immutable and safe for concurrent
// read-only use by multiple Solve calls afterward, per spec.md §5.
type Tables struct {
	Phase1Twist MoveTable
	Phase1Flip  MoveTable
	Phase1Slice MoveTable

	Phase2Corner MoveTable
	Phase2Edge8  MoveTable
	Phase2Slice  MoveTable

	// Included for completeness against the coordinate table in spec.md
	// §3 and exercised by the `coords` CLI command and round-trip tests;
	// not consulted by the search loop itself (see SPEC_FULL.md §3).
	UEdges MoveTable
	DEdges MoveTable

	PruneTwistSlice  PruneTable
	PruneFlipSlice   PruneTable
	PruneCornerSlice PruneTable
	PruneEdge8Slice  PruneTable
}

var codecTwist = coordCodec{coord.TwistSize, coord.EncodeTwist, coord.DecodeTwist}
var codecFlip = coordCodec{coord.FlipSize, coord.EncodeFlip, coord.DecodeFlip}
var codecSliceSorted = coordCodec{coord.SliceSortedSize, coord.EncodeSliceSorted, coord.DecodeSliceSorted}
var codecCornerPerm = coordCodec{coord.CornerPermSize, coord.EncodeCornerPerm, coord.DecodeCornerPerm}
var codecEdge8Perm = coordCodec{coord.Edge8PermSize, coord.EncodeEdge8Perm, coord.DecodeEdge8Perm}
var codecSlicePermInG1 = coordCodec{coord.SlicePermInG1Size, coord.EncodeSlicePermInG1, coord.DecodeSlicePermInG1}
var codecUEdges = coordCodec{coord.UEdgesSize, coord.EncodeUEdges, coord.DecodeUEdges}
var codecDEdges = coordCodec{coord.DEdgesSize, coord.EncodeDEdges, coord.DecodeDEdges}

// totalSteps is the number of buildMoveTable/buildPrunePhase1/
// buildPrunePhase2 calls Build
// performs, used to size the Progress.Total a caller sees.
const totalSteps = 12

// Build generates every table from scratch in memory. progress, if
// non-nil, receives one Progress tick per completed table; Build closes it
// when done.
func Build(progress chan<- Progress) (*Tables, error) {
	if progress != nil {
		defer close(progress)
	}
	report := func(step string, done int) {
		if progress != nil {
			progress <- Progress{Step: step, Done: done, Total: totalSteps}
		}
	}

	t := &Tables{}
	t.Phase1Twist = buildMoveTable(codecTwist, cubie.AllMoves)
	report("phase1-twist-moves", 1)
	t.Phase1Flip = buildMoveTable(codecFlip, cubie.AllMoves)
	report("phase1-flip-moves", 2)
	t.Phase1Slice = buildMoveTable(codecSliceSorted, cubie.AllMoves)
	report("phase1-slice-moves", 3)

	t.Phase2Corner = buildMoveTable(codecCornerPerm, cubie.Phase2Moves)
	report("phase2-corner-moves", 4)
	t.Phase2Edge8 = buildMoveTable(codecEdge8Perm, cubie.Phase2Moves)
	report("phase2-edge8-moves", 5)
	t.Phase2Slice = buildMoveTable(codecSlicePermInG1, cubie.Phase2Moves)
	report("phase2-slice-moves", 6)

	t.UEdges = buildMoveTable(codecUEdges, cubie.AllMoves)
	report("u-edges-moves", 7)
	t.DEdges = buildMoveTable(codecDEdges, cubie.AllMoves)
	report("d-edges-moves", 8)

	// Every coordinate is zero at the identity cube except slice-sorted,
	// whose rank depends on which positions count as "slice" in the
	// identity layout (see cubie.SliceEdgeStart): compute goals from the
	// codecs themselves rather than assuming (0, 0) for every pair.
	identity := cubie.Identity()
	goalTwist := codecTwist.encode(identity)
	goalFlip := codecFlip.encode(identity)
	goalSliceSorted := codecSliceSorted.encode(identity)
	goalCornerPerm := codecCornerPerm.encode(identity)
	goalEdge8Perm := codecEdge8Perm.encode(identity)
	goalSlicePermInG1 := codecSlicePermInG1.encode(identity)

	var err error
	t.PruneTwistSlice, err = buildPrunePhase1(t.Phase1Twist, t.Phase1Slice, goalTwist, goalSliceSorted)
	if err != nil {
		return nil, err
	}
	report("phase1-twist-slice-prune", 9)
	t.PruneFlipSlice, err = buildPrunePhase1(t.Phase1Flip, t.Phase1Slice, goalFlip, goalSliceSorted)
	if err != nil {
		return nil, err
	}
	report("phase1-flip-slice-prune", 10)

	t.PruneCornerSlice, err = buildPrunePhase2(t.Phase2Corner, t.Phase2Slice, goalCornerPerm, goalSlicePermInG1)
	if err != nil {
		return nil, err
	}
	report("phase2-corner-slice-prune", 11)
	t.PruneEdge8Slice, err = buildPrunePhase2(t.Phase2Edge8, t.Phase2Slice, goalEdge8Perm, goalSlicePermInG1)
	if err != nil {
		return nil, err
	}
	report("phase2-edge8-slice-prune", 12)

	return t, nil
}
