// Package search implements the two-phase IDA* search: phase 1 reaches the
// G1 subgroup (corners and edges correctly oriented, slice edges confined
// to their four slots), phase 2 solves within G1 using only moves that
// preserve it. Both phases use admissible pruning-table lower bounds from
// internal/tables to cut the search tree, and the outer loop keeps
// searching alternate, longer phase-1 prefixes as long as doing so could
// still shorten the total solution before the deadline.
package search

import (
	"context"

	"github.com/twophase-go/solver/internal/coord"
	"github.com/twophase-go/solver/internal/cubie"
	"github.com/twophase-go/solver/internal/solveerr"
	"github.com/twophase-go/solver/internal/tables"
)

// Options bounds a Solve call.
type Options struct {
	// MaxPhase1Depth caps how deep phase 1 IDA* searches before giving up.
	// Zero uses DefaultMaxPhase1Depth. This bounds phase-1 depth only; the
	// total solution length (phase 1 plus phase 2) is whatever the
	// optimization loop's best find is, and in practice rarely exceeds the
	// low twenties even though it is not itself capped by this option.
	MaxPhase1Depth int
}

// DefaultMaxPhase1Depth matches the standard two-phase default: deep enough
// that phase 1 reaches G1 for any of the roughly 4.3*10^19 reachable cubes
// well before the bound is hit.
const DefaultMaxPhase1Depth = 21

// maxTotalLength bounds the search's internal optimization loop: it is not
// a caller-facing option, just the ceiling used to size the phase-2 budget
// before any solution has been found. Two-phase solutions under HTM rarely
// exceed the low twenties, so this never constrains a real search.
const maxTotalLength = 30

// Solution is a two-phase search result: Moves is the full move sequence,
// and Moves[:Phase1Len] is the phase-1 portion that reaches G1, with
// Moves[Phase1Len:] the phase-2 portion solved from there.
type Solution struct {
	Moves     []cubie.Move
	Phase1Len int
}

// Solve returns the move sequence two-phase search finds for start, or a
// *solveerr.Error wrapping solveerr.NoSolution if ctx's deadline passes
// before any solution within opts.MaxPhase1Depth is found.
func Solve(ctx context.Context, start cubie.Cube, tabs *tables.Tables, opts Options) (Solution, error) {
	maxDepth := opts.MaxPhase1Depth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxPhase1Depth
	}
	if start.IsIdentity() {
		return Solution{}, nil
	}

	var best []cubie.Move
	var bestPhase1Len int
	bestLen := maxTotalLength + 1

	for d := 0; d <= maxDepth && d < bestLen; d++ {
		if ctx.Err() != nil {
			break
		}
		p := newPhase1Search(tabs, d)
		p.walk(start, nil, func(prefix []cubie.Move, mid cubie.Cube) bool {
			if ctx.Err() != nil {
				return false
			}
			budget := bestLen - d - 1
			if budget < 0 {
				return false
			}
			hasPrev := len(prefix) > 0
			var prevFace cubie.Face
			if hasPrev {
				prevFace = prefix[len(prefix)-1].Face
			}
			if tail, ok := phase2Search(ctx, mid, tabs, budget, hasPrev, prevFace); ok {
				total := d + len(tail)
				if total < bestLen {
					bestLen = total
					bestPhase1Len = d
					best = append(append([]cubie.Move{}, prefix...), tail...)
				}
			}
			return ctx.Err() == nil
		})
	}

	if best == nil {
		return Solution{}, solveerr.New(solveerr.NoSolution, "search exhausted its depth and time budget")
	}
	return Solution{Moves: best, Phase1Len: bestPhase1Len}, nil
}

func phase1Heuristic(c cubie.Cube, tabs *tables.Tables) int {
	twist := coord.EncodeTwist(c)
	flip := coord.EncodeFlip(c)
	slice := coord.EncodeSliceSorted(c)
	a := tabs.PruneTwistSlice.Get(twist, slice)
	b := tabs.PruneFlipSlice.Get(flip, slice)
	if a > b {
		return a
	}
	return b
}

func phase2Heuristic(c cubie.Cube, tabs *tables.Tables) int {
	corner := coord.EncodeCornerPerm(c)
	edge8 := coord.EncodeEdge8Perm(c)
	sliceG1 := coord.EncodeSlicePermInG1(c)
	a := tabs.PruneCornerSlice.Get(corner, sliceG1)
	b := tabs.PruneEdge8Slice.Get(edge8, sliceG1)
	if a > b {
		return a
	}
	return b
}

// allowedAfter reports whether a move on face can follow a move on prev:
// never repeat a face, and of two opposite faces (which commute), only
// accept the canonical U<D, R<L, F<B order so the two move orders that are
// equivalent as cube states aren't both explored.
func allowedAfter(face cubie.Face, hasPrev bool, prev cubie.Face) bool {
	if !hasPrev {
		return true
	}
	if face == prev {
		return false
	}
	if cubie.Opposite(face) == prev && face < prev {
		return false
	}
	return true
}

// phase1Search enumerates every phase-1 move sequence of exactly length
// target that reaches G1, reporting each to a callback. Returning false
// from the callback stops enumeration early (used once the deadline
// passes or a perfect-length total is no longer reachable).
type phase1Search struct {
	tabs   *tables.Tables
	target int
}

func newPhase1Search(tabs *tables.Tables, target int) *phase1Search {
	return &phase1Search{tabs: tabs, target: target}
}

func (p *phase1Search) walk(start cubie.Cube, path []cubie.Move, visit func(path []cubie.Move, mid cubie.Cube) bool) bool {
	return p.step(start, 0, false, cubie.FaceU, path, visit)
}

func (p *phase1Search) step(c cubie.Cube, depth int, hasPrev bool, prevFace cubie.Face, path []cubie.Move, visit func([]cubie.Move, cubie.Cube) bool) bool {
	remaining := p.target - depth
	h := phase1Heuristic(c, p.tabs)
	if h > remaining {
		return true
	}
	if remaining == 0 {
		if c.IsInG1() {
			return visit(path, c)
		}
		return true
	}
	for _, m := range cubie.AllMoves {
		if !allowedAfter(m.Face, hasPrev, prevFace) {
			continue
		}
		next := cubie.Apply(c, m)
		if !p.step(next, depth+1, true, m.Face, append(path, m), visit) {
			return false
		}
	}
	return true
}

// phase2Search finds the shortest phase-2 solution to start within budget
// moves, using standard threshold-increasing IDA*. hasPrev/prevFace carry
// the face of the last phase-1 move across the phase boundary so the first
// phase-2 move can't undo or repeat it (spec.md §4.6: phase 2's first move
// must not share a face with phase 1's last move).
func phase2Search(ctx context.Context, start cubie.Cube, tabs *tables.Tables, budget int, hasPrev bool, prevFace cubie.Face) ([]cubie.Move, bool) {
	if start.IsIdentity() {
		return nil, true
	}
	h0 := phase2Heuristic(start, tabs)
	if h0 > budget {
		return nil, false
	}
	for bound := h0; bound <= budget; bound++ {
		if ctx.Err() != nil {
			return nil, false
		}
		var path []cubie.Move
		if phase2Step(start, 0, bound, hasPrev, prevFace, &path, tabs) {
			return path, true
		}
	}
	return nil, false
}

func phase2Step(c cubie.Cube, g, bound int, hasPrev bool, prevFace cubie.Face, path *[]cubie.Move, tabs *tables.Tables) bool {
	h := phase2Heuristic(c, tabs)
	if g+h > bound {
		return false
	}
	if c.IsIdentity() {
		return true
	}
	for _, m := range cubie.Phase2Moves {
		if !allowedAfter(m.Face, hasPrev, prevFace) {
			continue
		}
		next := cubie.Apply(c, m)
		*path = append(*path, m)
		if phase2Step(next, g+1, bound, true, m.Face, path, tabs) {
			return true
		}
		*path = (*path)[:len(*path)-1]
	}
	return false
}
