package coord

import "github.com/twophase-go/solver/internal/cubie"

// Domain sizes, as specified by the coordinate table (spec.md §3).
const (
	TwistSize          = 2187 // 3^7
	FlipSize           = 2048 // 2^11
	SliceSortedSize    = 495  // C(12,4)
	SliceFullSize      = 11880
	UEdgesSize         = 11880
	DEdgesSize         = 11880
	CornerPermSize     = 40320
	Edge8PermSize      = 40320
	SlicePermInG1Size  = 24
)

// EncodeTwist packs the first 7 corner orientations into base 3; the 8th is
// determined by the sum-mod-3 invariant and is not needed to encode.
func EncodeTwist(c cubie.Cube) int {
	x := 0
	for i := 0; i < 7; i++ {
		x = x*3 + int(c.Co[i])
	}
	return x
}

// DecodeTwist reconstructs a cube with only Co set (Cp/Ep/Eo solved) from a
// twist coordinate.
func DecodeTwist(x int) cubie.Cube {
	c := cubie.Identity()
	sum := 0
	for i := 6; i >= 0; i-- {
		c.Co[i] = int8(x % 3)
		sum += int(c.Co[i])
		x /= 3
	}
	c.Co[7] = int8((3 - sum%3) % 3)
	return c
}

// EncodeFlip packs the first 11 edge orientations into base 2; the 12th is
// determined by the sum-mod-2 invariant.
func EncodeFlip(c cubie.Cube) int {
	x := 0
	for i := 0; i < 11; i++ {
		x = x*2 + int(c.Eo[i])
	}
	return x
}

// DecodeFlip reconstructs a cube with only Eo set from a flip coordinate.
func DecodeFlip(x int) cubie.Cube {
	c := cubie.Identity()
	sum := 0
	for i := 10; i >= 0; i-- {
		c.Eo[i] = int8(x % 2)
		sum += int(c.Eo[i])
		x /= 2
	}
	c.Eo[11] = int8((2 - sum%2) % 2)
	return c
}

func isSliceEdge(v int8) bool {
	return v >= cubie.SliceEdgeStart && v < cubie.SliceEdgeStart+4
}

// EncodeSliceSorted ranks which 4 of the 12 edge positions hold a slice
// edge (FR, FL, BL, BR), ignoring their relative order: C(12,4) = 495.
func EncodeSliceSorted(c cubie.Cube) int {
	var positions []int
	for i, v := range c.Ep {
		if isSliceEdge(v) {
			positions = append(positions, i)
		}
	}
	return CombinationRank(positions)
}

// DecodeSliceSorted reconstructs a cube with only the slice/non-slice split
// of Ep set: slice edges occupy the ranked positions (in identity order),
// non-slice edges fill the rest (in identity order).
func DecodeSliceSorted(x int) cubie.Cube {
	c := cubie.Identity()
	positions := CombinationUnrank(x, 12, 4)
	occupied := make(map[int]bool, 4)
	for _, p := range positions {
		occupied[p] = true
	}
	sliceVal := int8(cubie.SliceEdgeStart)
	otherVal := int8(0)
	for i := 0; i < 12; i++ {
		if occupied[i] {
			c.Ep[i] = sliceVal
			sliceVal++
		} else {
			c.Ep[i] = otherVal
			otherVal++
		}
	}
	return c
}

// EncodeSliceFull is the phase-1-exit coordinate: sorted-slice rank times
// 4! plus the permutation rank of the 4 slice edges among themselves.
func EncodeSliceFull(c cubie.Cube) int {
	var positions []int
	var order []int8
	for i, v := range c.Ep {
		if isSliceEdge(v) {
			positions = append(positions, i)
			order = append(order, v-cubie.SliceEdgeStart)
		}
	}
	return CombinationRank(positions)*24 + LehmerEncode(order)
}

// DecodeSliceFull reconstructs Ep's slice/non-slice split and the relative
// order of the 4 slice edges from a slice-full coordinate.
func DecodeSliceFull(x int) cubie.Cube {
	c := cubie.Identity()
	sortedRank := x / 24
	permRank := x % 24
	positions := CombinationUnrank(sortedRank, 12, 4)
	order := LehmerDecode(permRank, 4)
	occupied := make(map[int]int8, 4)
	for i, p := range positions {
		occupied[p] = order[i] + int8(cubie.SliceEdgeStart)
	}
	otherVal := int8(0)
	for i := 0; i < 12; i++ {
		if v, ok := occupied[i]; ok {
			c.Ep[i] = v
		} else {
			c.Ep[i] = otherVal
			otherVal++
		}
	}
	return c
}

// encodeOrderedSubset ranks the positions and relative order of the four
// edges named in targets within a 12-slot permutation: C(12,4)*4! = 11880.
// This is the shared engine behind EncodeUEdges and EncodeDEdges.
func encodeOrderedSubset(ep [12]int8, targets [4]int8) int {
	var positions []int
	var order []int8
	for i, v := range ep {
		for _, t := range targets {
			if v == t {
				positions = append(positions, i)
				order = append(order, rankOf(v, targets))
				break
			}
		}
	}
	return CombinationRank(positions)*24 + LehmerEncode(order)
}

func rankOf(v int8, targets [4]int8) int8 {
	for i, t := range targets {
		if t == v {
			return int8(i)
		}
	}
	return -1
}

func decodeOrderedSubset(x int, targets [4]int8) cubie.Cube {
	c := cubie.Identity()
	sortedRank := x / 24
	permRank := x % 24
	positions := CombinationUnrank(sortedRank, 12, 4)
	order := LehmerDecode(permRank, 4)
	occupied := make(map[int]int8, 4)
	for i, p := range positions {
		occupied[p] = targets[order[i]]
	}
	// Fill remaining positions with whichever of 0..11 aren't in targets,
	// in ascending order; which exact filler values land where doesn't
	// matter because only the target edges' positions/order are read back
	// out by the encoder.
	used := make(map[int8]bool, 4)
	for _, t := range targets {
		used[t] = true
	}
	filler := make([]int8, 0, 8)
	for v := int8(0); v < 12; v++ {
		if !used[v] {
			filler = append(filler, v)
		}
	}
	fi := 0
	for i := 0; i < 12; i++ {
		if v, ok := occupied[i]; ok {
			c.Ep[i] = v
		} else {
			c.Ep[i] = filler[fi]
			fi++
		}
	}
	return c
}

var uEdgeTargets = [4]int8{cubie.UR, cubie.UF, cubie.UL, cubie.UB}
var dEdgeTargets = [4]int8{cubie.DR, cubie.DF, cubie.DL, cubie.DB}

// EncodeUEdges ranks the positions and order of UR, UF, UL, UB: P(12,4) = 11880.
func EncodeUEdges(c cubie.Cube) int { return encodeOrderedSubset(c.Ep, uEdgeTargets) }

// DecodeUEdges is the inverse of EncodeUEdges.
func DecodeUEdges(x int) cubie.Cube { return decodeOrderedSubset(x, uEdgeTargets) }

// EncodeDEdges ranks the positions and order of DR, DF, DL, DB: P(12,4) = 11880.
func EncodeDEdges(c cubie.Cube) int { return encodeOrderedSubset(c.Ep, dEdgeTargets) }

// DecodeDEdges is the inverse of EncodeDEdges.
func DecodeDEdges(x int) cubie.Cube { return decodeOrderedSubset(x, dEdgeTargets) }

// EncodeCornerPerm ranks the full corner permutation: 8! = 40320.
func EncodeCornerPerm(c cubie.Cube) int {
	return LehmerEncode(c.Cp[:])
}

// DecodeCornerPerm reconstructs a cube with only Cp set from a corner
// permutation coordinate.
func DecodeCornerPerm(x int) cubie.Cube {
	c := cubie.Identity()
	perm := LehmerDecode(x, 8)
	copy(c.Cp[:], perm)
	return c
}

// EncodeEdge8Perm ranks the permutation of the 8 non-slice edges among
// their 8 slots (valid once in G1, where slice edges stay in slots 8..11):
// 8! = 40320.
func EncodeEdge8Perm(c cubie.Cube) int {
	return LehmerEncode(c.Ep[:8])
}

// DecodeEdge8Perm reconstructs a cube with Ep[0:8] set to the decoded
// permutation and Ep[8:12] left solved (valid only as a phase-2 coordinate,
// where slice edges are already fixed in their slots).
func DecodeEdge8Perm(x int) cubie.Cube {
	c := cubie.Identity()
	perm := LehmerDecode(x, 8)
	copy(c.Ep[:8], perm)
	return c
}

// EncodeSlicePermInG1 ranks the relative order of the 4 slice edges, valid
// once a cube is in G1 (so they occupy slots 8..11 exactly): 4! = 24.
func EncodeSlicePermInG1(c cubie.Cube) int {
	order := make([]int8, 4)
	for i := 0; i < 4; i++ {
		order[i] = c.Ep[cubie.SliceEdgeStart+i] - int8(cubie.SliceEdgeStart)
	}
	return LehmerEncode(order)
}

// DecodeSlicePermInG1 reconstructs a cube with Ep[8:12] set to the decoded
// slice-edge order and the rest solved.
func DecodeSlicePermInG1(x int) cubie.Cube {
	c := cubie.Identity()
	order := LehmerDecode(x, 4)
	for i := 0; i < 4; i++ {
		c.Ep[cubie.SliceEdgeStart+i] = order[i] + int8(cubie.SliceEdgeStart)
	}
	return c
}
