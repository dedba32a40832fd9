// Package cubie implements the cubie-level representation of a 3x3x3 cube
// and the move algebra over it: two permutations (corners, edges), each with
// a per-piece orientation, composed by the group operation a cube turn
// induces.
package cubie

// Corner cubicle indices, fixed order.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge cubicle indices, fixed order. FR, FL, BL, BR (8..11) are the slice
// edges: the four edges of the equatorial layer.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// SliceEdgeStart is the first index of the four slice edges (FR, FL, BL, BR).
const SliceEdgeStart = FR

// Cube is the cubie-level state: a corner permutation/orientation pair and
// an edge permutation/orientation pair. Cp[i]/Ep[i] name which cubie sits at
// cubicle i; Co[i]/Eo[i] give that cubie's orientation (corners mod 3, edges
// mod 2).
type Cube struct {
	Cp [8]int8
	Co [8]int8
	Ep [12]int8
	Eo [12]int8
}

// Identity is the solved cube.
func Identity() Cube {
	var c Cube
	for i := range c.Cp {
		c.Cp[i] = int8(i)
	}
	for i := range c.Ep {
		c.Ep[i] = int8(i)
	}
	return c
}

// IsIdentity reports whether c is the solved state.
func (c Cube) IsIdentity() bool {
	return c == Identity()
}

// Multiply composes two cube states the way applying move b to state a does:
// result.Cp[i] = a.Cp[b.Cp[i]], result.Co[i] = (a.Co[b.Cp[i]] + b.Co[i]) mod 3,
// and analogously for edges mod 2. This is the cubie composition spec.md
// §4.1 describes; the identity is a two-sided unit and composition is
// associative because it is the group action of turning one cube on another.
func Multiply(a, b Cube) Cube {
	var r Cube
	for i := 0; i < 8; i++ {
		r.Cp[i] = a.Cp[b.Cp[i]]
		r.Co[i] = int8((int(a.Co[b.Cp[i]]) + int(b.Co[i])) % 3)
	}
	for i := 0; i < 12; i++ {
		r.Ep[i] = a.Ep[b.Ep[i]]
		r.Eo[i] = int8((int(a.Eo[b.Ep[i]]) + int(b.Eo[i])) % 2)
	}
	return r
}

// cornerSign returns the parity of the corner permutation: 0 even, 1 odd.
func cornerSign(cp [8]int8) int {
	seen := make([]bool, 8)
	sign := 0
	for i := 0; i < 8; i++ {
		if seen[i] {
			continue
		}
		cycleLen := 0
		for j := i; !seen[j]; j = int(cp[j]) {
			seen[j] = true
			cycleLen++
		}
		if cycleLen > 0 {
			sign += cycleLen - 1
		}
	}
	return sign % 2
}

// edgeSign returns the parity of the edge permutation.
func edgeSign(ep [12]int8) int {
	seen := make([]bool, 12)
	sign := 0
	for i := 0; i < 12; i++ {
		if seen[i] {
			continue
		}
		cycleLen := 0
		for j := i; !seen[j]; j = int(ep[j]) {
			seen[j] = true
			cycleLen++
		}
		if cycleLen > 0 {
			sign += cycleLen - 1
		}
	}
	return sign % 2
}

// IsSolvable checks the three parity invariants spec.md §3 requires: corner
// orientation sum mod 3, edge orientation sum mod 2, and permutation sign
// agreement between corners and edges.
func (c Cube) IsSolvable() bool {
	twistSum := 0
	for _, v := range c.Co {
		twistSum += int(v)
	}
	if twistSum%3 != 0 {
		return false
	}
	flipSum := 0
	for _, v := range c.Eo {
		flipSum += int(v)
	}
	if flipSum%2 != 0 {
		return false
	}
	return cornerSign(c.Cp) == edgeSign(c.Ep)
}

// IsInG1 reports whether c lies in the subgroup G1 = <U,D,R2,L2,F2,B2>: all
// orientations are zero and every slice edge sits in a slice position.
func (c Cube) IsInG1() bool {
	for _, v := range c.Co {
		if v != 0 {
			return false
		}
	}
	for _, v := range c.Eo {
		if v != 0 {
			return false
		}
	}
	for i := SliceEdgeStart; i < SliceEdgeStart+4; i++ {
		if c.Ep[i] < SliceEdgeStart {
			return false
		}
	}
	return true
}

// Inverse returns the cube whose composition with c is the identity.
func (c Cube) Inverse() Cube {
	var r Cube
	for i := 0; i < 8; i++ {
		r.Cp[c.Cp[i]] = int8(i)
	}
	for i := 0; i < 8; i++ {
		r.Co[i] = int8((3 - int(c.Co[r.Cp[i]])) % 3)
	}
	for i := 0; i < 12; i++ {
		r.Ep[c.Ep[i]] = int8(i)
	}
	for i := 0; i < 12; i++ {
		r.Eo[i] = int8((2 - int(c.Eo[r.Ep[i]])) % 2)
	}
	return r
}
