// Package facelet converts between the 54-character facelet representation
// of a cube's visible stickers and the internal cubie.Cube representation
// the coordinate codecs and search operate on.
//
// A facelet string lists, in order, the nine U stickers, then R, F, D, L,
// B, each face read left to right, top to bottom as the solver's fixed
// viewing convention defines it. Each byte is one of 'U', 'R', 'F', 'D',
// 'L', 'B' naming the face whose color that sticker shows.
package facelet

import (
	"github.com/twophase-go/solver/internal/cubie"
	"github.com/twophase-go/solver/internal/solveerr"
)

const faceLetters = "URFDLB"

// cornerFacelet[c] lists the three facelet indices belonging to corner slot
// c, in a fixed rotational order; index 0 always falls on the U or D face.
// These reference stickers are the ones the orientations in package
// cubie's basis moves are measured against, so the tables must match that
// convention for a parsed sticker string to describe the same cube the
// moves act on.
var cornerFacelet = [8][3]int{
	cubie.URF: {8, 9, 20},
	cubie.UFL: {6, 18, 38},
	cubie.ULB: {0, 36, 47},
	cubie.UBR: {2, 45, 11},
	cubie.DFR: {29, 26, 15},
	cubie.DLF: {27, 44, 24},
	cubie.DBL: {33, 53, 42},
	cubie.DRB: {35, 17, 51},
}

// edgeFacelet[e] lists the two facelet indices belonging to edge slot e;
// index 0 is the edge's reference sticker: on the U or D face, or on the F
// or B face for the four slice edges.
var edgeFacelet = [12][2]int{
	cubie.UR: {5, 10},
	cubie.UF: {7, 19},
	cubie.UL: {3, 37},
	cubie.UB: {1, 46},
	cubie.DR: {32, 16},
	cubie.DF: {28, 25},
	cubie.DL: {30, 43},
	cubie.DB: {34, 52},
	cubie.FR: {23, 12},
	cubie.FL: {21, 41},
	cubie.BL: {50, 39},
	cubie.BR: {48, 14},
}

// faceOf returns which of the six faces a facelet index lies on.
func faceOf(index int) byte { return faceLetters[index/9] }

// cornerColor[c][k] is the face shown at cornerFacelet[c][k] on a solved
// cube: derived, not tabulated, so it can never drift out of sync with
// cornerFacelet.
var cornerColor = buildCornerColor()
var edgeColor = buildEdgeColor()

func buildCornerColor() [8][3]byte {
	var out [8][3]byte
	for c := 0; c < 8; c++ {
		for k := 0; k < 3; k++ {
			out[c][k] = faceOf(cornerFacelet[c][k])
		}
	}
	return out
}

func buildEdgeColor() [12][2]byte {
	var out [12][2]byte
	for e := 0; e < 12; e++ {
		for k := 0; k < 2; k++ {
			out[e][k] = faceOf(edgeFacelet[e][k])
		}
	}
	return out
}

// ToFacelets renders c as its 54-character sticker string.
func ToFacelets(c cubie.Cube) string {
	var buf [54]byte
	for f := 0; f < 6; f++ {
		buf[f*9+4] = faceLetters[f]
	}
	for i := 0; i < 8; i++ {
		piece := c.Cp[i]
		for k := 0; k < 3; k++ {
			buf[cornerFacelet[i][k]] = cornerColor[piece][(k+3-int(c.Co[i]))%3]
		}
	}
	for i := 0; i < 12; i++ {
		piece := c.Ep[i]
		for k := 0; k < 2; k++ {
			buf[edgeFacelet[i][k]] = edgeColor[piece][(k+int(c.Eo[i]))%2]
		}
	}
	return string(buf[:])
}

// ParseFacelets validates s and decodes it into a cubie.Cube. It checks,
// in order, length, alphabet, per-face letter counts, and that each face's
// center shows that face's own letter (each a malformed-string problem,
// solveerr.InvalidLength/InvalidSymbol/InvalidCounts; a string whose
// centers are distinct but sit on other faces is rejected, not relabeled),
// then that the decoded pieces are each used
// exactly once (solveerr.InvalidCube) and finally that the arrangement
// satisfies the twist/flip/permutation parity invariants a physical cube
// must (solveerr.Unsolvable) — each check returns a distinct solveerr.Kind
// so callers can report the specific problem.
func ParseFacelets(s string) (cubie.Cube, error) {
	if len(s) != 54 {
		return cubie.Cube{}, solveerr.Newf(solveerr.InvalidLength, "got %d characters, want 54", len(s))
	}
	var counts [6]int
	faceIndex := func(b byte) int {
		for i := 0; i < 6; i++ {
			if faceLetters[i] == b {
				return i
			}
		}
		return -1
	}
	for i := 0; i < 54; i++ {
		fi := faceIndex(s[i])
		if fi < 0 {
			return cubie.Cube{}, solveerr.Newf(solveerr.InvalidSymbol, "byte %q at position %d is not one of U,R,F,D,L,B", s[i], i)
		}
		counts[fi]++
	}
	for i, n := range counts {
		if n != 9 {
			return cubie.Cube{}, solveerr.Newf(solveerr.InvalidCounts, "face %c appears %d times, want 9", faceLetters[i], n)
		}
	}
	for i := 0; i < 6; i++ {
		if s[i*9+4] != faceLetters[i] {
			return cubie.Cube{}, solveerr.Newf(solveerr.InvalidCounts, "center of face %c does not show its own color", faceLetters[i])
		}
	}

	c := cubie.Identity()
	for slot := 0; slot < 8; slot++ {
		var f [3]byte
		for k := 0; k < 3; k++ {
			f[k] = s[cornerFacelet[slot][k]]
		}
		ori := 0
		for ori < 3 && f[ori] != 'U' && f[ori] != 'D' {
			ori++
		}
		if ori == 3 {
			return cubie.Cube{}, solveerr.Newf(solveerr.InvalidCube, "corner slot %d shows no U or D sticker", slot)
		}
		col1 := f[(ori+1)%3]
		col2 := f[(ori+2)%3]
		piece := -1
		for j := 0; j < 8; j++ {
			if cornerColor[j][1] == col1 && cornerColor[j][2] == col2 {
				piece = j
				break
			}
		}
		if piece == -1 {
			return cubie.Cube{}, solveerr.Newf(solveerr.InvalidCube, "corner slot %d does not match any corner piece", slot)
		}
		c.Cp[slot] = int8(piece)
		c.Co[slot] = int8(ori)
	}

	for slot := 0; slot < 12; slot++ {
		a := s[edgeFacelet[slot][0]]
		b := s[edgeFacelet[slot][1]]
		piece := -1
		ori := 0
		for j := 0; j < 12; j++ {
			if edgeColor[j][0] == a && edgeColor[j][1] == b {
				piece, ori = j, 0
				break
			}
			if edgeColor[j][0] == b && edgeColor[j][1] == a {
				piece, ori = j, 1
				break
			}
		}
		if piece == -1 {
			return cubie.Cube{}, solveerr.New(solveerr.InvalidCube, "edge slot does not match any edge piece")
		}
		c.Ep[slot] = int8(piece)
		c.Eo[slot] = int8(ori)
	}

	if !piecesDistinct(c) {
		return cubie.Cube{}, solveerr.New(solveerr.InvalidCube, "a corner or edge piece appears more than once")
	}
	if !c.IsSolvable() {
		return cubie.Cube{}, solveerr.New(solveerr.Unsolvable, "twist, flip or permutation parity is inconsistent with any physical cube")
	}
	return c, nil
}

func piecesDistinct(c cubie.Cube) bool {
	var seenC [8]bool
	for _, p := range c.Cp {
		if seenC[p] {
			return false
		}
		seenC[p] = true
	}
	var seenE [12]bool
	for _, p := range c.Ep {
		if seenE[p] {
			return false
		}
		seenE[p] = true
	}
	return true
}
