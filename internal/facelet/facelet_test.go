package facelet

import (
	"strings"
	"testing"

	"github.com/twophase-go/solver/internal/cubie"
	"github.com/twophase-go/solver/internal/solveerr"
)

const solvedFacelets = "UUUUUUUUU" + "RRRRRRRRR" + "FFFFFFFFF" + "DDDDDDDDD" + "LLLLLLLLL" + "BBBBBBBBB"

func TestToFaceletsOfIdentity(t *testing.T) {
	got := ToFacelets(cubie.Identity())
	if got != solvedFacelets {
		t.Errorf("ToFacelets(identity) = %q, want %q", got, solvedFacelets)
	}
}

func TestParseSolvedFacelets(t *testing.T) {
	c, err := ParseFacelets(solvedFacelets)
	if err != nil {
		t.Fatalf("ParseFacelets(solved): %v", err)
	}
	if !c.IsIdentity() {
		t.Errorf("ParseFacelets(solved) = %+v, want identity", c)
	}
}

func TestRoundTripAfterMoves(t *testing.T) {
	c := cubie.Identity()
	for _, m := range cubie.AllMoves {
		c = cubie.Apply(c, m)
		s := ToFacelets(c)
		back, err := ParseFacelets(s)
		if err != nil {
			t.Fatalf("ParseFacelets(ToFacelets(%s state)): %v", m, err)
		}
		if back != c {
			t.Errorf("round trip mismatch after %s: got %+v, want %+v", m, back, c)
		}
	}
}

func TestParseFaceletsInvalidLength(t *testing.T) {
	_, err := ParseFacelets("UUU")
	assertKind(t, err, solveerr.InvalidLength)
}

func TestParseFaceletsInvalidSymbol(t *testing.T) {
	bad := strings.Replace(solvedFacelets, "U", "X", 1)
	_, err := ParseFacelets(bad)
	assertKind(t, err, solveerr.InvalidSymbol)
}

func TestParseFaceletsInvalidCounts(t *testing.T) {
	bad := "U" + solvedFacelets[1:53] + "R" // one too many R, one too few B
	_, err := ParseFacelets(bad)
	assertKind(t, err, solveerr.InvalidCounts)
}

func TestParseFaceletsInvalidCube(t *testing.T) {
	// Swap two stickers across different edges: letter counts stay valid,
	// but one edge slot ends up showing the same color on both facelets,
	// which matches no edge piece.
	b := []byte(solvedFacelets)
	b[1], b[10] = b[10], b[1]
	_, err := ParseFacelets(string(b))
	if err == nil {
		t.Fatal("expected an error for an unphysical facelet arrangement")
	}
}

func TestParseFaceletsUnsolvableSingleFlippedEdge(t *testing.T) {
	// Flip the UR edge in place: swap its two facelets so the piece sits
	// where it started but with its two colors exchanged. Every other
	// piece and every letter count stays exactly as on a solved cube, so
	// this only trips the edge-flip parity check, not any structural one.
	b := []byte(solvedFacelets)
	b[5], b[10] = b[10], b[5]
	_, err := ParseFacelets(string(b))
	assertKind(t, err, solveerr.Unsolvable)
}

func assertKind(t *testing.T, err error, want solveerr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	kind, ok := solveerr.As(err)
	if !ok {
		t.Fatalf("error %v is not a *solveerr.Error", err)
	}
	if kind != want {
		t.Errorf("error kind = %v, want %v", kind, want)
	}
}
