package twophase

import (
	"testing"

	"github.com/twophase-go/solver/internal/cubie"
	"github.com/twophase-go/solver/internal/search"
)

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U2 F' D")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []cubie.Move{
		{Face: cubie.FaceR, Turns: 1},
		{Face: cubie.FaceU, Turns: 2},
		{Face: cubie.FaceF, Turns: 3},
		{Face: cubie.FaceD, Turns: 1},
	}
	if len(moves) != len(want) {
		t.Fatalf("len(moves) = %d, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("moves[%d] = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestParseMovesRejectsBadToken(t *testing.T) {
	if _, err := ParseMoves("Q"); err == nil {
		t.Error("expected an error for an unrecognized face letter")
	}
}

func TestFormatMovesRoundTrip(t *testing.T) {
	moves, _ := ParseMoves("R U2 F' D")
	s := FormatMoves(moves, "")
	back, err := ParseMoves(s)
	if err != nil {
		t.Fatalf("ParseMoves(FormatMoves(...)): %v", err)
	}
	for i := range moves {
		if moves[i] != back[i] {
			t.Errorf("round trip mismatch at %d: %v != %v", i, moves[i], back[i])
		}
	}
}

func TestVerifySolvedCubeWithNoMoves(t *testing.T) {
	solved := "UUUUUUUUU" + "RRRRRRRRR" + "FFFFFFFFF" + "DDDDDDDDD" + "LLLLLLLLL" + "BBBBBBBBB"
	if err := Verify(solved, ""); err != nil {
		t.Errorf("Verify(solved, \"\") = %v, want nil", err)
	}
}

func TestFormatSolutionInsertsSeparator(t *testing.T) {
	sol := search.Solution{
		Moves:     []cubie.Move{{Face: cubie.FaceR, Turns: 1}, {Face: cubie.FaceU, Turns: 2}, {Face: cubie.FaceF, Turns: 3}},
		Phase1Len: 1,
	}
	got := FormatSolution(sol, true)
	want := "R . U2 F'"
	if got != want {
		t.Errorf("FormatSolution(sol, true) = %q, want %q", got, want)
	}
	if without := FormatSolution(sol, false); without != "R U2 F'" {
		t.Errorf("FormatSolution(sol, false) = %q, want %q", without, "R U2 F'")
	}
}

func TestFormatSolutionSeparatorOmittedAtBoundaries(t *testing.T) {
	allPhase2 := search.Solution{Moves: []cubie.Move{{Face: cubie.FaceR, Turns: 1}}, Phase1Len: 0}
	if got := FormatSolution(allPhase2, true); got != "R" {
		t.Errorf("FormatSolution(all phase 2, true) = %q, want %q (no separator when Phase1Len is 0)", got, "R")
	}
	allPhase1 := search.Solution{Moves: []cubie.Move{{Face: cubie.FaceR, Turns: 1}}, Phase1Len: 1}
	if got := FormatSolution(allPhase1, true); got != "R" {
		t.Errorf("FormatSolution(all phase 1, true) = %q, want %q (no separator when Phase1Len covers every move)", got, "R")
	}
}

func TestParseMovesSkipsSeparatorToken(t *testing.T) {
	moves, err := ParseMoves("R . U2 F'")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []cubie.Move{
		{Face: cubie.FaceR, Turns: 1},
		{Face: cubie.FaceU, Turns: 2},
		{Face: cubie.FaceF, Turns: 3},
	}
	if len(moves) != len(want) {
		t.Fatalf("len(moves) = %d, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("moves[%d] = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestVerifyRejectsWrongMoves(t *testing.T) {
	solved := "UUUUUUUUU" + "RRRRRRRRR" + "FFFFFFFFF" + "DDDDDDDDD" + "LLLLLLLLL" + "BBBBBBBBB"
	if err := Verify(solved, "R"); err == nil {
		t.Error("Verify(solved, \"R\") should fail: a single R move unsolves the cube")
	}
}
