package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/twophase-go/solver/internal/cubie"
	"github.com/twophase-go/solver/internal/tables"
)

var (
	testTabsOnce sync.Once
	testTabs     *tables.Tables
)

// sharedTables builds the full table set once per test binary run; Build
// is deterministic, so every test in this package searches against the
// same tables.
func sharedTables(t *testing.T) *tables.Tables {
	t.Helper()
	testTabsOnce.Do(func() {
		tabs, err := tables.Build(nil)
		if err != nil {
			panic(err)
		}
		testTabs = tabs
	})
	return testTabs
}

func applyAll(c cubie.Cube, moves []cubie.Move) cubie.Cube {
	for _, m := range moves {
		c = cubie.Apply(c, m)
	}
	return c
}

func scramble(moves string) cubie.Cube {
	c := cubie.Identity()
	ms, err := parseTestMoves(moves)
	if err != nil {
		panic(err)
	}
	return applyAll(c, ms)
}

func parseTestMoves(s string) ([]cubie.Move, error) {
	faces := map[byte]cubie.Face{'U': cubie.FaceU, 'R': cubie.FaceR, 'F': cubie.FaceF, 'D': cubie.FaceD, 'L': cubie.FaceL, 'B': cubie.FaceB}
	var moves []cubie.Move
	i := 0
	for i < len(s) {
		if s[i] == ' ' {
			i++
			continue
		}
		face := faces[s[i]]
		turns := 1
		if i+1 < len(s) {
			switch s[i+1] {
			case '2':
				turns = 2
				i++
			case '\'':
				turns = 3
				i++
			}
		}
		moves = append(moves, cubie.Move{Face: face, Turns: turns})
		i++
	}
	return moves, nil
}

func TestSolveAlreadySolved(t *testing.T) {
	tabs := sharedTables(t)
	sol, err := Solve(context.Background(), cubie.Identity(), tabs, Options{})
	if err != nil {
		t.Fatalf("Solve(identity): %v", err)
	}
	if len(sol.Moves) != 0 {
		t.Errorf("Solve(identity) = %v, want empty", sol.Moves)
	}
}

func TestSolveSingleMoveScramble(t *testing.T) {
	tabs := sharedTables(t)
	c := scramble("R")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sol, err := Solve(ctx, c, tabs, Options{})
	if err != nil {
		t.Fatalf("Solve(R): %v", err)
	}
	if applyAll(c, sol.Moves) != cubie.Identity() {
		t.Errorf("solution %v does not return scrambled cube to solved", sol.Moves)
	}
	if sol.Phase1Len < 0 || sol.Phase1Len > len(sol.Moves) {
		t.Errorf("Phase1Len = %d out of range for %d moves", sol.Phase1Len, len(sol.Moves))
	}
}

func TestSolveLongerScramble(t *testing.T) {
	tabs := sharedTables(t)
	c := scramble("R U R' U' F R F' U2 L B L' B'")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sol, err := Solve(ctx, c, tabs, Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if applyAll(c, sol.Moves) != cubie.Identity() {
		t.Errorf("solution %v does not return scrambled cube to solved", sol.Moves)
	}
}

func TestSolveRespectsPhaseBoundaryRestriction(t *testing.T) {
	tabs := sharedTables(t)
	c := scramble("R U R' U' F R F' U2 L B L' B'")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sol, err := Solve(ctx, c, tabs, Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Phase1Len <= 0 || sol.Phase1Len >= len(sol.Moves) {
		return
	}
	last := sol.Moves[sol.Phase1Len-1]
	first := sol.Moves[sol.Phase1Len]
	if !allowedAfter(first.Face, true, last.Face) {
		t.Errorf("solution %v crosses the phase boundary with a disallowed move pair (%v then %v)", sol.Moves, last, first)
	}
}

func TestAllowedAfterRejectsRepeatAndWrongOrder(t *testing.T) {
	if allowedAfter(cubie.FaceU, true, cubie.FaceU) {
		t.Error("same face twice should be rejected")
	}
	if !allowedAfter(cubie.FaceD, true, cubie.FaceU) {
		t.Error("U then D (canonical order) should be allowed")
	}
	if allowedAfter(cubie.FaceU, true, cubie.FaceD) {
		t.Error("D then U (non-canonical order) should be rejected")
	}
	if !allowedAfter(cubie.FaceR, true, cubie.FaceU) {
		t.Error("unrelated faces should be allowed in either order")
	}
}
