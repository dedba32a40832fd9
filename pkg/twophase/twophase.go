// Package twophase is the public entry point: parse a facelet string,
// solve it with Kociemba's two-phase algorithm, and render the solution as
// a move string. Callers that need table generation or cache control use
// InitTables directly; Solve alone is enough for one-off use against an
// already-initialized *Tables.
package twophase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/twophase-go/solver/internal/cubie"
	"github.com/twophase-go/solver/internal/facelet"
	"github.com/twophase-go/solver/internal/search"
	"github.com/twophase-go/solver/internal/solveerr"
	"github.com/twophase-go/solver/internal/tables"
)

// Tables is the prebuilt move/pruning table set Solve searches against.
// Build it once per process with InitTables and reuse it across calls.
type Tables = tables.Tables

// Options configures a single Solve call.
type Options struct {
	// MaxDepth caps how deep phase 1 searches before giving up. Zero uses
	// search.DefaultMaxPhase1Depth.
	MaxDepth int
	// Timeout bounds how long Solve searches for improvements before
	// returning its best solution so far. Zero means no deadline beyond
	// ctx's own.
	Timeout time.Duration
	// Separator, when true, inserts a literal "." token between the
	// phase-1 and phase-2 portions of the returned solution string.
	Separator bool
}

// Result is the outcome of a single Solve call: the formatted solution
// string plus the metadata the web API and CLI report alongside it.
type Result struct {
	Solution string
	Steps    int
}

// InitTables loads tables from cachePath if present and valid, building
// and persisting them otherwise. cachePath == "" uses the default cache
// location (tables.DefaultCachePath).
func InitTables(ctx context.Context, cachePath string) (*Tables, error) {
	return tables.LoadOrBuild(ctx, cachePath, nil)
}

// Solve parses facelets, validates it, and searches for a move sequence
// that returns it to the solved state. tabs must come from InitTables (or
// tables.Build) for the same coordinate layout the search package expects.
func Solve(ctx context.Context, facelets string, tabs *Tables, opts Options) (string, error) {
	res, err := SolveDetailed(ctx, facelets, tabs, opts)
	if err != nil {
		return "", err
	}
	return res.Solution, nil
}

// SolveDetailed is Solve plus the step count callers that need more than
// the formatted string (the web API, `tables stats`-style diagnostics) use.
func SolveDetailed(ctx context.Context, facelets string, tabs *Tables, opts Options) (Result, error) {
	c, err := facelet.ParseFacelets(facelets)
	if err != nil {
		return Result{}, err
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	sol, err := search.Solve(ctx, c, tabs, search.Options{MaxPhase1Depth: opts.MaxDepth})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Solution: FormatSolution(sol, opts.Separator),
		Steps:    len(sol.Moves),
	}, nil
}

// FormatMoves joins moves with sep ("" uses a single space).
func FormatMoves(moves []cubie.Move, sep string) string {
	if sep == "" {
		sep = " "
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, sep)
}

// FormatSolution renders sol as a space-separated move string. When
// separator is true, a literal "." token is inserted between the phase-1
// and phase-2 portions, per spec.md §6.
func FormatSolution(sol search.Solution, separator bool) string {
	if !separator || sol.Phase1Len == 0 || sol.Phase1Len == len(sol.Moves) {
		return FormatMoves(sol.Moves, "")
	}
	phase1 := FormatMoves(sol.Moves[:sol.Phase1Len], "")
	phase2 := FormatMoves(sol.Moves[sol.Phase1Len:], "")
	return phase1 + " . " + phase2
}

// Verify parses facelets and applies moves (space-separated, in the same
// notation Solve's output uses) to check whether they return the cube to
// the solved state. It returns nil if they do, and a *solveerr.Error
// otherwise.
func Verify(facelets, moveList string) error {
	c, err := facelet.ParseFacelets(facelets)
	if err != nil {
		return err
	}
	moves, err := ParseMoves(moveList)
	if err != nil {
		return err
	}
	for _, m := range moves {
		c = cubie.Apply(c, m)
	}
	if !c.IsIdentity() {
		return solveerr.New(solveerr.InvalidCube, "moves do not return the cube to the solved state")
	}
	return nil
}

// ParseMoves parses space-separated move notation ("R", "U2", "F'") into
// cubie.Move values. A lone "." token, as FormatSolution inserts between
// phase 1 and phase 2 when Options.Separator is set, is skipped rather than
// rejected so a separated solution string round-trips through ParseMoves.
func ParseMoves(s string) ([]cubie.Move, error) {
	fields := strings.Fields(s)
	moves := make([]cubie.Move, 0, len(fields))
	for _, f := range fields {
		if f == "." {
			continue
		}
		m, err := parseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

var faceByLetter = map[byte]cubie.Face{
	'U': cubie.FaceU, 'R': cubie.FaceR, 'F': cubie.FaceF,
	'D': cubie.FaceD, 'L': cubie.FaceL, 'B': cubie.FaceB,
}

func parseMove(token string) (cubie.Move, error) {
	if token == "" {
		return cubie.Move{}, solveerr.New(solveerr.InvalidSymbol, "empty move token")
	}
	face, ok := faceByLetter[token[0]]
	if !ok {
		return cubie.Move{}, solveerr.Newf(solveerr.InvalidSymbol, "unrecognized face %q in move %q", token[0], token)
	}
	turns := 1
	if len(token) > 1 {
		switch token[1] {
		case '2':
			turns = 2
		case '\'':
			turns = 3
		default:
			return cubie.Move{}, solveerr.Newf(solveerr.InvalidSymbol, "unrecognized move modifier in %q", token)
		}
	}
	return cubie.Move{Face: face, Turns: turns}, nil
}

// Describe renders a short human-readable summary of tabs, used by the
// `tables stats` CLI command.
func Describe(tabs *Tables) string {
	return fmt.Sprintf(
		"phase1 moves: twist=%d flip=%d slice=%d\nphase2 moves: corner=%d edge8=%d slice=%d\ncache version: %d",
		len(tabs.Phase1Twist), len(tabs.Phase1Flip), len(tabs.Phase1Slice),
		len(tabs.Phase2Corner), len(tabs.Phase2Edge8), len(tabs.Phase2Slice),
		tables.CacheVersion,
	)
}
