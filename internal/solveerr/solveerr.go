// Package solveerr defines the error taxonomy returned across the facelet,
// table and search layers so callers (CLI, web API) can switch on Kind
// instead of matching error strings.
package solveerr

import (
	"errors"
	"fmt"
)

// Kind classifies why a solve or parse attempt failed.
type Kind int

const (
	// InvalidLength means a facelet string was not exactly 54 characters.
	InvalidLength Kind = iota
	// InvalidSymbol means a facelet string used a byte outside the six
	// face-letter alphabet.
	InvalidSymbol
	// InvalidCounts means a facelet string didn't use each of the six
	// letters exactly nine times, or a face's center doesn't show that
	// face's own letter.
	InvalidCounts
	// InvalidCube means the facelet string, while well-formed, describes an
	// arrangement that isn't even a candidate cube state: a corner or edge
	// slot's colors match no physical piece, or a piece is used more than
	// once. Distinct from Unsolvable, which is for an arrangement of
	// distinct, well-matched pieces that still fails a parity check.
	InvalidCube
	// Unsolvable means the facelet string is well-formed and physically
	// distinct piece-by-piece but violates a parity invariant (corner
	// twist sum, edge flip sum, or permutation-sign agreement between
	// corners and edges) that every reachable cube state satisfies — for
	// example a single flipped edge. No sequence of moves produces this
	// state from a solved cube, so search is never attempted.
	Unsolvable
	// NoSolution means search exhausted its time or depth budget without
	// finding a solution for a cube that did pass the parity checks,
	// distinct from Unsolvable because a longer deadline might still
	// succeed.
	NoSolution
)

func (k Kind) String() string {
	switch k {
	case InvalidLength:
		return "invalid length"
	case InvalidSymbol:
		return "invalid symbol"
	case InvalidCounts:
		return "invalid counts / centers"
	case InvalidCube:
		return "invalid cube"
	case Unsolvable:
		return "unsolvable"
	case NoSolution:
		return "no solution in budget"
	default:
		return "unknown error"
	}
}

// Error wraps a Kind with the offending detail; Error() renders as
// "Error: <kind>: <detail>" so CLI output matches the wording callers key
// error-path tests off of.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("Error: %s", e.Kind)
	}
	return fmt.Sprintf("Error: %s: %s", e.Kind, e.Detail)
}

// New builds an *Error for the given kind and detail message.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Newf is New with fmt.Sprintf-style formatting for Detail.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// As reports whether err is (or wraps) a solveerr.Error and, if so, returns
// its Kind.
func As(err error) (Kind, bool) {
	var se *Error
	if !errors.As(err, &se) {
		return 0, false
	}
	return se.Kind, true
}
