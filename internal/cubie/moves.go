package cubie

// Face identifies one of the six faces a move can turn.
type Face int

const (
	FaceU Face = iota
	FaceR
	FaceF
	FaceD
	FaceL
	FaceB
)

var faceNames = [6]string{"U", "R", "F", "D", "L", "B"}

func (f Face) String() string { return faceNames[f] }

// Move is one face turn in the half-turn metric: a face plus a turn count
// in {1,2,3} quarter turns clockwise (3 == one counter-clockwise turn).
type Move struct {
	Face  Face
	Turns int // 1, 2 or 3
}

func (m Move) String() string {
	switch m.Turns {
	case 2:
		return m.Face.String() + "2"
	case 3:
		return m.Face.String() + "'"
	default:
		return m.Face.String()
	}
}

// basis holds one quarter-turn-clockwise CubieCube per face, in Face order.
var basis = [6]Cube{
	u1(), r1(), f1(), d1(), l1(), b1(),
}

func u1() Cube {
	return Cube{
		Cp: [8]int8{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		Co: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
		Ep: [12]int8{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		Eo: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
}

func r1() Cube {
	return Cube{
		Cp: [8]int8{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		Co: [8]int8{2, 0, 0, 1, 1, 0, 0, 2},
		Ep: [12]int8{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		Eo: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
}

func f1() Cube {
	return Cube{
		Cp: [8]int8{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		Co: [8]int8{1, 2, 0, 0, 2, 1, 0, 0},
		Ep: [12]int8{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		Eo: [12]int8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	}
}

func d1() Cube {
	return Cube{
		Cp: [8]int8{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		Co: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
		Ep: [12]int8{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		Eo: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
}

func l1() Cube {
	return Cube{
		Cp: [8]int8{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		Co: [8]int8{0, 1, 2, 0, 0, 2, 1, 0},
		Ep: [12]int8{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		Eo: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
}

func b1() Cube {
	return Cube{
		Cp: [8]int8{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		Co: [8]int8{0, 0, 1, 2, 0, 0, 2, 1},
		Ep: [12]int8{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		Eo: [12]int8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	}
}

// Apply returns the cube obtained by turning m on state c.
func Apply(c Cube, m Move) Cube {
	face := basis[m.Face]
	result := c
	for t := 0; t < m.Turns; t++ {
		result = Multiply(result, face)
	}
	return result
}

// AllMoves are the 18 face turns of the half-turn metric: U, U2, U', R, R2,
// R', F, F2, F', D, D2, D', L, L2, L', B, B2, B'.
var AllMoves = buildAllMoves()

func buildAllMoves() []Move {
	moves := make([]Move, 0, 18)
	for f := FaceU; f <= FaceB; f++ {
		for _, turns := range []int{1, 2, 3} {
			moves = append(moves, Move{Face: f, Turns: turns})
		}
	}
	return moves
}

// Phase2Moves are the 10 moves that preserve G1: U, U2, U', D, D2, D', R2,
// L2, F2, B2.
var Phase2Moves = []Move{
	{Face: FaceU, Turns: 1}, {Face: FaceU, Turns: 2}, {Face: FaceU, Turns: 3},
	{Face: FaceD, Turns: 1}, {Face: FaceD, Turns: 2}, {Face: FaceD, Turns: 3},
	{Face: FaceR, Turns: 2}, {Face: FaceL, Turns: 2},
	{Face: FaceF, Turns: 2}, {Face: FaceB, Turns: 2},
}

// oppositeFace pairs faces on the canonical U<D, R<L, F<B ordering used by
// the consecutive-move restriction.
var oppositeFace = [6]Face{FaceD, FaceL, FaceB, FaceU, FaceR, FaceF}

// Opposite returns the face opposite f.
func Opposite(f Face) Face { return oppositeFace[f] }
