package cubie

import "testing"

func TestIdentityIsSolvable(t *testing.T) {
	c := Identity()
	if !c.IsIdentity() {
		t.Fatal("Identity() is not IsIdentity()")
	}
	if !c.IsSolvable() {
		t.Fatal("Identity() should be solvable")
	}
	if !c.IsInG1() {
		t.Fatal("Identity() should be in G1")
	}
}

func TestMultiplyIdentity(t *testing.T) {
	id := Identity()
	m := Multiply(id, id)
	if m != id {
		t.Errorf("Multiply(id, id) = %+v, want identity", m)
	}
}

func TestInverseUndoesMultiply(t *testing.T) {
	c := r1()
	inv := c.Inverse()
	if Multiply(c, inv) != Identity() {
		t.Errorf("Multiply(c, c.Inverse()) != identity for r1()")
	}
	if Multiply(inv, c) != Identity() {
		t.Errorf("Multiply(c.Inverse(), c) != identity for r1()")
	}
}

func TestBasisMovesAreSolvable(t *testing.T) {
	moves := map[string]Cube{"U": u1(), "R": r1(), "F": f1(), "D": d1(), "L": l1(), "B": b1()}
	for name, m := range moves {
		if !m.IsSolvable() {
			t.Errorf("basis move %s fails the parity invariants", name)
		}
	}
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, m := range []Cube{u1(), r1(), f1(), d1(), l1(), b1()} {
		c := Identity()
		for i := 0; i < 4; i++ {
			c = Multiply(c, m)
		}
		if c != Identity() {
			t.Errorf("applying a basis move 4 times did not return to identity: %+v", c)
		}
	}
}

func TestR2PreservesOrientation(t *testing.T) {
	c := Multiply(r1(), r1())
	if !c.IsInG1() {
		t.Errorf("R2 should stay in G1 (orientations must remain solved): %+v", c)
	}
}
