package cubie

import (
	"testing"
)

func TestSolvedIsSolved(t *testing.T) {
	c := Solved()
	if !c.IsSolved() {
		t.Error("Solved() should be solved")
	}
	if err := c.Verify(); err != nil {
		t.Errorf("Solved() should verify: %v", err)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := Solved()
	c.Apply(3) // R
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
	if err := c.Verify(); err != nil {
		t.Errorf("Cube after R should still verify: %v", err)
	}
}

func TestFourQuarterTurnsIdentity(t *testing.T) {
	for face := 0; face < 6; face++ {
		c := Solved()
		for i := 0; i < 4; i++ {
			c.Apply(uint8(face * 3))
		}
		if !c.IsSolved() {
			t.Errorf("face %d: four quarter turns should return to solved", face)
		}
	}
}

func TestHalfTurnTwiceIdentity(t *testing.T) {
	for face := 0; face < 6; face++ {
		c := Solved()
		c.Apply(uint8(face*3 + 1))
		c.Apply(uint8(face*3 + 1))
		if !c.IsSolved() {
			t.Errorf("face %d: two half turns should return to solved", face)
		}
	}
}

func TestQuarterThenCounterIdentity(t *testing.T) {
	for m := uint8(0); m < NumMoves; m++ {
		inv := m/3*3 + (2 - m%3)
		c := Solved()
		c.Apply(m)
		c.Apply(inv)
		if !c.IsSolved() {
			t.Errorf("move %d then %d should cancel", m, inv)
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := Solved()
	for i := 0; i < 6; i++ {
		c.Apply(3) // R
		c.Apply(0) // U
		c.Apply(5) // R'
		c.Apply(2) // U'
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
	}
}

func TestEveryMovePreservesInvariants(t *testing.T) {
	c := Solved()
	seq := []uint8{3, 0, 5, 2, 6, 16, 9, 13, 4, 7, 12, 17}
	for _, m := range seq {
		c.Apply(m)
		if err := c.Verify(); err != nil {
			t.Fatalf("invariants broken after move %d: %v", m, err)
		}
	}
}

func TestVerifyRejectsTwistedCorner(t *testing.T) {
	c := Solved()
	c.CO[0] = 1
	if err := c.Verify(); err == nil {
		t.Error("single twisted corner should fail verification")
	}
}

func TestVerifyRejectsFlippedEdge(t *testing.T) {
	c := Solved()
	c.EO[0] = 1
	if err := c.Verify(); err == nil {
		t.Error("single flipped edge should fail verification")
	}
}

func TestVerifyRejectsParityMismatch(t *testing.T) {
	c := Solved()
	c.CP[0], c.CP[1] = c.CP[1], c.CP[0]
	if err := c.Verify(); err == nil {
		t.Error("lone corner swap should fail verification")
	}
}

func TestVerifyRejectsBrokenPermutation(t *testing.T) {
	c := Solved()
	c.CP[0] = c.CP[1]
	if err := c.Verify(); err == nil {
		t.Error("duplicate corner should fail verification")
	}
}

func TestPhase2MovesStayInGroup(t *testing.T) {
	// Every phase-2 move must keep orientations good and slice edges in
	// the slice.
	for _, m := range Phase2Moves {
		c := Solved()
		c.Apply(m)
		for i := 0; i < 8; i++ {
			if c.CO[i] != 0 {
				t.Errorf("move %d twists corner %d", m, i)
			}
		}
		for i := 0; i < 12; i++ {
			if c.EO[i] != 0 {
				t.Errorf("move %d flips edge %d", m, i)
			}
		}
		for i := 8; i < 12; i++ {
			if c.EP[i] < FR {
				t.Errorf("move %d moves edge %v out of the slice", m, c.EP[i])
			}
		}
	}
}

func TestIsPhase2Move(t *testing.T) {
	want := map[uint8]bool{}
	for _, m := range Phase2Moves {
		want[m] = true
	}
	for m := uint8(0); m < NumMoves; m++ {
		if IsPhase2Move(m) != want[m] {
			t.Errorf("IsPhase2Move(%d) = %v, want %v", m, IsPhase2Move(m), want[m])
		}
	}
}
