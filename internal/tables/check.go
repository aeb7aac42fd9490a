package tables

import (
	"fmt"

	"github.com/seamusw/cubesolver/internal/coord"
	"github.com/seamusw/cubesolver/internal/cubie"
)

// inverseToken returns the move undoing the given one: same face, mirrored
// turn amount.
func inverseToken(m uint8) uint8 {
	return m/3*3 + (2 - m%3)
}

// Check runs internal consistency checks over the freshly built tables.
// Failures indicate construction bugs or memory corruption and are fatal
// for the owning solver.
func (t *Tables) Check() error {
	if t.Phase1Dist(0, 0, 0) != 0 {
		return fmt.Errorf("cubesolver: phase-1 pruning target is not zero")
	}
	if t.Phase2Dist(0, 0, 0) != 0 {
		return fmt.Errorf("cubesolver: phase-2 pruning target is not zero")
	}

	// Every move composed with its inverse must fix every coordinate.
	for m := uint8(0); m < cubie.NumMoves; m++ {
		inv := inverseToken(m)
		for i := 0; i < coord.NumTwist; i += 97 {
			if int(t.TwistMove[t.TwistMove[i][m]][inv]) != i {
				return fmt.Errorf("cubesolver: twist move table is not invertible at %d/%d", i, m)
			}
		}
		for i := 0; i < coord.NumFlip; i += 89 {
			if int(t.FlipMove[t.FlipMove[i][m]][inv]) != i {
				return fmt.Errorf("cubesolver: flip move table is not invertible at %d/%d", i, m)
			}
		}
		for i := 0; i < coord.NumSlice; i += 7 {
			if int(t.SliceMove[t.SliceMove[i][m]][inv]) != i {
				return fmt.Errorf("cubesolver: slice move table is not invertible at %d/%d", i, m)
			}
		}
	}

	// Phase-2 tables must reject out-of-group moves and invert within the
	// group.
	for m := uint8(0); m < cubie.NumMoves; m++ {
		if cubie.IsPhase2Move(m) {
			inv := inverseToken(m)
			for i := 0; i < coord.NumCornerPerm; i += 997 {
				if int(t.CornerPermMove[t.CornerPermMove[i][m]][inv]) != i {
					return fmt.Errorf("cubesolver: corner permutation table is not invertible at %d/%d", i, m)
				}
			}
			for i := 0; i < coord.NumEdge8Perm; i += 997 {
				if int(t.Edge8Move[t.Edge8Move[i][m]][inv]) != i {
					return fmt.Errorf("cubesolver: edge permutation table is not invertible at %d/%d", i, m)
				}
			}
			continue
		}
		for i := 0; i < coord.NumSlicePerm; i++ {
			if t.SlicePermMove[i][m] != InvalidEntry {
				return fmt.Errorf("cubesolver: out-of-group move %d not rejected by phase-2 tables", m)
			}
		}
	}

	// The parity coordinate is derived, not tabled: every move must advance
	// corner and edge parity in lockstep, or phase 2 could reach the target
	// through a state the cube group does not contain.
	for m := uint8(0); m < cubie.NumMoves; m++ {
		c := cubie.Solved()
		c.Apply(m)
		if coord.Parity(&c) != c.EdgeParity() {
			return fmt.Errorf("cubesolver: move %d breaks parity consistency", m)
		}
	}

	return nil
}
