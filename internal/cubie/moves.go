package cubie

// Quarter-turn generators. Each cube describes the effect of one clockwise
// face turn on the solved cube: CP[i] is the slot whose occupant moves into
// slot i, CO[i] the twist added in the process.
var (
	moveU = Cube{
		CP: [8]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		CO: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	moveR = Cube{
		CP: [8]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO: [8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [12]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	moveF = Cube{
		CP: [8]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO: [8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [12]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO: [12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	}
	moveD = Cube{
		CP: [8]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		CO: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	moveL = Cube{
		CP: [8]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO: [8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [12]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	moveB = Cube{
		CP: [8]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO: [8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [12]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO: [12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	}
)

// MoveCubes holds all 18 face turns indexed by move token (face*3 + turn,
// faces in U R F D L B order; turn 0 = quarter CW, 1 = half, 2 = quarter CCW).
// Half and counter-clockwise turns are derived by self-composition of the
// quarter-turn generators.
var MoveCubes = buildMoveCubes()

func buildMoveCubes() [18]Cube {
	quarter := [6]Cube{moveU, moveR, moveF, moveD, moveL, moveB}

	var cubes [18]Cube
	for face := 0; face < 6; face++ {
		q := quarter[face]
		cubes[face*3] = q
		cubes[face*3+1] = q.Multiply(&q)
		cubes[face*3+2] = cubes[face*3+1].Multiply(&q)
	}
	return cubes
}

// NumMoves is the size of the full move alphabet.
const NumMoves = 18

// Phase2Moves are the tokens that preserve the subgroup reached by phase 1:
// any turn of U and D, half turns only on R, F, L, B.
var Phase2Moves = []uint8{0, 1, 2, 4, 7, 9, 10, 11, 13, 16}

// IsPhase2Move reports whether the move token is legal inside the restricted
// group.
func IsPhase2Move(move uint8) bool {
	face := move / 3
	if face == 0 || face == 3 { // U or D
		return true
	}
	return move%3 == 1 // half turn
}
