// Package tables precomputes the coordinate transition tables and the
// breadth-first pruning tables that drive the two-phase search. Tables are
// built once at solver construction and are immutable afterwards, so they
// can be shared read-only across search workers.
package tables

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seamusw/cubesolver/internal/coord"
	"github.com/seamusw/cubesolver/internal/cubie"
)

// InvalidEntry marks a move-table slot for a move that is not allowed in the
// phase the table serves.
const InvalidEntry = 0xFFFF

// maxNibble is the largest distance a packed pruning entry can carry.
// Deeper entries saturate, which keeps the heuristic admissible.
const maxNibble = 14

const unvisited = 0xFF

// Tables bundles every precomputed array the search needs.
type Tables struct {
	// Phase-1 move tables, indexed [coordinate][move token].
	TwistMove [][cubie.NumMoves]uint16
	FlipMove  [][cubie.NumMoves]uint16
	SliceMove [][cubie.NumMoves]uint16

	// Phase-2 move tables. Columns for moves outside the restricted group
	// hold InvalidEntry.
	CornerPermMove [][cubie.NumMoves]uint16
	Edge8Move      [][cubie.NumMoves]uint16
	SlicePermMove  [][cubie.NumMoves]uint16

	// Pruning tables over coordinate pairs, two 4-bit entries per byte.
	twistSlice  nibbleTable
	flipSlice   nibbleTable
	cornerSlice nibbleTable
	edge8Slice  nibbleTable
}

// New builds all move and pruning tables. Construction is single-threaded
// and deterministic.
func New() *Tables {
	t := &Tables{}

	start := time.Now()
	t.buildMoveTables()
	log.Debug().Dur("elapsed", time.Since(start)).Msg("move tables built")

	start = time.Now()
	t.buildPruningTables()
	log.Debug().Dur("elapsed", time.Since(start)).Msg("pruning tables built")

	return t
}

// buildMoveTables fills every transition table by unranking each coordinate
// to a canonical cubie state, applying each move, and re-ranking.
func (t *Tables) buildMoveTables() {
	t.TwistMove = make([][cubie.NumMoves]uint16, coord.NumTwist)
	for i := 0; i < coord.NumTwist; i++ {
		base := cubie.Solved()
		coord.SetTwist(&base, i)
		for m := uint8(0); m < cubie.NumMoves; m++ {
			c := base
			c.Apply(m)
			t.TwistMove[i][m] = uint16(coord.Twist(&c))
		}
	}

	t.FlipMove = make([][cubie.NumMoves]uint16, coord.NumFlip)
	for i := 0; i < coord.NumFlip; i++ {
		base := cubie.Solved()
		coord.SetFlip(&base, i)
		for m := uint8(0); m < cubie.NumMoves; m++ {
			c := base
			c.Apply(m)
			t.FlipMove[i][m] = uint16(coord.Flip(&c))
		}
	}

	t.SliceMove = make([][cubie.NumMoves]uint16, coord.NumSlice)
	for i := 0; i < coord.NumSlice; i++ {
		base := cubie.Solved()
		coord.SetSlice(&base, i)
		for m := uint8(0); m < cubie.NumMoves; m++ {
			c := base
			c.Apply(m)
			t.SliceMove[i][m] = uint16(coord.Slice(&c))
		}
	}

	// Phase-2 tables are traversed with the restricted move set only; the
	// quarter turns of R, F, L, B leave the group and their columns are
	// poisoned rather than populated.
	t.CornerPermMove = make([][cubie.NumMoves]uint16, coord.NumCornerPerm)
	for i := 0; i < coord.NumCornerPerm; i++ {
		base := cubie.Solved()
		coord.SetCornerPerm(&base, i)
		for m := uint8(0); m < cubie.NumMoves; m++ {
			if !cubie.IsPhase2Move(m) {
				t.CornerPermMove[i][m] = InvalidEntry
				continue
			}
			c := base
			c.Apply(m)
			t.CornerPermMove[i][m] = uint16(coord.CornerPerm(&c))
		}
	}

	t.Edge8Move = make([][cubie.NumMoves]uint16, coord.NumEdge8Perm)
	for i := 0; i < coord.NumEdge8Perm; i++ {
		base := cubie.Solved()
		coord.SetEdge8Perm(&base, i)
		for m := uint8(0); m < cubie.NumMoves; m++ {
			if !cubie.IsPhase2Move(m) {
				t.Edge8Move[i][m] = InvalidEntry
				continue
			}
			c := base
			c.Apply(m)
			t.Edge8Move[i][m] = uint16(coord.Edge8Perm(&c))
		}
	}

	t.SlicePermMove = make([][cubie.NumMoves]uint16, coord.NumSlicePerm)
	for i := 0; i < coord.NumSlicePerm; i++ {
		base := cubie.Solved()
		coord.SetSlicePerm(&base, i)
		for m := uint8(0); m < cubie.NumMoves; m++ {
			if !cubie.IsPhase2Move(m) {
				t.SlicePermMove[i][m] = InvalidEntry
				continue
			}
			c := base
			c.Apply(m)
			t.SlicePermMove[i][m] = uint16(coord.SlicePerm(&c))
		}
	}
}

func (t *Tables) buildPruningTables() {
	t.twistSlice = t.buildPairTable(coord.NumTwist, coord.NumSlice, t.TwistMove, t.SliceMove, allMoves)
	t.flipSlice = t.buildPairTable(coord.NumFlip, coord.NumSlice, t.FlipMove, t.SliceMove, allMoves)
	t.cornerSlice = t.buildPairTable(coord.NumCornerPerm, coord.NumSlicePerm, t.CornerPermMove, t.SlicePermMove, cubie.Phase2Moves)
	t.edge8Slice = t.buildPairTable(coord.NumEdge8Perm, coord.NumSlicePerm, t.Edge8Move, t.SlicePermMove, cubie.Phase2Moves)
}

var allMoves = func() []uint8 {
	ms := make([]uint8, cubie.NumMoves)
	for i := range ms {
		ms[i] = uint8(i)
	}
	return ms
}()

// buildPairTable runs a breadth-first scan over the product graph of two
// coordinates, starting from the (0, 0) target, and packs the resulting
// distances into nibbles. Because the move set is closed under inverses the
// forward scan yields exactly the distance-to-target.
func (t *Tables) buildPairTable(sizeA, sizeB int, moveA, moveB [][cubie.NumMoves]uint16, moves []uint8) nibbleTable {
	dist := make([]uint8, sizeA*sizeB)
	for i := range dist {
		dist[i] = unvisited
	}
	dist[0] = 0

	for depth := uint8(0); ; depth++ {
		spread := 0
		for a := 0; a < sizeA; a++ {
			rowA := &moveA[a]
			base := a * sizeB
			for b := 0; b < sizeB; b++ {
				if dist[base+b] != depth {
					continue
				}
				rowB := &moveB[b]
				for _, m := range moves {
					na, nb := rowA[m], rowB[m]
					next := int(na)*sizeB + int(nb)
					if dist[next] == unvisited {
						dist[next] = depth + 1
						spread++
					}
				}
			}
		}
		if spread == 0 {
			break
		}
	}

	packed := make(nibbleTable, (len(dist)+1)/2)
	for i := range packed {
		packed[i] = unvisited
	}
	for i, d := range dist {
		if d == unvisited {
			// Unreachable pair (phase-2 parity mismatch); leave the sentinel
			// so a lookup on it prunes immediately.
			continue
		}
		if d > maxNibble {
			d = maxNibble
		}
		packed.set(i, d)
	}
	return packed
}

// nibbleTable stores 4-bit distances, two per byte; the index parity selects
// the nibble.
type nibbleTable []uint8

func (t nibbleTable) get(i int) uint8 {
	if i&1 == 0 {
		return t[i>>1] & 0x0F
	}
	return t[i>>1] >> 4
}

func (t nibbleTable) set(i int, v uint8) {
	if i&1 == 0 {
		t[i>>1] = t[i>>1]&0xF0 | v&0x0F
	} else {
		t[i>>1] = t[i>>1]&0x0F | v<<4
	}
}

// Phase1Dist returns the admissible lower bound on the number of moves
// needed to reach the phase-1 target from the given coordinates.
func (t *Tables) Phase1Dist(twist, flip, slice int) uint8 {
	a := t.twistSlice.get(twist*coord.NumSlice + slice)
	b := t.flipSlice.get(flip*coord.NumSlice + slice)
	if a > b {
		return a
	}
	return b
}

// Phase2Dist returns the admissible lower bound on the number of restricted
// moves needed to solve the given phase-2 coordinates.
func (t *Tables) Phase2Dist(cornerPerm, edge8Perm, slicePerm int) uint8 {
	a := t.cornerSlice.get(cornerPerm*coord.NumSlicePerm + slicePerm)
	b := t.edge8Slice.get(edge8Perm*coord.NumSlicePerm + slicePerm)
	if a > b {
		return a
	}
	return b
}
