package tables

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubesolver/internal/coord"
	"github.com/seamusw/cubesolver/internal/cubie"
)

var (
	tabOnce sync.Once
	tab     *Tables
)

// testTables builds the tables once for the whole package; construction is
// too expensive to repeat per test.
func testTables(t *testing.T) *Tables {
	t.Helper()
	tabOnce.Do(func() {
		tab = New()
	})
	return tab
}

func TestCheckPasses(t *testing.T) {
	require.NoError(t, testTables(t).Check())
}

func TestMoveTablesMatchCubieModel(t *testing.T) {
	tb := testTables(t)

	// Walk a scramble and verify every table transition against the cubie
	// model it was derived from.
	c := cubie.Solved()
	seq := []uint8{3, 0, 6, 15, 9, 12, 5, 2, 16, 7, 1, 10, 17, 8, 4}
	for _, m := range seq {
		twist, flip, slice := coord.Twist(&c), coord.Flip(&c), coord.Slice(&c)
		c.Apply(m)

		assert.Equal(t, coord.Twist(&c), int(tb.TwistMove[twist][m]))
		assert.Equal(t, coord.Flip(&c), int(tb.FlipMove[flip][m]))
		assert.Equal(t, coord.Slice(&c), int(tb.SliceMove[slice][m]))
	}
}

func TestPhase2TablesMatchCubieModel(t *testing.T) {
	tb := testTables(t)

	c := cubie.Solved()
	for _, m := range []uint8{0, 4, 9, 16, 2, 13, 7, 10, 1, 11} {
		cp, e8, sp := coord.CornerPerm(&c), coord.Edge8Perm(&c), coord.SlicePerm(&c)
		c.Apply(m)

		require.True(t, cubie.IsPhase2Move(m))
		assert.Equal(t, coord.CornerPerm(&c), int(tb.CornerPermMove[cp][m]))
		assert.Equal(t, coord.Edge8Perm(&c), int(tb.Edge8Move[e8][m]))
		assert.Equal(t, coord.SlicePerm(&c), int(tb.SlicePermMove[sp][m]))
	}
}

func TestPhase2TablesRejectOutOfGroupMoves(t *testing.T) {
	tb := testTables(t)

	for m := uint8(0); m < cubie.NumMoves; m++ {
		if cubie.IsPhase2Move(m) {
			continue
		}
		assert.Equal(t, uint16(InvalidEntry), tb.CornerPermMove[0][m], "move %d", m)
		assert.Equal(t, uint16(InvalidEntry), tb.Edge8Move[0][m], "move %d", m)
		assert.Equal(t, uint16(InvalidEntry), tb.SlicePermMove[0][m], "move %d", m)
	}
}

func TestPruningTargetIsZero(t *testing.T) {
	tb := testTables(t)
	assert.Zero(t, tb.Phase1Dist(0, 0, 0))
	assert.Zero(t, tb.Phase2Dist(0, 0, 0))
}

func TestPhase1PruningIsAdmissible(t *testing.T) {
	tb := testTables(t)

	// Any state reached by k moves from the target is at distance <= k, so
	// the stored lower bound may never exceed the move count.
	c := cubie.Solved()
	for k, m := range []uint8{3, 0, 6, 15, 9, 12, 5, 2, 16, 7, 14, 8} {
		c.Apply(m)
		h := int(tb.Phase1Dist(coord.Twist(&c), coord.Flip(&c), coord.Slice(&c)))
		assert.LessOrEqual(t, h, k+1, "after %d moves", k+1)
	}
}

func TestPhase2PruningIsAdmissible(t *testing.T) {
	tb := testTables(t)

	c := cubie.Solved()
	for k, m := range []uint8{0, 4, 9, 16, 2, 13, 7, 10, 1, 11, 4, 9} {
		c.Apply(m)
		h := int(tb.Phase2Dist(coord.CornerPerm(&c), coord.Edge8Perm(&c), coord.SlicePerm(&c)))
		assert.LessOrEqual(t, h, k+1, "after %d moves", k+1)
	}
}

func TestPruningNeverUnderestimatesNeighbors(t *testing.T) {
	tb := testTables(t)

	// A true distance table changes by at most 1 per move. Check the
	// phase-1 lookup along a walk: |h(next) - h(prev)| <= 1.
	twist, flip, slice := 0, 0, 0
	prev := int(tb.Phase1Dist(twist, flip, slice))
	for _, m := range []uint8{3, 6, 0, 15, 12, 9, 16, 2, 5, 8, 11, 14, 17, 1, 4} {
		twist = int(tb.TwistMove[twist][m])
		flip = int(tb.FlipMove[flip][m])
		slice = int(tb.SliceMove[slice][m])
		h := int(tb.Phase1Dist(twist, flip, slice))
		diff := h - prev
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 1)
		prev = h
	}
}

func TestNibblePacking(t *testing.T) {
	packed := make(nibbleTable, 4)
	for i := 0; i < 8; i++ {
		packed.set(i, uint8(i))
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, uint8(i), packed.get(i))
	}

	// High nibble writes must not clobber the low neighbor.
	packed.set(3, 9)
	assert.Equal(t, uint8(2), packed.get(2))
	assert.Equal(t, uint8(9), packed.get(3))
}
