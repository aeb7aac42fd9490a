package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubesolver/internal/cubie"
	"github.com/seamusw/cubesolver/internal/tables"
)

var (
	tabOnce sync.Once
	tab     *tables.Tables
)

func testTables(t *testing.T) *tables.Tables {
	t.Helper()
	tabOnce.Do(func() {
		tab = tables.New()
	})
	return tab
}

func defaultConfig() Config {
	return Config{
		Threads:      1,
		Timeout:      3 * time.Second,
		MaxLength:    21,
		NumSolutions: 1,
	}
}

func scrambled(moves ...uint8) cubie.Cube {
	c := cubie.Solved()
	c.ApplyAll(moves)
	return c
}

func TestSolveSolvedCube(t *testing.T) {
	sols, err := Solve(testTables(t), cubie.Solved(), defaultConfig())
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Empty(t, sols[0])
}

func TestSolveSingleQuarterTurn(t *testing.T) {
	// R applied to solved; the unique length-1 solution is R'.
	sols, err := Solve(testTables(t), scrambled(3), defaultConfig())
	require.NoError(t, err)

	best := sols[len(sols)-1]
	require.Len(t, best, 1)
	assert.Equal(t, uint8(5), best[0])
}

func TestSolveSingleQuarterTurnEveryFace(t *testing.T) {
	// The minimal answer for each single-turn scramble starts on that very
	// face, so no face may be excluded at the search root.
	for face := uint8(0); face < 6; face++ {
		cw, ccw := face*3, face*3+2
		sols, err := Solve(testTables(t), scrambled(cw), defaultConfig())
		require.NoError(t, err, "face %d", face)

		best := sols[len(sols)-1]
		require.Len(t, best, 1, "face %d", face)
		assert.Equal(t, ccw, best[0], "face %d", face)
	}
}

func TestSolveHalfTurn(t *testing.T) {
	sols, err := Solve(testTables(t), scrambled(4), defaultConfig())
	require.NoError(t, err)

	best := sols[len(sols)-1]
	require.Len(t, best, 1)
	assert.Equal(t, uint8(4), best[0])
}

func TestSolveShortSequence(t *testing.T) {
	// R U R' U'
	start := scrambled(3, 0, 5, 2)
	sols, err := Solve(testTables(t), start, defaultConfig())
	require.NoError(t, err)

	best := sols[len(sols)-1]
	assert.LessOrEqual(t, len(best), 8)

	check := start
	check.ApplyAll(best)
	assert.True(t, check.IsSolved())
}

func TestSolveScrambles(t *testing.T) {
	scrambles := [][]uint8{
		{3, 0, 6, 15, 9, 12},
		{17, 2, 8, 11, 5, 14, 0, 7},
		{1, 10, 4, 13, 7, 16, 3, 9, 6, 12},
		{5, 0, 16, 9, 2, 13, 8, 1, 11, 6, 17, 4},
	}
	for _, scr := range scrambles {
		start := scrambled(scr...)
		sols, err := Solve(testTables(t), start, defaultConfig())
		require.NoError(t, err, "scramble %v", scr)

		best := sols[len(sols)-1]
		assert.LessOrEqual(t, len(best), 21, "scramble %v", scr)

		check := start
		check.ApplyAll(best)
		assert.True(t, check.IsSolved(), "scramble %v", scr)
	}
}

func TestSolutionHasNoRedundantPairs(t *testing.T) {
	start := scrambled(5, 0, 16, 9, 2, 13, 8, 1, 11, 6)
	sols, err := Solve(testTables(t), start, defaultConfig())
	require.NoError(t, err)

	best := sols[len(sols)-1]
	for i := 1; i < len(best); i++ {
		prev, cur := int(best[i-1]/3), int(best[i]/3)
		assert.NotEqual(t, prev, cur, "consecutive moves on the same face at %d", i)
		assert.NotEqual(t, prev+3, cur, "unordered opposite-face pair at %d", i)
	}
}

func TestSuperflip(t *testing.T) {
	// All twelve edges flipped in place: the canonical deep state.
	start := cubie.Solved()
	for i := range start.EO {
		start.EO[i] = 1
	}
	require.NoError(t, start.Verify())

	cfg := defaultConfig()
	cfg.MaxLength = 24
	cfg.Timeout = 5 * time.Second
	sols, err := Solve(testTables(t), start, cfg)
	require.NoError(t, err)

	best := sols[len(sols)-1]
	assert.LessOrEqual(t, len(best), 24)

	check := start
	check.ApplyAll(best)
	assert.True(t, check.IsSolved())
}

func TestDeterministicWithOneThread(t *testing.T) {
	start := scrambled(3, 0, 6, 15, 9, 12, 5, 2)

	first, err := Solve(testTables(t), start, defaultConfig())
	require.NoError(t, err)
	second, err := Solve(testTables(t), start, defaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParallelSolveIsValid(t *testing.T) {
	start := scrambled(5, 0, 16, 9, 2, 13, 8, 1, 11, 6, 17, 4)

	cfg := defaultConfig()
	cfg.Threads = 4
	sols, err := Solve(testTables(t), start, cfg)
	require.NoError(t, err)

	best := sols[len(sols)-1]
	assert.LessOrEqual(t, len(best), cfg.MaxLength)

	check := start
	check.ApplyAll(best)
	assert.True(t, check.IsSolved())
}

func TestImprovingSolutions(t *testing.T) {
	start := scrambled(5, 0, 16, 9, 2, 13, 8, 1, 11, 6)

	cfg := defaultConfig()
	cfg.NumSolutions = 3
	cfg.Timeout = 2 * time.Second
	sols, err := Solve(testTables(t), start, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, sols)

	for i := 1; i < len(sols); i++ {
		assert.Less(t, len(sols[i]), len(sols[i-1]), "solutions must improve")
	}
}

func TestTimeout(t *testing.T) {
	start := scrambled(5, 0, 16, 9, 2, 13, 8, 1, 11, 6, 17, 4)

	cfg := defaultConfig()
	cfg.Timeout = time.Nanosecond
	_, err := Solve(testTables(t), start, cfg)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestLengthExceeded(t *testing.T) {
	// R U cannot be undone in a single move.
	start := scrambled(3, 0)

	cfg := defaultConfig()
	cfg.MaxLength = 1
	_, err := Solve(testTables(t), start, cfg)
	assert.ErrorIs(t, err, ErrLengthExceeded)
}

func TestMoveAllowed(t *testing.T) {
	// No predecessor admits every face, F (face 2) included.
	for face := 0; face < 6; face++ {
		assert.True(t, moveAllowed(-1, face), "root move on face %d", face)
	}
	assert.False(t, moveAllowed(0, 0), "same face")
	assert.False(t, moveAllowed(0, 3), "U then D is the unordered duplicate")
	assert.True(t, moveAllowed(3, 0), "D then U is the canonical order")
	assert.True(t, moveAllowed(1, 2))
}
