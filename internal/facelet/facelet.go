// Package facelet converts between the 54-character facelet string
// representation and the piece-level cubie model.
//
// The string lists the faces in U, R, F, D, L, B order, each face row-major
// from the top-left sticker. Characters are face letters, fixed by the center
// colors (U=white, R=red, F=green, D=yellow, L=orange, B=blue).
package facelet

import (
	"errors"
	"fmt"

	"github.com/seamusw/cubesolver/internal/cubie"
)

// Typed decode failures. ErrInvalidFacelet covers strings that do not even
// describe stickers on a cube; ErrInvalidCube covers well-formed sticker
// layouts that no sequence of face turns can reach.
var (
	ErrInvalidFacelet = errors.New("cubesolver: invalid facelet string")
	ErrInvalidCube    = errors.New("cubesolver: unsolvable cube state")
)

// StringLength is the number of stickers on a 3x3x3 cube.
const StringLength = 54

// Solved is the facelet string of the solved cube.
const Solved = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// cornerFacelets[slot] lists the three sticker positions of a corner slot,
// starting from the U/D sticker and continuing clockwise around the corner.
var cornerFacelets = [8][3]int{
	{8, 9, 20},   // URF
	{6, 18, 38},  // UFL
	{0, 36, 47},  // ULB
	{2, 45, 11},  // UBR
	{29, 26, 15}, // DFR
	{27, 44, 24}, // DLF
	{33, 53, 42}, // DBL
	{35, 17, 51}, // DRB
}

// cornerColors[cubie] lists the face letters carried by a corner cubie, in
// the same sticker order as cornerFacelets.
var cornerColors = [8][3]uint8{
	{0, 1, 2}, // URF
	{0, 2, 4}, // UFL
	{0, 4, 5}, // ULB
	{0, 5, 1}, // UBR
	{3, 2, 1}, // DFR
	{3, 4, 2}, // DLF
	{3, 5, 4}, // DBL
	{3, 1, 5}, // DRB
}

// edgeFacelets and edgeColors are the two-sticker analogues for edges.
var edgeFacelets = [12][2]int{
	{5, 10},  // UR
	{7, 19},  // UF
	{3, 37},  // UL
	{1, 46},  // UB
	{32, 16}, // DR
	{28, 25}, // DF
	{30, 43}, // DL
	{34, 52}, // DB
	{23, 12}, // FR
	{21, 41}, // FL
	{50, 39}, // BL
	{48, 14}, // BR
}

var edgeColors = [12][2]uint8{
	{0, 1}, // UR
	{0, 2}, // UF
	{0, 4}, // UL
	{0, 5}, // UB
	{3, 1}, // DR
	{3, 2}, // DF
	{3, 4}, // DL
	{3, 5}, // DB
	{2, 1}, // FR
	{2, 4}, // FL
	{5, 4}, // BL
	{5, 1}, // BR
}

// centerPositions[face] is the sticker index of each face's center.
var centerPositions = [6]int{4, 13, 22, 31, 40, 49}

const faceLetters = "URFDLB"

func faceIndex(ch byte) (uint8, bool) {
	switch ch {
	case 'U':
		return 0, true
	case 'R':
		return 1, true
	case 'F':
		return 2, true
	case 'D':
		return 3, true
	case 'L':
		return 4, true
	case 'B':
		return 5, true
	}
	return 0, false
}

// Parse decodes a facelet string into a cubie state. It returns
// ErrInvalidFacelet for malformed strings and ErrInvalidCube for sticker
// layouts violating the solvability invariants.
func Parse(s string) (cubie.Cube, error) {
	var c cubie.Cube

	if len(s) != StringLength {
		return c, fmt.Errorf("%w: length %d, want %d", ErrInvalidFacelet, len(s), StringLength)
	}

	var colors [StringLength]uint8
	var counts [6]int
	for i := 0; i < StringLength; i++ {
		f, ok := faceIndex(s[i])
		if !ok {
			return c, fmt.Errorf("%w: unknown face letter %q at position %d", ErrInvalidFacelet, s[i], i)
		}
		colors[i] = f
		counts[f]++
	}
	for f, n := range counts {
		if n != 9 {
			return c, fmt.Errorf("%w: face %c appears %d times, want 9", ErrInvalidFacelet, faceLetters[f], n)
		}
	}
	for f, pos := range centerPositions {
		if colors[pos] != uint8(f) {
			return c, fmt.Errorf("%w: center of face %c is %c", ErrInvalidFacelet, faceLetters[f], s[pos])
		}
	}

	// Match each corner slot's sticker triple against the 8 corner cubies in
	// all 3 rotations. The rotation that matches is the twist.
	for slot := 0; slot < 8; slot++ {
		found := false
		for id := 0; id < 8 && !found; id++ {
			for ori := 0; ori < 3 && !found; ori++ {
				if colors[cornerFacelets[slot][ori%3]] == cornerColors[id][0] &&
					colors[cornerFacelets[slot][(1+ori)%3]] == cornerColors[id][1] &&
					colors[cornerFacelets[slot][(2+ori)%3]] == cornerColors[id][2] {
					c.CP[slot] = cubie.Corner(id)
					c.CO[slot] = uint8(ori)
					found = true
				}
			}
		}
		if !found {
			return c, fmt.Errorf("%w: corner slot %d has no matching cubie", ErrInvalidFacelet, slot)
		}
	}

	// Same for edges, with 2 stickers and 2 flips.
	for slot := 0; slot < 12; slot++ {
		found := false
		for id := 0; id < 12 && !found; id++ {
			for ori := 0; ori < 2 && !found; ori++ {
				if colors[edgeFacelets[slot][ori]] == edgeColors[id][0] &&
					colors[edgeFacelets[slot][1-ori]] == edgeColors[id][1] {
					c.EP[slot] = cubie.Edge(id)
					c.EO[slot] = uint8(ori)
					found = true
				}
			}
		}
		if !found {
			return c, fmt.Errorf("%w: edge slot %d has no matching cubie", ErrInvalidFacelet, slot)
		}
	}

	if err := c.Verify(); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidCube, err)
	}
	return c, nil
}

// Render encodes a cubie state back into its facelet string.
func Render(c cubie.Cube) string {
	var out [StringLength]byte

	for f, pos := range centerPositions {
		out[pos] = faceLetters[f]
	}

	for slot := 0; slot < 8; slot++ {
		id := c.CP[slot]
		ori := int(c.CO[slot])
		for n := 0; n < 3; n++ {
			out[cornerFacelets[slot][(n+ori)%3]] = faceLetters[cornerColors[id][n]]
		}
	}

	for slot := 0; slot < 12; slot++ {
		id := c.EP[slot]
		ori := int(c.EO[slot])
		for n := 0; n < 2; n++ {
			out[edgeFacelets[slot][(n+ori)%2]] = faceLetters[edgeColors[id][n]]
		}
	}

	return string(out[:])
}
