// Package coord defines the integer coordinates the two-phase search runs
// on: bijections between classes of cubie states and small dense ranges,
// plus the inverse maps used while building tables.
//
// Every coordinate ranks the solved cube to 0, which is also each phase's
// search target.
package coord

import "github.com/seamusw/cubesolver/internal/cubie"

// Coordinate domain sizes.
const (
	NumTwist      = 2187  // 3^7 corner orientations
	NumFlip       = 2048  // 2^11 edge orientations
	NumSlice      = 495   // C(12,4) placements of the UD-slice edges
	NumCornerPerm = 40320 // 8! corner permutations
	NumEdge8Perm  = 40320 // 8! permutations of the non-slice edges
	NumSlicePerm  = 24    // 4! orderings within the slice
)

// Twist encodes the orientations of the first seven corners in radix 3;
// the eighth is forced by the twist-sum invariant.
func Twist(c *cubie.Cube) int {
	t := 0
	for i := 0; i < 7; i++ {
		t = 3*t + int(c.CO[i])
	}
	return t
}

// SetTwist writes the corner orientations realizing a twist coordinate.
func SetTwist(c *cubie.Cube, twist int) {
	sum := 0
	for i := 6; i >= 0; i-- {
		c.CO[i] = uint8(twist % 3)
		sum += twist % 3
		twist /= 3
	}
	c.CO[7] = uint8((3 - sum%3) % 3)
}

// Flip encodes the orientations of the first eleven edges in binary; the
// twelfth is forced by the flip-sum invariant.
func Flip(c *cubie.Cube) int {
	f := 0
	for i := 0; i < 11; i++ {
		f = 2*f + int(c.EO[i])
	}
	return f
}

// SetFlip writes the edge orientations realizing a flip coordinate.
func SetFlip(c *cubie.Cube, flip int) {
	sum := 0
	for i := 10; i >= 0; i-- {
		c.EO[i] = uint8(flip % 2)
		sum += flip % 2
		flip /= 2
	}
	c.EO[11] = uint8(sum % 2)
}

// binomial coefficients C(n,k) for n <= 12 and k <= 4, enough for the slice
// ranking.
var cnk [13][5]int

func init() {
	for n := 0; n <= 12; n++ {
		cnk[n][0] = 1
		for k := 1; k <= 4 && k <= n; k++ {
			cnk[n][k] = cnk[n-1][k-1]
			if k <= n-1 {
				cnk[n][k] += cnk[n-1][k]
			}
		}
	}
}

// Slice ranks the unordered set of positions holding the four UD-slice
// edges, by the combinatorial number system. The solved placement (all four
// in the slice) ranks to 0.
func Slice(c *cubie.Cube) int {
	a, x := 0, 0
	for j := 11; j >= 0; j-- {
		if c.EP[j] >= cubie.FR {
			a += cnk[11-j][x+1]
			x++
		}
	}
	return a
}

// SetSlice writes an edge permutation realizing a slice coordinate: the
// slice edges are distributed per the unranked subset and the remaining
// positions are filled with the non-slice edges in order.
func SetSlice(c *cubie.Cube, slice int) {
	sliceEdges := [4]cubie.Edge{cubie.FR, cubie.FL, cubie.BL, cubie.BR}
	otherEdges := [8]cubie.Edge{cubie.UR, cubie.UF, cubie.UL, cubie.UB, cubie.DR, cubie.DF, cubie.DL, cubie.DB}

	const unset = cubie.Edge(0xFF)
	for i := range c.EP {
		c.EP[i] = unset
	}

	x := 4
	for j := 0; j < 12; j++ {
		if slice-cnk[11-j][x] >= 0 {
			c.EP[j] = sliceEdges[4-x]
			slice -= cnk[11-j][x]
			x--
		}
	}
	next := 0
	for j := 0; j < 12; j++ {
		if c.EP[j] == unset {
			c.EP[j] = otherEdges[next]
			next++
		}
	}
}

// permRank computes the Lehmer-code (factorial base) index of a permutation
// of 0..n-1. The identity ranks to 0.
func permRank(p []uint8) int {
	idx := 0
	for i := 0; i < len(p); i++ {
		idx *= len(p) - i
		for j := i + 1; j < len(p); j++ {
			if p[j] < p[i] {
				idx++
			}
		}
	}
	return idx
}

// permUnrank writes the permutation of 0..n-1 with the given Lehmer index
// into out.
func permUnrank(idx int, out []uint8) {
	n := len(out)
	digits := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		digits[i] = idx % (n - i)
		idx /= n - i
	}
	avail := make([]uint8, n)
	for i := range avail {
		avail[i] = uint8(i)
	}
	for i := 0; i < n; i++ {
		out[i] = avail[digits[i]]
		avail = append(avail[:digits[i]], avail[digits[i]+1:]...)
	}
}

// CornerPerm ranks the full corner permutation.
func CornerPerm(c *cubie.Cube) int {
	var p [8]uint8
	for i := range p {
		p[i] = uint8(c.CP[i])
	}
	return permRank(p[:])
}

// SetCornerPerm writes the corner permutation with the given rank.
func SetCornerPerm(c *cubie.Cube, idx int) {
	var p [8]uint8
	permUnrank(idx, p[:])
	for i := range p {
		c.CP[i] = cubie.Corner(p[i])
	}
}

// Edge8Perm ranks the permutation of the eight non-slice edges across the
// eight non-slice positions. Meaningful only inside the restricted group,
// where those edges occupy exactly those positions.
func Edge8Perm(c *cubie.Cube) int {
	var p [8]uint8
	for i := range p {
		p[i] = uint8(c.EP[i])
	}
	return permRank(p[:])
}

// SetEdge8Perm writes the non-slice edge permutation with the given rank,
// leaving the slice positions holding the slice edges in order.
func SetEdge8Perm(c *cubie.Cube, idx int) {
	var p [8]uint8
	permUnrank(idx, p[:])
	for i := range p {
		c.EP[i] = cubie.Edge(p[i])
	}
	for i := 8; i < 12; i++ {
		c.EP[i] = cubie.Edge(i)
	}
}

// SlicePerm ranks the ordering of the four slice edges within the slice
// positions. Meaningful only inside the restricted group.
func SlicePerm(c *cubie.Cube) int {
	var p [4]uint8
	for i := range p {
		p[i] = uint8(c.EP[8+i]) - 8
	}
	return permRank(p[:])
}

// SetSlicePerm writes the in-slice ordering with the given rank, leaving the
// non-slice positions holding their home edges.
func SetSlicePerm(c *cubie.Cube, idx int) {
	var p [4]uint8
	permUnrank(idx, p[:])
	for i := 0; i < 8; i++ {
		c.EP[i] = cubie.Edge(i)
	}
	for i := range p {
		c.EP[8+i] = cubie.Edge(p[i] + 8)
	}
}

// Parity is the corner permutation parity; on any reachable cube it equals
// the edge permutation parity.
func Parity(c *cubie.Cube) int {
	return c.CornerParity()
}
