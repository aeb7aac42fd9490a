// Package scramble generates random scramble sequences and converts move
// sequences into cube states.
package scramble

import (
	"lukechampine.com/frand"

	"github.com/seamusw/cubesolver/internal/cubie"
	"github.com/seamusw/cubesolver/internal/facelet"
	"github.com/seamusw/cubesolver/internal/notation"
	"github.com/seamusw/cubesolver/pkg/types"
)

// DefaultLength is the scramble length used when none is given.
const DefaultLength = 25

// Generate produces a random scramble of n moves (DefaultLength when
// n <= 0) and the facelet string it yields from the solved cube. Repeated
// and opposite-then-same face pairs are suppressed so every move disturbs
// the cube.
func Generate(n int) ([]types.Move, string) {
	if n <= 0 {
		n = DefaultLength
	}

	moves := make([]types.Move, 0, n)
	cube := cubie.Solved()

	prevFace := -1
	for len(moves) < n {
		tok := uint8(frand.Intn(cubie.NumMoves))
		face := int(tok / 3)
		if prevFace >= 0 && (face == prevFace || face == prevFace+3) {
			continue
		}
		prevFace = face

		cube.Apply(tok)
		moves = append(moves, types.MoveFromToken(tok))
	}

	return moves, facelet.Render(cube)
}

// ToFacelets applies a notation sequence to the solved cube and returns the
// resulting facelet string.
func ToFacelets(sequence string) (string, error) {
	moves, err := notation.ParseSequence(sequence)
	if err != nil {
		return "", err
	}

	cube := cubie.Solved()
	for _, m := range moves {
		cube.Apply(m.Token())
	}
	return facelet.Render(cube), nil
}
