// Package notation provides move notation conversion utilities.
package notation

import (
	"fmt"
	"strings"

	"github.com/seamusw/cubesolver/pkg/types"
)

// Parse parses a standard cube notation token into a Move.
// Examples: R, R', R2, U, U', U2
func Parse(s string) (types.Move, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return types.Move{}, false
	}

	var face types.Face
	switch s[0] {
	case 'U', 'u':
		face = types.FaceU
	case 'R', 'r':
		face = types.FaceR
	case 'F', 'f':
		face = types.FaceF
	case 'D', 'd':
		face = types.FaceD
	case 'L', 'l':
		face = types.FaceL
	case 'B', 'b':
		face = types.FaceB
	default:
		return types.Move{}, false
	}

	turn := types.TurnCW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = types.TurnCCW
		case "2":
			turn = types.Turn180
		case "2'":
			turn = types.Turn180 // Same as 180
		default:
			return types.Move{}, false
		}
	}

	return types.Move{Face: face, Turn: turn}, true
}

// ParseSequence parses a space-separated sequence of moves. Unlike a live
// move stream, a solver input sequence with an unrecognized token is an
// error, not noise to skip.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for _, part := range parts {
		move, ok := Parse(part)
		if !ok {
			return nil, fmt.Errorf("invalid move notation %q", part)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
