package cubesolver

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seamusw/cubesolver/internal/facelet"
	"github.com/seamusw/cubesolver/internal/scramble"
	"github.com/seamusw/cubesolver/internal/search"
	"github.com/seamusw/cubesolver/internal/tables"
	"github.com/seamusw/cubesolver/pkg/types"
)

// SolvedFacelets is the facelet string of the solved cube.
const SolvedFacelets = facelet.Solved

// Move is a single face turn in a solution or scramble.
type Move = types.Move

// Solver finds short move sequences bringing any legal cube state to the
// solved state. Construction builds the move and pruning tables; a Solver is
// immutable afterwards and safe for concurrent use.
type Solver struct {
	tab *tables.Tables
	cfg *config
}

// New constructs a Solver, building all coordinate tables. Table
// construction takes on the order of a second and is done exactly once per
// Solver.
func New(opts ...Option) (*Solver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	tab := tables.New()
	if err := tab.Check(); err != nil {
		return nil, err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("solver tables ready")

	return &Solver{tab: tab, cfg: cfg}, nil
}

// Solve parses a 54-character facelet string and returns the shortest
// solution found within the configured budget.
func (s *Solver) Solve(facelets string) ([]types.Move, error) {
	sols, err := s.Solutions(facelets)
	if err != nil {
		return nil, err
	}
	return sols[len(sols)-1], nil
}

// Solutions returns the successively improving solutions found for the
// given facelet string, best last. The number collected is controlled by
// WithSolutions.
func (s *Solver) Solutions(facelets string) ([][]types.Move, error) {
	cube, err := facelet.Parse(facelets)
	if err != nil {
		return nil, err
	}

	raw, err := search.Solve(s.tab, cube, search.Config{
		Threads:      s.cfg.threads,
		Timeout:      s.cfg.timeout,
		MaxLength:    s.cfg.maxLength,
		NumSolutions: s.cfg.numSolutions,
		Splits:       s.cfg.splits,
	})
	if err != nil {
		return nil, err
	}

	out := make([][]types.Move, len(raw))
	for i, tokens := range raw {
		moves := make([]types.Move, len(tokens))
		for j, tok := range tokens {
			moves[j] = types.MoveFromToken(tok)
		}
		out[i] = moves
	}
	return out, nil
}

// SolveScramble applies a scramble sequence to the solved cube and solves
// the result.
func (s *Solver) SolveScramble(sequence string) ([]types.Move, error) {
	facelets, err := scramble.ToFacelets(sequence)
	if err != nil {
		return nil, err
	}
	return s.Solve(facelets)
}

// Validate checks a facelet string without solving it. It returns nil for a
// solvable state, ErrInvalidFacelet or ErrInvalidCube otherwise.
func Validate(facelets string) error {
	_, err := facelet.Parse(facelets)
	return err
}

// RandomScramble generates a random scramble of the given length (25 when
// n <= 0) and returns both the move sequence and the facelet string it
// produces from the solved cube.
func RandomScramble(n int) ([]types.Move, string) {
	return scramble.Generate(n)
}
