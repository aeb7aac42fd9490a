// Package search implements the two-phase IDA* solver: an iterative
// deepening reduction search into the restricted group, a nested restricted
// search to the solved state, and a coordinator that can race several
// phase-1 partitions across worker threads.
package search

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seamusw/cubesolver/internal/coord"
	"github.com/seamusw/cubesolver/internal/cubie"
	"github.com/seamusw/cubesolver/internal/tables"
)

// Depth caps for the two phases. Any cube reduces to the restricted group in
// at most 12 moves and solves within it in at most 18.
const (
	MaxPhase1 = 12
	MaxPhase2 = 18
)

var (
	// ErrTimeout is returned when the time budget expires before any
	// solution is found.
	ErrTimeout = errors.New("cubesolver: no solution within time budget")
	// ErrLengthExceeded is returned when no solution exists within the
	// configured move limit.
	ErrLengthExceeded = errors.New("cubesolver: no solution within move limit")
)

// Config carries the per-solve search parameters.
type Config struct {
	Threads      int
	Timeout      time.Duration
	MaxLength    int
	NumSolutions int
	Splits       int
}

// shared is the only cross-worker state: the best total length as an atomic
// (workers read it to cut phase-2 effort), the stop flag polled at every
// node, the read-only budget deadline, and the mutex-guarded solution list.
type shared struct {
	bestLen  atomic.Int32
	stop     atomic.Bool
	timedOut atomic.Bool
	nodes    atomic.Uint64
	deadline time.Time

	mu        sync.Mutex
	solutions [][]uint8
}

func (s *shared) stopped() bool {
	return s.stop.Load()
}

// record installs an improving solution. Returns immediately if the
// candidate no longer beats the best by the time the lock is held. A
// candidate arriving after the budget deadline is dropped and stops the
// search, even if the timer has not fired yet.
func (s *shared) record(sol []uint8, worker int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if time.Now().After(s.deadline) {
		s.timedOut.Store(true)
		s.stop.Store(true)
		return
	}
	if int32(len(sol)) >= s.bestLen.Load() {
		return
	}
	s.solutions = append(s.solutions, sol)
	s.bestLen.Store(int32(len(sol)))

	log.Debug().
		Int("worker", worker).
		Int("total", len(sol)).
		Msg("improved solution")
}

// optimize collapses a concatenated phase-1/phase-2 sequence: adjacent
// same-face moves merge into one turn or cancel outright. Phase 2 may begin
// on the face phase 1 ended with, so the seam regularly shrinks here.
func optimize(moves []uint8) []uint8 {
	out := append([]uint8(nil), moves...)
	for changed := true; changed; {
		changed = false
		for i := 0; i+1 < len(out); i++ {
			if out[i]/3 != out[i+1]/3 {
				continue
			}
			// Turn amounts are 1, 2, 3 quarter turns for tokens 0, 1, 2.
			turns := (out[i]%3 + out[i+1]%3 + 2) % 4
			if turns == 0 {
				out = append(out[:i], out[i+2:]...)
			} else {
				out[i] = out[i]/3*3 + (turns - 1)
				out = append(out[:i+1], out[i+2:]...)
			}
			changed = true
			break
		}
	}
	return out
}

// Solve runs the two-phase search from the given cubie state and returns
// up to NumSolutions improving solutions, best last, as move token
// sequences. The search keeps tightening the best total until the phase-1
// thresholds are exhausted or the time budget expires, so given enough
// budget the result is the shortest total the two-phase decomposition
// admits.
func Solve(tab *tables.Tables, start cubie.Cube, cfg Config) ([][]uint8, error) {
	goal := cfg.NumSolutions
	if goal < 1 {
		goal = 1
	}

	sh := &shared{deadline: time.Now().Add(cfg.Timeout)}
	sh.bestLen.Store(int32(cfg.MaxLength) + 1)

	timer := time.AfterFunc(cfg.Timeout, func() {
		sh.timedOut.Store(true)
		sh.stop.Store(true)
	})
	defer timer.Stop()

	began := time.Now()

	// A cube already inside the restricted group admits the empty phase-1
	// reduction, which no first-move partition covers. Probe it once up
	// front; this also settles the already-solved cube.
	if coord.Twist(&start) == 0 && coord.Flip(&start) == 0 && coord.Slice(&start) == 0 {
		w := newWorker(tab, sh, start, 0, nil)
		w.candidate(0)
		w.flushNodes()
	}

	if cfg.Threads <= 1 {
		w := newWorker(tab, sh, start, 0, nil)
		w.run()
	} else {
		runCoordinator(tab, sh, start, cfg)
	}

	log.Debug().
		Uint64("nodes", sh.nodes.Load()).
		Dur("elapsed", time.Since(began)).
		Int("solutions", len(sh.solutions)).
		Msg("search finished")

	if len(sh.solutions) == 0 {
		if sh.timedOut.Load() {
			return nil, ErrTimeout
		}
		return nil, ErrLengthExceeded
	}

	// A returned solution must actually solve the cube it was derived from;
	// a mismatch means corrupted tables, not a user error.
	best := sh.solutions[len(sh.solutions)-1]
	check := start
	check.ApplyAll(best)
	if !check.IsSolved() {
		return nil, fmt.Errorf("cubesolver: internal error: solution failed verification")
	}

	sols := sh.solutions
	if len(sols) > goal {
		sols = sols[len(sols)-goal:]
	}
	return sols, nil
}

// worker owns all mutable state of one search thread.
type worker struct {
	tab   *tables.Tables
	sh    *shared
	start cubie.Cube
	id    int

	// firstMoves restricts the move tried at phase-1 depth 0; nil means
	// every move is in bounds.
	firstMoves []uint8

	moves1 [MaxPhase1]uint8
	moves2 [MaxPhase2]uint8
	nodes  uint64
}

func newWorker(tab *tables.Tables, sh *shared, start cubie.Cube, id int, firstMoves []uint8) *worker {
	return &worker{tab: tab, sh: sh, start: start, id: id, firstMoves: firstMoves}
}

func (w *worker) flushNodes() {
	w.sh.nodes.Add(w.nodes)
	w.nodes = 0
}

// run iterates the phase-1 threshold upward, launching a depth-limited DFS
// at each bound.
func (w *worker) run() {
	twist := coord.Twist(&w.start)
	flip := coord.Flip(&w.start)
	slice := coord.Slice(&w.start)

	lower := int(w.tab.Phase1Dist(twist, flip, slice))
	if lower < 1 {
		lower = 1
	}
	for bound := lower; bound <= MaxPhase1; bound++ {
		if w.sh.stopped() || bound >= int(w.sh.bestLen.Load()) {
			break
		}
		w.phase1(twist, flip, slice, 0, bound, -1)
		w.flushNodes()
	}
}

// moveAllowed suppresses a move on the same face as its predecessor, and
// orders commuting opposite-face pairs so each is explored once. A negative
// prevFace means no predecessor: every move is allowed at the root.
func moveAllowed(prevFace, face int) bool {
	return prevFace < 0 || (face != prevFace && face != prevFace+3)
}

// phase1 is the depth-limited DFS of the reduction search. depth counts
// moves already on the stack; the candidate test fires only at the exact
// bound so each iteration enumerates new phase-1 solutions.
func (w *worker) phase1(twist, flip, slice, depth, bound, prevFace int) {
	if w.sh.stopped() {
		return
	}
	w.nodes++

	if depth == bound {
		if twist == 0 && flip == 0 && slice == 0 {
			w.candidate(depth)
		}
		return
	}

	if int(w.tab.Phase1Dist(twist, flip, slice)) > bound-depth {
		return
	}

	for m := uint8(0); m < cubie.NumMoves; m++ {
		face := int(m / 3)
		if !moveAllowed(prevFace, face) {
			continue
		}
		if depth == 0 && w.firstMoves != nil && !contains(w.firstMoves, m) {
			continue
		}

		w.moves1[depth] = m
		w.phase1(
			int(w.tab.TwistMove[twist][m]),
			int(w.tab.FlipMove[flip][m]),
			int(w.tab.SliceMove[slice][m]),
			depth+1, bound, face)
	}
}

func contains(ms []uint8, m uint8) bool {
	for _, x := range ms {
		if x == m {
			return true
		}
	}
	return false
}

// candidate runs the restricted phase-2 search from the state reached by
// the current phase-1 prefix. The tail bound is capped by the best total
// found so far, so phase 2 never explores solutions that cannot improve.
// Phase 2 starts with no predecessor: a tail opening on the face phase 1
// ended with merges into a single turn when the solution is assembled.
func (w *worker) candidate(d1 int) {
	c := w.start
	c.ApplyAll(w.moves1[:d1])

	cp := coord.CornerPerm(&c)
	e8 := coord.Edge8Perm(&c)
	sp := coord.SlicePerm(&c)

	for bound := int(w.tab.Phase2Dist(cp, e8, sp)); ; bound++ {
		maxTail := int(w.sh.bestLen.Load()) - d1 - 1
		if maxTail > MaxPhase2 {
			maxTail = MaxPhase2
		}
		if bound > maxTail || w.sh.stopped() {
			return
		}
		if w.phase2(cp, e8, sp, 0, bound, -1) {
			raw := make([]uint8, 0, d1+bound)
			raw = append(raw, w.moves1[:d1]...)
			raw = append(raw, w.moves2[:bound]...)
			w.sh.record(optimize(raw), w.id)
			return
		}
	}
}

// phase2 is the depth-limited DFS inside the restricted group. Returns true
// once the solved coordinates are reached at the exact bound.
func (w *worker) phase2(cp, e8, sp, depth, bound, prevFace int) bool {
	if w.sh.stopped() {
		return false
	}
	w.nodes++

	if depth == bound {
		return cp == 0 && e8 == 0 && sp == 0
	}

	if int(w.tab.Phase2Dist(cp, e8, sp)) > bound-depth {
		return false
	}

	for _, m := range cubie.Phase2Moves {
		face := int(m / 3)
		if !moveAllowed(prevFace, face) {
			continue
		}

		w.moves2[depth] = m
		if w.phase2(
			int(w.tab.CornerPermMove[cp][m]),
			int(w.tab.Edge8Move[e8][m]),
			int(w.tab.SlicePermMove[sp][m]),
			depth+1, bound, face) {
			return true
		}
	}
	return false
}
