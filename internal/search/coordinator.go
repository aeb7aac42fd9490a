package search

import (
	"golang.org/x/sync/errgroup"

	"github.com/rs/zerolog/log"

	"github.com/seamusw/cubesolver/internal/cubie"
	"github.com/seamusw/cubesolver/internal/tables"
)

// runCoordinator splits the phase-1 search space into first-move partitions
// and races one worker per thread across them. Workers interact only through
// the shared best length, solution list and stop flag; everything else is
// thread-local.
func runCoordinator(tab *tables.Tables, sh *shared, start cubie.Cube, cfg Config) {
	splits := cfg.Splits
	if splits < 1 {
		splits = cfg.Threads
	}
	if splits > cubie.NumMoves {
		splits = cubie.NumMoves
	}

	// Partition p owns the first moves congruent to p modulo splits; the
	// partitions are dealt to workers round-robin.
	partitions := make([][]uint8, splits)
	for m := uint8(0); m < cubie.NumMoves; m++ {
		p := int(m) % splits
		partitions[p] = append(partitions[p], m)
	}

	threads := cfg.Threads
	if threads > splits {
		threads = splits
	}

	log.Debug().
		Int("threads", threads).
		Int("splits", splits).
		Msg("starting parallel search")

	var g errgroup.Group
	for id := 0; id < threads; id++ {
		var firstMoves []uint8
		for p := id; p < splits; p += threads {
			firstMoves = append(firstMoves, partitions[p]...)
		}

		w := newWorker(tab, sh, start, id, firstMoves)
		g.Go(func() error {
			w.run()
			return nil
		})
	}

	// Workers only ever return nil; Wait is the join point.
	_ = g.Wait()
}
