// Package cubesolver provides a two-phase solver for the 3x3x3 Rubik's cube.
//
// # Features
//
//   - Short solutions (21 moves or fewer by default) for any legal cube
//   - Kociemba two-phase search over precomputed coordinate tables
//   - Optional multi-threaded search racing phase-1 partitions
//   - Facelet string codec with full solvability validation
//   - Random scramble generation
//
// # Quick Start
//
// Construct a solver once (table construction takes a moment) and reuse it:
//
//	solver, err := cubesolver.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	moves, err := solver.Solve("UUUUUUUUURRRRRRRRR...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range moves {
//	    fmt.Print(m.Notation(), " ")
//	}
//
// # Cube state format
//
// Cube states are 54-character facelet strings listing the U, R, F, D, L, B
// faces in order, each face row-major from its top-left sticker, using face
// letters as colors. The solved cube is cubesolver.SolvedFacelets.
//
// # Configuration
//
// Options follow the functional pattern:
//
//	solver, err := cubesolver.New(
//	    cubesolver.WithThreads(4),
//	    cubesolver.WithTimeout(3*time.Second),
//	    cubesolver.WithMaxLength(21),
//	)
//
// With a single thread the solver is fully deterministic; with several, the
// shortest solution found first wins.
package cubesolver
