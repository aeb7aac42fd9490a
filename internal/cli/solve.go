package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/notation"
	"github.com/seamusw/cubesolver/internal/scramble"
	"github.com/seamusw/cubesolver/internal/storage"
)

var (
	solveScramble  string
	solveThreads   int
	solveTimeoutMs int
	solveMaxLength int
	solveCount     int
	solveSplits    int
	solveNoStore   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [facelets]",
	Short: "Solve a cube state",
	Long: `Solve a cube state given as a 54-character facelet string, or as a
scramble sequence applied to the solved cube:

  cubesolver solve DRLUUBFBRBLURRLRUBLRDDFDLFUFUFFDBRDUBRUFLLFDDBFLUBLRBD
  cubesolver solve --scramble "R U R' U'"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble sequence to solve instead of a facelet string")
	solveCmd.Flags().IntVar(&solveThreads, "threads", 0, "Search worker count (default from config, else 1)")
	solveCmd.Flags().IntVar(&solveTimeoutMs, "timeout", 0, "Time budget in milliseconds (default from config, else 1000)")
	solveCmd.Flags().IntVar(&solveMaxLength, "max-length", 0, "Maximum total solution length (default from config, else 21)")
	solveCmd.Flags().IntVar(&solveCount, "solutions", 1, "Collect up to N improving solutions")
	solveCmd.Flags().IntVar(&solveSplits, "splits", 0, "Phase-1 first-move partitions (default: same as threads)")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-store", false, "Do not record the solve to history")
}

func runSolve(cmd *cobra.Command, args []string) error {
	facelets, err := resolveFacelets(args, solveScramble)
	if err != nil {
		return err
	}

	threads := solveThreads
	if threads == 0 {
		threads = viper.GetInt("threads")
	}
	timeoutMs := solveTimeoutMs
	if timeoutMs == 0 {
		timeoutMs = viper.GetInt("timeout_ms")
	}
	maxLength := solveMaxLength
	if maxLength == 0 {
		maxLength = viper.GetInt("max_length")
	}

	solver, err := cubesolver.New(
		cubesolver.WithThreads(threads),
		cubesolver.WithTimeout(time.Duration(timeoutMs)*time.Millisecond),
		cubesolver.WithMaxLength(maxLength),
		cubesolver.WithSolutions(solveCount),
		cubesolver.WithSplits(solveSplits),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	solutions, err := solver.Solutions(facelets)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(renderNet(facelets))

	best := solutions[len(solutions)-1]
	if len(solutions) > 1 {
		for i, sol := range solutions[:len(solutions)-1] {
			fmt.Printf("Solution %d (%d moves): %s\n", i+1, len(sol), notation.FormatSequence(sol))
		}
	}
	if len(best) == 0 {
		fmt.Println("Already solved.")
	} else {
		fmt.Printf("Solution (%d moves): %s\n", len(best), notation.FormatSequence(best))
	}
	fmt.Printf("Found in %s\n", elapsed.Round(time.Millisecond))

	if solveNoStore {
		return nil
	}
	return recordSolve(facelets, solveScramble, notation.FormatSequence(best), len(best), elapsed, threads)
}

// resolveFacelets picks the cube state from the positional argument or the
// scramble flag.
func resolveFacelets(args []string, scrambleSeq string) (string, error) {
	if scrambleSeq != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("give either a facelet string or --scramble, not both")
		}
		return scramble.ToFacelets(scrambleSeq)
	}
	if len(args) == 0 {
		return "", fmt.Errorf("facelet string or --scramble required")
	}
	return args[0], nil
}

func recordSolve(facelets, scrambleText, solution string, length int, elapsed time.Duration, threads int) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewHistoryRepository(db)
	id, err := repo.Save(facelets, scrambleText, solution, length, elapsed, threads)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded solve %s\n", id)
	return nil
}

// openDB opens the history database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
