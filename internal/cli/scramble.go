package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/notation"
)

var scrambleLength int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence and print both the moves and the
facelet string of the scrambled cube.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleLength, "length", 25, "Number of scramble moves")
}

func runScramble(cmd *cobra.Command, args []string) error {
	moves, facelets := cubesolver.RandomScramble(scrambleLength)

	fmt.Printf("Scramble: %s\n", notation.FormatSequence(moves))
	fmt.Printf("Facelets: %s\n", facelets)
	fmt.Println()
	fmt.Println(renderNet(facelets))
	return nil
}
