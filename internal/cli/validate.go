package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver"
)

var validateCmd = &cobra.Command{
	Use:   "validate <facelets>",
	Short: "Check whether a facelet string is a solvable cube",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := cubesolver.Validate(args[0]); err != nil {
		return err
	}
	fmt.Println("OK: solvable cube state")
	return nil
}
