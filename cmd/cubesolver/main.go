// cubesolver - CLI front-end for the two-phase Rubik's cube solver.
package main

import (
	"github.com/seamusw/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
