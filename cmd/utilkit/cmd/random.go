package cmd

import (
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/utilkit/core/errors"
	"github.com/msto63/utilkit/utils/lazy"
	"github.com/msto63/utilkit/utils/mathx"
)

var randomSeed uint64

var randomCmd = &cobra.Command{
	Use:   "random <max> | <min> <max>",
	Short: "Draw a random integer from an inclusive range",
	Long: `Prints a random integer between min and max, both included. With a
single argument the range starts at 0.

Examples:
  utilkit random 5          # 0..5
  utilkit random 2 4        # 2..4
  utilkit random --seed 7 1 6`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "seed for a reproducible draw (0: random)")
}

func runRandom(cmd *cobra.Command, args []string) error {
	bounds := make([]float64, len(args))
	for i, arg := range args {
		n, err := strconv.ParseFloat(arg, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return errors.InvalidInput(moduleCLI, "random", arg, "a finite number")
		}
		bounds[i] = n
	}

	upTo := len(bounds) == 1

	if randomSeed != 0 {
		g := mathx.NewGenerator(randomSeed)
		if upTo {
			return writeNumber(cmd, g.RandomUpTo(lazy.Of(bounds[0])))
		}
		return writeNumber(cmd, g.RandomInRange(lazy.Of(bounds[0]), lazy.Of(bounds[1])))
	}

	if upTo {
		return writeNumber(cmd, mathx.RandomUpTo(lazy.Of(bounds[0])))
	}
	return writeNumber(cmd, mathx.RandomInRange(lazy.Of(bounds[0]), lazy.Of(bounds[1])))
}
