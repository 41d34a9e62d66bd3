package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/utilkit/core/errors"
	"github.com/msto63/utilkit/utils/lazy"
	"github.com/msto63/utilkit/utils/slicex"
)

var swapByValue bool

var swapCmd = &cobra.Command{
	Use:   "swap <json-array> <a> <b>",
	Short: "Swap two elements of a JSON array",
	Long: `Swaps two elements of a JSON array and prints the result.

By default a and b are indices. With --by-value they are JSON values and
the first element equal to each is swapped.

Examples:
  utilkit swap '[1,2,3]' 0 2                  # [3,2,1]
  utilkit swap --by-value '[5,7,9]' 7 9       # [5,9,7]
  utilkit swap --by-value '["a","b"]' '"a"' '"b"'`,
	Args: cobra.ExactArgs(3),
	RunE: runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().BoolVar(&swapByValue, "by-value", false, "treat a and b as values instead of indices")
}

func runSwap(cmd *cobra.Command, args []string) error {
	parsed, err := parseJSON("swap", args[0])
	if err != nil {
		return err
	}

	seq, ok := parsed.([]any)
	if !ok {
		return errors.TypeError(moduleCLI, "swap", args[0], "an array")
	}

	if swapByValue {
		a, b := parseJSONOrText(args[1]), parseJSONOrText(args[2])
		err = slicex.SwapByValueAny(seq, lazy.Of(a), lazy.Of(b))
	} else {
		err = slicex.SwapByTextIndex(seq, lazy.Of(args[1]), lazy.Of(args[2]))
	}
	if err != nil {
		return err
	}

	return writeJSON(cmd, seq)
}
