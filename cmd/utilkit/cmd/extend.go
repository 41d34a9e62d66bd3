package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/utilkit/core/errors"
	"github.com/msto63/utilkit/utils/mapx"
)

var extendOverwrite bool

var extendCmd = &cobra.Command{
	Use:   "extend <json-object> <json-object>",
	Short: "Merge the second JSON object into the first",
	Long: `Copies every key of the second object into the first and prints the
result. Keys present in both fail the merge unless --overwrite is given;
overwritten keys are reported as warnings on stderr.

Examples:
  utilkit extend '{"a":1}' '{"b":2}'                # {"a":1,"b":2}
  utilkit extend --overwrite '{"a":1}' '{"a":2}'    # {"a":2}`,
	Args: cobra.ExactArgs(2),
	RunE: runExtend,
}

func init() {
	rootCmd.AddCommand(extendCmd)

	extendCmd.Flags().BoolVar(&extendOverwrite, "overwrite", false, "replace keys that already exist")
}

func runExtend(cmd *cobra.Command, args []string) error {
	parsed, err := parseJSON("extend", args[0])
	if err != nil {
		return err
	}

	dst, ok := parsed.(map[string]any)
	if !ok {
		return errors.TypeError(moduleCLI, "extend", args[0], "an object")
	}

	other, err := parseJSON("extend", args[1])
	if err != nil {
		return err
	}

	if err := mapx.ExtendAny(dst, other, extendOverwrite); err != nil {
		return err
	}
	return writeJSON(cmd, dst)
}
