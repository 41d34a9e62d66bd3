package cmd

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/msto63/utilkit/core/errors"
	"github.com/msto63/utilkit/utils/typex"
)

var coerceTo string

var coerceCmd = &cobra.Command{
	Use:   "coerce <value>",
	Short: "Convert a value to text, number or boolean",
	Long: `Converts a JSON value with the typex coercions. Arguments that are
not valid JSON are taken as text.

Examples:
  utilkit coerce --to number '[1,2,3]'     # 3
  utilkit coerce --to string '{"b":1}'     # "{\"b\":1}"
  utilkit coerce --to boolean 0            # false
  utilkit coerce --to shape hello          # text`,
	Args: cobra.ExactArgs(1),
	RunE: runCoerce,
}

func init() {
	rootCmd.AddCommand(coerceCmd)

	coerceCmd.Flags().StringVar(&coerceTo, "to", "string", "target: string, number, boolean, object or shape")
}

func runCoerce(cmd *cobra.Command, args []string) error {
	value := parseJSONOrText(args[0])

	switch strings.ToLower(coerceTo) {
	case "string", "text":
		quoted, err := json.Marshal(typex.ToString(value))
		if err != nil {
			return err
		}
		return writeText(cmd, string(quoted))
	case "number":
		return writeNumber(cmd, typex.ToNumber(value))
	case "boolean", "bool":
		return writeText(cmd, fmt.Sprint(typex.ToBoolean(value)))
	case "object":
		return writeText(cmd, fmt.Sprint(typex.IsObject(value)))
	case "shape":
		return writeText(cmd, typex.Shape(value).String())
	default:
		return errors.InvalidInput(moduleCLI, "coerce", coerceTo, "one of string, number, boolean, object, shape")
	}
}
