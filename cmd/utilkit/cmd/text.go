package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/utilkit/utils/lazy"
	"github.com/msto63/utilkit/utils/stringx"
)

var (
	countLiteral  bool
	replaceReport bool
	trimTabs      bool
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Text helpers",
	Long: `Runs the stringx text helpers.

Examples:
  utilkit text number 3.14                  # 3.14
  utilkit text count banana an              # 2
  utilkit text replace aXbXc X -            # a-b-c
  utilkit text replace --report abc Z -     # -1
  utilkit text trim --tabs "  a b	c  "`,
}

var textNumberCmd = &cobra.Command{
	Use:   "number <text>",
	Short: "Parse text to a number (0 for empty, -1 for non-numeric)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeNumber(cmd, stringx.ToNumber(args[0]))
	},
}

var textCountCmd = &cobra.Command{
	Use:   "count <text> <pattern>",
	Short: "Count pattern occurrences (regular expression unless --literal)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		count := stringx.Count
		if countLiteral {
			count = stringx.CountLiteral
		}

		n, err := count(args[0], args[1])
		if err != nil {
			return err
		}
		return writeNumber(cmd, n)
	},
}

var textReplaceCmd = &cobra.Command{
	Use:   "replace <text> <find> [replace]",
	Short: "Replace every occurrence; without replace the matches are removed",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		replace := ""
		if len(args) == 3 {
			replace = args[2]
		}

		result, changed := stringx.ReplaceAllReporting(args[0], lazy.Of(args[1]), lazy.Of(replace))
		if replaceReport && !changed {
			return writeNumber(cmd, -1)
		}
		return writeText(cmd, result)
	},
}

var textTrimCmd = &cobra.Command{
	Use:   "trim <text>",
	Short: "Remove every space, or with --tabs every tab plus surrounding whitespace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeText(cmd, stringx.Trim(args[0], lazy.Of(trimTabs)))
	},
}

func init() {
	rootCmd.AddCommand(textCmd)
	textCmd.AddCommand(textNumberCmd, textCountCmd, textReplaceCmd, textTrimCmd)

	textCountCmd.Flags().BoolVar(&countLiteral, "literal", false, "match the pattern literally")
	textReplaceCmd.Flags().BoolVar(&replaceReport, "report", false, "print -1 when nothing was replaced")
	textTrimCmd.Flags().BoolVar(&trimTabs, "tabs", false, "remove tabs and trim surrounding whitespace")
}
