package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/utilkit/core/error"
	"github.com/msto63/utilkit/core/errors"
)

const moduleCLI = "cli"

// parseJSON decodes a command argument. Numbers decode as float64.
func parseJSON(operation, arg string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return nil, errors.NewErrorBuilder(moduleCLI).
			Operation(operation).
			Messagef("argument %q is not valid JSON", arg).
			Cause(err).
			Code(mdwerror.CodeInvalidInput).
			Build()
	}
	return v, nil
}

// parseJSONOrText decodes arg as JSON and falls back to the raw text
func parseJSONOrText(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}

func writeJSON(cmd *cobra.Command, v any) error {
	var (
		b   []byte
		err error
	)
	if settings.JSONIndent > 0 {
		b, err = json.MarshalIndentWithOption(v, "", strings.Repeat(" ", settings.JSONIndent), json.DisableHTMLEscape())
	} else {
		b, err = json.MarshalWithOption(v, json.DisableHTMLEscape())
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func writeNumber(cmd *cobra.Command, n float64) error {
	var text string
	switch {
	case math.IsNaN(n):
		text = "NaN"
	case math.IsInf(n, 1):
		text = "Infinity"
	case math.IsInf(n, -1):
		text = "-Infinity"
	default:
		text = strconv.FormatFloat(n, 'f', -1, 64)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func writeText(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
