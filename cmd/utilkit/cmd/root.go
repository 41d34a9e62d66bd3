package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/utilkit/core/config"
	mdwerror "github.com/msto63/utilkit/core/error"
	mdwlog "github.com/msto63/utilkit/core/log"
)

var (
	cfgFile string
	verbose bool
	indent  int

	// settings of the running invocation, filled before any subcommand runs
	settings = config.DefaultSettings()
)

var rootCmd = &cobra.Command{
	Use:   "utilkit",
	Short: "Slice, map, text and coercion helpers on the command line",
	Long: `utilkit runs the utilkit helpers on JSON and text arguments.

Commands:
  coerce  - convert a JSON value to text, number or boolean
  text    - parse, count, replace and trim text
  swap    - swap two elements of a JSON array
  extend  - merge two JSON objects
  random  - draw a random integer from an inclusive range

Settings are read from utilkit.toml or utilkit.yaml in the working
directory or the user config directory, or from --config. Every key can be
overridden with UTILKIT_* environment variables, e.g. UTILKIT_LOG_LEVEL.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: ./utilkit.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().IntVar(&indent, "indent", 0, "indent JSON output by n spaces")
}

// setup loads settings and installs the invocation's logger as default
func setup(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	loaded, err := config.SettingsFrom(cfg)
	if err != nil {
		return err
	}
	if verbose {
		loaded.LogLevel = mdwlog.LevelDebug
	}
	if cmd.Flags().Changed("indent") {
		loaded.JSONIndent = indent
	}
	settings = loaded

	logger := settings.NewLogger("utilkit", cmd.ErrOrStderr()).
		WithCorrelationID(uuid.NewString()).
		WithFields(mdwlog.Fields{"command": cmd.Name()})
	mdwlog.SetDefault(logger)

	logger.Debug("settings loaded", mdwlog.Fields{
		"config": path,
		"level":  settings.LogLevel.String(),
	})
	return nil
}

// loadConfig returns the explicit --config file or the first discovered
// one. Finding no file is not an error.
func loadConfig() (*config.Config, string, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		return cfg, cfgFile, err
	}

	path, err := config.FindConfigFile(config.DefaultDiscoveryOptions())
	if err != nil {
		if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			return nil, "", nil
		}
		return nil, "", err
	}

	cfg, err := config.Load(path)
	return cfg, path, err
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	if !verbose {
		return
	}

	// flag and argument errors from cobra carry no code
	if mdwerror.GetCode(err) == mdwerror.CodeUnknown {
		mdwlog.GetDefault().ErrorWithErr("command failed", err)
		return
	}
	mdwlog.GetDefault().LogError(err)
}
