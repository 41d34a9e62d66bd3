package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/utilkit/internal/version"
)

var (
	Version   = version.Module
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionPackages bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "utilkit v%s\n", Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)

		if versionPackages {
			fmt.Fprintln(out, "  Packages:")
			for _, name := range version.Packages {
				fmt.Fprintf(out, "    %-8s %s\n", name, version.PackageVersion(name))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionPackages, "packages", false, "list package versions")
}
