package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jgberry/ruff/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ruff",
	Short: "Python source code formatter",
	Long:  `ruff formats Python source files to a consistent, width-constrained style`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("config", "", "path to ruff.toml (default: discovered upward from the current directory)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
