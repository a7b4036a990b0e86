package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/lintmark"
)

var rootCmd = &cobra.Command{
	Use:           "lintmark",
	Short:         "Grammar and spelling checker for plain text",
	Long:          `lintmark edits plain text in the terminal and underlines grammar and spelling issues as you type.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = lintmark.Version()

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/lintmark/lintmark.toml)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("trace", false, "log every analysis scheduling decision")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// check has already reported the issues it found.
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintln(os.Stderr, "lintmark:", err)
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
