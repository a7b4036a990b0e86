package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"

	"github.com/iw2rmb/lintmark"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		current := lintmark.Version()
		fmt.Fprintf(cmd.OutOrStdout(), "lintmark %s\n", color.New(color.Bold).Sprint(current))

		if check, _ := cmd.Flags().GetBool("check"); !check {
			return nil
		}
		res, err := latest.Check(&latest.GithubTag{Owner: "iw2rmb", Repository: "lintmark"}, current)
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if res.Outdated {
			fmt.Fprintf(cmd.OutOrStdout(), "A new version is available: %s\n", color.GreenString(res.Current))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "You are using the latest version.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "check GitHub for a newer release")
}
