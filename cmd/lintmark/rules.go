package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/lintmark/lint"
	"github.com/iw2rmb/lintmark/settings"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List and toggle rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every rule and whether it is enabled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, r := range lint.New(e.settings, lint.Options{Logger: e.logger}).Rules() {
			state := color.RedString("off")
			if r.Enabled {
				state = color.GreenString("on")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, state, r.Description)
		}
		return tw.Flush()
	},
}

func toggleCmd(use string, on bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <rule>...",
		Short: strings.ToUpper(use[:1]) + use[1:] + " rules by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, nil)
			if err != nil {
				return err
			}
			defer e.Close()
			known := map[string]bool{}
			for _, r := range lint.New(e.settings, lint.Options{Logger: e.logger}).Rules() {
				known[r.Name] = true
			}
			for _, name := range args {
				if !known[name] {
					return fmt.Errorf("unknown rule %q", name)
				}
				if err := e.settings.SetRule(cmd.Context(), name, on); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

var rulesExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write rule toggles as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()
		if len(args) == 0 || args[0] == "-" {
			return e.settings.ExportRules(cmd.OutOrStdout())
		}
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		if err := e.settings.ExportRules(f); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	},
}

var rulesImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace rule toggles with a JSON export",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()
		if len(args) == 0 || args[0] == "-" {
			return e.settings.ImportRules(cmd.Context(), cmd.InOrStdin())
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		return e.settings.ImportRules(cmd.Context(), f)
	},
}

var dialectCmd = &cobra.Command{
	Use:   "dialect [name]",
	Short: "Show or set the English dialect used for spelling",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), e.settings.Dialect())
			return nil
		}
		d, err := settings.ParseDialect(args[0])
		if err != nil {
			return err
		}
		return e.settings.SetDialect(cmd.Context(), d)
	},
}

func init() {
	rulesCmd.AddCommand(rulesListCmd, toggleCmd("enable", true), toggleCmd("disable", false), rulesExportCmd, rulesImportCmd, dialectCmd)
}
