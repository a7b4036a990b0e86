package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the custom dictionary",
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <word>...",
	Short: "Add words to the dictionary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()
		for _, w := range args {
			added, err := e.settings.AddWord(cmd.Context(), w)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "%q already in dictionary\n", w)
			}
		}
		return nil
	},
}

var wordsRemoveCmd = &cobra.Command{
	Use:     "remove <word>...",
	Aliases: []string{"rm"},
	Short:   "Remove words from the dictionary",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()
		for _, w := range args {
			removed, err := e.settings.RemoveWord(cmd.Context(), w)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "%q not in dictionary\n", w)
			}
		}
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the dictionary, one word per line",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()
		for _, w := range e.settings.Words() {
			fmt.Fprintln(cmd.OutOrStdout(), w)
		}
		return nil
	},
}

func init() {
	wordsCmd.AddCommand(wordsAddCmd, wordsRemoveCmd, wordsListCmd)
}
