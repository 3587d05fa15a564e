package cmd

import (
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"list", "ls"},
	Short:   "List past results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		list, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		lipgloss.Fprintln(cmd.OutOrStdout(), renderHistory(list))
		return nil
	},
}
