package cmd

import (
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/history"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		r, err := svc.Get(cmd.Context(), args[0])
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("結果が見つかりません: %s", args[0])
		}
		if err != nil {
			return err
		}
		lipgloss.Fprintln(cmd.OutOrStdout(), renderResult(r))
		return nil
	},
}
