package cmd

import (
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/history"
)

var compareCmd = &cobra.Command{
	Use:   "compare <id> [previous-id]",
	Short: "Compare a result with an earlier one",
	Long: "Compare a result with an earlier one. Without previous-id the result\n" +
		"taken just before <id> is used.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		var cmp history.Comparison
		if len(args) == 2 {
			cmp, err = svc.CompareByID(cmd.Context(), args[0], args[1])
		} else {
			cmp, err = svc.CompareWithPrevious(cmd.Context(), args[0])
		}
		switch {
		case errors.Is(err, history.ErrNoPrevious):
			fmt.Fprintln(cmd.OutOrStdout(), "比較できる前回の結果がありません")
			return nil
		case errors.Is(err, history.ErrNotFound):
			return fmt.Errorf("結果が見つかりません: %w", err)
		case err != nil:
			return err
		}

		lipgloss.Fprintln(cmd.OutOrStdout(), renderComparison(cmp))
		return nil
	},
}
