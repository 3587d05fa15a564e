package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/history"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a result",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			ok, err := confirm(cmd, "この結果を削除してもよろしいですか")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "キャンセルしました")
				return nil
			}
		}

		err = svc.Delete(cmd.Context(), args[0])
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("結果が見つかりません: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("削除に失敗しました: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "削除しました（`strengthmap restore` で元に戻せます）")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Delete without asking for confirmation")
}
