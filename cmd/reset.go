package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every saved result",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			ok, err := confirm(cmd, "すべての結果を削除してもよろしいですか")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "キャンセルしました")
				return nil
			}
		}

		n, err := svc.Reset(cmd.Context())
		if err != nil {
			return fmt.Errorf("reset history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d件の結果を削除しました（`strengthmap restore` で元に戻せます）\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Reset without asking for confirmation")
}
