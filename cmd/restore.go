package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/store"
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Undo the last delete, reset, import or restore",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		n, err := svc.Restore(cmd.Context())
		if errors.Is(err, store.ErrNoSnapshot) {
			fmt.Fprintln(cmd.OutOrStdout(), "元に戻せる操作がありません")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "元に戻しました（%d件の結果）\n", n)
		fmt.Fprintln(cmd.OutOrStdout(), "もう一度 `strengthmap restore` を実行すると、この復元を取り消せます")
		return nil
	},
}
