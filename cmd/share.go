package cmd

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/history"
)

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Print a shareable summary of a result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		text, err := svc.Share(cmd.Context(), args[0])
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("結果が見つかりません: %s", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)

		if copyText, _ := cmd.Flags().GetBool("copy"); copyText {
			if clipboard.Unsupported {
				return errors.New("clipboard is not available on this system")
			}
			if err := clipboard.WriteAll(text); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "クリップボードにコピーしました")
		}
		return nil
	},
}

func init() {
	shareCmd.Flags().BoolP("copy", "c", false, "Also copy the summary to the clipboard")
}
