package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics across all results",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		st, err := svc.Stats(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if st.Count == 0 {
			fmt.Fprintln(out, "まだ分析結果がありません")
			return nil
		}
		fmt.Fprintf(out, "分析回数: %d\n", st.Count)
		fmt.Fprintf(out, "期間: %s 〜 %s\n", formatDate(st.First), formatDate(st.Last))

		fmt.Fprintln(out, "\nよく出る強み:")
		for _, f := range st.Strengths {
			fmt.Fprintf(out, "  %-20s %d回\n", f.Label, f.Count)
		}
		if len(st.Values) > 0 {
			fmt.Fprintln(out, "\nよく出る価値観:")
			for _, f := range st.Values {
				fmt.Fprintf(out, "  %-20s %d回\n", f.Label, f.Count)
			}
		}
		return nil
	},
}
