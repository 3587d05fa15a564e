package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/export"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import results from a JSON export",
	Long: "Import results from a JSON array, as written by `export` or by the\n" +
		"mobile app. Results whose id is already saved are skipped. Use - to\n" +
		"read from stdin.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()
			r = f
		}

		results, err := export.ReadJSON(r)
		if err != nil {
			return err
		}

		svc, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		added, err := svc.Import(cmd.Context(), results)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d件を取り込みました（%d件は既に保存済み）\n", added, len(results)-added)
		return nil
	},
}
