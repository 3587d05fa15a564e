package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all results as JSON or XLSX",
	Long: "Export all results. The format follows --format, or the file extension\n" +
		"when --format is not given. Without a file, JSON is written to stdout.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		format := export.FormatFromPath(path)
		if f, _ := cmd.Flags().GetString("format"); f != "" {
			var err error
			if format, err = export.ParseFormat(f); err != nil {
				return err
			}
		}
		if path == "" && format == export.FormatXLSX {
			return fmt.Errorf("xlsx export needs an output file")
		}

		svc, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		list, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			defer f.Close()
			w = f
		}

		if err := export.Write(w, format, list); err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d件の結果を %s に書き出しました\n", len(list), path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "", "Output format: json or xlsx")
}
