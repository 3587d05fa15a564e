package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/catalog"
	"github.com/abhisek/strengthmap/internal/scoring"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		qs := catalog.All()
		if category != "" {
			qs = catalog.ByCategory(catalog.Category(category))
			if len(qs) == 0 {
				return fmt.Errorf("no questions found for category %q", category)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-4s  %-8s  %-20s  %s\n", "ID", "Category", "Strength", "Question")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for _, q := range qs {
			label, _ := scoring.LabelFor(q.ID)
			if tag, ok := scoring.ValueTagFor(q.ID); ok {
				label = strings.TrimPrefix(label+" / "+tag, " / ")
			}
			fmt.Fprintf(out, "%-4s  %-8s  %-20s  %s\n", q.ID, q.Category.DisplayName(), label, q.Text)
		}

		fmt.Fprintf(out, "\n%d questions\n", len(qs))
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("category", "", "Filter by category (strength, value or personality)")
}
