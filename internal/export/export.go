// Package export writes the assessment history to files and reads it back.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/strengthmap/internal/assessment"
	"github.com/abhisek/strengthmap/internal/catalog"
	"github.com/abhisek/strengthmap/internal/history"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Sheet names in XLSX exports.
const (
	SheetAssessments = "Assessments"
	SheetStrengths   = "Strengths"
	SheetAnswers     = "Answers"
)

const dateLayout = "2006-01-02 15:04:05"

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format: %q (want json or xlsx)", s)
}

// FormatFromPath guesses the format from a file extension, defaulting to
// JSON.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatJSON
}

// Write exports results to w in the given format.
func Write(w io.Writer, format Format, results []assessment.Result) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, results)
	case FormatXLSX:
		return WriteXLSX(w, results)
	}
	return fmt.Errorf("unknown export format: %q", format)
}

// WriteJSON writes results as an indented JSON array in the stored list
// format, so the output can be imported again.
func WriteJSON(w io.Writer, results []assessment.Result) error {
	data, err := history.EncodeResults(results)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("indent export: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ReadJSON reads a JSON array of assessments, as produced by WriteJSON or
// by the mobile app's storage.
func ReadJSON(r io.Reader) ([]assessment.Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	return history.DecodeResults(bytes.TrimSpace(data))
}

// WriteXLSX writes a workbook with one sheet per record kind: assessments,
// their ranked strengths, and their answers.
func WriteXLSX(w io.Writer, results []assessment.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetAssessments); err != nil {
		return fmt.Errorf("create sheet %s: %w", SheetAssessments, err)
	}
	for _, name := range []string{SheetStrengths, SheetAnswers} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	assessments := [][]any{{"ID", "Date (UTC)", "Strengths", "Top Strength", "Values"}}
	strengths := [][]any{{"Assessment ID", "Date (UTC)", "Rank", "Title", "Score"}}
	answers := [][]any{{"Assessment ID", "Question ID", "Question", "Category", "Value", "Label"}}

	for _, r := range results {
		date := r.Date.UTC().Format(dateLayout)
		top := ""
		if len(r.Strengths) > 0 {
			top = r.Strengths[0].Title
		}
		assessments = append(assessments, []any{
			r.ID, date, len(r.Strengths), top, strings.Join(r.Values, ", "),
		})

		for i, s := range r.Strengths {
			strengths = append(strengths, []any{r.ID, date, i + 1, s.Title, s.Score})
		}

		for _, a := range r.Answers {
			text, category := "", ""
			if q, ok := catalog.FindByID(a.QuestionID); ok {
				text, category = q.Text, q.Category.DisplayName()
			}
			answers = append(answers, []any{
				r.ID, a.QuestionID, text, category, a.Value, assessment.LikertLabel(a.Value),
			})
		}
	}

	for sheet, rows := range map[string][][]any{
		SheetAssessments: assessments,
		SheetStrengths:   strengths,
		SheetAnswers:     answers,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
