// Package xlsxexport renders parsed question records into the two supported
// quiz-platform spreadsheet schemas.
package xlsxexport

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"quizforge/internal/domain"
)

// Options carries the per-platform constant columns.
type Options struct {
	TimeSeconds int // Quizizz "Time in seconds" column
	Points      int // Google Forms "Points" column
}

// quizizzColumns defines the Quizizz import header row.
var quizizzColumns = []string{
	"Question Text",
	"Question Type",
	"Option 1",
	"Option 2",
	"Option 3",
	"Option 4",
	"Correct Answer",
	"Time in seconds",
}

// quizizzWidths are the per-column widths, index-aligned with quizizzColumns.
var quizizzWidths = []float64{70, 15, 55, 55, 55, 55, 15, 15}

// WriteQuizizz renders records into the Quizizz import schema and returns the
// workbook bytes. Rows are sorted ascending by question text; the correct
// answer is the 1-4 option index.
func WriteQuizizz(records []domain.QuestionRecord, opts Options) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)

	if err := writeHeader(f, sheet, quizizzColumns); err != nil {
		return nil, err
	}
	if err := setWidths(f, sheet, quizizzWidths); err != nil {
		return nil, err
	}

	for i, rec := range sortByQuestion(records) {
		row := i + 2
		values := []any{
			rec.QuestionText,
			rec.QuestionType,
			rec.OptionA,
			rec.OptionB,
			rec.OptionC,
			rec.OptionD,
			rec.CorrectIndex,
			opts.TimeSeconds,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	if err := applyBodyStyle(f, sheet, len(quizizzColumns), len(records)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sortByQuestion returns a copy of records sorted ascending by question text.
// The copy keeps the caller's source-order slice intact.
func sortByQuestion(records []domain.QuestionRecord) []domain.QuestionRecord {
	sorted := make([]domain.QuestionRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].QuestionText < sorted[j].QuestionText
	})
	return sorted
}

func writeHeader(f *excelize.File, sheet string, columns []string) error {
	for i, h := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header cell %s: %w", cell, err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write cell %s: %w", cell, err)
		}
	}
	return nil
}

func setWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set width of column %s: %w", col, err)
		}
	}
	return nil
}

// applyBodyStyle wraps and top-aligns all data cells so long question and
// option texts render readably in the target platforms.
func applyBodyStyle(f *excelize.File, sheet string, cols, rows int) error {
	if rows == 0 {
		return nil
	}
	styleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("create cell style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(cols, rows+1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A2", last, styleID)
}
