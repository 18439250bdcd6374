package xlsxexport

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"quizforge/internal/domain"
)

// gformColumns defines the Google Forms import header row.
var gformColumns = []string{
	"Question",
	"Type",
	"Choice A",
	"Choice B",
	"Choice C",
	"Choice D",
	"Answer",
	"Points",
}

// gformColWidth is the uniform column width of the Google Forms schema.
const gformColWidth = 20

// WriteGForm renders records into the Google Forms import schema and returns
// the workbook bytes. Unlike Quizizz, the Answer column resolves to the
// literal text of the correct choice rather than an index.
func WriteGForm(records []domain.QuestionRecord, opts Options) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)

	if err := writeHeader(f, sheet, gformColumns); err != nil {
		return nil, err
	}
	widths := make([]float64, len(gformColumns))
	for i := range widths {
		widths[i] = gformColWidth
	}
	if err := setWidths(f, sheet, widths); err != nil {
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
			rec.CorrectText(),
			opts.Points,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	if err := applyBodyStyle(f, sheet, len(gformColumns), len(records)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
