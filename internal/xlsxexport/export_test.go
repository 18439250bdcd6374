package xlsxexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"quizforge/internal/domain"
)

func sampleRecords() []domain.QuestionRecord {
	return []domain.QuestionRecord{
		{
			QuestionText: "Why use a static IP?",
			QuestionType: domain.QuestionTypeMultipleChoice,
			OptionA:      "So clients can find it.",
			OptionB:      "Random assignment.",
			OptionC:      "No reason.",
			OptionD:      "Cost saving.",
			CorrectIndex: 1,
		},
		{
			QuestionText: "What is DNS?",
			QuestionType: domain.QuestionTypeMultipleChoice,
			OptionA:      "Domain Name System",
			OptionB:      "Dynamic Host Configuration Protocol",
			OptionC:      "Data Naming Services",
			OptionD:      "Digital Network Security",
			CorrectIndex: 2,
		},
	}
}

func openWorkbook(t *testing.T, data []byte) ([][]string, *excelize.File) {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	return rows, f
}

func TestWriteQuizizz(t *testing.T) {
	data, err := WriteQuizizz(sampleRecords(), Options{TimeSeconds: 60, Points: 1})
	require.NoError(t, err)

	rows, _ := openWorkbook(t, data)
	require.Len(t, rows, 3)

	assert.Equal(t, quizizzColumns, rows[0])

	// Rows sorted ascending by question text, independent of input order.
	assert.Equal(t, "What is DNS?", rows[1][0])
	assert.Equal(t, "Why use a static IP?", rows[2][0])

	assert.Equal(t, "multiple choice", rows[1][1])
	assert.Equal(t, "Domain Name System", rows[1][2])
	assert.Equal(t, "2", rows[1][6])  // correct answer as 1-4 index
	assert.Equal(t, "60", rows[1][7]) // time constant
	assert.Equal(t, "1", rows[2][6])
}

func TestWriteGForm(t *testing.T) {
	data, err := WriteGForm(sampleRecords(), Options{TimeSeconds: 60, Points: 1})
	require.NoError(t, err)

	rows, _ := openWorkbook(t, data)
	require.Len(t, rows, 3)

	assert.Equal(t, gformColumns, rows[0])
	assert.Equal(t, "What is DNS?", rows[1][0])
	assert.Equal(t, "Why use a static IP?", rows[2][0])

	// Answer column resolves to the literal option text.
	assert.Equal(t, "Dynamic Host Configuration Protocol", rows[1][6])
	assert.Equal(t, "So clients can find it.", rows[2][6])
	assert.Equal(t, "1", rows[1][7]) // points constant
}

func TestWrite_EmptyRecords(t *testing.T) {
	for name, write := range map[string]func([]domain.QuestionRecord, Options) ([]byte, error){
		"quizizz": WriteQuizizz,
		"gform":   WriteGForm,
	} {
		t.Run(name, func(t *testing.T) {
			data, err := write(nil, Options{TimeSeconds: 60, Points: 1})
			require.NoError(t, err)
			rows, _ := openWorkbook(t, data)
			assert.Len(t, rows, 1) // header only
		})
	}
}

func TestSortByQuestion_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	sorted := sortByQuestion(records)

	assert.Equal(t, "What is DNS?", sorted[0].QuestionText)
	assert.Equal(t, "Why use a static IP?", records[0].QuestionText)
}

func TestSanitizeBasename(t *testing.T) {
	assert.Equal(t, "my_quiz_v2", SanitizeBasename("my quiz (v2)"))
	assert.Equal(t, "final-exam", SanitizeBasename("final-exam"))
	assert.Equal(t, "quiz", SanitizeBasename("???"))
}

func TestBuildFilename(t *testing.T) {
	assert.Equal(t, "networking_basics-QUIZIZZ.xlsx", BuildFilename("networking basics", "QUIZIZZ"))
	assert.Equal(t, "unit_3-GFORM.xlsx", BuildFilename("unit 3", "GFORM"))
}
