package domain

// FileType represents the accepted upload formats.
type FileType string

const (
	FileTypeText FileType = "txt"
	FileTypeDocx FileType = "docx"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"txt":  FileTypeText,
	"text": FileTypeText,
	"docx": FileTypeDocx,
}

// FailureKind classifies per-block parse failures.
type FailureKind string

const (
	FailureEmptyQuestion         FailureKind = "empty_question"
	FailureAnswerSetMismatch     FailureKind = "answer_set_mismatch"
	FailureUnexpectedLetter      FailureKind = "unexpected_letter"
	FailureMissingDeclaration    FailureKind = "missing_declaration"
	FailureInvalidDeclaredLetter FailureKind = "invalid_declared_letter"
	FailureStructural            FailureKind = "structural_error"
)

// ExportFormat selects a target spreadsheet schema.
type ExportFormat string

const (
	ExportFormatQuizizz ExportFormat = "quizizz"
	ExportFormatGForm   ExportFormat = "gform"
)

// ParseExportFormat validates a format string from the outside.
func ParseExportFormat(s string) (ExportFormat, bool) {
	switch ExportFormat(s) {
	case ExportFormatQuizizz, ExportFormatGForm:
		return ExportFormat(s), true
	}
	return "", false
}
