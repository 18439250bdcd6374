package domain

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUnreadableDocument  = errors.New("document could not be read")
	ErrNoValidQuestions    = errors.New("no valid questions found in document")
	ErrUnknownExportFormat = errors.New("unknown export format")
)
