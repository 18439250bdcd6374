package quiz

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/antchfx/xmlquery"
)

// docxDocumentPart is the conventional path of the main document XML inside
// a docx package.
const docxDocumentPart = "word/document.xml"

// ReadLines normalizes a document into an ordered line sequence. The format
// is chosen by extension: ".docx" goes through the package path, everything
// else is treated as UTF-8 plain text.
func ReadLines(filename string, data []byte) ([]string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".docx") {
		return ReadDocxLines(data)
	}
	return ReadTextLines(data)
}

// ReadTextLines splits UTF-8 text into lines, preserving blank lines; those
// are the block separators the segmenter relies on. Both LF and CRLF line
// endings are accepted.
func ReadTextLines(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("document is not valid UTF-8 text")
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// ReadDocxLines extracts the text runs of a docx package in document order.
// Each non-empty run becomes one line. Paragraph breaks are NOT emitted as
// blank lines, so documents read this way depend on the segmenter's
// new-question heuristic for block boundaries.
func ReadDocxLines(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening docx archive: %w", err)
	}

	doc, err := zr.Open(docxDocumentPart)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", docxDocumentPart, err)
	}
	defer func() { _ = doc.Close() }()

	root, err := xmlquery.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing document XML: %w", err)
	}

	// The w: prefix is bound per document, so match text runs by local name.
	nodes, err := xmlquery.QueryAll(root, "//*[local-name()='t']")
	if err != nil {
		return nil, fmt.Errorf("querying text runs: %w", err)
	}

	var lines []string
	for _, n := range nodes {
		if text := strings.TrimSpace(n.InnerText()); text != "" {
			lines = append(lines, text)
		}
	}
	return lines, nil
}
