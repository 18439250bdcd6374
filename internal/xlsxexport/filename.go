package xlsxexport

import (
	"fmt"
	"regexp"
	"strings"
)

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeBasename cleans an uploaded file's base name for use in
// Content-Disposition. Replaces non-alphanumeric chars (except - _) with _,
// collapses consecutive underscores, and truncates to 100 chars.
func SanitizeBasename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "quiz"
	}
	return s
}

// BuildFilename composes the export attachment name.
// Format: {sanitized_basename}-{SUFFIX}.xlsx
func BuildFilename(basename, suffix string) string {
	return fmt.Sprintf("%s-%s.xlsx", SanitizeBasename(basename), suffix)
}
