// Package quiz turns loosely structured plain-text quiz documents into
// validated question records. The pipeline is three pure stages: a line
// source (ReadLines), a block segmenter (SplitBlocks), and a per-block
// parser (ParseBlock).
package quiz

import "regexp"

// Grammar rules shared by the segmenter and the block parser, compiled once.
var (
	// questionNumPrefix matches an optional leading question number,
	// e.g. "12. " or "3) ".
	questionNumPrefix = regexp.MustCompile(`^\s*\d+\s*[.)]\s*`)

	// answerLinePattern matches an option line: letter A-D (either case),
	// "." or ")", then the option text.
	answerLinePattern = regexp.MustCompile(`^\s*([A-Da-d])[.)]\s*(.*)$`)

	// strayAnswerPattern matches option markers outside A-D, e.g. "E) foo".
	// Trailing whitespace is required so prose like "e.g." stays a
	// continuation line.
	strayAnswerPattern = regexp.MustCompile(`^\s*([E-Ze-z])[.)]\s+`)

	// answerDeclPattern matches the answer declaration, e.g. "ANSWER: B".
	// It captures any letter so an out-of-range declaration is reported as
	// invalid rather than missing.
	answerDeclPattern = regexp.MustCompile(`(?i)^\s*answer\s*:\s*([a-z])`)

	// bracketAnnotation matches bracketed annotations like "[easy]" anywhere
	// in the question text.
	bracketAnnotation = regexp.MustCompile(`\[[^\]]*\]`)
)
