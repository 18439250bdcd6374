package quiz

import "strings"

// answerLetterChars are the first characters that mark a line as (probably)
// an option rather than the start of a new question. Lowercase d is absent on
// purpose: option continuations frequently begin with "d" words ("data",
// "domain") while questions rarely do.
const answerLetterChars = "ABCDabc"

// SplitBlocks groups a line sequence into blocks, each intended to hold one
// question with its options and answer declaration.
//
// Two independent triggers close the current block:
//
//  1. A blank line, provided the block already contains an ANSWER: line.
//     Blank lines before the declaration are ignored, tolerating stray
//     blanks inside multi-line questions without flushing half a block.
//  2. A non-empty line that does not look like an option or a declaration
//     while the current block already has its declaration. This is the
//     boundary signal for docx-sourced documents, which lose blank lines
//     during extraction.
//
// End of input flushes any remaining block even without a declaration; the
// parser fails such trailing blocks with a specific diagnostic instead of
// dropping them silently.
func SplitBlocks(lines []string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range lines {
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			if len(current) > 0 && hasAnswerDeclaration(current) {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}

		if len(current) > 0 &&
			!strings.ContainsRune(answerLetterChars, rune(stripped[0])) &&
			!strings.HasPrefix(strings.ToLower(stripped), "answer:") &&
			hasAnswerDeclaration(current) {
			blocks = append(blocks, current)
			current = nil
		}

		current = append(current, line)
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

// hasAnswerDeclaration reports whether any line of the block is an ANSWER:
// declaration.
func hasAnswerDeclaration(block []string) bool {
	for _, line := range block {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "answer:") {
			return true
		}
	}
	return false
}
