package quiz

import (
	"fmt"
	"sort"
	"strings"

	"quizforge/internal/domain"
)

// answerLetters is the required option set, in declaration-index order.
const answerLetters = "ABCD"

// ParseBlock validates one block and extracts its question record. index is
// the 0-based block position, used for diagnostics. The returned error is
// always a *BlockError; a failed block never yields a partial record.
//
// The grammar, in order: one or more question lines, exactly four option
// lines A-D (each possibly continued across unmarked lines), then an
// "ANSWER: X" declaration.
func ParseBlock(block []string, index int) (rec *domain.QuestionRecord, err error) {
	blockNum := index + 1
	if len(block) == 0 {
		return nil, &BlockError{Kind: domain.FailureEmptyQuestion, Block: blockNum}
	}

	// Malformed input must fail the block, not the document pass.
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = &BlockError{
				Kind:    domain.FailureStructural,
				Block:   blockNum,
				Excerpt: recoverExcerpt(block),
				Err:     fmt.Errorf("%v", r),
			}
		}
	}()

	// Question text: everything up to the first option line, declaration,
	// or interior blank after at least one collected line.
	var questionLines []string
	i := 0
	for i < len(block) {
		line := strings.TrimSpace(block[i])
		if answerLinePattern.MatchString(line) || answerDeclPattern.MatchString(line) {
			break
		}
		if line == "" && len(questionLines) > 0 {
			break
		}
		if line != "" {
			questionLines = append(questionLines, line)
		}
		i++
	}
	if len(questionLines) == 0 {
		return nil, &BlockError{Kind: domain.FailureEmptyQuestion, Block: blockNum}
	}

	questionText := normalizeQuestion(strings.Join(questionLines, " "))
	if questionText == "" {
		return nil, &BlockError{Kind: domain.FailureEmptyQuestion, Block: blockNum}
	}
	excerpt := truncateExcerpt(questionText)

	// Options: each marker line starts a new letter; unmarked non-empty
	// lines continue the current one (word processors break long options
	// across runs). Blank lines between options are skipped.
	answers := make(map[string]string, 4)
	currentLetter := ""
	currentText := ""
	flush := func() {
		if currentLetter != "" && currentText != "" {
			answers[currentLetter] = strings.TrimSpace(currentText)
		}
	}
	for i < len(block) {
		line := strings.TrimSpace(block[i])
		if line == "" {
			i++
			continue
		}
		if m := answerLinePattern.FindStringSubmatch(line); m != nil {
			flush()
			currentLetter = strings.ToUpper(m[1])
			currentText = strings.TrimSpace(m[2])
			i++
			continue
		}
		if m := strayAnswerPattern.FindStringSubmatch(line); m != nil {
			return nil, &BlockError{
				Kind:    domain.FailureUnexpectedLetter,
				Block:   blockNum,
				Extra:   []string{strings.ToUpper(m[1])},
				Excerpt: excerpt,
			}
		}
		if currentLetter != "" &&
			!strings.ContainsRune(answerLetterChars, rune(line[0])) &&
			!strings.HasPrefix(strings.ToLower(line), "answer:") {
			currentText += " " + line
			i++
			continue
		}
		break
	}
	flush()

	if missing, extra := answerSetDiff(answers); len(missing) > 0 || len(extra) > 0 {
		return nil, &BlockError{
			Kind:    domain.FailureAnswerSetMismatch,
			Block:   blockNum,
			Missing: missing,
			Extra:   extra,
			Excerpt: excerpt,
		}
	}

	// Declaration: first ANSWER: line from where option scanning stopped.
	correctLetter := ""
	for j := i; j < len(block); j++ {
		if m := answerDeclPattern.FindStringSubmatch(block[j]); m != nil {
			correctLetter = strings.ToUpper(m[1])
			break
		}
	}
	if correctLetter == "" {
		return nil, &BlockError{
			Kind:    domain.FailureMissingDeclaration,
			Block:   blockNum,
			Excerpt: excerpt,
		}
	}
	pos := strings.Index(answerLetters, correctLetter)
	if pos < 0 {
		return nil, &BlockError{
			Kind:    domain.FailureInvalidDeclaredLetter,
			Block:   blockNum,
			Extra:   []string{correctLetter},
			Excerpt: excerpt,
		}
	}

	return &domain.QuestionRecord{
		QuestionText: questionText,
		QuestionType: domain.QuestionTypeMultipleChoice,
		OptionA:      answers["A"],
		OptionB:      answers["B"],
		OptionC:      answers["C"],
		OptionD:      answers["D"],
		CorrectIndex: pos + 1,
	}, nil
}

// normalizeQuestion strips the numbering prefix and bracketed annotations,
// then collapses whitespace.
func normalizeQuestion(s string) string {
	s = questionNumPrefix.ReplaceAllString(s, "")
	s = bracketAnnotation.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// answerSetDiff compares collected option letters against the required A-D
// set. Both result slices are sorted for stable messages.
func answerSetDiff(answers map[string]string) (missing, extra []string) {
	for _, l := range strings.Split(answerLetters, "") {
		if _, ok := answers[l]; !ok {
			missing = append(missing, l)
		}
	}
	for l := range answers {
		if !strings.Contains(answerLetters, l) {
			extra = append(extra, l)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}

// recoverExcerpt salvages question text for a structural-error diagnostic.
func recoverExcerpt(block []string) string {
	if len(block) == 0 {
		return ""
	}
	line := questionNumPrefix.ReplaceAllString(strings.TrimSpace(block[0]), "")
	return truncateExcerpt(strings.TrimSpace(line))
}
