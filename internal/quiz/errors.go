package quiz

import (
	"fmt"
	"strings"

	"quizforge/internal/domain"
)

// excerptLen caps the question excerpt carried in failure diagnostics.
const excerptLen = 50

// BlockError reports why one block failed to parse. Block is 1-based for
// human-facing messages.
type BlockError struct {
	Kind    domain.FailureKind
	Block   int
	Missing []string // populated for answer_set_mismatch
	Extra   []string // populated for answer_set_mismatch
	Excerpt string   // truncated question text, when one was recovered
	Err     error    // wrapped cause for structural errors
}

func (e *BlockError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "block %d: %s", e.Block, e.reason())
	if e.Excerpt != "" {
		fmt.Fprintf(&b, " (question: %q)", e.Excerpt)
	}
	return b.String()
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// reason renders the kind-specific part of the message.
func (e *BlockError) reason() string {
	switch e.Kind {
	case domain.FailureEmptyQuestion:
		return "empty question"
	case domain.FailureAnswerSetMismatch:
		msg := "answers must be A-D."
		if len(e.Missing) > 0 {
			msg += fmt.Sprintf(" Missing: %s.", strings.Join(e.Missing, ", "))
		}
		if len(e.Extra) > 0 {
			msg += fmt.Sprintf(" Extra: %s.", strings.Join(e.Extra, ", "))
		}
		return msg
	case domain.FailureUnexpectedLetter:
		msg := "option marker outside A-D"
		if len(e.Extra) > 0 {
			msg += fmt.Sprintf(": %s", strings.Join(e.Extra, ", "))
		}
		return msg
	case domain.FailureMissingDeclaration:
		return "missing 'ANSWER: X' line"
	case domain.FailureInvalidDeclaredLetter:
		msg := "invalid declared answer"
		if len(e.Extra) > 0 {
			msg += fmt.Sprintf(" %q", e.Extra[0])
		}
		return msg
	default:
		if e.Err != nil {
			return fmt.Sprintf("parsing error: %v", e.Err)
		}
		return "parsing error"
	}
}

// Failure converts the error to its transport representation.
func (e *BlockError) Failure() domain.BlockFailure {
	return domain.BlockFailure{
		Block:   e.Block,
		Kind:    e.Kind,
		Reason:  e.reason(),
		Excerpt: e.Excerpt,
	}
}

// truncateExcerpt shortens question text for diagnostics.
func truncateExcerpt(s string) string {
	r := []rune(s)
	if len(r) <= excerptLen {
		return s
	}
	return string(r[:excerptLen]) + "..."
}
