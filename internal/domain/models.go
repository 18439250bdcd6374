package domain

// QuestionTypeMultipleChoice is the only question type the converter emits.
const QuestionTypeMultipleChoice = "multiple choice"

// QuestionRecord is one fully validated quiz question. A record is
// all-or-nothing: either every field below is populated or the block it came
// from is reported as a failure and no record exists.
type QuestionRecord struct {
	QuestionText string `json:"question_text"`
	QuestionType string `json:"question_type"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
	CorrectIndex int    `json:"correct_index"` // 1-based position in ABCD
}

// Options returns the four option texts in A..D order.
func (r *QuestionRecord) Options() [4]string {
	return [4]string{r.OptionA, r.OptionB, r.OptionC, r.OptionD}
}

// CorrectText returns the literal text of the declared correct option.
func (r *QuestionRecord) CorrectText() string {
	opts := r.Options()
	return opts[r.CorrectIndex-1]
}

// BlockFailure describes why one block of the source document did not yield
// a record. Block numbers are 1-based for human consumption.
type BlockFailure struct {
	Block   int         `json:"block"`
	Kind    FailureKind `json:"kind"`
	Reason  string      `json:"reason"`
	Excerpt string      `json:"excerpt,omitempty"`
}

// ParseResult is the aggregate outcome of one document pass. Questions holds
// only fully valid records, in source block order; failed blocks appear in
// Failures with their diagnostics.
type ParseResult struct {
	Questions []QuestionRecord `json:"questions"`
	Failures  []BlockFailure   `json:"failures,omitempty"`
	Parsed    int              `json:"parsed"`
	Failed    int              `json:"failed"`
}
