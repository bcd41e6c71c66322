package bank

import "fmt"

// OptionCount is the number of answer options every question carries.
const OptionCount = 5

// QuestionRow is one row of the uploaded question bank. The source column
// for Sitting is named "year" in the upload format.
type QuestionRow struct {
	Sitting  string
	Category string
	Question string
	Options  [OptionCount]string
	Answer   string
}

// Validate checks that the row carries all five options, an answer, and that
// the answer matches exactly one option.
func (r QuestionRow) Validate() error {
	for i, opt := range r.Options {
		if opt == "" {
			return fmt.Errorf("option%d is empty", i+1)
		}
	}
	if r.Answer == "" {
		return fmt.Errorf("answer is empty")
	}
	matches := 0
	for _, opt := range r.Options {
		if opt == r.Answer {
			matches++
		}
	}
	switch {
	case matches == 0:
		return fmt.Errorf("answer %q matches no option", r.Answer)
	case matches > 1:
		return fmt.Errorf("answer %q matches %d options", r.Answer, matches)
	}
	return nil
}

// MalformedRowError reports a question row that fails validation.
// Row is the 1-based position of the row within the bank.
type MalformedRowError struct {
	Row      int
	Question string
	Err      error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed bank row %d (%q): %v", e.Row, e.Question, e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// Bank is the immutable in-memory question bank. Rows, sitting order, and
// category order are fixed at construction.
type Bank struct {
	rows       []QuestionRow
	sittings   []string
	categories []string
}

// New builds a Bank from the given rows. Distinct sittings and categories are
// recorded in first-seen order. Rows are not validated here; see Check and
// quiz.Filter.
func New(rows []QuestionRow) *Bank {
	b := &Bank{rows: make([]QuestionRow, len(rows))}
	copy(b.rows, rows)

	seenSitting := make(map[string]bool)
	seenCategory := make(map[string]bool)
	for _, r := range b.rows {
		if !seenSitting[r.Sitting] {
			seenSitting[r.Sitting] = true
			b.sittings = append(b.sittings, r.Sitting)
		}
		if !seenCategory[r.Category] {
			seenCategory[r.Category] = true
			b.categories = append(b.categories, r.Category)
		}
	}
	return b
}

// Len returns the number of rows in the bank.
func (b *Bank) Len() int { return len(b.rows) }

// Rows returns the bank rows in upload order. The returned slice is shared;
// callers must not modify it.
func (b *Bank) Rows() []QuestionRow { return b.rows }

// Sittings returns the distinct sittings in first-seen order.
func (b *Bank) Sittings() []string { return b.sittings }

// Categories returns the distinct categories in first-seen order.
func (b *Bank) Categories() []string { return b.categories }

// Check validates every row and returns one MalformedRowError per failing row.
func (b *Bank) Check() []error {
	var errs []error
	for i, r := range b.rows {
		if err := r.Validate(); err != nil {
			errs = append(errs, &MalformedRowError{Row: i + 1, Question: r.Question, Err: err})
		}
	}
	return errs
}
