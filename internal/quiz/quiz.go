// Package quiz derives an ordered, display-ready quiz list from a question
// bank and a set of selection criteria.
package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/kakomon/internal/bank"
)

// SelectAll is the wildcard sentinel: a selection dimension containing it is
// expanded to every distinct value of that dimension, in bank order.
const SelectAll = "ALL"

// Quiz is one question prepared for display: options are a shuffled
// permutation of the source row's five options, and CorrectOption is the
// row's answer wherever it landed.
type Quiz struct {
	Question      string
	Options       [bank.OptionCount]string
	CorrectOption string
}

// Selection holds the sittings and categories chosen by the user, in the
// order the user chose them. That order drives quiz ordering.
type Selection struct {
	Sittings   []string
	Categories []string
}

// IsEmpty reports whether either dimension is empty. An empty selection never
// triggers filtering.
func (s Selection) IsEmpty() bool {
	return len(s.Sittings) == 0 || len(s.Categories) == 0
}

// SittingsLabel returns the joined sittings for display and completion records.
func (s Selection) SittingsLabel() string {
	return strings.Join(s.Sittings, ", ")
}

// CategoriesLabel returns the joined categories for display and completion records.
func (s Selection) CategoriesLabel() string {
	return strings.Join(s.Categories, ", ")
}

// DuplicateQuestionError reports two bank rows inside one selection sharing
// the same question text. Question text is the session key, so such
// selections are unsupported ambiguity.
type DuplicateQuestionError struct {
	Question string
}

func (e *DuplicateQuestionError) Error() string {
	return fmt.Sprintf("duplicate question text in selection: %q", e.Question)
}
