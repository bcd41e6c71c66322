package session

import (
	"errors"
	"fmt"
)

// ErrEmptySelection is returned by Submit when the session has no active
// quizzes. Scoring an empty session would otherwise divide by zero.
var ErrEmptySelection = errors.New("submit on empty selection")

// UnknownQuestionError reports an operation on a question that is not part of
// the active quiz list.
type UnknownQuestionError struct {
	Question string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("unknown question: %q", e.Question)
}

// UnknownOptionError reports an answer that is not among the display options
// shown for its question. This guards against stale UI state writing through.
type UnknownOptionError struct {
	Question string
	Option   string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("option %q is not shown for question %q", e.Option, e.Question)
}
