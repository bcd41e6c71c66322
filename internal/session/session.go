// Package session holds the mutable state of one user's quiz run: the active
// quiz list, recorded answers, the per-question display order, and which
// questions are still missed across repeated submissions.
package session

import (
	"github.com/abhisek/kakomon/internal/bank"
	"github.com/abhisek/kakomon/internal/quiz"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseEmpty     Phase = iota // no filter applied yet
	PhaseFiltered               // quiz list active, nothing answered
	PhaseAnswering              // at least one answer recorded
	PhaseSubmitted              // scored at least once; answers may still change
)

// Session is owned by a single host (one per user) and must not be mutated
// concurrently.
type Session struct {
	id        string
	active    []quiz.Quiz
	index     map[string]int // question → 0-based position in active
	selection quiz.Selection

	// answers maps every active question to the selected option, or "" when
	// unanswered. Its key set always equals the active question set.
	answers map[string]string

	// displayOrder fixes the option ordering shown for a question the first
	// time it is displayed. It survives refilters for recurring questions.
	displayOrder map[string][bank.OptionCount]string

	// missed holds questions flagged incorrect by the latest submission,
	// keyed by question text so highlight state follows the question across
	// refilters rather than sticking to a position.
	missed map[string]bool

	submitCount int
	phase       Phase
}

// New creates an empty session with the given host-assigned ID.
func New(id string) *Session {
	return &Session{
		id:           id,
		index:        make(map[string]int),
		answers:      make(map[string]string),
		displayOrder: make(map[string][bank.OptionCount]string),
		missed:       make(map[string]bool),
	}
}

// ID returns the host-assigned session ID.
func (s *Session) ID() string { return s.id }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Len returns the number of active quizzes.
func (s *Session) Len() int { return len(s.active) }

// ActiveQuizzes returns the active quiz list in display order. The returned
// slice is shared; callers must not modify it.
func (s *Session) ActiveQuizzes() []quiz.Quiz { return s.active }

// Selection returns the criteria behind the current quiz list.
func (s *Session) Selection() quiz.Selection { return s.selection }

// SubmitCount returns how many times Submit has succeeded.
func (s *Session) SubmitCount() int { return s.submitCount }

// ApplyFilter replaces the active quiz list wholesale and resets every answer
// to unanswered. Display-order and miss state keyed by a question that recurs
// in the new list is kept; entries for questions that disappeared are dropped.
func (s *Session) ApplyFilter(quizzes []quiz.Quiz, sel quiz.Selection) {
	s.active = quizzes
	s.selection = sel

	s.index = make(map[string]int, len(quizzes))
	s.answers = make(map[string]string, len(quizzes))
	for i, qz := range quizzes {
		s.index[qz.Question] = i
		s.answers[qz.Question] = ""
	}

	for question := range s.displayOrder {
		if _, ok := s.index[question]; !ok {
			delete(s.displayOrder, question)
		}
	}
	for question := range s.missed {
		if _, ok := s.index[question]; !ok {
			delete(s.missed, question)
		}
	}

	s.phase = PhaseFiltered
}

// DisplayOptions returns the option ordering to show for question. The first
// call fixes the ordering from the quiz's shuffled options; later calls
// return the same ordering for the lifetime of the session.
func (s *Session) DisplayOptions(question string) ([bank.OptionCount]string, error) {
	i, ok := s.index[question]
	if !ok {
		return [bank.OptionCount]string{}, &UnknownQuestionError{Question: question}
	}
	if cached, ok := s.displayOrder[question]; ok {
		return cached, nil
	}
	order := s.active[i].Options
	s.displayOrder[question] = order
	return order, nil
}

// Answer returns the recorded answer for question, or "" when unanswered or
// unknown.
func (s *Session) Answer(question string) string {
	return s.answers[question]
}

// RecordAnswer stores the selected option for question. The option must be
// one of the display options shown for that question; nothing is mutated on
// failure.
func (s *Session) RecordAnswer(question, option string) error {
	options, err := s.DisplayOptions(question)
	if err != nil {
		return err
	}
	found := false
	for _, opt := range options {
		if opt == option {
			found = true
			break
		}
	}
	if !found {
		return &UnknownOptionError{Question: question, Option: option}
	}
	s.answers[question] = option
	if s.phase == PhaseFiltered {
		s.phase = PhaseAnswering
	}
	return nil
}

// MissedPositions projects the missed set onto the current quiz list as
// 1-based positions, for highlight rendering.
func (s *Session) MissedPositions() map[int]bool {
	positions := make(map[int]bool, len(s.missed))
	for question := range s.missed {
		if i, ok := s.index[question]; ok {
			positions[i+1] = true
		}
	}
	return positions
}

// IsMissed reports whether the 1-based position was wrong on the latest
// submission.
func (s *Session) IsMissed(pos int) bool {
	if pos < 1 || pos > len(s.active) {
		return false
	}
	return s.missed[s.active[pos-1].Question]
}
