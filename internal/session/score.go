package session

import "github.com/abhisek/kakomon/internal/quiz"

// Result summarizes one submission.
type Result struct {
	Score    int
	Total    int
	Accuracy float64 // percentage, 0-100
	// Incorrect lists the quizzes answered wrong, in display order.
	Incorrect []quiz.Quiz
	// Perfect is true when every question was answered correctly.
	Perfect bool
}

// Submit scores the current answers against the active quiz list. Questions
// answered correctly drop out of the missed set; the rest (wrong or
// unanswered) join it. Submit may be called repeatedly: a user can change
// answers and resubmit, and the missed set always reflects the latest call.
func (s *Session) Submit() (*Result, error) {
	if len(s.active) == 0 {
		return nil, ErrEmptySelection
	}

	res := &Result{Total: len(s.active)}
	for _, qz := range s.active {
		if s.answers[qz.Question] == qz.CorrectOption {
			res.Score++
			delete(s.missed, qz.Question)
		} else {
			res.Incorrect = append(res.Incorrect, qz)
			s.missed[qz.Question] = true
		}
	}

	res.Accuracy = float64(res.Score) / float64(res.Total) * 100
	res.Perfect = res.Score == res.Total

	s.submitCount++
	s.phase = PhaseSubmitted
	return res, nil
}
