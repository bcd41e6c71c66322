package session

import (
	"errors"
	"testing"

	"github.com/abhisek/kakomon/internal/bank"
	"github.com/abhisek/kakomon/internal/quiz"
)

func quizOf(question, correct string) quiz.Quiz {
	return quiz.Quiz{
		Question:      question,
		Options:       [bank.OptionCount]string{correct, "w1", "w2", "w3", "w4"},
		CorrectOption: correct,
	}
}

func testSelection() quiz.Selection {
	return quiz.Selection{Sittings: []string{"2023"}, Categories: []string{"A"}}
}

func filteredSession(quizzes ...quiz.Quiz) *Session {
	s := New("test-session")
	s.ApplyFilter(quizzes, testSelection())
	return s
}

func TestApplyFilter_ResetsAnswers(t *testing.T) {
	s := filteredSession(quizOf("Q1", "c1"), quizOf("Q2", "c2"))

	if err := s.RecordAnswer("Q1", "c1"); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	s.ApplyFilter([]quiz.Quiz{quizOf("Q1", "c1"), quizOf("Q3", "c3")}, testSelection())

	if got := s.Answer("Q1"); got != "" {
		t.Errorf("Answer(Q1) after refilter = %q, want unanswered", got)
	}
	if got := s.Answer("Q3"); got != "" {
		t.Errorf("Answer(Q3) = %q, want unanswered", got)
	}
	if s.Phase() != PhaseFiltered {
		t.Errorf("Phase = %v, want PhaseFiltered", s.Phase())
	}
}

func TestDisplayOptions_Idempotent(t *testing.T) {
	s := filteredSession(quizOf("Q1", "c1"))

	first, err := s.DisplayOptions("Q1")
	if err != nil {
		t.Fatalf("DisplayOptions: %v", err)
	}
	second, err := s.DisplayOptions("Q1")
	if err != nil {
		t.Fatalf("DisplayOptions: %v", err)
	}
	if first != second {
		t.Errorf("display order changed between calls: %v then %v", first, second)
	}
}

func TestDisplayOptions_SurvivesRefilterForRecurringQuestion(t *testing.T) {
	s := filteredSession(quizOf("Q1", "c1"))
	shown, _ := s.DisplayOptions("Q1")

	// Refilter with the same question carrying a different shuffle.
	reshuffled := quizOf("Q1", "c1")
	reshuffled.Options = [bank.OptionCount]string{"w4", "w3", "w2", "w1", "c1"}
	s.ApplyFilter([]quiz.Quiz{reshuffled}, testSelection())

	after, err := s.DisplayOptions("Q1")
	if err != nil {
		t.Fatalf("DisplayOptions: %v", err)
	}
	if after != shown {
		t.Errorf("display order after refilter = %v, want cached %v", after, shown)
	}
}

func TestDisplayOptions_DroppedQuestionForgotten(t *testing.T) {
	s := filteredSession(quizOf("Q1", "c1"))
	shown, _ := s.DisplayOptions("Q1")

	s.ApplyFilter([]quiz.Quiz{quizOf("Q2", "c2")}, testSelection())
	reshuffled := quizOf("Q1", "c1")
	reshuffled.Options = [bank.OptionCount]string{"w4", "w3", "w2", "w1", "c1"}
	s.ApplyFilter([]quiz.Quiz{reshuffled}, testSelection())

	after, err := s.DisplayOptions("Q1")
	if err != nil {
		t.Fatalf("DisplayOptions: %v", err)
	}
	if after == shown {
		t.Error("expected a fresh display order after the question left and returned")
	}
}

func TestDisplayOptions_UnknownQuestion(t *testing.T) {
	s := filteredSession(quizOf("Q1", "c1"))

	_, err := s.DisplayOptions("Q9")
	var unknownErr *UnknownQuestionError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error = %v, want *UnknownQuestionError", err)
	}
}

func TestRecordAnswer_UnknownOption(t *testing.T) {
	s := filteredSession(quizOf("Q1", "c1"))

	err := s.RecordAnswer("Q1", "stale-option")
	var optErr *UnknownOptionError
	if !errors.As(err, &optErr) {
		t.Fatalf("error = %v, want *UnknownOptionError", err)
	}
	if got := s.Answer("Q1"); got != "" {
		t.Errorf("failed RecordAnswer mutated state: answer = %q", got)
	}
}

func TestRecordAnswer_EntersAnsweringPhase(t *testing.T) {
	s := filteredSession(quizOf("Q1", "c1"))

	if err := s.RecordAnswer("Q1", "w2"); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if s.Phase() != PhaseAnswering {
		t.Errorf("Phase = %v, want PhaseAnswering", s.Phase())
	}
	if got := s.Answer("Q1"); got != "w2" {
		t.Errorf("Answer(Q1) = %q, want %q", got, "w2")
	}
}

func TestRecordAnswer_Overwrite(t *testing.T) {
	s := filteredSession(quizOf("Q1", "c1"))

	_ = s.RecordAnswer("Q1", "w2")
	_ = s.RecordAnswer("Q1", "c1")
	if got := s.Answer("Q1"); got != "c1" {
		t.Errorf("Answer(Q1) = %q, want %q", got, "c1")
	}
}
