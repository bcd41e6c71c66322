package quiz

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/abhisek/kakomon/internal/bank"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func row(sitting, category, question string) bank.QuestionRow {
	return bank.QuestionRow{
		Sitting:  sitting,
		Category: category,
		Question: question,
		Options:  [bank.OptionCount]string{"a1", "a2", "a3", "a4", "a5"},
		Answer:   "a3",
	}
}

func testBank() *bank.Bank {
	return bank.New([]bank.QuestionRow{
		row("2022", "A", "Q1"),
		row("2022", "B", "Q2"),
		row("2023", "A", "Q3"),
		row("2023", "B", "Q4"),
		row("2023", "A", "Q5"),
	})
}

func questions(quizzes []Quiz) []string {
	out := make([]string, len(quizzes))
	for i, qz := range quizzes {
		out[i] = qz.Question
	}
	return out
}

func TestFilter_ExactMatchSet(t *testing.T) {
	quizzes, err := Filter(testBank(), Selection{
		Sittings:   []string{"2023"},
		Categories: []string{"A", "B"},
	}, testRng())
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}

	got := questions(quizzes)
	want := []string{"Q3", "Q5", "Q4"}
	if len(got) != len(want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("quiz %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilter_CategoryMajorSittingMinor(t *testing.T) {
	// Caller's order, not bank order: B before A, 2023 before 2022.
	quizzes, err := Filter(testBank(), Selection{
		Sittings:   []string{"2023", "2022"},
		Categories: []string{"B", "A"},
	}, testRng())
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}

	got := questions(quizzes)
	want := []string{"Q4", "Q2", "Q3", "Q5", "Q1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFilter_WildcardExpandsInBankOrder(t *testing.T) {
	quizzes, err := Filter(testBank(), Selection{
		Sittings:   []string{"2023"},
		Categories: []string{SelectAll},
	}, testRng())
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}

	// Only 2023 rows, grouped A then B because the bank sees A first.
	got := questions(quizzes)
	want := []string{"Q3", "Q5", "Q4"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFilter_NoMatches(t *testing.T) {
	quizzes, err := Filter(testBank(), Selection{
		Sittings:   []string{"1999"},
		Categories: []string{SelectAll},
	}, testRng())
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if len(quizzes) != 0 {
		t.Errorf("Filter() returned %d quizzes, want 0", len(quizzes))
	}
}

func TestFilter_ShuffleIsPermutation(t *testing.T) {
	rng := testRng()
	for trial := 0; trial < 50; trial++ {
		quizzes, err := Filter(testBank(), Selection{
			Sittings:   []string{SelectAll},
			Categories: []string{SelectAll},
		}, rng)
		if err != nil {
			t.Fatalf("Filter() error: %v", err)
		}
		for _, qz := range quizzes {
			got := append([]string(nil), qz.Options[:]...)
			sort.Strings(got)
			want := []string{"a1", "a2", "a3", "a4", "a5"}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("options %v are not a permutation of %v", qz.Options, want)
				}
			}
			if qz.CorrectOption != "a3" {
				t.Fatalf("CorrectOption = %q, want %q", qz.CorrectOption, "a3")
			}
		}
	}
}

func TestFilter_ShuffleMovesOptions(t *testing.T) {
	// With a seeded rng and 50 quizzes, at least one shuffle must differ
	// from the source order or the shuffle is a no-op.
	rows := make([]bank.QuestionRow, 50)
	for i := range rows {
		rows[i] = row("2022", "A", string(rune('A'+i)))
	}
	quizzes, err := Filter(bank.New(rows), Selection{
		Sittings:   []string{SelectAll},
		Categories: []string{SelectAll},
	}, testRng())
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}

	moved := false
	for _, qz := range quizzes {
		if qz.Options != [bank.OptionCount]string{"a1", "a2", "a3", "a4", "a5"} {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("no quiz had its options reordered across 50 shuffles")
	}
}

func TestFilter_MalformedRowAborts(t *testing.T) {
	bad := row("2023", "A", "Qbad")
	bad.Answer = "not-an-option"
	b := bank.New([]bank.QuestionRow{
		row("2023", "A", "Q1"),
		bad,
	})

	quizzes, err := Filter(b, Selection{
		Sittings:   []string{SelectAll},
		Categories: []string{SelectAll},
	}, testRng())

	var rowErr *bank.MalformedRowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("error = %v, want *bank.MalformedRowError", err)
	}
	if rowErr.Row != 2 {
		t.Errorf("Row = %d, want 2", rowErr.Row)
	}
	if quizzes != nil {
		t.Error("expected no partial output on malformed row")
	}
}

func TestFilter_MalformedRowOutsideSelectionIgnored(t *testing.T) {
	bad := row("1999", "Z", "Qbad")
	bad.Answer = ""
	b := bank.New([]bank.QuestionRow{
		row("2023", "A", "Q1"),
		bad,
	})

	quizzes, err := Filter(b, Selection{
		Sittings:   []string{"2023"},
		Categories: []string{"A"},
	}, testRng())
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if len(quizzes) != 1 {
		t.Errorf("Filter() returned %d quizzes, want 1", len(quizzes))
	}
}

func TestFilter_DuplicateQuestionRejected(t *testing.T) {
	b := bank.New([]bank.QuestionRow{
		row("2022", "A", "Q1"),
		row("2023", "A", "Q1"),
	})

	_, err := Filter(b, Selection{
		Sittings:   []string{SelectAll},
		Categories: []string{SelectAll},
	}, testRng())

	var dupErr *DuplicateQuestionError
	if !errors.As(err, &dupErr) {
		t.Fatalf("error = %v, want *DuplicateQuestionError", err)
	}
	if dupErr.Question != "Q1" {
		t.Errorf("Question = %q, want %q", dupErr.Question, "Q1")
	}
}

func TestSelection_IsEmpty(t *testing.T) {
	if !(Selection{}).IsEmpty() {
		t.Error("zero selection should be empty")
	}
	if !(Selection{Sittings: []string{"2023"}}).IsEmpty() {
		t.Error("selection without categories should be empty")
	}
	if (Selection{Sittings: []string{"2023"}, Categories: []string{"A"}}).IsEmpty() {
		t.Error("full selection should not be empty")
	}
}
