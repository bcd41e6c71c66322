package completion

import (
	"testing"
	"time"

	"github.com/abhisek/kakomon/internal/quiz"
)

func TestAward_BuildsRecord(t *testing.T) {
	log := NewLog()
	sel := quiz.Selection{
		Sittings:   []string{"2022", "2023"},
		Categories: []string{"A"},
	}

	before := time.Now()
	rec := log.Award(sel, 12, "session-1")

	if rec.SittingsLabel != "2022, 2023" {
		t.Errorf("SittingsLabel = %q, want %q", rec.SittingsLabel, "2022, 2023")
	}
	if rec.CategoriesLabel != "A" {
		t.Errorf("CategoriesLabel = %q, want %q", rec.CategoriesLabel, "A")
	}
	if rec.QuestionCount != 12 {
		t.Errorf("QuestionCount = %d, want 12", rec.QuestionCount)
	}
	if rec.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want %q", rec.SessionID, "session-1")
	}
	if rec.ID == "" {
		t.Error("expected a record ID")
	}
	if rec.Timestamp.Before(before) {
		t.Error("Timestamp predates the award")
	}
}

func TestAward_Accumulates(t *testing.T) {
	log := NewLog()
	sel := quiz.Selection{Sittings: []string{"2023"}, Categories: []string{"A"}}

	first := log.Award(sel, 3, "s1")
	second := log.Award(sel, 5, "s1")

	if log.Len() != 2 {
		t.Fatalf("Len = %d, want 2", log.Len())
	}
	recs := log.Records()
	if recs[0].ID != first.ID || recs[1].ID != second.ID {
		t.Error("records not in award order")
	}
	if first.ID == second.ID {
		t.Error("record IDs must be unique")
	}
}
