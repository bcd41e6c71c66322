// Package completion records perfect-score quiz runs and hands them to an
// external certificate renderer.
package completion

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kakomon/internal/quiz"
)

// Record summarizes one perfect-score completion. It is hand-off data only;
// rendering it is the Renderer's concern.
type Record struct {
	ID              string
	Timestamp       time.Time
	SittingsLabel   string
	CategoriesLabel string
	QuestionCount   int
	SessionID       string
}

// Renderer turns a completion record into certificate image bytes.
type Renderer interface {
	Render(rec Record) ([]byte, error)
}

// Log accumulates completion records for the lifetime of the hosting process.
// Nothing is persisted across restarts.
type Log struct {
	records []Record
}

// NewLog creates an empty completion log.
func NewLog() *Log {
	return &Log{}
}

// Award builds a record for a perfect submission and appends it to the log.
func (l *Log) Award(sel quiz.Selection, questionCount int, sessionID string) Record {
	rec := Record{
		ID:              uuid.New().String(),
		Timestamp:       time.Now(),
		SittingsLabel:   sel.SittingsLabel(),
		CategoriesLabel: sel.CategoriesLabel(),
		QuestionCount:   questionCount,
		SessionID:       sessionID,
	}
	l.records = append(l.records, rec)
	return rec
}

// Records returns the accumulated records, oldest first. The returned slice
// is shared; callers must not modify it.
func (l *Log) Records() []Record { return l.records }

// Len returns the number of recorded completions.
func (l *Log) Len() int { return len(l.records) }
