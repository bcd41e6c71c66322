// Package completions lists the perfect-score completions of this run.
package completions

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakomon/internal/completion"
	"github.com/abhisek/kakomon/internal/screen"
	"github.com/abhisek/kakomon/internal/ui/layout"
	"github.com/abhisek/kakomon/internal/ui/theme"
)

// CompletionsScreen renders the in-memory completion log, newest first.
type CompletionsScreen struct {
	log *completion.Log
}

var _ screen.Screen = (*CompletionsScreen)(nil)
var _ screen.KeyHintProvider = (*CompletionsScreen)(nil)

// New creates a CompletionsScreen over the shared log.
func New(log *completion.Log) *CompletionsScreen {
	return &CompletionsScreen{log: log}
}

func (s *CompletionsScreen) Title() string { return "Completions" }

func (s *CompletionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CompletionsScreen) Init() tea.Cmd { return nil }

func (s *CompletionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *CompletionsScreen) View(width, height int) string {
	records := s.log.Records()
	if len(records) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("no completions yet"))
	}

	var rows string
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		line := fmt.Sprintf("%s  %s / %s  (%d questions)",
			rec.Timestamp.Format("2006-01-02 15:04"),
			rec.SittingsLabel,
			rec.CategoriesLabel,
			rec.QuestionCount,
		)
		rows += theme.Body.Render(line) + "\n"
	}

	content := theme.Title.Render("Perfect-score completions") + "\n\n" + rows
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(content))
}
