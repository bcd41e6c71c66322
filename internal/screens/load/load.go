// Package load is the bank-upload screen: the user points the app at a CSV
// question bank.
package load

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakomon/internal/bank"
	"github.com/abhisek/kakomon/internal/router"
	"github.com/abhisek/kakomon/internal/screen"
	"github.com/abhisek/kakomon/internal/ui/components"
	"github.com/abhisek/kakomon/internal/ui/layout"
	"github.com/abhisek/kakomon/internal/ui/theme"
)

const banner = `
  ┌─────────────────────────┐
  │   過去問  ·  KAKOMON    │
  │   exam drill terminal   │
  └─────────────────────────┘`

type bankLoadedMsg struct {
	Bank *bank.Bank
	Err  error
}

// LoadScreen prompts for a bank CSV path and decodes it.
type LoadScreen struct {
	input   components.TextInput
	next    func(*bank.Bank) screen.Screen
	loading bool
}

var _ screen.Screen = (*LoadScreen)(nil)
var _ screen.KeyHintProvider = (*LoadScreen)(nil)

// New creates a LoadScreen. initialPath pre-fills the input (from the --bank
// flag or KAKOMON_BANK); next produces the screen shown once a bank loads.
func New(initialPath string, next func(*bank.Bank) screen.Screen) *LoadScreen {
	return &LoadScreen{
		input: components.NewTextInput("path/to/bank.csv", initialPath),
		next:  next,
	}
}

func (s *LoadScreen) Title() string { return "Load bank" }

func (s *LoadScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Load"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoadScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LoadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.input.SetError(msg.Err.Error())
			return s, nil
		}
		nextScreen := s.next(msg.Bank)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: nextScreen}
		}

	case tea.KeyMsg:
		if msg.String() == "enter" && !s.loading {
			path := s.input.Value()
			if path == "" {
				s.input.SetError("enter a bank file path")
				return s, nil
			}
			s.loading = true
			return s, loadBank(path)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func loadBank(path string) tea.Cmd {
	return func() tea.Msg {
		b, err := bank.LoadFile(path)
		if err != nil {
			return bankLoadedMsg{Err: err}
		}
		if b.Len() == 0 {
			return bankLoadedMsg{Err: fmt.Errorf("bank %q has no question rows", path)}
		}
		return bankLoadedMsg{Bank: b}
	}
}

func (s *LoadScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Render(banner),
		"",
		theme.Body.Render("Question bank CSV:"),
		s.input.View(),
	}
	if s.loading {
		sections = append(sections, theme.Hint.Render("loading…"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
