package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakomon/internal/ui/theme"
)

var optionLabels = []string{"1", "2", "3", "4", "5"}

// OptionPicker renders one question's five answer options as a radio list.
// Unlike a graded widget it never reveals the correct option; grading happens
// on whole-quiz submission.
type OptionPicker struct {
	Question string
	Options  []string
	Answered string // previously recorded answer, "" if none
	Missed   bool   // latest submission flagged this question wrong
	cursor   int
}

// NewOptionPicker creates a picker with the cursor on the recorded answer,
// if any.
func NewOptionPicker(question string, options []string, answered string, missed bool) OptionPicker {
	p := OptionPicker{
		Question: question,
		Options:  options,
		Answered: answered,
		Missed:   missed,
	}
	for i, opt := range options {
		if opt != "" && opt == answered {
			p.cursor = i
			break
		}
	}
	return p
}

// Update handles cursor movement. Selection is confirmed by the enclosing
// screen via Current().
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.Options)-1 {
			p.cursor++
		}
	}
	return p, nil
}

// Current returns the option under the cursor.
func (p OptionPicker) Current() string {
	if p.cursor < 0 || p.cursor >= len(p.Options) {
		return ""
	}
	return p.Options[p.cursor]
}

// View renders the question text and option list.
func (p OptionPicker) View(number int) string {
	header := fmt.Sprintf("Question %d", number)
	if p.Missed {
		s := theme.MissedBadge.Render(header+"  ✗ retry") + "\n"
		return s + p.body()
	}
	s := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header) + "\n"
	return s + p.body()
}

func (p OptionPicker) body() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Question) + "\n\n"

	for i, opt := range p.Options {
		prefix := "  "
		if i == p.cursor {
			prefix = "▸ "
		}
		mark := "( )"
		if opt == p.Answered && p.Answered != "" {
			mark = "(●)"
		}
		line := fmt.Sprintf("%s%s %s  %s", prefix, mark, optionLabels[i], opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == p.cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case opt == p.Answered && p.Answered != "":
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
