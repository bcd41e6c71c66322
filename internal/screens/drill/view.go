package drill

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakomon/internal/ui/components"
	"github.com/abhisek/kakomon/internal/ui/theme"
)

func (s *DrillScreen) View(width, height int) string {
	total := s.sess.Len()
	if total == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("nothing selected"))
	}

	answered := 0
	for _, qz := range s.sess.ActiveQuizzes() {
		if s.sess.Answer(qz.Question) != "" {
			answered++
		}
	}

	barWidth := width - 8
	if barWidth > 72 {
		barWidth = 72
	}
	bar := components.AnsweredBar{Answered: answered, Total: total, Width: barWidth}.View()

	position := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.current+1, total))

	sections := []string{
		bar,
		"",
		theme.Card.Render(s.picker.View(s.current + 1)),
		"",
		position,
	}
	if missed := len(s.sess.MissedPositions()); missed > 0 {
		sections = append(sections, theme.Hint.Render(fmt.Sprintf("%d question(s) still missed", missed)))
	}
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
