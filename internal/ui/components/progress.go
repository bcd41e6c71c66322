package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakomon/internal/ui/theme"
)

// AnsweredBar shows how many questions have an answer recorded.
type AnsweredBar struct {
	Answered int
	Total    int
	Width    int
}

// View renders the bar with a count fraction on the right.
func (b AnsweredBar) View() string {
	count := fmt.Sprintf(" %d/%d answered", b.Answered, b.Total)

	barWidth := b.Width - lipgloss.Width(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if b.Total > 0 {
		filled = barWidth * b.Answered / b.Total
	}
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	bar := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))

	return bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}
