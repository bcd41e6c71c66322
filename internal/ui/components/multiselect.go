package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakomon/internal/ui/theme"
)

// MultiSelect is a checkbox list over string values. The first entry may be
// a wildcard that stands for every other value; toggling it clears the rest.
type MultiSelect struct {
	Label    string
	Values   []string
	Wildcard string // "" disables wildcard handling
	cursor   int
	checked  map[int]bool
	order    []int // indices in the order they were checked
	focused  bool
}

// NewMultiSelect creates a multiselect. When wildcard is non-empty it is
// prepended as the first entry.
func NewMultiSelect(label string, values []string, wildcard string) MultiSelect {
	all := values
	if wildcard != "" {
		all = append([]string{wildcard}, values...)
	}
	return MultiSelect{
		Label:    label,
		Values:   all,
		Wildcard: wildcard,
		checked:  make(map[int]bool),
	}
}

// Focus marks the component as receiving key events.
func (m *MultiSelect) Focus() { m.focused = true }

// Blur stops the component from receiving key events.
func (m *MultiSelect) Blur() { m.focused = false }

// Focused reports whether the component receives key events.
func (m MultiSelect) Focused() bool { return m.focused }

// Update handles navigation and toggling.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.Values)-1 {
			m.cursor++
		}
	case " ", "space":
		m.toggle(m.cursor)
	}
	return m, nil
}

func (m *MultiSelect) toggle(i int) {
	if m.checked[i] {
		m.checked[i] = false
		for k, idx := range m.order {
			if idx == i {
				m.order = append(m.order[:k], m.order[k+1:]...)
				break
			}
		}
		return
	}

	// Checking the wildcard clears everything else; checking anything else
	// clears the wildcard.
	if m.Wildcard != "" {
		if i == 0 {
			m.checked = make(map[int]bool)
			m.order = nil
		} else if m.checked[0] {
			m.toggle(0)
		}
	}
	m.checked[i] = true
	m.order = append(m.order, i)
}

// Selected returns the checked values in the order the user checked them.
func (m MultiSelect) Selected() []string {
	out := make([]string, 0, len(m.order))
	for _, i := range m.order {
		out = append(out, m.Values[i])
	}
	return out
}

// View renders the checkbox list.
func (m MultiSelect) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if m.focused {
		labelStyle = labelStyle.Foreground(theme.Primary)
	}
	s := labelStyle.Render(m.Label) + "\n"

	for i, v := range m.Values {
		box := "[ ]"
		if m.checked[i] {
			box = "[x]"
		}
		prefix := "  "
		if m.focused && i == m.cursor {
			prefix = "▸ "
		}
		line := prefix + box + " " + v

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.focused && i == m.cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case m.checked[i]:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
