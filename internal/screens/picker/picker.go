// Package picker is the selection screen: the user chooses sittings and
// categories, and a filtered quiz run begins.
package picker

import (
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakomon/internal/bank"
	"github.com/abhisek/kakomon/internal/completion"
	"github.com/abhisek/kakomon/internal/quiz"
	"github.com/abhisek/kakomon/internal/router"
	"github.com/abhisek/kakomon/internal/screen"
	"github.com/abhisek/kakomon/internal/screens/drill"
	"github.com/abhisek/kakomon/internal/session"
	"github.com/abhisek/kakomon/internal/ui/components"
	"github.com/abhisek/kakomon/internal/ui/layout"
	"github.com/abhisek/kakomon/internal/ui/theme"
)

// wildcardLabel is what the ALL sentinel looks like in the checkbox lists.
const wildcardLabel = "すべて (all)"

// PickerScreen lets the user assemble a Selection from the bank's distinct
// sittings and categories.
type PickerScreen struct {
	bank     *bank.Bank
	sess     *session.Session
	rng      *rand.Rand
	log      *completion.Log
	renderer completion.Renderer
	certDir  string

	sittings   components.MultiSelect
	categories components.MultiSelect
	errMsg     string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a PickerScreen over the loaded bank. The session is shared for
// the whole app run so display order and miss state survive re-selection.
func New(b *bank.Bank, sess *session.Session, rng *rand.Rand, log *completion.Log, renderer completion.Renderer, certDir string) *PickerScreen {
	s := &PickerScreen{
		bank:       b,
		sess:       sess,
		rng:        rng,
		log:        log,
		renderer:   renderer,
		certDir:    certDir,
		sittings:   components.NewMultiSelect("Sittings", b.Sittings(), wildcardLabel),
		categories: components.NewMultiSelect("Categories", b.Categories(), wildcardLabel),
	}
	s.sittings.Focus()
	return s
}

func (s *PickerScreen) Title() string { return "Select questions" }

func (s *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "Tab", Description: "Switch list"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *PickerScreen) Init() tea.Cmd { return nil }

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			if s.sittings.Focused() {
				s.sittings.Blur()
				s.categories.Focus()
			} else {
				s.categories.Blur()
				s.sittings.Focus()
			}
			return s, nil

		case "enter":
			return s.startRun()
		}
	}

	var cmd tea.Cmd
	if s.sittings.Focused() {
		s.sittings, cmd = s.sittings.Update(msg)
	} else {
		s.categories, cmd = s.categories.Update(msg)
	}
	return s, cmd
}

// startRun filters the bank with the assembled selection and opens the drill
// screen on success.
func (s *PickerScreen) startRun() (screen.Screen, tea.Cmd) {
	sel := quiz.Selection{
		Sittings:   replaceWildcard(s.sittings.Selected()),
		Categories: replaceWildcard(s.categories.Selected()),
	}
	if sel.IsEmpty() {
		s.errMsg = "pick at least one sitting and one category"
		return s, nil
	}

	quizzes, err := quiz.Filter(s.bank, sel, s.rng)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if len(quizzes) == 0 {
		s.errMsg = "no questions match this selection"
		return s, nil
	}

	s.errMsg = ""
	s.sess.ApplyFilter(quizzes, sel)
	next := drill.New(s.sess, s.log, s.renderer, s.certDir)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// replaceWildcard maps the display label back to the filter sentinel.
func replaceWildcard(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == wildcardLabel {
			out[i] = quiz.SelectAll
		} else {
			out[i] = v
		}
	}
	return out
}

func (s *PickerScreen) View(width, height int) string {
	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		theme.Card.Render(s.sittings.View()),
		"  ",
		theme.Card.Render(s.categories.View()),
	)

	sections := []string{columns}
	if s.errMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
