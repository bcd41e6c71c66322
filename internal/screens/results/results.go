// Package results shows the score for a submission and, on a perfect score,
// issues the completion certificate.
package results

import (
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakomon/internal/certificate"
	"github.com/abhisek/kakomon/internal/completion"
	"github.com/abhisek/kakomon/internal/router"
	"github.com/abhisek/kakomon/internal/screen"
	"github.com/abhisek/kakomon/internal/screens/completions"
	"github.com/abhisek/kakomon/internal/session"
	"github.com/abhisek/kakomon/internal/ui/layout"
	"github.com/abhisek/kakomon/internal/ui/theme"
)

type certSavedMsg struct {
	Path string
	Err  error
}

// ResultsScreen renders one submission result.
type ResultsScreen struct {
	res      *session.Result
	sess     *session.Session
	log      *completion.Log
	renderer completion.Renderer
	certDir  string

	certPath string
	certErr  error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a submission.
func New(res *session.Result, sess *session.Session, log *completion.Log, renderer completion.Renderer, certDir string) *ResultsScreen {
	return &ResultsScreen{
		res:      res,
		sess:     sess,
		log:      log,
		renderer: renderer,
		certDir:  certDir,
	}
}

func (s *ResultsScreen) Title() string { return "Results" }

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Esc", Description: "Change answers"},
	}
	if s.log.Len() > 0 {
		hints = append(hints, layout.KeyHint{Key: "V", Description: "Completions"})
	}
	return hints
}

// Init issues the certificate on a perfect score: the record is logged and
// handed to the renderer, and the bytes are written as a download.
func (s *ResultsScreen) Init() tea.Cmd {
	if !s.res.Perfect {
		return nil
	}
	rec := s.log.Award(s.sess.Selection(), s.res.Total, s.sess.ID())
	renderer := s.renderer
	dir := s.certDir
	return func() tea.Msg {
		data, err := renderer.Render(rec)
		if err != nil {
			return certSavedMsg{Err: err}
		}
		path := filepath.Join(dir, certificate.Filename)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return certSavedMsg{Err: fmt.Errorf("save certificate: %w", err)}
		}
		return certSavedMsg{Path: path}
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case certSavedMsg:
		s.certPath = msg.Path
		s.certErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "v" && s.log.Len() > 0 {
			next := completions.New(s.log)
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	scoreLine := fmt.Sprintf("Score: %d / %d", s.res.Score, s.res.Total)
	accuracyLine := fmt.Sprintf("Accuracy: %.2f%%", s.res.Accuracy)

	sections := []string{
		theme.Title.Render(scoreLine),
		theme.Subtitle.Render(accuracyLine),
		"",
	}

	if s.res.Perfect {
		banner := lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("★ Every question answered correctly! ★")
		sections = append(sections, banner)
		switch {
		case s.certErr != nil:
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.Error).Render("certificate: "+s.certErr.Error()))
		case s.certPath != "":
			sections = append(sections,
				theme.Hint.Render("certificate saved to "+s.certPath))
		}
	} else {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Miss).Render(
				fmt.Sprintf("%d question(s) to retry — press Esc and look for the ✗ marks", len(s.res.Incorrect))))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(content))
}
