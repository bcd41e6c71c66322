// Package drill is the quiz-taking screen: one question at a time, answers
// recorded into the shared session, whole-run submission on demand.
package drill

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kakomon/internal/completion"
	"github.com/abhisek/kakomon/internal/router"
	"github.com/abhisek/kakomon/internal/screen"
	"github.com/abhisek/kakomon/internal/screens/results"
	"github.com/abhisek/kakomon/internal/session"
	"github.com/abhisek/kakomon/internal/ui/components"
	"github.com/abhisek/kakomon/internal/ui/layout"
)

// DrillScreen walks the active quiz list.
type DrillScreen struct {
	sess     *session.Session
	log      *completion.Log
	renderer completion.Renderer
	certDir  string

	current int // 0-based index into the active quiz list
	picker  components.OptionPicker
	errMsg  string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a DrillScreen over an already-filtered session.
func New(sess *session.Session, log *completion.Log, renderer completion.Renderer, certDir string) *DrillScreen {
	s := &DrillScreen{
		sess:     sess,
		log:      log,
		renderer: renderer,
		certDir:  certDir,
	}
	s.loadQuestion(0)
	return s
}

func (s *DrillScreen) Title() string { return "Drill" }

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "S", Description: "Submit all"},
		{Key: "Esc", Description: "Selection"},
	}
}

func (s *DrillScreen) Init() tea.Cmd { return nil }

// loadQuestion rebuilds the option picker for the question at index i from
// the session's cached display order and recorded answer.
func (s *DrillScreen) loadQuestion(i int) {
	quizzes := s.sess.ActiveQuizzes()
	if len(quizzes) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(quizzes) {
		i = len(quizzes) - 1
	}
	s.current = i

	question := quizzes[i].Question
	options, err := s.sess.DisplayOptions(question)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.picker = components.NewOptionPicker(
		question,
		options[:],
		s.sess.Answer(question),
		s.sess.IsMissed(i+1),
	)
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.loadQuestion(s.current - 1)
		return s, nil

	case "right", "l":
		s.loadQuestion(s.current + 1)
		return s, nil

	case "enter":
		return s.recordCurrent()

	case "s":
		return s.submit()
	}

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	return s, cmd
}

// recordCurrent stores the highlighted option and advances to the next
// question.
func (s *DrillScreen) recordCurrent() (screen.Screen, tea.Cmd) {
	option := s.picker.Current()
	if option == "" {
		return s, nil
	}
	if err := s.sess.RecordAnswer(s.picker.Question, option); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""
	if s.current < s.sess.Len()-1 {
		s.loadQuestion(s.current + 1)
	} else {
		s.loadQuestion(s.current)
	}
	return s, nil
}

func (s *DrillScreen) submit() (screen.Screen, tea.Cmd) {
	res, err := s.sess.Submit()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""
	// Reload so the miss badge on the current question is fresh when the
	// user comes back to change answers.
	s.loadQuestion(s.current)

	next := results.New(res, s.sess, s.log, s.renderer, s.certDir)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}
