package app

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/kakomon/internal/bank"
	"github.com/abhisek/kakomon/internal/certificate"
	"github.com/abhisek/kakomon/internal/completion"
	"github.com/abhisek/kakomon/internal/router"
	"github.com/abhisek/kakomon/internal/screen"
	"github.com/abhisek/kakomon/internal/screens/load"
	"github.com/abhisek/kakomon/internal/screens/picker"
	"github.com/abhisek/kakomon/internal/session"
	"github.com/abhisek/kakomon/internal/ui/layout"
)

// Options carries the dependencies for one app run.
type Options struct {
	// BankPath pre-fills the load screen; Bank skips it entirely.
	BankPath string
	Bank     *bank.Bank

	// Rng drives option shuffling. Defaults to a time-seeded source.
	Rng *rand.Rand

	// Renderer produces certificate bytes; CertDir is where they are saved.
	Renderer completion.Renderer
	CertDir  string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *completion.Log
	width  int
	height int
}

// newAppModel wires the session, completion log, and first screen.
func newAppModel(opts Options) AppModel {
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Renderer == nil {
		opts.Renderer = certificate.PNGRenderer{}
	}
	if opts.CertDir == "" {
		opts.CertDir = "."
	}

	log := completion.NewLog()
	sess := session.New(uuid.New().String())

	pickerFor := func(b *bank.Bank) screen.Screen {
		return picker.New(b, sess, opts.Rng, log, opts.Renderer, opts.CertDir)
	}

	var first screen.Screen
	if opts.Bank != nil {
		first = pickerFor(opts.Bank)
	} else {
		first = load.New(opts.BankPath, pickerFor)
	}

	return AppModel{
		router: router.New(first),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if n := m.log.Len(); n > 0 {
		status = fmt.Sprintf("★ %d", n)
	}
	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
