// Package app holds the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/abhisek/ecoslides/internal/content"
	"github.com/abhisek/ecoslides/internal/input"
	"github.com/abhisek/ecoslides/internal/router"
	"github.com/abhisek/ecoslides/internal/screen"
	"github.com/abhisek/ecoslides/internal/screens/presentation"
	"github.com/abhisek/ecoslides/internal/screens/welcome"
	"github.com/abhisek/ecoslides/internal/store"
	"github.com/abhisek/ecoslides/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Lesson         *content.Lesson
	Repo           store.EventRepo // nil disables history
	Logger         *zap.Logger
	SessionID      string
	StartSlide     int
	MarkdownStyle  string
	SwipeThreshold int
	Fullscreen     bool
	Splash         bool
	Rand           *rand.Rand

	// IsTerminal reports whether fullscreen can be used. Defaults to a
	// check on stdout.
	IsTerminal func() bool
}

// ender is implemented by screens that record the end of a session.
type ender interface {
	End()
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	keys       input.KeyMap
	swipe      *input.SwipeTracker
	logger     *zap.Logger
	isTerminal func() bool
	fullscreen bool
	width      int
	height     int
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newAppModel creates the root model with the deck, optionally behind the
// splash screen.
func newAppModel(opts Options) (AppModel, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	keys := input.DefaultKeyMap()
	deck, err := presentation.New(presentation.Options{
		Lesson:        opts.Lesson,
		Repo:          opts.Repo,
		Logger:        log,
		SessionID:     opts.SessionID,
		StartSlide:    opts.StartSlide,
		MarkdownStyle: opts.MarkdownStyle,
		Rand:          opts.Rand,
		Keys:          &keys,
	})
	if err != nil {
		return AppModel{}, fmt.Errorf("create presentation: %w", err)
	}

	var initial screen.Screen = deck
	if opts.Splash {
		initial = welcome.New(opts.Lesson.Title, func() screen.Screen { return deck })
	}

	isTerm := opts.IsTerminal
	if isTerm == nil {
		isTerm = stdoutIsTerminal
	}

	m := AppModel{
		router:     router.New(initial),
		keys:       keys,
		swipe:      input.NewSwipeTracker(opts.SwipeThreshold),
		logger:     log,
		isTerminal: isTerm,
	}
	if opts.Fullscreen {
		m.setFullscreen(true)
	}
	return m, nil
}

func (m *AppModel) setFullscreen(on bool) {
	if on && !m.isTerminal() {
		m.logger.Warn("fullscreen unavailable: stdout is not a terminal")
		return
	}
	m.fullscreen = on
	m.logger.Debug("fullscreen", zap.Bool("on", on))
}

// end records the session end on the deck, if it was started.
func (m AppModel) end() {
	if e, ok := m.router.Root().(ender); ok {
		e.End()
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Escape):
			cmd, handled := m.router.Escape()
			if !handled && m.fullscreen {
				m.setFullscreen(false)
			}
			return m, cmd
		case key.Matches(msg, m.keys.Fullscreen):
			m.setFullscreen(!m.fullscreen)
			return m, nil
		}

	case tea.MouseClickMsg, tea.MouseReleaseMsg:
		if cmd := m.swipe.Handle(msg); cmd != nil {
			return m, cmd
		}
	}

	covered := m.router.Depth() > 1
	cmd := m.router.Update(msg)
	if covered && reachesDeck(msg) {
		// Ticks and results of the deck's widget keep flowing under overlays.
		switch rootCmd := m.router.UpdateRoot(msg); {
		case cmd == nil:
			cmd = rootCmd
		case rootCmd != nil:
			cmd = tea.Batch(cmd, rootCmd)
		}
	}
	return m, cmd
}

// reachesDeck reports whether msg should also go to the deck while an
// overlay screen is on top. Input and screen-stack messages belong to the
// top screen only.
func reachesDeck(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg, tea.WindowSizeMsg,
		router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		return false
	}
	return true
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = m.fullscreen
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// render draws the frame for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if m.router.Depth() == 1 {
		footerHints = append(footerHints, input.Hint(m.keys.Fullscreen))
	}
	footerHints = append(footerHints, input.Hint(m.keys.Quit))

	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(AppModel); ok {
		fm.end()
	} else {
		m.end()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
