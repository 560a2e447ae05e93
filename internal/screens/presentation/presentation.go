// Package presentation implements the slide deck screen.
package presentation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/abhisek/ecoslides/internal/content"
	"github.com/abhisek/ecoslides/internal/deck"
	"github.com/abhisek/ecoslides/internal/input"
	"github.com/abhisek/ecoslides/internal/router"
	"github.com/abhisek/ecoslides/internal/screen"
	"github.com/abhisek/ecoslides/internal/screens/help"
	"github.com/abhisek/ecoslides/internal/screens/history"
	"github.com/abhisek/ecoslides/internal/screens/outline"
	"github.com/abhisek/ecoslides/internal/slide"
	"github.com/abhisek/ecoslides/internal/store"
	"github.com/abhisek/ecoslides/internal/ui/components"
	"github.com/abhisek/ecoslides/internal/ui/layout"
	"github.com/abhisek/ecoslides/internal/widget"
)

const storeTimeout = 2 * time.Second

// promptConfirmMsg is sent by the prompt button.
type promptConfirmMsg struct{}

// Options configures a presentation.
type Options struct {
	Lesson        *content.Lesson
	Repo          store.EventRepo // nil disables history
	Logger        *zap.Logger
	SessionID     string
	StartSlide    int
	MarkdownStyle string
	Rand          *rand.Rand
	Keys          *input.KeyMap
	Clipboard     func(string) error // defaults to the system clipboard
}

// PresentationScreen owns the navigator and the mounted slide widget.
type PresentationScreen struct {
	lesson   *content.Lesson
	nav      *deck.Navigator
	keys     input.KeyMap
	renderer *slide.Renderer
	repo     store.EventRepo
	logger   *zap.Logger
	copy     func(string) error

	sessionID string
	deps      widget.Deps
	widget    widget.Widget
	mounted   int // slide the widget belongs to
	mountErr  error

	button components.Button
	scroll int
	notice string

	started  time.Time
	visited  map[int]bool
	quizzes  int
	finished bool
}

var _ screen.Screen = (*PresentationScreen)(nil)
var _ screen.KeyHintProvider = (*PresentationScreen)(nil)
var _ screen.StatusProvider = (*PresentationScreen)(nil)
var _ screen.EscapeHandler = (*PresentationScreen)(nil)

// New creates the deck. The start slide is clamped into range and is
// entered without passing through a prompt.
func New(opts Options) (*PresentationScreen, error) {
	nav, err := deck.New(opts.Lesson.TotalSlides(), opts.Lesson.Prompts)
	if err != nil {
		return nil, err
	}
	start := min(max(opts.StartSlide, 1), nav.Total())
	nav.Seek(start)

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	keys := input.DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	cp := opts.Clipboard
	if cp == nil {
		cp = clipboard.WriteAll
	}

	p := &PresentationScreen{
		lesson:    opts.Lesson,
		nav:       nav,
		keys:      keys,
		renderer:  slide.NewRenderer(opts.MarkdownStyle),
		repo:      opts.Repo,
		logger:    log,
		copy:      cp,
		sessionID: opts.SessionID,
		deps: widget.Deps{
			Lesson:    opts.Lesson,
			Repo:      opts.Repo,
			SessionID: opts.SessionID,
			Logger:    log,
			Rand:      opts.Rand,
		},
		button: components.NewButton("Ready to Learn More! →", true, func() tea.Cmd {
			return func() tea.Msg { return promptConfirmMsg{} }
		}),
		visited: make(map[int]bool),
	}
	return p, nil
}

// Navigator exposes the deck state.
func (p *PresentationScreen) Navigator() *deck.Navigator { return p.nav }

// Widget returns the widget mounted for the current slide, if any.
func (p *PresentationScreen) Widget() widget.Widget { return p.widget }

// QuizzesCompleted returns how many quizzes were finished this session.
func (p *PresentationScreen) QuizzesCompleted() int { return p.quizzes }

func (p *PresentationScreen) Init() tea.Cmd {
	p.started = time.Now()
	p.record(store.SessionEventData{Action: store.ActionStart})
	p.logger.Info("presentation started",
		zap.String("session_id", p.sessionID),
		zap.Int("slide", p.nav.Current()),
	)
	return p.enter()
}

// End records the end of the session. Later calls do nothing.
func (p *PresentationScreen) End() {
	if p.finished {
		return
	}
	p.finished = true
	d := time.Since(p.started)
	p.record(store.SessionEventData{
		Action:           store.ActionEnd,
		SlidesVisited:    len(p.visited),
		QuizzesCompleted: p.quizzes,
		DurationSecs:     int(d.Seconds()),
	})
	p.logger.Info("presentation ended",
		zap.String("session_id", p.sessionID),
		zap.Int("slides_visited", len(p.visited)),
		zap.Int("quizzes_completed", p.quizzes),
		zap.Duration("duration", d),
	)
}

func (p *PresentationScreen) record(data store.SessionEventData) {
	if p.repo == nil {
		return
	}
	data.SessionID = p.sessionID
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := p.repo.AppendSessionEvent(ctx, data); err != nil {
		p.logger.Warn("record session event", zap.String("action", data.Action), zap.Error(err))
	}
}

// enter mounts the widget of the current slide when the slide changed.
func (p *PresentationScreen) enter() tea.Cmd {
	cur := p.nav.Current()
	if cur == p.mounted {
		return nil
	}
	p.mounted = cur
	p.visited[cur] = true
	p.scroll = 0
	p.widget = nil
	p.mountErr = nil

	s, _ := p.lesson.Slide(cur)
	w, err := widget.Mount(s, p.deps)
	if err != nil {
		p.mountErr = err
		p.logger.Error("mount widget", zap.Int("slide", cur), zap.Error(err))
		return nil
	}
	p.widget = w
	if w == nil {
		return nil
	}
	return w.Init()
}

// after logs a navigation result and mounts the new slide.
func (p *PresentationScreen) after(action string, changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	p.notice = ""
	st := p.nav.Snapshot()
	if st.PromptActive {
		p.logger.Debug("prompt shown",
			zap.String("action", action),
			zap.Int("slide", st.CurrentSlide),
			zap.Int("pending", st.PendingSlide),
		)
		return nil
	}
	p.logger.Debug("navigate", zap.String("action", action), zap.Int("slide", st.CurrentSlide))
	return p.enter()
}

func (p *PresentationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case input.NavigateMsg:
		return p, p.after("swipe", p.nav.RequestAdvance(msg.Direction))

	case input.JumpMsg:
		return p, p.after("goto", p.nav.GoTo(msg.Slide))

	case promptConfirmMsg:
		return p, p.after("confirm", p.nav.ConfirmPrompt())

	case widget.QuizCompletedMsg:
		p.quizzes++
		return p, nil

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			p.scroll = max(p.scroll-3, 0)
		case tea.MouseWheelDown:
			p.scroll += 3
		}
		return p, nil

	case tea.KeyPressMsg:
		if p.nav.Snapshot().PromptActive {
			return p, p.updatePrompt(msg)
		}
		if cmd, ok := p.updateDeck(msg); ok {
			return p, cmd
		}
	}

	if p.widget == nil {
		return p, nil
	}
	var cmd tea.Cmd
	p.widget, cmd = p.widget.Update(msg)
	return p, cmd
}

func (p *PresentationScreen) updatePrompt(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Confirm):
		return p.button.Press()
	case key.Matches(msg, p.keys.Prev):
		return p.after("cancel", p.nav.RequestAdvance(deck.Backward))
	case key.Matches(msg, p.keys.First):
		p.nav.JumpToFirst()
		return p.after("first", true)
	case key.Matches(msg, p.keys.Last):
		p.nav.JumpToLast()
		return p.after("last", true)
	case key.Matches(msg, p.keys.Copy):
		if pr, ok := p.nav.ActivePrompt(); ok {
			p.copyText(pr.Question + "\n\n" + pr.Context)
		}
	}
	return nil
}

// updateDeck handles deck-level keys. It reports false for keys that
// belong to the widget.
func (p *PresentationScreen) updateDeck(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, p.keys.Next):
		return p.after("next", p.nav.RequestAdvance(deck.Forward)), true
	case key.Matches(msg, p.keys.Prev):
		return p.after("prev", p.nav.RequestAdvance(deck.Backward)), true
	case key.Matches(msg, p.keys.First):
		p.nav.JumpToFirst()
		return p.after("first", true), true
	case key.Matches(msg, p.keys.Last):
		p.nav.JumpToLast()
		return p.after("last", true), true
	case key.Matches(msg, p.keys.ScrollUp):
		p.scroll = max(p.scroll-1, 0)
		return nil, true
	case key.Matches(msg, p.keys.ScrollDown):
		p.scroll++
		return nil, true
	case key.Matches(msg, p.keys.Outline):
		scr := outline.New(p.lesson, p.nav.Current())
		return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }, true
	case key.Matches(msg, p.keys.Help):
		scr := help.New(p.keys)
		return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }, true
	case key.Matches(msg, p.keys.Scores):
		scr := history.New(p.repo)
		return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }, true
	case key.Matches(msg, p.keys.Copy):
		if s, ok := p.lesson.Slide(p.nav.Current()); ok {
			p.copyText(slide.Plain(s))
		}
		return nil, true
	}
	return nil, false
}

func (p *PresentationScreen) copyText(text string) {
	if err := p.copy(text); err != nil {
		p.logger.Warn("copy to clipboard", zap.Error(err))
		p.notice = "Clipboard unavailable"
		return
	}
	p.notice = "📋 Copied to clipboard"
}

// HandleEscape cancels an active prompt.
func (p *PresentationScreen) HandleEscape() (screen.Screen, tea.Cmd, bool) {
	if !p.nav.Snapshot().PromptActive {
		return p, nil, false
	}
	return p, p.after("cancel", p.nav.CancelPrompt()), true
}

func (p *PresentationScreen) Title() string {
	if p.nav.Snapshot().PromptActive {
		return "Think About This..."
	}
	s, _ := p.lesson.Slide(p.nav.Current())
	return s.Title
}

// Status shows "n / N", or the pending slide while a prompt is up.
func (p *PresentationScreen) Status() string {
	st := p.nav.Snapshot()
	if st.PromptActive {
		return fmt.Sprintf("Getting ready for %d", st.PendingSlide)
	}
	return fmt.Sprintf("%d / %d", st.CurrentSlide, p.nav.Total())
}

func (p *PresentationScreen) KeyHints() []layout.KeyHint {
	if p.nav.Snapshot().PromptActive {
		return []layout.KeyHint{
			input.Hint(p.keys.Confirm),
			{Key: "←/Esc", Description: "go back"},
			{Key: "Y", Description: "copy question"},
		}
	}
	var hints []layout.KeyHint
	cur := p.nav.Current()
	if cur > 1 {
		hints = append(hints, input.Hint(p.keys.Prev))
	}
	if cur < p.nav.Total() {
		hints = append(hints, input.Hint(p.keys.Next))
	}
	if p.widget != nil {
		hints = append(hints, p.widget.KeyHints()...)
	}
	return append(hints,
		layout.KeyHint{Key: "G", Description: "slides"},
		layout.KeyHint{Key: "?", Description: "help"},
	)
}

func (p *PresentationScreen) View(width, height int) string {
	if pr, ok := p.nav.ActivePrompt(); ok {
		return p.promptView(pr, width, height)
	}
	return p.slideView(width, height)
}

func (p *PresentationScreen) promptView(pr content.Prompt, width, height int) string {
	cw := components.ContentWidth(width)
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render("🤔 Think About This..."),
		"",
		lipgloss.NewStyle().Width(cw-12).Align(lipgloss.Center).Render(pr.Question),
		"",
		lipgloss.NewStyle().Width(cw-12).Align(lipgloss.Center).Italic(true).Render(pr.Context),
		"",
		"💡 Discuss with your classmates or think quietly for a moment",
		"",
		p.button.View(),
	)
	if p.notice != "" {
		body += "\n\n" + p.notice
	}
	return components.PromptCard(body, width, height)
}

func (p *PresentationScreen) slideView(width, height int) string {
	s, _ := p.lesson.Slide(p.nav.Current())
	text, err := p.renderer.Render(s, width)
	if err != nil {
		p.logger.Warn("render slide", zap.Int("slide", s.Index), zap.Error(err))
	}

	parts := []string{text}
	switch {
	case p.mountErr != nil:
		parts = append(parts, "", "⚠ "+p.mountErr.Error())
	case p.widget != nil:
		parts = append(parts, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, p.widget.View(width)))
	}

	// The progress line is pinned below the scrolled content.
	footer := components.NewProgressBar("", p.nav.Current(), p.nav.Total(), false, width-4).View()
	if p.notice != "" {
		footer = p.notice + "  " + footer
	}

	lines := strings.Split(strings.Join(parts, "\n"), "\n")
	avail := max(height-2, 1)
	maxScroll := max(len(lines)-avail, 0)
	p.scroll = min(p.scroll, maxScroll)
	visible := lines[p.scroll:min(p.scroll+avail, len(lines))]

	more := ""
	if p.scroll < maxScroll {
		more = "  ⇣ more"
	}
	return strings.Join(visible, "\n") + "\n" + strings.Repeat("\n", avail-len(visible)) + "  " + footer + more
}
