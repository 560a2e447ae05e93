// Package slide renders slide text (title, subtitle and markdown body)
// for the terminal.
package slide

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/abhisek/ecoslides/internal/content"
	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// DefaultStyle is the glamour style used when none is configured.
const DefaultStyle = "dark"

// MaxBodyWidth caps the markdown wrap width on wide terminals.
const MaxBodyWidth = 100

type cacheKey struct {
	index int
	width int
}

// Renderer turns slides into styled text. Glamour renderers are built
// once per width and rendered bodies are cached per slide and width.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
	bodies    map[cacheKey]string
}

// NewRenderer returns a renderer using the named glamour standard style.
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}
	return &Renderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		bodies:    make(map[cacheKey]string),
	}
}

// Style returns the glamour style name.
func (r *Renderer) Style() string {
	return r.style
}

// WrapWidth returns the markdown wrap width for a frame width.
func WrapWidth(width int) int {
	w := width - 4
	if w > MaxBodyWidth {
		w = MaxBodyWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Body renders the slide's markdown at the given frame width.
func (r *Renderer) Body(s content.Slide, width int) (string, error) {
	if strings.TrimSpace(s.Body) == "" {
		return "", nil
	}
	wrap := WrapWidth(width)
	key := cacheKey{index: s.Index, width: wrap}
	if out, ok := r.bodies[key]; ok {
		return out, nil
	}

	tr, err := r.renderer(wrap)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(s.Body)
	if err != nil {
		return "", fmt.Errorf("render slide %d: %w", s.Index, err)
	}
	out = strings.Trim(out, "\n")
	r.bodies[key] = out
	return out, nil
}

func (r *Renderer) renderer(wrap int) (*glamour.TermRenderer, error) {
	if tr, ok := r.renderers[wrap]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	r.renderers[wrap] = tr
	return tr, nil
}

// Heading renders the slide title and optional subtitle centered in width.
func Heading(s content.Slide, width int) string {
	parts := []string{theme.Title.Width(width).Render(s.Title)}
	if s.Subtitle != "" {
		parts = append(parts, theme.Subtitle.Width(width).Render(s.Subtitle))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Render composes heading and body. A body that fails to render falls
// back to the raw markdown so the deck keeps working.
func (r *Renderer) Render(s content.Slide, width int) (string, error) {
	head := Heading(s, width)
	body, err := r.Body(s, width)
	if err != nil {
		body = s.Body
	}
	if body == "" {
		return head, err
	}
	return head + "\n\n" + body, err
}

// Plain returns the slide as markdown text, used for clipboard export and
// the non-interactive slide listing.
func Plain(s content.Slide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", s.Title)
	if s.Subtitle != "" {
		fmt.Fprintf(&b, "\n_%s_\n", s.Subtitle)
	}
	if body := strings.TrimSpace(s.Body); body != "" {
		b.WriteString("\n" + body + "\n")
	}
	return b.String()
}
