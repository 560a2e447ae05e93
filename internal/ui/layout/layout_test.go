package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) || !IsTooSmall(100, 23) {
		t.Error("expected too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("80x24 should fit")
	}
}

func TestRenderHeader_ShowsStatus(t *testing.T) {
	h := ansi.Strip(RenderHeader("Quadrat Method", "9 / 15", 100))
	if !strings.Contains(h, "Quadrat Method") || !strings.Contains(h, "9 / 15") {
		t.Errorf("header missing title or status:\n%s", h)
	}
	if got := lipgloss.Height(RenderHeader("x", "y", 100)); got != 3 {
		t.Errorf("header height = %d, want 3", got)
	}
}

func TestRenderHeader_TruncatesLongTitle(t *testing.T) {
	long := strings.Repeat("Communities ", 20)
	h := RenderHeader(long, "Getting ready for 6", 80)
	if got := lipgloss.Height(h); got != 3 {
		t.Errorf("header wrapped to %d lines", got)
	}
	if !strings.Contains(ansi.Strip(h), "…") {
		t.Error("expected ellipsis")
	}
}

func TestRenderFooter(t *testing.T) {
	f := ansi.Strip(RenderFooter([]KeyHint{{Key: "→", Description: "Next"}, {Key: "Esc", Description: "Back"}}, 80))
	if !strings.Contains(f, "→ Next") || !strings.Contains(f, "Esc Back") {
		t.Errorf("footer = %q", f)
	}
}

func TestRenderFooter_DropsOverflow(t *testing.T) {
	hints := make([]KeyHint, 20)
	for i := range hints {
		hints[i] = KeyHint{Key: "Key", Description: "does something"}
	}
	if got := lipgloss.Height(RenderFooter(hints, 80)); got != 3 {
		t.Errorf("footer wrapped to %d lines", got)
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("t", "1 / 2", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
	if got := ContentHeight(header, footer, 24); got != 18 {
		t.Errorf("content height = %d, want 18", got)
	}
}
