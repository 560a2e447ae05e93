package input

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ecoslides/internal/deck"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           deck.Direction
		ok             bool
	}{
		{"drag left", 50, 10, 30, 12, deck.Forward, true},
		{"drag right", 30, 10, 50, 10, deck.Backward, true},
		{"too short", 50, 10, 42, 10, 0, false},
		{"exactly threshold", 50, 10, 40, 10, 0, false},
		{"mostly vertical", 50, 0, 35, 20, 0, false},
		{"tap", 10, 10, 10, 10, 0, false},
	}
	for _, tt := range tests {
		got, ok := ClassifySwipe(tt.x0, tt.y0, tt.x1, tt.y1, 10)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSwipeTracker_PressRelease(t *testing.T) {
	s := NewSwipeTracker(0)
	if s.Threshold != DefaultSwipeThreshold {
		t.Fatalf("threshold = %d", s.Threshold)
	}

	if cmd := s.Handle(tea.MouseClickMsg{X: 60, Y: 5, Button: tea.MouseLeft}); cmd != nil {
		t.Fatal("press should not emit")
	}
	cmd := s.Handle(tea.MouseReleaseMsg{X: 20, Y: 6, Button: tea.MouseLeft})
	if cmd == nil {
		t.Fatal("expected swipe command")
	}
	msg, ok := cmd().(NavigateMsg)
	if !ok || msg.Direction != deck.Forward {
		t.Errorf("got %#v, want forward NavigateMsg", cmd())
	}
}

func TestSwipeTracker_ReleaseWithoutPress(t *testing.T) {
	s := NewSwipeTracker(5)
	if cmd := s.Handle(tea.MouseReleaseMsg{X: 0, Y: 0}); cmd != nil {
		t.Error("release without press should be ignored")
	}
}

func TestSwipeTracker_IgnoresRightButton(t *testing.T) {
	s := NewSwipeTracker(5)
	s.Handle(tea.MouseClickMsg{X: 60, Y: 5, Button: tea.MouseRight})
	if cmd := s.Handle(tea.MouseReleaseMsg{X: 10, Y: 5, Button: tea.MouseRight}); cmd != nil {
		t.Error("right-button drag should be ignored")
	}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyPressMsg
		b    key.Binding
		want bool
	}{
		{specialKey(tea.KeyRight), km.Next, true},
		{specialKey(tea.KeyLeft), km.Prev, true},
		{specialKey(tea.KeyHome), km.First, true},
		{specialKey(tea.KeyEnd), km.Last, true},
		{specialKey(tea.KeyEscape), km.Escape, true},
		{specialKey(tea.KeyEnter), km.Confirm, true},
		{keyPress('f'), km.Fullscreen, true},
		{keyPress('g'), km.Outline, true},
		{keyPress('?'), km.Help, true},
		{keyPress('J'), km.ScrollDown, true},
		{keyPress('s'), km.Scores, true},
		{keyPress('x'), km.Next, false},
	}
	for _, tt := range tests {
		if got := key.Matches(tt.msg, tt.b); got != tt.want {
			t.Errorf("key %q vs %v: got %v, want %v", tt.msg.String(), tt.b.Keys(), got, tt.want)
		}
	}

	if h := Hint(km.Next); h.Key != "→" || h.Description != "next slide" {
		t.Errorf("hint = %+v", h)
	}
	if len(km.Bindings()) != 14 {
		t.Errorf("bindings = %d", len(km.Bindings()))
	}
}
