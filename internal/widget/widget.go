// Package widget holds the interactive sub-models mounted under slides.
package widget

import (
	"fmt"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/ecoslides/internal/content"
	"github.com/abhisek/ecoslides/internal/store"
	"github.com/abhisek/ecoslides/internal/ui/layout"
)

// Widget is an interactive component rendered below a slide body.
type Widget interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Widget, tea.Cmd)
	View(width int) string
	KeyHints() []layout.KeyHint
}

// Deps carries what widgets need from the presentation.
type Deps struct {
	Lesson    *content.Lesson
	Repo      store.EventRepo // nil disables result recording
	SessionID string
	Logger    *zap.Logger
	Rand      *rand.Rand // quadrat placement; nil seeds randomly
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Mount builds the widget for slide s. Slides without a widget return nil.
func Mount(s content.Slide, d Deps) (Widget, error) {
	switch s.Widget {
	case content.WidgetNone:
		return nil, nil
	case content.WidgetQuiz:
		return NewQuiz(s.Topic, d)
	case content.WidgetQuadrat:
		return NewQuadrat(d), nil
	case content.WidgetRecapture:
		return NewRecapture(d.Lesson.Recapture), nil
	case content.WidgetFactors:
		return NewFactors(d.Lesson.Factors), nil
	case content.WidgetPatches:
		return NewPatches(d.Lesson.Patches), nil
	}
	return nil, fmt.Errorf("slide %d: unknown widget %q", s.Index, s.Widget)
}
