package content

import (
	"fmt"
	"strings"
)

// validateLesson performs the cross-reference checks the schema cannot
// express. Returns a combined error describing all problems found.
func validateLesson(l *Lesson) error {
	var errs []string

	// Slides must be numbered 1..N in order
	for i, s := range l.Slides {
		if s.Index != i+1 {
			errs = append(errs, fmt.Sprintf("slide at position %d has index %d", i+1, s.Index))
		}
	}
	n := len(l.Slides)

	topicSet := make(map[string]bool, len(l.Topics))
	for _, t := range l.Topics {
		topicSet[t] = true
	}

	// Prompt targets are unique and in range
	seen := make(map[int]bool, len(l.Prompts))
	for _, p := range l.Prompts {
		if p.Slide < 1 || p.Slide > n {
			errs = append(errs, fmt.Sprintf("prompt %q targets slide %d outside [1, %d]", p.Question, p.Slide, n))
		}
		if seen[p.Slide] {
			errs = append(errs, fmt.Sprintf("duplicate prompt for slide %d", p.Slide))
		}
		seen[p.Slide] = true
	}

	// Questions: known topic, answer is one of the options
	perTopic := make(map[string]int)
	for _, q := range l.Questions {
		if !topicSet[q.Topic] {
			errs = append(errs, fmt.Sprintf("question %q has unknown topic %q", q.Question, q.Topic))
		}
		if q.AnswerIndex() < 0 {
			errs = append(errs, fmt.Sprintf("question %q: answer %q is not among its options", q.Question, q.Answer))
		}
		perTopic[q.Topic]++
	}

	// Quiz slides reference a topic with questions
	for _, s := range l.Slides {
		if s.Widget != WidgetQuiz {
			if s.Topic != "" {
				errs = append(errs, fmt.Sprintf("slide %d sets topic %q without a quiz", s.Index, s.Topic))
			}
			continue
		}
		if !topicSet[s.Topic] {
			errs = append(errs, fmt.Sprintf("slide %d quiz has unknown topic %q", s.Index, s.Topic))
		} else if perTopic[s.Topic] == 0 {
			errs = append(errs, fmt.Sprintf("slide %d quiz topic %q has no questions", s.Index, s.Topic))
		}
	}

	h := l.Habitat
	if h.QuadratSize >= h.Width || h.QuadratSize >= h.Height {
		errs = append(errs, fmt.Sprintf("quadrat size %g does not fit habitat %gx%g", h.QuadratSize, h.Width, h.Height))
	}
	for i, o := range l.Organisms {
		if o.X > h.Width || o.Y > h.Height {
			errs = append(errs, fmt.Sprintf("organism %d (%s) at (%g, %g) lies outside the habitat", i, o.Symbol, o.X, o.Y))
		}
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"marked", l.Recapture.Marked},
		{"caught", l.Recapture.Caught},
		{"recaptured", l.Recapture.Recaptured},
	}
	for _, rr := range ranges {
		r := rr.r
		if r.Min > r.Max || r.Default < r.Min || r.Default > r.Max {
			errs = append(errs, fmt.Sprintf("recapture range %s is inconsistent: min=%d max=%d default=%d", rr.name, r.Min, r.Max, r.Default))
		}
	}

	patchIDs := make(map[int]bool, len(l.Patches))
	for _, p := range l.Patches {
		if patchIDs[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate patch id %d", p.ID))
		}
		patchIDs[p.ID] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("lesson validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
