package content

// WidgetKind names the interactive component mounted under a slide.
type WidgetKind string

const (
	WidgetNone      WidgetKind = ""
	WidgetFactors   WidgetKind = "factors"
	WidgetPatches   WidgetKind = "patches"
	WidgetQuadrat   WidgetKind = "quadrat"
	WidgetRecapture WidgetKind = "recapture"
	WidgetQuiz      WidgetKind = "quiz"
)

// Slide is one page of the deck. Body is markdown.
type Slide struct {
	Index    int        `yaml:"index"`
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Body     string     `yaml:"body"`
	Widget   WidgetKind `yaml:"widget"`
	Topic    string     `yaml:"topic"` // quiz slides only
}

// Prompt is a discussion question shown before a gated slide is entered.
type Prompt struct {
	Slide    int    `yaml:"slide"`
	Question string `yaml:"question"`
	Context  string `yaml:"context"`
}

// Question is a single multiple-choice quiz item.
type Question struct {
	Topic       string   `yaml:"topic"`
	Question    string   `yaml:"question"`
	Options     []string `yaml:"options"`
	Answer      string   `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
}

// IsCorrect reports whether choice is the question's answer.
func (q Question) IsCorrect(choice string) bool {
	return choice == q.Answer
}

// AnswerIndex returns the option index of the answer, or -1.
func (q Question) AnswerIndex() int {
	for i, o := range q.Options {
		if o == q.Answer {
			return i
		}
	}
	return -1
}

// Habitat describes the sampling area in percent-like units.
type Habitat struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	QuadratSize float64 `yaml:"quadrat_size"`
}

// Organism is a fixed specimen in the quadrat habitat.
type Organism struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Symbol   string  `yaml:"symbol"`
	Category string  `yaml:"category"`
}

// Factor is a single card in the factor explorer.
type Factor struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// FactorGroup collects the cards shown for one factor kind.
type FactorGroup struct {
	Kind    string   `yaml:"kind"`
	Heading string   `yaml:"heading"`
	Items   []Factor `yaml:"items"`
}

// Patch is one population in the metapopulation diagram.
type Patch struct {
	ID   int     `yaml:"id"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size string  `yaml:"size"`
	Info string  `yaml:"info"`
}

// Range bounds one calculator input.
type Range struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Default int `yaml:"default"`
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// RecaptureRanges holds the input ranges for the mark-recapture calculator.
type RecaptureRanges struct {
	Marked     Range `yaml:"marked"`
	Caught     Range `yaml:"caught"`
	Recaptured Range `yaml:"recaptured"`
}

// Lesson is the full static content of a deck.
type Lesson struct {
	Version   string          `yaml:"version"`
	Title     string          `yaml:"title"`
	Topics    []string        `yaml:"topics"`
	Slides    []Slide         `yaml:"slides"`
	Prompts   []Prompt        `yaml:"prompts"`
	Questions []Question      `yaml:"questions"`
	Habitat   Habitat         `yaml:"habitat"`
	Organisms []Organism      `yaml:"organisms"`
	Factors   []FactorGroup   `yaml:"factors"`
	Patches   []Patch         `yaml:"patches"`
	Recapture RecaptureRanges `yaml:"recapture"`
}

// TotalSlides returns the number of slides in the deck.
func (l *Lesson) TotalSlides() int {
	return len(l.Slides)
}

// Slide returns the slide at the 1-based index.
func (l *Lesson) Slide(index int) (Slide, bool) {
	if index < 1 || index > len(l.Slides) {
		return Slide{}, false
	}
	return l.Slides[index-1], true
}

// PromptFor returns the prompt gating the given slide, if any.
func (l *Lesson) PromptFor(slide int) (Prompt, bool) {
	for _, p := range l.Prompts {
		if p.Slide == slide {
			return p, true
		}
	}
	return Prompt{}, false
}

// QuestionsFor returns the questions of a topic in table order.
func (l *Lesson) QuestionsFor(topic string) []Question {
	var out []Question
	for _, q := range l.Questions {
		if q.Topic == topic {
			out = append(out, q)
		}
	}
	return out
}

// Categories returns organism categories in order of first appearance.
func (l *Lesson) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range l.Organisms {
		if !seen[o.Category] {
			seen[o.Category] = true
			out = append(out, o.Category)
		}
	}
	return out
}

// FactorGroup returns the group of the given kind.
func (l *Lesson) FactorGroup(kind string) (FactorGroup, bool) {
	for _, g := range l.Factors {
		if g.Kind == kind {
			return g, true
		}
	}
	return FactorGroup{}, false
}
