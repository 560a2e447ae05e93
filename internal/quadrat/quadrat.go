// Package quadrat simulates random quadrat sampling over a fixed habitat.
package quadrat

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/ecoslides/internal/content"
)

// ErrNotPlaced is returned when counting before a quadrat is placed.
var ErrNotPlaced = errors.New("no quadrat placed")

// Quadrat is a square sampling frame. Bounds are inclusive on all sides.
type Quadrat struct {
	Left, Top, Size float64
}

// Contains reports whether (x, y) lies inside the frame, edges included.
func (q Quadrat) Contains(x, y float64) bool {
	return x >= q.Left && x <= q.Left+q.Size &&
		y >= q.Top && y <= q.Top+q.Size
}

// CategoryCount is the number of organisms of one category.
type CategoryCount struct {
	Category string
	Count    int
}

// Count is the result of counting one quadrat.
type Count struct {
	Total      int
	ByCategory []CategoryCount
}

// CountIn counts organisms inside q. Categories appear in order of first
// appearance in orgs, including ones with zero matches.
func CountIn(q Quadrat, orgs []content.Organism) Count {
	var c Count
	index := make(map[string]int)
	for _, o := range orgs {
		i, ok := index[o.Category]
		if !ok {
			i = len(c.ByCategory)
			index[o.Category] = i
			c.ByCategory = append(c.ByCategory, CategoryCount{Category: o.Category})
		}
		if q.Contains(o.X, o.Y) {
			c.Total++
			c.ByCategory[i].Count++
		}
	}
	return c
}

// Sampler places one quadrat at a time at random inside a habitat.
type Sampler struct {
	habitat   content.Habitat
	organisms []content.Organism
	rng       *rand.Rand

	placed *Quadrat
	count  *Count
}

// NewSampler creates a Sampler. A nil rng uses a randomly seeded source.
func NewSampler(h content.Habitat, orgs []content.Organism, rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sampler{habitat: h, organisms: orgs, rng: rng}
}

// Seeded returns a deterministic source for reproducible sampling.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Place drops a new quadrat uniformly with its top-left corner in
// [0, width-size) x [0, height-size), replacing any previous one and
// clearing the count.
func (s *Sampler) Place() Quadrat {
	size := s.habitat.QuadratSize
	q := Quadrat{
		Left: s.rng.Float64() * (s.habitat.Width - size),
		Top:  s.rng.Float64() * (s.habitat.Height - size),
		Size: size,
	}
	s.placed = &q
	s.count = nil
	return q
}

// Count counts the organisms inside the placed quadrat.
func (s *Sampler) Count() (Count, error) {
	if s.placed == nil {
		return Count{}, ErrNotPlaced
	}
	c := CountIn(*s.placed, s.organisms)
	s.count = &c
	return c, nil
}

// Reset removes the quadrat and any count.
func (s *Sampler) Reset() {
	s.placed = nil
	s.count = nil
}

// Placed returns the current quadrat, if any.
func (s *Sampler) Placed() (Quadrat, bool) {
	if s.placed == nil {
		return Quadrat{}, false
	}
	return *s.placed, true
}

// LastCount returns the count for the current quadrat, if one was taken.
func (s *Sampler) LastCount() (Count, bool) {
	if s.count == nil {
		return Count{}, false
	}
	return *s.count, true
}

// Habitat returns the sampled habitat.
func (s *Sampler) Habitat() content.Habitat { return s.habitat }

// Organisms returns the organism table.
func (s *Sampler) Organisms() []content.Organism { return s.organisms }
