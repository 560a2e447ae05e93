package quadrat

// Survey is the outcome of repeated quadrat sampling.
type Survey struct {
	Samples     []Count
	MeanDensity float64 // organisms per quadrat
	Estimate    float64 // mean density scaled to the habitat area
}

// Run places and counts n quadrats, then extrapolates the mean count to
// the whole habitat.
func (s *Sampler) Run(n int) Survey {
	var sv Survey
	if n <= 0 {
		return sv
	}
	total := 0
	for i := 0; i < n; i++ {
		s.Place()
		c, _ := s.Count()
		sv.Samples = append(sv.Samples, c)
		total += c.Total
	}
	sv.MeanDensity = float64(total) / float64(n)

	h := s.habitat
	quadratArea := h.QuadratSize * h.QuadratSize
	if quadratArea > 0 {
		sv.Estimate = sv.MeanDensity * (h.Width * h.Height) / quadratArea
	}
	return sv
}
