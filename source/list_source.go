package source

// ListSource yields a fixed ordered sequence of values, then signals
// end-of-sequence forever after.
type ListSource struct {
	values []float64
	cursor int
}

func NewListSource(values []float64) *ListSource {
	return &ListSource{values: values}
}

func (s *ListSource) Next() (float64, bool) {
	if s.cursor >= len(s.values) {
		return 0, false
	}
	value := s.values[s.cursor]
	s.cursor++
	return value, true
}
