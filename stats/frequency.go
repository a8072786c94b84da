package stats

// Frequency maintains per-value occurrence counts and the set of values
// currently tied for the highest count. Modes are kept in discovery
// order: the order in which each value's count first reached the current
// maximum, not sorted order.
type Frequency struct {
	counts   map[float64]uint64
	maxCount uint64
	modes    []float64
}

func NewFrequency() *Frequency {
	return &Frequency{
		counts: make(map[float64]uint64),
		modes:  make([]float64, 0),
	}
}

func (f *Frequency) Update(value float64) {
	f.counts[value]++
	count := f.counts[value]
	if count > f.maxCount {
		f.maxCount = count
		f.modes = append(f.modes[:0], value)
	} else if count == f.maxCount {
		// A value crosses any given count exactly once, so it cannot
		// already be in the slice.
		f.modes = append(f.modes, value)
	}
}

// GetModes returns the values tied for the highest occurrence count, in
// discovery order. Empty before the first observation. The returned slice
// is the tracker's own; callers that retain it must copy.
func (f *Frequency) GetModes() []float64 {
	return f.modes
}
