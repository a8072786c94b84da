package stats

import "math"

// Extrema tracks the running minimum and maximum of a stream.
type Extrema struct {
	hasValue bool
	min      float64
	max      float64
}

func NewExtrema() *Extrema {
	return &Extrema{}
}

func (e *Extrema) Update(value float64) {
	if !e.hasValue {
		e.hasValue = true
		e.min = value
		e.max = value
		return
	}
	e.min = math.Min(e.min, value)
	e.max = math.Max(e.max, value)
}

func (e *Extrema) GetMin() (float64, bool) {
	return e.min, e.hasValue
}

func (e *Extrema) GetMax() (float64, bool) {
	return e.max, e.hasValue
}
