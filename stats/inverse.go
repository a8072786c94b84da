package stats

// InverseSum accumulates the sum of reciprocals for the harmonic mean.
// The first zero observed freezes accumulation permanently and pins the
// harmonic mean at exactly 0.
type InverseSum struct {
	count         uint64
	seenZero      bool
	sumOfInverses float64
}

func NewInverseSum() *InverseSum {
	return &InverseSum{}
}

func (is *InverseSum) Update(value float64) {
	is.count++
	if value == 0 {
		is.seenZero = true
	}
	if !is.seenZero {
		is.sumOfInverses += 1.0 / value
	}
}

func (is *InverseSum) GetHarmonicMean() (float64, bool) {
	if is.count == 0 {
		return 0, false
	}
	if is.seenZero {
		return 0, true
	}
	return float64(is.count) / is.sumOfInverses, true
}
