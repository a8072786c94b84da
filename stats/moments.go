package stats

import "math"

// Moments accumulates the first two raw moments of a stream: the sum of
// values and the sum of their squares.
type Moments struct {
	count      uint64
	sum        float64
	sumSquares float64
}

func NewMoments() *Moments {
	return &Moments{}
}

func (m *Moments) Update(value float64) {
	m.count++
	m.sum += value
	m.sumSquares += value * value
}

func (m *Moments) GetCount() uint64 {
	return m.count
}

func (m *Moments) GetSum() float64 {
	return m.sum
}

func (m *Moments) GetMean() (float64, bool) {
	if m.count == 0 {
		return 0, false
	}
	return m.sum / float64(m.count), true
}

// GetStdDev returns the sample standard deviation via the single-pass
// textbook formula. It cancels catastrophically for large-magnitude or
// very long streams; Welford is the stable drop-in when that matters.
func (m *Moments) GetStdDev() (float64, bool) {
	if m.count <= 1 {
		return 0, false
	}
	n := float64(m.count)
	variance := (n*m.sumSquares - m.sum*m.sum) / (n * (n - 1))
	if variance < 0 {
		// cancellation artifact
		variance = 0
	}
	return math.Sqrt(variance), true
}
