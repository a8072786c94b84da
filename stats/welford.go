package stats

import "math"

// Welford is the numerically stable alternative to Moments for variance.
// It carries the running mean and the sum of squared deviations from it,
// so it does not cancel the way the raw-moment formula does on long or
// large-magnitude streams.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{}
}

func (w *Welford) Update(value float64) {
	w.count++
	delta := value - w.mean
	w.mean += delta / float64(w.count)
	w.m2 += delta * (value - w.mean)
}

func (w *Welford) GetCount() uint64 {
	return w.count
}

func (w *Welford) GetMean() (float64, bool) {
	if w.count == 0 {
		return 0, false
	}
	return w.mean, true
}

func (w *Welford) GetVariance() (float64, bool) {
	if w.count < 2 {
		return 0, false
	}
	return w.m2 / float64(w.count), true
}

func (w *Welford) GetSampleVariance() (float64, bool) {
	if w.count < 2 {
		return 0, false
	}
	return w.m2 / float64(w.count-1), true
}

func (w *Welford) GetStdDev() (float64, bool) {
	variance, ok := w.GetSampleVariance()
	if !ok {
		return 0, false
	}
	return math.Sqrt(variance), true
}
