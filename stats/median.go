package stats

import "streamstat/tree"

// Median is the order-statistic tracker. Unlike the other trackers it
// retains every observed value, split across two balanced heaps, so the
// median query stays O(1) and each update O(log n).
type Median struct {
	heaps *tree.DualHeap
}

func NewMedian() *Median {
	return &Median{heaps: tree.NewDualHeap(0)}
}

func (m *Median) Update(value float64) {
	m.heaps.Insert(value)
}

func (m *Median) GetMedian() (float64, bool) {
	return m.heaps.Median()
}
