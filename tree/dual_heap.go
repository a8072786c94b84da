package tree

import "container/heap"

// floatHeap is the shared storage for both heap orderings.
type floatHeap []float64

func (fh floatHeap) Len() int {
	return len(fh)
}

func (fh floatHeap) Swap(i, j int) {
	fh[i], fh[j] = fh[j], fh[i]
}

func (fh *floatHeap) Push(x interface{}) {
	*fh = append(*fh, x.(float64))
}

func (fh *floatHeap) Pop() interface{} {
	old := *fh
	n := len(old)
	item := old[n-1]
	*fh = old[0 : n-1]
	return item
}

func (fh floatHeap) Top() float64 {
	return fh[0]
}

type MinFloatHeap struct {
	floatHeap
}

func (mh MinFloatHeap) Less(i, j int) bool {
	return mh.floatHeap[i] < mh.floatHeap[j]
}

func NewMinFloatHeap(initSize int) *MinFloatHeap {
	mh := &MinFloatHeap{make(floatHeap, 0, initSize)}
	heap.Init(mh)
	return mh
}

type MaxFloatHeap struct {
	floatHeap
}

func (mh MaxFloatHeap) Less(i, j int) bool {
	return mh.floatHeap[i] > mh.floatHeap[j]
}

func NewMaxFloatHeap(initSize int) *MaxFloatHeap {
	mh := &MaxFloatHeap{make(floatHeap, 0, initSize)}
	heap.Init(mh)
	return mh
}

// DualHeap maintains the lower half of the inserted values in a max-heap
// and the upper half in a min-heap, so the median is always readable off
// the heap tops. After every insert len(high) - len(low) is 0 or 1.
type DualHeap struct {
	low  *MaxFloatHeap
	high *MinFloatHeap
}

func NewDualHeap(initSize int) *DualHeap {
	return &DualHeap{
		low:  NewMaxFloatHeap(initSize),
		high: NewMinFloatHeap(initSize),
	}
}

func (dh *DualHeap) Insert(value float64) {
	if dh.low.Len() == dh.high.Len() {
		// Equal halves: the larger of (top of low, value) goes to high.
		// Strict <, so a value equal to low's top goes to high directly.
		if dh.low.Len() > 0 && value < dh.low.Top() {
			heap.Push(dh.low, value)
			value = heap.Pop(dh.low).(float64)
		}
		heap.Push(dh.high, value)
	} else {
		// high has one extra: the smaller of (value, top of high) goes
		// to low.
		if dh.high.Len() > 0 && dh.high.Top() < value {
			heap.Push(dh.high, value)
			value = heap.Pop(dh.high).(float64)
		}
		heap.Push(dh.low, value)
	}
}

func (dh *DualHeap) Size() int {
	return dh.low.Len() + dh.high.Len()
}

func (dh *DualHeap) Median() (float64, bool) {
	if dh.Size() == 0 {
		return 0, false
	}
	if dh.low.Len() == dh.high.Len() {
		return (dh.low.Top() + dh.high.Top()) / 2.0, true
	}
	if dh.low.Len() < dh.high.Len() {
		return dh.high.Top(), true
	}
	return dh.low.Top(), true
}
