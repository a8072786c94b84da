package core

// Op is the capability every tracker shares: consume one observed value
// and fold it into internal state.
type Op interface {
	Update(value float64)
}

// ScalarSource is a pull-based producer of real numbers. Next returns
// the next value, or ok=false once the sequence is exhausted. Infinite
// sources never return ok=false; bounding consumption of those is the
// caller's responsibility.
type ScalarSource interface {
	Next() (value float64, ok bool)
}
