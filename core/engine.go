package core

import (
	"errors"
	"math"

	"streamstat/stats"
)

// ErrInvalidObservation is returned when a value routed to Observe is
// not a finite real number. No tracker state changes in that case.
var ErrInvalidObservation = errors.New("observation is not a finite real number")

// Engine fans each observed value out to the per-statistic trackers and
// answers queries in O(1), or O(log n) per update for the median. It is
// single-threaded by contract: callers wanting concurrent observation
// must synchronize externally.
type Engine struct {
	count   int64
	extrema *stats.Extrema
	moments *stats.Moments
	product *stats.Product
	inverse *stats.InverseSum
	freq    *stats.Frequency
	median  *stats.Median
	ops     []Op
}

func NewEngine() *Engine {
	engine := &Engine{
		extrema: stats.NewExtrema(),
		moments: stats.NewMoments(),
		product: stats.NewProduct(),
		inverse: stats.NewInverseSum(),
		freq:    stats.NewFrequency(),
		median:  stats.NewMedian(),
	}
	engine.ops = []Op{
		engine.extrema,
		engine.moments,
		engine.product,
		engine.inverse,
		engine.freq,
		engine.median,
	}
	return engine
}

// Observe folds one value into every tracker. Validation happens before
// any tracker mutates, so a rejected value leaves no partial update.
func (e *Engine) Observe(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ErrInvalidObservation
	}
	e.count++
	for _, op := range e.ops {
		op.Update(value)
	}
	return nil
}

// Drain pulls from the source until it signals end-of-sequence. On an
// infinite source this never returns; use DrainN there.
func (e *Engine) Drain(source ScalarSource) error {
	for {
		value, ok := source.Next()
		if !ok {
			return nil
		}
		if err := e.Observe(value); err != nil {
			return err
		}
	}
}

// DrainN pulls at most n values, stopping early if the source ends.
func (e *Engine) DrainN(source ScalarSource, n int64) error {
	for i := int64(0); i < n; i++ {
		value, ok := source.Next()
		if !ok {
			return nil
		}
		if err := e.Observe(value); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) Count() int64 {
	return e.count
}

func (e *Engine) GetMin() (float64, bool) {
	return e.extrema.GetMin()
}

func (e *Engine) GetMax() (float64, bool) {
	return e.extrema.GetMax()
}

func (e *Engine) GetSum() float64 {
	return e.moments.GetSum()
}

func (e *Engine) GetMean() (float64, bool) {
	return e.moments.GetMean()
}

func (e *Engine) GetStdDev() (float64, bool) {
	return e.moments.GetStdDev()
}

func (e *Engine) GetGeometricMean() (stats.GeoMean, bool) {
	return e.product.GetGeometricMean()
}

func (e *Engine) GetHarmonicMean() (float64, bool) {
	return e.inverse.GetHarmonicMean()
}

// GetModes returns the current modes in discovery order. The slice is a
// copy; mutating it does not reach into the tracker.
func (e *Engine) GetModes() []float64 {
	modes := e.freq.GetModes()
	out := make([]float64, len(modes))
	copy(out, modes)
	return out
}

func (e *Engine) GetMedian() (float64, bool) {
	return e.median.GetMedian()
}

// Snapshot reads every statistic into one record. Pure: no tracker
// state changes.
func (e *Engine) Snapshot() *Snapshot {
	snapshot := &Snapshot{
		Count:        e.count,
		Min:          newScalar(e.extrema.GetMin()),
		Max:          newScalar(e.extrema.GetMax()),
		Sum:          e.moments.GetSum(),
		Mean:         newScalar(e.moments.GetMean()),
		StdDev:       newScalar(e.moments.GetStdDev()),
		HarmonicMean: newScalar(e.inverse.GetHarmonicMean()),
		Modes:        e.GetModes(),
		Median:       newScalar(e.median.GetMedian()),
	}
	if gm, ok := e.product.GetGeometricMean(); ok {
		snapshot.GeometricMean = &gm
	}
	return snapshot
}
