package core

import "streamstat/stats"

type Scalar struct {
	Value float64
}

// Snapshot is one immutable read of every statistic. Statistics that are
// undefined at the current count are nil cells, so a caller cannot
// mistake "not yet defined" for a valid zero. Two snapshots taken at
// different counts are independent records.
type Snapshot struct {
	Count         int64
	Min           *Scalar
	Max           *Scalar
	Sum           float64
	Mean          *Scalar
	StdDev        *Scalar
	GeometricMean *stats.GeoMean
	HarmonicMean  *Scalar
	Modes         []float64
	Median        *Scalar
}

func newScalar(value float64, ok bool) *Scalar {
	if !ok {
		return nil
	}
	return &Scalar{Value: value}
}
