package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"streamstat/source"
	"streamstat/utils"
)

func observeAll(t *testing.T, engine *Engine, values []float64) {
	for _, value := range values {
		assert.NoError(t, engine.Observe(value))
	}
}

func TestEngineCount(t *testing.T) {
	engine := NewEngine()
	assert.Equal(t, int64(0), engine.Count())
	for k := 1; k <= 10; k++ {
		assert.NoError(t, engine.Observe(float64(k)))
		assert.Equal(t, int64(k), engine.Count())
	}
}

func TestEngineEmptyQueries(t *testing.T) {
	engine := NewEngine()

	_, ok := engine.GetMin()
	assert.False(t, ok)
	_, ok = engine.GetMax()
	assert.False(t, ok)
	_, ok = engine.GetMean()
	assert.False(t, ok)
	_, ok = engine.GetStdDev()
	assert.False(t, ok)
	_, ok = engine.GetGeometricMean()
	assert.False(t, ok)
	_, ok = engine.GetHarmonicMean()
	assert.False(t, ok)
	_, ok = engine.GetMedian()
	assert.False(t, ok)
	assert.Equal(t, 0.0, engine.GetSum())
	assert.Equal(t, []float64{}, engine.GetModes())
}

func TestEngineMedianSequence(t *testing.T) {
	engine := NewEngine()
	values := []float64{5, 3, 8, 1, 9, 2}
	expected := []float64{5, 4.0, 5, 4.0, 5, 4.5}
	for i, value := range values {
		assert.NoError(t, engine.Observe(value))
		median, ok := engine.GetMedian()
		assert.True(t, ok)
		assert.Equal(t, expected[i], median)
	}
}

func TestEngineModeDiscoveryOrder(t *testing.T) {
	engine := NewEngine()
	observeAll(t, engine, []float64{1, 1, 2, 2})
	assert.True(t, cmp.Equal([]float64{1, 2}, engine.GetModes()))
}

func TestEngineHarmonicZeroFreeze(t *testing.T) {
	engine := NewEngine()
	assert.NoError(t, engine.Observe(4))
	assert.NoError(t, engine.Observe(0))
	hm, ok := engine.GetHarmonicMean()
	assert.True(t, ok)
	assert.Equal(t, 0.0, hm)

	assert.NoError(t, engine.Observe(2))
	hm, ok = engine.GetHarmonicMean()
	assert.True(t, ok)
	assert.Equal(t, 0.0, hm)
}

func TestEngineStdDevDomain(t *testing.T) {
	engine := NewEngine()
	_, ok := engine.GetStdDev()
	assert.False(t, ok)

	assert.NoError(t, engine.Observe(3))
	_, ok = engine.GetStdDev()
	assert.False(t, ok)

	assert.NoError(t, engine.Observe(-3))
	sd, ok := engine.GetStdDev()
	assert.True(t, ok)
	assert.True(t, sd >= 0)
}

func TestEngineInvalidObservation(t *testing.T) {
	engine := NewEngine()
	assert.NoError(t, engine.Observe(1))

	before := engine.Snapshot()
	assert.Equal(t, ErrInvalidObservation, engine.Observe(math.NaN()))
	assert.Equal(t, ErrInvalidObservation, engine.Observe(math.Inf(1)))
	assert.Equal(t, ErrInvalidObservation, engine.Observe(math.Inf(-1)))
	after := engine.Snapshot()

	// rejected values leave no partial update anywhere
	assert.True(t, cmp.Equal(before, after))
}

func TestEngineSnapshotImmutable(t *testing.T) {
	engine := NewEngine()
	observeAll(t, engine, []float64{2, 2, 5})

	snapshot := engine.Snapshot()
	snapshot.Modes[0] = 99
	snapshot.Min.Value = -1

	fresh := engine.Snapshot()
	assert.True(t, cmp.Equal([]float64{2}, fresh.Modes))
	assert.Equal(t, 2.0, fresh.Min.Value)
}

func TestEngineSnapshotFields(t *testing.T) {
	engine := NewEngine()

	empty := engine.Snapshot()
	assert.Nil(t, empty.Min)
	assert.Nil(t, empty.Max)
	assert.Nil(t, empty.Mean)
	assert.Nil(t, empty.StdDev)
	assert.Nil(t, empty.GeometricMean)
	assert.Nil(t, empty.HarmonicMean)
	assert.Nil(t, empty.Median)

	observeAll(t, engine, []float64{3, 1, 4, 1, 5, 9, 2, 6})
	snapshot := engine.Snapshot()
	assert.Equal(t, int64(8), snapshot.Count)
	assert.Equal(t, 1.0, snapshot.Min.Value)
	assert.Equal(t, 9.0, snapshot.Max.Value)
	assert.Equal(t, 31.0, snapshot.Sum)
	assert.Equal(t, []float64{1}, snapshot.Modes)
	assert.Equal(t, 3.5, snapshot.Median.Value)
	assert.False(t, snapshot.GeometricMean.IsComplex)
}

func TestEngineGeometricMeanTagging(t *testing.T) {
	engine := NewEngine()
	assert.NoError(t, engine.Observe(-1))
	gm, ok := engine.GetGeometricMean()
	assert.True(t, ok)
	assert.True(t, gm.IsComplex)

	assert.NoError(t, engine.Observe(-1))
	gm, ok = engine.GetGeometricMean()
	assert.True(t, ok)
	assert.False(t, gm.IsComplex)
	assert.Equal(t, 1.0, gm.Real)
}

func TestEngineDrainFiniteSource(t *testing.T) {
	engine := NewEngine()
	src := source.NewListSource([]float64{5, 3, 8, 1, 9, 2})
	assert.NoError(t, engine.Drain(src))
	assert.Equal(t, int64(6), engine.Count())
	median, ok := engine.GetMedian()
	assert.True(t, ok)
	assert.Equal(t, 4.5, median)
}

func TestEngineDrainNBoundsInfiniteSource(t *testing.T) {
	engine := NewEngine()
	src, err := source.NewSeededRandIntSource(-1000, 1000, 7)
	assert.NoError(t, err)
	assert.NoError(t, engine.DrainN(src, 5000))
	assert.Equal(t, int64(5000), engine.Count())

	min, ok := engine.GetMin()
	assert.True(t, ok)
	max, ok := engine.GetMax()
	assert.True(t, ok)
	assert.True(t, min >= -1000 && max <= 1000)
}

// Cross-check the engine against gonum's batch implementations on
// positive data (gonum's geometric and harmonic means are log-based and
// only defined there).
func TestEngineAgainstGonum(t *testing.T) {
	engine := NewEngine()
	src, err := source.NewSeededRandIntSource(1, 500, 11)
	utils.AssertTrue(t, err == nil)

	values := make([]float64, 0, 300)
	for i := 0; i < 300; i++ {
		value, _ := src.Next()
		values = append(values, value)
		utils.AssertTrue(t, engine.Observe(value) == nil)
	}

	mean, ok := engine.GetMean()
	utils.AssertTrue(t, ok)
	utils.AssertClose(t, mean, stat.Mean(values, nil), 1e-9)

	sd, ok := engine.GetStdDev()
	utils.AssertTrue(t, ok)
	utils.AssertClose(t, sd, stat.StdDev(values, nil), 1e-6)

	gm, ok := engine.GetGeometricMean()
	utils.AssertTrue(t, ok)
	utils.AssertTrue(t, !gm.IsComplex)
	utils.AssertClose(t, gm.Real, stat.GeometricMean(values, nil), 1e-6)

	hm, ok := engine.GetHarmonicMean()
	utils.AssertTrue(t, ok)
	utils.AssertClose(t, hm, stat.HarmonicMean(values, nil), 1e-6)
}
