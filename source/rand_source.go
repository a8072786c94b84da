package source

import (
	"errors"
	"math/rand"
	"time"
)

var ErrInvalidRange = errors.New("low must not exceed high")

// RandIntSource yields uniformly distributed integers from the closed
// range [low, high], as float64s. It never signals end-of-sequence.
type RandIntSource struct {
	low  int64
	high int64
	rng  *rand.Rand
}

func NewRandIntSource(low, high int64) (*RandIntSource, error) {
	return NewSeededRandIntSource(low, high, time.Now().UnixNano())
}

func NewSeededRandIntSource(low, high, seed int64) (*RandIntSource, error) {
	if low > high {
		return nil, ErrInvalidRange
	}
	return &RandIntSource{
		low:  low,
		high: high,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *RandIntSource) Next() (float64, bool) {
	return float64(s.low + s.rng.Int63n(s.high-s.low+1)), true
}
