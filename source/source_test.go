package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListSourceExhaustion(t *testing.T) {
	src := NewListSource([]float64{1.5, -2, 3})

	for _, expected := range []float64{1.5, -2, 3} {
		value, ok := src.Next()
		assert.True(t, ok)
		assert.Equal(t, expected, value)
	}

	// end-of-sequence is sticky
	for i := 0; i < 3; i++ {
		_, ok := src.Next()
		assert.False(t, ok)
	}
}

func TestListSourceEmpty(t *testing.T) {
	src := NewListSource(nil)
	_, ok := src.Next()
	assert.False(t, ok)
}

func TestRandIntSourceRange(t *testing.T) {
	src, err := NewSeededRandIntSource(-5, 5, 1)
	assert.NoError(t, err)

	seen := make(map[float64]bool)
	for i := 0; i < 1000; i++ {
		value, ok := src.Next()
		assert.True(t, ok)
		assert.True(t, value >= -5 && value <= 5)
		assert.Equal(t, value, float64(int64(value)))
		seen[value] = true
	}
	// closed range: both endpoints reachable
	assert.True(t, seen[-5])
	assert.True(t, seen[5])
}

func TestRandIntSourceSingleton(t *testing.T) {
	src, err := NewSeededRandIntSource(7, 7, 99)
	assert.NoError(t, err)
	for i := 0; i < 10; i++ {
		value, _ := src.Next()
		assert.Equal(t, 7.0, value)
	}
}

func TestRandIntSourceInvalidRange(t *testing.T) {
	_, err := NewRandIntSource(10, 9)
	assert.Equal(t, ErrInvalidRange, err)
}
