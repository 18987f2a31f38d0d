package bloom_test

import (
	"testing"

	"github.com/fwojciec/blacklist/bloom"
	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	t.Parallel()

	size, hashes := bloom.Estimate(1000, 0.01)

	assert.Greater(t, size, uint(9000))
	assert.Less(t, size, uint(10000))
	assert.Equal(t, uint(7), hashes)
}

func TestFalsePositiveRate(t *testing.T) {
	t.Parallel()

	t.Run("empty filter has no false positives", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.0, bloom.FalsePositiveRate(1024, 3, 0))
	})

	t.Run("matches estimated parameters", func(t *testing.T) {
		t.Parallel()

		size, hashes := bloom.Estimate(1000, 0.01)

		assert.InDelta(t, 0.01, bloom.FalsePositiveRate(size, hashes, 1000), 0.002)
	})

	t.Run("zero size is saturated", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1.0, bloom.FalsePositiveRate(0, 1, 1))
	})
}
