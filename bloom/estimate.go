package bloom

import (
	"math"

	"github.com/bits-and-blooms/bloom/v3"
)

// Estimate returns the filter size and number of hashers needed to hold n
// URLs with the given false positive rate.
func Estimate(n uint, fpRate float64) (size uint, hashes uint) {
	return bloom.EstimateParameters(n, fpRate)
}

// FalsePositiveRate returns the theoretical false positive rate of a filter
// of size bits with the given number of hashers after n distinct adds.
func FalsePositiveRate(size, hashes, n uint) float64 {
	if size == 0 {
		return 1
	}
	k := float64(hashes)
	return math.Pow(1-math.Exp(-k*float64(n)/float64(size)), k)
}
