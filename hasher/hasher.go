// Package hasher provides configurable string hashes for Bloom filters.
//
// A Hasher chains its base hash repeat times so that several hashers of the
// same kind behave as distinct hash functions.
package hasher

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/blacklist"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Compile-time interface verification.
var _ blacklist.Hasher = (*Hasher)(nil)

// Hasher is a base string hash applied repeat times.
type Hasher struct {
	kind   blacklist.HashKind
	repeat int
	base   func(string) uint64
}

// New returns a Hasher of the given kind.
// Returns ECONFIG if repeat is not positive or the kind is unsupported.
func New(kind blacklist.HashKind, repeat int) (*Hasher, error) {
	if repeat <= 0 {
		return nil, blacklist.Errorf(blacklist.ECONFIG, "hash repeat must be positive, got %d", repeat)
	}
	base, err := baseHash(kind)
	if err != nil {
		return nil, err
	}
	return &Hasher{kind: kind, repeat: repeat, base: base}, nil
}

// NewSet returns one Hasher per repeat count, in order.
// Returns ECONFIG if repeats is empty or any hasher is invalid.
func NewSet(kind blacklist.HashKind, repeats []int) ([]blacklist.Hasher, error) {
	if len(repeats) == 0 {
		return nil, blacklist.Errorf(blacklist.ECONFIG, "at least one hash repeat count is required")
	}
	hashers := make([]blacklist.Hasher, 0, len(repeats))
	for _, r := range repeats {
		h, err := New(kind, r)
		if err != nil {
			return nil, err
		}
		hashers = append(hashers, h)
	}
	return hashers, nil
}

// Kind returns the base hash kind.
func (h *Hasher) Kind() blacklist.HashKind {
	return h.kind
}

// Repeat returns the number of chained rounds.
func (h *Hasher) Repeat() int {
	return h.repeat
}

// Hash returns the base hash of input, rehashed repeat-1 more times.
// Each extra round hashes input followed by the decimal form of the
// previous result.
func (h *Hasher) Hash(input string) uint64 {
	result := h.base(input)
	for i := 1; i < h.repeat; i++ {
		result = h.base(input + strconv.FormatUint(result, 10))
	}
	return result
}

func baseHash(kind blacklist.HashKind) (func(string) uint64, error) {
	switch kind {
	case blacklist.HashXXHash:
		return xxhash.Sum64String, nil
	case blacklist.HashXXH3:
		return xxh3.HashString, nil
	case blacklist.HashMurmur3:
		return func(s string) uint64 { return murmur3.Sum64([]byte(s)) }, nil
	default:
		return nil, blacklist.Errorf(blacklist.ECONFIG, "unsupported hash kind %q", kind)
	}
}
