package mock

import "github.com/fwojciec/blacklist"

var _ blacklist.Hasher = (*Hasher)(nil)

// Hasher is a mock implementation of blacklist.Hasher.
type Hasher struct {
	HashFn func(input string) uint64
}

func (h *Hasher) Hash(input string) uint64 {
	return h.HashFn(input)
}
