// Package bloom provides the probabilistic tier of the blacklist: a
// fixed-size Bloom filter driven by configurable hashers.
package bloom

import (
	"context"

	"github.com/bits-and-blooms/bitset"
	"github.com/fwojciec/blacklist"
)

// Compile-time interface verification.
var _ blacklist.Filter = (*Filter)(nil)

// Filter is a Bloom filter over a fixed number of bits.
// Bits are never cleared. Filter is not safe for concurrent use;
// callers serialize access.
type Filter struct {
	size    uint
	bits    *bitset.BitSet
	hashers []blacklist.Hasher
	storage blacklist.BitStorage
	dirty   bool
	loaded  bool
}

// NewFilter creates a filter of size bits using the given hashers.
// If storage is not nil the filter is hydrated from it; persisted bits are
// only adopted when they are valid for this size, otherwise the filter
// starts empty. Load failures are not returned.
// Returns ECONFIG if size is zero or no hashers are given.
func NewFilter(ctx context.Context, size uint, hashers []blacklist.Hasher, storage blacklist.BitStorage) (*Filter, error) {
	if size == 0 {
		return nil, blacklist.Errorf(blacklist.ECONFIG, "filter size must be positive")
	}
	if len(hashers) == 0 {
		return nil, blacklist.Errorf(blacklist.ECONFIG, "filter requires at least one hasher")
	}
	for i, h := range hashers {
		if h == nil {
			return nil, blacklist.Errorf(blacklist.ECONFIG, "hasher %d is nil", i)
		}
	}

	f := &Filter{
		size:    size,
		bits:    bitset.New(size),
		hashers: append([]blacklist.Hasher(nil), hashers...),
		storage: storage,
	}
	if storage != nil {
		f.load(ctx)
	}
	return f, nil
}

func (f *Filter) load(ctx context.Context) {
	data, err := f.storage.Load(ctx)
	if err != nil {
		return
	}
	if blacklist.ValidateBits(data, int(f.size)) != nil {
		return
	}
	for i, b := range data {
		if b == 1 {
			f.bits.Set(uint(i))
		}
	}
	f.loaded = true
}

// Add sets the bit selected by each hasher and, if storage is bound,
// persists the whole bit array. The bits stay set even if saving fails.
func (f *Filter) Add(ctx context.Context, url string) error {
	for _, h := range f.hashers {
		f.bits.Set(f.index(h, url))
	}
	f.dirty = true
	return f.save(ctx)
}

// Contains returns false as soon as one selected bit is unset.
// A true result means the URL was possibly added.
func (f *Filter) Contains(url string) bool {
	for _, h := range f.hashers {
		if !f.bits.Test(f.index(h, url)) {
			return false
		}
	}
	return true
}

// Close persists the bit array if it changed since it was loaded.
func (f *Filter) Close(ctx context.Context) error {
	if !f.dirty {
		return nil
	}
	return f.save(ctx)
}

func (f *Filter) save(ctx context.Context) error {
	if f.storage == nil {
		return nil
	}
	if err := f.storage.Save(ctx, f.Bytes()); err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "save bloom filter: %s", blacklist.ErrorMessage(err))
	}
	f.dirty = false
	return nil
}

func (f *Filter) index(h blacklist.Hasher, url string) uint {
	return uint(h.Hash(url) % uint64(f.size))
}

// Size returns the number of bits.
func (f *Filter) Size() uint {
	return f.size
}

// Count returns the number of set bits.
func (f *Filter) Count() uint {
	return f.bits.Count()
}

// Loaded reports whether persisted bits were adopted at construction.
func (f *Filter) Loaded() bool {
	return f.loaded
}

// Bytes returns the bit array encoded one byte per bit.
func (f *Filter) Bytes() []byte {
	out := make([]byte, f.size)
	for i := uint(0); i < f.size; i++ {
		if f.bits.Test(i) {
			out[i] = 1
		}
	}
	return out
}
