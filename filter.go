package blacklist

import "context"

// Filter is a probabilistic membership test.
// Contains never reports false for a URL that was added; it may report true
// for a URL that was not.
type Filter interface {
	// Add records the URL. The filter persists itself if it has storage.
	Add(ctx context.Context, url string) error

	// Contains returns false if the URL was definitely never added.
	Contains(url string) bool
}

// BitStorage persists a filter's bit array, one byte per bit.
type BitStorage interface {
	// Load returns the persisted bits.
	// Returns ENOTFOUND if nothing is stored and ECORRUPT if the stored
	// data does not form a valid bit array of the expected size.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the persisted bits.
	// Returns EINVALID if bits does not have the expected size.
	Save(ctx context.Context, bits []byte) error
}

// ValidateBits returns ECORRUPT unless bits has exactly size bytes and every
// byte is 0 or 1.
func ValidateBits(bits []byte, size int) error {
	if len(bits) != size {
		return Errorf(ECORRUPT, "bit array has %d bytes, want %d", len(bits), size)
	}
	for i, b := range bits {
		if b > 1 {
			return Errorf(ECORRUPT, "byte %d is 0x%02x, want 0x00 or 0x01", i, b)
		}
	}
	return nil
}
