// Package fs provides file-based storage for the filter bits and the exact
// URL set.
package fs

import (
	"context"
	"os"

	"github.com/fwojciec/blacklist"
)

// Ensure BitFile implements blacklist.BitStorage at compile time.
var _ blacklist.BitStorage = (*BitFile)(nil)

// BitFile stores a filter's bit array as raw bytes, one byte per bit.
// Every byte is 0x00 or 0x01 and the file length equals the filter size.
type BitFile struct {
	path string
	size int
}

// NewBitFile creates a BitFile at path holding size bits.
func NewBitFile(path string, size int) *BitFile {
	return &BitFile{path: path, size: size}
}

// Path returns the file path.
func (f *BitFile) Path() string {
	return f.path
}

// Load reads and validates the bit array.
func (f *BitFile) Load(_ context.Context) ([]byte, error) {
	if f.path == "" {
		return nil, blacklist.Errorf(blacklist.ECONFIG, "bit file path is empty")
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, blacklist.Errorf(blacklist.ESTORAGE, "read bit file: %v", err)
	}
	if len(data) == 0 {
		return nil, blacklist.Errorf(blacklist.ECORRUPT, "bit file %s is empty", f.path)
	}
	if err := blacklist.ValidateBits(data, f.size); err != nil {
		return nil, err
	}
	return data, nil
}

// Save overwrites the file with bits. Parent directories must already exist.
func (f *BitFile) Save(_ context.Context, bits []byte) error {
	if f.path == "" {
		return blacklist.Errorf(blacklist.ECONFIG, "bit file path is empty")
	}
	if err := blacklist.ValidateBits(bits, f.size); err != nil {
		return err
	}
	if err := os.WriteFile(f.path, bits, 0644); err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "write bit file: %v", err)
	}
	return nil
}
