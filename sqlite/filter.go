package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/blacklist"
)

// Compile-time interface verification.
var _ blacklist.BitStorage = (*BitStorage)(nil)

// BitStorage implements blacklist.BitStorage as one row of the filters table.
type BitStorage struct {
	db   *DB
	name string
	size int
}

// NewBitStorage creates a BitStorage for the named filter holding size bits.
func NewBitStorage(db *DB, name string, size int) *BitStorage {
	return &BitStorage{db: db, name: name, size: size}
}

// Load returns the stored bits, validated against the expected size.
func (s *BitStorage) Load(ctx context.Context) ([]byte, error) {
	var bits []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT bits FROM filters WHERE name = ?
	`, s.name).Scan(&bits)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, blacklist.Errorf(blacklist.ENOTFOUND, "filter %q not found", s.name)
	}
	if err != nil {
		return nil, blacklist.Errorf(blacklist.ESTORAGE, "load filter %q: %v", s.name, err)
	}
	if err := blacklist.ValidateBits(bits, s.size); err != nil {
		return nil, err
	}
	return bits, nil
}

// Save inserts or replaces the stored bits.
func (s *BitStorage) Save(ctx context.Context, bits []byte) error {
	if err := blacklist.ValidateBits(bits, s.size); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO filters (name, bits, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET bits = excluded.bits, updated_at = excluded.updated_at
	`, s.name, bits, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "save filter %q: %v", s.name, err)
	}
	return nil
}
