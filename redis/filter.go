package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/blacklist"
	"github.com/redis/go-redis/v9"
)

var _ blacklist.BitStorage = (*BitStorage)(nil)

// BitStorage stores a filter's byte-per-bit array as a single string value.
type BitStorage struct {
	client *redis.Client
	key    string
	size   int
}

// NewBitStorage creates a BitStorage for the named filter holding size bits.
func NewBitStorage(client *redis.Client, name string, size int) *BitStorage {
	return &BitStorage{
		client: client,
		key:    fmt.Sprintf(KeyFilterBits, name),
		size:   size,
	}
}

func (s *BitStorage) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, blacklist.Errorf(blacklist.ENOTFOUND, "key %s not found", s.key)
	} else if err != nil {
		return nil, blacklist.Errorf(blacklist.ESTORAGE, "get %s: %v", s.key, err)
	}
	if err := blacklist.ValidateBits(data, s.size); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *BitStorage) Save(ctx context.Context, bits []byte) error {
	if err := blacklist.ValidateBits(bits, s.size); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, string(bits), 0).Err(); err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "set %s: %v", s.key, err)
	}
	return nil
}
