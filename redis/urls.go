package redis

import (
	"context"
	"fmt"

	"github.com/fwojciec/blacklist"
	"github.com/redis/go-redis/v9"
)

var _ blacklist.URLStorage = (*URLStorage)(nil)

// URLStorage stores the exact URL set as a Redis list.
type URLStorage struct {
	client *redis.Client
	key    string
}

// NewURLStorage creates a URLStorage for the named list.
func NewURLStorage(client *redis.Client, name string) *URLStorage {
	return &URLStorage{
		client: client,
		key:    fmt.Sprintf(KeyURLList, name),
	}
}

func (s *URLStorage) Load(ctx context.Context) ([]string, error) {
	urls, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, blacklist.Errorf(blacklist.ESTORAGE, "lrange %s: %v", s.key, err)
	}
	return urls, nil
}

// Save replaces the list atomically with DEL and RPUSH inside MULTI/EXEC.
func (s *URLStorage) Save(ctx context.Context, urls []string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(urls) == 0 {
			return nil
		}
		values := make([]any, len(urls))
		for i, u := range urls {
			values[i] = u
		}
		pipe.RPush(ctx, s.key, values...)
		return nil
	})
	if err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "replace %s: %v", s.key, err)
	}
	return nil
}
