package mock

import (
	"context"

	"github.com/fwojciec/blacklist"
)

var _ blacklist.BitStorage = (*BitStorage)(nil)

// BitStorage is a mock implementation of blacklist.BitStorage.
type BitStorage struct {
	LoadFn func(ctx context.Context) ([]byte, error)
	SaveFn func(ctx context.Context, bits []byte) error
}

func (s *BitStorage) Load(ctx context.Context) ([]byte, error) {
	return s.LoadFn(ctx)
}

func (s *BitStorage) Save(ctx context.Context, bits []byte) error {
	return s.SaveFn(ctx, bits)
}

var _ blacklist.URLStorage = (*URLStorage)(nil)

// URLStorage is a mock implementation of blacklist.URLStorage.
type URLStorage struct {
	LoadFn func(ctx context.Context) ([]string, error)
	SaveFn func(ctx context.Context, urls []string) error
}

func (s *URLStorage) Load(ctx context.Context) ([]string, error) {
	return s.LoadFn(ctx)
}

func (s *URLStorage) Save(ctx context.Context, urls []string) error {
	return s.SaveFn(ctx, urls)
}
