package mock

import (
	"context"

	"github.com/fwojciec/blacklist"
)

var _ blacklist.Filter = (*Filter)(nil)

// Filter is a mock implementation of blacklist.Filter.
type Filter struct {
	AddFn      func(ctx context.Context, url string) error
	ContainsFn func(url string) bool
}

func (f *Filter) Add(ctx context.Context, url string) error {
	return f.AddFn(ctx, url)
}

func (f *Filter) Contains(url string) bool {
	return f.ContainsFn(url)
}

var _ blacklist.URLSet = (*URLSet)(nil)

// URLSet is a mock implementation of blacklist.URLSet.
type URLSet struct {
	AddFn    func(ctx context.Context, url string) error
	CheckFn  func(url string) bool
	RemoveFn func(ctx context.Context, url string) (bool, error)
}

func (s *URLSet) Add(ctx context.Context, url string) error {
	return s.AddFn(ctx, url)
}

func (s *URLSet) Check(url string) bool {
	return s.CheckFn(url)
}

func (s *URLSet) Remove(ctx context.Context, url string) (bool, error) {
	return s.RemoveFn(ctx, url)
}
