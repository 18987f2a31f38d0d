// Package urlset implements the exact tier of the blacklist: an
// authoritative, deduplicated set of URLs with write-through persistence.
package urlset

import (
	"context"

	"github.com/fwojciec/blacklist"
)

// Compile-time interface verification.
var _ blacklist.URLSet = (*Set)(nil)

// Set holds URLs in insertion order without duplicates.
// Set is not safe for concurrent use; callers serialize access.
type Set struct {
	index   map[string]int
	entries []string
	storage blacklist.URLStorage
}

// New creates a Set hydrated from storage. A nil storage or a failed load
// yields an empty set. Duplicates in loaded data are dropped.
func New(ctx context.Context, storage blacklist.URLStorage) *Set {
	s := &Set{
		index:   make(map[string]int),
		storage: storage,
	}
	if storage == nil {
		return s
	}
	urls, err := storage.Load(ctx)
	if err != nil {
		return s
	}
	for _, u := range urls {
		if u == "" {
			continue
		}
		s.insert(u)
	}
	return s
}

func (s *Set) insert(url string) bool {
	if _, ok := s.index[url]; ok {
		return false
	}
	s.index[url] = len(s.entries)
	s.entries = append(s.entries, url)
	return true
}

// Add inserts url and persists the set. Adding a present URL is a no-op
// for membership but still persists.
func (s *Set) Add(ctx context.Context, url string) error {
	s.insert(url)
	return s.save(ctx)
}

// Check reports whether url is in the set.
func (s *Set) Check(url string) bool {
	_, ok := s.index[url]
	return ok
}

// Remove deletes url and persists the set. It reports whether url was
// present; nothing is persisted when it was not.
func (s *Set) Remove(ctx context.Context, url string) (bool, error) {
	i, ok := s.index[url]
	if !ok {
		return false, nil
	}
	delete(s.index, url)
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j]] = j
	}
	return true, s.save(ctx)
}

// Close persists the set one final time.
func (s *Set) Close(ctx context.Context) error {
	return s.save(ctx)
}

// Len returns the number of URLs.
func (s *Set) Len() int {
	return len(s.entries)
}

// URLs returns a copy of the URLs in insertion order.
func (s *Set) URLs() []string {
	return append([]string(nil), s.entries...)
}

func (s *Set) save(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	if err := s.storage.Save(ctx, s.URLs()); err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "save url set: %s", blacklist.ErrorMessage(err))
	}
	return nil
}
