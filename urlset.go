package blacklist

import "context"

// URLSet is the exact, authoritative set of blacklisted URLs.
type URLSet interface {
	// Add inserts the URL. Adding a URL that is already present is a no-op
	// apart from persistence.
	Add(ctx context.Context, url string) error

	// Check reports whether the URL is blacklisted.
	Check(url string) bool

	// Remove deletes the URL and reports whether it was present.
	Remove(ctx context.Context, url string) (bool, error)
}

// URLStorage persists the URLs of a URLSet.
type URLStorage interface {
	// Load returns the persisted URLs in stored order.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the persisted URLs.
	Save(ctx context.Context, urls []string) error
}
