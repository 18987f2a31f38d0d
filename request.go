package blacklist

import "context"

// Request is a parsed protocol line.
type Request struct {
	Key string
	URL string
}

// Handler executes one protocol command against a URL.
type Handler interface {
	Handle(ctx context.Context, url string) Response
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, url string) Response

// Handle calls f(ctx, url).
func (f HandlerFunc) Handle(ctx context.Context, url string) Response {
	return f(ctx, url)
}

// Limiter throttles requests per peer.
type Limiter interface {
	// Wait blocks until a request from peer is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, peer string) error
}
