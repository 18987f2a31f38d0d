// Package redis provides Redis-backed storage for the filter bits and the
// exact URL set.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key formats for stored values.
const (
	KeyFilterBits = "blacklist:filter:%s"
	KeyURLList    = "blacklist:urls:%s"
)

// DefaultRetryDelays returns the backoff delays for connection retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Open connects to the Redis server at addr and verifies it responds.
// A failed ping is retried once per delay. The logger, if not nil, is told
// about each retry.
func Open(ctx context.Context, addr string, delays []time.Duration, logger *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	maxAttempts := len(delays) + 1
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		lastErr = client.Ping(ctx).Err()
		if lastErr == nil {
			return client, nil
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Warn("redis ping failed, retrying", "addr", addr, "attempt", attempt+2, "err", lastErr)
		}

		select {
		case <-ctx.Done():
			client.Close()
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	client.Close()
	return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, lastErr)
}
