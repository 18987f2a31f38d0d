// Package slog provides logging decorators for the blacklist storage
// collaborators.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blacklist"
)

// Ensure LoggingBitStorage implements blacklist.BitStorage.
var _ blacklist.BitStorage = (*LoggingBitStorage)(nil)

// LoggingBitStorage wraps a BitStorage with logging.
type LoggingBitStorage struct {
	next   blacklist.BitStorage
	logger *slog.Logger
}

// NewLoggingBitStorage creates a new LoggingBitStorage.
func NewLoggingBitStorage(next blacklist.BitStorage, logger *slog.Logger) *LoggingBitStorage {
	return &LoggingBitStorage{next: next, logger: logger}
}

// Load delegates to the wrapped storage and logs the operation.
func (s *LoggingBitStorage) Load(ctx context.Context) (bits []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Info("filter load",
			"size", len(bits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped storage. Successful saves happen on every
// add, so they are logged at debug level.
func (s *LoggingBitStorage) Save(ctx context.Context, bits []byte) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "filter save",
			"size", len(bits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, bits)
}

// Ensure LoggingURLStorage implements blacklist.URLStorage.
var _ blacklist.URLStorage = (*LoggingURLStorage)(nil)

// LoggingURLStorage wraps a URLStorage with logging.
type LoggingURLStorage struct {
	next   blacklist.URLStorage
	logger *slog.Logger
}

// NewLoggingURLStorage creates a new LoggingURLStorage.
func NewLoggingURLStorage(next blacklist.URLStorage, logger *slog.Logger) *LoggingURLStorage {
	return &LoggingURLStorage{next: next, logger: logger}
}

// Load delegates to the wrapped storage and logs the operation.
func (s *LoggingURLStorage) Load(ctx context.Context) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("url load",
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped storage and logs the operation.
func (s *LoggingURLStorage) Save(ctx context.Context, urls []string) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "url save",
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, urls)
}
