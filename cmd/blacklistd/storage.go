package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fwojciec/blacklist"
	"github.com/fwojciec/blacklist/fs"
	"github.com/fwojciec/blacklist/redis"
	blslog "github.com/fwojciec/blacklist/slog"
	"github.com/fwojciec/blacklist/sqlite"
)

// Storage names used by the sqlite and redis backends.
const storageName = "default"

// Storage bundles the persistence collaborators of both tiers.
type Storage struct {
	Bits  blacklist.BitStorage
	URLs  blacklist.URLStorage
	close func() error
}

// Close releases the backend connection, if any.
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openStorage opens the configured backend and wraps it with logging.
func openStorage(ctx context.Context, c *ServeCmd, logger *slog.Logger) (*Storage, error) {
	var store Storage
	switch c.Backend {
	case "file":
		if err := os.MkdirAll(c.DataDir, 0755); err != nil {
			return nil, blacklist.Errorf(blacklist.ECONFIG, "create data directory: %v", err)
		}
		bits := fs.NewBitFile(filepath.Join(c.DataDir, "filter.bin"), int(c.Size))
		lines := fs.NewLineFile(filepath.Join(c.DataDir, "urls.txt"))
		logger.Info("file storage", "filter", bits.Path(), "urls", lines.Path())
		store.Bits, store.URLs = bits, lines

	case "sqlite":
		if err := os.MkdirAll(c.DataDir, 0755); err != nil {
			return nil, blacklist.Errorf(blacklist.ECONFIG, "create data directory: %v", err)
		}
		db := sqlite.NewDB(filepath.Join(c.DataDir, "blacklist.db"))
		if err := db.Open(); err != nil {
			return nil, blacklist.Errorf(blacklist.ESTORAGE, "open database: %v", err)
		}
		store.Bits = sqlite.NewBitStorage(db, storageName, int(c.Size))
		store.URLs = sqlite.NewURLStorage(db, storageName)
		store.close = db.Close

	case "redis":
		client, err := redis.Open(ctx, c.RedisAddr, redis.DefaultRetryDelays(), logger)
		if err != nil {
			return nil, blacklist.Errorf(blacklist.ESTORAGE, "%v", err)
		}
		store.Bits = redis.NewBitStorage(client, storageName, int(c.Size))
		store.URLs = redis.NewURLStorage(client, storageName)
		store.close = client.Close

	default:
		return nil, blacklist.Errorf(blacklist.ECONFIG, "unknown backend %q", c.Backend)
	}

	store.Bits = blslog.NewLoggingBitStorage(store.Bits, logger)
	store.URLs = blslog.NewLoggingURLStorage(store.URLs, logger)
	return &store, nil
}
