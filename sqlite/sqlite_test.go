package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/blacklist/sqlite"
	"github.com/stretchr/testify/require"
)

// MustOpenDB returns an open in-memory database closed at test cleanup.
func MustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)

		// Verify tables exist by querying them
		ctx := context.Background()

		var filterCount int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM filters").Scan(&filterCount)
		require.NoError(t, err)

		var urlCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM urls").Scan(&urlCount)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})

	t.Run("reopening keeps data", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		dbPath := t.TempDir() + "/test.db"

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		require.NoError(t, sqlite.NewURLStorage(db, "exact").Save(ctx, []string{"www.bad.com"}))
		require.NoError(t, db.Close())

		db = sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()

		urls, err := sqlite.NewURLStorage(db, "exact").Load(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"www.bad.com"}, urls)
	})
}
