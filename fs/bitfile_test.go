package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/blacklist"
	"github.com/fwojciec/blacklist/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitFile_RoundTrip(t *testing.T) {
	t.Parallel()

	// Given a bit file for an 8-bit filter
	path := filepath.Join(t.TempDir(), "filter.bin")
	f := fs.NewBitFile(path, 8)
	bits := []byte{1, 0, 0, 1, 0, 0, 0, 1}

	// When I save and load it
	require.NoError(t, f.Save(context.Background(), bits))
	got, err := f.Load(context.Background())

	// Then the bytes come back unchanged
	require.NoError(t, err)
	assert.Equal(t, bits, got)

	// And the file holds exactly one byte per bit
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, bits, raw)
	assert.Equal(t, path, f.Path())
}

func TestBitFile_SaveOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "filter.bin")
	f := fs.NewBitFile(path, 4)
	require.NoError(t, f.Save(context.Background(), []byte{1, 1, 1, 1}))

	require.NoError(t, f.Save(context.Background(), []byte{0, 1, 0, 0}))

	got, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 0, 0}, got)
}

func TestBitFile_LoadFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewBitFile("", 4).Load(ctx)

		assert.Equal(t, blacklist.ECONFIG, blacklist.ErrorCode(err))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewBitFile(filepath.Join(t.TempDir(), "nope.bin"), 4).Load(ctx)

		assert.Equal(t, blacklist.ESTORAGE, blacklist.ErrorCode(err))
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "filter.bin")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := fs.NewBitFile(path, 4).Load(ctx)

		assert.Equal(t, blacklist.ECORRUPT, blacklist.ErrorCode(err))
	})

	t.Run("size mismatch", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "filter.bin")
		require.NoError(t, os.WriteFile(path, []byte{0, 1, 0}, 0644))

		_, err := fs.NewBitFile(path, 4).Load(ctx)

		assert.Equal(t, blacklist.ECORRUPT, blacklist.ErrorCode(err))
	})

	t.Run("byte outside 0 and 1", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "filter.bin")
		require.NoError(t, os.WriteFile(path, []byte{0, '1', 0, 0}, 0644))

		_, err := fs.NewBitFile(path, 4).Load(ctx)

		assert.Equal(t, blacklist.ECORRUPT, blacklist.ErrorCode(err))
	})
}

func TestBitFile_SaveFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("size mismatch", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "filter.bin")

		err := fs.NewBitFile(path, 4).Save(ctx, []byte{0, 1})

		assert.Equal(t, blacklist.ECORRUPT, blacklist.ErrorCode(err))
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing parent directory is not created", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "missing")

		err := fs.NewBitFile(filepath.Join(dir, "filter.bin"), 2).Save(ctx, []byte{0, 1})

		assert.Equal(t, blacklist.ESTORAGE, blacklist.ErrorCode(err))
		_, statErr := os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr))
	})
}
