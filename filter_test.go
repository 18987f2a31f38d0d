package blacklist_test

import (
	"testing"

	"github.com/fwojciec/blacklist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBits(t *testing.T) {
	t.Parallel()

	t.Run("accepts zero and one bytes of the expected size", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, blacklist.ValidateBits([]byte{0, 1, 1, 0}, 4))
	})

	t.Run("rejects size mismatch", func(t *testing.T) {
		t.Parallel()

		err := blacklist.ValidateBits([]byte{0, 1}, 4)

		assert.Equal(t, blacklist.ECORRUPT, blacklist.ErrorCode(err))
	})

	t.Run("rejects non-boolean byte", func(t *testing.T) {
		t.Parallel()

		err := blacklist.ValidateBits([]byte{0, 2, 1}, 3)

		assert.Equal(t, blacklist.ECORRUPT, blacklist.ErrorCode(err))
		assert.Contains(t, blacklist.ErrorMessage(err), "byte 1")
	})

	t.Run("rejects empty input for non-zero size", func(t *testing.T) {
		t.Parallel()

		err := blacklist.ValidateBits(nil, 8)

		assert.Equal(t, blacklist.ECORRUPT, blacklist.ErrorCode(err))
	})
}
