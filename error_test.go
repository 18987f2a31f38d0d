package blacklist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/blacklist"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := blacklist.Errorf(blacklist.ENOTFOUND, "url %q not found", "www.example.com")

	assert.Equal(t, blacklist.ENOTFOUND, blacklist.ErrorCode(err))
	assert.Equal(t, "url \"www.example.com\" not found", blacklist.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load bloom filter: %w", blacklist.Errorf(blacklist.ECORRUPT, "bad byte"))

	assert.Equal(t, blacklist.ECORRUPT, blacklist.ErrorCode(err))
	assert.Equal(t, "bad byte", blacklist.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, blacklist.EINTERNAL, blacklist.ErrorCode(err))
	assert.Equal(t, "disk on fire", blacklist.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, blacklist.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, blacklist.ErrorMessage(nil))
}
