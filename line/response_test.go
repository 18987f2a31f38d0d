package line_test

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/fwojciec/blacklist"
	"github.com/fwojciec/blacklist/line"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResponse(t *testing.T) {
	t.Parallel()

	// A stream of responses as written by a session.
	stream := "201 Created\n200 OK\n\ntrue false\n404 Not Found\n200 OK\n\nfalse\n"
	r := bufio.NewReader(strings.NewReader(stream))

	want := []blacklist.Response{
		{Status: blacklist.StatusCreated},
		{Status: blacklist.StatusOK, Body: "true false"},
		{Status: blacklist.StatusNotFound},
		{Status: blacklist.StatusOK, Body: "false"},
	}
	for _, w := range want {
		got, err := line.ReadResponse(r)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}

	_, err := line.ReadResponse(r)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadResponse_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"not a number", "OK\n"},
		{"unknown code", "418 I'm a teapot\n"},
		{"wrong reason", "404 Created\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := line.ReadResponse(bufio.NewReader(strings.NewReader(tt.input)))

			assert.Equal(t, blacklist.EINVALID, blacklist.ErrorCode(err))
		})
	}
}

func TestReadResponse_TruncatedBody(t *testing.T) {
	t.Parallel()

	_, err := line.ReadResponse(bufio.NewReader(strings.NewReader("200 OK\n\n")))

	assert.ErrorIs(t, err, io.EOF)
}
