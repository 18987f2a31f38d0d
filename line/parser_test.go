package line_test

import (
	"testing"

	"github.com/fwojciec/blacklist"
	"github.com/fwojciec/blacklist/line"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want blacklist.Request
	}{
		{"verb key", "POST www.example.com", blacklist.Request{Key: "POST", URL: "www.example.com"}},
		{"numeric key", "2 example.com", blacklist.Request{Key: "2", URL: "example.com"}},
		{"scheme and path", "GET https://www.example.com/a/b?q=1", blacklist.Request{Key: "GET", URL: "https://www.example.com/a/b?q=1"}},
		{"extra whitespace", "  GET \t www.bad.com  ", blacklist.Request{Key: "GET", URL: "www.bad.com"}},
		{"subdomains", "GET a.b.c.example.org", blacklist.Request{Key: "GET", URL: "a.b.c.example.org"}},
		{"internationalized host keeps original token", "GET http://münchen.de/karte", blacklist.Request{Key: "GET", URL: "http://münchen.de/karte"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &line.Parser{}
			got, err := p.Parse(tt.line)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_ParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{"missing url", "1"},
		{"empty", ""},
		{"too many tokens", "POST www.example.com extra"},
		{"no dot", "GET localhost"},
		{"one letter tld", "GET example.c"},
		{"unsupported scheme", "GET ftp://example.com"},
		{"leading dot", "GET .com"},
		{"invalid characters", "GET exa_mple.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &line.Parser{}
			_, err := p.Parse(tt.line)

			assert.Equal(t, blacklist.EINVALID, blacklist.ErrorCode(err))
		})
	}
}
