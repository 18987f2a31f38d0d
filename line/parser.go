// Package line implements the line-oriented request protocol: parsing,
// command dispatch and the per-connection session loop.
package line

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/blacklist"
	"golang.org/x/net/idna"
)

var urlPattern = regexp.MustCompile(`^((https?://)?(www\.)?([a-zA-Z0-9-]+\.)+[a-zA-Z0-9]{2,})(/\S*)?$`)

// Parser splits a request line into a command key and a URL.
type Parser struct{}

// Parse returns the request in line. The line must hold exactly two
// whitespace-separated tokens and the second must be a well-formed URL.
// Returns EINVALID otherwise.
func (p *Parser) Parse(line string) (blacklist.Request, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return blacklist.Request{}, blacklist.Errorf(blacklist.EINVALID, "expected 2 tokens, got %d", len(fields))
	}
	key, url := fields[0], fields[1]
	if !ValidURL(url) {
		return blacklist.Request{}, blacklist.Errorf(blacklist.EINVALID, "malformed url %q", url)
	}
	return blacklist.Request{Key: key, URL: url}, nil
}

// ValidURL reports whether url is an optionally schemed host with an
// optional path. Internationalized host names are checked in their
// ASCII form.
func ValidURL(url string) bool {
	if urlPattern.MatchString(url) {
		return true
	}
	ascii, ok := toASCII(url)
	if !ok {
		return false
	}
	return urlPattern.MatchString(ascii)
}

// toASCII converts the host part of url to punycode. It reports false when
// url has no non-ASCII characters in its host or the host is not a valid
// IDN.
func toASCII(url string) (string, bool) {
	prefix := ""
	rest := url
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(rest, scheme) {
			prefix, rest = scheme, rest[len(scheme):]
			break
		}
	}
	host, path := rest, ""
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		host, path = rest[:i], rest[i:]
	}
	if isASCII(host) || !utf8.ValidString(host) {
		return "", false
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", false
	}
	return prefix + ascii + path, true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
