package line

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fwojciec/blacklist"
)

// Keys names the protocol tokens bound to each command.
type Keys struct {
	Add    string
	Check  string
	Delete string
}

// DefaultKeys binds the commands to protocol verbs.
var DefaultKeys = Keys{Add: "POST", Check: "GET", Delete: "DELETE"}

// NumericKeys binds the commands to small integers.
var NumericKeys = Keys{Add: "1", Check: "2", Delete: "3"}

// Validate returns ECONFIG if a key is empty, contains whitespace, or is
// shared by two commands.
func (k Keys) Validate() error {
	seen := make(map[string]bool, 3)
	for _, key := range []string{k.Add, k.Check, k.Delete} {
		if key == "" {
			return blacklist.Errorf(blacklist.ECONFIG, "command key must not be empty")
		}
		if strings.ContainsFunc(key, isSpace) {
			return blacklist.Errorf(blacklist.ECONFIG, "command key %q contains whitespace", key)
		}
		if seen[key] {
			return blacklist.Errorf(blacklist.ECONFIG, "command key %q is used twice", key)
		}
		seen[key] = true
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

// Commands implements the blacklist commands over the two tiers.
// The filter answers "definitely absent" cheaply; the URL set is the
// authority for everything else.
type Commands struct {
	Filter blacklist.Filter
	URLs   blacklist.URLSet

	// Logger receives storage failures. Defaults to discarding.
	Logger *slog.Logger
}

// Table binds the commands to keys.
func (c *Commands) Table(keys Keys) map[string]blacklist.Handler {
	return map[string]blacklist.Handler{
		keys.Add:    blacklist.HandlerFunc(c.Add),
		keys.Check:  blacklist.HandlerFunc(c.Check),
		keys.Delete: blacklist.HandlerFunc(c.Delete),
	}
}

// Add inserts url into both tiers.
func (c *Commands) Add(ctx context.Context, url string) blacklist.Response {
	filterErr := c.Filter.Add(ctx, url)
	setErr := c.URLs.Add(ctx, url)
	if err := errors.Join(filterErr, setErr); err != nil {
		c.logger().Error("add failed", "url", url, "err", err)
		return blacklist.Response{Status: blacklist.StatusInternalServerError}
	}
	return blacklist.Response{Status: blacklist.StatusCreated}
}

// Check reports "false" when the filter rules url out, otherwise "true"
// followed by the exact set's answer.
func (c *Commands) Check(_ context.Context, url string) blacklist.Response {
	if !c.Filter.Contains(url) {
		return blacklist.Response{Status: blacklist.StatusOK, Body: "false"}
	}
	return blacklist.Response{
		Status: blacklist.StatusOK,
		Body:   "true " + strconv.FormatBool(c.URLs.Check(url)),
	}
}

// Delete removes url from the exact set. The filter keeps its bits.
func (c *Commands) Delete(ctx context.Context, url string) blacklist.Response {
	removed, err := c.URLs.Remove(ctx, url)
	if err != nil {
		c.logger().Error("delete failed", "url", url, "err", err)
		return blacklist.Response{Status: blacklist.StatusInternalServerError}
	}
	if !removed {
		return blacklist.Response{Status: blacklist.StatusNotFound}
	}
	return blacklist.Response{Status: blacklist.StatusNoContent}
}

func (c *Commands) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
