package line

import (
	"context"
	"maps"
	"strings"
	"sync"

	"github.com/fwojciec/blacklist"
)

// Router dispatches request lines to command handlers.
// The command table is fixed at construction. Handlers run one at a time.
type Router struct {
	mu       sync.Mutex
	parser   *Parser
	commands map[string]blacklist.Handler
}

// NewRouter creates a Router over a copy of table.
func NewRouter(table map[string]blacklist.Handler, parser *Parser) *Router {
	if parser == nil {
		parser = &Parser{}
	}
	return &Router{
		parser:   parser,
		commands: maps.Clone(table),
	}
}

// Handle parses raw and runs the matching command.
// Blank or malformed lines yield 400 and unknown keys yield 404.
func (r *Router) Handle(ctx context.Context, raw string) blacklist.Response {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return blacklist.Response{Status: blacklist.StatusBadRequest}
	}
	req, err := r.parser.Parse(raw)
	if err != nil {
		return blacklist.Response{Status: blacklist.ErrorStatus(err)}
	}
	h, ok := r.commands[req.Key]
	if !ok {
		return blacklist.Response{Status: blacklist.StatusNotFound}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return h.Handle(ctx, req.URL)
}

// Keys returns the registered command keys.
func (r *Router) Keys() []string {
	keys := make([]string, 0, len(r.commands))
	for k := range r.commands {
		keys = append(keys, k)
	}
	return keys
}
