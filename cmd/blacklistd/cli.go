package main

import (
	"context"
	"io"
	"log/slog"
	"net"

	"github.com/fwojciec/blacklist"
	"github.com/fwojciec/blacklist/line"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Ready is called with the listening address once the server accepts
	// connections. Optional.
	Ready func(addr net.Addr)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"BLACKLIST_LOG_LEVEL" help:"Log level (${enum})"`

	Serve    ServeCmd    `cmd:"" help:"Run the blacklist server"`
	Client   ClientCmd   `cmd:"" help:"Send request lines from stdin to a server"`
	Estimate EstimateCmd `cmd:"" help:"Recommend a filter size and hasher count"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Port    int   `arg:"" help:"TCP port to listen on (1024-65535)"`
	Size    uint  `arg:"" help:"Filter size in bits"`
	Repeats []int `arg:"" help:"Hash rounds for each hasher"`

	Host        string  `default:"0.0.0.0" env:"BLACKLIST_HOST" help:"Address to bind"`
	DataDir     string  `name:"data-dir" default:"data" env:"BLACKLIST_DATA_DIR" help:"Directory for file and sqlite storage"`
	Backend     string  `default:"file" enum:"file,sqlite,redis" env:"BLACKLIST_BACKEND" help:"Storage backend (${enum})"`
	RedisAddr   string  `name:"redis-addr" default:"localhost:6379" env:"BLACKLIST_REDIS_ADDR" help:"Redis address for the redis backend"`
	Hash        string  `default:"xxhash" enum:"xxhash,xxh3,murmur3" env:"BLACKLIST_HASH" help:"Base hash function (${enum})"`
	Rate        float64 `default:"0" env:"BLACKLIST_RATE" help:"Requests per second per client host, 0 for unlimited"`
	AddKey      string  `name:"add-key" default:"POST" env:"BLACKLIST_ADD_KEY" help:"Command key for add"`
	CheckKey    string  `name:"check-key" default:"GET" env:"BLACKLIST_CHECK_KEY" help:"Command key for check"`
	DeleteKey   string  `name:"delete-key" default:"DELETE" env:"BLACKLIST_DELETE_KEY" help:"Command key for delete"`
	NumericKeys bool    `name:"numeric-keys" env:"BLACKLIST_NUMERIC_KEYS" help:"Use 1, 2 and 3 as command keys"`
	MaxLineSize int     `name:"max-line-size" default:"65536" env:"BLACKLIST_MAX_LINE_SIZE" help:"Longest accepted request line in bytes"`
}

// Validate checks the server configuration before anything is opened.
func (c *ServeCmd) Validate() error {
	if c.Port < 1024 || c.Port > 65535 {
		return blacklist.Errorf(blacklist.ECONFIG, "port %d out of range 1024-65535", c.Port)
	}
	if c.Size == 0 {
		return blacklist.Errorf(blacklist.ECONFIG, "filter size must be positive")
	}
	if len(c.Repeats) == 0 {
		return blacklist.Errorf(blacklist.ECONFIG, "at least one hash repeat count is required")
	}
	for _, r := range c.Repeats {
		if r <= 0 {
			return blacklist.Errorf(blacklist.ECONFIG, "hash repeat count %d must be positive", r)
		}
	}
	if c.Rate < 0 {
		return blacklist.Errorf(blacklist.ECONFIG, "rate must not be negative")
	}
	return c.Keys().Validate()
}

// Keys returns the configured command keys.
func (c *ServeCmd) Keys() line.Keys {
	if c.NumericKeys {
		return line.NumericKeys
	}
	return line.Keys{Add: c.AddKey, Check: c.CheckKey, Delete: c.DeleteKey}
}

// ClientCmd is the "client" subcommand.
type ClientCmd struct {
	Host string `arg:"" help:"Server host"`
	Port int    `arg:"" help:"Server port"`
}

// EstimateCmd is the "estimate" subcommand.
type EstimateCmd struct {
	N  uint    `arg:"" help:"Expected number of URLs"`
	FP float64 `arg:"" help:"Target false positive rate, between 0 and 1"`
}

// Validate checks the estimate inputs.
func (c *EstimateCmd) Validate() error {
	if c.N == 0 {
		return blacklist.Errorf(blacklist.EINVALID, "number of URLs must be positive")
	}
	if c.FP <= 0 || c.FP >= 1 {
		return blacklist.Errorf(blacklist.EINVALID, "false positive rate must be between 0 and 1")
	}
	return nil
}
