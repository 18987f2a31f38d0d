package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/fwojciec/blacklist"
	"github.com/fwojciec/blacklist/bloom"
	"github.com/fwojciec/blacklist/hasher"
	"github.com/fwojciec/blacklist/line"
	"github.com/fwojciec/blacklist/tcp"
	"github.com/fwojciec/blacklist/urlset"
)

// Run executes the serve command. It blocks until the context is canceled,
// then flushes both tiers to storage.
func (c *ServeCmd) Run(deps *Dependencies) (err error) {
	ctx := deps.Ctx
	logger := deps.Logger

	hashers, err := hasher.NewSet(blacklist.HashKind(c.Hash), c.Repeats)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blacklist.ErrorMessage(err))
		return err
	}

	store, err := openStorage(ctx, c, logger)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blacklist.ErrorMessage(err))
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	filter, err := bloom.NewFilter(ctx, c.Size, hashers, store.Bits)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blacklist.ErrorMessage(err))
		return err
	}
	urls := urlset.New(ctx, store.URLs)
	logger.Info("state loaded",
		"backend", c.Backend,
		"size", filter.Size(),
		"bits_set", filter.Count(),
		"filter_restored", filter.Loaded(),
		"urls", urls.Len(),
	)

	// Flush on every exit path, including shutdown by signal.
	defer func() {
		flushCtx := context.WithoutCancel(ctx)
		if ferr := errors.Join(filter.Close(flushCtx), urls.Close(flushCtx)); ferr != nil {
			logger.Error("final flush failed", "err", ferr)
			err = errors.Join(err, ferr)
			return
		}
		logger.Info("state flushed", "urls", urls.Len(), "bits_set", filter.Count())
	}()

	commands := &line.Commands{Filter: filter, URLs: urls, Logger: logger}
	session := &line.Session{
		Router:      line.NewRouter(commands.Table(c.Keys()), &line.Parser{}),
		Logger:      logger,
		MaxLineSize: c.MaxLineSize,
	}
	if c.Rate > 0 {
		session.Limiter = tcp.NewHostLimiter(c.Rate, tcp.DefaultIdleTimeout)
	}

	srv := tcp.NewServer(net.JoinHostPort(c.Host, strconv.Itoa(c.Port)), session, logger)
	if err := srv.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", srv.Addr())
	if deps.Ready != nil {
		deps.Ready(srv.Addr())
	}

	return srv.Serve(ctx)
}
