package line

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/blacklist"
	"github.com/google/uuid"
)

// DefaultMaxLineSize bounds a single request line.
const DefaultMaxLineSize = 64 * 1024

// Session serves request lines from one connection.
type Session struct {
	Router *Router

	// Limiter throttles requests per peer. Nil disables throttling.
	Limiter blacklist.Limiter

	// Logger defaults to discarding.
	Logger *slog.Logger

	// MaxLineSize defaults to DefaultMaxLineSize.
	MaxLineSize int
}

// Serve reads lines from conn until EOF and writes one response per line.
// A line longer than MaxLineSize is answered with 400 and ends the session.
func (s *Session) Serve(ctx context.Context, conn io.ReadWriter, peer string) (err error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("session", uuid.NewString(), "peer", peer)

	var requests int
	logger.Info("session opened")
	defer func(begin time.Time) {
		logger.Info("session closed",
			"requests", requests,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	maxLine := s.MaxLineSize
	if maxLine <= 0 {
		maxLine = DefaultMaxLineSize
	}
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, min(4096, maxLine)), maxLine)

	for scanner.Scan() {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx, peer); err != nil {
				return err
			}
		}
		line := scanner.Text()
		resp := s.Router.Handle(ctx, line)
		requests++
		logger.Debug("request", "line", line, "status", int(resp.Status))
		if _, err := io.WriteString(conn, resp.Format()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			io.WriteString(conn, blacklist.Response{Status: blacklist.StatusBadRequest}.Format())
		}
		return err
	}
	return nil
}
