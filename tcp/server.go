// Package tcp serves the line protocol over TCP.
package tcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/fwojciec/blacklist/line"
	"golang.org/x/sync/errgroup"
)

// Server accepts connections and runs one line.Session per connection.
type Server struct {
	addr    string
	session *line.Session
	logger  *slog.Logger

	ln     net.Listener
	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

// NewServer creates a Server that will listen on addr.
func NewServer(addr string, session *line.Session, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		addr:    addr,
		session: session,
		logger:  logger,
		conns:   make(map[net.Conn]struct{}),
	}
}

// Open starts listening.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.ln = ln
	return nil
}

// Addr returns the listening address. Only valid after Open.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve accepts connections until ctx is canceled, then closes the listener
// and every open connection and waits for their sessions to return.
func (s *Server) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		s.shutdown()
		return nil
	})

	g.Go(func() error {
		s.logger.Info("listening", "addr", s.ln.Addr().String())
		var delay time.Duration
		for {
			conn, err := s.ln.Accept()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				if errors.Is(err, net.ErrClosed) {
					return fmt.Errorf("accept: %w", err)
				}
				delay = nextAcceptDelay(delay)
				s.logger.Warn("accept failed, retrying", "delay", delay, "err", err)
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(delay):
				}
				continue
			}
			delay = 0
			if !s.track(conn) {
				conn.Close()
				return nil
			}
			g.Go(func() error {
				defer s.untrack(conn)
				defer conn.Close()
				if err := s.session.Serve(ctx, conn, peerHost(conn.RemoteAddr())); err != nil && ctx.Err() == nil {
					s.logger.Warn("session error", "peer", conn.RemoteAddr().String(), "err", err)
				}
				return nil
			})
		}
	})

	return g.Wait()
}

// Accept retry delays, doubling from min to max.
const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

func nextAcceptDelay(d time.Duration) time.Duration {
	if d == 0 {
		return minAcceptDelay
	}
	return min(2*d, maxAcceptDelay)
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

func (s *Server) shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.ln.Close()
	for conn := range s.conns {
		conn.Close()
	}
}

// peerHost returns the host part of addr, used as the rate limiting key.
func peerHost(addr net.Addr) string {
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
