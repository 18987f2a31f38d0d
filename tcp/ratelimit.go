package tcp

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/blacklist"
	"golang.org/x/time/rate"
)

var _ blacklist.Limiter = (*HostLimiter)(nil)

// DefaultIdleTimeout is how long a host's limiter survives without requests.
const DefaultIdleTimeout = time.Minute

// HostLimiter provides per-host rate limiting using token buckets.
// Each client host gets its own bucket. Buckets unused for the idle timeout
// are dropped, so the map tracks recently active clients only.
type HostLimiter struct {
	mu        sync.Mutex
	hosts     map[string]*hostBucket
	rps       float64
	idle      time.Duration
	lastSweep time.Time
}

type hostBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewHostLimiter creates a new HostLimiter allowing rps requests per second
// per host with a burst of 1. A non-positive idle uses DefaultIdleTimeout.
// The idle timeout is never shorter than one token interval, so dropping a
// bucket never grants a client more than a full bucket would.
func NewHostLimiter(rps float64, idle time.Duration) *HostLimiter {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	if rps > 0 {
		idle = max(idle, time.Duration(float64(time.Second)/rps))
	}
	return &HostLimiter{
		hosts:     make(map[string]*hostBucket),
		rps:       rps,
		idle:      idle,
		lastSweep: time.Now(),
	}
}

// Wait blocks until the rate limit allows a request from host.
// Returns an error if the context is canceled before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	now := time.Now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	b, ok := l.hosts[host]
	if !ok {
		b = &hostBucket{limiter: rate.NewLimiter(rate.Limit(l.rps), 1)}
		l.hosts[host] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	return b.limiter.Wait(ctx)
}

// sweep drops buckets idle for longer than the idle timeout.
func (l *HostLimiter) sweep(now time.Time) {
	for host, b := range l.hosts {
		if now.Sub(b.lastSeen) >= l.idle {
			delete(l.hosts, host)
		}
	}
	l.lastSweep = now
}
