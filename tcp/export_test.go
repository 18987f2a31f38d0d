package tcp

import "net"

// SetListener replaces the listener opened by Open.
func (s *Server) SetListener(ln net.Listener) {
	s.ln = ln
}

// HostCount returns the number of hosts with a live limiter.
func (l *HostLimiter) HostCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hosts)
}

// Listener returns the current listener.
func (s *Server) Listener() net.Listener {
	return s.ln
}
