package mock

import (
	"context"

	"github.com/fwojciec/blacklist"
)

var _ blacklist.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of blacklist.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, peer string) error
}

func (l *Limiter) Wait(ctx context.Context, peer string) error {
	return l.WaitFn(ctx, peer)
}
