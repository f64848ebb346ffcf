package fetch

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces a fixed courtesy delay before every request it guards.
// The limiter starts drained so the first request waits the full
// interval too.
type Pacer struct {
	lim *rate.Limiter
}

// NewPacer returns a pacer for one request per interval. A zero or
// negative interval means no pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{}
	}
	lim := rate.NewLimiter(rate.Every(interval), 1)
	lim.AllowN(time.Now(), 1)
	return &Pacer{lim: lim}
}

// Wait blocks until the next request may go out, or the context ends.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.lim == nil {
		return nil
	}
	return p.lim.Wait(ctx)
}
