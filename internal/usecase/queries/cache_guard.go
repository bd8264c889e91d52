package queries

import (
	"context"
	"sync"

	"hotel-frontdesk/internal/domain/booking"
)

type pendingFill struct {
	readers int
	gen     uint64
}

// GuardedCache wraps a BookingCache so that a read which overlapped an
// invalidation of the same reservation never writes its result back.
// Commands and the change feed must invalidate through the same instance
// the queries fill through.
type GuardedCache struct {
	inner BookingCache

	mu      sync.Mutex
	pending map[string]*pendingFill
	flushes uint64
}

func NewGuardedCache(inner BookingCache) *GuardedCache {
	if g, ok := inner.(*GuardedCache); ok {
		return g
	}
	return &GuardedCache{inner: inner, pending: map[string]*pendingFill{}}
}

func (c *GuardedCache) Get(ctx context.Context, id string) (*booking.Booking, bool) {
	return c.inner.Get(ctx, id)
}

// Set writes unconditionally. Reads go through BeginFill instead.
func (c *GuardedCache) Set(ctx context.Context, b *booking.Booking) {
	c.inner.Set(ctx, b)
}

func (c *GuardedCache) Invalidate(ctx context.Context, id string) {
	c.mu.Lock()
	if p := c.pending[id]; p != nil {
		p.gen++
	}
	c.mu.Unlock()
	c.inner.Invalidate(ctx, id)
}

func (c *GuardedCache) Flush(ctx context.Context) {
	c.mu.Lock()
	c.flushes++
	c.mu.Unlock()
	c.inner.Flush(ctx)
}

// BeginFill registers a repository read of id. The returned func must be
// called once: with the loaded booking to cache it, or with nil to give up.
// The booking is dropped when id was invalidated or the cache flushed after
// BeginFill.
func (c *GuardedCache) BeginFill(id string) func(ctx context.Context, b *booking.Booking) {
	c.mu.Lock()
	p := c.pending[id]
	if p == nil {
		p = &pendingFill{}
		c.pending[id] = p
	}
	p.readers++
	gen, flushes := p.gen, c.flushes
	c.mu.Unlock()

	changed := func() bool {
		return p.gen != gen || c.flushes != flushes
	}

	return func(ctx context.Context, b *booking.Booking) {
		c.mu.Lock()
		skip := b == nil || changed()
		c.mu.Unlock()

		if !skip {
			c.inner.Set(ctx, b)
		}

		c.mu.Lock()
		// an invalidation that raced the write above may have run first
		undo := !skip && changed()
		p.readers--
		if p.readers == 0 {
			delete(c.pending, id)
		}
		c.mu.Unlock()

		if undo {
			c.inner.Invalidate(ctx, id)
		}
	}
}
