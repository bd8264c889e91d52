//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/infra/cache"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestGuardedCacheFill(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().BuildInState(booking.StateActive)
	id := b.ReservationID()

	newGuard := func() (*queries.GuardedCache, *cache.MemoryBookingCache) {
		inner := cache.NewMemoryBookingCache(time.Minute, nil)
		return queries.NewGuardedCache(inner), inner
	}

	t.Run("quiet read is cached", func(t *testing.T) {
		g, inner := newGuard()
		g.BeginFill(id)(ctx, b)
		assert.Equal(t, 1, inner.Len())
	})

	t.Run("invalidated during the read", func(t *testing.T) {
		g, inner := newGuard()
		fill := g.BeginFill(id)
		g.Invalidate(ctx, id)
		fill(ctx, b)
		assert.Equal(t, 0, inner.Len())
	})

	t.Run("flushed during the read", func(t *testing.T) {
		g, inner := newGuard()
		fill := g.BeginFill(id)
		g.Flush(ctx)
		fill(ctx, b)
		assert.Equal(t, 0, inner.Len())
	})

	t.Run("other ids do not interfere", func(t *testing.T) {
		g, inner := newGuard()
		fill := g.BeginFill(id)
		g.Invalidate(ctx, "T-99999999")
		fill(ctx, b)
		assert.Equal(t, 1, inner.Len())
	})

	t.Run("read that began after the invalidation still fills", func(t *testing.T) {
		g, inner := newGuard()
		early := g.BeginFill(id)
		g.Invalidate(ctx, id)
		late := g.BeginFill(id)
		early(ctx, b)
		assert.Equal(t, 0, inner.Len())
		late(ctx, b)
		assert.Equal(t, 1, inner.Len())
	})

	t.Run("failed read caches nothing", func(t *testing.T) {
		g, inner := newGuard()
		g.BeginFill(id)(ctx, nil)
		assert.Equal(t, 0, inner.Len())
	})

	t.Run("wrapping twice returns the same guard", func(t *testing.T) {
		g, _ := newGuard()
		assert.Same(t, g, queries.NewGuardedCache(g))
	})
}
