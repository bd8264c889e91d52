package cache

import (
	"context"
	"sync"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/infra/repository/converter"
	"hotel-frontdesk/internal/pkg/clock"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryBookingCache keeps encoded bookings in process memory so callers
// never share a mutable booking.
type MemoryBookingCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryBookingCache(ttl time.Duration, clk clock.Clock) *MemoryBookingCache {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &MemoryBookingCache{entries: map[string]memoryEntry{}, ttl: ttl, clock: clk}
}

func (c *MemoryBookingCache) Get(_ context.Context, id string) (*booking.Booking, bool) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && !c.clock.Now().Before(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, id)
		c.mu.Unlock()
		return nil, false
	}
	b, err := converter.UnmarshalBooking(e.data)
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *MemoryBookingCache) Set(_ context.Context, b *booking.Booking) {
	data, err := converter.MarshalBooking(b)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.entries[b.ReservationID()] = memoryEntry{data: data, expiresAt: c.clock.Now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *MemoryBookingCache) Invalidate(_ context.Context, id string) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

func (c *MemoryBookingCache) Flush(_ context.Context) {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
}

func (c *MemoryBookingCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
