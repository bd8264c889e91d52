package cache

import (
	"context"

	"hotel-frontdesk/internal/domain/booking"
)

// Noop caches nothing. Selected with CACHE_DRIVER=none.
type Noop struct{}

func (Noop) Get(context.Context, string) (*booking.Booking, bool) { return nil, false }
func (Noop) Set(context.Context, *booking.Booking)                {}
func (Noop) Invalidate(context.Context, string)                   {}
func (Noop) Flush(context.Context)                                {}
