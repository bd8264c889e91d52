package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var ErrInvalidView = errs.New("unknown booking view")

// BookingCache is a read-through cache keyed by reservation id. It is never
// authoritative: a miss or an error always falls back to the repository.
type BookingCache interface {
	Get(ctx context.Context, id string) (*booking.Booking, bool)
	Set(ctx context.Context, b *booking.Booking)
	Invalidate(ctx context.Context, id string)
	Flush(ctx context.Context)
}

// BindCacheInvalidation drops a cached booking on every change that names it
// and empties the cache when the feed asks for a resync.
func BindCacheInvalidation(feed shared.ChangeFeed, cache BookingCache) (unsubscribe func()) {
	return feed.Subscribe(func(ev shared.ChangeEvent) {
		switch {
		case ev.Op == shared.OpResync:
			cache.Flush(context.Background())
		case ev.ReservationID != "":
			cache.Invalidate(context.Background(), ev.ReservationID)
		}
	})
}

type ListParams struct {
	View     booking.View
	Search   string
	Page     int
	PageSize int
}

type AvailabilityParams struct {
	CheckIn              time.Time
	CheckOut             time.Time
	ExcludeReservationID string
}

// BookingSummaryView is the printable booking with the hotel header.
type BookingSummaryView struct {
	Summary booking.Summary
	Hotel   *SettingsView
}

type BookingQueries interface {
	Get(ctx context.Context, id string) (*BookingView, error)
	List(ctx context.Context, p ListParams) (*BookingPage, error)
	Summary(ctx context.Context, id string) (*BookingSummaryView, error)
	AvailableRooms(ctx context.Context, p AvailabilityParams) ([]*RoomView, error)
	Quote(stays []booking.RoomStay, advance decimal.Decimal) booking.Quote
}

type PageLimits struct {
	Default int
	Max     int
}

type bookingQueriesImpl struct {
	uow    shared.UnitOfWork
	cache  *GuardedCache
	limits PageLimits
}

// NewBookingQueries fills cache on reads. Pass the same *GuardedCache that
// receives invalidations, otherwise a plain cache is wrapped here.
func NewBookingQueries(uow shared.UnitOfWork, cache BookingCache, limits PageLimits) BookingQueries {
	q := &bookingQueriesImpl{uow: uow, limits: limits}
	if cache != nil {
		q.cache = NewGuardedCache(cache)
	}
	return q
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id string) (*BookingView, error) {
	b, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) find(ctx context.Context, id string) (*booking.Booking, error) {
	if !booking.IsReservationID(id) {
		return nil, errs.ErrBookingNotFound
	}
	if q.cache != nil {
		if b, ok := q.cache.Get(ctx, id); ok {
			return b, nil
		}
	}

	fill := func(context.Context, *booking.Booking) {}
	if q.cache != nil {
		fill = q.cache.BeginFill(id)
	}

	var b *booking.Booking
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = tx.Bookings().FindByID(ctx, id)
		return err
	})
	if err != nil {
		fill(ctx, nil)
		return nil, notFoundAs(err, errs.ErrBookingNotFound)
	}

	fill(ctx, b)
	return b, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, p ListParams) (*BookingPage, error) {
	if p.View == "" {
		p.View = booking.ViewAll
	}
	if !p.View.IsValid() {
		return nil, ErrInvalidView
	}
	page, size := normalizePage(p.Page, p.PageSize, q.limits.Default, q.limits.Max)

	f := booking.FilterForView(p.View)
	f.Search = p.Search

	var (
		items []*booking.Booking
		total int
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if total, err = tx.Bookings().Count(ctx, f); err != nil {
			return err
		}
		paged := f
		paged.Limit = size
		paged.Offset = offsetOf(page, size)
		items, err = tx.Bookings().FindByFilter(ctx, paged)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	out := &BookingPage{Items: make([]*BookingView, 0, len(items)), Total: total, Page: page, PageSize: size}
	for _, b := range items {
		out.Items = append(out.Items, NewBookingView(b))
	}
	return out, nil
}

func (q *bookingQueriesImpl) Summary(ctx context.Context, id string) (*BookingSummaryView, error) {
	if !booking.IsReservationID(id) {
		return nil, errs.ErrBookingNotFound
	}

	var out *BookingSummaryView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return err
		}
		rooms, err := tx.Rooms().List(ctx)
		if err != nil {
			return err
		}
		items, err := tx.Minibar().List(ctx)
		if err != nil {
			return err
		}
		hotel, err := tx.Settings().Get(ctx)
		if err != nil {
			return err
		}
		out = &BookingSummaryView{
			Summary: booking.Summarize(b, rooms, items),
			Hotel:   NewSettingsView(hotel),
		}
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, errs.ErrBookingNotFound)
	}
	return out, nil
}

func (q *bookingQueriesImpl) AvailableRooms(ctx context.Context, p AvailabilityParams) ([]*RoomView, error) {
	checkIn, checkOut := booking.Date(p.CheckIn), booking.Date(p.CheckOut)

	var free []*room.Room
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		all, err := tx.Rooms().List(ctx)
		if err != nil {
			return err
		}
		var occupied []room.Occupancy
		if !checkIn.IsZero() && !checkOut.IsZero() {
			if occupied, err = tx.Bookings().FindOccupancies(ctx, checkIn, checkOut); err != nil {
				return err
			}
		}
		free = room.FindAvailableRooms(all, occupied, checkIn, checkOut, p.ExcludeReservationID)
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	out := make([]*RoomView, 0, len(free))
	for _, r := range free {
		out = append(out, NewRoomView(r))
	}
	return out, nil
}

func (q *bookingQueriesImpl) Quote(stays []booking.RoomStay, advance decimal.Decimal) booking.Quote {
	return booking.NewQuote(stays, advance, decimal.Zero)
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
