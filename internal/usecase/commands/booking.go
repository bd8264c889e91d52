package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"
)

var ErrIDExhausted = errs.New("no free reservation id after retries")

type BookingCommands interface {
	Create(ctx context.Context, d booking.Draft) (*queries.BookingView, error)
	Edit(ctx context.Context, id string, e booking.Edit) (*queries.BookingView, error)
	CheckIn(ctx context.Context, id string, received booking.Payment, managerAck bool) (*queries.BookingView, error)
	UncheckIn(ctx context.Context, id string) (*queries.BookingView, error)
	Checkout(ctx context.Context, id string, consumption map[string]int) (*CheckoutResult, error)
	Cancel(ctx context.Context, id string) (*queries.BookingView, error)
	Restore(ctx context.Context, id string) (*queries.BookingView, error)
}

type BookingOptions struct {
	// IDSource feeds the reservation id generator. Nil means crypto/rand.
	IDSource      io.Reader
	IDMaxAttempts int
	Cache         CacheInvalidator
}

type bookingUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	ids         io.Reader
	maxAttempts int
	cache       CacheInvalidator
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, opts BookingOptions) BookingCommands {
	if opts.IDMaxAttempts < 1 {
		opts.IDMaxAttempts = 1
	}
	if opts.Cache == nil {
		opts.Cache = noopInvalidator{}
	}
	return &bookingUseCaseImpl{
		uow:         uow,
		clock:       clk,
		ids:         opts.IDSource,
		maxAttempts: opts.IDMaxAttempts,
		cache:       opts.Cache,
	}
}

// Create stores a new booking under a fresh reservation id, drawing another
// id when the store already holds the one drawn.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, d booking.Draft) (*queries.BookingView, error) {
	if err := booking.ValidateDraft(d); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		id, err := booking.NewReservationID(uc.ids)
		if err != nil {
			return nil, err
		}
		b, err := booking.New(id, d, uc.clock.Now())
		if err != nil {
			return nil, err
		}

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Bookings().Insert(ctx, b)
			return err
		})
		switch {
		case err == nil:
			slog.Info("booking created",
				"reservation_id", id,
				"rooms", b.RoomIDs(),
				"total_amount", b.TotalAmount().StringFixed(2),
				"checked_in", b.CheckInStatus(),
			)
			return queries.NewBookingView(b), nil
		case infra.IsKind(err, infra.KindDuplicateKey):
			slog.Warn("reservation id collision, retrying", "reservation_id", id, "attempt", attempt)
			continue
		default:
			return nil, writeErr(err)
		}
	}
	return nil, ErrIDExhausted
}

func (uc *bookingUseCaseImpl) Edit(ctx context.Context, id string, e booking.Edit) (*queries.BookingView, error) {
	return uc.transition(ctx, id, booking.ActionEdit, func(b *booking.Booking, now time.Time) (booking.Patch, error) {
		return b.Edit(e, now)
	})
}

func (uc *bookingUseCaseImpl) CheckIn(ctx context.Context, id string, received booking.Payment, managerAck bool) (*queries.BookingView, error) {
	return uc.transition(ctx, id, booking.ActionCheckIn, func(b *booking.Booking, now time.Time) (booking.Patch, error) {
		return b.CheckIn(received, managerAck, now)
	})
}

func (uc *bookingUseCaseImpl) UncheckIn(ctx context.Context, id string) (*queries.BookingView, error) {
	return uc.transition(ctx, id, booking.ActionUncheckIn, func(b *booking.Booking, now time.Time) (booking.Patch, error) {
		return b.UncheckIn(now)
	})
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, id string) (*queries.BookingView, error) {
	return uc.transition(ctx, id, booking.ActionCancel, func(b *booking.Booking, now time.Time) (booking.Patch, error) {
		return b.Cancel(now)
	})
}

func (uc *bookingUseCaseImpl) Restore(ctx context.Context, id string) (*queries.BookingView, error) {
	return uc.transition(ctx, id, booking.ActionRestore, func(b *booking.Booking, now time.Time) (booking.Patch, error) {
		return b.Restore(now)
	})
}

type stepFunc func(b *booking.Booking, now time.Time) (booking.Patch, error)

// transition loads the booking under lock, applies one lifecycle step and
// returns the record as stored afterwards.
func (uc *bookingUseCaseImpl) transition(ctx context.Context, id string, action booking.Action, step stepFunc) (*queries.BookingView, error) {
	if !booking.IsReservationID(id) {
		return nil, errs.ErrBookingNotFound
	}

	var (
		after *booking.Booking
		from  booking.State
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		from = b.State()
		patch, err := step(b, uc.clock.Now())
		if err != nil {
			return err
		}
		if !patch.IsEmpty() {
			if err := tx.Bookings().UpdateFields(ctx, id, patch); err != nil {
				return err
			}
		}
		after, err = tx.Bookings().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, writeErr(err)
	}

	uc.cache.Invalidate(ctx, id)
	slog.Info("booking transitioned",
		"reservation_id", id,
		"action", string(action),
		"from", string(from),
		"to", string(after.State()),
	)
	return queries.NewBookingView(after), nil
}

// Checkout closes the stay and takes the consumed minibar items out of stock
// in the same transaction. An item the stock cannot cover does not block the
// checkout: it is recorded as a pending shortfall for Reconcile.
func (uc *bookingUseCaseImpl) Checkout(ctx context.Context, id string, consumption map[string]int) (*CheckoutResult, error) {
	if !booking.IsReservationID(id) {
		return nil, errs.ErrBookingNotFound
	}

	var (
		after    *booking.Booking
		outcomes []StockOutcome
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcomes = nil
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		items, err := tx.Minibar().List(ctx)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		patch, err := b.Checkout(consumption, minibar.NewPriceList(items), now)
		if err != nil {
			return err
		}
		if err := tx.Bookings().UpdateFields(ctx, id, patch); err != nil {
			return err
		}

		outcomes, err = consumeAll(ctx, tx, id, patch.MinibarConsumption, now)
		if err != nil {
			return err
		}
		after, err = tx.Bookings().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, writeErr(err)
	}

	uc.cache.Invalidate(ctx, id)
	shortfalls := 0
	for _, o := range outcomes {
		if o.Shortfall {
			shortfalls++
		}
	}
	slog.Info("booking checked out",
		"reservation_id", id,
		"minibar_total", after.MinibarTotal().StringFixed(2),
		"items", len(outcomes),
		"shortfalls", shortfalls,
	)
	return &CheckoutResult{Booking: queries.NewBookingView(after), Stock: outcomes}, nil
}

// consumeAll decrements every consumed item independently. Insufficient stock
// becomes a shortfall and an unknown item is only reported; any other error
// aborts the whole checkout.
func consumeAll(ctx context.Context, tx shared.Tx, reservationID string, consumed map[string]int, now time.Time) ([]StockOutcome, error) {
	ids := make([]string, 0, len(consumed))
	for id := range consumed {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]StockOutcome, 0, len(ids))
	for _, itemID := range ids {
		qty := consumed[itemID]
		o := StockOutcome{ItemID: itemID, Quantity: qty}

		stock, err := tx.Minibar().AdjustStock(ctx, itemID, -qty)
		var short *minibar.NegativeStockError
		switch {
		case err == nil:
			o.Stock = stock
		case errs.As(err, &short):
			o.Stock = short.Stock
			o.Shortfall = true
			o.Err = err
			if err := tx.Shortfalls().Insert(ctx, minibar.NewShortfall(reservationID, itemID, qty, err, now)); err != nil {
				return nil, err
			}
			slog.Warn("minibar stock short at checkout",
				"reservation_id", reservationID,
				"item_id", itemID,
				"stock", short.Stock,
				"requested", qty,
			)
		case infra.IsKind(err, infra.KindNotFound):
			o.Err = errs.Mark(err, errs.ErrItemNotFound)
			slog.Warn("consumed item not in catalog", "reservation_id", reservationID, "item_id", itemID)
		default:
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// writeErr marks repository errors with the sentinel the handlers map. Domain
// errors pass through unchanged.
func writeErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrRoomConflict)
	case infra.IsKind(err, infra.KindDBFailure), infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}
