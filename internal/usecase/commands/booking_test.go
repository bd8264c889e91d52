//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/infra/memstore"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/shared"
	"hotel-frontdesk/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

// digits feeds the reservation id generator: each byte below 10 becomes one
// digit, so eight equal bytes give ids like T-11111111.
func digits(ds ...byte) *bytes.Reader {
	var buf []byte
	for _, d := range ds {
		buf = append(buf, bytes.Repeat([]byte{d}, 8)...)
	}
	return bytes.NewReader(buf)
}

type recordingCache struct {
	mu  sync.Mutex
	ids []string
}

func (c *recordingCache) Invalidate(_ context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = append(c.ids, id)
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.MockClock
	store *memstore.Store
	cache *recordingCache
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	s.store = memstore.New(nil, s.clock)
	s.cache = &recordingCache{}
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) newCommands(ids *bytes.Reader, attempts int) commands.BookingCommands {
	opts := commands.BookingOptions{IDMaxAttempts: attempts, Cache: s.cache}
	if ids != nil {
		opts.IDSource = ids
	}
	return commands.NewBookingUseCase(s.store, s.clock, opts)
}

func (s *BookingCommandsTestSuite) seedItem(id string, stock int, price string) {
	it, err := minibar.NewItem(id, id, minibar.CategoryMinibar, stock, builder.Dec(price))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Minibar().Insert(ctx, it)
	}))
}

func (s *BookingCommandsTestSuite) stockOf(id string) int {
	var stock int
	s.Require().NoError(s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Minibar().FindByID(ctx, id)
		if err != nil {
			return err
		}
		stock = it.Stock()
		return nil
	}))
	return stock
}

func (s *BookingCommandsTestSuite) TestCreate() {
	s.Run("success: stores an active booking with computed totals", func() {
		uc := s.newCommands(digits(4), 5)
		view, err := uc.Create(s.ctx, builder.NewBookingBuilder().BuildDraft())

		s.Require().NoError(err)
		s.Equal("T-44444444", view.ReservationID)
		s.Equal(booking.StateActive, view.State)
		s.Equal("3900.00", view.TotalAmount.StringFixed(2))
		s.Equal("3400.00", view.TotalDue.StringFixed(2))
		s.True(view.MinibarTotal.IsZero())
	})

	s.Run("success: check-in on create with manager acknowledgement", func() {
		uc := s.newCommands(digits(5), 5)
		view, err := uc.Create(s.ctx, builder.NewBookingBuilder().WithRoom("B202", "2024-08-01", "2024-08-02").WithCheckIn(true).BuildDraft())

		s.Require().NoError(err)
		s.Equal(booking.StateCheckedIn, view.State)
	})

	s.Run("error: validation lists every rejected field", func() {
		draft := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Guest.Name = " "
			b.Stays[0].Adults = 0
		}).WithCheckIn(false).BuildDraft()

		_, err := s.newCommands(nil, 5).Create(s.ctx, draft)

		var verr *booking.ValidationError
		s.Require().True(errs.As(err, &verr))
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		s.ElementsMatch([]string{"guest.name", "roomStays[0].adults", "managerAck"}, fields)
	})
}

func (s *BookingCommandsTestSuite) TestCreateRetriesOnIDCollision() {
	_, err := s.newCommands(digits(1), 1).Create(s.ctx, builder.NewBookingBuilder().WithRoom("A101", "2024-07-01", "2024-07-02").BuildDraft())
	s.Require().NoError(err)

	s.Run("success: draws a fresh id when the first one is taken", func() {
		view, err := s.newCommands(digits(1, 2), 3).Create(s.ctx, builder.NewBookingBuilder().WithRoom("A102", "2024-07-01", "2024-07-02").BuildDraft())
		s.Require().NoError(err)
		s.Equal("T-22222222", view.ReservationID)
	})

	s.Run("error: gives up after the configured attempts", func() {
		_, err := s.newCommands(digits(1, 2), 2).Create(s.ctx, builder.NewBookingBuilder().WithRoom("A103", "2024-07-01", "2024-07-02").BuildDraft())
		s.ErrorIs(err, commands.ErrIDExhausted)
	})
}

func (s *BookingCommandsTestSuite) TestRoomConflict() {
	uc := s.newCommands(digits(1, 2, 3), 1)
	first, err := uc.Create(s.ctx, builder.NewBookingBuilder().WithRoom("A101", "2024-07-10", "2024-07-13").BuildDraft())
	s.Require().NoError(err)

	s.Run("error: overlapping stay in the same room is rejected", func() {
		_, err := uc.Create(s.ctx, builder.NewBookingBuilder().WithRoom("A101", "2024-07-12", "2024-07-14").BuildDraft())
		s.True(errs.Is(err, errs.ErrRoomConflict))
	})

	s.Run("success: back-to-back stay does not overlap", func() {
		_, err := uc.Create(s.ctx, builder.NewBookingBuilder().WithRoom("A101", "2024-07-13", "2024-07-15").BuildDraft())
		s.Require().NoError(err)
	})

	s.Run("success: cancelling frees the room", func() {
		_, err := uc.Cancel(s.ctx, first.ReservationID)
		s.Require().NoError(err)

		other := s.newCommands(digits(4), 1)
		_, err = other.Create(s.ctx, builder.NewBookingBuilder().WithRoom("A101", "2024-07-11", "2024-07-12").BuildDraft())
		s.Require().NoError(err)
	})

	s.Run("error: restoring into a taken room is rejected and leaves it cancelled", func() {
		_, err := uc.Restore(s.ctx, first.ReservationID)
		s.True(errs.Is(err, errs.ErrRoomConflict))

		var b *booking.Booking
		s.Require().NoError(s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			b, err = tx.Bookings().FindByID(ctx, first.ReservationID)
			return err
		}))
		s.Equal(booking.StateCancelled, b.State())
	})
}

func (s *BookingCommandsTestSuite) TestLifecycle() {
	uc := s.newCommands(digits(7), 1)
	created, err := uc.Create(s.ctx, builder.NewBookingBuilder().BuildDraft())
	s.Require().NoError(err)
	id := created.ReservationID

	s.Run("error: check-in needs manager acknowledgement", func() {
		_, err := uc.CheckIn(s.ctx, id, booking.NewPayment("cash", builder.Dec("1000")), false)
		s.ErrorIs(err, booking.ErrValidation)
	})

	s.Run("error: checkout before check-in is an illegal transition", func() {
		_, err := uc.Checkout(s.ctx, id, nil)
		var terr *booking.TransitionError
		s.Require().True(errs.As(err, &terr))
		s.Equal(booking.StateActive, terr.From)
		s.Equal(booking.ActionCheckout, terr.Action)
	})

	s.Run("success: check-in records the received payment", func() {
		s.clock.Add(time.Hour)
		view, err := uc.CheckIn(s.ctx, id, booking.NewPayment("bkash", builder.Dec("1000")), true)

		s.Require().NoError(err)
		s.Equal(booking.StateCheckedIn, view.State)
		s.Equal(booking.PaymentBkash, view.TotalReceived.Method)
		s.Equal("2400.00", view.TotalDue.StringFixed(2))
		s.Equal(s.clock.Now(), view.UpdatedAt)
	})

	s.Run("success: undo check-in returns to pending", func() {
		view, err := uc.UncheckIn(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(booking.StateActive, view.State)
	})

	s.Run("success: undo check-in again changes nothing", func() {
		before := s.clock.Now()
		s.clock.Add(time.Hour)
		view, err := uc.UncheckIn(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(before, view.UpdatedAt)
	})

	s.Run("success: edit replaces the stays and recomputes totals", func() {
		edit := builder.NewBookingBuilder().WithRoom("C303", "2024-07-20", "2024-07-22").WithAdvance("0").BuildEdit()
		view, err := uc.Edit(s.ctx, id, edit)

		s.Require().NoError(err)
		s.Equal("C303", view.Stays[0].RoomID)
		s.Equal("2000.00", view.TotalAmount.StringFixed(2))
	})

	s.Run("success: cancel twice keeps it cancelled", func() {
		_, err := uc.Cancel(s.ctx, id)
		s.Require().NoError(err)
		view, err := uc.Cancel(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(booking.StateCancelled, view.State)
		s.False(view.CheckInStatus)
	})

	s.Run("error: edit of a cancelled booking", func() {
		_, err := uc.Edit(s.ctx, id, builder.NewBookingBuilder().BuildEdit())
		s.ErrorIs(err, booking.ErrTransition)
	})

	s.Run("success: restore reopens as pending", func() {
		view, err := uc.Restore(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(booking.StateActive, view.State)
	})

	s.Run("success: every write invalidated the cache", func() {
		s.NotEmpty(s.cache.ids)
		for _, got := range s.cache.ids {
			s.Equal(id, got)
		}
	})
}

func (s *BookingCommandsTestSuite) TestNotFound() {
	uc := s.newCommands(nil, 1)
	for _, id := range []string{"T-00000000", "nope", ""} {
		_, err := uc.Cancel(s.ctx, id)
		s.True(errs.Is(err, errs.ErrBookingNotFound), id)
	}
}

func (s *BookingCommandsTestSuite) TestCheckout() {
	s.seedItem("water", 5, "30")
	s.seedItem("chips", 1, "50")

	uc := s.newCommands(digits(8), 1)
	created, err := uc.Create(s.ctx, builder.NewBookingBuilder().WithCheckIn(true).BuildDraft())
	s.Require().NoError(err)

	result, err := uc.Checkout(s.ctx, created.ReservationID, map[string]int{
		"water": 2,
		"chips": 3,
		"ghost": 1,
		"none":  0,
	})
	s.Require().NoError(err)

	s.Run("success: booking is checked out with priced minibar", func() {
		s.Equal(booking.StateCheckedOut, result.Booking.State)
		s.False(result.Booking.CheckInStatus)
		// 2*30 + 3*50, the unknown item is free
		s.Equal("210.00", result.Booking.MinibarTotal.StringFixed(2))
		s.Equal(map[string]int{"water": 2, "chips": 3, "ghost": 1}, result.Booking.MinibarConsumption)
	})

	s.Run("success: stock outcome per consumed item", func() {
		s.Require().Len(result.Stock, 3)
		byID := map[string]commands.StockOutcome{}
		for _, o := range result.Stock {
			byID[o.ItemID] = o
		}

		s.True(byID["water"].OK())
		s.Equal(3, byID["water"].Stock)
		s.Equal(3, s.stockOf("water"))

		s.True(byID["chips"].Shortfall)
		s.ErrorIs(byID["chips"].Err, minibar.ErrInsufficient)
		s.Equal(1, s.stockOf("chips"))

		s.False(byID["ghost"].Shortfall)
		s.True(errs.Is(byID["ghost"].Err, errs.ErrItemNotFound))
	})

	s.Run("success: shortfall is queued for reconciliation", func() {
		ledger := commands.NewStockLedger(s.store, s.clock)
		pending, err := ledger.ListShortfalls(s.ctx, minibar.ShortfallPending)
		s.Require().NoError(err)
		s.Require().Len(pending, 1)
		s.Equal("chips", pending[0].ItemID)
		s.Equal(3, pending[0].Quantity)
		s.Equal(created.ReservationID, pending[0].ReservationID)
	})

	s.Run("error: checkout twice", func() {
		_, err := uc.Checkout(s.ctx, created.ReservationID, nil)
		s.ErrorIs(err, booking.ErrTransition)
	})
}
