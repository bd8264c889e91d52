//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/domain/settings"
	"hotel-frontdesk/internal/infra/cache"
	"hotel-frontdesk/internal/infra/changefeed"
	"hotel-frontdesk/internal/infra/memstore"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"
	"hotel-frontdesk/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.MockClock
	hub   *changefeed.Hub
	store *memstore.Store
	cache *cache.MemoryBookingCache
	guard *queries.GuardedCache
	q     queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	s.hub = changefeed.NewHub()
	s.store = memstore.New(s.hub, s.clock)
	s.cache = cache.NewMemoryBookingCache(time.Minute, s.clock)
	s.guard = queries.NewGuardedCache(s.cache)
	s.q = queries.NewBookingQueries(s.store, s.guard, queries.PageLimits{Default: 2, Max: 3})
	s.T().Cleanup(queries.BindCacheInvalidation(s.hub, s.guard))

	s.seed()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

// seed stores one booking per state plus a second pending one, each a minute
// newer than the one before.
func (s *BookingQueriesTestSuite) seed() {
	rows := []struct {
		id    string
		state booking.State
		room  string
		guest string
		email string
	}{
		{"T-00000001", booking.StateActive, "A101", "Rahim Uddin", "rahim@example.com"},
		{"T-00000002", booking.StateCheckedIn, "A102", "Karim Ahmed", "karim@example.com"},
		{"T-00000003", booking.StateCheckedOut, "A103", "Nadia Islam", "nadia@example.com"},
		{"T-00000004", booking.StateCancelled, "A101", "Sadia Khan", "sadia@example.com"},
		{"T-00000005", booking.StateActive, "A104", "rahima begum", "begum@example.com"},
	}
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		for i, r := range rows {
			b := builder.NewBookingBuilder().
				WithID(r.id).
				WithRoom(r.room, "2024-07-10", "2024-07-12").
				With(func(b *builder.BookingBuilder) {
					b.Guest.Name = r.guest
					b.Guest.Email = r.email
					b.Now = base.Add(time.Duration(i) * time.Minute)
				}).
				BuildInState(r.state)
			if _, err := tx.Bookings().Insert(ctx, b); err != nil {
				return err
			}
		}
		for _, code := range []string{"A101", "A102", "A103", "A104", "A105"} {
			rm, err := room.NewRoom(code, "Room "+code, "double")
			if err != nil {
				return err
			}
			if err := tx.Rooms().Insert(ctx, rm); err != nil {
				return err
			}
		}
		it, err := minibar.NewItem("water", "Water", minibar.CategoryMinibar, 10, builder.Dec("30"))
		if err != nil {
			return err
		}
		if err := tx.Minibar().Insert(ctx, it); err != nil {
			return err
		}
		return tx.Settings().Save(ctx, settings.Settings{HotelName: "Lakeview", Currency: "BDT", Language: "en"})
	}))
}

func ids(page *queries.BookingPage) []string {
	out := make([]string, 0, len(page.Items))
	for _, v := range page.Items {
		out = append(out, v.ReservationID)
	}
	return out
}

func (s *BookingQueriesTestSuite) TestList() {
	type testCase struct {
		name      string
		params    queries.ListParams
		wantIDs   []string
		wantTotal int
		wantPage  int
		wantSize  int
	}

	runCases := func(cases []testCase) {
		for _, tc := range cases {
			s.Run(tc.name, func() {
				page, err := s.q.List(s.ctx, tc.params)
				s.Require().NoError(err)
				s.Equal(tc.wantIDs, ids(page))
				s.Equal(tc.wantTotal, page.Total)
				s.Equal(tc.wantPage, page.Page)
				s.Equal(tc.wantSize, page.PageSize)
			})
		}
	}

	runCases([]testCase{
		{
			name:    "all, newest first, default page size",
			params:  queries.ListParams{},
			wantIDs: []string{"T-00000005", "T-00000004"}, wantTotal: 5, wantPage: 1, wantSize: 2,
		},
		{
			name:    "all, last page",
			params:  queries.ListParams{View: booking.ViewAll, Page: 3},
			wantIDs: []string{"T-00000001"}, wantTotal: 5, wantPage: 3, wantSize: 2,
		},
		{
			name:    "page size is capped",
			params:  queries.ListParams{PageSize: 50},
			wantIDs: []string{"T-00000005", "T-00000004", "T-00000003"}, wantTotal: 5, wantPage: 1, wantSize: 3,
		},
		{
			name:    "pending view",
			params:  queries.ListParams{View: booking.ViewPending},
			wantIDs: []string{"T-00000005", "T-00000001"}, wantTotal: 2, wantPage: 1, wantSize: 2,
		},
		{
			name:    "checked in view",
			params:  queries.ListParams{View: booking.ViewCheckedIn},
			wantIDs: []string{"T-00000002"}, wantTotal: 1, wantPage: 1, wantSize: 2,
		},
		{
			name:    "checked out view",
			params:  queries.ListParams{View: booking.ViewCheckedOut},
			wantIDs: []string{"T-00000003"}, wantTotal: 1, wantPage: 1, wantSize: 2,
		},
		{
			name:    "cancelled view",
			params:  queries.ListParams{View: booking.ViewCancelled},
			wantIDs: []string{"T-00000004"}, wantTotal: 1, wantPage: 1, wantSize: 2,
		},
		{
			name:    "search is case-insensitive over guest name",
			params:  queries.ListParams{Search: "RAHIM"},
			wantIDs: []string{"T-00000005", "T-00000001"}, wantTotal: 2, wantPage: 1, wantSize: 2,
		},
		{
			name:    "search by reservation id within a view",
			params:  queries.ListParams{View: booking.ViewPending, Search: "t-00000001"},
			wantIDs: []string{"T-00000001"}, wantTotal: 1, wantPage: 1, wantSize: 2,
		},
		{
			name:    "page past the end is empty",
			params:  queries.ListParams{Page: 9},
			wantIDs: []string{}, wantTotal: 5, wantPage: 9, wantSize: 2,
		},
	})

	s.Run("error: unknown view", func() {
		_, err := s.q.List(s.ctx, queries.ListParams{View: "archived"})
		s.ErrorIs(err, queries.ErrInvalidView)
	})
}

func (s *BookingQueriesTestSuite) TestGetUsesCacheUntilChanged() {
	view, err := s.q.Get(s.ctx, "T-00000001")
	s.Require().NoError(err)
	s.Equal("Rahim Uddin", view.Guest.Name)
	s.Equal(1, s.cache.Len())

	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		status := booking.StatusCancelled
		return tx.Bookings().UpdateFields(ctx, "T-00000001", booking.Patch{Status: &status})
	}))
	s.Equal(0, s.cache.Len(), "change feed drops the cached copy")

	view, err = s.q.Get(s.ctx, "T-00000001")
	s.Require().NoError(err)
	s.Equal(booking.StateCancelled, view.State)

	_, err = s.q.Get(s.ctx, "T-99999999")
	s.True(errs.Is(err, errs.ErrBookingNotFound))
	_, err = s.q.Get(s.ctx, "../etc")
	s.True(errs.Is(err, errs.ErrBookingNotFound))
}

// pausingUoW holds a finished read until the test lets it return.
type pausingUoW struct {
	shared.UnitOfWork
	read   chan struct{}
	resume chan struct{}
}

func (u *pausingUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	err := u.UnitOfWork.WithinReadOnly(ctx, fn)
	u.read <- struct{}{}
	<-u.resume
	return err
}

func (s *BookingQueriesTestSuite) TestGetDoesNotCacheReadOverlappingWrite() {
	uow := &pausingUoW{UnitOfWork: s.store, read: make(chan struct{}), resume: make(chan struct{})}
	slow := queries.NewBookingQueries(uow, s.guard, queries.PageLimits{Default: 2, Max: 3})
	cmds := commands.NewBookingUseCase(s.store, s.clock, commands.BookingOptions{Cache: s.guard})

	type result struct {
		view *queries.BookingView
		err  error
	}
	done := make(chan result, 1)
	go func() {
		v, err := slow.Get(s.ctx, "T-00000001")
		done <- result{v, err}
	}()

	<-uow.read
	_, err := cmds.Cancel(s.ctx, "T-00000001")
	s.Require().NoError(err)
	close(uow.resume)

	res := <-done
	s.Require().NoError(res.err)
	s.Equal(booking.StateActive, res.view.State, "the slow read started before the cancel")
	s.Equal(0, s.cache.Len(), "the old record is not written back")

	view, err := s.q.Get(s.ctx, "T-00000001")
	s.Require().NoError(err)
	s.Equal(booking.StateCancelled, view.State)
}

func (s *BookingQueriesTestSuite) TestResyncFlushesCache() {
	_, err := s.q.Get(s.ctx, "T-00000001")
	s.Require().NoError(err)
	_, err = s.q.Get(s.ctx, "T-00000002")
	s.Require().NoError(err)
	s.Equal(2, s.cache.Len())

	s.hub.Publish(changefeed.ResyncEvent(s.clock.Now()))
	s.Equal(0, s.cache.Len())
}

func (s *BookingQueriesTestSuite) TestSummary() {
	out, err := s.q.Summary(s.ctx, "T-00000002")
	s.Require().NoError(err)

	s.Equal("Lakeview", out.Hotel.HotelName)
	s.Equal(booking.StateCheckedIn, out.Summary.State)
	s.Require().Len(out.Summary.Stays, 1)
	s.Equal("Room A102", out.Summary.Stays[0].RoomName)
	s.Equal(2, out.Summary.Stays[0].Nights)
	s.Equal("2000.00", out.Summary.TotalAmount.StringFixed(2))
	s.Equal("1500.00", out.Summary.TotalDue.StringFixed(2))

	again, err := s.q.Summary(s.ctx, "T-00000002")
	s.Require().NoError(err)
	s.Equal(out, again)

	_, err = s.q.Summary(s.ctx, "T-12121212")
	s.True(errs.Is(err, errs.ErrBookingNotFound))
}

func (s *BookingQueriesTestSuite) TestAvailableRooms() {
	type testCase struct {
		name    string
		params  queries.AvailabilityParams
		wantIDs []string
	}

	runCases := func(cases []testCase) {
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rooms, err := s.q.AvailableRooms(s.ctx, tc.params)
				s.Require().NoError(err)
				got := make([]string, 0, len(rooms))
				for _, r := range rooms {
					got = append(got, r.ID)
				}
				s.Equal(tc.wantIDs, got)
			})
		}
	}

	runCases([]testCase{
		{
			name:    "active and checked-in stays occupy their rooms",
			params:  queries.AvailabilityParams{CheckIn: builder.Day("2024-07-11"), CheckOut: builder.Day("2024-07-13")},
			wantIDs: []string{"A103", "A105"},
		},
		{
			name:    "checkout day is free for the next guest",
			params:  queries.AvailabilityParams{CheckIn: builder.Day("2024-07-12"), CheckOut: builder.Day("2024-07-14")},
			wantIDs: []string{"A101", "A102", "A103", "A104", "A105"},
		},
		{
			name: "the booking being edited does not block itself",
			params: queries.AvailabilityParams{
				CheckIn: builder.Day("2024-07-10"), CheckOut: builder.Day("2024-07-11"), ExcludeReservationID: "T-00000005",
			},
			wantIDs: []string{"A103", "A104", "A105"},
		},
		{
			name:    "missing dates list every room",
			params:  queries.AvailabilityParams{CheckIn: builder.Day("2024-07-10")},
			wantIDs: []string{"A101", "A102", "A103", "A104", "A105"},
		},
	})
}

func (s *BookingQueriesTestSuite) TestQuote() {
	b := builder.NewBookingBuilder()
	q := s.q.Quote(b.Stays, b.AdvancePayment.Amount)

	s.Equal("3900.00", q.TotalAmount.StringFixed(2))
	s.Equal("3400.00", q.TotalDue.StringFixed(2))
	s.Require().Len(q.Stays, 1)
	s.Equal(3, q.Stays[0].Nights)
	s.Equal("900.00", q.Stays[0].ExtrasTotal.StringFixed(2))
}
