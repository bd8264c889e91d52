//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/lenient"
	"hotel-frontdesk/tests/common/authtest"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/dbtest"
	"hotel-frontdesk/tests/common/httptest"
	"hotel-frontdesk/tests/e2e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

var reservationIDPattern = regexp.MustCompile(`^T-\d{8}$`)

type bookingSuite struct {
	e2e.SharedSuite
	token string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.token = authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", staff.RoleManager.String())
	dbtest.CreateTestMinibarItem(t, s.DB, "water", 10, "50")
	dbtest.CreateTestMinibarItem(t, s.DB, "soda", 1, "30")
}

func (s *bookingSuite) createBooking(roomID, checkIn, checkOut string) *response.BookingResponse {
	t := s.T()
	req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Stays[0].RoomID = roomID
		b.Stays[0].CheckInDate = builder.Day(checkIn)
		b.Stays[0].CheckOutDate = builder.Day(checkOut)
	}).BuildCreateRequest()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res
}

func (s *bookingSuite) post(path string, body any) *response.BookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, path, body, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res
}

func (s *bookingSuite) TestCreate() {
	s.Run("prices and stores a new booking", func() {
		t := s.T()

		res := s.createBooking("R101", "2030-07-15", "2030-07-18")
		require.Regexp(t, reservationIDPattern, res.ReservationID)
		require.Equal(t, string(booking.StateActive), res.State)
		require.True(t, res.TotalAmount.Equal(decimal.NewFromInt(3900)), res.TotalAmount.String())
		require.True(t, res.TotalDue.Equal(decimal.NewFromInt(3400)), res.TotalDue.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+res.ReservationID, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("overlapping stay in the same room is rejected", func() {
		t := s.T()

		s.createBooking("R101", "2030-07-15", "2030-07-18")
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Stays[0].RoomID = "R101"
			b.Stays[0].CheckInDate = builder.Day("2030-07-17")
			b.Stays[0].CheckOutDate = builder.Day("2030-07-19")
		}).BuildCreateRequest()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("back to back stays share the turnover day", func() {
		s.createBooking("R101", "2030-07-15", "2030-07-18")
		s.createBooking("R101", "2030-07-18", "2030-07-20")
	})

	s.Run("missing guest name is a validation error", func() {
		t := s.T()

		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Guest.Name = ""
		}).BuildCreateRequest()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestLifecycle() {
	s.Run("check in, checkout and stock", func() {
		t := s.T()

		created := s.createBooking("R101", "2030-07-15", "2030-07-18")
		base := bookingsURL + "/" + created.ReservationID

		checkedIn := s.post(base+"/check-in", request.CheckInRequest{
			TotalReceived: request.PaymentRequest{Method: string(booking.PaymentCash), Amount: lenient.NewNumber(decimal.NewFromInt(3900))},
			ManagerAck:    true,
		})
		require.Equal(t, string(booking.StateCheckedIn), checkedIn.State)
		require.True(t, checkedIn.CheckInStatus)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/checkout",
			map[string]any{"minibar_consumption": map[string]any{"water": "2", "soda": 3}}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var out response.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &out))
		require.Equal(t, string(booking.StateCheckedOut), out.Booking.State)
		require.True(t, out.Booking.MinibarTotal.Equal(decimal.NewFromInt(190)), out.Booking.MinibarTotal.String())

		require.Equal(t, 8, dbtest.MinibarStock(t, s.DB, "water"))
		require.Equal(t, 1, dbtest.MinibarStock(t, s.DB, "soda"), "short item keeps its stock")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/stock/shortfalls?status=pending", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)
		var shortfalls []response.ShortfallResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &shortfalls))
		require.Len(t, shortfalls, 1)
		require.Equal(t, "soda", shortfalls[0].ItemID)
		require.Equal(t, 3, shortfalls[0].Quantity)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/minibar-items/soda/restock", request.RestockRequest{Quantity: 5}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stock/reconcile", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var report response.ReconcileResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &report))
		require.Equal(t, 1, report.Resolved)
		require.Equal(t, 3, dbtest.MinibarStock(t, s.DB, "soda"))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/cancel", nil, s.token)
		require.Equal(t, http.StatusConflict, w.Code, "checked out bookings cannot be cancelled")
	})

	s.Run("cancel frees the room and restore takes it back", func() {
		t := s.T()

		created := s.createBooking("R101", "2030-08-01", "2030-08-03")
		base := bookingsURL + "/" + created.ReservationID

		cancelled := s.post(base+"/cancel", nil)
		require.Equal(t, string(booking.StateCancelled), cancelled.State)

		other := s.createBooking("R101", "2030-08-02", "2030-08-04")
		require.NotEqual(t, created.ReservationID, other.ReservationID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/restore", nil, s.token)
		require.Equal(t, http.StatusConflict, w.Code, "restore must not double book the room")

		s.post(bookingsURL+"/"+other.ReservationID+"/cancel", nil)
		restored := s.post(base+"/restore", nil)
		require.Equal(t, string(booking.StateActive), restored.State)
	})

	s.Run("undo check in returns to pending", func() {
		created := s.createBooking("R102", "2030-09-01", "2030-09-02")
		base := bookingsURL + "/" + created.ReservationID

		s.post(base+"/check-in", request.CheckInRequest{ManagerAck: true})
		undone := s.post(base+"/undo-check-in", nil)
		require.Equal(s.T(), string(booking.StateActive), undone.State)
		require.False(s.T(), undone.CheckInStatus)
	})
}

func (s *bookingSuite) TestListAndAvailability() {
	s.Run("pending view and room availability", func() {
		t := s.T()

		for i := range 3 {
			s.createBooking("R101", fmt.Sprintf("2030-10-%02d", 1+i*3), fmt.Sprintf("2030-10-%02d", 3+i*3))
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?view=pending&page_size=2", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"X-Total-Count": "3"})

		var page response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Items, 2)
		require.Equal(t, 2, page.TotalPages)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/availability?check_in=2030-10-01&check_out=2030-10-03", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rooms []response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		ids := make([]string, 0, len(rooms))
		for _, r := range rooms {
			ids = append(ids, r.ID)
		}
		require.ElementsMatch(t, []string{"R102"}, ids)
	})
}

func (s *bookingSuite) TestPricingPreview() {
	s.Run("quote matches the stored totals", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		create := b.BuildCreateRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/pricing/preview", request.PricingPreviewRequest{
			RoomStays:      create.RoomStays,
			AdvancePayment: create.AdvancePayment,
		}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quote))
		require.True(t, quote.TotalAmount.Equal(decimal.NewFromInt(3900)))
		require.True(t, quote.TotalDue.Equal(decimal.NewFromInt(3400)))
	})
}
