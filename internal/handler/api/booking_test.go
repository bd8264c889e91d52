//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/handler/api"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/httptest"
	"hotel-frontdesk/tests/common/testutil"
	commandsmock "hotel-frontdesk/tests/mock/commands"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var decimalEq = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", h.Create)
	s.router.GET("/bookings", h.List)
	s.router.GET("/bookings/:id", h.Get)
	s.router.PUT("/bookings/:id", h.Update)
	s.router.POST("/bookings/:id/check-in", h.CheckIn)
	s.router.POST("/bookings/:id/undo-check-in", h.UndoCheckIn)
	s.router.POST("/bookings/:id/checkout", h.Checkout)
	s.router.POST("/bookings/:id/cancel", h.Cancel)
	s.router.POST("/bookings/:id/restore", h.Restore)
	s.router.POST("/pricing/preview", h.PricingPreview)
	s.router.GET("/availability", h.Availability)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func pendingView() *queries.BookingView {
	return queries.NewBookingView(builder.NewBookingBuilder().BuildInState(booking.StateActive))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequest()

	s.Run("success: 201 with the stored booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d booking.Draft) (*queries.BookingView, error) {
				if diff := cmp.Diff(b.BuildDraft(), d, decimalEq, cmpopts.EquateEmpty()); diff != "" {
					s.T().Errorf("draft mismatch (-want +got):\n%s", diff)
				}
				return pendingView(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("T-12345678", response.ReservationID)
		s.Equal("ACTIVE", response.State)
		s.True(decimal.RequireFromString("3900").Equal(response.TotalAmount))
		s.True(decimal.RequireFromString("3400").Equal(response.TotalDue))
		s.Equal("2024-07-15", response.RoomStays[0].CheckInDate)
		s.Equal(3, response.RoomStays[0].Nights)
	})

	s.Run("success: numbers typed as strings are accepted", func() {
		body := testutil.DtoMap(s.T(), reqBody, func(m map[string]any) {
			m["advance_payment"] = map[string]any{"method": "CASH", "amount": "500"}
		})
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d booking.Draft) (*queries.BookingView, error) {
				s.True(decimal.RequireFromString("500").Equal(d.AdvancePayment.Amount))
				return pendingView(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, []int{1, 2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name: "validation failed",
				commandsError: &booking.ValidationError{Fields: []booking.FieldError{
					{Field: "guest_info.name", Reason: "required"},
				}},
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "room conflict",
				commandsError:  errs.Mark(errors.New("overlap"), errs.ErrRoomConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room already booked",
			},
			{
				name:           "ids exhausted",
				commandsError:  commands.ErrIDExhausted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Could not allocate an identifier",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: validation details carry the rejected fields", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &booking.ValidationError{Fields: []booking.FieldError{
				{Field: "room_stays[0].check_out_date", Reason: "must be after check-in"},
			}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		details, ok := body["detail"].([]any)
		s.Require().True(ok, rec.Body.String())
		s.Equal("room_stays[0].check_out_date", details[0].(map[string]any)["field"])
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: passes view, search and paging through", func() {
		want := queries.ListParams{View: booking.ViewCheckedIn, Search: "rahim", Page: 2, PageSize: 10}
		s.mockQueries.EXPECT().List(gomock.Any(), want).
			Return(&queries.BookingPage{Items: []*queries.BookingView{pendingView()}, Total: 11, Page: 2, PageSize: 10}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?view=checked_in&search=rahim&page=2&page_size=10", nil, "")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal(2, response.TotalPages)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"X-Total-Count": "11"})
	})

	s.Run("error: 400 on unknown view", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidView).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?view=archived", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 on page below one", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?page=0&page_size=-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "T-12345678").Return(pendingView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/T-12345678", nil, "")
		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Rahim Uddin", response.GuestInfo.Name)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "T-00000000").
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrBookingNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/T-00000000", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	id := "T-12345678"
	illegal := &booking.TransitionError{From: booking.StateCancelled, Action: booking.ActionCheckIn}

	s.Run("check-in passes the received payment and manager ack", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, gomock.Any(), true).
			DoAndReturn(func(_ context.Context, _ string, p booking.Payment, _ bool) (*queries.BookingView, error) {
				s.Equal(booking.PaymentCash, p.Method)
				s.True(decimal.RequireFromString("3400").Equal(p.Amount))
				return pendingView(), nil
			}).Times(1)

		body := map[string]any{"total_received": map[string]any{"method": "CASH", "amount": 3400}, "manager_ack": true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id+"/check-in", body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("check-in from an illegal state is 409", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, gomock.Any(), false).Return(nil, illegal).Times(1)

		body := map[string]any{"total_received": map[string]any{"method": "CASH", "amount": 0}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id+"/check-in", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Action not allowed")
	})

	testCases := []struct {
		name   string
		path   string
		expect func(err error) *gomock.Call
	}{
		{name: "undo check-in", path: "/undo-check-in", expect: func(err error) *gomock.Call {
			return s.mockCommands.EXPECT().UncheckIn(gomock.Any(), id).Return(viewOrNil(err), err)
		}},
		{name: "cancel", path: "/cancel", expect: func(err error) *gomock.Call {
			return s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(viewOrNil(err), err)
		}},
		{name: "restore", path: "/restore", expect: func(err error) *gomock.Call {
			return s.mockCommands.EXPECT().Restore(gomock.Any(), id).Return(viewOrNil(err), err)
		}},
	}
	for _, tc := range testCases {
		s.Run(tc.name+" succeeds", func() {
			tc.expect(nil).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id+tc.path, nil, "")
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		})
		s.Run(tc.name+" from an illegal state is 409", func() {
			tc.expect(illegal).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id+tc.path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Action not allowed")
		})
	}
}

func viewOrNil(err error) *queries.BookingView {
	if err != nil {
		return nil
	}
	return pendingView()
}

func (s *BookingHandlerTestSuite) TestUpdate() {
	s.Run("success: replaces content", func() {
		b := builder.NewBookingBuilder().WithAdvance("700")
		s.mockCommands.EXPECT().Edit(gomock.Any(), "T-12345678", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, e booking.Edit) (*queries.BookingView, error) {
				if diff := cmp.Diff(b.BuildEdit(), e, decimalEq, cmpopts.EquateEmpty()); diff != "" {
					s.T().Errorf("edit mismatch (-want +got):\n%s", diff)
				}
				return pendingView(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/T-12345678", b.BuildCreateRequest(), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *BookingHandlerTestSuite) TestCheckout() {
	url := "/bookings/T-12345678/checkout"

	s.Run("success: bills consumption and reports stock outcomes", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), "T-12345678", map[string]int{"water": 2}).
			Return(&commands.CheckoutResult{
				Booking: pendingView(),
				Stock: []commands.StockOutcome{
					{ItemID: "water", Quantity: 2, Stock: 8},
				},
			}, nil).Times(1)

		body := map[string]any{"minibar_consumption": map[string]any{"water": "2", "soda": 0}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]resdto.StockOutcomeResponse{{ItemID: "water", Quantity: 2, Stock: 8}}, response.Stock)
	})

	s.Run("success: empty body checks out without consumption", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), "T-12345678", map[string]int{}).
			Return(&commands.CheckoutResult{Booking: pendingView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("shortfall is reported, not failed", func() {
		short := &minibar.NegativeStockError{ItemID: "water", Stock: 1, Requested: 2}
		s.mockCommands.EXPECT().Checkout(gomock.Any(), "T-12345678", gomock.Any()).
			Return(&commands.CheckoutResult{
				Booking: pendingView(),
				Stock:   []commands.StockOutcome{{ItemID: "water", Quantity: 2, Stock: 1, Shortfall: true, Err: short}},
			}, nil).Times(1)

		body := map[string]any{"minibar_consumption": map[string]any{"water": 2}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Stock[0].Shortfall)
		s.NotEmpty(response.Stock[0].Error)
	})
}

func (s *BookingHandlerTestSuite) TestPricingPreview() {
	b := builder.NewBookingBuilder()
	req := b.BuildCreateRequest()
	body := map[string]any{"room_stays": req.RoomStays, "advance_payment": req.AdvancePayment}

	s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(stays []booking.RoomStay, advance decimal.Decimal) booking.Quote {
			return booking.NewQuote(stays, advance, decimal.Zero)
		}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/preview", body, "")

	var response resdto.QuoteResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.True(decimal.RequireFromString("3900").Equal(response.TotalAmount))
	s.True(decimal.RequireFromString("3400").Equal(response.TotalDue))
}

func (s *BookingHandlerTestSuite) TestAvailability() {
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any(), queries.AvailabilityParams{
		CheckIn:              builder.Day("2024-07-10"),
		CheckOut:             builder.Day("2024-07-12"),
		ExcludeReservationID: "T-12345678",
	}).Return([]*queries.RoomView{{ID: "A103", Name: "Room A103"}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
		"/availability?check_in=2024-07-10&check_out=2024-07-12&exclude=T-12345678", nil, "")

	var response []resdto.RoomResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal("A103", response[0].ID)
}
