package api

import (
	"context"
	"net/http"
	"strconv"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/handler/httperr"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

type transitionFunc func(ctx context.Context, id string) (*queries.BookingView, error)

func (h *BookingHandler) transition(c *gin.Context, step transitionFunc) {
	view, err := step(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Create booking
// @Description Create a booking, optionally checked in on arrival with manager sign-off
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToDraft())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description One page of a front-desk view, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param view query string false "all, pending, checked_in, checked_out or cancelled"
// @Param search query string false "Matches id, guest name, email or phone"
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	page, err := h.q.List(c.Request.Context(), q.ToParams())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(page.Total))
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Booking summary
// @Description Printable booking with per-stay breakdown and hotel header
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.SummaryResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/summary [get]
func (h *BookingHandler) Summary(c *gin.Context) {
	view, err := h.q.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummaryView(view))
}

// @Summary Edit booking
// @Description Replace guest, stays and advance of a pending booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateBookingRequest true "Booking"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	view, err := h.cmds.Edit(c.Request.Context(), c.Param("id"), req.ToEdit())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Check in
// @Description Record the amount received and mark the guest checked in
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CheckInRequest true "Payment received"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	view, err := h.cmds.CheckIn(c.Request.Context(), c.Param("id"), req.Received(), req.ManagerAck)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Undo check-in
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/undo-check-in [post]
func (h *BookingHandler) UndoCheckIn(c *gin.Context) {
	h.transition(c, h.cmds.UncheckIn)
}

// @Summary Check out
// @Description Bill minibar consumption and take it out of stock
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CheckoutRequest false "Minibar consumption by item id"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err)
			return
		}
	}
	result, err := h.cmds.Checkout(c.Request.Context(), c.Param("id"), req.Consumption())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel)
}

// @Summary Restore cancelled booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/restore [post]
func (h *BookingHandler) Restore(c *gin.Context) {
	h.transition(c, h.cmds.Restore)
}

// @Summary Pricing preview
// @Description Price stays and advance without saving anything
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PricingPreviewRequest true "Stays"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pricing/preview [post]
func (h *BookingHandler) PricingPreview(c *gin.Context) {
	var req reqdto.PricingPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(h.q.Quote(req.Stays(), req.Advance())))
}

// @Summary Available rooms
// @Description Rooms no active booking holds for the dates. Advisory only.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param check_in query string false "YYYY-MM-DD"
// @Param check_out query string false "YYYY-MM-DD"
// @Param exclude query string false "Reservation id to ignore"
// @Success 200 {array} resdto.RoomResponse
// @Router /api/availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	rooms, err := h.q.AvailableRooms(c.Request.Context(), q.ToParams())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(rooms))
}
