package httperr

import (
	"net/http"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// BadRequest is the response for a body or query that could not be bound.
func BadRequest(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

// Abort answers with the status the error classifies to.
func Abort(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

type stockDetail struct {
	ItemID    string `json:"item_id"`
	Stock     int    `json:"stock"`
	Requested int    `json:"requested"`
}

type transitionDetail struct {
	State  booking.State  `json:"state"`
	Action booking.Action `json:"action"`
}

// Classify maps use case errors onto HTTP status, public message and detail.
func Classify(err error) (int, string, any) {
	var verr *booking.ValidationError
	if errs.As(err, &verr) {
		return http.StatusUnprocessableEntity, "Validation failed", verr.Fields
	}
	var terr *booking.TransitionError
	if errs.As(err, &terr) {
		return http.StatusConflict, "Action not allowed in the current state", transitionDetail{State: terr.From, Action: terr.Action}
	}
	var short *minibar.NegativeStockError
	if errs.As(err, &short) {
		return http.StatusConflict, "Insufficient stock", stockDetail{ItemID: short.ItemID, Stock: short.Stock, Requested: short.Requested}
	}

	switch {
	case errs.Is(err, errs.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found", nil
	case errs.Is(err, errs.ErrRoomNotFound):
		return http.StatusNotFound, "Room not found", nil
	case errs.Is(err, errs.ErrExtraNotFound):
		return http.StatusNotFound, "Extra not found", nil
	case errs.Is(err, errs.ErrItemNotFound):
		return http.StatusNotFound, "Minibar item not found", nil
	case errs.Is(err, errs.ErrRoomConflict):
		return http.StatusConflict, "Room already booked for overlapping dates", nil
	case errs.Is(err, errs.ErrDuplicateRoomCode), errs.Is(err, commands.ErrIDExhausted):
		return http.StatusConflict, "Could not allocate an identifier, try again", nil
	case errs.Is(err, errs.ErrInvalidInput):
		return http.StatusUnprocessableEntity, "Invalid input", err.Error()
	case errs.Is(err, commands.ErrInvalidQuantity):
		return http.StatusUnprocessableEntity, "Quantity must be greater than zero", nil
	case errs.Is(err, queries.ErrInvalidView), errs.Is(err, queries.ErrInvalidPeriod):
		return http.StatusBadRequest, "Invalid query", nil
	case errs.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password", nil
	case errs.Is(err, commands.ErrTokenValidation):
		return http.StatusUnauthorized, "Invalid or expired token", nil
	case errs.Is(err, commands.ErrStaffInactive), errs.Is(err, queries.ErrStaffInactive):
		return http.StatusForbidden, "Account is inactive", nil
	case errs.Is(err, queries.ErrStaffNotFound):
		return http.StatusNotFound, "Staff not found", nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}
