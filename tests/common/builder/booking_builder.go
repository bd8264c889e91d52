//go:build unit || e2e

package builder

import (
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/extra"
	reqdto "hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/pkg/lenient"

	"github.com/shopspring/decimal"
)

// Dec parses a decimal literal and panics on bad input. Test use only.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

type BookingBuilder struct {
	ReservationID    string
	Guest            booking.GuestInfo
	Stays            []booking.RoomStay
	AdvancePayment   booking.Payment
	CheckInRequested bool
	ManagerAck       bool
	Now              time.Time
}

// NewBookingBuilder starts from the reference booking: three nights in room
// A101 at 1000 plus two breakfasts a night at 150, with 500 paid in advance.
// Its total is 3900 and 3400 is due.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ReservationID: "T-12345678",
		Guest: booking.GuestInfo{
			Name:    "Rahim Uddin",
			Email:   "rahim@example.com",
			Phone:   "+8801700000000",
			Address: "12 Lake Road",
			City:    "Dhaka",
			Country: "Bangladesh",
		},
		Stays: []booking.RoomStay{
			{
				CheckInDate:   Day("2024-07-15"),
				CheckOutDate:  Day("2024-07-18"),
				RoomID:        "A101",
				PricePerNight: Dec("1000"),
				Adults:        2,
				Extras: []booking.ExtraLine{
					{Name: "Breakfast", Kind: extra.KindExtra, Quantity: 2, PricePerUnit: Dec("150"), Nights: 3},
				},
			},
		},
		AdvancePayment: booking.Payment{Method: booking.PaymentCash, Amount: Dec("500")},
		Now:            time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ReservationID = id
	return b
}

func (b *BookingBuilder) WithStays(stays ...booking.RoomStay) *BookingBuilder {
	b.Stays = stays
	return b
}

func (b *BookingBuilder) WithRoom(roomID, checkIn, checkOut string) *BookingBuilder {
	b.Stays = []booking.RoomStay{{
		CheckInDate:   Day(checkIn),
		CheckOutDate:  Day(checkOut),
		RoomID:        roomID,
		PricePerNight: Dec("1000"),
		Adults:        1,
	}}
	return b
}

func (b *BookingBuilder) WithAdvance(amount string) *BookingBuilder {
	b.AdvancePayment.Amount = Dec(amount)
	return b
}

func (b *BookingBuilder) WithCheckIn(managerAck bool) *BookingBuilder {
	b.CheckInRequested = true
	b.ManagerAck = managerAck
	return b
}

func (b *BookingBuilder) BuildDraft() booking.Draft {
	return booking.Draft{
		Guest:            b.Guest,
		Stays:            b.Stays,
		AdvancePayment:   b.AdvancePayment,
		CheckInRequested: b.CheckInRequested,
		ManagerAck:       b.ManagerAck,
	}
}

func (b *BookingBuilder) BuildEdit() booking.Edit {
	return booking.Edit{Guest: b.Guest, Stays: b.Stays, AdvancePayment: b.AdvancePayment}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.New(b.ReservationID, b.BuildDraft(), b.Now)
}

// BuildInState reconstructs a stored booking in the given lifecycle state.
func (b *BookingBuilder) BuildInState(state booking.State) *booking.Booking {
	status := booking.StatusActive
	checkedIn := false
	switch state {
	case booking.StateCheckedIn:
		checkedIn = true
	case booking.StateCancelled:
		status = booking.StatusCancelled
	case booking.StateCheckedOut:
		status = booking.StatusCheckedOut
	}
	return booking.Reconstruct(
		b.ReservationID, b.Guest, b.Stays,
		b.AdvancePayment, booking.Payment{Method: booking.PaymentCash},
		nil, decimal.Zero, checkedIn, status, b.Now, b.Now,
	)
}

// BuildCreateRequest renders the booking as the front desk form would post it.
func (b *BookingBuilder) BuildCreateRequest() reqdto.CreateBookingRequest {
	stays := make([]reqdto.RoomStayRequest, 0, len(b.Stays))
	for _, st := range b.Stays {
		lines := make([]reqdto.ExtraLineRequest, 0, len(st.Extras))
		for _, l := range st.Extras {
			lines = append(lines, reqdto.ExtraLineRequest{
				Name:         l.Name,
				Kind:         string(l.Kind),
				Quantity:     lenient.Int(l.Quantity),
				PricePerUnit: lenient.NewNumber(l.PricePerUnit),
				Nights:       lenient.Int(l.Nights),
			})
		}
		stays = append(stays, reqdto.RoomStayRequest{
			CheckInDate:   lenient.NewDate(st.CheckInDate),
			CheckOutDate:  lenient.NewDate(st.CheckOutDate),
			RoomID:        st.RoomID,
			PricePerNight: lenient.NewNumber(st.PricePerNight),
			Adults:        lenient.Int(st.Adults),
			Children:      lenient.Int(st.Children),
			Extras:        lines,
		})
	}
	return reqdto.CreateBookingRequest{
		GuestInfo:        reqdto.GuestInfoRequest(b.Guest),
		RoomStays:        stays,
		AdvancePayment:   reqdto.PaymentRequest{Method: string(b.AdvancePayment.Method), Amount: lenient.NewNumber(b.AdvancePayment.Amount)},
		CheckInRequested: b.CheckInRequested,
		ManagerAck:       b.ManagerAck,
	}
}
