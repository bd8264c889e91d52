package request

import (
	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/extra"
	"hotel-frontdesk/internal/pkg/lenient"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// Numeric and date fields use the lenient types: the front desk form sends
// whatever was typed, and bad input becomes zero for the booking rules to
// reject with a field error.

type GuestInfoRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (g GuestInfoRequest) toDomain() booking.GuestInfo {
	return booking.GuestInfo(g)
}

type ExtraLineRequest struct {
	Name         string         `json:"name"`
	Kind         string         `json:"kind"`
	Quantity     lenient.Int    `json:"quantity"`
	PricePerUnit lenient.Number `json:"price_per_unit"`
	Nights       lenient.Int    `json:"nights"`
}

type RoomStayRequest struct {
	CheckInDate   lenient.Date       `json:"check_in_date"`
	CheckOutDate  lenient.Date       `json:"check_out_date"`
	RoomID        string             `json:"room_id"`
	PricePerNight lenient.Number     `json:"price_per_night"`
	Adults        lenient.Int        `json:"adults"`
	Children      lenient.Int        `json:"children"`
	Extras        []ExtraLineRequest `json:"extras"`
}

func (s RoomStayRequest) toDomain() booking.RoomStay {
	lines := make([]booking.ExtraLine, 0, len(s.Extras))
	for _, l := range s.Extras {
		kind, err := extra.ParseKind(l.Kind)
		if err != nil {
			// unknown kinds are billed per night like a regular extra
			kind = extra.KindExtra
		}
		lines = append(lines, booking.ExtraLine{
			Name:         l.Name,
			Kind:         kind,
			Quantity:     l.Quantity.Int(),
			PricePerUnit: l.PricePerUnit.Decimal(),
			Nights:       l.Nights.Int(),
		})
	}
	return booking.RoomStay{
		CheckInDate:   s.CheckInDate.Time(),
		CheckOutDate:  s.CheckOutDate.Time(),
		RoomID:        s.RoomID,
		PricePerNight: s.PricePerNight.Decimal(),
		Adults:        s.Adults.Int(),
		Children:      s.Children.Int(),
		Extras:        lines,
	}
}

func staysToDomain(in []RoomStayRequest) []booking.RoomStay {
	out := make([]booking.RoomStay, 0, len(in))
	for _, s := range in {
		out = append(out, s.toDomain())
	}
	return out
}

type PaymentRequest struct {
	Method string         `json:"method"`
	Amount lenient.Number `json:"amount"`
}

func (p PaymentRequest) toDomain() booking.Payment {
	return booking.NewPayment(p.Method, p.Amount.Decimal())
}

type CreateBookingRequest struct {
	GuestInfo        GuestInfoRequest  `json:"guest_info"`
	RoomStays        []RoomStayRequest `json:"room_stays"`
	AdvancePayment   PaymentRequest    `json:"advance_payment"`
	CheckInRequested bool              `json:"check_in_requested"`
	ManagerAck       bool              `json:"manager_ack"`
}

func (r CreateBookingRequest) ToDraft() booking.Draft {
	return booking.Draft{
		Guest:            r.GuestInfo.toDomain(),
		Stays:            staysToDomain(r.RoomStays),
		AdvancePayment:   r.AdvancePayment.toDomain(),
		CheckInRequested: r.CheckInRequested,
		ManagerAck:       r.ManagerAck,
	}
}

type UpdateBookingRequest struct {
	GuestInfo      GuestInfoRequest  `json:"guest_info"`
	RoomStays      []RoomStayRequest `json:"room_stays"`
	AdvancePayment PaymentRequest    `json:"advance_payment"`
}

func (r UpdateBookingRequest) ToEdit() booking.Edit {
	return booking.Edit{
		Guest:          r.GuestInfo.toDomain(),
		Stays:          staysToDomain(r.RoomStays),
		AdvancePayment: r.AdvancePayment.toDomain(),
	}
}

type CheckInRequest struct {
	TotalReceived PaymentRequest `json:"total_received"`
	ManagerAck    bool           `json:"manager_ack"`
}

func (r CheckInRequest) Received() booking.Payment {
	return r.TotalReceived.toDomain()
}

type CheckoutRequest struct {
	MinibarConsumption map[string]lenient.Int `json:"minibar_consumption"`
}

// Consumption drops zero and negative quantities.
func (r CheckoutRequest) Consumption() map[string]int {
	out := make(map[string]int, len(r.MinibarConsumption))
	for id, qty := range r.MinibarConsumption {
		if qty.Int() > 0 {
			out[id] = qty.Int()
		}
	}
	return out
}

type PricingPreviewRequest struct {
	RoomStays      []RoomStayRequest `json:"room_stays"`
	AdvancePayment PaymentRequest    `json:"advance_payment"`
}

func (r PricingPreviewRequest) Stays() []booking.RoomStay {
	return staysToDomain(r.RoomStays)
}

func (r PricingPreviewRequest) Advance() decimal.Decimal {
	return r.AdvancePayment.Amount.Decimal()
}

type ListBookingsQuery struct {
	View     string `form:"view"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1"`
}

func (q ListBookingsQuery) ToParams() queries.ListParams {
	return queries.ListParams{
		View:     booking.View(q.View),
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

type AvailabilityQuery struct {
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
	Exclude  string `form:"exclude"`
}

func (q AvailabilityQuery) ToParams() queries.AvailabilityParams {
	return queries.AvailabilityParams{
		CheckIn:              lenient.ParseDate(q.CheckIn),
		CheckOut:             lenient.ParseDate(q.CheckOut),
		ExcludeReservationID: q.Exclude,
	}
}
