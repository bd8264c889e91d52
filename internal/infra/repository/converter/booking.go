package converter

import (
	"encoding/json"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/extra"

	"github.com/shopspring/decimal"
)

// JSONB documents stored on the bookings row. Dates are calendar days.

type GuestDoc struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type PaymentDoc struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

type ExtraDoc struct {
	Name         string          `json:"name"`
	Kind         string          `json:"kind"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price"`
	Nights       int             `json:"nights"`
}

type StayDoc struct {
	CheckInDate   string          `json:"check_in_date"`
	CheckOutDate  string          `json:"check_out_date"`
	RoomID        string          `json:"room_id"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Adults        int             `json:"adults"`
	Children      int             `json:"children"`
	Extras        []ExtraDoc      `json:"extras"`
}

// BookingRow is the column set of the bookings table.
type BookingRow struct {
	ReservationID      string
	GuestInfo          []byte
	RoomStays          []byte
	AdvancePayment     []byte
	TotalReceived      []byte
	MinibarConsumption []byte
	MinibarTotal       decimal.Decimal
	TotalAmount        decimal.Decimal
	TotalDue           decimal.Decimal
	CheckInStatus      bool
	Status             string
	FirstCheckIn       time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func BookingToRow(b *booking.Booking) (BookingRow, error) {
	guest, err := GuestToJSON(b.Guest())
	if err != nil {
		return BookingRow{}, err
	}
	stays, err := StaysToJSON(b.Stays())
	if err != nil {
		return BookingRow{}, err
	}
	advance, err := PaymentToJSON(b.AdvancePayment())
	if err != nil {
		return BookingRow{}, err
	}
	received, err := PaymentToJSON(b.TotalReceived())
	if err != nil {
		return BookingRow{}, err
	}
	consumption, err := json.Marshal(b.MinibarConsumption())
	if err != nil {
		return BookingRow{}, err
	}

	return BookingRow{
		ReservationID:      b.ReservationID(),
		GuestInfo:          guest,
		RoomStays:          stays,
		AdvancePayment:     advance,
		TotalReceived:      received,
		MinibarConsumption: consumption,
		MinibarTotal:       b.MinibarTotal(),
		TotalAmount:        b.TotalAmount(),
		TotalDue:           b.TotalDue(),
		CheckInStatus:      b.CheckInStatus(),
		Status:             b.Status().String(),
		FirstCheckIn:       b.FirstCheckIn(),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}, nil
}

func BookingFromRow(row BookingRow) (*booking.Booking, error) {
	var guest GuestDoc
	if err := json.Unmarshal(row.GuestInfo, &guest); err != nil {
		return nil, err
	}
	var stays []StayDoc
	if err := json.Unmarshal(row.RoomStays, &stays); err != nil {
		return nil, err
	}
	var advance, received PaymentDoc
	if err := json.Unmarshal(row.AdvancePayment, &advance); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(row.TotalReceived, &received); err != nil {
		return nil, err
	}
	consumption := map[string]int{}
	if len(row.MinibarConsumption) > 0 {
		if err := json.Unmarshal(row.MinibarConsumption, &consumption); err != nil {
			return nil, err
		}
	}

	return booking.Reconstruct(
		row.ReservationID,
		guestFromDoc(guest),
		staysFromDocs(stays),
		paymentFromDoc(advance),
		paymentFromDoc(received),
		consumption,
		row.MinibarTotal,
		row.CheckInStatus,
		booking.Status(row.Status),
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

func GuestToJSON(g booking.GuestInfo) ([]byte, error) {
	return json.Marshal(GuestDoc{
		Name:    g.Name,
		Email:   g.Email,
		Phone:   g.Phone,
		Address: g.Address,
		City:    g.City,
		Country: g.Country,
	})
}

func PaymentToJSON(p booking.Payment) ([]byte, error) {
	return json.Marshal(PaymentDoc{Method: string(p.Method), Amount: p.Amount})
}

func StaysToJSON(stays []booking.RoomStay) ([]byte, error) {
	docs := make([]StayDoc, 0, len(stays))
	for _, s := range stays {
		extras := make([]ExtraDoc, 0, len(s.Extras))
		for _, l := range s.Extras {
			extras = append(extras, ExtraDoc{
				Name:         l.Name,
				Kind:         string(l.Kind),
				Quantity:     l.Quantity,
				PricePerUnit: l.PricePerUnit,
				Nights:       l.Nights,
			})
		}
		docs = append(docs, StayDoc{
			CheckInDate:   formatDay(s.CheckInDate),
			CheckOutDate:  formatDay(s.CheckOutDate),
			RoomID:        s.RoomID,
			PricePerNight: s.PricePerNight,
			Adults:        s.Adults,
			Children:      s.Children,
			Extras:        extras,
		})
	}
	return json.Marshal(docs)
}

func guestFromDoc(d GuestDoc) booking.GuestInfo {
	return booking.GuestInfo{
		Name:    d.Name,
		Email:   d.Email,
		Phone:   d.Phone,
		Address: d.Address,
		City:    d.City,
		Country: d.Country,
	}
}

func paymentFromDoc(d PaymentDoc) booking.Payment {
	return booking.Payment{Method: booking.ParsePaymentMethod(d.Method), Amount: d.Amount}
}

func staysFromDocs(docs []StayDoc) []booking.RoomStay {
	out := make([]booking.RoomStay, 0, len(docs))
	for _, d := range docs {
		extras := make([]booking.ExtraLine, 0, len(d.Extras))
		for _, e := range d.Extras {
			extras = append(extras, booking.ExtraLine{
				Name:         e.Name,
				Kind:         extra.Kind(e.Kind),
				Quantity:     e.Quantity,
				PricePerUnit: e.PricePerUnit,
				Nights:       e.Nights,
			})
		}
		out = append(out, booking.RoomStay{
			CheckInDate:   parseDay(d.CheckInDate),
			CheckOutDate:  parseDay(d.CheckOutDate),
			RoomID:        d.RoomID,
			PricePerNight: d.PricePerNight,
			Adults:        d.Adults,
			Children:      d.Children,
			Extras:        extras,
		})
	}
	return out
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func parseDay(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// bookingDoc is the self-contained JSON form of a booking, used by caches.
type bookingDoc struct {
	ReservationID      string          `json:"reservation_id"`
	GuestInfo          json.RawMessage `json:"guest_info"`
	RoomStays          json.RawMessage `json:"room_stays"`
	AdvancePayment     json.RawMessage `json:"advance_payment"`
	TotalReceived      json.RawMessage `json:"total_received"`
	MinibarConsumption json.RawMessage `json:"minibar_consumption"`
	MinibarTotal       decimal.Decimal `json:"minibar_total"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	TotalDue           decimal.Decimal `json:"total_due"`
	CheckInStatus      bool            `json:"check_in_status"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func MarshalBooking(b *booking.Booking) ([]byte, error) {
	row, err := BookingToRow(b)
	if err != nil {
		return nil, err
	}
	return json.Marshal(bookingDoc{
		ReservationID:      row.ReservationID,
		GuestInfo:          row.GuestInfo,
		RoomStays:          row.RoomStays,
		AdvancePayment:     row.AdvancePayment,
		TotalReceived:      row.TotalReceived,
		MinibarConsumption: row.MinibarConsumption,
		MinibarTotal:       row.MinibarTotal,
		TotalAmount:        row.TotalAmount,
		TotalDue:           row.TotalDue,
		CheckInStatus:      row.CheckInStatus,
		Status:             row.Status,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	})
}

func UnmarshalBooking(data []byte) (*booking.Booking, error) {
	var d bookingDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return BookingFromRow(BookingRow{
		ReservationID:      d.ReservationID,
		GuestInfo:          d.GuestInfo,
		RoomStays:          d.RoomStays,
		AdvancePayment:     d.AdvancePayment,
		TotalReceived:      d.TotalReceived,
		MinibarConsumption: d.MinibarConsumption,
		MinibarTotal:       d.MinibarTotal,
		TotalAmount:        d.TotalAmount,
		TotalDue:           d.TotalDue,
		CheckInStatus:      d.CheckInStatus,
		Status:             d.Status,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	})
}
