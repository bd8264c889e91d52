package booking

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	reservationID      string
	guest              GuestInfo
	stays              []RoomStay
	advancePayment     Payment
	totalReceived      Payment
	minibarConsumption map[string]int
	minibarTotal       decimal.Decimal
	checkInStatus      bool
	status             Status
	createdAt          time.Time
	updatedAt          time.Time
}

// Draft is the unsaved input of a new booking.
type Draft struct {
	Guest            GuestInfo
	Stays            []RoomStay
	AdvancePayment   Payment
	CheckInRequested bool
	ManagerAck       bool
}

// New validates the draft and returns an ACTIVE booking under id.
func New(id string, d Draft, now time.Time) (*Booking, error) {
	if !IsReservationID(id) {
		return nil, ErrInvalidID
	}
	if err := guard(StateDraft, ActionCreate); err != nil {
		return nil, err
	}
	guest := d.Guest.trimmed()
	stays := normalizeStays(d.Stays)

	verr := &ValidationError{}
	validateContent(verr, guest, stays, d.AdvancePayment)
	if d.CheckInRequested && !d.ManagerAck {
		verr.add("managerAck", "manager acknowledgement is required to check in")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return &Booking{
		reservationID:      id,
		guest:              guest,
		stays:              stays,
		advancePayment:     d.AdvancePayment,
		totalReceived:      Payment{Method: d.AdvancePayment.Method},
		minibarConsumption: map[string]int{},
		checkInStatus:      d.CheckInRequested,
		status:             StatusActive,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ValidateDraft runs the create checks without building a booking.
func ValidateDraft(d Draft) error {
	verr := &ValidationError{}
	validateContent(verr, d.Guest.trimmed(), normalizeStays(d.Stays), d.AdvancePayment)
	if d.CheckInRequested && !d.ManagerAck {
		verr.add("managerAck", "manager acknowledgement is required to check in")
	}
	return verr.orNil()
}

func Reconstruct(
	reservationID string,
	guest GuestInfo,
	stays []RoomStay,
	advancePayment, totalReceived Payment,
	minibarConsumption map[string]int,
	minibarTotal decimal.Decimal,
	checkInStatus bool,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	if minibarConsumption == nil {
		minibarConsumption = map[string]int{}
	}
	return &Booking{
		reservationID:      reservationID,
		guest:              guest,
		stays:              stays,
		advancePayment:     advancePayment,
		totalReceived:      totalReceived,
		minibarConsumption: minibarConsumption,
		minibarTotal:       minibarTotal,
		checkInStatus:      checkInStatus,
		status:             status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func validateContent(verr *ValidationError, g GuestInfo, stays []RoomStay, advance Payment) {
	for _, f := range []struct{ name, value string }{
		{"guest.name", g.Name},
		{"guest.email", g.Email},
		{"guest.phone", g.Phone},
		{"guest.address", g.Address},
		{"guest.city", g.City},
		{"guest.country", g.Country},
	} {
		if f.value == "" {
			verr.add(f.name, "required")
		}
	}

	if len(stays) == 0 {
		verr.add("roomStays", "at least one room stay is required")
	}
	for i, s := range stays {
		validateStay(verr, i, s)
	}

	if advance.Amount.IsNegative() {
		verr.add("advancePayment.amount", "must not be negative")
	}
}

func validateStay(verr *ValidationError, i int, s RoomStay) {
	prefix := "roomStays[" + strconv.Itoa(i) + "]"
	if s.CheckInDate.IsZero() {
		verr.add(prefix+".checkInDate", "required")
	}
	if s.CheckOutDate.IsZero() {
		verr.add(prefix+".checkOutDate", "required")
	}
	if !s.CheckInDate.IsZero() && !s.CheckOutDate.IsZero() && s.CheckOutDate.Before(s.CheckInDate) {
		verr.add(prefix+".checkOutDate", "must not be before check-in")
	}
	if s.RoomID == "" {
		verr.add(prefix+".roomId", "required")
	}
	if !s.PricePerNight.IsPositive() {
		verr.add(prefix+".pricePerNight", "must be greater than zero")
	}
	if s.Adults < 1 {
		verr.add(prefix+".adults", "at least one adult")
	}
	if s.Children < 0 {
		verr.add(prefix+".children", "must not be negative")
	}
	for j, l := range s.Extras {
		lp := prefix + ".extras[" + strconv.Itoa(j) + "]"
		if l.Name == "" {
			verr.add(lp+".name", "required")
		}
		if l.Quantity < 0 {
			verr.add(lp+".quantity", "must not be negative")
		}
		if l.PricePerUnit.IsNegative() {
			verr.add(lp+".price", "must not be negative")
		}
	}
}

func (b *Booking) ReservationID() string              { return b.reservationID }
func (b *Booking) Guest() GuestInfo                   { return b.guest }
func (b *Booking) Stays() []RoomStay                  { return cloneStays(b.stays) }
func (b *Booking) AdvancePayment() Payment            { return b.advancePayment }
func (b *Booking) TotalReceived() Payment             { return b.totalReceived }
func (b *Booking) MinibarConsumption() map[string]int { return cloneConsumption(b.minibarConsumption) }
func (b *Booking) MinibarTotal() decimal.Decimal      { return b.minibarTotal }
func (b *Booking) CheckInStatus() bool                { return b.checkInStatus }
func (b *Booking) Status() Status                     { return b.status }
func (b *Booking) CreatedAt() time.Time               { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time               { return b.updatedAt }
func (b *Booking) State() State                       { return StateOf(b.status, b.checkInStatus) }
func (b *Booking) IsPending() bool                    { return b.status == StatusActive && !b.checkInStatus }
func (b *Booking) TotalAmount() decimal.Decimal       { return BookingTotal(b) }
func (b *Booking) TotalDue() decimal.Decimal          { return TotalDue(b) }
func (b *Booking) FirstCheckIn() time.Time            { return FirstCheckIn(b.stays) }
func (b *Booking) RoomIDs() []string                  { return roomIDs(b.stays) }

// FirstCheckIn is the earliest set check-in date across stays, or the zero
// time when there is none.
func FirstCheckIn(stays []RoomStay) time.Time {
	var first time.Time
	for _, s := range stays {
		if first.IsZero() || (!s.CheckInDate.IsZero() && s.CheckInDate.Before(first)) {
			first = s.CheckInDate
		}
	}
	return first
}

func roomIDs(stays []RoomStay) []string {
	out := make([]string, 0, len(stays))
	for _, s := range stays {
		out = append(out, s.RoomID)
	}
	return out
}
