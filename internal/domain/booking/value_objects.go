package booking

import (
	"strings"
	"time"

	"hotel-frontdesk/internal/domain/extra"

	"github.com/shopspring/decimal"
)

type GuestInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Country string
}

func (g GuestInfo) trimmed() GuestInfo {
	return GuestInfo{
		Name:    strings.TrimSpace(g.Name),
		Email:   strings.TrimSpace(g.Email),
		Phone:   strings.TrimSpace(g.Phone),
		Address: strings.TrimSpace(g.Address),
		City:    strings.TrimSpace(g.City),
		Country: strings.TrimSpace(g.Country),
	}
}

type Payment struct {
	Method PaymentMethod
	Amount decimal.Decimal
}

func NewPayment(method string, amount decimal.Decimal) Payment {
	return Payment{Method: ParsePaymentMethod(method), Amount: amount}
}

type RoomStay struct {
	CheckInDate   time.Time
	CheckOutDate  time.Time
	RoomID        string
	PricePerNight decimal.Decimal
	Adults        int
	Children      int
	Extras        []ExtraLine
}

func (s RoomStay) Nights() int {
	return NightsBetween(s.CheckInDate, s.CheckOutDate)
}

type ExtraLine struct {
	Name         string
	Kind         extra.Kind
	Quantity     int
	PricePerUnit decimal.Decimal
	Nights       int
}

// normalized applies the line defaults: unset nights is one night, addons are
// always one night.
func (l ExtraLine) normalized() ExtraLine {
	l.Name = strings.TrimSpace(l.Name)
	if l.Kind == "" {
		l.Kind = extra.KindExtra
	}
	if l.Nights < 1 || l.Kind == extra.KindAddon {
		l.Nights = 1
	}
	return l
}

// Date truncates t to its calendar day in UTC. The zero time stays zero.
func Date(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeStays(stays []RoomStay) []RoomStay {
	out := make([]RoomStay, len(stays))
	for i, s := range stays {
		s.RoomID = strings.TrimSpace(s.RoomID)
		s.CheckInDate = Date(s.CheckInDate)
		s.CheckOutDate = Date(s.CheckOutDate)
		extras := make([]ExtraLine, len(s.Extras))
		for j, l := range s.Extras {
			extras[j] = l.normalized()
		}
		s.Extras = extras
		out[i] = s
	}
	return out
}

func cloneStays(stays []RoomStay) []RoomStay {
	out := make([]RoomStay, len(stays))
	for i, s := range stays {
		s.Extras = append([]ExtraLine(nil), s.Extras...)
		out[i] = s
	}
	return out
}

func cloneConsumption(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
