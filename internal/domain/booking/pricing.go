package booking

import (
	"math"
	"time"

	"hotel-frontdesk/internal/domain/extra"

	"github.com/shopspring/decimal"
)

// The pricing functions are pure and total. Malformed numbers are coerced to
// zero before they get here (see pkg/lenient), so nothing below can fail.

const day = 24 * time.Hour

// NightsBetween is ceil(checkOut - checkIn) in days, or 0 when either date is
// missing or the range is empty or reversed.
func NightsBetween(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(float64(diff) / float64(day)))
}

func RoomStayTotal(s RoomStay) decimal.Decimal {
	return s.PricePerNight.Mul(decimal.NewFromInt(int64(s.Nights())))
}

func ExtraLineTotal(l ExtraLine) decimal.Decimal {
	nights := l.Nights
	if nights < 1 || l.Kind == extra.KindAddon {
		nights = 1
	}
	return l.PricePerUnit.
		Mul(decimal.NewFromInt(int64(l.Quantity))).
		Mul(decimal.NewFromInt(int64(nights)))
}

func ExtrasTotal(s RoomStay) decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Extras {
		total = total.Add(ExtraLineTotal(l))
	}
	return total
}

// StaysTotal is room nights plus extras over every stay.
func StaysTotal(stays []RoomStay) decimal.Decimal {
	total := decimal.Zero
	for _, s := range stays {
		total = total.Add(RoomStayTotal(s)).Add(ExtrasTotal(s))
	}
	return total
}

// MinibarTotal prices consumption against the catalog. Ids missing from the
// catalog contribute nothing.
func MinibarTotal(consumption map[string]int, prices map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for id, qty := range consumption {
		price, ok := prices[id]
		if !ok || qty <= 0 {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// Due is max(0, total - advance - received).
func Due(total, advance, received decimal.Decimal) decimal.Decimal {
	due := total.Sub(advance).Sub(received)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

func BookingTotal(b *Booking) decimal.Decimal {
	return StaysTotal(b.stays)
}

func TotalDue(b *Booking) decimal.Decimal {
	return Due(BookingTotal(b), b.advancePayment.Amount, b.totalReceived.Amount)
}

// Quote is the priced breakdown of a set of stays, used for previews and
// booking summaries.
type Quote struct {
	Stays        []StayQuote
	TotalAmount  decimal.Decimal
	Advance      decimal.Decimal
	Received     decimal.Decimal
	TotalDue     decimal.Decimal
	MinibarTotal decimal.Decimal
}

type StayQuote struct {
	RoomID      string
	Nights      int
	RoomTotal   decimal.Decimal
	ExtrasTotal decimal.Decimal
	Lines       []LineQuote
}

type LineQuote struct {
	Name   string
	Kind   extra.Kind
	Total  decimal.Decimal
	Nights int
}

func NewQuote(stays []RoomStay, advance, received decimal.Decimal) Quote {
	q := Quote{
		Stays:    make([]StayQuote, 0, len(stays)),
		Advance:  advance,
		Received: received,
	}
	stays = normalizeStays(stays)
	for _, s := range stays {
		sq := StayQuote{
			RoomID:      s.RoomID,
			Nights:      s.Nights(),
			RoomTotal:   RoomStayTotal(s),
			ExtrasTotal: ExtrasTotal(s),
			Lines:       make([]LineQuote, 0, len(s.Extras)),
		}
		for _, l := range s.Extras {
			sq.Lines = append(sq.Lines, LineQuote{Name: l.Name, Kind: l.Kind, Total: ExtraLineTotal(l), Nights: l.Nights})
		}
		q.Stays = append(q.Stays, sq)
	}
	q.TotalAmount = StaysTotal(stays)
	q.TotalDue = Due(q.TotalAmount, advance, received)
	return q
}
