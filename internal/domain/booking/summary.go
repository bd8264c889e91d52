package booking

import (
	"sort"
	"time"

	"hotel-frontdesk/internal/domain/extra"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/domain/room"

	"github.com/shopspring/decimal"
)

// Summary is the printable projection of a booking. It is a pure function of
// the booking and the two catalogs, so it is recomputed on every read.
type Summary struct {
	ReservationID  string
	Guest          GuestInfo
	State          State
	Stays          []StaySummary
	Minibar        []MinibarLine
	TotalAmount    decimal.Decimal
	MinibarTotal   decimal.Decimal
	AdvancePayment Payment
	TotalReceived  Payment
	TotalPaid      decimal.Decimal
	TotalDue       decimal.Decimal
	CreatedAt      time.Time
}

type StaySummary struct {
	RoomID        string
	RoomName      string
	RoomType      string
	CheckInDate   time.Time
	CheckOutDate  time.Time
	Nights        int
	PricePerNight decimal.Decimal
	RoomTotal     decimal.Decimal
	Adults        int
	Children      int
	Extras        []ExtraSummary
	ExtrasTotal   decimal.Decimal
}

type ExtraSummary struct {
	Name         string
	Kind         extra.Kind
	Quantity     int
	PricePerUnit decimal.Decimal
	Nights       int
	Total        decimal.Decimal
}

type MinibarLine struct {
	ItemID    string
	Name      string
	Category  minibar.Category
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Summarize renders b against the room and minibar catalogs. Unknown rooms
// keep an empty name; unknown items are listed at zero price.
func Summarize(b *Booking, rooms []*room.Room, items []*minibar.Item) Summary {
	roomByID := make(map[string]*room.Room, len(rooms))
	for _, r := range rooms {
		roomByID[r.ID()] = r
	}
	itemByID := make(map[string]*minibar.Item, len(items))
	for _, it := range items {
		itemByID[it.ID()] = it
	}

	s := Summary{
		ReservationID:  b.reservationID,
		Guest:          b.guest,
		State:          b.State(),
		Stays:          make([]StaySummary, 0, len(b.stays)),
		TotalAmount:    BookingTotal(b),
		AdvancePayment: b.advancePayment,
		TotalReceived:  b.totalReceived,
		TotalPaid:      b.advancePayment.Amount.Add(b.totalReceived.Amount),
		TotalDue:       TotalDue(b),
		CreatedAt:      b.createdAt,
	}

	for _, st := range b.stays {
		ss := StaySummary{
			RoomID:        st.RoomID,
			CheckInDate:   st.CheckInDate,
			CheckOutDate:  st.CheckOutDate,
			Nights:        st.Nights(),
			PricePerNight: st.PricePerNight,
			RoomTotal:     RoomStayTotal(st),
			Adults:        st.Adults,
			Children:      st.Children,
			Extras:        make([]ExtraSummary, 0, len(st.Extras)),
			ExtrasTotal:   ExtrasTotal(st),
		}
		if r, ok := roomByID[st.RoomID]; ok {
			ss.RoomName = r.Name()
			ss.RoomType = r.Type()
		}
		for _, l := range st.Extras {
			ss.Extras = append(ss.Extras, ExtraSummary{
				Name:         l.Name,
				Kind:         l.Kind,
				Quantity:     l.Quantity,
				PricePerUnit: l.PricePerUnit,
				Nights:       l.normalized().Nights,
				Total:        ExtraLineTotal(l),
			})
		}
		s.Stays = append(s.Stays, ss)
	}

	ids := make([]string, 0, len(b.minibarConsumption))
	for id := range b.minibarConsumption {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	prices := make(map[string]decimal.Decimal, len(items))
	for _, id := range ids {
		line := MinibarLine{ItemID: id, Quantity: b.minibarConsumption[id]}
		if it, ok := itemByID[id]; ok {
			line.Name = it.Name()
			line.Category = it.Category()
			line.UnitPrice = it.Price()
			prices[id] = it.Price()
		}
		line.Total = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		s.Minibar = append(s.Minibar, line)
	}
	s.MinibarTotal = MinibarTotal(b.minibarConsumption, prices)

	return s
}
