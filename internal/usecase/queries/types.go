package queries

import (
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/extra"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/domain/settings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingView is the read model of one booking with its derived totals.
type BookingView struct {
	ReservationID      string
	Guest              booking.GuestInfo
	Stays              []booking.RoomStay
	AdvancePayment     booking.Payment
	TotalReceived      booking.Payment
	MinibarConsumption map[string]int
	MinibarTotal       decimal.Decimal
	TotalAmount        decimal.Decimal
	TotalDue           decimal.Decimal
	CheckInStatus      bool
	Status             booking.Status
	State              booking.State
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ReservationID:      b.ReservationID(),
		Guest:              b.Guest(),
		Stays:              b.Stays(),
		AdvancePayment:     b.AdvancePayment(),
		TotalReceived:      b.TotalReceived(),
		MinibarConsumption: b.MinibarConsumption(),
		MinibarTotal:       b.MinibarTotal(),
		TotalAmount:        b.TotalAmount(),
		TotalDue:           b.TotalDue(),
		CheckInStatus:      b.CheckInStatus(),
		Status:             b.Status(),
		State:              b.State(),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}
}

type BookingPage struct {
	Items    []*BookingView
	Total    int
	Page     int
	PageSize int
}

func (p BookingPage) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

type RoomView struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRoomView(r *room.Room) *RoomView {
	return &RoomView{ID: r.ID(), Name: r.Name(), Type: r.Type(), CreatedAt: r.CreatedAt(), UpdatedAt: r.UpdatedAt()}
}

type ExtraView struct {
	ID    string
	Name  string
	Kind  string
	Price decimal.Decimal
}

func NewExtraView(e *extra.Extra) *ExtraView {
	return &ExtraView{ID: e.ID(), Name: e.Name(), Kind: string(e.Kind()), Price: e.Price()}
}

type MinibarItemView struct {
	ID       string
	Name     string
	Category string
	Stock    int
	Price    decimal.Decimal
}

func NewMinibarItemView(it *minibar.Item) *MinibarItemView {
	return &MinibarItemView{
		ID:       it.ID(),
		Name:     it.Name(),
		Category: string(it.Category()),
		Stock:    it.Stock(),
		Price:    it.Price(),
	}
}

type SettingsView struct {
	HotelName    string
	AddressLine1 string
	AddressLine2 string
	Phone        string
	Email        string
	LogoURL      string
	Language     string
	Currency     string
	UpdatedAt    time.Time
}

func NewSettingsView(s settings.Settings) *SettingsView {
	return &SettingsView{
		HotelName:    s.HotelName,
		AddressLine1: s.AddressLine1,
		AddressLine2: s.AddressLine2,
		Phone:        s.Phone,
		Email:        s.Email,
		LogoURL:      s.LogoURL,
		Language:     s.Language,
		Currency:     s.Currency,
		UpdatedAt:    s.UpdatedAt,
	}
}

type ShortfallView struct {
	ID            uuid.UUID
	ReservationID string
	ItemID        string
	Quantity      int
	Status        string
	Attempts      int
	LastError     string
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

func NewShortfallView(s minibar.Shortfall) *ShortfallView {
	return &ShortfallView{
		ID:            s.ID,
		ReservationID: s.ReservationID,
		ItemID:        s.ItemID,
		Quantity:      s.Quantity,
		Status:        string(s.Status),
		Attempts:      s.Attempts,
		LastError:     s.LastError,
		CreatedAt:     s.CreatedAt,
		ResolvedAt:    s.ResolvedAt,
	}
}

// StaffView is the signed-in staff member as the API sees it.
type StaffView struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     string
	IsActive bool
}

// RevenueReport buckets non-cancelled bookings by their first check-in date.
type RevenueReport struct {
	AllTime     RevenueBucket
	Year        RevenueBucket
	Month       RevenueBucket
	Today       RevenueBucket
	ReportYear  int
	ReportMonth int
	ByStatus    map[booking.Status]int
}

type RevenueBucket struct {
	Revenue  decimal.Decimal
	Bookings int
}

type MinibarSaleRow struct {
	ReservationID string
	GuestName     string
	SaleDate      time.Time
	ItemID        string
	ItemName      string
	Category      string
	Quantity      int
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
}

type MinibarSalesReport struct {
	Year     int
	Month    int
	Rows     []MinibarSaleRow
	Quantity int
	Total    decimal.Decimal
}
