package response

import (
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

type GuestInfoResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type ExtraLineResponse struct {
	Name         string          `json:"name"`
	Kind         string          `json:"kind"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Nights       int             `json:"nights"`
}

type RoomStayResponse struct {
	CheckInDate   string              `json:"check_in_date"`
	CheckOutDate  string              `json:"check_out_date"`
	RoomID        string              `json:"room_id"`
	PricePerNight decimal.Decimal     `json:"price_per_night"`
	Adults        int                 `json:"adults"`
	Children      int                 `json:"children"`
	Nights        int                 `json:"nights"`
	Extras        []ExtraLineResponse `json:"extras"`
}

type PaymentResponse struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

type BookingResponse struct {
	ReservationID      string             `json:"reservation_id"`
	GuestInfo          GuestInfoResponse  `json:"guest_info"`
	RoomStays          []RoomStayResponse `json:"room_stays"`
	AdvancePayment     PaymentResponse    `json:"advance_payment"`
	TotalReceived      PaymentResponse    `json:"total_received"`
	MinibarConsumption map[string]int     `json:"minibar_consumption"`
	MinibarTotal       decimal.Decimal    `json:"minibar_total"`
	TotalAmount        decimal.Decimal    `json:"total_amount"`
	TotalDue           decimal.Decimal    `json:"total_due"`
	CheckInStatus      bool               `json:"check_in_status"`
	Status             string             `json:"status"`
	State              string             `json:"state"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func fromPayment(p booking.Payment) PaymentResponse {
	return PaymentResponse{Method: string(p.Method), Amount: p.Amount}
}

func fromStays(stays []booking.RoomStay) []RoomStayResponse {
	out := make([]RoomStayResponse, 0, len(stays))
	for _, s := range stays {
		extras := make([]ExtraLineResponse, 0, len(s.Extras))
		for _, l := range s.Extras {
			extras = append(extras, ExtraLineResponse{
				Name:         l.Name,
				Kind:         string(l.Kind),
				Quantity:     l.Quantity,
				PricePerUnit: l.PricePerUnit,
				Nights:       l.Nights,
			})
		}
		out = append(out, RoomStayResponse{
			CheckInDate:   formatDate(s.CheckInDate),
			CheckOutDate:  formatDate(s.CheckOutDate),
			RoomID:        s.RoomID,
			PricePerNight: s.PricePerNight,
			Adults:        s.Adults,
			Children:      s.Children,
			Nights:        s.Nights(),
			Extras:        extras,
		})
	}
	return out
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ReservationID:      v.ReservationID,
		GuestInfo:          GuestInfoResponse(v.Guest),
		RoomStays:          fromStays(v.Stays),
		AdvancePayment:     fromPayment(v.AdvancePayment),
		TotalReceived:      fromPayment(v.TotalReceived),
		MinibarConsumption: v.MinibarConsumption,
		MinibarTotal:       v.MinibarTotal,
		TotalAmount:        v.TotalAmount,
		TotalDue:           v.TotalDue,
		CheckInStatus:      v.CheckInStatus,
		Status:             string(v.Status),
		State:              string(v.State),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

func FromBookingPage(p *queries.BookingPage) *BookingListResponse {
	items := make([]*BookingResponse, 0, len(p.Items))
	for _, v := range p.Items {
		items = append(items, FromBookingView(v))
	}
	return &BookingListResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(),
	}
}

type StockOutcomeResponse struct {
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	Stock     int    `json:"stock"`
	Shortfall bool   `json:"shortfall"`
	Error     string `json:"error,omitempty"`
}

type CheckoutResponse struct {
	Booking *BookingResponse       `json:"booking"`
	Stock   []StockOutcomeResponse `json:"stock"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	stock := make([]StockOutcomeResponse, 0, len(r.Stock))
	for _, o := range r.Stock {
		s := StockOutcomeResponse{ItemID: o.ItemID, Quantity: o.Quantity, Stock: o.Stock, Shortfall: o.Shortfall}
		if !o.OK() {
			s.Error = o.Err.Error()
		}
		stock = append(stock, s)
	}
	return &CheckoutResponse{Booking: FromBookingView(r.Booking), Stock: stock}
}

type LineQuoteResponse struct {
	Name   string          `json:"name"`
	Kind   string          `json:"kind"`
	Nights int             `json:"nights"`
	Total  decimal.Decimal `json:"total"`
}

type StayQuoteResponse struct {
	RoomID      string              `json:"room_id"`
	Nights      int                 `json:"nights"`
	RoomTotal   decimal.Decimal     `json:"room_total"`
	ExtrasTotal decimal.Decimal     `json:"extras_total"`
	Lines       []LineQuoteResponse `json:"lines"`
}

type QuoteResponse struct {
	Stays       []StayQuoteResponse `json:"stays"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Advance     decimal.Decimal     `json:"advance"`
	TotalDue    decimal.Decimal     `json:"total_due"`
}

func FromQuote(q booking.Quote) *QuoteResponse {
	stays := make([]StayQuoteResponse, 0, len(q.Stays))
	for _, s := range q.Stays {
		lines := make([]LineQuoteResponse, 0, len(s.Lines))
		for _, l := range s.Lines {
			lines = append(lines, LineQuoteResponse{Name: l.Name, Kind: string(l.Kind), Nights: l.Nights, Total: l.Total})
		}
		stays = append(stays, StayQuoteResponse{
			RoomID:      s.RoomID,
			Nights:      s.Nights,
			RoomTotal:   s.RoomTotal,
			ExtrasTotal: s.ExtrasTotal,
			Lines:       lines,
		})
	}
	return &QuoteResponse{Stays: stays, TotalAmount: q.TotalAmount, Advance: q.Advance, TotalDue: q.TotalDue}
}
