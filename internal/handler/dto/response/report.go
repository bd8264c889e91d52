package response

import (
	"time"

	"hotel-frontdesk/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ExtraSummaryResponse struct {
	Name         string          `json:"name"`
	Kind         string          `json:"kind"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Nights       int             `json:"nights"`
	Total        decimal.Decimal `json:"total"`
}

type StaySummaryResponse struct {
	RoomID        string                 `json:"room_id"`
	RoomName      string                 `json:"room_name"`
	RoomType      string                 `json:"room_type"`
	CheckInDate   string                 `json:"check_in_date"`
	CheckOutDate  string                 `json:"check_out_date"`
	Nights        int                    `json:"nights"`
	PricePerNight decimal.Decimal        `json:"price_per_night"`
	RoomTotal     decimal.Decimal        `json:"room_total"`
	Adults        int                    `json:"adults"`
	Children      int                    `json:"children"`
	Extras        []ExtraSummaryResponse `json:"extras"`
	ExtrasTotal   decimal.Decimal        `json:"extras_total"`
}

type MinibarLineResponse struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

type SummaryResponse struct {
	ReservationID  string                `json:"reservation_id"`
	Guest          GuestInfoResponse     `json:"guest_info"`
	State          string                `json:"state"`
	Stays          []StaySummaryResponse `json:"room_stays"`
	Minibar        []MinibarLineResponse `json:"minibar"`
	TotalAmount    decimal.Decimal       `json:"total_amount"`
	MinibarTotal   decimal.Decimal       `json:"minibar_total"`
	AdvancePayment PaymentResponse       `json:"advance_payment"`
	TotalReceived  PaymentResponse       `json:"total_received"`
	TotalPaid      decimal.Decimal       `json:"total_paid"`
	TotalDue       decimal.Decimal       `json:"total_due"`
	CreatedAt      time.Time             `json:"created_at"`
	Hotel          *SettingsResponse     `json:"hotel" copier:"-"`
}

func FromSummaryView(v *queries.BookingSummaryView) *SummaryResponse {
	out := copyInto[SummaryResponse](v.Summary)
	out.Hotel = FromSettingsView(v.Hotel)
	return out
}

type RevenueBucketResponse struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Bookings int             `json:"bookings"`
}

type RevenueResponse struct {
	AllTime     RevenueBucketResponse `json:"all_time"`
	Year        RevenueBucketResponse `json:"year"`
	Month       RevenueBucketResponse `json:"month"`
	Today       RevenueBucketResponse `json:"today"`
	ReportYear  int                   `json:"report_year"`
	ReportMonth int                   `json:"report_month"`
	ByStatus    map[string]int        `json:"by_status" copier:"-"`
}

func FromRevenueReport(r *queries.RevenueReport) *RevenueResponse {
	out := copyInto[RevenueResponse](r)
	out.ByStatus = make(map[string]int, len(r.ByStatus))
	for status, n := range r.ByStatus {
		out.ByStatus[string(status)] = n
	}
	return out
}

type MinibarSaleResponse struct {
	ReservationID string          `json:"reservation_id"`
	GuestName     string          `json:"guest_name"`
	SaleDate      string          `json:"sale_date"`
	ItemID        string          `json:"item_id"`
	ItemName      string          `json:"item_name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
}

type MinibarSalesResponse struct {
	Year     int                   `json:"year"`
	Month    int                   `json:"month"`
	Rows     []MinibarSaleResponse `json:"rows"`
	Quantity int                   `json:"quantity"`
	Total    decimal.Decimal       `json:"total"`
}

func FromMinibarSalesReport(r *queries.MinibarSalesReport) *MinibarSalesResponse {
	out := copyInto[MinibarSalesResponse](r)
	if out.Rows == nil {
		out.Rows = []MinibarSaleResponse{}
	}
	return out
}
