package response

import (
	"time"

	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// copyOptions renders calendar days as YYYY-MM-DD wherever a response field
// is a string and the source a time.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return formatDate(src.(time.Time)), nil
			},
		},
	},
}

// copyInto maps a read model onto its response DTO by field name.
func copyInto[T any](src any) *T {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		panic("response mapping: " + err.Error())
	}
	return dst
}

func copyAll[T any, S any](src []S) []*T {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		out = append(out, copyInto[T](s))
	}
	return out
}

type RoomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse { return copyInto[RoomResponse](v) }

func FromRoomViews(vs []*queries.RoomView) []*RoomResponse { return copyAll[RoomResponse](vs) }

type ExtraResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Kind  string          `json:"kind"`
	Price decimal.Decimal `json:"price"`
}

func FromExtraView(v *queries.ExtraView) *ExtraResponse { return copyInto[ExtraResponse](v) }

func FromExtraViews(vs []*queries.ExtraView) []*ExtraResponse { return copyAll[ExtraResponse](vs) }

type MinibarItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
}

func FromMinibarItemView(v *queries.MinibarItemView) *MinibarItemResponse {
	return copyInto[MinibarItemResponse](v)
}

func FromMinibarItemViews(vs []*queries.MinibarItemView) []*MinibarItemResponse {
	return copyAll[MinibarItemResponse](vs)
}

type StockLevelResponse struct {
	ItemID string `json:"item_id"`
	Stock  int    `json:"stock"`
}

type SettingsResponse struct {
	HotelName    string    `json:"hotel_name"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	LogoURL      string    `json:"logo_url"`
	Language     string    `json:"language"`
	Currency     string    `json:"currency"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromSettingsView(v *queries.SettingsView) *SettingsResponse { return copyInto[SettingsResponse](v) }

type ShortfallResponse struct {
	ID            string     `json:"id" copier:"-"`
	ReservationID string     `json:"reservation_id"`
	ItemID        string     `json:"item_id"`
	Quantity      int        `json:"quantity"`
	Status        string     `json:"status"`
	Attempts      int        `json:"attempts"`
	LastError     string     `json:"last_error,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

func FromShortfallViews(vs []*queries.ShortfallView) []*ShortfallResponse {
	out := make([]*ShortfallResponse, 0, len(vs))
	for _, v := range vs {
		r := copyInto[ShortfallResponse](v)
		r.ID = v.ID.String()
		out = append(out, r)
	}
	return out
}

type ReconcileResponse struct {
	Checked  int `json:"checked"`
	Resolved int `json:"resolved"`
	Pending  int `json:"pending"`
}

func FromReconcileReport(r *commands.ReconcileReport) *ReconcileResponse {
	return copyInto[ReconcileResponse](r)
}
