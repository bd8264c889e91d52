package request

import (
	"hotel-frontdesk/internal/domain/extra"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/domain/settings"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type RoomRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
}

func (r RoomRequest) ToInput() commands.RoomInput {
	return commands.RoomInput{Name: r.Name, Type: r.Type}
}

type ExtraRequest struct {
	Name  string          `json:"name" binding:"required"`
	Kind  string          `json:"kind"`
	Price decimal.Decimal `json:"price"`
}

func (r ExtraRequest) ToInput() (commands.ExtraInput, error) {
	kind, err := extra.ParseKind(r.Kind)
	if err != nil {
		return commands.ExtraInput{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	return commands.ExtraInput{Name: r.Name, Kind: kind, Price: r.Price}, nil
}

type MinibarItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Stock    *int            `json:"stock"`
}

func (r MinibarItemRequest) ToInput() (commands.MinibarItemInput, error) {
	category, err := minibar.ParseCategory(r.Category)
	if err != nil {
		return commands.MinibarItemInput{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	return commands.MinibarItemInput{Name: r.Name, Category: category, Price: r.Price, Stock: r.Stock}, nil
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type ListExtrasQuery struct {
	Kind string `form:"kind"`
}

// ToKind returns the empty kind, meaning all, when none is asked for.
func (q ListExtrasQuery) ToKind() (extra.Kind, error) {
	if q.Kind == "" {
		return "", nil
	}
	kind, err := extra.ParseKind(q.Kind)
	if err != nil {
		return "", errs.Mark(err, errs.ErrInvalidInput)
	}
	return kind, nil
}

type ListShortfallsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending resolved"`
}

type SettingsRequest struct {
	HotelName    string `json:"hotel_name" binding:"required"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	LogoURL      string `json:"logo_url"`
	Language     string `json:"language"`
	Currency     string `json:"currency"`
}

func (r SettingsRequest) ToDomain() settings.Settings {
	return settings.Settings{
		HotelName:    r.HotelName,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		Phone:        r.Phone,
		Email:        r.Email,
		LogoURL:      r.LogoURL,
		Language:     r.Language,
		Currency:     r.Currency,
	}
}

type ReportQuery struct {
	Year   int    `form:"year" binding:"omitempty,min=1"`
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
	Search string `form:"search"`
}
