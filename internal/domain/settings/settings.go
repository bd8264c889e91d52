package settings

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyHotelName  = errors.New("hotel name cannot be empty")
	ErrInvalidCurrency = errors.New("currency must be a 3 letter code")
)

const (
	DefaultLanguage = "en"
	DefaultCurrency = "BDT"
)

// Settings is the single hotel profile row printed on booking summaries.
type Settings struct {
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

func Default() Settings {
	return Settings{Language: DefaultLanguage, Currency: DefaultCurrency}
}

// Normalize trims every field and fills the language and currency defaults.
func (s Settings) Normalize() Settings {
	s.HotelName = strings.TrimSpace(s.HotelName)
	s.AddressLine1 = strings.TrimSpace(s.AddressLine1)
	s.AddressLine2 = strings.TrimSpace(s.AddressLine2)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Email = strings.TrimSpace(s.Email)
	s.LogoURL = strings.TrimSpace(s.LogoURL)
	s.Language = strings.ToLower(strings.TrimSpace(s.Language))
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	return s
}

func (s Settings) Validate() error {
	if s.HotelName == "" {
		return ErrEmptyHotelName
	}
	if len(s.Currency) != 3 {
		return ErrInvalidCurrency
	}
	for _, c := range s.Currency {
		if c < 'A' || c > 'Z' {
			return ErrInvalidCurrency
		}
	}
	return nil
}
