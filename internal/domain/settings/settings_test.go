//go:build unit

package settings_test

import (
	"testing"

	"hotel-frontdesk/internal/domain/settings"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAndValidate(t *testing.T) {
	s := settings.Settings{HotelName: "  Lake View Inn ", Currency: "usd"}.Normalize()
	assert.Equal(t, "Lake View Inn", s.HotelName)
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, settings.DefaultLanguage, s.Language)
	assert.NoError(t, s.Validate())

	assert.ErrorIs(t, settings.Settings{}.Normalize().Validate(), settings.ErrEmptyHotelName)
	assert.ErrorIs(t, settings.Settings{HotelName: "x", Currency: "TAKA"}.Normalize().Validate(), settings.ErrInvalidCurrency)
	assert.ErrorIs(t, settings.Settings{HotelName: "x", Currency: "U$D"}.Normalize().Validate(), settings.ErrInvalidCurrency)
}
