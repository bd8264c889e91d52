//go:build unit

package booking_test

import (
	"testing"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	b := builder.NewBookingBuilder().BuildInState(booking.StateCheckedIn)
	prices := map[string]decimal.Decimal{"cola": dec("80"), "water": dec("20")}
	_, err := b.Checkout(map[string]int{"water": 3, "cola": 1, "gone": 2}, prices, later)
	require.NoError(t, err)

	a101, err := room.NewRoom("A101", "Lake View", "Deluxe")
	require.NoError(t, err)
	cola, err := minibar.NewItem("cola", "Cola", minibar.CategoryMinibar, 10, dec("80"))
	require.NoError(t, err)
	water, err := minibar.NewItem("water", "Water", minibar.CategoryAmenities, 10, dec("20"))
	require.NoError(t, err)

	s := booking.Summarize(b, []*room.Room{a101}, []*minibar.Item{cola, water})

	assert.Equal(t, booking.StateCheckedOut, s.State)
	require.Len(t, s.Stays, 1)
	assert.Equal(t, "Lake View", s.Stays[0].RoomName)
	assert.Equal(t, "Deluxe", s.Stays[0].RoomType)
	assert.Equal(t, 3, s.Stays[0].Nights)
	assertDec(t, "3000", s.Stays[0].RoomTotal)
	assertDec(t, "900", s.Stays[0].ExtrasTotal)

	require.Len(t, s.Minibar, 3)
	assert.Equal(t, []string{"cola", "gone", "water"}, []string{s.Minibar[0].ItemID, s.Minibar[1].ItemID, s.Minibar[2].ItemID})
	assert.Empty(t, s.Minibar[1].Name)
	assertDec(t, "0", s.Minibar[1].Total)
	assertDec(t, "60", s.Minibar[2].Total)
	assertDec(t, "140", s.MinibarTotal)

	assertDec(t, "3900", s.TotalAmount)
	assertDec(t, "500", s.TotalPaid)
	assertDec(t, "3400", s.TotalDue)
}

func TestSummarizeUnknownRoom(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	s := booking.Summarize(b, nil, nil)
	require.Len(t, s.Stays, 1)
	assert.Equal(t, "A101", s.Stays[0].RoomID)
	assert.Empty(t, s.Stays[0].RoomName)
	assert.Empty(t, s.Minibar)
}
