//go:build unit

package converter_test

import (
	"testing"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/infra/repository/converter"
	"hotel-frontdesk/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRow(t *testing.T) {
	b := builder.NewBookingBuilder().BuildInState(booking.StateCheckedIn)

	row, err := converter.BookingToRow(b)
	require.NoError(t, err)
	assert.Equal(t, "T-12345678", row.ReservationID)
	assert.True(t, row.TotalAmount.Equal(b.TotalAmount()))
	assert.Equal(t, builder.Day("2024-07-15"), row.FirstCheckIn)

	got, err := converter.BookingFromRow(row)
	require.NoError(t, err)

	decimalEq := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(b.Stays(), got.Stays(), decimalEq); diff != "" {
		t.Errorf("stays mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, b.Guest(), got.Guest())
	assert.Equal(t, b.State(), got.State())
	assert.True(t, b.AdvancePayment().Amount.Equal(got.AdvancePayment().Amount))
}

func TestBookingFromRow_RejectsBrokenJSON(t *testing.T) {
	_, err := converter.BookingFromRow(converter.BookingRow{GuestInfo: []byte("{")})
	assert.Error(t, err)
}

func TestMarshalBooking(t *testing.T) {
	b := builder.NewBookingBuilder().BuildInState(booking.StateCheckedOut)

	data, err := converter.MarshalBooking(b)
	require.NoError(t, err)
	got, err := converter.UnmarshalBooking(data)
	require.NoError(t, err)

	assert.Equal(t, b.ReservationID(), got.ReservationID())
	assert.Equal(t, b.State(), got.State())
	assert.Equal(t, b.MinibarConsumption(), got.MinibarConsumption())
	assert.True(t, b.TotalAmount().Equal(got.TotalAmount()))
	assert.True(t, b.CreatedAt().Equal(got.CreatedAt()))
}
