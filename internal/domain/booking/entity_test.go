//go:build unit

package booking_test

import (
	"errors"
	"testing"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
	fields []string
}

func TestNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "T-12345678", b.ReservationID())
		assert.Equal(t, booking.StateActive, b.State())
		assert.True(t, b.IsPending())
		assert.Equal(t, b.CreatedAt(), b.UpdatedAt())
		assert.Empty(t, b.MinibarConsumption())
		assert.Equal(t, []string{"A101"}, b.RoomIDs())
		assert.Equal(t, builder.Day("2024-07-15"), b.FirstCheckIn())
	})

	t.Run("check-in on create with manager sign-off", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithCheckIn(true).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, booking.StateCheckedIn, b.State())
	})

	t.Run("input is normalised", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Guest.Name = "  Rahim  "
			b.Stays[0].RoomID = " A101 "
			b.Stays[0].Extras[0].Nights = 0
			b.Stays[0].Extras[0].Kind = ""
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Rahim", b.Guest().Name)
		stay := b.Stays()[0]
		assert.Equal(t, "A101", stay.RoomID)
		assert.Equal(t, 1, stay.Extras[0].Nights)
		assertDec(t, "3300", b.TotalAmount())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "invalid id",
				mutate: func(b *builder.BookingBuilder) { b.WithID("12345678") },
				errIs:  booking.ErrInvalidID,
			},
			{
				name:   "blank guest name",
				mutate: func(b *builder.BookingBuilder) { b.Guest.Name = "   " },
				errIs:  booking.ErrValidation,
				fields: []string{"guest.name"},
			},
			{
				name: "missing contact details",
				mutate: func(b *builder.BookingBuilder) {
					b.Guest.Email = ""
					b.Guest.Country = ""
				},
				errIs:  booking.ErrValidation,
				fields: []string{"guest.email", "guest.country"},
			},
			{
				name:   "no stays",
				mutate: func(b *builder.BookingBuilder) { b.WithStays() },
				errIs:  booking.ErrValidation,
				fields: []string{"roomStays"},
			},
			{
				name: "check-out before check-in",
				mutate: func(b *builder.BookingBuilder) {
					b.Stays[0].CheckOutDate = builder.Day("2024-07-10")
				},
				errIs:  booking.ErrValidation,
				fields: []string{"roomStays[0].checkOutDate"},
			},
			{
				name:   "same-day stay is allowed",
				mutate: func(b *builder.BookingBuilder) { b.Stays[0].CheckOutDate = b.Stays[0].CheckInDate },
			},
			{
				name: "zero price and no adults",
				mutate: func(b *builder.BookingBuilder) {
					b.Stays[0].PricePerNight = builder.Dec("0")
					b.Stays[0].Adults = 0
				},
				errIs:  booking.ErrValidation,
				fields: []string{"roomStays[0].pricePerNight", "roomStays[0].adults"},
			},
			{
				name:   "missing room",
				mutate: func(b *builder.BookingBuilder) { b.Stays[0].RoomID = "" },
				errIs:  booking.ErrValidation,
				fields: []string{"roomStays[0].roomId"},
			},
			{
				name:   "negative advance",
				mutate: func(b *builder.BookingBuilder) { b.WithAdvance("-1") },
				errIs:  booking.ErrValidation,
				fields: []string{"advancePayment.amount"},
			},
			{
				name:   "check-in without manager sign-off",
				mutate: func(b *builder.BookingBuilder) { b.WithCheckIn(false) },
				errIs:  booking.ErrValidation,
				fields: []string{"managerAck"},
			},
			{
				name:   "unnamed extra",
				mutate: func(b *builder.BookingBuilder) { b.Stays[0].Extras[0].Name = "" },
				errIs:  booking.ErrValidation,
				fields: []string{"roomStays[0].extras[0].name"},
			},
		})
	})
}

func TestValidateDraft(t *testing.T) {
	require.NoError(t, booking.ValidateDraft(builder.NewBookingBuilder().BuildDraft()))

	err := booking.ValidateDraft(builder.NewBookingBuilder().WithStays().BuildDraft())
	assert.ErrorIs(t, err, booking.ErrValidation)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()

			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, actual)

			if len(tc.fields) > 0 {
				var verr *booking.ValidationError
				require.True(t, errors.As(err, &verr))
				got := make([]string, 0, len(verr.Fields))
				for _, f := range verr.Fields {
					got = append(got, f.Field)
				}
				assert.ElementsMatch(t, tc.fields, got)
			}
		})
	}
}

func TestFirstCheckIn(t *testing.T) {
	stays := []booking.RoomStay{
		{RoomID: "A101", CheckInDate: builder.Day("2024-07-12"), CheckOutDate: builder.Day("2024-07-14")},
		{RoomID: "A102"},
		{RoomID: "A103", CheckInDate: builder.Day("2024-07-10"), CheckOutDate: builder.Day("2024-07-11")},
	}
	assert.Equal(t, builder.Day("2024-07-10"), booking.FirstCheckIn(stays))
	assert.True(t, booking.FirstCheckIn(nil).IsZero())

	b := builder.NewBookingBuilder().WithRoom("A101", "2024-07-15", "2024-07-18").BuildInState(booking.StateActive)
	assert.Equal(t, booking.FirstCheckIn(b.Stays()), b.FirstCheckIn())
}
